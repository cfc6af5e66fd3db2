package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

func label(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

func isNumericKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isListKind(kind reflect.Kind) bool {
	return kind == reflect.Slice || kind == reflect.Array || kind == reflect.Map
}

// message renders a single rule failure. other is the json name of the
// compared field for cross-field rules.
func message(fe validator.FieldError, field, other string) string {
	name := label(field)
	param := fe.Param()
	kind := fe.Kind()

	switch fe.Tag() {
	case "required", "required_with", "required_without":
		return fmt.Sprintf("The %s field is required.", name)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", name)
	case "exists", "oneof", "iso3166_1_alpha2", "resource_name":
		return fmt.Sprintf("The selected %s is invalid.", name)
	case "unique":
		return fmt.Sprintf("The %s has already been taken.", name)
	case "not_self":
		return fmt.Sprintf("The %s field must not reference the record itself.", name)
	case "gtfield":
		return fmt.Sprintf("The %s field must be a date after %s.", name, label(other))
	case "gtefield":
		return fmt.Sprintf("The %s field must be a date after or equal to %s.", name, label(other))
	case "len":
		return fmt.Sprintf("The %s field must be %s characters.", name, param)
	case "max", "lte":
		switch {
		case isNumericKind(kind):
			return fmt.Sprintf("The %s field must not be greater than %s.", name, param)
		case isListKind(kind):
			return fmt.Sprintf("The %s field must not have more than %s items.", name, param)
		default:
			return fmt.Sprintf("The %s field must not be greater than %s characters.", name, param)
		}
	case "min", "gte":
		switch {
		case isNumericKind(kind):
			return fmt.Sprintf("The %s field must be at least %s.", name, param)
		case isListKind(kind):
			return fmt.Sprintf("The %s field must have at least %s items.", name, param)
		default:
			return fmt.Sprintf("The %s field must be at least %s characters.", name, param)
		}
	case "gt":
		return fmt.Sprintf("The %s field must be greater than %s.", name, param)
	case "alpha":
		return fmt.Sprintf("The %s field must only contain letters.", name)
	case "alphanum":
		return fmt.Sprintf("The %s field must only contain letters and numbers.", name)
	default:
		return fmt.Sprintf("The %s field is invalid.", name)
	}
}
