// Package validation checks request payloads against struct tags, including
// database-backed rules.
//
// Besides the go-playground built-ins these rules are registered:
//
//	exists=<table>           value is the id of a row in table
//	unique=<table>.<column>  no other row holds value in column
//	not_self                 value is not the id of the row being updated
package validation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Validator struct {
	validate *validator.Validate
	db       *gorm.DB
	log      *zap.Logger
}

func New(db *gorm.DB, log *zap.Logger) *Validator {
	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		db:       db,
		log:      log.Named("validation"),
	}

	v.validate.RegisterTagNameFunc(jsonName)
	v.validate.RegisterValidationCtx("exists", v.validateExists)
	v.validate.RegisterValidationCtx("unique", v.validateUnique)
	v.validate.RegisterValidationCtx("not_self", validateNotSelf)

	return v
}

// RegisterRule adds a custom rule usable from struct tags.
func (v *Validator) RegisterRule(tag string, fn validator.FuncCtx) error {
	return v.validate.RegisterValidationCtx(tag, fn)
}

// Validate runs every rule on req and returns *Errors when any fails.
func (v *Validator) Validate(ctx context.Context, req any) error {
	err := v.validate.StructCtx(ctx, req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := NewErrors()
	for _, fe := range fieldErrs {
		field := fieldKey(fe)
		out.Add(field, message(fe, field, otherFieldName(req, fe.Param())))
	}
	return out
}

// FromDecodeError turns a JSON decoding failure into field errors.
func FromDecodeError(err error) *Errors {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field := typeErr.Field
		return NewError(field, fmt.Sprintf("The %s field has an invalid type.", label(field)))
	}

	var timeErr *time.ParseError
	if errors.As(err, &timeErr) {
		return NewError("request", fmt.Sprintf("The value %s is not a valid RFC 3339 date.", timeErr.Value))
	}

	if errors.Is(err, io.ErrUnexpectedEOF) {
		return NewError("request", "The request body must be valid JSON.")
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return NewError("request", "The request body must be valid JSON.")
	}

	return NewError("request", "The request body is invalid.")
}

// DecodeErrorFor is FromDecodeError for a body decoded into dst. Errors raised
// by a field's own UnmarshalJSON, such as a malformed timestamp, carry no
// field name, so the failing member is found by decoding body one member at
// a time.
func DecodeErrorFor(err error, body []byte, dst any) *Errors {
	var timeErr *time.ParseError
	if !errors.As(err, &timeErr) {
		return FromDecodeError(err)
	}
	field := failingMember(body, dst)
	if field == "" {
		return FromDecodeError(err)
	}
	return NewError(field, fmt.Sprintf("The %s field must be a valid RFC 3339 date.", label(field)))
}

func failingMember(body []byte, dst any) string {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(body, &members); err != nil {
		return ""
	}

	t := reflect.TypeOf(dst)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return ""
	}

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := jsonName(sf)
		raw, ok := members[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, reflect.New(sf.Type).Interface()); err != nil {
			return name
		}
	}
	return ""
}

func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// fieldKey converts "CreatePromoterRequest.skill_ids[1]" into "skill_ids.1".
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		ns = rest
	}
	ns = strings.ReplaceAll(ns, "[", ".")
	ns = strings.ReplaceAll(ns, "]", "")
	return ns
}

func otherFieldName(req any, goName string) string {
	if goName == "" {
		return ""
	}
	t := reflect.TypeOf(req)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return goName
	}
	sf, ok := t.FieldByName(goName)
	if !ok {
		return goName
	}
	if name := jsonName(sf); name != "" {
		return name
	}
	return goName
}
