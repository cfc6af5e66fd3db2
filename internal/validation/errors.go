package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Errors collects messages per request field. It is returned whenever a
// payload or query string is rejected.
type Errors struct {
	fields map[string][]string
	order  []string
}

func NewErrors() *Errors {
	return &Errors{fields: map[string][]string{}}
}

// NewError returns Errors holding a single message.
func NewError(field, message string) *Errors {
	e := NewErrors()
	e.Add(field, message)
	return e
}

func (e *Errors) Add(field, message string) {
	if _, ok := e.fields[field]; !ok {
		e.order = append(e.order, field)
	}
	e.fields[field] = append(e.fields[field], message)
}

func (e *Errors) HasErrors() bool {
	return e != nil && len(e.order) > 0
}

// Fields returns a copy of the field to messages map.
func (e *Errors) Fields() map[string][]string {
	out := make(map[string][]string, len(e.fields))
	for k, v := range e.fields {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// FieldNames returns the failing fields in the order they were reported.
func (e *Errors) FieldNames() []string {
	return append([]string(nil), e.order...)
}

// Message summarises the errors: the first message plus a count of the rest.
func (e *Errors) Message() string {
	if !e.HasErrors() {
		return "The given data was invalid."
	}
	first := e.fields[e.order[0]][0]
	total := 0
	for _, msgs := range e.fields {
		total += len(msgs)
	}
	switch remaining := total - 1; remaining {
	case 0:
		return first
	case 1:
		return fmt.Sprintf("%s (and 1 more error)", first)
	default:
		return fmt.Sprintf("%s (and %d more errors)", first, remaining)
	}
}

func (e *Errors) Error() string {
	if !e.HasErrors() {
		return "validation failed"
	}
	keys := append([]string(nil), e.order...)
	sort.Strings(keys)
	return "validation failed: " + strings.Join(keys, ", ")
}
