package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Error carries field-level validation messages. No mutation happens
// when a service returns one; handlers map it to a 400 response.
type Error struct {
	Fields map[string]string
}

func NewError() *Error {
	return &Error{Fields: make(map[string]string)}
}

func (e *Error) Add(field, message string) {
	e.Fields[field] = message
}

func (e *Error) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *Error) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
