package validation

import (
	"errors"
	"strings"
)

// FieldError is one failed rule, reported against the form field name.
type FieldError struct {
	Field   string
	Message string
}

// Errors lists failed fields in form order, at most one message per field.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

// Message returns the message for field, or "" when the field passed.
func (e Errors) Message(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// Map indexes messages by field for templates.
func (e Errors) Map() map[string]string {
	m := make(map[string]string, len(e))
	for _, fe := range e {
		m[fe.Field] = fe.Message
	}
	return m
}

// FromError extracts field errors from anywhere in err's chain.
func FromError(err error) (Errors, bool) {
	var errs Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}
