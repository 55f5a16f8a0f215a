package errors

import "net/http"

const unknownField = "unknown"

// ValidationItem is one failed rule reported by a validator.
// Param takes precedence over Path when both are set.
type ValidationItem struct {
	Param string
	Path  string
	Msg   string
}

func (v ValidationItem) field() string {
	switch {
	case v.Param != "":
		return v.Param
	case v.Path != "":
		return v.Path
	default:
		return unknownField
	}
}

// Validation groups items by field name, preserving the order in which messages
// were reported, and returns a validation error (422).
func Validation(message string, items []ValidationItem) *APIError {
	fields := make(FieldErrors)
	for _, item := range items {
		name := item.field()
		fields[name] = append(fields[name], item.Msg)
	}

	return New(CategoryValidation, message, fields, http.StatusUnprocessableEntity)
}

// CustomField returns a validation error (422) for a single field.
func CustomField(message, field, fieldMessage string) *APIError {
	return New(CategoryValidation, message, FieldErrors{field: {fieldMessage}}, http.StatusUnprocessableEntity)
}
