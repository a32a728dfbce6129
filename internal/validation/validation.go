package validation

// FieldError is a validation failure tied to a single field. The message is
// safe to surface to the client as-is.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func newFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}
