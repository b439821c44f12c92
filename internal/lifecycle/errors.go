package lifecycle

// ValidationError reports a missing required booking field.  It is returned
// before any store call, so a validation failure never mutates a record.
// Handlers translate it into an HTTP 400 response.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}
