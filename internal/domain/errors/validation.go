package errors

// FieldViolation describes one rejected input field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag"`
}

// NewValidationError returns ErrValidationFailed carrying the given violations.
func NewValidationError(violations ...FieldViolation) *BaseError {
	return ErrValidationFailed.WithDetails(violations)
}

// Violations extracts field violations from a validation error, if any.
func Violations(err AppError) []FieldViolation {
	if err == nil {
		return nil
	}
	v, _ := err.Details().([]FieldViolation)

	return v
}
