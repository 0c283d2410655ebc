// Package validation binds request data into typed payloads and
// validates it, turning failures into structured field-level errors.
package validation

// Validatable is implemented by request payload types that know how to
// validate themselves, typically by running validator struct tags.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a single validation issue that cannot be
// expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that
// satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}
