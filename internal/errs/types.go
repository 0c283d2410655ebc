package errs

import "strings"

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the error shape serialized to clients.
//
// Code is a machine-readable identifier derived from the HTTP status
// text (e.g. "NOT_FOUND"). Message is safe to show to callers; internal
// error detail never lands here. Errors carries per-field validation
// violations for 400/422 responses.
type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any other *HTTPError, so errors.Is(err, &HTTPError{})
// answers "is this an already-mapped client error".
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// MakeUpperCaseWithUnderscores turns HTTP status text into a stable
// error code: "Not Found" -> "NOT_FOUND".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
