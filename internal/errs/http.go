package errs

import (
	"net/http"
)

func newError(status int, message string, fieldErrors []FieldError) *HTTPError {
	if message == "" {
		message = http.StatusText(status)
	}
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
		Errors:  fieldErrors,
	}
}

// NewUnauthorizedError creates a 401 Unauthorized HTTPError.
func NewUnauthorizedError(message string) *HTTPError {
	return newError(http.StatusUnauthorized, message, nil)
}

// NewBadRequestError creates a 400 Bad Request HTTPError, used for
// malformed query input such as an unknown timezone or a date that is
// not YYYY-MM-DD. fieldErrors may be nil.
func NewBadRequestError(message string, fieldErrors []FieldError) *HTTPError {
	return newError(http.StatusBadRequest, message, fieldErrors)
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return newError(http.StatusNotFound, message, nil)
}

// NewUnprocessableEntityError creates a 422 HTTPError listing the
// request parameters that failed shape validation (e.g. a non-numeric
// path identifier).
func NewUnprocessableEntityError(message string, fieldErrors []FieldError) *HTTPError {
	return newError(http.StatusUnprocessableEntity, message, fieldErrors)
}

// NewInternalServerError creates a generic 500 HTTPError. The message
// is always the bare status text; the real cause belongs in logs only.
func NewInternalServerError() *HTTPError {
	return newError(http.StatusInternalServerError, "", nil)
}
