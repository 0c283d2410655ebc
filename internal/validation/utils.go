package validation

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/BrandonMiller18/nhl-companion-api/internal/errs"
)

// BindAndValidate binds path/query parameters into payload and runs
// its validation.
//
// Two failure categories come out of Validate:
//   - CustomValidationErrors are parameter shape violations (e.g. a
//     non-numeric path identifier) and map to 422 with a per-field
//     listing.
//   - validator tag failures are malformed input values and map to
//     400 with a per-field listing.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		// Path and query parameters bind as strings, so this only
		// trips on input echo cannot decode at all.
		return errs.NewUnprocessableEntityError("Invalid request parameters", nil)
	}

	if err := payload.Validate(); err != nil {
		var customErrors CustomValidationErrors
		if errors.As(err, &customErrors) {
			return errs.NewUnprocessableEntityError("Invalid request parameters", fieldErrorsFromCustom(customErrors))
		}

		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return errs.NewBadRequestError("Validation failed", fieldErrorsFromTags(validationErrors))
		}

		return errs.NewBadRequestError("Validation failed", nil)
	}

	return nil
}

// ParseID validates that raw is a positive decimal integer and parses
// it. The error names the parameter that failed.
func ParseID(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, CustomValidationErrors{{
			Field:   field,
			Message: "must be a non-negative integer",
		}}
	}
	return id, nil
}

func fieldErrorsFromCustom(customErrors CustomValidationErrors) []errs.FieldError {
	fieldErrors := make([]errs.FieldError, 0, len(customErrors))
	for _, cerr := range customErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: cerr.Field,
			Error: cerr.Message,
		})
	}
	return fieldErrors
}

func fieldErrorsFromTags(validationErrors validator.ValidationErrors) []errs.FieldError {
	var fieldErrors []errs.FieldError

	for _, verr := range validationErrors {
		field := strings.ToLower(verr.Field())
		var msg string

		switch verr.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if verr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", verr.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", verr.Param())
			}

		case "max":
			if verr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", verr.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", verr.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", verr.Param())

		case "datetime":
			msg = fmt.Sprintf("must match the format %s", verr.Param())

		default:
			if verr.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, verr.Tag(), verr.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, verr.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return fieldErrors
}
