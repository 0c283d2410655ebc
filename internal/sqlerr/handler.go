package sqlerr

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/BrandonMiller18/nhl-companion-api/internal/errs"
)

// ErrCode reports the mapped Code for a given error, or Other when the
// error was never classified.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	return Other
}

// Classify wraps a driver error in a categorized *Error. Context
// cancellation/timeouts and dial failures count as connection
// failures; a pgconn.PgError is mapped by its SQLSTATE.
func Classify(err error) *Error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &Error{
			Code:         MapCode(pgErr.Code),
			DatabaseCode: pgErr.Code,
			Message:      pgErr.Message,
			driverErr:    err,
		}
	}

	code := Other
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || pgconn.SafeToRetry(err) {
		code = ConnectionFailure
	}
	return &Error{
		Code:      code,
		Message:   err.Error(),
		driverErr: err,
	}
}

// HandleError converts a store failure into the error returned to the
// HTTP boundary.
//
// Already-mapped *errs.HTTPError values pass through unchanged so
// NotFound decisions made upstream survive. Everything else becomes a
// generic 500: the classified detail stays attached for logging via
// Unwrap, never for serialization.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}
	return errs.NewInternalServerError()
}
