package sqlerr

// Code is the application-level category of a store failure.
type Code string

const (
	// ConnectionFailure covers errors establishing or keeping a
	// connection to the store (SQLSTATE class 08, resource exhaustion,
	// operator intervention) plus pool acquisition failures.
	ConnectionFailure Code = "connection_failure"

	// QueryFailure covers errors raised while executing a statement
	// (syntax, undefined objects, data exceptions).
	QueryFailure Code = "query_failure"

	// Other is everything that could not be classified.
	Other Code = "other"
)

// Error is a classified store error. It wraps the original driver
// error for logging and unwrapping.
type Error struct {
	Code         Code
	DatabaseCode string
	Message      string

	driverErr error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a PostgreSQL SQLSTATE to an application category.
func MapCode(sqlstate string) Code {
	if len(sqlstate) < 2 {
		return Other
	}
	switch sqlstate[:2] {
	case "08", "53", "57", "58":
		return ConnectionFailure
	case "22", "26", "34", "42":
		return QueryFailure
	default:
		return Other
	}
}
