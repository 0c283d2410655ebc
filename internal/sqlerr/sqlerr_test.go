package sqlerr

import (
	"context"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/BrandonMiller18/nhl-companion-api/internal/errs"
)

func TestMapCode(t *testing.T) {
	cases := []struct {
		sqlstate string
		want     Code
	}{
		{"08006", ConnectionFailure}, // connection_failure
		{"53300", ConnectionFailure}, // too_many_connections
		{"57P01", ConnectionFailure}, // admin_shutdown
		{"42601", QueryFailure},      // syntax_error
		{"42P01", QueryFailure},      // undefined_table
		{"22P02", QueryFailure},      // invalid_text_representation
		{"23505", Other},             // unique_violation, not read-path relevant
		{"", Other},
		{"X", Other},
	}

	for _, tc := range cases {
		if got := MapCode(tc.sqlstate); got != tc.want {
			t.Errorf("MapCode(%q) = %s, want %s", tc.sqlstate, got, tc.want)
		}
	}
}

func TestClassifyPgError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "42P01", Message: `relation "gamez" does not exist`}

	classified := Classify(pgErr)
	if classified.Code != QueryFailure {
		t.Errorf("expected query_failure, got %s", classified.Code)
	}
	if classified.DatabaseCode != "42P01" {
		t.Errorf("expected the SQLSTATE to be kept, got %q", classified.DatabaseCode)
	}
	if !errors.Is(classified, pgErr) {
		t.Error("expected the driver error to remain unwrappable")
	}
}

func TestClassifyContextErrors(t *testing.T) {
	if got := Classify(context.DeadlineExceeded).Code; got != ConnectionFailure {
		t.Errorf("expected deadline exceeded to classify as connection_failure, got %s", got)
	}
	if got := Classify(context.Canceled).Code; got != ConnectionFailure {
		t.Errorf("expected cancellation to classify as connection_failure, got %s", got)
	}
}

func TestErrCode(t *testing.T) {
	classified := Classify(&pgconn.PgError{Code: "08006"})
	if got := ErrCode(classified); got != ConnectionFailure {
		t.Errorf("expected connection_failure, got %s", got)
	}
	if got := ErrCode(errors.New("plain")); got != Other {
		t.Errorf("expected other for an unclassified error, got %s", got)
	}
}

func TestHandleErrorKeepsMappedClientErrors(t *testing.T) {
	notFound := errs.NewNotFoundError("Game 42 not found")

	if got := HandleError(notFound); got != notFound {
		t.Errorf("expected the 404 to pass through, got %v", got)
	}
}

func TestHandleErrorCollapsesStoreFailures(t *testing.T) {
	classified := Classify(&pgconn.PgError{Code: "08006", Message: "server closed the connection"})

	err := HandleError(classified)
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected an HTTPError, got %T", err)
	}
	if httpErr.Status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", httpErr.Status)
	}
	if httpErr.Message != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("expected a generic message, got %q", httpErr.Message)
	}
}
