package errs

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
)

func TestConstructorsSetStatusAndCode(t *testing.T) {
	cases := []struct {
		err        *HTTPError
		wantStatus int
		wantCode   string
	}{
		{NewUnauthorizedError("Not authenticated"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{NewBadRequestError("Invalid timezone", nil), http.StatusBadRequest, "BAD_REQUEST"},
		{NewNotFoundError("Game 42 not found"), http.StatusNotFound, "NOT_FOUND"},
		{NewUnprocessableEntityError("Invalid request parameters", nil), http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY"},
		{NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range cases {
		if tc.err.Status != tc.wantStatus {
			t.Errorf("expected status %d, got %d", tc.wantStatus, tc.err.Status)
		}
		if tc.err.Code != tc.wantCode {
			t.Errorf("expected code %q, got %q", tc.wantCode, tc.err.Code)
		}
	}
}

func TestInternalServerErrorNeverCarriesDetail(t *testing.T) {
	err := NewInternalServerError()
	if err.Message != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("expected the bare status text, got %q", err.Message)
	}
	if err.Errors != nil {
		t.Errorf("expected no field errors, got %+v", err.Errors)
	}
}

func TestIsMatchesAnyHTTPError(t *testing.T) {
	err := NewNotFoundError("Player 1 not found")
	if !errors.Is(err, &HTTPError{}) {
		t.Error("expected any HTTPError to match")
	}
	if errors.Is(errors.New("plain"), &HTTPError{}) {
		t.Error("expected a plain error not to match")
	}
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	if got := MakeUpperCaseWithUnderscores("Not Found"); got != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND, got %q", got)
	}
	if got := MakeUpperCaseWithUnderscores("Internal Server Error"); got != "INTERNAL_SERVER_ERROR" {
		t.Errorf("expected INTERNAL_SERVER_ERROR, got %q", got)
	}
}
