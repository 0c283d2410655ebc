package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/BrandonMiller18/nhl-companion-api/internal/errs"
	"github.com/BrandonMiller18/nhl-companion-api/internal/server"
	"github.com/BrandonMiller18/nhl-companion-api/internal/service"
)

func newAuthTestMiddleware(secret string) *AuthMiddleware {
	log := zerolog.Nop()
	srv := &server.Server{Logger: &log}
	return NewAuthMiddleware(srv, service.NewAuthService(secret, &log))
}

func invokeAuth(t *testing.T, m *AuthMiddleware, authorization string) (error, *httptest.ResponseRecorder, int) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/teams", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalls := 0
	next := func(c echo.Context) error {
		nextCalls++
		return nil
	}

	err := m.RequireBearerToken(next)(c)
	return err, rec, nextCalls
}

func TestRequireBearerTokenMissingHeader(t *testing.T) {
	m := newAuthTestMiddleware("s3cret")

	err, rec, nextCalls := invokeAuth(t, m, "")
	if nextCalls != 0 {
		t.Error("expected the handler chain not to run")
	}

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected a 401 HTTPError, got %v", err)
	}
	if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got != "Bearer" {
		t.Errorf("expected a Bearer challenge, got %q", got)
	}
}

func TestRequireBearerTokenWrongScheme(t *testing.T) {
	m := newAuthTestMiddleware("s3cret")

	err, _, nextCalls := invokeAuth(t, m, "Basic czNjcmV0")
	if nextCalls != 0 {
		t.Error("expected the handler chain not to run")
	}

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected a 401 HTTPError, got %v", err)
	}
}

func TestRequireBearerTokenWrongToken(t *testing.T) {
	m := newAuthTestMiddleware("s3cret")

	err, rec, nextCalls := invokeAuth(t, m, "Bearer wrong")
	if nextCalls != 0 {
		t.Error("expected the handler chain not to run")
	}

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected a 401 HTTPError, got %v", err)
	}
	if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got != "Bearer" {
		t.Errorf("expected a Bearer challenge, got %q", got)
	}
}

func TestRequireBearerTokenValidToken(t *testing.T) {
	m := newAuthTestMiddleware("s3cret")

	err, _, nextCalls := invokeAuth(t, m, "Bearer s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nextCalls != 1 {
		t.Errorf("expected the handler chain to run once, got %d", nextCalls)
	}
}

func TestRequireBearerTokenUnconfiguredSecret(t *testing.T) {
	m := newAuthTestMiddleware("")

	err, rec, nextCalls := invokeAuth(t, m, "Bearer anything")
	if nextCalls != 0 {
		t.Error("expected the handler chain not to run")
	}
	if !errors.Is(err, service.ErrTokenNotConfigured) {
		t.Fatalf("expected ErrTokenNotConfigured, got %v", err)
	}
	// A server misconfiguration is not a client auth failure, so no
	// challenge is issued.
	if got := rec.Header().Get(echo.HeaderWWWAuthenticate); got != "" {
		t.Errorf("expected no challenge header, got %q", got)
	}
}
