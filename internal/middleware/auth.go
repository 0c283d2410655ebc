package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/BrandonMiller18/nhl-companion-api/internal/errs"
	"github.com/BrandonMiller18/nhl-companion-api/internal/server"
	"github.com/BrandonMiller18/nhl-companion-api/internal/service"
)

const bearerScheme = "Bearer "

// AuthMiddleware enforces the shared bearer credential on data routes.
// The health route is registered outside this middleware and stays
// open.
type AuthMiddleware struct {
	server *server.Server
	auth   *service.AuthService
}

// NewAuthMiddleware constructs an AuthMiddleware over the verifier.
func NewAuthMiddleware(s *server.Server, auth *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
		auth:   auth,
	}
}

// RequireBearerToken rejects any request whose Authorization header
// does not carry the configured credential. Rejections happen before
// any route logic runs, so no store call is ever made for an
// unauthenticated request. 401 responses carry a Bearer challenge.
func (m *AuthMiddleware) RequireBearerToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, bearerScheme) {
			GetLogger(c).Warn().Msg("missing or malformed authorization header")
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			return errs.NewUnauthorizedError("Not authenticated")
		}

		if err := m.auth.Verify(header[len(bearerScheme):]); err != nil {
			var httpErr *errs.HTTPError
			if errors.As(err, &httpErr) {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			}
			return err
		}

		return next(c)
	}
}
