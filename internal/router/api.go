package router

import (
	"github.com/labstack/echo/v4"

	"github.com/BrandonMiller18/nhl-companion-api/internal/handler"
	"github.com/BrandonMiller18/nhl-companion-api/internal/middleware"
)

// registerAPIRoutes registers every data route under /api, all behind
// the bearer-token gate.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	api := r.Group("/api", m.Auth.RequireBearerToken)

	h.Teams.Routes(api)
	h.Players.Routes(api)
	h.Games.Routes(api)
}
