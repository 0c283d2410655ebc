package router

import (
	"github.com/labstack/echo/v4"

	"github.com/BrandonMiller18/nhl-companion-api/internal/handler"
)

// registerSystemRoutes registers endpoints outside the authenticated
// API surface. The liveness route bypasses the token gate entirely.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/health", h.Health.CheckHealth)
}
