// Package router initializes the HTTP router (echo), registers the
// global middleware chain, and maps paths to handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/BrandonMiller18/nhl-companion-api/internal/handler"
	"github.com/BrandonMiller18/nhl-companion-api/internal/middleware"
	"github.com/BrandonMiller18/nhl-companion-api/internal/server"
)

// New builds the echo router with the full middleware chain and all
// routes registered.
func New(s *server.Server, h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	// Order matters: tracing opens the transaction, request id and the
	// context enhancer establish correlation before anything logs.
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(middleware.RequestID())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.Recover())
	e.Use(m.Global.CORS())
	e.Use(m.Global.Secure())

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, h, m)

	return e
}
