package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/BrandonMiller18/nhl-companion-api/internal/middleware"
	"github.com/BrandonMiller18/nhl-companion-api/internal/server"
	"github.com/BrandonMiller18/nhl-companion-api/internal/validation"
)

// Handler is the base handler type holding shared dependencies.
// Concrete handlers embed it.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint function: it receives a bound and
// validated request payload and returns the response value or an
// error. Req is a pointer type so echo's Bind can populate it.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// handleRequest is the shared execution pipeline for all endpoints:
// bind + validate, structured logging, tracing attributes, handler
// execution, and the JSON response write.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	status int,
) error {
	start := time.Now()
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	log := middleware.GetLogger(c).With().
		Str("operation", "handler").
		Str("route", route).
		Logger()

	if err := validation.BindAndValidate(c, req); err != nil {
		log.Warn().
			Err(err).
			Dur("validation_duration", time.Since(start)).
			Msg("request validation failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("validation.status", "failed")
		}
		return err
	}

	handlerStart := time.Now()
	result, err := handler(c, req)
	if err != nil {
		log.Warn().
			Err(err).
			Dur("handler_duration", time.Since(handlerStart)).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")

		if txn != nil {
			txn.AddAttribute("handler.status", "error")
		}
		// The global error handler owns status mapping and error-level
		// logging of the underlying failure.
		return err
	}

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("total.duration_ms", time.Since(start).Milliseconds())
	}

	log.Debug().
		Dur("handler_duration", time.Since(handlerStart)).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return c.JSON(status, result)
}

// Handle wraps a typed endpoint function with the shared pipeline and
// returns an echo.HandlerFunc ready for route registration. reqFactory
// builds a fresh payload per request so bound values never leak
// between concurrent requests.
func Handle[Req validation.Validatable, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	reqFactory func() Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, reqFactory(), func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, status)
	}
}
