package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/BrandonMiller18/nhl-companion-api/internal/server"
)

// Version is the reported API version.
const Version = "1.0.0"

// HealthHandler serves the unauthenticated liveness endpoint.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(s)}
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status      string    `json:"status"`
	Service     string    `json:"service"`
	Version     string    `json:"version"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
}

// CheckHealth reports that the process is alive. It deliberately
// checks nothing else: the route must answer without credentials and
// without touching the store.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:      "healthy",
		Service:     h.server.Config.Observability.ServiceName,
		Version:     Version,
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
	})
}
