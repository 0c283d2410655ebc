package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/BrandonMiller18/nhl-companion-api/internal/domain"
	"github.com/BrandonMiller18/nhl-companion-api/internal/server"
	"github.com/BrandonMiller18/nhl-companion-api/internal/service"
)

// TeamHandler serves the team listing endpoints.
type TeamHandler struct {
	Handler
	teams *service.TeamService
}

// NewTeamHandler constructs a TeamHandler.
func NewTeamHandler(s *server.Server, teams *service.TeamService) *TeamHandler {
	return &TeamHandler{
		Handler: NewHandler(s),
		teams:   teams,
	}
}

// ListTeamsRequest is the (empty) payload for the team listings.
type ListTeamsRequest struct{}

func (r *ListTeamsRequest) Validate() error { return nil }

// ListTeams returns every team ordered by name.
func (h *TeamHandler) ListTeams(c echo.Context, _ *ListTeamsRequest) ([]domain.Team, error) {
	return h.teams.ListAll(c.Request().Context())
}

// ListActiveTeams returns only currently active teams.
func (h *TeamHandler) ListActiveTeams(c echo.Context, _ *ListTeamsRequest) ([]domain.Team, error) {
	return h.teams.ListActive(c.Request().Context())
}

// Routes registers the team endpoints on the authenticated API group.
func (h *TeamHandler) Routes(g *echo.Group) {
	g.GET("/teams", Handle(h.Handler, h.ListTeams, http.StatusOK, func() *ListTeamsRequest { return &ListTeamsRequest{} }))
	g.GET("/teams/active", Handle(h.Handler, h.ListActiveTeams, http.StatusOK, func() *ListTeamsRequest { return &ListTeamsRequest{} }))
}
