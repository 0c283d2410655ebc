package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/BrandonMiller18/nhl-companion-api/internal/domain"
	"github.com/BrandonMiller18/nhl-companion-api/internal/server"
	"github.com/BrandonMiller18/nhl-companion-api/internal/service"
	"github.com/BrandonMiller18/nhl-companion-api/internal/validation"
)

// PlayerHandler serves the player endpoints.
type PlayerHandler struct {
	Handler
	players *service.PlayerService
}

// NewPlayerHandler constructs a PlayerHandler.
func NewPlayerHandler(s *server.Server, players *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		Handler: NewHandler(s),
		players: players,
	}
}

// ListTeamPlayersRequest carries the team path parameter. A
// non-numeric value maps to 422.
type ListTeamPlayersRequest struct {
	TeamID string `param:"teamId"`

	teamID int64
}

func (r *ListTeamPlayersRequest) Validate() error {
	id, err := validation.ParseID("teamId", r.TeamID)
	if err != nil {
		return err
	}
	r.teamID = id
	return nil
}

// GetPlayerRequest carries the player path parameter.
type GetPlayerRequest struct {
	PlayerID string `param:"playerId"`

	playerID int64
}

func (r *GetPlayerRequest) Validate() error {
	id, err := validation.ParseID("playerId", r.PlayerID)
	if err != nil {
		return err
	}
	r.playerID = id
	return nil
}

// ListTeamPlayers returns a team's players. Unknown teams yield an
// empty list, not a 404.
func (h *PlayerHandler) ListTeamPlayers(c echo.Context, req *ListTeamPlayersRequest) ([]domain.Player, error) {
	return h.players.ListByTeam(c.Request().Context(), req.teamID)
}

// GetPlayer returns one player or a 404.
func (h *PlayerHandler) GetPlayer(c echo.Context, req *GetPlayerRequest) (*domain.Player, error) {
	return h.players.GetByID(c.Request().Context(), req.playerID)
}

// Routes registers the player endpoints on the authenticated API
// group.
func (h *PlayerHandler) Routes(g *echo.Group) {
	g.GET("/teams/:teamId/players", Handle(h.Handler, h.ListTeamPlayers, http.StatusOK, func() *ListTeamPlayersRequest { return &ListTeamPlayersRequest{} }))
	g.GET("/players/:playerId", Handle(h.Handler, h.GetPlayer, http.StatusOK, func() *GetPlayerRequest { return &GetPlayerRequest{} }))
}
