package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/BrandonMiller18/nhl-companion-api/internal/domain"
	"github.com/BrandonMiller18/nhl-companion-api/internal/server"
	"github.com/BrandonMiller18/nhl-companion-api/internal/service"
	"github.com/BrandonMiller18/nhl-companion-api/internal/validation"
)

var validate = validator.New()

// GameHandler serves the game listing and game detail endpoints.
type GameHandler struct {
	Handler
	games *service.GameService
}

// NewGameHandler constructs a GameHandler.
func NewGameHandler(s *server.Server, games *service.GameService) *GameHandler {
	return &GameHandler{
		Handler: NewHandler(s),
		games:   games,
	}
}

// ListGamesRequest carries the schedule query parameters. Date is
// optional; Timezone falls back to the league's default Eastern Time.
type ListGamesRequest struct {
	Date     string `query:"date" validate:"omitempty,datetime=2006-01-02"`
	Timezone string `query:"timezone"`
}

func (r *ListGamesRequest) Validate() error {
	return validate.Struct(r)
}

// GetGameRequest carries the game path parameter. A non-numeric value
// maps to 422.
type GetGameRequest struct {
	GameID string `param:"gameId"`

	gameID int64
}

func (r *GetGameRequest) Validate() error {
	id, err := validation.ParseID("gameId", r.GameID)
	if err != nil {
		return err
	}
	r.gameID = id
	return nil
}

// ListGames returns the games of one civil day in the requested
// timezone; with no date, today in that timezone.
func (h *GameHandler) ListGames(c echo.Context, req *ListGamesRequest) ([]domain.Game, error) {
	timezone := req.Timezone
	if timezone == "" {
		timezone = service.DefaultTimezone
	}
	return h.games.ListByLocalDate(c.Request().Context(), req.Date, timezone)
}

// GetGameDetail returns one game composed with its ordered
// play-by-play sequence.
func (h *GameHandler) GetGameDetail(c echo.Context, req *GetGameRequest) (*domain.GameDetail, error) {
	return h.games.GetDetail(c.Request().Context(), req.gameID)
}

// Routes registers the game endpoints on the authenticated API group.
func (h *GameHandler) Routes(g *echo.Group) {
	g.GET("/games", Handle(h.Handler, h.ListGames, http.StatusOK, func() *ListGamesRequest { return &ListGamesRequest{} }))
	g.GET("/games/:gameId", Handle(h.Handler, h.GetGameDetail, http.StatusOK, func() *GetGameRequest { return &GetGameRequest{} }))
}
