package handler

import (
	"github.com/BrandonMiller18/nhl-companion-api/internal/server"
	"github.com/BrandonMiller18/nhl-companion-api/internal/service"
)

// Handlers groups all HTTP handlers so router setup passes one object
// around instead of many.
type Handlers struct {
	Health  *HealthHandler
	Teams   *TeamHandler
	Players *PlayerHandler
	Games   *GameHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		Teams:   NewTeamHandler(s, services.Teams),
		Players: NewPlayerHandler(s, services.Players),
		Games:   NewGameHandler(s, services.Games),
	}
}
