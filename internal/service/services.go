package service

import (
	"context"
	"time"

	"github.com/BrandonMiller18/nhl-companion-api/internal/domain"
	"github.com/BrandonMiller18/nhl-companion-api/internal/repository"
	"github.com/BrandonMiller18/nhl-companion-api/internal/server"
)

// TeamsReader is the slice of the data access layer the team service
// depends on.
type TeamsReader interface {
	ListTeams(ctx context.Context, activeOnly bool) ([]domain.Team, error)
}

// PlayersReader is the data access surface for player reads.
type PlayersReader interface {
	ListPlayersByTeam(ctx context.Context, teamID int64) ([]domain.Player, error)
	GetPlayerByID(ctx context.Context, playerID int64) (*domain.Player, error)
}

// GamesReader is the data access surface for game reads.
type GamesReader interface {
	ListGamesByLocalDate(ctx context.Context, isoDate string, loc *time.Location) ([]domain.Game, error)
	GetGameByID(ctx context.Context, gameID int64) (*domain.Game, error)
}

// PlaysReader is the data access surface for play-by-play reads.
type PlaysReader interface {
	ListPlaysByGame(ctx context.Context, gameID int64) ([]domain.Play, error)
}

// Services is the container for all business services.
type Services struct {
	Auth    *AuthService
	Teams   *TeamService
	Players *PlayerService
	Games   *GameService
}

// NewServices constructs the service container over the repositories.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Auth:    NewAuthService(s.Config.Auth.BearerToken, s.Logger),
		Teams:   NewTeamService(repos.Teams),
		Players: NewPlayerService(repos.Players),
		Games:   NewGameService(repos.Games, repos.Plays, s.Logger),
	}
}
