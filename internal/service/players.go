package service

import (
	"context"
	"fmt"

	"github.com/BrandonMiller18/nhl-companion-api/internal/domain"
	"github.com/BrandonMiller18/nhl-companion-api/internal/errs"
)

// PlayerService serves player reads.
type PlayerService struct {
	players PlayersReader
}

// NewPlayerService constructs a PlayerService.
func NewPlayerService(players PlayersReader) *PlayerService {
	return &PlayerService{players: players}
}

// ListByTeam returns a team's players ordered by last name, then first
// name. A team with no players (or an unknown team) yields an empty
// list.
func (s *PlayerService) ListByTeam(ctx context.Context, teamID int64) ([]domain.Player, error) {
	return s.players.ListPlayersByTeam(ctx, teamID)
}

// GetByID returns a single player, or a 404 error when the identifier
// resolves to nothing.
func (s *PlayerService) GetByID(ctx context.Context, playerID int64) (*domain.Player, error) {
	player, err := s.players.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, errs.NewNotFoundError(fmt.Sprintf("Player %d not found", playerID))
	}
	return player, nil
}
