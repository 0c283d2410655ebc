package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/BrandonMiller18/nhl-companion-api/internal/domain"
	"github.com/BrandonMiller18/nhl-companion-api/internal/errs"
)

// GameService serves game listings and the composed game detail.
type GameService struct {
	games GamesReader
	plays PlaysReader
	log   *zerolog.Logger

	// now is the wall clock used for "today" defaulting. Tests swap it.
	now func() time.Time
}

// NewGameService constructs a GameService.
func NewGameService(games GamesReader, plays PlaysReader, log *zerolog.Logger) *GameService {
	return &GameService{
		games: games,
		plays: plays,
		log:   log,
		now:   time.Now,
	}
}

// ListByLocalDate returns the games of one civil day in the given
// timezone. An empty date means today in that zone.
func (s *GameService) ListByLocalDate(ctx context.Context, date, timezone string) ([]domain.Game, error) {
	resolved, loc, err := ResolveLocalDate(date, timezone, s.now)
	if err != nil {
		return nil, err
	}
	if date == "" {
		s.log.Info().
			Str("date", resolved).
			Str("timezone", timezone).
			Msg("no date provided, using today in requested timezone")
	}

	return s.games.ListGamesByLocalDate(ctx, resolved, loc)
}

// GetDetail composes one game with its ordered play sequence.
//
// The game is resolved first; when it does not exist the plays are
// never fetched. The two reads are sequential and non-transactional;
// for a live game a play can land between them, which is accepted.
func (s *GameService) GetDetail(ctx context.Context, gameID int64) (*domain.GameDetail, error) {
	game, err := s.games.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, errs.NewNotFoundError(fmt.Sprintf("Game %d not found", gameID))
	}

	plays, err := s.plays.ListPlaysByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	return &domain.GameDetail{
		Game:  *game,
		Plays: plays,
	}, nil
}
