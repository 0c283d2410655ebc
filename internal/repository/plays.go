package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/BrandonMiller18/nhl-companion-api/internal/domain"
	"github.com/BrandonMiller18/nhl-companion-api/internal/sqlerr"
)

// PlaysRepository reads play-by-play events.
type PlaysRepository struct {
	pool         *pgxpool.Pool
	log          *zerolog.Logger
	queryTimeout time.Duration
}

func scanPlay(row pgx.CollectableRow) (domain.Play, error) {
	var p domain.Play
	err := row.Scan(&p.ID, &p.GameID, &p.Index, &p.TeamID,
		&p.PrimaryPlayerID, &p.LosingPlayerID, &p.SecondaryPlayerID, &p.TertiaryPlayerID,
		&p.Period, &p.Time, &p.TimeRemaining, &p.Type,
		&p.Zone, &p.XCoord, &p.YCoord)
	return p, err
}

// ListPlaysByGame fetches a game's full play sequence ordered by
// period, then by the play's position index within the period.
func (r *PlaysRepository) ListPlaysByGame(ctx context.Context, gameID int64) ([]domain.Play, error) {
	sql := `SELECT play_id, play_game_id, play_index, play_team_id,
			play_primary_player_id, play_losing_player_id, play_secondary_player_id, play_tertiary_player_id,
			play_period, play_time, play_time_remaining, play_type,
			play_zone, play_x_coord, play_y_coord
		FROM plays
		WHERE play_game_id = $1
		ORDER BY play_period, play_index`

	ctx, cancel := storeContext(ctx, r.queryTimeout)
	defer cancel()

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		r.log.Error().Err(err).Int64("game_id", gameID).Msg("acquiring connection for plays query")
		return nil, sqlerr.Classify(err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, sql, gameID)
	if err != nil {
		r.log.Error().Err(err).Int64("game_id", gameID).Msg("querying plays by game")
		return nil, sqlerr.Classify(err)
	}

	plays, err := pgx.CollectRows(rows, scanPlay)
	if err != nil {
		r.log.Error().Err(err).Int64("game_id", gameID).Msg("scanning plays")
		return nil, sqlerr.Classify(err)
	}
	if plays == nil {
		plays = []domain.Play{}
	}
	return plays, nil
}
