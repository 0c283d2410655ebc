package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/BrandonMiller18/nhl-companion-api/internal/domain"
	"github.com/BrandonMiller18/nhl-companion-api/internal/sqlerr"
)

const gameSelect = `SELECT g.game_id, g.game_season, g.game_type, g.game_date_time_utc, g.game_venue,
		g.game_home_team_id, g.game_away_team_id, g.game_state, g.game_period, g.game_clock,
		g.game_home_score, g.game_away_score, g.game_home_sog, g.game_away_sog,
		h.team_name, h.team_abbrev, a.team_name, a.team_abbrev
	FROM games g
	LEFT JOIN teams h ON h.team_id = g.game_home_team_id
	LEFT JOIN teams a ON a.team_id = g.game_away_team_id`

// GamesRepository reads game records.
type GamesRepository struct {
	pool         *pgxpool.Pool
	log          *zerolog.Logger
	queryTimeout time.Duration
}

func scanGame(row pgx.CollectableRow) (domain.Game, error) {
	var g domain.Game
	err := row.Scan(&g.ID, &g.Season, &g.Type, &g.StartTimeUTC, &g.Venue,
		&g.HomeTeamID, &g.AwayTeamID, &g.State, &g.Period, &g.Clock,
		&g.HomeScore, &g.AwayScore, &g.HomeSOG, &g.AwaySOG,
		&g.HomeTeamName, &g.HomeTeamAbbrev, &g.AwayTeamName, &g.AwayTeamAbbrev)
	if err != nil {
		return g, err
	}
	g.StartTimeUTC = g.StartTimeUTC.UTC()
	return g, nil
}

// LocalDayWindow converts a civil date in the given location into the
// half-open UTC interval [00:00, next day 00:00) of that local day.
// The store filters its UTC timestamp column against these bounds.
func LocalDayWindow(isoDate string, loc *time.Location) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02", isoDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing date %q: %w", isoDate, err)
	}
	// AddDate, not 24h: DST transition days are 23 or 25 hours long.
	end := start.AddDate(0, 0, 1)
	return start.UTC(), end.UTC(), nil
}

// ListGamesByLocalDate fetches every game whose UTC start falls within
// the given civil day as experienced in loc, in chronological order.
func (r *GamesRepository) ListGamesByLocalDate(ctx context.Context, isoDate string, loc *time.Location) ([]domain.Game, error) {
	windowStart, windowEnd, err := LocalDayWindow(isoDate, loc)
	if err != nil {
		return nil, err
	}

	sql := gameSelect + `
	WHERE g.game_date_time_utc >= $1 AND g.game_date_time_utc < $2
	ORDER BY g.game_date_time_utc, g.game_id`

	ctx, cancel := storeContext(ctx, r.queryTimeout)
	defer cancel()

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		r.log.Error().Err(err).Str("date", isoDate).Msg("acquiring connection for games query")
		return nil, sqlerr.Classify(err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, sql, windowStart, windowEnd)
	if err != nil {
		r.log.Error().Err(err).
			Str("date", isoDate).
			Str("timezone", loc.String()).
			Time("window_start_utc", windowStart).
			Time("window_end_utc", windowEnd).
			Msg("querying games by local date")
		return nil, sqlerr.Classify(err)
	}

	games, err := pgx.CollectRows(rows, scanGame)
	if err != nil {
		r.log.Error().Err(err).Str("date", isoDate).Msg("scanning games")
		return nil, sqlerr.Classify(err)
	}
	if games == nil {
		games = []domain.Game{}
	}
	return games, nil
}

// GetGameByID fetches a single game. A missing row returns (nil, nil).
func (r *GamesRepository) GetGameByID(ctx context.Context, gameID int64) (*domain.Game, error) {
	sql := gameSelect + ` WHERE g.game_id = $1`

	ctx, cancel := storeContext(ctx, r.queryTimeout)
	defer cancel()

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		r.log.Error().Err(err).Int64("game_id", gameID).Msg("acquiring connection for game query")
		return nil, sqlerr.Classify(err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, sql, gameID)
	if err != nil {
		r.log.Error().Err(err).Int64("game_id", gameID).Msg("querying game by id")
		return nil, sqlerr.Classify(err)
	}

	game, err := pgx.CollectOneRow(rows, scanGame)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error().Err(err).Int64("game_id", gameID).Msg("scanning game")
		return nil, sqlerr.Classify(err)
	}
	return &game, nil
}
