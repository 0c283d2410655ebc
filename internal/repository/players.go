package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/BrandonMiller18/nhl-companion-api/internal/domain"
	"github.com/BrandonMiller18/nhl-companion-api/internal/sqlerr"
)

const playerColumns = `player_id, player_team_id, player_first_name, player_last_name, player_number,
	player_position, player_headshot_url, player_home_city, player_home_country, player_is_active`

// PlayersRepository reads player records.
type PlayersRepository struct {
	pool         *pgxpool.Pool
	log          *zerolog.Logger
	queryTimeout time.Duration
}

func scanPlayer(row pgx.CollectableRow) (domain.Player, error) {
	var p domain.Player
	err := row.Scan(&p.ID, &p.TeamID, &p.FirstName, &p.LastName, &p.Number,
		&p.Position, &p.HeadshotURL, &p.HomeCity, &p.HomeCountry, &p.IsActive)
	return p, err
}

// ListPlayersByTeam fetches a team's players ordered by last name, then
// first name. An unknown team yields an empty slice, not an error.
func (r *PlayersRepository) ListPlayersByTeam(ctx context.Context, teamID int64) ([]domain.Player, error) {
	sql := `SELECT ` + playerColumns + `
		FROM players
		WHERE player_team_id = $1
		ORDER BY player_last_name, player_first_name`

	ctx, cancel := storeContext(ctx, r.queryTimeout)
	defer cancel()

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		r.log.Error().Err(err).Int64("team_id", teamID).Msg("acquiring connection for players query")
		return nil, sqlerr.Classify(err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, sql, teamID)
	if err != nil {
		r.log.Error().Err(err).Int64("team_id", teamID).Msg("querying players by team")
		return nil, sqlerr.Classify(err)
	}

	players, err := pgx.CollectRows(rows, scanPlayer)
	if err != nil {
		r.log.Error().Err(err).Int64("team_id", teamID).Msg("scanning players")
		return nil, sqlerr.Classify(err)
	}
	if players == nil {
		players = []domain.Player{}
	}
	return players, nil
}

// GetPlayerByID fetches a single player. A missing row returns
// (nil, nil): absence is a normal outcome here, not an error.
func (r *PlayersRepository) GetPlayerByID(ctx context.Context, playerID int64) (*domain.Player, error) {
	sql := `SELECT ` + playerColumns + ` FROM players WHERE player_id = $1`

	ctx, cancel := storeContext(ctx, r.queryTimeout)
	defer cancel()

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		r.log.Error().Err(err).Int64("player_id", playerID).Msg("acquiring connection for player query")
		return nil, sqlerr.Classify(err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, sql, playerID)
	if err != nil {
		r.log.Error().Err(err).Int64("player_id", playerID).Msg("querying player by id")
		return nil, sqlerr.Classify(err)
	}

	player, err := pgx.CollectOneRow(rows, scanPlayer)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error().Err(err).Int64("player_id", playerID).Msg("scanning player")
		return nil, sqlerr.Classify(err)
	}
	return &player, nil
}
