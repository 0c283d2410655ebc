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

const teamColumns = `team_id, team_name, team_city, team_abbrev, team_is_active, team_logo_url`

// TeamsRepository reads team records.
type TeamsRepository struct {
	pool         *pgxpool.Pool
	log          *zerolog.Logger
	queryTimeout time.Duration
}

func scanTeam(row pgx.CollectableRow) (domain.Team, error) {
	var t domain.Team
	err := row.Scan(&t.ID, &t.Name, &t.City, &t.Abbrev, &t.IsActive, &t.LogoURL)
	return t, err
}

// ListTeams fetches teams ordered by display name. With activeOnly set,
// inactive franchises are filtered out.
func (r *TeamsRepository) ListTeams(ctx context.Context, activeOnly bool) ([]domain.Team, error) {
	sql := `SELECT ` + teamColumns + ` FROM teams ORDER BY team_name`
	if activeOnly {
		sql = `SELECT ` + teamColumns + ` FROM teams WHERE team_is_active ORDER BY team_name`
	}

	ctx, cancel := storeContext(ctx, r.queryTimeout)
	defer cancel()

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("acquiring connection for teams query")
		return nil, sqlerr.Classify(err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, sql)
	if err != nil {
		r.log.Error().Err(err).Bool("active_only", activeOnly).Msg("querying teams")
		return nil, sqlerr.Classify(err)
	}

	teams, err := pgx.CollectRows(rows, scanTeam)
	if err != nil {
		r.log.Error().Err(err).Bool("active_only", activeOnly).Msg("scanning teams")
		return nil, sqlerr.Classify(err)
	}
	if teams == nil {
		teams = []domain.Team{}
	}
	return teams, nil
}
