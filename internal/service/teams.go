package service

import (
	"context"

	"github.com/BrandonMiller18/nhl-companion-api/internal/domain"
)

// TeamService serves team listings.
type TeamService struct {
	teams TeamsReader
}

// NewTeamService constructs a TeamService.
func NewTeamService(teams TeamsReader) *TeamService {
	return &TeamService{teams: teams}
}

// ListAll returns every team, ordered by display name.
func (s *TeamService) ListAll(ctx context.Context) ([]domain.Team, error) {
	return s.teams.ListTeams(ctx, false)
}

// ListActive returns only currently active teams.
func (s *TeamService) ListActive(ctx context.Context) ([]domain.Team, error) {
	return s.teams.ListTeams(ctx, true)
}
