package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/BrandonMiller18/nhl-companion-api/internal/domain"
	"github.com/BrandonMiller18/nhl-companion-api/internal/errs"
)

type stubGamesReader struct {
	listCalls int
	getCalls  int

	lastISODate string
	lastLoc     *time.Location

	games []domain.Game
	game  *domain.Game
	err   error
}

func (s *stubGamesReader) ListGamesByLocalDate(_ context.Context, isoDate string, loc *time.Location) ([]domain.Game, error) {
	s.listCalls++
	s.lastISODate = isoDate
	s.lastLoc = loc
	return s.games, s.err
}

func (s *stubGamesReader) GetGameByID(_ context.Context, _ int64) (*domain.Game, error) {
	s.getCalls++
	return s.game, s.err
}

type stubPlaysReader struct {
	calls int
	plays []domain.Play
	err   error
}

func (s *stubPlaysReader) ListPlaysByGame(_ context.Context, _ int64) ([]domain.Play, error) {
	s.calls++
	return s.plays, s.err
}

func newTestGameService(games GamesReader, plays PlaysReader) *GameService {
	log := zerolog.Nop()
	return NewGameService(games, plays, &log)
}

func TestGetDetailMissingGameSkipsPlays(t *testing.T) {
	games := &stubGamesReader{game: nil}
	plays := &stubPlaysReader{}
	svc := newTestGameService(games, plays)

	detail, err := svc.GetDetail(context.Background(), 42)
	if detail != nil {
		t.Fatal("expected no detail for a missing game")
	}

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected an HTTPError, got %T", err)
	}
	if httpErr.Status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", httpErr.Status)
	}
	if plays.calls != 0 {
		t.Errorf("expected no play lookup for a missing game, got %d calls", plays.calls)
	}
}

func TestGetDetailComposesGameAndPlays(t *testing.T) {
	games := &stubGamesReader{game: &domain.Game{ID: 7}}
	plays := &stubPlaysReader{plays: []domain.Play{
		{ID: 1, GameID: 7, Period: 1, Index: 1},
		{ID: 2, GameID: 7, Period: 1, Index: 2},
	}}
	svc := newTestGameService(games, plays)

	detail, err := svc.GetDetail(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Game.ID != 7 {
		t.Errorf("expected game 7, got %d", detail.Game.ID)
	}
	if len(detail.Plays) != 2 {
		t.Errorf("expected 2 plays, got %d", len(detail.Plays))
	}
	if plays.calls != 1 {
		t.Errorf("expected one play lookup, got %d", plays.calls)
	}
}

func TestGetDetailGameWithNoPlays(t *testing.T) {
	games := &stubGamesReader{game: &domain.Game{ID: 9}}
	plays := &stubPlaysReader{plays: []domain.Play{}}
	svc := newTestGameService(games, plays)

	detail, err := svc.GetDetail(context.Background(), 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Plays == nil {
		t.Error("expected an empty play list, not nil")
	}
	if len(detail.Plays) != 0 {
		t.Errorf("expected no plays, got %d", len(detail.Plays))
	}
}

func TestGetDetailPropagatesStoreErrors(t *testing.T) {
	games := &stubGamesReader{err: errors.New("connection refused")}
	plays := &stubPlaysReader{}
	svc := newTestGameService(games, plays)

	if _, err := svc.GetDetail(context.Background(), 7); err == nil {
		t.Fatal("expected the store error to propagate")
	}
	if plays.calls != 0 {
		t.Errorf("expected no play lookup after a game read failure, got %d calls", plays.calls)
	}
}

func TestListByLocalDateResolvesBeforeStoreAccess(t *testing.T) {
	games := &stubGamesReader{}
	svc := newTestGameService(games, &stubPlaysReader{})

	_, err := svc.ListByLocalDate(context.Background(), "2024-01-15", "Not/AZone")
	if err == nil {
		t.Fatal("expected an error for an unknown timezone")
	}
	if games.listCalls != 0 {
		t.Errorf("expected no store access for an unknown timezone, got %d calls", games.listCalls)
	}
}

func TestListByLocalDatePassesResolvedDateAndZone(t *testing.T) {
	games := &stubGamesReader{games: []domain.Game{}}
	svc := newTestGameService(games, &stubPlaysReader{})
	svc.now = fixedClock(time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC))

	// 03:00 UTC on June 1st is still May 31st in New York.
	if _, err := svc.ListByLocalDate(context.Background(), "", "America/New_York"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if games.lastISODate != "2024-05-31" {
		t.Errorf("expected resolved date 2024-05-31, got %s", games.lastISODate)
	}
	if games.lastLoc == nil || games.lastLoc.String() != "America/New_York" {
		t.Errorf("expected location America/New_York, got %v", games.lastLoc)
	}
}
