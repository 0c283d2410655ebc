package repository

import (
	"testing"
	"time"
)

func mustLoadLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("loading %s: %v", name, err)
	}
	return loc
}

func TestLocalDayWindowEasternWinter(t *testing.T) {
	loc := mustLoadLocation(t, "America/New_York")

	start, end, err := LocalDayWindow("2024-01-15", loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStart := time.Date(2024, 1, 15, 5, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 1, 16, 5, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("expected window start %v, got %v", wantStart, start)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("expected window end %v, got %v", wantEnd, end)
	}
}

func TestLocalDayWindowUTC(t *testing.T) {
	start, end, err := LocalDayWindow("2024-01-15", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStart := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("expected window start %v, got %v", wantStart, start)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("expected window end %v, got %v", wantEnd, end)
	}
}

func TestLocalDayWindowZonesDiffer(t *testing.T) {
	eastern := mustLoadLocation(t, "America/New_York")

	easternStart, _, err := LocalDayWindow("2024-01-15", eastern)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	utcStart, _, err := LocalDayWindow("2024-01-15", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if easternStart.Equal(utcStart) {
		t.Error("expected the same civil date to map to different UTC windows per zone")
	}
}

func TestLocalDayWindowSpringForwardIs23Hours(t *testing.T) {
	// US DST starts 2024-03-10; that civil day is only 23 hours long.
	loc := mustLoadLocation(t, "America/New_York")

	start, end, err := LocalDayWindow("2024-03-10", loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := end.Sub(start); got != 23*time.Hour {
		t.Errorf("expected a 23 hour window, got %v", got)
	}

	wantStart := time.Date(2024, 3, 10, 5, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 3, 11, 4, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) || !end.Equal(wantEnd) {
		t.Errorf("expected [%v, %v), got [%v, %v)", wantStart, wantEnd, start, end)
	}
}

func TestLocalDayWindowFallBackIs25Hours(t *testing.T) {
	// US DST ends 2024-11-03; that civil day is 25 hours long.
	loc := mustLoadLocation(t, "America/New_York")

	start, end, err := LocalDayWindow("2024-11-03", loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := end.Sub(start); got != 25*time.Hour {
		t.Errorf("expected a 25 hour window, got %v", got)
	}
}
