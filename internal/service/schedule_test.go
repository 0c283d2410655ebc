package service

import (
	"net/http"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/BrandonMiller18/nhl-companion-api/internal/errs"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestResolveLocalDateRejectsUnknownTimezone(t *testing.T) {
	_, _, err := ResolveLocalDate("", "Not/AZone", time.Now)
	if err == nil {
		t.Fatal("expected an error for an unknown timezone")
	}

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected an HTTPError, got %T", err)
	}
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", httpErr.Status)
	}
}

func TestResolveLocalDateRejectsEmptyTimezone(t *testing.T) {
	// time.LoadLocation("") returns UTC without error, so the empty
	// string needs its own rejection.
	_, _, err := ResolveLocalDate("2024-01-15", "", time.Now)
	if err == nil {
		t.Fatal("expected an error for an empty timezone")
	}

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Status != http.StatusBadRequest {
		t.Fatalf("expected a 400 HTTPError, got %v", err)
	}
}

func TestResolveLocalDateDefaultsToTodayInRequestedZone(t *testing.T) {
	// 2024-01-15 23:30 UTC is already 2024-01-16 in Auckland.
	now := fixedClock(time.Date(2024, 1, 15, 23, 30, 0, 0, time.UTC))

	date, loc, err := ResolveLocalDate("", "Pacific/Auckland", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if date != "2024-01-16" {
		t.Errorf("expected today in Auckland to be 2024-01-16, got %s", date)
	}
	if loc.String() != "Pacific/Auckland" {
		t.Errorf("expected location Pacific/Auckland, got %s", loc)
	}

	utcDate, _, err := ResolveLocalDate("", "UTC", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if utcDate != "2024-01-15" {
		t.Errorf("expected today in UTC to be 2024-01-15, got %s", utcDate)
	}
	if date == utcDate {
		t.Error("expected the Auckland and UTC civil dates to differ at this instant")
	}
}

func TestResolveLocalDatePassesValidDateThrough(t *testing.T) {
	date, loc, err := ResolveLocalDate("2024-01-15", "America/New_York", time.Now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if date != "2024-01-15" {
		t.Errorf("expected 2024-01-15, got %s", date)
	}
	if loc.String() != "America/New_York" {
		t.Errorf("expected location America/New_York, got %s", loc)
	}
}

func TestResolveLocalDateRejectsMalformedDates(t *testing.T) {
	cases := []string{
		"01-15-2024",
		"2024/01/15",
		"2024-1-5",
		"not-a-date",
		"20240115",
		"2024-13-40",
	}

	for _, date := range cases {
		_, _, err := ResolveLocalDate(date, "UTC", time.Now)
		if err == nil {
			t.Errorf("expected %q to be rejected", date)
			continue
		}

		var httpErr *errs.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Status != http.StatusBadRequest {
			t.Errorf("expected a 400 HTTPError for %q, got %v", date, err)
		}
	}
}
