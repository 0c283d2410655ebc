package service

import (
	"fmt"
	"regexp"
	"time"

	"github.com/BrandonMiller18/nhl-companion-api/internal/errs"
)

// DefaultTimezone is applied when a caller asks for games without
// naming a timezone.
const DefaultTimezone = "America/New_York"

// isoDateShape enforces the exact YYYY-MM-DD wire format before any
// calendar interpretation happens.
var isoDateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ResolveLocalDate turns a caller-supplied (date, timezone) pair into
// the concrete civil date to filter on, and the resolved location.
//
// An unknown IANA zone or a malformed date fails with a 400 before any
// store access. An empty date means "today" as experienced in the
// given zone at the instant now reports, which must be the current
// wall clock observed fresh per request.
func ResolveLocalDate(date, timezone string, now func() time.Time) (string, *time.Location, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil || timezone == "" {
		return "", nil, errs.NewBadRequestError(
			fmt.Sprintf("Invalid timezone: %s. Must be a valid IANA timezone string.", timezone), nil)
	}

	if date == "" {
		return now().In(loc).Format("2006-01-02"), loc, nil
	}

	if !isoDateShape.MatchString(date) {
		return "", nil, errs.NewBadRequestError(
			fmt.Sprintf("Invalid date: %s. Must be formatted as YYYY-MM-DD.", date), nil)
	}
	// The shape check passes impossible dates like 2024-13-40; reject
	// them here rather than letting them reach the window computation.
	if _, err := time.ParseInLocation("2006-01-02", date, loc); err != nil {
		return "", nil, errs.NewBadRequestError(
			fmt.Sprintf("Invalid date: %s. Must be a real calendar date.", date), nil)
	}

	return date, loc, nil
}
