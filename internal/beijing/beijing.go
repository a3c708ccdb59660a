// Package beijing converts between UTC instants and Beijing (UTC+8) civil
// dates. The offset is fixed; Asia/Shanghai has no daylight saving.
package beijing

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

const offset = 8 * time.Hour

// ErrInvalidDate is returned when a date string does not match YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")

var datePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// DateString returns the wall-clock calendar date at UTC+8 for the given
// instant, formatted YYYY-MM-DD.
func DateString(t time.Time) string {
	return t.UTC().Add(offset).Format("2006-01-02")
}

// DayRange resolves a Beijing calendar date to the half-open UTC instant
// range [start, end) covering that local day. Beijing midnight is the
// previous day 16:00 UTC.
func DayRange(date string) (start, end time.Time, err error) {
	m := datePattern.FindStringSubmatch(date)
	if m == nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	local, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	start = local.Add(-offset)
	end = start.Add(24 * time.Hour)
	return start, end, nil
}
