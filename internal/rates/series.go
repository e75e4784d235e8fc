package rates

import (
	"fmt"
	"time"

	"github.com/pkordes/freight-rates/backend/internal/domain"
)

// DaySeries returns every calendar day from from to to inclusive, ascending,
// as midnight UTC values. Any time-of-day component of the bounds is dropped.
// Returns domain.ErrInvalidRange when from is after to.
func DaySeries(from, to time.Time) ([]time.Time, error) {
	start, end := truncateDay(from), truncateDay(to)
	if start.After(end) {
		return nil, fmt.Errorf("%w: date_from %s is after date_to %s",
			domain.ErrInvalidRange, FormatDay(start), FormatDay(end))
	}

	days := make([]time.Time, 0, SpanDays(start, end))
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days, nil
}

// SpanDays returns the number of calendar days in [from, to], counting both
// ends, or zero when from is after to.
func SpanDays(from, to time.Time) int {
	start, end := truncateDay(from), truncateDay(to)
	if start.After(end) {
		return 0
	}
	// Unix seconds do not saturate the way time.Duration does past ~292 years.
	return int((end.Unix()-start.Unix())/secondsPerDay) + 1
}

// CheckSpan fails with domain.ErrInvalidRange when [from, to] covers more than
// maxDays days. A non-positive maxDays disables the check.
func CheckSpan(from, to time.Time, maxDays int) error {
	if maxDays <= 0 {
		return nil
	}
	if n := SpanDays(from, to); n > maxDays {
		return fmt.Errorf("%w: range of %d days exceeds the maximum of %d",
			domain.ErrInvalidRange, n, maxDays)
	}
	return nil
}

const secondsPerDay = 24 * 60 * 60

// truncateDay maps t onto midnight UTC of the same calendar day.
// Using the calendar fields (not Truncate) keeps non-UTC inputs on their own date.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
