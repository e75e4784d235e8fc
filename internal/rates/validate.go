package rates

import (
	"regexp"
	"time"

	"github.com/pkordes/freight-rates/backend/internal/domain"
)

// DayLayout is the only accepted wire format for dates.
const DayLayout = "2006-01-02"

// dayPattern pins the layout to exactly 4/2/2 digits. time.Parse alone would
// accept some shapes we do not want, so the shape is checked first.
var dayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDay parses s as a calendar date in YYYY-MM-DD form and returns it as
// midnight UTC. Impossible dates such as 2024-02-30 or 2024-13-01 are rejected.
// The returned error is a *domain.InvalidDateError.
func ParseDay(s string) (time.Time, error) {
	if !dayPattern.MatchString(s) {
		return time.Time{}, &domain.InvalidDateError{Value: s}
	}
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, &domain.InvalidDateError{Value: s}
	}
	return t, nil
}

// FormatDay renders t in the wire format used for days.
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}
