package rates

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pkordes/freight-rates/backend/internal/domain"
)

// MinSamples is the suppression threshold: a day with fewer matching prices
// than this reports no average at all.
const MinSamples = 3

// AveragePlaces is the number of decimal places averages are rounded to.
const AveragePlaces = 2

// Aggregate joins prices onto the day skeleton and returns exactly one
// DailyRate per skeleton day, in skeleton order.
//
// Every price whose day is in the skeleton counts as a sample; duplicates are
// kept. Days with fewer than MinSamples samples get a nil AveragePrice.
// Prices for days outside the skeleton are ignored.
func Aggregate(days []time.Time, prices []domain.Price) []domain.DailyRate {
	samples := make(map[string][]decimal.Decimal, len(days))
	for _, p := range prices {
		key := FormatDay(p.Day)
		samples[key] = append(samples[key], decimal.NewFromFloat(p.Value))
	}

	out := make([]domain.DailyRate, 0, len(days))
	for _, day := range days {
		out = append(out, domain.DailyRate{
			Day:          day,
			AveragePrice: average(samples[FormatDay(day)]),
		})
	}
	return out
}

// average returns the mean of values rounded half away from zero to
// AveragePlaces, or nil when there are fewer than MinSamples values.
func average(values []decimal.Decimal) *float64 {
	if len(values) < MinSamples {
		return nil
	}
	mean := decimal.Sum(values[0], values[1:]...).
		Div(decimal.NewFromInt(int64(len(values)))).
		Round(AveragePlaces)
	f, _ := mean.Float64()
	return &f
}

// Suppressed counts the entries of rates that carry no average.
func Suppressed(rates []domain.DailyRate) int {
	n := 0
	for _, r := range rates {
		if r.AveragePrice == nil {
			n++
		}
	}
	return n
}
