package domain

import "time"

// Price is a single quote for a lane (origin port → destination port) on a day.
// Several prices may share the same lane and day; each one is a sample.
type Price struct {
	OriginCode      string
	DestinationCode string
	Day             time.Time
	Value           float64
}

// RateQuery is the raw, unvalidated input of a rates lookup as received
// from the HTTP layer. Dates are "YYYY-MM-DD" strings.
type RateQuery struct {
	DateFrom    string
	DateTo      string
	Origin      string
	Destination string
}

// DailyRate is one entry of the rates result: a calendar day and its average
// price. AveragePrice is nil when the day has too few samples to report.
type DailyRate struct {
	Day          time.Time
	AveragePrice *float64
}
