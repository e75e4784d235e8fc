// Package rates holds the pure building blocks of a rates lookup: date
// parsing, the day-by-day series generator, region closure resolution, and
// the per-day aggregation with its minimum-sample suppression rule.
//
// Nothing in this package touches the database; the service layer feeds it
// rows loaded through the repo package.
package rates
