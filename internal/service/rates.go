// Package service contains the business logic for the freight rates API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkordes/freight-rates/backend/internal/domain"
	"github.com/pkordes/freight-rates/backend/internal/rates"
	"github.com/pkordes/freight-rates/backend/internal/repo"
)

// RateService answers average-price queries between two locations.
// It is safe for concurrent use: every call acquires its own connection.
type RateService struct {
	acquirer     repo.Acquirer
	log          *slog.Logger
	maxRangeDays int
}

// Option configures a RateService.
type Option func(*RateService)

// WithMaxRangeDays rejects queries spanning more than n days with
// domain.ErrInvalidRange. Zero (the default) means no cap.
func WithMaxRangeDays(n int) Option {
	return func(s *RateService) { s.maxRangeDays = n }
}

// NewRateService constructs a RateService. A nil logger falls back to slog.Default.
func NewRateService(a repo.Acquirer, log *slog.Logger, opts ...Option) *RateService {
	if log == nil {
		log = slog.Default()
	}
	s := &RateService{acquirer: a, log: log.With("component", "rate_service")}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rates validates q and returns one DailyRate per day in [DateFrom, DateTo].
//
// Errors are always one of: *domain.InvalidDateError, domain.ErrInvalidRange,
// *domain.UnknownLocationError, or an error wrapping domain.ErrDataAccess.
// No partial result is ever returned alongside an error.
func (s *RateService) Rates(ctx context.Context, q domain.RateQuery) ([]domain.DailyRate, error) {
	queryID := uuid.New()
	log := s.log.With("query_id", queryID.String())

	// Date checks need no connection, so they run before one is acquired.
	from, err := rates.ParseDay(q.DateFrom)
	if err != nil {
		log.WarnContext(ctx, "invalid date_from", "value", q.DateFrom)
		return nil, err
	}
	to, err := rates.ParseDay(q.DateTo)
	if err != nil {
		log.WarnContext(ctx, "invalid date_to", "value", q.DateTo)
		return nil, err
	}
	if err := rates.CheckSpan(from, to, s.maxRangeDays); err != nil {
		log.WarnContext(ctx, "date range too long", "date_from", q.DateFrom, "date_to", q.DateTo)
		return nil, err
	}
	days, err := rates.DaySeries(from, to)
	if err != nil {
		log.WarnContext(ctx, "inverted date range", "date_from", q.DateFrom, "date_to", q.DateTo)
		return nil, err
	}

	sess, err := s.acquirer.Acquire(ctx)
	if err != nil {
		return nil, s.dataAccess(ctx, log, "acquire connection", err)
	}
	defer sess.Release()

	origins, err := s.resolve(ctx, log, sess.Locations, "origin", q.Origin)
	if err != nil {
		return nil, err
	}
	destinations, err := s.resolve(ctx, log, sess.Locations, "destination", q.Destination)
	if err != nil {
		return nil, err
	}

	prices, err := sess.Prices.ListForLanes(ctx, repo.PriceFilter{
		Origins:      origins,
		Destinations: destinations,
		From:         from,
		To:           to,
	})
	if err != nil {
		return nil, s.dataAccess(ctx, log, "list prices", err)
	}

	result := rates.Aggregate(days, prices)

	log.DebugContext(ctx, "rates computed",
		"origin", q.Origin,
		"destination", q.Destination,
		"origin_ports", len(origins),
		"destination_ports", len(destinations),
		"samples", len(prices),
		"days", len(result),
		"suppressed_days", rates.Suppressed(result),
	)
	return result, nil
}

// resolve checks that id names a known port or region and expands it into the
// set of port codes it stands for.
// field ("origin" or "destination") is carried into UnknownLocationError.
func (s *RateService) resolve(ctx context.Context, log *slog.Logger, locs repo.LocationRepo, field, id string) ([]string, error) {
	kind, err := locs.Lookup(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		log.WarnContext(ctx, "unknown location", "field", field, "value", id)
		return nil, &domain.UnknownLocationError{Field: field, Value: id}
	}
	if err != nil {
		return nil, s.dataAccess(ctx, log, "lookup "+field, err)
	}

	if kind == domain.LocationPort {
		return []string{id}, nil
	}

	regions, err := locs.Regions(ctx)
	if err != nil {
		return nil, s.dataAccess(ctx, log, "load regions", err)
	}
	closure := rates.RegionClosure(id, regions)
	if len(closure.Revisits) > 0 {
		log.WarnContext(ctx, "cyclic region hierarchy", "root", id, "revisited", closure.Revisits)
	}

	ports, err := locs.PortsInRegions(ctx, closure.Slugs)
	if err != nil {
		return nil, s.dataAccess(ctx, log, "list ports in regions", err)
	}
	return ports, nil
}

// dataAccess logs the full storage error and returns it wrapped in
// domain.ErrDataAccess. A cancelled or expired ctx is logged at INFO: the
// client went away, nothing is wrong with the database.
func (s *RateService) dataAccess(ctx context.Context, log *slog.Logger, op string, err error) error {
	level := slog.LevelError
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		level = slog.LevelInfo
	}
	log.Log(ctx, level, "data access failed", "op", op, "error", err)
	return fmt.Errorf("service.RateService.Rates: %s: %w: %w", op, domain.ErrDataAccess, err)
}
