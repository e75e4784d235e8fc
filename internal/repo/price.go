package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/freight-rates/backend/internal/domain"
)

// PriceFilter selects the prices of every lane between an origin port set and
// a destination port set within an inclusive day range.
type PriceFilter struct {
	Origins      []string
	Destinations []string
	From         time.Time
	To           time.Time
}

// PriceRepo reads price samples.
type PriceRepo interface {
	// ListForLanes returns every price matching f, ordered by day.
	// Duplicate quotes for the same lane and day are all returned.
	// An empty origin or destination set yields no rows.
	ListForLanes(ctx context.Context, f PriceFilter) ([]domain.Price, error)
}

// pgPriceRepo is the Postgres implementation of PriceRepo.
type pgPriceRepo struct {
	db db
}

// NewPriceRepo constructs a PriceRepo backed by the provided db connection.
func NewPriceRepo(db db) PriceRepo {
	return &pgPriceRepo{db: db}
}

// ListForLanes filters prices by lane and day range in one query.
// The (orig_code, dest_code, day) index serves the ANY/BETWEEN predicates.
func (r *pgPriceRepo) ListForLanes(ctx context.Context, f PriceFilter) ([]domain.Price, error) {
	if len(f.Origins) == 0 || len(f.Destinations) == 0 {
		return []domain.Price{}, nil
	}

	const q = `
		SELECT orig_code, dest_code, day, price::float8
		FROM prices
		WHERE orig_code = ANY(@origins)
		  AND dest_code = ANY(@destinations)
		  AND day BETWEEN @date_from AND @date_to
		ORDER BY day`

	args := pgx.NamedArgs{
		"origins":      f.Origins,
		"destinations": f.Destinations,
		"date_from":    pgtype.Date{Time: f.From, Valid: true},
		"date_to":      pgtype.Date{Time: f.To, Valid: true},
	}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.PriceRepo.ListForLanes: %w", err)
	}
	defer rows.Close()

	prices := []domain.Price{}
	for rows.Next() {
		p, err := scanPrice(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PriceRepo.ListForLanes: scan: %w", err)
		}
		prices = append(prices, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PriceRepo.ListForLanes: rows: %w", err)
	}
	return prices, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanPrice maps a single database row into a domain.Price.
func scanPrice(s scanner) (domain.Price, error) {
	var (
		p   domain.Price
		day pgtype.Date
	)
	if err := s.Scan(&p.OriginCode, &p.DestinationCode, &day, &p.Value); err != nil {
		return domain.Price{}, err
	}
	p.Day = day.Time
	return p, nil
}
