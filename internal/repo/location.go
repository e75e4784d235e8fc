// Package repo contains all database access logic for the freight rates API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/freight-rates/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, *pgxpool.Conn, and pgx.Tx.
// Production code passes a single acquired *pgxpool.Conn per request; integration
// tests pass a transaction that is rolled back after each test.
type db interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// LocationRepo reads the port and region hierarchy.
type LocationRepo interface {
	// Lookup reports whether id is a port code or a region slug.
	// Port codes take precedence when a value matches both.
	// Returns domain.ErrNotFound if id matches neither.
	Lookup(ctx context.Context, id string) (domain.LocationKind, error)

	// Regions returns every region, ordered by slug.
	Regions(ctx context.Context) ([]domain.Region, error)

	// PortsInRegions returns the codes of all ports whose parent region is one
	// of slugs, ordered by code.
	PortsInRegions(ctx context.Context, slugs []string) ([]string, error)
}

// pgLocationRepo is the Postgres implementation of LocationRepo.
type pgLocationRepo struct {
	db db
}

// NewLocationRepo constructs a LocationRepo backed by the provided db connection.
func NewLocationRepo(db db) LocationRepo {
	return &pgLocationRepo{db: db}
}

// Lookup resolves the kind of a location identifier in a single round trip.
func (r *pgLocationRepo) Lookup(ctx context.Context, id string) (domain.LocationKind, error) {
	const q = `
		SELECT CASE
			WHEN EXISTS (SELECT 1 FROM ports   WHERE code = @id) THEN 'port'
			WHEN EXISTS (SELECT 1 FROM regions WHERE slug = @id) THEN 'region'
		END`

	var kind *string
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&kind); err != nil {
		return "", fmt.Errorf("repo.LocationRepo.Lookup: %w", err)
	}
	if kind == nil {
		return "", fmt.Errorf("repo.LocationRepo.Lookup: %w", domain.ErrNotFound)
	}
	return domain.LocationKind(*kind), nil
}

// Regions loads the whole region forest. The table is small (hundreds of rows),
// so the closure walk is done in Go rather than with a recursive CTE.
func (r *pgLocationRepo) Regions(ctx context.Context) ([]domain.Region, error) {
	const q = `
		SELECT slug, name, COALESCE(parent_slug, '')
		FROM regions
		ORDER BY slug`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.LocationRepo.Regions: %w", err)
	}
	defer rows.Close()

	regions := []domain.Region{}
	for rows.Next() {
		var reg domain.Region
		if err := rows.Scan(&reg.Slug, &reg.Name, &reg.ParentSlug); err != nil {
			return nil, fmt.Errorf("repo.LocationRepo.Regions: scan: %w", err)
		}
		regions = append(regions, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.LocationRepo.Regions: rows: %w", err)
	}
	return regions, nil
}

// PortsInRegions returns the codes of ports directly under any of slugs.
func (r *pgLocationRepo) PortsInRegions(ctx context.Context, slugs []string) ([]string, error) {
	if len(slugs) == 0 {
		return []string{}, nil
	}

	const q = `
		SELECT code
		FROM ports
		WHERE parent_slug = ANY(@slugs)
		ORDER BY code`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"slugs": slugs})
	if err != nil {
		return nil, fmt.Errorf("repo.LocationRepo.PortsInRegions: %w", err)
	}

	codes, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("repo.LocationRepo.PortsInRegions: scan: %w", err)
	}
	return codes, nil
}
