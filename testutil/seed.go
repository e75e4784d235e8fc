package testutil

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/freight-rates/backend/internal/domain"
)

// Execer is satisfied by pgx.Tx, *pgxpool.Pool, and *pgxpool.Conn.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// BeginTx opens a transaction on a fresh test pool and rolls it back when the
// test finishes, so every test sees only its own fixtures.
func BeginTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := NewPool(t)

	tx, err := pool.Begin(context.Background())
	if err != nil {
		t.Fatalf("testutil.BeginTx: %v", err)
	}
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })
	return tx
}

// SeedRegions inserts regions in order; parents must come before children.
// An empty ParentSlug is stored as NULL.
func SeedRegions(t *testing.T, ex Execer, regions ...domain.Region) {
	t.Helper()
	for _, r := range regions {
		_, err := ex.Exec(context.Background(),
			`INSERT INTO regions (slug, name, parent_slug) VALUES ($1, $2, NULLIF($3, ''))`,
			r.Slug, r.Name, r.ParentSlug)
		if err != nil {
			t.Fatalf("testutil.SeedRegions: %s: %v", r.Slug, err)
		}
	}
}

// SeedPorts inserts ports. An empty ParentSlug is stored as NULL.
func SeedPorts(t *testing.T, ex Execer, ports ...domain.Port) {
	t.Helper()
	for _, p := range ports {
		_, err := ex.Exec(context.Background(),
			`INSERT INTO ports (code, name, parent_slug) VALUES ($1, $2, NULLIF($3, ''))`,
			p.Code, p.Name, p.ParentSlug)
		if err != nil {
			t.Fatalf("testutil.SeedPorts: %s: %v", p.Code, err)
		}
	}
}

// SeedPrices inserts price samples. Duplicates are allowed by the schema.
func SeedPrices(t *testing.T, ex Execer, prices ...domain.Price) {
	t.Helper()
	for _, p := range prices {
		_, err := ex.Exec(context.Background(),
			`INSERT INTO prices (orig_code, dest_code, day, price) VALUES ($1, $2, $3, $4)`,
			p.OriginCode, p.DestinationCode, p.Day, p.Value)
		if err != nil {
			t.Fatalf("testutil.SeedPrices: %s→%s: %v", p.OriginCode, p.DestinationCode, err)
		}
	}
}
