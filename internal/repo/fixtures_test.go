package repo_test

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/freight-rates/backend/internal/domain"
	"github.com/pkordes/freight-rates/backend/testutil"
)

// seedHierarchy inserts a small region forest with ports:
//
//	t-west-coast
//	└── t-ca-ports   (TLAXX, TOAKX)
//	    └── t-socal  (TSDGX)
//	t-asia           (TSINX)
//
// Slugs and codes carry a "t" prefix so they cannot collide with real data
// that may already live in the test database.
func seedHierarchy(t *testing.T, tx pgx.Tx) {
	t.Helper()
	testutil.SeedRegions(t, tx,
		domain.Region{Slug: "t-west-coast", Name: "West Coast"},
		domain.Region{Slug: "t-ca-ports", Name: "California", ParentSlug: "t-west-coast"},
		domain.Region{Slug: "t-socal", Name: "Southern California", ParentSlug: "t-ca-ports"},
		domain.Region{Slug: "t-asia", Name: "Asia"},
	)
	testutil.SeedPorts(t, tx,
		domain.Port{Code: "TLAXX", Name: "Los Angeles", ParentSlug: "t-ca-ports"},
		domain.Port{Code: "TOAKX", Name: "Oakland", ParentSlug: "t-ca-ports"},
		domain.Port{Code: "TSDGX", Name: "San Diego", ParentSlug: "t-socal"},
		domain.Port{Code: "TSINX", Name: "Singapore", ParentSlug: "t-asia"},
	)
}

func insertPrice(t *testing.T, tx pgx.Tx, orig, dest string, day time.Time, price float64) {
	t.Helper()
	testutil.SeedPrices(t, tx, domain.Price{OriginCode: orig, DestinationCode: dest, Day: day, Value: price})
}
