package service_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/freight-rates/backend/internal/domain"
	"github.com/pkordes/freight-rates/backend/internal/repo"
	"github.com/pkordes/freight-rates/backend/internal/service"
	"github.com/pkordes/freight-rates/backend/testutil"
)

// txAcquirer serves every session from one rolled-back transaction.
type txAcquirer struct {
	tx pgx.Tx
}

func (a txAcquirer) Acquire(_ context.Context) (*repo.Session, error) {
	return repo.NewSession(repo.NewLocationRepo(a.tx), repo.NewPriceRepo(a.tx), nil), nil
}

// TestRateService_Integration runs the full lookup against Postgres:
//
//	i-west-coast
//	└── i-ca-ports (ILAXX)
//	ISINX has no region.
func TestRateService_Integration(t *testing.T) {
	tx := testutil.BeginTx(t)

	testutil.SeedRegions(t, tx,
		domain.Region{Slug: "i-west-coast", Name: "West Coast"},
		domain.Region{Slug: "i-ca-ports", Name: "California", ParentSlug: "i-west-coast"},
	)
	testutil.SeedPorts(t, tx,
		domain.Port{Code: "ILAXX", Name: "Los Angeles", ParentSlug: "i-ca-ports"},
		domain.Port{Code: "ISINX", Name: "Singapore"},
	)
	for _, v := range []float64{100, 110, 120, 130} {
		testutil.SeedPrices(t, tx, domain.Price{
			OriginCode: "ILAXX", DestinationCode: "ISINX", Day: day(2024, 1, 1), Value: v,
		})
	}
	testutil.SeedPrices(t, tx, domain.Price{
		OriginCode: "ILAXX", DestinationCode: "ISINX", Day: day(2024, 1, 2), Value: 200,
	})

	svc := service.NewRateService(txAcquirer{tx: tx}, nil)

	got, err := svc.Rates(context.Background(), domain.RateQuery{
		DateFrom:    "2024-01-01",
		DateTo:      "2024-01-03",
		Origin:      "i-west-coast",
		Destination: "ISINX",
	})

	require.NoError(t, err)
	require.Len(t, got, 3)
	require.NotNil(t, got[0].AveragePrice)
	assert.Equal(t, 115.0, *got[0].AveragePrice)
	assert.Nil(t, got[1].AveragePrice, "one sample is suppressed")
	assert.Nil(t, got[2].AveragePrice, "no samples is suppressed")

	_, err = svc.Rates(context.Background(), domain.RateQuery{
		DateFrom:    "2024-01-01",
		DateTo:      "2024-01-03",
		Origin:      "ZZZZZ",
		Destination: "ISINX",
	})
	assert.ErrorIs(t, err, domain.ErrUnknownLocation)
}
