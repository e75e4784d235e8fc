package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/freight-rates/backend/internal/repo"
	"github.com/pkordes/freight-rates/backend/testutil"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPriceRepo_ListForLanes(t *testing.T) {
	tx := testutil.BeginTx(t)
	seedHierarchy(t, tx)

	insertPrice(t, tx, "TLAXX", "TSINX", date(2024, 1, 1), 100)
	insertPrice(t, tx, "TLAXX", "TSINX", date(2024, 1, 1), 100) // duplicate quote
	insertPrice(t, tx, "TOAKX", "TSINX", date(2024, 1, 2), 120)
	insertPrice(t, tx, "TLAXX", "TSINX", date(2024, 1, 3), 999) // outside range
	insertPrice(t, tx, "TSINX", "TLAXX", date(2024, 1, 1), 999) // reverse lane
	insertPrice(t, tx, "TSDGX", "TSINX", date(2024, 1, 1), 999) // origin not in set

	r := repo.NewPriceRepo(tx)
	got, err := r.ListForLanes(context.Background(), repo.PriceFilter{
		Origins:      []string{"TLAXX", "TOAKX"},
		Destinations: []string{"TSINX"},
		From:         date(2024, 1, 1),
		To:           date(2024, 1, 2),
	})

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].Day.Equal(date(2024, 1, 1)))
	assert.True(t, got[1].Day.Equal(date(2024, 1, 1)))
	assert.True(t, got[2].Day.Equal(date(2024, 1, 2)))
	assert.Equal(t, "TOAKX", got[2].OriginCode)
	assert.Equal(t, 120.0, got[2].Value)
}

func TestPriceRepo_ListForLanes_EmptyPortSet(t *testing.T) {
	tx := testutil.BeginTx(t)

	r := repo.NewPriceRepo(tx)
	got, err := r.ListForLanes(context.Background(), repo.PriceFilter{
		Origins:      nil,
		Destinations: []string{"TSINX"},
		From:         date(2024, 1, 1),
		To:           date(2024, 1, 2),
	})

	require.NoError(t, err)
	assert.Empty(t, got)
}
