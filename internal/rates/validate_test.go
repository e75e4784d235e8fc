package rates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/freight-rates/backend/internal/domain"
	"github.com/pkordes/freight-rates/backend/internal/rates"
)

func TestParseDay_Valid(t *testing.T) {
	got, err := rates.ParseDay("2024-02-29") // leap day

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDay_Invalid(t *testing.T) {
	cases := map[string]string{
		"impossible day":     "2024-02-30",
		"day 31 in april":    "2024-04-31",
		"month 13":           "2024-13-01",
		"non-leap feb 29":    "2023-02-29",
		"single digit month": "2024-1-01",
		"two digit year":     "24-01-01",
		"slashes":            "2024/01/01",
		"trailing time":      "2024-01-01T00:00:00Z",
		"empty":              "",
		"words":              "yesterday",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := rates.ParseDay(input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidDate)

			var dateErr *domain.InvalidDateError
			require.ErrorAs(t, err, &dateErr)
			assert.Equal(t, input, dateErr.Value, "error should carry the offending string")
		})
	}
}
