package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finchart/errors"
	"finchart/timeseries"
)

func seriesAt(t *testing.T, times []time.Time, values []float64) *timeseries.Series {
	t.Helper()
	s, err := timeseries.NewSeries(times, values)
	require.NoError(t, err)
	return s
}

func TestMonthlyReturns(t *testing.T) {
	times := []time.Time{
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
	}
	equity := seriesAt(t, times, []float64{100, 105, 110, 110, 99, 120})

	buckets, err := MonthlyReturns(equity)
	require.NoError(t, err)
	require.Len(t, buckets, 3) // Jan, Feb, Apr; March has no observations.

	jan := buckets[0]
	assert.Equal(t, 2024, jan.Year)
	assert.Equal(t, time.January, jan.Month)
	assert.Equal(t, 100.0, jan.StartValue)
	assert.Equal(t, 110.0, jan.EndValue)
	assert.InDelta(t, 0.10, jan.PeriodReturn, 1e-12)
	assert.Equal(t, 3, jan.Observations)

	feb := buckets[1]
	assert.Equal(t, time.February, feb.Month)
	assert.InDelta(t, -0.10, feb.PeriodReturn, 1e-12)

	apr := buckets[2]
	assert.Equal(t, time.April, apr.Month)
	assert.InDelta(t, 0.0, apr.PeriodReturn, 1e-12)
	assert.Equal(t, 1, apr.Observations)

	t.Run("observation counts sum to input length", func(t *testing.T) {
		total := 0
		for _, b := range buckets {
			total += b.Observations
		}
		assert.Equal(t, equity.Len(), total)
	})
}

func TestMonthlyReturns_YearBoundary(t *testing.T) {
	times := []time.Time{
		time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 12, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	}
	buckets, err := MonthlyReturns(seriesAt(t, times, []float64{100, 102, 104}))
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	assert.Equal(t, 2023, buckets[0].Year)
	assert.Equal(t, time.December, buckets[0].Month)
	assert.Equal(t, 2024, buckets[1].Year)
	assert.Equal(t, time.January, buckets[1].Month)
}

func TestMonthlyReturns_MissingValues(t *testing.T) {
	times := []time.Time{
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
	}
	equity := seriesAt(t, times, []float64{math.NaN(), 100, 105, math.NaN()})

	buckets, err := MonthlyReturns(equity)
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	// May: first and last non-missing observations bound the period.
	assert.Equal(t, 100.0, buckets[0].StartValue)
	assert.Equal(t, 105.0, buckets[0].EndValue)
	assert.InDelta(t, 0.05, buckets[0].PeriodReturn, 1e-12)
	assert.Equal(t, 3, buckets[0].Observations)

	// June has only a missing observation: counted, but return undefined.
	assert.Equal(t, 1, buckets[1].Observations)
	assert.True(t, math.IsNaN(buckets[1].PeriodReturn))
}

func TestMonthlyReturns_Empty(t *testing.T) {
	_, err := MonthlyReturns(seriesAt(t, nil, nil))
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindInvalidInput))
}
