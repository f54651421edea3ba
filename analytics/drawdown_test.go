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

// dailySeries builds a series over consecutive daily timestamps starting at
// 2024-01-01 UTC.
func dailySeries(t *testing.T, values ...float64) *timeseries.Series {
	t.Helper()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	times := make([]time.Time, len(values))
	for i := range times {
		times[i] = start.AddDate(0, 0, i)
	}
	s, err := timeseries.NewSeries(times, values)
	require.NoError(t, err)
	return s
}

func TestDrawdown(t *testing.T) {
	t.Run("reference curve", func(t *testing.T) {
		dd, err := Drawdown(dailySeries(t, 100, 120, 90, 130))
		require.NoError(t, err)

		expected := []float64{0, 0, -0.25, 0}
		require.Equal(t, len(expected), dd.Len())
		for i := range expected {
			assert.InDelta(t, expected[i], dd.Values[i], 1e-12, "index %d", i)
		}
	})

	t.Run("first point is exactly zero", func(t *testing.T) {
		dd, err := Drawdown(dailySeries(t, 42.5, 40, 39))
		require.NoError(t, err)
		assert.Equal(t, 0.0, dd.Values[0])
	})

	t.Run("never positive and zero at new peaks", func(t *testing.T) {
		equity := dailySeries(t, 100, 105, 95, 110, 108, 120, 60)
		dd, err := Drawdown(equity)
		require.NoError(t, err)

		peak := math.Inf(-1)
		for i, v := range equity.Values {
			assert.LessOrEqual(t, dd.Values[i], 0.0, "index %d", i)
			if v > peak {
				peak = v
				assert.Equal(t, 0.0, dd.Values[i], "new peak at index %d", i)
			}
		}
	})

	t.Run("monotone rise stays flat at zero", func(t *testing.T) {
		dd, err := Drawdown(dailySeries(t, 1, 2, 3, 4, 5))
		require.NoError(t, err)
		for i := range dd.Values {
			assert.Equal(t, 0.0, dd.Values[i])
		}
	})

	tests := []struct {
		name   string
		values []float64
	}{
		{"empty series", nil},
		{"zero equity", []float64{100, 0, 90}},
		{"negative equity", []float64{100, -5, 90}},
		{"missing value", []float64{100, math.NaN(), 90}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Drawdown(dailySeries(t, tt.values...))
			require.Error(t, err)
			assert.True(t, errors.IsKind(err, errors.KindInvalidInput))
		})
	}
}

func TestDrawdown_Idempotent(t *testing.T) {
	equity := dailySeries(t, 100, 97.2, 103.4, 99.9, 111)

	first, err := Drawdown(equity)
	require.NoError(t, err)
	second, err := Drawdown(equity)
	require.NoError(t, err)

	assert.Equal(t, first.Values, second.Values)
}

func TestMaxDrawdownOf(t *testing.T) {
	t.Run("stable argmin on ties", func(t *testing.T) {
		// Two equal troughs of -0.25: the first (index 2) must win.
		dd, err := Drawdown(dailySeries(t, 100, 120, 90, 120, 90, 100))
		require.NoError(t, err)

		stat, err := MaxDrawdownOf(dd)
		require.NoError(t, err)
		assert.InDelta(t, -0.25, stat.Depth, 1e-12)
		assert.Equal(t, 2, stat.Index)
		assert.Equal(t, dd.Times[2], stat.Time)
	})

	t.Run("flat curve has zero depth", func(t *testing.T) {
		dd, err := Drawdown(dailySeries(t, 50, 50, 50))
		require.NoError(t, err)

		stat, err := MaxDrawdownOf(dd)
		require.NoError(t, err)
		assert.Equal(t, 0.0, stat.Depth)
		assert.Equal(t, 0, stat.Index)
	})

	t.Run("empty series", func(t *testing.T) {
		_, err := MaxDrawdownOf(dailySeries(t))
		assert.True(t, errors.IsKind(err, errors.KindInvalidInput))
	})
}
