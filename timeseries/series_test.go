package timeseries

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finchart/errors"
)

// days returns n consecutive daily timestamps starting at 2024-01-01 UTC.
func days(n int) []time.Time {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

func TestNewSeries(t *testing.T) {
	tests := []struct {
		name     string
		times    []time.Time
		values   []float64
		wantKind errors.Kind
	}{
		{
			name:   "valid series",
			times:  days(3),
			values: []float64{100, 101, 102},
		},
		{
			name:   "empty series constructs",
			times:  nil,
			values: nil,
		},
		{
			name:   "repeated timestamps allowed",
			times:  []time.Time{days(1)[0], days(1)[0]},
			values: []float64{1, 2},
		},
		{
			name:     "length mismatch",
			times:    days(3),
			values:   []float64{100, 101},
			wantKind: errors.KindInvalidInput,
		},
		{
			name:     "decreasing timestamps",
			times:    []time.Time{days(2)[1], days(2)[0]},
			values:   []float64{1, 2},
			wantKind: errors.KindInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSeries(tt.times, tt.values)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, errors.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.values), s.Len())
		})
	}
}

func TestSeries_IsMissing(t *testing.T) {
	s, err := NewSeries(days(3), []float64{1, math.NaN(), 3})
	require.NoError(t, err)

	assert.False(t, s.IsMissing(0))
	assert.True(t, s.IsMissing(1))
	assert.False(t, s.IsMissing(2))
}

func TestSeries_WithValues(t *testing.T) {
	s, err := NewSeries(days(3), []float64{1, 2, 3})
	require.NoError(t, err)

	derived, err := s.WithValues([]float64{10, 20, 30})
	require.NoError(t, err)
	assert.Equal(t, s.Times, derived.Times)
	assert.Equal(t, []float64{10, 20, 30}, derived.Values)

	_, err = s.WithValues([]float64{10})
	assert.True(t, errors.IsKind(err, errors.KindInvalidInput))
}

func TestSeries_SimpleReturns(t *testing.T) {
	t.Run("basic returns", func(t *testing.T) {
		s, err := NewSeries(days(4), []float64{100, 110, 99, 99})
		require.NoError(t, err)

		r, err := s.SimpleReturns()
		require.NoError(t, err)
		require.Equal(t, 4, r.Len())

		assert.True(t, math.IsNaN(r.Values[0]))
		assert.InDelta(t, 0.10, r.Values[1], 1e-12)
		assert.InDelta(t, -0.10, r.Values[2], 1e-12)
		assert.InDelta(t, 0.0, r.Values[3], 1e-12)
	})

	t.Run("missing and non-positive values propagate NaN", func(t *testing.T) {
		s, err := NewSeries(days(4), []float64{100, math.NaN(), 0, 50})
		require.NoError(t, err)

		r, err := s.SimpleReturns()
		require.NoError(t, err)

		assert.True(t, math.IsNaN(r.Values[1]))
		assert.True(t, math.IsNaN(r.Values[2]))
		assert.True(t, math.IsNaN(r.Values[3])) // previous value is 0
	})

	t.Run("too short", func(t *testing.T) {
		s, err := NewSeries(days(1), []float64{100})
		require.NoError(t, err)

		_, err = s.SimpleReturns()
		assert.True(t, errors.IsKind(err, errors.KindInvalidInput))
	})
}
