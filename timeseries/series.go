package timeseries

import (
	"fmt"
	"math"
	"time"

	"finchart/errors"
)

// Series is an ordered sequence of (timestamp, value) observations sharing
// one time axis. Missing values are NaN. Timestamps are non-decreasing.
type Series struct {
	Times  []time.Time
	Values []float64
}

// NewSeries builds a series from parallel timestamp and value slices. The
// slices must have equal length and the timestamps must be non-decreasing.
func NewSeries(times []time.Time, values []float64) (*Series, error) {
	s := &Series{Times: times, Values: values}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.Values)
}

// Validate checks the series invariants: parallel slices of equal length and
// a non-decreasing time axis.
func (s *Series) Validate() error {
	if len(s.Times) != len(s.Values) {
		return errors.NewInvalidInput(
			fmt.Sprintf("series has %d timestamps but %d values", len(s.Times), len(s.Values)))
	}
	for i := 1; i < len(s.Times); i++ {
		if s.Times[i].Before(s.Times[i-1]) {
			return errors.NewInvalidInput(
				fmt.Sprintf("timestamps out of order at index %d: %s before %s",
					i, s.Times[i].Format(time.RFC3339), s.Times[i-1].Format(time.RFC3339)))
		}
	}
	return nil
}

// IsMissing reports whether the observation at index i is missing (NaN).
func (s *Series) IsMissing(i int) bool {
	return math.IsNaN(s.Values[i])
}

// WithValues returns a derived series over the same time axis. The values
// slice must match the series length; the time axis is shared, not copied.
func (s *Series) WithValues(values []float64) (*Series, error) {
	if len(values) != len(s.Times) {
		return nil, errors.NewInvalidInput(
			fmt.Sprintf("derived values length %d does not match axis length %d", len(values), len(s.Times)))
	}
	return &Series{Times: s.Times, Values: values}, nil
}

// SimpleReturns derives the simple-return series of an equity curve:
// r[i] = v[i]/v[i-1] - 1. The first observation is NaN, as is any
// observation whose own or previous value is missing or non-positive.
func (s *Series) SimpleReturns() (*Series, error) {
	if s.Len() < 2 {
		return nil, errors.NewInvalidInput("need at least 2 observations to derive returns")
	}
	out := make([]float64, s.Len())
	out[0] = math.NaN()
	for i := 1; i < s.Len(); i++ {
		prev, cur := s.Values[i-1], s.Values[i]
		if math.IsNaN(prev) || math.IsNaN(cur) || prev <= 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = cur/prev - 1
	}
	return &Series{Times: s.Times, Values: out}, nil
}
