package analytics

import (
	"fmt"
	"math"
	"time"

	"finchart/errors"
	"finchart/timeseries"
)

// Drawdown converts an equity curve into its drawdown-from-peak series:
// (equity - runningMax) / runningMax. Every output value is <= 0 and the
// first is exactly 0. The input must be non-empty with strictly positive,
// non-missing values.
func Drawdown(equity *timeseries.Series) (*timeseries.Series, error) {
	if equity.Len() == 0 {
		return nil, errors.NewInvalidInput("drawdown of an empty series")
	}
	out := make([]float64, equity.Len())
	peak := math.Inf(-1)
	for i, v := range equity.Values {
		if math.IsNaN(v) {
			return nil, errors.NewInvalidInput(fmt.Sprintf("missing equity value at index %d", i))
		}
		if v <= 0 {
			return nil, errors.NewInvalidInput(fmt.Sprintf("non-positive equity value %g at index %d", v, i))
		}
		if v > peak {
			peak = v
		}
		out[i] = (v - peak) / peak
	}
	return equity.WithValues(out)
}

// MaxDrawdownStat locates the deepest point of a drawdown series.
type MaxDrawdownStat struct {
	Depth float64
	Index int
	Time  time.Time
}

// MaxDrawdownOf returns the deepest drawdown. Ties resolve to the first
// index reaching the minimum.
func MaxDrawdownOf(dd *timeseries.Series) (MaxDrawdownStat, error) {
	if dd.Len() == 0 {
		return MaxDrawdownStat{}, errors.NewInvalidInput("max drawdown of an empty series")
	}
	stat := MaxDrawdownStat{Depth: dd.Values[0], Index: 0, Time: dd.Times[0]}
	for i := 1; i < dd.Len(); i++ {
		if dd.Values[i] < stat.Depth {
			stat = MaxDrawdownStat{Depth: dd.Values[i], Index: i, Time: dd.Times[i]}
		}
	}
	return stat, nil
}
