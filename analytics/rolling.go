package analytics

import (
	"math"

	"finchart/errors"
	"finchart/internal/options"
	"finchart/internal/stats"
	"finchart/timeseries"
)

// DefaultAnnualizationFactor is the trading-days-per-year policy constant
// used when annualizing per-period statistics.
const DefaultAnnualizationFactor = 252.0

// checkWindow validates a rolling window against a series length.
func checkWindow(window, length int) error {
	if window <= 0 || window > length {
		return errors.NewInvalidWindow(window, length)
	}
	return nil
}

// rollingApply computes a right-aligned rolling statistic: position i of the
// output summarizes input[i-window+1 .. i] and the first window-1 positions
// are NaN.
func rollingApply(s *timeseries.Series, window int, fn func([]float64) float64) (*timeseries.Series, error) {
	if err := checkWindow(window, s.Len()); err != nil {
		return nil, err
	}
	out := make([]float64, s.Len())
	for i := range out {
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		out[i] = fn(s.Values[i-window+1 : i+1])
	}
	return s.WithValues(out)
}

// RollingMean computes the rolling arithmetic mean. Missing values inside a
// window are skipped; a window with no valid values yields NaN.
func RollingMean(s *timeseries.Series, window int) (*timeseries.Series, error) {
	return rollingApply(s, window, stats.Mean)
}

// RollingStd computes the rolling sample standard deviation. A window with
// fewer than two valid values yields NaN.
func RollingStd(s *timeseries.Series, window int) (*timeseries.Series, error) {
	return rollingApply(s, window, stats.StdDev)
}

// SharpeOptions configures RollingSharpe. The window is validated against
// the series length, not here, so that any out-of-range value reports as an
// invalid window.
type SharpeOptions struct {
	Window              int
	AnnualizationFactor float64 `default:"252" validate:"gt=0"`
}

// RollingSharpe computes the rolling annualized Sharpe ratio of a return
// series: rollingMean / rollingStd * sqrt(annualizationFactor). Windows
// whose deviation is zero or undefined yield NaN.
func RollingSharpe(returns *timeseries.Series, opts SharpeOptions) (*timeseries.Series, error) {
	if err := options.Apply(&opts); err != nil {
		return nil, err
	}
	scale := math.Sqrt(opts.AnnualizationFactor)
	return rollingApply(returns, opts.Window, func(window []float64) float64 {
		sd := stats.StdDev(window)
		if math.IsNaN(sd) || sd == 0 {
			return math.NaN()
		}
		return stats.Mean(window) / sd * scale
	})
}

// RollingCorrelation computes the rolling pairwise-complete Pearson
// correlation of two series of equal length. Windows with fewer than two
// complete pairs yield NaN.
func RollingCorrelation(a, b *timeseries.Series, window int) (*timeseries.Series, error) {
	if a.Len() != b.Len() {
		return nil, errors.NewInvalidInput("series lengths differ for rolling correlation")
	}
	if err := checkWindow(window, a.Len()); err != nil {
		return nil, err
	}
	out := make([]float64, a.Len())
	for i := range out {
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		out[i] = stats.Pearson(a.Values[i-window+1:i+1], b.Values[i-window+1:i+1])
	}
	return a.WithValues(out)
}
