package analytics

import (
	"math"
	"time"

	"finchart/errors"
	"finchart/internal/options"
	"finchart/internal/stats"
	"finchart/timeseries"
)

// SummaryOptions configures Summarize.
type SummaryOptions struct {
	AnnualizationFactor float64 `default:"252" validate:"gt=0"`
}

// Summary condenses a whole equity curve into headline performance figures.
// Figures that cannot be computed from the given history are NaN.
type Summary struct {
	TotalReturn          float64
	CAGR                 float64
	AnnualizedVolatility float64
	SharpeRatio          float64
	MaxDrawdown          float64
	MaxDrawdownTime      time.Time
	CalmarRatio          float64
	Observations         int
}

// Summarize computes the performance summary of an equity curve. The curve
// must satisfy the same preconditions as Drawdown: non-empty, positive,
// no missing values.
func Summarize(equity *timeseries.Series, opts SummaryOptions) (Summary, error) {
	if err := options.Apply(&opts); err != nil {
		return Summary{}, err
	}
	if equity.Len() < 2 {
		return Summary{}, errors.NewInvalidInput("need at least 2 observations to summarize")
	}

	dd, err := Drawdown(equity)
	if err != nil {
		return Summary{}, err
	}
	maxDD, err := MaxDrawdownOf(dd)
	if err != nil {
		return Summary{}, err
	}
	returns, err := equity.SimpleReturns()
	if err != nil {
		return Summary{}, err
	}

	first, last := equity.Values[0], equity.Values[equity.Len()-1]
	s := Summary{
		TotalReturn:     last/first - 1,
		CAGR:            math.NaN(),
		MaxDrawdown:     maxDD.Depth,
		MaxDrawdownTime: maxDD.Time,
		CalmarRatio:     math.NaN(),
		Observations:    equity.Len(),
	}

	years := equity.Times[equity.Len()-1].Sub(equity.Times[0]).Hours() / 24 / 365.25
	if years > 0 {
		s.CAGR = math.Pow(last/first, 1/years) - 1
	}

	sd := stats.StdDev(returns.Values)
	scale := math.Sqrt(opts.AnnualizationFactor)
	s.AnnualizedVolatility = sd * scale
	if !math.IsNaN(sd) && sd != 0 {
		s.SharpeRatio = stats.Mean(returns.Values) / sd * scale
	} else {
		s.SharpeRatio = math.NaN()
	}

	if maxDD.Depth < 0 && !math.IsNaN(s.CAGR) {
		s.CalmarRatio = s.CAGR / -maxDD.Depth
	}
	return s, nil
}
