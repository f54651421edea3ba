package dashboard

import (
	"fmt"
	"log/slog"
	"math"

	"finchart/analytics"
	"finchart/errors"
	"finchart/internal/options"
	"finchart/layout"
	"finchart/timeseries"
)

// Panel kinds the facade emits. The rendering layer dispatches on these.
const (
	KindEquity       = "equity"
	KindDrawdown     = "drawdown"
	KindDistribution = "distribution"
	KindMonthly      = "monthly-returns"
	KindPrice        = "price"
	KindIndicator    = "indicator"
	KindHeatmap      = "heatmap"
	KindComparison   = "comparison"
)

// Facade orchestrates the analytics engines and the layout composer into
// the compositions consumed by the rendering layer.
type Facade struct {
	logger   *slog.Logger
	composer *layout.Composer
	matrix   *analytics.MatrixBuilder
}

// New creates a facade. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Facade {
	if logger == nil {
		logger = slog.Default()
	}
	return &Facade{
		logger:   logger,
		composer: layout.NewComposer(logger),
		matrix:   analytics.NewMatrixBuilder(logger),
	}
}

// EquityCurveOptions configures EquityCurveWithDrawdown.
type EquityCurveOptions struct {
	// DisableDrawdown omits the drawdown panel entirely; the equity panel
	// then fills the layout alone.
	DisableDrawdown bool
}

// EquityCurveWithDrawdown composes an equity curve over its drawdown panel
// with weights 0.7/0.3.
func (f *Facade) EquityCurveWithDrawdown(in Input, opts EquityCurveOptions) (*layout.Node, error) {
	res, err := in.resolve()
	if err != nil {
		return nil, fmt.Errorf("resolve input: %w", err)
	}

	equityPanel := layout.NewPanel(KindEquity, "Equity Curve", layout.RolePanel, res.equity)
	if opts.DisableDrawdown {
		return f.composer.EquityWithDrawdown(equityPanel, nil)
	}

	dd, err := analytics.Drawdown(res.equity)
	if err != nil {
		return nil, fmt.Errorf("compute drawdown: %w", err)
	}
	ddPanel := layout.NewPanel(KindDrawdown, "Drawdown", layout.RolePanel, dd)
	return f.composer.EquityWithDrawdown(equityPanel, &ddPanel)
}

// DashboardOptions configures StrategyDashboard and BacktestReport.
type DashboardOptions struct {
	// MonthlyThreshold is the equity-history length above which the
	// monthly-returns panel is included.
	MonthlyThreshold int `default:"30" validate:"gt=0"`
	// AnnualizationFactor scales per-period statistics to annual terms.
	AnnualizationFactor float64 `default:"252" validate:"gt=0"`
}

// ReturnsDistribution is the distribution panel's payload: the return
// series together with the annualized headline figures the renderer shows
// alongside the histogram.
type ReturnsDistribution struct {
	Returns              *timeseries.Series
	AnnualizedVolatility float64
	SharpeRatio          float64
}

// StrategyDashboard composes the standard strategy dashboard from an equity
// input: equity curve, returns distribution, drawdown and, given more than
// MonthlyThreshold observations, monthly returns.
func (f *Facade) StrategyDashboard(in Input, opts DashboardOptions) (*layout.Node, error) {
	if err := options.Apply(&opts); err != nil {
		return nil, err
	}
	res, err := in.resolve()
	if err != nil {
		return nil, fmt.Errorf("resolve input: %w", err)
	}

	dd, err := analytics.Drawdown(res.equity)
	if err != nil {
		return nil, fmt.Errorf("compute drawdown: %w", err)
	}
	returns, err := res.returnsOrDerived()
	if err != nil {
		return nil, fmt.Errorf("derive returns: %w", err)
	}
	summary, err := analytics.Summarize(res.equity, analytics.SummaryOptions{
		AnnualizationFactor: opts.AnnualizationFactor,
	})
	if err != nil {
		return nil, fmt.Errorf("summarize equity: %w", err)
	}
	dist := ReturnsDistribution{
		Returns:              returns,
		AnnualizedVolatility: summary.AnnualizedVolatility,
		SharpeRatio:          summary.SharpeRatio,
	}

	panels := layout.DashboardPanels{
		Equity:       layout.NewPanel(KindEquity, "Equity Curve", layout.RolePanel, res.equity),
		Distribution: layout.NewPanel(KindDistribution, "Returns Distribution", layout.RolePanel, dist),
		Drawdown:     layout.NewPanel(KindDrawdown, "Drawdown", layout.RolePanel, dd),
	}
	if res.equity.Len() > opts.MonthlyThreshold {
		buckets, err := analytics.MonthlyReturns(res.equity)
		if err != nil {
			return nil, fmt.Errorf("compute monthly returns: %w", err)
		}
		monthly := layout.NewPanel(KindMonthly, "Monthly Returns", layout.RolePanel, buckets)
		panels.Monthly = &monthly
	}

	f.logger.Info("composing strategy dashboard",
		"observations", res.equity.Len(),
		"monthly_included", panels.Monthly != nil,
	)
	return f.composer.StrategyDashboard(panels, layout.DashboardRules{
		EquityObservations: res.equity.Len(),
		MonthlyThreshold:   opts.MonthlyThreshold,
	})
}

// Indicator is one computed indicator series for a multi-indicator chart.
// Overlay indicators draw on the price panel's axes; the rest get their own
// panel below it.
type Indicator struct {
	Name    string
	Series  *timeseries.Series
	Overlay bool
}

// MultiIndicatorChart lays a price series and its indicators out as one
// composition: overlays on the price panel, panel indicators stacked below
// with equal shares of half the height.
func (f *Facade) MultiIndicatorChart(price *timeseries.Series, indicators []Indicator) (*layout.Node, error) {
	if price == nil || price.Len() == 0 {
		return nil, errors.NewInvalidInput("multi-indicator chart needs a non-empty price series")
	}

	pricePanel := layout.NewPanel(KindPrice, "Price", layout.RolePanel, price)
	panels := make([]layout.Panel, 0, len(indicators))
	for _, ind := range indicators {
		if ind.Series == nil {
			return nil, errors.NewInvalidInput(fmt.Sprintf("indicator %q has no series", ind.Name))
		}
		role := layout.RolePanel
		if ind.Overlay {
			role = layout.RoleOverlay
		}
		panels = append(panels, layout.NewPanel(KindIndicator, ind.Name, role, ind.Series))
	}
	return f.composer.MultiIndicator(pricePanel, panels)
}

// NamedInput labels one input of a performance comparison.
type NamedInput struct {
	Name  string
	Input Input
}

// ComparisonOptions configures PerformanceComparison.
type ComparisonOptions struct {
	// Normalize rebases every curve to 1.0 at its first valid observation
	// so that differently sized portfolios compare on one axis.
	Normalize bool
}

// PerformanceComparison aligns the equity curves of several inputs on one
// shared time axis and emits them as a single comparison panel.
func (f *Facade) PerformanceComparison(inputs []NamedInput, opts ComparisonOptions) (*layout.Node, error) {
	if len(inputs) < 2 {
		return nil, errors.NewInvalidInput("performance comparison needs at least 2 inputs")
	}

	names := make([]string, len(inputs))
	curves := make([]*timeseries.Series, len(inputs))
	for i, ni := range inputs {
		res, err := ni.Input.resolve()
		if err != nil {
			return nil, fmt.Errorf("resolve input %q: %w", ni.Name, err)
		}
		curve := res.equity
		if opts.Normalize {
			curve, err = rebase(curve)
			if err != nil {
				return nil, fmt.Errorf("normalize %q: %w", ni.Name, err)
			}
		}
		names[i] = ni.Name
		curves[i] = curve
	}

	aligned, err := timeseries.MergeAligned(names, curves)
	if err != nil {
		return nil, fmt.Errorf("align curves: %w", err)
	}
	f.logger.Info("composed performance comparison",
		"curves", len(inputs),
		"normalized", opts.Normalize,
	)
	return layout.Leaf(layout.NewPanel(KindComparison, "Performance Comparison", layout.RolePanel, aligned)), nil
}

// CorrelationHeatmap builds the correlation matrix of a table and emits it
// as a single heatmap panel.
func (f *Facade) CorrelationHeatmap(tbl *timeseries.Table, opts analytics.MatrixOptions) (*layout.Node, error) {
	cells, err := f.matrix.Build(tbl, opts)
	if err != nil {
		return nil, fmt.Errorf("build correlation matrix: %w", err)
	}
	return layout.Leaf(layout.NewPanel(KindHeatmap, "Correlation", layout.RolePanel, cells)), nil
}

// BacktestReport composes a strategy dashboard and prepends the traded
// price series above it with weights 0.3/0.7.
func (f *Facade) BacktestReport(price *timeseries.Series, in Input, opts DashboardOptions) (*layout.Node, error) {
	if price == nil || price.Len() == 0 {
		return nil, errors.NewInvalidInput("backtest report needs a non-empty price series")
	}
	body, err := f.StrategyDashboard(in, opts)
	if err != nil {
		return nil, err
	}
	pricePanel := layout.NewPanel(KindPrice, "Price", layout.RolePanel, price)
	return f.composer.BacktestReport(pricePanel, body)
}

// Summary computes the headline performance figures of an input's equity
// curve.
func (f *Facade) Summary(in Input, opts analytics.SummaryOptions) (analytics.Summary, error) {
	res, err := in.resolve()
	if err != nil {
		return analytics.Summary{}, fmt.Errorf("resolve input: %w", err)
	}
	return analytics.Summarize(res.equity, opts)
}

// rebase scales a curve so its first valid observation is exactly 1.
func rebase(s *timeseries.Series) (*timeseries.Series, error) {
	base := math.NaN()
	for i := 0; i < s.Len(); i++ {
		if !s.IsMissing(i) {
			base = s.Values[i]
			break
		}
	}
	if math.IsNaN(base) || base <= 0 {
		return nil, errors.NewInvalidInput("no positive observation to rebase on")
	}
	out := make([]float64, s.Len())
	for i, v := range s.Values {
		out[i] = v / base
	}
	return s.WithValues(out)
}
