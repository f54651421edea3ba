package layout

import (
	"log/slog"

	"finchart/internal/options"
)

// Relative-size policy of the fixed dashboard shapes.
const (
	equityShare   = 0.7
	drawdownShare = 0.3
	priceShare    = 0.5
	reportTop     = 0.3
	reportBody    = 0.7
)

// DefaultMonthlyThreshold is the minimum equity history, in observations,
// before a monthly-returns panel is meaningful.
const DefaultMonthlyThreshold = 30

// Composer assembles panels into layout trees according to fixed business
// rules. Composition is pure; the logger only reports what was assembled.
type Composer struct {
	logger *slog.Logger
}

// NewComposer creates a composer. A nil logger falls back to slog.Default().
func NewComposer(logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{logger: logger}
}

// EquityWithDrawdown stacks an equity panel over its drawdown panel with
// weights 0.7/0.3. A nil drawdown panel means the caller disabled it: the
// equity panel then fills the layout alone, with no empty slot.
func (c *Composer) EquityWithDrawdown(equity Panel, drawdown *Panel) (*Node, error) {
	if drawdown == nil {
		c.logger.Debug("composed equity layout without drawdown", "equity", equity.Title)
		return Leaf(equity), nil
	}
	return Split(Vertical, []float64{equityShare, drawdownShare}, Leaf(equity), Leaf(*drawdown))
}

// DashboardPanels are the candidate panels of a strategy dashboard.
// Monthly may be nil when the caller computed no monthly returns.
type DashboardPanels struct {
	Equity       Panel
	Distribution Panel
	Drawdown     Panel
	Monthly      *Panel
}

// DashboardRules govern panel availability in a strategy dashboard.
type DashboardRules struct {
	// EquityObservations is the length of the underlying equity history.
	EquityObservations int `validate:"gte=0"`
	// MonthlyThreshold is the observation count above which the
	// monthly-returns panel is included.
	MonthlyThreshold int `default:"30" validate:"gt=0"`
}

// StrategyDashboard composes the standard strategy dashboard. With more
// than MonthlyThreshold equity observations it is a 2x2 grid of
// (equity | distribution) over (drawdown | monthly); with less history the
// monthly panel is dropped entirely and the result is equity over
// (drawdown | distribution).
func (c *Composer) StrategyDashboard(panels DashboardPanels, rules DashboardRules) (*Node, error) {
	if err := options.Apply(&rules); err != nil {
		return nil, err
	}

	withMonthly := panels.Monthly != nil && rules.EquityObservations > rules.MonthlyThreshold
	if !withMonthly {
		if panels.Monthly != nil {
			c.logger.Warn("monthly-returns panel dropped: not enough history",
				"observations", rules.EquityObservations,
				"threshold", rules.MonthlyThreshold,
			)
		}
		bottom, err := Split(Horizontal, []float64{0.5, 0.5},
			Leaf(panels.Drawdown), Leaf(panels.Distribution))
		if err != nil {
			return nil, err
		}
		return Split(Vertical, []float64{0.5, 0.5}, Leaf(panels.Equity), bottom)
	}

	top, err := Split(Horizontal, []float64{0.5, 0.5},
		Leaf(panels.Equity), Leaf(panels.Distribution))
	if err != nil {
		return nil, err
	}
	bottom, err := Split(Horizontal, []float64{0.5, 0.5},
		Leaf(panels.Drawdown), Leaf(*panels.Monthly))
	if err != nil {
		return nil, err
	}
	c.logger.Debug("composed 2x2 strategy dashboard",
		"observations", rules.EquityObservations,
	)
	return Split(Vertical, []float64{0.5, 0.5}, top, bottom)
}

// MultiIndicator lays indicators around a price panel: overlay-role
// indicators are attached to the price panel itself, panel-role indicators
// stack below it, sharing half the height equally while the price panel
// keeps the other half.
func (c *Composer) MultiIndicator(price Panel, indicators []Panel) (*Node, error) {
	var stacked []Panel
	for _, ind := range indicators {
		if ind.Role == RoleOverlay {
			price.Overlays = append(price.Overlays, ind)
			continue
		}
		stacked = append(stacked, ind)
	}

	c.logger.Debug("composed multi-indicator layout",
		"overlays", len(price.Overlays),
		"stacked", len(stacked),
	)
	if len(stacked) == 0 {
		return Leaf(price), nil
	}

	children := make([]*Node, 0, len(stacked)+1)
	weights := make([]float64, 0, len(stacked)+1)
	children = append(children, Leaf(price))
	weights = append(weights, priceShare)
	share := priceShare / float64(len(stacked))
	for _, ind := range stacked {
		children = append(children, Leaf(ind))
		weights = append(weights, share)
	}
	return Split(Vertical, weights, children...)
}

// BacktestReport prepends a standalone price panel above an already
// composed dashboard with weights 0.3/0.7.
func (c *Composer) BacktestReport(price Panel, dashboard *Node) (*Node, error) {
	if err := dashboard.Validate(); err != nil {
		return nil, err
	}
	return Split(Vertical, []float64{reportTop, reportBody}, Leaf(price), dashboard)
}
