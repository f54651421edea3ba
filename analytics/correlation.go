package analytics

import (
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"finchart/errors"
	"finchart/internal/options"
	"finchart/internal/stats"
	"finchart/timeseries"
)

// Method selects the correlation estimator.
type Method string

const (
	Pearson  Method = "pearson"
	Spearman Method = "spearman"
	Kendall  Method = "kendall"
)

// Cell is one entry of a linearized correlation matrix, ready for heatmap
// consumption.
type Cell struct {
	Row   string
	Col   string
	Value float64
}

// MatrixOptions configures MatrixBuilder.Build.
type MatrixOptions struct {
	// Method is the correlation estimator.
	Method Method `default:"pearson"`
	// SymbolColumn and ValueColumn identify a long-format input; when both
	// are present the table is pivoted to wide before computing.
	SymbolColumn string `default:"symbol"`
	ValueColumn  string `default:"value"`
	// MaxConcurrency bounds how many column pairs compute at once.
	MaxConcurrency int `default:"4" validate:"gte=1"`
}

// MatrixBuilder computes symmetric correlation matrices over the numeric
// columns of a table, using pairwise-complete observations per pair.
type MatrixBuilder struct {
	logger *slog.Logger
}

// NewMatrixBuilder creates a matrix builder. A nil logger falls back to
// slog.Default().
func NewMatrixBuilder(logger *slog.Logger) *MatrixBuilder {
	if logger == nil {
		logger = slog.Default()
	}
	return &MatrixBuilder{logger: logger}
}

// Build computes the correlation matrix of tbl and linearizes it row-major
// into cells, preserving column order on both axes. A long-format table is
// pivoted first; non-numeric columns of a wide table are dropped. The
// diagonal is 1, or NaN for a zero-variance column.
func (b *MatrixBuilder) Build(tbl *timeseries.Table, opts MatrixOptions) ([]Cell, error) {
	if err := options.Apply(&opts); err != nil {
		return nil, err
	}
	corr, err := estimator(opts.Method)
	if err != nil {
		return nil, err
	}

	wide := tbl
	if _, isLong := tbl.TextColumn(opts.SymbolColumn); isLong {
		if _, hasValue := tbl.Column(opts.ValueColumn); hasValue {
			wide, err = timeseries.PivotLong(tbl, opts.SymbolColumn, opts.ValueColumn)
			if err != nil {
				return nil, err
			}
			b.logger.Debug("pivoted long-format table",
				"rows", tbl.Len(),
				"columns", len(wide.NumericColumns()),
			)
		}
	}

	names := wide.NumericColumns()
	n := len(names)
	if n == 0 {
		return nil, errors.NewInvalidInput("no numeric columns to correlate")
	}

	columns := make([][]float64, n)
	for i, name := range names {
		columns[i], _ = wide.Column(name)
	}

	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		sd := stats.StdDev(columns[i])
		if math.IsNaN(sd) || sd == 0 {
			matrix[i][i] = math.NaN()
		} else {
			matrix[i][i] = 1
		}
	}

	// Pairs are independent; each goroutine writes only its own (i, j) and
	// (j, i) slots, and the matrix is read only after Wait returns.
	var g errgroup.Group
	g.SetLimit(opts.MaxConcurrency)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			i, j := i, j
			g.Go(func() error {
				v := corr(columns[i], columns[j])
				matrix[i][j] = v
				matrix[j][i] = v
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cells := make([]Cell, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cells = append(cells, Cell{Row: names[i], Col: names[j], Value: matrix[i][j]})
		}
	}

	b.logger.Debug("correlation matrix built",
		"method", string(opts.Method),
		"columns", n,
		"cells", len(cells),
	)
	return cells, nil
}

func estimator(m Method) (func(x, y []float64) float64, error) {
	switch m {
	case Pearson:
		return stats.Pearson, nil
	case Spearman:
		return stats.Spearman, nil
	case Kendall:
		return stats.KendallTauB, nil
	default:
		return nil, errors.NewUnsupportedOption("correlation method", string(m))
	}
}
