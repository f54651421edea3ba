package dashboard

import (
	"finchart/errors"
	"finchart/timeseries"
)

// BacktestResult is the explicit input variant for callers that already
// hold their curves: an equity series and, optionally, a matching return
// series. Returns are derived from equity when absent.
type BacktestResult struct {
	Equity  *timeseries.Series
	Returns *timeseries.Series
}

// Input is the tagged-variant input of every facade operation: either a raw
// table resolved through semantic roles, or a backtest result consumed
// as-is. The variant is inspected exactly once, at the operation entry.
type Input struct {
	table    *timeseries.Table
	backtest *BacktestResult
}

// FromTable wraps a raw table as facade input.
func FromTable(t *timeseries.Table) Input {
	return Input{table: t}
}

// FromBacktest wraps a backtest result as facade input.
func FromBacktest(r *BacktestResult) Input {
	return Input{backtest: r}
}

// resolved is what remains of an Input after the one-time variant
// resolution: the equity curve, and the return series when the input
// carried one.
type resolved struct {
	equity  *timeseries.Series
	returns *timeseries.Series
}

func (in Input) resolve() (*resolved, error) {
	switch {
	case in.backtest != nil:
		if in.backtest.Equity == nil || in.backtest.Equity.Len() == 0 {
			return nil, errors.NewInvalidInput("backtest result has no equity series")
		}
		return &resolved{equity: in.backtest.Equity, returns: in.backtest.Returns}, nil

	case in.table != nil:
		equity, err := timeseries.ResolveSeries(in.table, timeseries.RoleEquity)
		if err != nil {
			return nil, err
		}
		res := &resolved{equity: equity}
		if name, ok := timeseries.Resolve(in.table, timeseries.RoleReturns); ok {
			res.returns, err = in.table.Series(name)
			if err != nil {
				return nil, err
			}
		}
		return res, nil

	default:
		return nil, errors.NewInvalidInput("empty input: no table and no backtest result")
	}
}

// returnsOrDerived yields the input's return series, deriving simple
// returns from the equity curve when none was provided.
func (r *resolved) returnsOrDerived() (*timeseries.Series, error) {
	if r.returns != nil {
		return r.returns, nil
	}
	return r.equity.SimpleReturns()
}
