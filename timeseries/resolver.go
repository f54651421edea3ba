package timeseries

import "finchart/errors"

// Role is a semantic intent resolved against a table's physical columns.
type Role string

const (
	// RoleEquity is a portfolio or account value curve.
	RoleEquity Role = "equity"
	// RoleReturns is a per-period fractional return series.
	RoleReturns Role = "returns"
	// RoleRisk is a risk or volatility measure series.
	RoleRisk Role = "risk"
)

// roleCandidates lists, per role, the column names accepted for that role in
// priority order. First present name wins.
var roleCandidates = map[Role][]string{
	RoleEquity:  {"equity", "value", "portfolio_value", "portfolio_equity", "total_value"},
	RoleReturns: {"returns", "return", "daily_returns", "pct_return", "pnl_pct"},
	RoleRisk:    {"risk", "volatility", "vol", "stddev"},
}

// Candidates returns the ordered candidate column names for a role.
func Candidates(role Role) []string {
	src := roleCandidates[role]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Resolve maps a role to the first candidate column present in the table.
// The second return value is false when no candidate matches. Resolution
// depends only on the candidate priority order, never on table column order.
func Resolve(t *Table, role Role) (string, bool) {
	for _, name := range roleCandidates[role] {
		if _, ok := t.Column(name); ok {
			return name, true
		}
	}
	return "", false
}

// ResolveSeries resolves a role and returns the matched column as a Series.
// A failed resolution is a MissingColumn error; callers must not guess.
func ResolveSeries(t *Table, role Role) (*Series, error) {
	name, ok := Resolve(t, role)
	if !ok {
		return nil, errors.NewMissingColumn(string(role), roleCandidates[role])
	}
	return t.Series(name)
}
