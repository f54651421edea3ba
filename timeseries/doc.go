// Package timeseries provides the ordered series and table types consumed by
// every finchart transform, together with the semantic-role column resolver.
//
// # Core Types
//
//   - Series: an ordered (timestamp, value) sequence sharing one time axis.
//     Missing observations are IEEE NaN values; timestamps are non-decreasing.
//   - Table: named columns of equal length over a single timestamp axis.
//     Columns are either numeric (float64) or text (string); column order is
//     the insertion order and is preserved by every operation.
//   - Role: a semantic intent (equity, returns, risk) resolved to whichever
//     physically present column matches an ordered candidate list.
//
// # Conventions
//
// All transforms treat their inputs as immutable: a transform never writes
// into a Series or Table it received and always allocates fresh value slices
// for its outputs. Derived series may share the timestamp slice of their
// source; callers must not mutate it.
//
// Resolution is deterministic and total: Resolve either returns exactly one
// present column or reports not-found. It never averages candidates and its
// answer does not depend on table construction order beyond the declared
// candidate priority.
package timeseries
