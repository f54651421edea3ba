// Package analytics implements the numeric transforms of the library: the
// drawdown engine, rolling-window statistics, the correlation matrix
// builder and the calendar aggregator, plus a whole-curve performance
// summary.
//
// # Conventions
//
// Every transform is a pure, synchronous function over immutable inputs: it
// reads the series or table it is given, allocates fresh output slices and
// never retains or mutates its arguments. Re-running a transform on the same
// input yields bit-identical output.
//
// Missing observations are NaN. Rolling outputs keep the length of their
// input with the first window-1 positions NaN (right-aligned windows).
// Statistics that cannot be computed (too few valid observations, zero
// variance) are NaN, never zero.
//
// Errors follow the library-wide kinds: a window outside [1, len] is
// INVALID_WINDOW, bad data (empty series, non-positive equity, mismatched
// lengths) is INVALID_INPUT and an unknown correlation method is
// UNSUPPORTED_OPTION. A failed transform returns no partial result.
package analytics
