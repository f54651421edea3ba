// Package dashboard is the externally consumed surface of the library: it
// orchestrates the analytics engines and the layout composer into complete
// chart compositions: equity curve with drawdown, strategy dashboard,
// multi-indicator chart, performance comparison, correlation heatmap and
// backtest report.
//
// Inputs arrive as a tagged variant: either a raw table, whose equity and
// returns columns are resolved through the semantic-role resolver, or an
// explicit backtest result that carries its series directly. The variant is
// resolved exactly once at the operation entry point; nothing downstream
// re-checks the input shape.
//
// Every operation returns either a finished layout tree or an error, never
// a partially composed one. A transform that fails yields no panel rather
// than a wrong one.
package dashboard
