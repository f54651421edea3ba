package timeseries

import (
	"fmt"
	"time"

	"finchart/errors"
)

// Table is a set of named columns of equal length sharing one timestamp
// axis. Columns are numeric (float64, NaN for missing) or text (string).
// Column order is insertion order and is preserved everywhere.
type Table struct {
	times   []time.Time
	order   []string
	numeric map[string][]float64
	text    map[string][]string
}

// NewTable creates a table over the given timestamp axis. Timestamps must be
// non-decreasing.
func NewTable(times []time.Time) (*Table, error) {
	for i := 1; i < len(times); i++ {
		if times[i].Before(times[i-1]) {
			return nil, errors.NewInvalidInput(
				fmt.Sprintf("table timestamps out of order at index %d", i))
		}
	}
	return &Table{
		times:   times,
		numeric: make(map[string][]float64),
		text:    make(map[string][]string),
	}, nil
}

// AddColumn adds a numeric column. The name must be unique and the values
// must match the axis length.
func (t *Table) AddColumn(name string, values []float64) error {
	if err := t.checkNewColumn(name, len(values)); err != nil {
		return err
	}
	t.numeric[name] = values
	t.order = append(t.order, name)
	return nil
}

// AddTextColumn adds a text column (e.g. the symbol column of a long-format
// frame). The name must be unique and the values must match the axis length.
func (t *Table) AddTextColumn(name string, values []string) error {
	if err := t.checkNewColumn(name, len(values)); err != nil {
		return err
	}
	t.text[name] = values
	t.order = append(t.order, name)
	return nil
}

func (t *Table) checkNewColumn(name string, n int) error {
	if name == "" {
		return errors.NewInvalidInput("column name must not be empty")
	}
	if t.HasColumn(name) {
		return errors.NewInvalidInput(fmt.Sprintf("duplicate column %q", name))
	}
	if n != len(t.times) {
		return errors.NewInvalidInput(
			fmt.Sprintf("column %q has %d values for a %d-row axis", name, n, len(t.times)))
	}
	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.times)
}

// Times returns the shared timestamp axis. Callers must not mutate it.
func (t *Table) Times() []time.Time {
	return t.times
}

// Columns returns all column names in insertion order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// NumericColumns returns the names of numeric columns in insertion order.
func (t *Table) NumericColumns() []string {
	var out []string
	for _, name := range t.order {
		if _, ok := t.numeric[name]; ok {
			out = append(out, name)
		}
	}
	return out
}

// HasColumn reports whether a column of either kind exists.
func (t *Table) HasColumn(name string) bool {
	if _, ok := t.numeric[name]; ok {
		return true
	}
	_, ok := t.text[name]
	return ok
}

// Column returns a numeric column by name. Callers must not mutate it.
func (t *Table) Column(name string) ([]float64, bool) {
	values, ok := t.numeric[name]
	return values, ok
}

// TextColumn returns a text column by name. Callers must not mutate it.
func (t *Table) TextColumn(name string) ([]string, bool) {
	values, ok := t.text[name]
	return values, ok
}

// Series returns a numeric column as a Series over the table's axis.
func (t *Table) Series(name string) (*Series, error) {
	values, ok := t.numeric[name]
	if !ok {
		return nil, errors.NewInvalidInput(fmt.Sprintf("no numeric column %q", name))
	}
	return &Series{Times: t.times, Values: values}, nil
}
