package timeseries

import (
	"fmt"
	"math"
	"sort"
	"time"

	"finchart/errors"
)

// PivotLong reshapes a long-format table (symbol, timestamp, value) into a
// wide table with one numeric column per distinct symbol, aligned on the
// union of the observed timestamps. Symbols keep first-appearance order;
// timestamps missing for a symbol become NaN. Duplicate (symbol, timestamp)
// rows collapse to the last value in row order.
func PivotLong(t *Table, symbolCol, valueCol string) (*Table, error) {
	symbols, ok := t.TextColumn(symbolCol)
	if !ok {
		return nil, errors.NewInvalidInput(fmt.Sprintf("no text column %q to pivot on", symbolCol))
	}
	values, ok := t.Column(valueCol)
	if !ok {
		return nil, errors.NewInvalidInput(fmt.Sprintf("no numeric column %q to pivot", valueCol))
	}

	axis := unionAxis([][]time.Time{t.Times()})
	index := axisIndex(axis)

	var order []string
	bySymbol := make(map[string][]float64)
	for row, sym := range symbols {
		col, seen := bySymbol[sym]
		if !seen {
			col = filledNaN(len(axis))
			bySymbol[sym] = col
			order = append(order, sym)
		}
		col[index[t.Times()[row].UnixNano()]] = values[row]
	}

	wide, err := NewTable(axis)
	if err != nil {
		return nil, err
	}
	for _, sym := range order {
		if err := wide.AddColumn(sym, bySymbol[sym]); err != nil {
			return nil, err
		}
	}
	return wide, nil
}

// MergeAligned combines independently sampled series into one wide table
// aligned on the union of their timestamps, one column per name. Positions a
// series does not cover become NaN; duplicate timestamps within one series
// collapse to the last value.
func MergeAligned(names []string, series []*Series) (*Table, error) {
	if len(names) != len(series) {
		return nil, errors.NewInvalidInput(
			fmt.Sprintf("%d names for %d series", len(names), len(series)))
	}
	if len(series) == 0 {
		return nil, errors.NewInvalidInput("no series to merge")
	}

	axes := make([][]time.Time, len(series))
	for i, s := range series {
		axes[i] = s.Times
	}
	axis := unionAxis(axes)
	index := axisIndex(axis)

	merged, err := NewTable(axis)
	if err != nil {
		return nil, err
	}
	for i, s := range series {
		col := filledNaN(len(axis))
		for j, ts := range s.Times {
			col[index[ts.UnixNano()]] = s.Values[j]
		}
		if err := merged.AddColumn(names[i], col); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

// unionAxis returns the sorted distinct timestamps across the given axes.
func unionAxis(axes [][]time.Time) []time.Time {
	seen := make(map[int64]time.Time)
	for _, axis := range axes {
		for _, ts := range axis {
			seen[ts.UnixNano()] = ts
		}
	}
	keys := make([]int64, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]time.Time, len(keys))
	for i, k := range keys {
		out[i] = seen[k]
	}
	return out
}

// axisIndex maps each timestamp of a sorted axis to its position.
func axisIndex(axis []time.Time) map[int64]int {
	index := make(map[int64]int, len(axis))
	for i, ts := range axis {
		index[ts.UnixNano()] = i
	}
	return index
}

func filledNaN(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
