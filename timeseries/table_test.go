package timeseries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finchart/errors"
)

func TestNewTable(t *testing.T) {
	_, err := NewTable(days(5))
	require.NoError(t, err)

	_, err = NewTable([]time.Time{days(2)[1], days(2)[0]})
	assert.True(t, errors.IsKind(err, errors.KindInvalidInput))
}

func TestTable_AddColumn(t *testing.T) {
	tests := []struct {
		name     string
		colName  string
		values   []float64
		wantKind errors.Kind
	}{
		{"valid column", "close", []float64{1, 2, 3}, ""},
		{"empty name", "", []float64{1, 2, 3}, errors.KindInvalidInput},
		{"wrong length", "close", []float64{1, 2}, errors.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := NewTable(days(3))
			require.NoError(t, err)

			err = tbl.AddColumn(tt.colName, tt.values)
			if tt.wantKind != "" {
				assert.True(t, errors.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.True(t, tbl.HasColumn(tt.colName))
		})
	}

	t.Run("duplicate across kinds", func(t *testing.T) {
		tbl, err := NewTable(days(2))
		require.NoError(t, err)
		require.NoError(t, tbl.AddTextColumn("symbol", []string{"A", "B"}))

		err = tbl.AddColumn("symbol", []float64{1, 2})
		assert.True(t, errors.IsKind(err, errors.KindInvalidInput))
	})
}

func TestTable_ColumnOrder(t *testing.T) {
	tbl, err := NewTable(days(2))
	require.NoError(t, err)
	require.NoError(t, tbl.AddColumn("b", []float64{1, 2}))
	require.NoError(t, tbl.AddTextColumn("symbol", []string{"x", "y"}))
	require.NoError(t, tbl.AddColumn("a", []float64{3, 4}))

	assert.Equal(t, []string{"b", "symbol", "a"}, tbl.Columns())
	assert.Equal(t, []string{"b", "a"}, tbl.NumericColumns())
}

func TestTable_Series(t *testing.T) {
	tbl, err := NewTable(days(3))
	require.NoError(t, err)
	require.NoError(t, tbl.AddColumn("equity", []float64{100, 101, 102}))
	require.NoError(t, tbl.AddTextColumn("note", []string{"", "", ""}))

	s, err := tbl.Series("equity")
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, tbl.Times(), s.Times)

	_, err = tbl.Series("note")
	assert.True(t, errors.IsKind(err, errors.KindInvalidInput))

	_, err = tbl.Series("absent")
	assert.True(t, errors.IsKind(err, errors.KindInvalidInput))
}
