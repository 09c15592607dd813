package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CJWorkbench/googlesheets/internal/core/domain"
)

func TestParseDelimited(t *testing.T) {
	t.Run("csv with header", func(t *testing.T) {
		table, err := ParseDelimited([]byte("a,b\n1,2\n3,4\n"), ',', true)
		require.NoError(t, err)
		require.NoError(t, table.Validate())

		assert.Equal(t, []string{"a", "b"}, table.ColumnNames())
		require.Equal(t, 2, table.NumRows())
		assert.Equal(t, domain.ColumnNumber, table.Columns[0].Type)
		assert.Equal(t, []any{float64(1), float64(3)}, table.Columns[0].Values)
		assert.Equal(t, []any{float64(2), float64(4)}, table.Columns[1].Values)
	})

	t.Run("csv without header", func(t *testing.T) {
		table, err := ParseDelimited([]byte("a,b\n1,2\n"), ',', false)
		require.NoError(t, err)

		assert.Equal(t, []string{"Column 1", "Column 2"}, table.ColumnNames())
		require.Equal(t, 2, table.NumRows())
		// "a" forces the column to text.
		assert.Equal(t, domain.ColumnText, table.Columns[0].Type)
		assert.Equal(t, []any{"a", "1"}, table.Columns[0].Values)
	})

	t.Run("tsv", func(t *testing.T) {
		table, err := ParseDelimited([]byte("a\tb\n1\tx\n"), '\t', true)
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "b"}, table.ColumnNames())
		assert.Equal(t, domain.ColumnNumber, table.Columns[0].Type)
		assert.Equal(t, domain.ColumnText, table.Columns[1].Type)
	})

	t.Run("empty input", func(t *testing.T) {
		table, err := ParseDelimited(nil, ',', true)
		require.NoError(t, err)
		assert.Equal(t, 0, table.NumCols())
		assert.Equal(t, 0, table.NumRows())
	})

	t.Run("ragged rows are padded", func(t *testing.T) {
		table, err := ParseDelimited([]byte("a,b,c\n1\n1,2,3\n"), ',', true)
		require.NoError(t, err)
		require.NoError(t, table.Validate())

		require.Equal(t, 3, table.NumCols())
		require.Equal(t, 2, table.NumRows())
		assert.Equal(t, []any{nil, float64(3)}, table.Columns[2].Values)
	})

	t.Run("trailing empty rows dropped", func(t *testing.T) {
		table, err := ParseDelimited([]byte("a,b\n1,2\n,\n,\n"), ',', true)
		require.NoError(t, err)
		assert.Equal(t, 1, table.NumRows())
	})

	t.Run("fully empty unnamed column dropped", func(t *testing.T) {
		table, err := ParseDelimited([]byte("a,,b\n1,,2\n"), ',', true)
		require.NoError(t, err)
		// Middle column has no header and no data.
		assert.Equal(t, []string{"a", "b"}, table.ColumnNames())
	})

	t.Run("blank header gets generated name", func(t *testing.T) {
		table, err := ParseDelimited([]byte("a,,b\n1,x,2\n"), ',', true)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "Column 2", "b"}, table.ColumnNames())
	})

	t.Run("duplicate headers deduplicated", func(t *testing.T) {
		table, err := ParseDelimited([]byte("a,a,a\n1,2,3\n"), ',', true)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "a 2", "a 3"}, table.ColumnNames())
	})

	t.Run("mixed column stays text", func(t *testing.T) {
		table, err := ParseDelimited([]byte("a\n1\nfoo\n"), ',', true)
		require.NoError(t, err)
		assert.Equal(t, domain.ColumnText, table.Columns[0].Type)
		assert.Equal(t, []any{"1", "foo"}, table.Columns[0].Values)
	})

	t.Run("empty cells are null", func(t *testing.T) {
		table, err := ParseDelimited([]byte("a,b\n1,\n,2\n"), ',', true)
		require.NoError(t, err)
		assert.Equal(t, []any{float64(1), nil}, table.Columns[0].Values)
		assert.Equal(t, []any{nil, float64(2)}, table.Columns[1].Values)
	})

	t.Run("quoted fields", func(t *testing.T) {
		table, err := ParseDelimited([]byte("a,b\n\"x,y\",2\n"), ',', true)
		require.NoError(t, err)
		assert.Equal(t, []any{"x,y"}, table.Columns[0].Values)
	})
}
