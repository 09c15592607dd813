package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CJWorkbench/googlesheets/internal/core/domain"
)

// gridBody wraps rowData JSON in the envelope the Sheets API returns.
func gridBody(rowData string) []byte {
	return []byte(`{"sheets":[{"data":[{"rowData":[` + rowData + `]}]}]}`)
}

func TestParseGrid(t *testing.T) {
	t.Run("strings and numbers", func(t *testing.T) {
		body := gridBody(`
			{"values":[{"effectiveValue":{"stringValue":"a"}},{"effectiveValue":{"stringValue":"b"}}]},
			{"values":[{"effectiveValue":{"numberValue":1}},{"effectiveValue":{"numberValue":2}}]},
			{"values":[{"effectiveValue":{"numberValue":3}},{"effectiveValue":{"numberValue":4}}]}`)

		table, err := ParseGrid(body, true)
		require.NoError(t, err)
		require.NoError(t, table.Validate())

		assert.Equal(t, []string{"a", "b"}, table.ColumnNames())
		assert.Equal(t, domain.ColumnNumber, table.Columns[0].Type)
		assert.Equal(t, []any{float64(1), float64(3)}, table.Columns[0].Values)
		assert.Equal(t, []any{float64(2), float64(4)}, table.Columns[1].Values)
	})

	t.Run("date formatted numbers become timestamps", func(t *testing.T) {
		// 44293 days after 1899-12-30 is 2021-04-07; .5 is noon.
		body := gridBody(`
			{"values":[{"effectiveValue":{"stringValue":"when"}}]},
			{"values":[{
				"effectiveValue":{"numberValue":44293.5},
				"effectiveFormat":{"numberFormat":{"type":"DATE_TIME"}}
			}]}`)

		table, err := ParseGrid(body, true)
		require.NoError(t, err)

		require.Equal(t, domain.ColumnDatetime, table.Columns[0].Type)
		assert.Equal(t,
			time.Date(2021, time.April, 7, 12, 0, 0, 0, time.UTC),
			table.Columns[0].Values[0])
	})

	t.Run("plain number format stays numeric", func(t *testing.T) {
		body := gridBody(`
			{"values":[{
				"effectiveValue":{"numberValue":44293},
				"effectiveFormat":{"numberFormat":{"type":"NUMBER"}}
			}]}`)

		table, err := ParseGrid(body, false)
		require.NoError(t, err)
		assert.Equal(t, domain.ColumnNumber, table.Columns[0].Type)
		assert.Equal(t, []any{float64(44293)}, table.Columns[0].Values)
	})

	t.Run("booleans become text", func(t *testing.T) {
		body := gridBody(`
			{"values":[{"effectiveValue":{"boolValue":true}},{"effectiveValue":{"boolValue":false}}]}`)

		table, err := ParseGrid(body, false)
		require.NoError(t, err)
		assert.Equal(t, []any{"TRUE"}, table.Columns[0].Values)
		assert.Equal(t, []any{"FALSE"}, table.Columns[1].Values)
	})

	t.Run("formula errors become null", func(t *testing.T) {
		body := gridBody(`
			{"values":[{"effectiveValue":{"stringValue":"x"}}]},
			{"values":[{"effectiveValue":{"errorValue":{"type":"DIVIDE_BY_ZERO","message":"Division by zero"}}}]},
			{"values":[{"effectiveValue":{"stringValue":"y"}}]}`)

		table, err := ParseGrid(body, true)
		require.NoError(t, err)
		assert.Equal(t, []any{nil, "y"}, table.Columns[0].Values)
	})

	t.Run("empty cells", func(t *testing.T) {
		body := gridBody(`
			{"values":[{"effectiveValue":{"stringValue":"a"}},{"effectiveValue":{"stringValue":"b"}}]},
			{"values":[{},{"effectiveValue":{"stringValue":"x"}}]}`)

		table, err := ParseGrid(body, true)
		require.NoError(t, err)
		assert.Equal(t, []any{nil}, table.Columns[0].Values)
		assert.Equal(t, []any{"x"}, table.Columns[1].Values)
	})

	t.Run("not JSON", func(t *testing.T) {
		_, err := ParseGrid([]byte("a,b\n1,2\n"), true)
		assert.ErrorIs(t, err, domain.ErrBadFormat)
	})

	t.Run("no grid data", func(t *testing.T) {
		_, err := ParseGrid([]byte(`{"sheets":[]}`), true)
		assert.ErrorIs(t, err, domain.ErrBadFormat)
	})
}

func TestSerialToTime(t *testing.T) {
	tests := []struct {
		name   string
		serial float64
		want   time.Time
	}{
		{"epoch", 0, time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)},
		{"one day", 1, time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)},
		{"modern date", 44293, time.Date(2021, time.April, 7, 0, 0, 0, 0, time.UTC)},
		{"quarter day", 44293.25, time.Date(2021, time.April, 7, 6, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serialToTime(tt.serial))
		})
	}
}
