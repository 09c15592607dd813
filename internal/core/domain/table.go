package domain

import (
	"fmt"
	"time"
)

// ColumnType is the coerced type of a table column.
type ColumnType int

const (
	// ColumnText holds string values.
	ColumnText ColumnType = iota

	// ColumnNumber holds float64 values.
	ColumnNumber

	// ColumnDatetime holds time.Time values.
	ColumnDatetime
)

// String returns a human-readable representation.
func (t ColumnType) String() string {
	switch t {
	case ColumnText:
		return "text"
	case ColumnNumber:
		return "number"
	case ColumnDatetime:
		return "datetime"
	default:
		return "unknown"
	}
}

// Column is one named, typed column of a Table. Values holds one entry
// per row: string for ColumnText, float64 for ColumnNumber, time.Time
// for ColumnDatetime. A nil entry is a null cell.
type Column struct {
	Name   string
	Type   ColumnType
	Values []any
}

// Table is the columnar result handed back to the host. All columns
// have the same number of values.
type Table struct {
	Columns []Column
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.Columns)
}

// NumRows returns the number of rows, 0 for an empty table.
func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Validate checks the table's structural invariants: every column is
// named, column value counts agree, and each value matches its
// column's type.
func (t *Table) Validate() error {
	rows := t.NumRows()
	for i, c := range t.Columns {
		if c.Name == "" {
			return fmt.Errorf("%w: column %d has no name", ErrInvalidInput, i)
		}
		if len(c.Values) != rows {
			return fmt.Errorf("%w: column %q has %d values, want %d",
				ErrInvalidInput, c.Name, len(c.Values), rows)
		}
		for j, v := range c.Values {
			if v == nil {
				continue
			}
			ok := false
			switch c.Type {
			case ColumnText:
				_, ok = v.(string)
			case ColumnNumber:
				_, ok = v.(float64)
			case ColumnDatetime:
				_, ok = v.(time.Time)
			}
			if !ok {
				return fmt.Errorf("%w: column %q row %d holds %T, want %s",
					ErrInvalidInput, c.Name, j, v, c.Type)
			}
		}
	}
	return nil
}
