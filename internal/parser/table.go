package parser

import (
	"fmt"

	"github.com/CJWorkbench/googlesheets/internal/core/domain"
)

// buildTable assembles parsed cells into the host's columnar Table.
//
// Rules, matching the host's CSV ingestion:
//   - rows are padded to the widest row
//   - trailing empty rows and fully-empty columns are dropped
//   - with hasHeader, the first row names the columns; blank or
//     duplicate header cells get generated names
//   - without a header, columns are named "Column 1".."Column N"
//   - a column whose non-empty cells are all numbers (or all
//     datetimes) is typed accordingly; anything mixed is text
func buildTable(rows [][]cell, hasHeader bool) *domain.Table {
	rows = trimTrailingEmptyRows(rows)

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return &domain.Table{}
	}

	var header []cell
	if hasHeader && len(rows) > 0 {
		header = padRow(rows[0], width)
		rows = rows[1:]
		rows = trimTrailingEmptyRows(rows)
	}

	names := columnNames(header, width)

	columns := make([]domain.Column, 0, width)
	for i := 0; i < width; i++ {
		col := make([]cell, len(rows))
		empty := true
		for j, row := range rows {
			if i < len(row) {
				col[j] = row[i]
			}
			if col[j].kind != cellEmpty {
				empty = false
			}
		}
		// A column with no header and no data does not exist.
		if empty && (header == nil || header[i].kind == cellEmpty) {
			continue
		}
		columns = append(columns, typedColumn(names[i], col))
	}

	return &domain.Table{Columns: columns}
}

// columnNames derives names from the header row, filling blanks with
// "Column N" and deduplicating repeats the way the host does.
func columnNames(header []cell, width int) []string {
	names := make([]string, width)
	seen := make(map[string]int, width)
	for i := 0; i < width; i++ {
		name := ""
		if header != nil {
			name = header[i].text
		}
		if name == "" {
			name = fmt.Sprintf("Column %d", i+1)
		}
		if n := seen[name]; n > 0 {
			seen[name] = n + 1
			name = fmt.Sprintf("%s %d", name, n+1)
		}
		seen[name]++
		names[i] = name
	}
	return names
}

// typedColumn infers the column type and materialises values.
func typedColumn(name string, cells []cell) domain.Column {
	kind := cellEmpty
	uniform := true
	for _, c := range cells {
		if c.kind == cellEmpty {
			continue
		}
		if kind == cellEmpty {
			kind = c.kind
		} else if c.kind != kind {
			uniform = false
			break
		}
	}

	colType := domain.ColumnText
	if uniform {
		switch kind {
		case cellNumber:
			colType = domain.ColumnNumber
		case cellDatetime:
			colType = domain.ColumnDatetime
		}
	}

	values := make([]any, len(cells))
	for i, c := range cells {
		if c.kind == cellEmpty {
			continue
		}
		switch colType {
		case domain.ColumnNumber:
			values[i] = c.num
		case domain.ColumnDatetime:
			values[i] = c.time
		default:
			values[i] = c.text
		}
	}

	return domain.Column{Name: name, Type: colType, Values: values}
}

func padRow(row []cell, width int) []cell {
	if len(row) >= width {
		return row
	}
	padded := make([]cell, width)
	copy(padded, row)
	return padded
}

func trimTrailingEmptyRows(rows [][]cell) [][]cell {
	end := len(rows)
	for end > 0 && rowEmpty(rows[end-1]) {
		end--
	}
	return rows[:end]
}

func rowEmpty(row []cell) bool {
	for _, c := range row {
		if c.kind != cellEmpty {
			return false
		}
	}
	return true
}
