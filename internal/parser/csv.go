package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/CJWorkbench/googlesheets/internal/core/domain"
)

// ParseDelimited converts CSV or TSV bytes into a Table. Google serves
// utf-8 regardless of what its charset headers claim, so the bytes are
// read as utf-8 unconditionally.
func ParseDelimited(body []byte, delimiter rune, hasHeader bool) (*domain.Table, error) {
	r := csv.NewReader(bytes.NewReader(body))
	r.Comma = delimiter
	r.FieldsPerRecord = -1 // ragged rows are padded later
	r.LazyQuotes = true

	var rows [][]cell
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrBadFormat, err)
		}
		row := make([]cell, len(record))
		for i, field := range record {
			row[i] = inferCell(field)
		}
		rows = append(rows, row)
	}

	return buildTable(rows, hasHeader), nil
}
