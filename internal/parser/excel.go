package parser

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/CJWorkbench/googlesheets/internal/core/domain"
)

// MIME types of Excel workbooks a user can pick in Drive.
const (
	MIMETypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MIMETypeXLS  = "application/vnd.ms-excel"
)

// ParseXLSX converts a downloaded xlsx workbook's first sheet into a
// Table. Legacy .xls workbooks are not supported; callers surface a
// format message for those.
func ParseXLSX(body []byte, hasHeader bool) (*domain.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadFormat, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", domain.ErrBadFormat)
	}

	records, err := f.GetRows(sheetList[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadFormat, err)
	}

	rows := make([][]cell, len(records))
	for i, record := range records {
		row := make([]cell, len(record))
		for j, field := range record {
			row[j] = inferCell(field)
		}
		rows[i] = row
	}

	return buildTable(rows, hasHeader), nil
}
