package parser

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"google.golang.org/api/sheets/v4"

	"github.com/CJWorkbench/googlesheets/internal/core/domain"
)

// GridContentType marks a stored Sheets API grid response.
const GridContentType = "application/vnd.google-apps.spreadsheet+json"

// sheetsEpoch is day zero of Google Sheets' serial date numbers.
var sheetsEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ParseGrid converts a stored Sheets API grid response into a Table.
// Cells are coerced per the API's declared cell type: numbers stay
// numbers, and numbers formatted as DATE / TIME / DATE_TIME become
// timestamps via the serial-number epoch.
func ParseGrid(body []byte, hasHeader bool) (*domain.Table, error) {
	var ss sheets.Spreadsheet
	if err := json.Unmarshal(body, &ss); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadFormat, err)
	}
	if len(ss.Sheets) == 0 || len(ss.Sheets[0].Data) == 0 {
		return nil, fmt.Errorf("%w: response contains no grid data", domain.ErrBadFormat)
	}

	grid := ss.Sheets[0].Data[0]
	rows := make([][]cell, len(grid.RowData))
	for i, rowData := range grid.RowData {
		row := make([]cell, len(rowData.Values))
		for j, cellData := range rowData.Values {
			row[j] = gridCell(cellData)
		}
		rows[i] = row
	}

	return buildTable(rows, hasHeader), nil
}

// gridCell coerces one API cell to text, number, or datetime.
func gridCell(c *sheets.CellData) cell {
	if c == nil || c.EffectiveValue == nil {
		return cell{}
	}
	v := c.EffectiveValue

	switch {
	case v.StringValue != nil:
		return textCell(*v.StringValue)
	case v.NumberValue != nil:
		if isDateFormat(c.EffectiveFormat) {
			return datetimeCell(serialToTime(*v.NumberValue), "")
		}
		return numberCell(*v.NumberValue, "")
	case v.BoolValue != nil:
		if *v.BoolValue {
			return textCell("TRUE")
		}
		return textCell("FALSE")
	case v.ErrorValue != nil:
		// Formula errors (#DIV/0! etc) have no usable value.
		return cell{}
	default:
		return cell{}
	}
}

func isDateFormat(f *sheets.CellFormat) bool {
	if f == nil || f.NumberFormat == nil {
		return false
	}
	switch f.NumberFormat.Type {
	case "DATE", "TIME", "DATE_TIME":
		return true
	default:
		return false
	}
}

// serialToTime converts a Sheets serial date number to a UTC timestamp.
// The integer part counts days since 1899-12-30; the fraction is the
// time of day.
func serialToTime(serial float64) time.Time {
	days := math.Floor(serial)
	frac := serial - days
	d := time.Duration(days) * 24 * time.Hour
	d += time.Duration(math.Round(frac * 24 * float64(time.Hour)))
	return sheetsEpoch.Add(d)
}
