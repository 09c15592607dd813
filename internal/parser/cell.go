package parser

import (
	"strconv"
	"strings"
	"time"
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellText
	cellNumber
	cellDatetime
)

// cell is one parsed spreadsheet cell before column typing. text is
// always set for non-empty cells so a mixed-type column can fall back
// to the cell's textual form.
type cell struct {
	kind cellKind
	text string
	num  float64
	time time.Time
}

func textCell(s string) cell {
	if s == "" {
		return cell{}
	}
	return cell{kind: cellText, text: s}
}

func numberCell(n float64, text string) cell {
	if text == "" {
		text = formatNumber(n)
	}
	return cell{kind: cellNumber, num: n, text: text}
}

func datetimeCell(t time.Time, text string) cell {
	if text == "" {
		text = t.Format(time.RFC3339)
	}
	return cell{kind: cellDatetime, time: t, text: text}
}

// inferCell parses a delimited-text field. Fields that read as numbers
// become number cells; everything else stays text.
func inferCell(s string) cell {
	if s == "" {
		return cell{}
	}
	trimmed := strings.TrimSpace(s)
	if trimmed != "" {
		if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return cell{kind: cellNumber, num: n, text: s}
		}
	}
	return cell{kind: cellText, text: s}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}
