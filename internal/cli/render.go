package cli

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/CJWorkbench/googlesheets"
	"github.com/CJWorkbench/googlesheets/internal/core/domain"
)

var (
	renderInput     string
	renderHasHeader bool
	renderFormat    string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Convert a stored fetch result to a table",
	Long: `Renders a file produced by fetch into the host's columnar table and
writes it to stdout as CSV or JSON.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "input", "i", "", "stored fetch result (required)")
	renderCmd.Flags().BoolVar(&renderHasHeader, "has-header", true, "first row names the columns")
	renderCmd.Flags().StringVar(&renderFormat, "format", "csv", "output format: csv or json")
	_ = renderCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	rawParams := map[string]any{
		"file":       map[string]any{"id": "cli"},
		"has_header": renderHasHeader,
	}
	fetchResult := domain.FetchResult{Path: renderInput}

	table, msgs := googlesheets.Render(rawParams, &fetchResult)
	if table == nil {
		for _, msg := range msgs {
			cmd.PrintErrln(messageText(msg))
		}
		return errors.New("render failed")
	}

	switch renderFormat {
	case "csv":
		return writeCSV(cmd, table)
	case "json":
		return writeJSON(cmd, table)
	default:
		return fmt.Errorf("unknown format %q: want csv or json", renderFormat)
	}
}

func writeCSV(cmd *cobra.Command, table *domain.Table) error {
	w := csv.NewWriter(cmd.OutOrStdout())
	if err := w.Write(table.ColumnNames()); err != nil {
		return err
	}
	for i := 0; i < table.NumRows(); i++ {
		record := make([]string, table.NumCols())
		for j, col := range table.Columns {
			record[j] = cellString(col.Values[i])
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeJSON(cmd *cobra.Command, table *domain.Table) error {
	type jsonColumn struct {
		Name   string `json:"name"`
		Type   string `json:"type"`
		Values []any  `json:"values"`
	}
	columns := make([]jsonColumn, table.NumCols())
	for i, col := range table.Columns {
		columns[i] = jsonColumn{Name: col.Name, Type: col.Type.String(), Values: col.Values}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(columns)
}

func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}
