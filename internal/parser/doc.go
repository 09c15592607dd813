// Package parser converts fetched spreadsheet data into the host's
// columnar Table.
//
// Three source formats are handled, chosen by the stored Content-Type:
//
//   - delimited text (CSV/TSV) from Drive downloads and exports
//   - xlsx workbooks downloaded as-is from Drive
//   - typed cell grids read from the Sheets API
//
// All formats funnel through the same table builder, so header
// handling, empty-row/column dropping, and column type inference are
// identical regardless of where the data came from. This mirrors how
// the host's own CSV ingestion behaves, keeping results consistent
// across modules.
package parser
