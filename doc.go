// Package googlesheets is the Workbench "Google Sheets" step.
//
// The host platform owns scheduling, persistence, the file-picker UI,
// and the OAuth credential lifecycle. This module does exactly one
// thing per invocation: download the chosen sheet (or read a
// worksheet range as a typed cell grid) with the host-supplied access
// token, and convert the result into the host's columnar table.
//
// Entry points mirror the host's step contract:
//
//   - Fetch: one authenticated API call, raw response stored to a file
//   - Render: stored response converted to a Table, or user messages
//   - MigrateParams: stored parameter format upgrades
//   - Scopes: the OAuth scopes the host should request
package googlesheets
