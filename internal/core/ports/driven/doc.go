// Package driven defines the interfaces the module calls OUT to the host.
//
// The Workbench host owns credential storage and the OAuth refresh
// lifecycle; the module only ever reads the current access token
// through the TokenProvider port. The host-side implementation lives
// in internal/secrets.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any fetcher, parser, or cli package
package driven
