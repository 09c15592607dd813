// Package google provides shared infrastructure for the Google API calls
// the module makes.
//
// This package contains:
//   - TokenSource adapter to bridge the host's TokenProvider to oauth2.TokenSource
//   - Service factories for the Drive and Sheets API clients
//   - Error handling for common Google API errors (401, 403, 404, 429)
//   - Rate limiting to respect Google API quotas
//
// # Usage
//
// The fetcher uses this package to create authenticated API clients:
//
//	ts := google.NewTokenSource(ctx, tokenProvider)
//	svc, err := google.NewDriveService(ctx, ts)
//
// # OAuth2 Scopes
//
// The module declares these scopes (the host runs the authorization
// flow; the module never does):
//   - https://www.googleapis.com/auth/drive.readonly (restricted)
//   - https://www.googleapis.com/auth/spreadsheets.readonly (sensitive)
package google
