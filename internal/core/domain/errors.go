package domain

import "errors"

// Domain errors represent the failure taxonomy of a fetch invocation.
// Every failure the module can hit maps to exactly one of these; the
// host never sees a raw error, only the Message derived from it.
var (
	// ErrInvalidInput indicates malformed or missing fetch parameters.
	// Raised before any network call is made.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAuthInvalid indicates the access token was rejected (HTTP 401).
	// The user must reconnect their account; the module never refreshes.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrForbidden indicates the logged-in user cannot access the chosen
	// file (HTTP 403).
	ErrForbidden = errors.New("access forbidden")

	// ErrNotFound indicates the spreadsheet or range does not exist
	// (HTTP 404).
	ErrNotFound = errors.New("not found")

	// ErrRateLimited indicates Google is throttling requests (HTTP 429).
	// The module performs no retry; the host may re-invoke later.
	ErrRateLimited = errors.New("rate limited")

	// ErrTransport indicates a network failure or timeout before a
	// response arrived.
	ErrTransport = errors.New("transport failure")

	// ErrBadFormat indicates a 200 response whose body is not the grid
	// or file format the module understands.
	ErrBadFormat = errors.New("unexpected response format")
)
