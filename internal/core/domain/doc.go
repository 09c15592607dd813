// Package domain defines the core types exchanged with the Workbench host.
//
// This package is the innermost layer of the module. It has NO external
// dependencies and defines the fundamental types:
//
//   - Params: Per-invocation fetch parameters supplied by the host
//   - Table: The columnar result handed back to the host
//   - Message: A user-facing message in the host's i18n convention
//   - FetchResult: A stored fetch outcome (file path plus messages)
//
// # Architectural Position
//
// Domain is at the centre. It may only import the Go standard library.
// All other packages depend on domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
