package domain

// FetchResult is the outcome of one fetch invocation: the path the raw
// response was stored at, plus zero or more user-facing messages.
//
// Invariant: a result carries data or errors, never both. On failure
// the file at Path is truncated to zero bytes, so the stored file and
// Errors are mutually exclusive.
type FetchResult struct {
	Path   string
	Errors []Message
}

// OK returns true if the fetch succeeded.
func (r FetchResult) OK() bool {
	return len(r.Errors) == 0
}
