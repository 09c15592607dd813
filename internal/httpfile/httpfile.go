// Package httpfile stores a fetched HTTP response as a single file the
// host can persist between fetch and render.
//
// The format is one JSON metadata line (URL, status, selected headers)
// terminated by '\n', followed by the raw body bytes. Render needs the
// Content-Type to pick a parser, and Google's own charset headers are
// unreliable, so the metadata records only what the module decided to
// trust. A zero-length file means "no data" (a failed fetch).
package httpfile

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/CJWorkbench/googlesheets/internal/core/domain"
)

// Meta describes the stored response.
type Meta struct {
	// URL is the request URL, for debugging.
	URL string `json:"url"`

	// Status is the HTTP status line, e.g. "200 OK".
	Status string `json:"status"`

	// ContentType is the body's media type, without charset parameters.
	ContentType string `json:"contentType"`
}

// Write stores meta and body at path, replacing any previous content.
func Write(path string, meta Meta, body io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	header, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	w := bufio.NewWriter(f)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	if _, err := io.Copy(w, body); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	return f.Close()
}

// Read loads a stored response. The body is returned in full; fetched
// files are bounded by the module's download size cap.
func Read(path string) (Meta, []byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Meta{}, nil, fmt.Errorf("read %s: %w", path, err)
	}

	i := bytes.IndexByte(raw, '\n')
	if i < 0 {
		return Meta{}, nil, fmt.Errorf("%w: missing metadata line", domain.ErrBadFormat)
	}

	var meta Meta
	if err := json.Unmarshal(raw[:i], &meta); err != nil {
		return Meta{}, nil, fmt.Errorf("%w: bad metadata: %v", domain.ErrBadFormat, err)
	}

	return meta, raw[i+1:], nil
}

// Truncate empties the file at path, creating it if absent. Called on
// every fetch failure so the stored file and the error messages stay
// mutually exclusive.
func Truncate(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("truncate %s: %w", path, err)
	}
	return f.Close()
}
