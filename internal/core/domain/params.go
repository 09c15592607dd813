package domain

import (
	"fmt"
	"strings"
)

// MIMETypeGoogleSheet is the MIME type of a native Google Sheet. Files
// with this type must be exported; anything else is downloaded as-is.
const MIMETypeGoogleSheet = "application/vnd.google-apps.spreadsheet"

// FileMeta identifies the file the user picked in the host's file
// selector. Name and URL are display-only; the API calls use ID and
// MIMEType.
type FileMeta struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	MIMEType string `json:"mimeType"`
}

// Params holds the fetch parameters for one invocation. The host owns
// storage and marshalling; Params is immutable for the call's duration.
type Params struct {
	// File is the selected spreadsheet, or nil when the user has not
	// picked one yet.
	File *FileMeta

	// Range optionally selects a worksheet range (e.g. "Sheet1!A1:D").
	// When set, the fetch reads a typed cell grid from the Sheets API
	// instead of downloading the whole file.
	Range string

	// HasHeader indicates the first row names the columns. Applied at
	// render time, so it can change between fetch and render.
	HasHeader bool
}

// Validate checks the parameters before any network call is made.
func (p Params) Validate() error {
	if p.File == nil {
		return fmt.Errorf("%w: no file selected", ErrInvalidInput)
	}
	if strings.TrimSpace(p.File.ID) == "" {
		return fmt.Errorf("%w: missing file ID", ErrInvalidInput)
	}
	return nil
}

// SheetMIMEType returns the file's MIME type, defaulting to the native
// Google Sheet type for legacy stored params without one.
func (p Params) SheetMIMEType() string {
	if p.File == nil || p.File.MIMEType == "" {
		return MIMETypeGoogleSheet
	}
	return p.File.MIMEType
}
