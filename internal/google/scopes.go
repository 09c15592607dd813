package google

// OAuth2 scopes the module needs. Static metadata: the host's OAuth
// service runs the authorization-code flow and stores the tokens; the
// module only declares what it will read.
const (
	// ScopeDriveReadonly grants read access to Drive files, needed to
	// download or export the chosen file.
	ScopeDriveReadonly = "https://www.googleapis.com/auth/drive.readonly"

	// ScopeSpreadsheetsReadonly grants read access to spreadsheet cell
	// grids, needed for range reads.
	ScopeSpreadsheetsReadonly = "https://www.googleapis.com/auth/spreadsheets.readonly"
)

// Scopes returns the scopes to request, in a stable order.
func Scopes() []string {
	return []string{ScopeDriveReadonly, ScopeSpreadsheetsReadonly}
}
