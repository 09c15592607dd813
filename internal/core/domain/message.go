package domain

// Message is a user-facing message in the Workbench i18n convention.
// ID keys into the host's message catalogue; Default is the en-US text
// used when no translation exists; Arguments fill placeholders.
type Message struct {
	// ID is the catalogue key, e.g. "error.http.status401".
	ID string `json:"id"`

	// Default is the en-US text.
	Default string `json:"default"`

	// Arguments fill {placeholder} slots in the text. Nil when the
	// message has no placeholders.
	Arguments map[string]any `json:"arguments,omitempty"`
}

// Trans creates a Message with no arguments.
func Trans(id, def string) Message {
	return Message{ID: id, Default: def}
}

// TransArgs creates a Message with placeholder arguments.
func TransArgs(id, def string, args map[string]any) Message {
	return Message{ID: id, Default: def, Arguments: args}
}
