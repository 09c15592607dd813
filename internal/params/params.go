// Package params converts the host's stored parameter maps into typed
// fetch parameters, and migrates old stored formats forward.
package params

import (
	"encoding/json"
	"fmt"

	"github.com/CJWorkbench/googlesheets/internal/core/domain"
)

// Parse converts a host parameter map into Params. Unknown keys are
// ignored: the host owns the schema and may add keys the module does
// not read.
func Parse(raw map[string]any) (domain.Params, error) {
	var p domain.Params

	switch file := raw["file"].(type) {
	case nil:
		// No file selected yet.
	case map[string]any:
		meta := domain.FileMeta{
			ID:       stringValue(file, "id"),
			Name:     stringValue(file, "name"),
			URL:      stringValue(file, "url"),
			MIMEType: stringValue(file, "mimeType"),
		}
		p.File = &meta
	default:
		return domain.Params{}, fmt.Errorf("%w: file is %T, want object or null",
			domain.ErrInvalidInput, file)
	}

	if r, ok := raw["range"].(string); ok {
		p.Range = r
	}
	if h, ok := raw["has_header"].(bool); ok {
		p.HasHeader = h
	}

	return p, nil
}

// Migrate upgrades a stored parameter map to the current version.
//
// v0 stored the picked file as a JSON-encoded string under
// "googlefileselect"; v1 stores it as an object (or null) under "file".
func Migrate(raw map[string]any) (map[string]any, error) {
	if _, ok := raw["googlefileselect"]; ok {
		return migrateV0ToV1(raw)
	}
	return raw, nil
}

func migrateV0ToV1(raw map[string]any) (map[string]any, error) {
	out := map[string]any{
		"has_header":     raw["has_header"],
		"version_select": raw["version_select"],
		"file":           nil,
	}

	encoded, _ := raw["googlefileselect"].(string)
	if encoded != "" {
		var file map[string]any
		if err := json.Unmarshal([]byte(encoded), &file); err != nil {
			return nil, fmt.Errorf("%w: googlefileselect: %v", domain.ErrInvalidInput, err)
		}
		out["file"] = file
	}

	return out, nil
}

func stringValue(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
