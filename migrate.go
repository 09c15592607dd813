package googlesheets

import "github.com/CJWorkbench/googlesheets/internal/params"

// MigrateParams upgrades a stored parameter map to the current format.
// The host calls this when loading params saved by an older version of
// the module.
func MigrateParams(raw map[string]any) (map[string]any, error) {
	return params.Migrate(raw)
}
