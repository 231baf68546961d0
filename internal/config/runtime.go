package config

import (
	"os"
	"path/filepath"
)

// GetRuntimePath is read before .env is loaded, so it looks at the
// process environment only.
func GetRuntimePath() string {
	path := os.Getenv("SECRETO_RUNTIME_PATH")
	if path == "" {
		path = "."
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path
}
