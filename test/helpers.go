package test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const fixturesDir = "fixtures"

// Fixture returns the content of a file under test/fixtures.
func Fixture(t *testing.T, name string) string {
	t.Helper()

	_, filename, _, _ := runtime.Caller(0)
	path := filepath.Join(filepath.Dir(filename), fixturesDir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("fixture %s: %v", name, err)
	}
	return string(data)
}
