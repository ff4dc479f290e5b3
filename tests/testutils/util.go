// Package testutils provides test infrastructure for custom-integrations-analytics CLI tests.
package testutils

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/containerd/nerdctl/mod/tigron/test"

	"github.com/farcloser/agar/pkg/agar"
)

// UnreachableURL points at a closed local port, so a fetch fails immediately.
const UnreachableURL = "http://127.0.0.1:1/custom_integrations.json"

// Setup creates a test case configured to run the custom-integrations-analytics binary.
func Setup() *test.Case {
	_, thisFile, _, _ := runtime.Caller(0) //nolint:dogsled // runtime.Caller returns 4 values, only file is needed
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
	binaryPath := filepath.Join(projectRoot, "bin", "custom-integrations-analytics")

	return agar.Setup(binaryPath)
}

// Fixture writes content to name inside dir and returns the full path.
func Fixture(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}

	return path
}
