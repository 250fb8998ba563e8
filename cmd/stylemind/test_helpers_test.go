package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to a built stylemind binary, skipping the test when absent.
func getBinaryPath(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "stylemind")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/stylemind ./cmd/stylemind'", binaryPath)
	}
	return binaryPath
}

// resetRootFlags restores the persistent flag variables shared between in-process tests.
func resetRootFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		rootConfigPath, rootVerbose, rootRenderer = "", false, ""
	})
}
