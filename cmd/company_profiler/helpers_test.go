package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the company_profiler binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "company_profiler"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/company_profiler ./cmd/company_profiler'", binaryPath)
	}

	return binaryPath
}

// stubFetcher serves canned pages and fails every other URL
type stubFetcher map[string]string

func (f stubFetcher) Fetch(_ context.Context, url string) (string, error) {
	if html, ok := f[url]; ok {
		return html, nil
	}
	return "", fmt.Errorf("HTTP status 404")
}
