package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProfileJSON = `{
  "identity": {"company_name": "Acme Corp", "website_url": "https://acme.com", "tagline": "not_found"},
  "business_summary": {"what_they_do": "acme corp", "primary_offerings": "not_found", "target_segments": "not_found"},
  "evidence": {"proof_signals_found": ["customers"], "social_links": "not_found"},
  "contact": {"emails": "not_found", "phones": "not_found", "contact_page": "https://acme.com/contact"},
  "team_hiring": {"careers_page": "https://acme.com/careers"},
  "metadata": {"timestamp": "2024-01-02T03:04:05Z", "pages_visited": ["https://acme.com"], "errors": []}
}`

const invalidProfileJSON = `{
  "identity": {"company_name": "Acme Corp", "website_url": "https://acme.com", "tagline": "not_found"},
  "evidence": {"proof_signals_found": [], "social_links": "not_found"}
}`

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runValidateWith(t *testing.T, path string) (string, error) {
	t.Helper()
	old := validateFile
	validateFile = path
	t.Cleanup(func() { validateFile = old })

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	err := runValidate(cmd, nil)
	return out.String(), err
}

func TestRunValidate_Success(t *testing.T) {
	output, err := runValidateWith(t, writeProfile(t, validProfileJSON))

	assert.NoError(t, err)
	assert.Contains(t, output, "Validation passed")
}

func TestRunValidate_Failure(t *testing.T) {
	output, err := runValidateWith(t, writeProfile(t, invalidProfileJSON))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation found")
	assert.Contains(t, output, "Validation failed")
	assert.Contains(t, output, "business_summary")
}

func TestRunValidate_MissingFile(t *testing.T) {
	_, err := runValidateWith(t, filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read profile file")
}

func TestValidateCommand_Success(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate", "--file", writeProfile(t, validProfileJSON))
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err, "command should succeed")
	assert.Contains(t, string(output), "Validation passed", "output should indicate success")
}

func TestValidateCommand_Failure(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate", "--file", writeProfile(t, invalidProfileJSON))
	output, err := cmd.CombinedOutput()

	assert.Error(t, err, "command should fail")
	assert.Contains(t, string(output), "Validation failed", "output should indicate failure")
	if exitError, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 1, exitError.ExitCode(), "should exit with code 1 on validation failure")
	}
}

func TestValidateCommand_MissingFileFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required flag(s) \"file\" not set")
}
