package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/company-profiler/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer"}
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_ValidJSON(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", personSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"name": "acme"}`)

	err := ValidateJSON(schemaPath, jsonPath)
	assert.NoError(t, err)
}

func TestValidateJSON_InvalidJSON_MissingField(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", personSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"age": 3}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_InvalidJSON_WrongType(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", personSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"name": "acme", "age": "three"}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Equal(t, "age", validationErr.Errors[0].Field)
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeFile(t, dir, "doc.json", `{"name": "acme"}`)

	err := ValidateJSON(filepath.Join(dir, "nonexistent_schema.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_NonExistentJSON(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", personSchema)

	err := ValidateJSON(schemaPath, filepath.Join(dir, "nonexistent_json.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", personSchema)
	malformedJSON := writeFile(t, dir, "malformed.json", "{ invalid json }")

	err := ValidateJSON(schemaPath, malformedJSON)
	require.Error(t, err)
}

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(personSchema, `{"name": "test"}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	err := ValidateJSONString(personSchema, `{"age": 30}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{ not a schema`, `{}`)
	require.Error(t, err)

	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok, "error should be SchemaLoadError, got %T", err)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "1. name: is required")
	assert.Contains(t, errorMsg, "2. age: must be a number")
}

func TestSchemaLoadError_Unwrap(t *testing.T) {
	cause := os.ErrNotExist
	err := &SchemaLoadError{Path: "x.json", Message: "boom", Cause: cause}

	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "x.json")
}

func marshalProfile(t *testing.T, profile *types.CompanyProfile) []byte {
	t.Helper()
	data, err := json.Marshal(profile)
	require.NoError(t, err)
	return data
}

func fullProfile() *types.CompanyProfile {
	return &types.CompanyProfile{
		Identity: types.Identity{
			CompanyName: "Acme Corp",
			WebsiteURL:  "https://acme.com",
			Tagline:     "We build widgets",
		},
		BusinessSummary: types.BusinessSummary{WhatTheyDo: "acme corp we build widgets"},
		Evidence: types.Evidence{
			ProofSignalsFound: types.StringSet{"clients", "customers"},
			SocialLinks:       types.LinkMap{"linkedin": "https://linkedin.com/company/acme"},
		},
		Contact: types.Contact{
			Emails:      types.StringSet{"hello@acme.com"},
			Phones:      types.StringSet{"+1 555 123 4567"},
			ContactPage: "https://acme.com/contact",
		},
		TeamHiring: types.TeamHiring{CareersPage: "https://acme.com/careers"},
		Metadata: types.Metadata{
			Timestamp:    "2024-01-02T03:04:05Z",
			PagesVisited: []string{"https://acme.com"},
			Errors:       []string{},
		},
	}
}

func TestValidateCompanyProfile_Full(t *testing.T) {
	err := ValidateCompanyProfile(marshalProfile(t, fullProfile()))
	assert.NoError(t, err)
}

func TestValidateCompanyProfile_AllSentinels(t *testing.T) {
	profile := &types.CompanyProfile{
		Identity: types.Identity{WebsiteURL: "https://acme.com"},
		Contact:  types.Contact{ContactPage: "https://acme.com/contact"},
		TeamHiring: types.TeamHiring{
			CareersPage: "https://acme.com/careers",
		},
		Metadata: types.Metadata{
			Timestamp:    "2024-01-02T03:04:05Z",
			PagesVisited: []string{},
			Errors:       []string{"https://acme.com: fetch error"},
		},
	}

	err := ValidateCompanyProfile(marshalProfile(t, profile))
	assert.NoError(t, err)
}

func TestValidateCompanyProfile_MissingSection(t *testing.T) {
	var raw map[string]any
	require.NoError(t, json.Unmarshal(marshalProfile(t, fullProfile()), &raw))
	delete(raw, "contact")
	data, err := json.Marshal(raw)
	require.NoError(t, err)

	err = ValidateCompanyProfile(data)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, validationErr.Error(), "contact")
}

func TestValidateCompanyProfile_EmptyListRejected(t *testing.T) {
	doc := `{
		"identity": {"company_name": "Acme", "website_url": "https://acme.com", "tagline": "not_found"},
		"business_summary": {"what_they_do": "x", "primary_offerings": "not_found", "target_segments": "not_found"},
		"evidence": {"proof_signals_found": [], "social_links": "not_found"},
		"contact": {"emails": "not_found", "phones": "not_found", "contact_page": "https://acme.com/contact"},
		"team_hiring": {"careers_page": "https://acme.com/careers"},
		"metadata": {"timestamp": "2024-01-02T03:04:05Z", "pages_visited": [], "errors": []}
	}`

	err := ValidateCompanyProfile([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "proof_signals_found")
}

func TestValidateCompanyProfile_WrongSentinel(t *testing.T) {
	doc := `{
		"identity": {"company_name": "Acme", "website_url": "https://acme.com", "tagline": "not_found"},
		"business_summary": {"what_they_do": "x", "primary_offerings": "widgets", "target_segments": "not_found"},
		"evidence": {"proof_signals_found": "not_found", "social_links": "not_found"},
		"contact": {"emails": "none", "phones": "not_found", "contact_page": "https://acme.com/contact"},
		"team_hiring": {"careers_page": "https://acme.com/careers"},
		"metadata": {"timestamp": "2024-01-02T03:04:05Z", "pages_visited": [], "errors": []}
	}`

	err := ValidateCompanyProfile([]byte(doc))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	msg := validationErr.Error()
	assert.Contains(t, msg, "primary_offerings")
	assert.Contains(t, msg, "emails")
}

func TestValidateCompanyProfile_MalformedDocument(t *testing.T) {
	err := ValidateCompanyProfile([]byte("{ invalid"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load company profile document")
}
