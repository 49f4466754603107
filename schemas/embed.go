// Package schemas holds the JSON Schema documents describing the records
// this module emits.
package schemas

import _ "embed"

// CompanyProfile is the JSON Schema for a company profile record.
//
//go:embed company_profile.schema.json
var CompanyProfile string
