// Package types provides type definitions for the structured records produced by the company profiler.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CompanyProfile is the fixed-shape record extracted from one company website.
type CompanyProfile struct {
	Identity        Identity        `json:"identity"`
	BusinessSummary BusinessSummary `json:"business_summary"`
	Evidence        Evidence        `json:"evidence"`
	Contact         Contact         `json:"contact"`
	TeamHiring      TeamHiring      `json:"team_hiring"`
	Metadata        Metadata        `json:"metadata"`
}

// Identity holds who the company says it is.
type Identity struct {
	CompanyName OptionalString `json:"company_name"`
	WebsiteURL  string         `json:"website_url"`
	Tagline     OptionalString `json:"tagline"`
}

// BusinessSummary holds the text excerpt describing the business.
// PrimaryOfferings and TargetSegments are always NotFound.
type BusinessSummary struct {
	WhatTheyDo       OptionalString `json:"what_they_do"`
	PrimaryOfferings OptionalString `json:"primary_offerings"`
	TargetSegments   OptionalString `json:"target_segments"`
}

// Evidence holds credibility signals.
type Evidence struct {
	ProofSignalsFound StringSet `json:"proof_signals_found"`
	SocialLinks       LinkMap   `json:"social_links"`
}

// Contact holds contact details found in page text.
type Contact struct {
	Emails      StringSet `json:"emails"`
	Phones      StringSet `json:"phones"`
	ContactPage string    `json:"contact_page"`
}

// TeamHiring holds hiring-related links.
type TeamHiring struct {
	CareersPage string `json:"careers_page"`
}

// Metadata describes the run that produced the profile.
type Metadata struct {
	Timestamp    string   `json:"timestamp"` // RFC3339 format, UTC
	PagesVisited []string `json:"pages_visited"`
	Errors       []string `json:"errors"`
}
