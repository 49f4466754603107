package crawling

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/company-profiler/internal/signals"
	"github.com/jonathan/company-profiler/internal/types"
)

// profileBuilder owns the in-progress state of one crawl.
type profileBuilder struct {
	baseURL   string
	timestamp string

	identity     signals.Identity
	corpusParts  []string
	emails       map[string]struct{}
	phones       map[string]struct{}
	proofSignals map[string]struct{}
	socialLinks  map[string]string

	pagesVisited []string
	errors       []string
}

func newProfileBuilder(baseURL string, startedAt time.Time) *profileBuilder {
	return &profileBuilder{
		baseURL:      baseURL,
		timestamp:    startedAt.UTC().Format(time.RFC3339),
		emails:       make(map[string]struct{}),
		phones:       make(map[string]struct{}),
		proofSignals: make(map[string]struct{}),
		socialLinks:  make(map[string]string),
		pagesVisited: make([]string, 0),
		errors:       make([]string, 0),
	}
}

func (b *profileBuilder) recordError(pageURL string, err error) {
	b.errors = append(b.errors, fmt.Sprintf("%s: %v", pageURL, err))
}

// recordPage runs every signal extractor over one successfully fetched page.
func (b *profileBuilder) recordPage(pageURL string, page *Page, rules signals.Rules) {
	b.pagesVisited = append(b.pagesVisited, pageURL)

	text := page.PlainText()
	if text != "" {
		b.corpusParts = append(b.corpusParts, text)
	}

	b.identity.Observe(b.baseURL, page.Title(), page.MetaDescription())

	for _, email := range signals.Emails(rules, text) {
		b.emails[email] = struct{}{}
	}
	for _, phone := range signals.Phones(rules, text) {
		b.phones[phone] = struct{}{}
	}
	for _, kw := range signals.ProofSignals(rules, text) {
		b.proofSignals[kw] = struct{}{}
	}
	signals.SocialLinks(rules, page.Anchors(), b.socialLinks)
}

// assemble converts the accumulated state into the output record.
// Empty collections become the sentinel through the types' JSON encoding.
func (b *profileBuilder) assemble(summaryLength int) *types.CompanyProfile {
	websiteURL := b.identity.WebsiteURL
	if websiteURL == "" {
		websiteURL = b.baseURL
	}

	var links types.LinkMap
	if len(b.socialLinks) > 0 {
		links = make(types.LinkMap, len(b.socialLinks))
		for name, href := range b.socialLinks {
			links[name] = href
		}
	}

	return &types.CompanyProfile{
		Identity: types.Identity{
			CompanyName: types.OptionalString(b.identity.CompanyName),
			WebsiteURL:  websiteURL,
			Tagline:     types.OptionalString(b.identity.Tagline),
		},
		BusinessSummary: types.BusinessSummary{
			WhatTheyDo:       types.OptionalString(truncateRunes(strings.Join(b.corpusParts, " "), summaryLength)),
			PrimaryOfferings: types.NotFound,
			TargetSegments:   types.NotFound,
		},
		Evidence: types.Evidence{
			ProofSignalsFound: types.NewStringSet(b.proofSignals),
			SocialLinks:       links,
		},
		Contact: types.Contact{
			Emails:      types.NewStringSet(b.emails),
			Phones:      types.NewStringSet(b.phones),
			ContactPage: b.baseURL + "/contact",
		},
		TeamHiring: types.TeamHiring{
			CareersPage: b.baseURL + "/careers",
		},
		Metadata: types.Metadata{
			Timestamp:    b.timestamp,
			PagesVisited: b.pagesVisited,
			Errors:       b.errors,
		},
	}
}

// truncateRunes returns at most n characters of s.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
