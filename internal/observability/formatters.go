// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/company-profiler/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func writeList(sb *strings.Builder, label string, items []string, limit int) {
	if len(items) == 0 {
		sb.WriteString(fmt.Sprintf("%s %s\n", label, types.NotFound))
		return
	}
	sb.WriteString(label + "\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

// PrintCompanyProfile outputs a human-readable summary of an extracted company profile.
func (p *Printer) PrintCompanyProfile(profile *types.CompanyProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", profile.Identity.CompanyName))
	sb.WriteString(fmt.Sprintf("Website:  %s\n", profile.Identity.WebsiteURL))
	sb.WriteString(fmt.Sprintf("Tagline:  %s\n", profile.Identity.Tagline))
	sb.WriteString(fmt.Sprintf("Summary:  %s\n", truncate(profile.BusinessSummary.WhatTheyDo.String(), 45)))
	sb.WriteString("\n")

	writeList(&sb, "Emails:", profile.Contact.Emails, maxItemsToShow)
	writeList(&sb, "Phones:", profile.Contact.Phones, maxItemsToShow)
	writeList(&sb, "Proof signals:", profile.Evidence.ProofSignalsFound, maxItemsToShow)

	if len(profile.Evidence.SocialLinks) == 0 {
		sb.WriteString(fmt.Sprintf("Social: %s\n", types.NotFound))
	} else {
		sb.WriteString("Social:\n")
		platforms := make([]string, 0, len(profile.Evidence.SocialLinks))
		for platform := range profile.Evidence.SocialLinks {
			platforms = append(platforms, platform)
		}
		sort.Strings(platforms)
		for _, platform := range platforms {
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", platform, profile.Evidence.SocialLinks[platform]))
		}
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Pages visited: %d, errors: %d\n",
		len(profile.Metadata.PagesVisited), len(profile.Metadata.Errors)))

	p.printBox("COMPANY PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCrawlErrors outputs the per-page fetch errors recorded during a crawl.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintCrawlErrors(profile *types.CompanyProfile) {
	if profile == nil || len(profile.Metadata.Errors) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO FETCH ERRORS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	errs := profile.Metadata.Errors
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d fetch errors:\n\n", len(errs)))

	count := min(len(errs), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", errs[i]))
	}
	if len(errs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more errors", len(errs)-maxItemsToShow))
	}

	p.printBox("FETCH ERRORS", strings.TrimSuffix(sb.String(), "\n"))
}
