package signals

import (
	"iter"
	"strings"
)

// Emails returns every email-shaped token in text, duplicates included.
func Emails(rules Rules, text string) []string {
	return rules.withDefaults().EmailPattern.FindAllString(text, -1)
}

// Phones returns every phone-shaped token in text, duplicates included.
// The pattern is a loose heuristic and also matches long digit runs such as IDs.
func Phones(rules Rules, text string) []string {
	return rules.withDefaults().PhonePattern.FindAllString(text, -1)
}

// ProofSignals returns the proof keywords contained in text, in table order.
// text is expected to be lowercased already.
func ProofSignals(rules Rules, text string) []string {
	var found []string
	for _, kw := range rules.withDefaults().ProofKeywords {
		if strings.Contains(text, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// SocialLinks scans hrefs and records, per platform name, the first href that
// contains the platform's domain. Entries already in found are never replaced.
// A single href may register more than one platform.
func SocialLinks[V any](rules Rules, anchors iter.Seq2[string, V], found map[string]string) {
	platforms := rules.withDefaults().SocialPlatforms
	for href := range anchors {
		for _, p := range platforms {
			if !strings.Contains(href, p.Domain) {
				continue
			}
			if _, ok := found[p.Name]; !ok {
				found[p.Name] = href
			}
		}
	}
}
