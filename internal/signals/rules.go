// Package signals provides the stateless extraction rules that turn page
// text and anchors into partial company profile fields.
package signals

import "regexp"

// SocialPlatform maps a domain fragment found in an href to a display name.
type SocialPlatform struct {
	Domain string
	Name   string
}

// Rules holds the immutable tables every extractor reads from.
// Construct with DefaultRules and treat the value as read-only.
type Rules struct {
	EmailPattern    *regexp.Regexp
	PhonePattern    *regexp.Regexp
	ProofKeywords   []string
	SocialPlatforms []SocialPlatform
}

var (
	defaultEmailPattern = regexp.MustCompile(`[a-zA-Z0-9_.+\-]+@[a-zA-Z0-9\-]+\.[a-zA-Z0-9.\-]+`)
	defaultPhonePattern = regexp.MustCompile(`\+?\d[\d\s\-]{7,}\d`)
)

// DefaultProofKeywords returns the credibility phrases searched for in page text.
func DefaultProofKeywords() []string {
	return []string{
		"trusted by",
		"clients",
		"case study",
		"certified",
		"iso",
		"award",
		"testimonial",
	}
}

// DefaultSocialPlatforms returns the social domains recognized in anchors, in match order.
func DefaultSocialPlatforms() []SocialPlatform {
	return []SocialPlatform{
		{Domain: "linkedin.com", Name: "LinkedIn"},
		{Domain: "twitter.com", Name: "Twitter"},
		{Domain: "x.com", Name: "X"},
		{Domain: "instagram.com", Name: "Instagram"},
		{Domain: "youtube.com", Name: "YouTube"},
	}
}

// DefaultRules returns the standard extraction tables.
func DefaultRules() Rules {
	return Rules{
		EmailPattern:    defaultEmailPattern,
		PhonePattern:    defaultPhonePattern,
		ProofKeywords:   DefaultProofKeywords(),
		SocialPlatforms: DefaultSocialPlatforms(),
	}
}

// withDefaults fills any unset table from DefaultRules.
func (r Rules) withDefaults() Rules {
	if r.EmailPattern == nil {
		r.EmailPattern = defaultEmailPattern
	}
	if r.PhonePattern == nil {
		r.PhonePattern = defaultPhonePattern
	}
	if r.ProofKeywords == nil {
		r.ProofKeywords = DefaultProofKeywords()
	}
	if r.SocialPlatforms == nil {
		r.SocialPlatforms = DefaultSocialPlatforms()
	}
	return r
}
