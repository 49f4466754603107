package crawling

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/jonathan/company-profiler/internal/fetch"
	"github.com/jonathan/company-profiler/internal/signals"
	"github.com/jonathan/company-profiler/internal/types"
)

// DefaultSummaryLength is the number of corpus characters kept in what_they_do.
const DefaultSummaryLength = 400

// DefaultPaths returns the candidate paths probed on every site, in priority order.
// The empty path is the site root.
func DefaultPaths() []string {
	return []string{
		"",
		"about",
		"company",
		"products",
		"solutions",
		"industries",
		"pricing",
		"contact",
		"careers",
	}
}

// Fetcher retrieves one page. Implementations must return exactly one of
// content or error and must not panic.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Options configures a crawl. Zero values fall back to defaults; unset
// tables in Rules fall back to signals.DefaultRules.
type Options struct {
	Paths         []string
	Rules         signals.Rules
	Fetcher       Fetcher
	Timeout       time.Duration
	UserAgent     string
	SummaryLength int
	Now           func() time.Time
	Logger        *log.Logger
}

// Crawler runs the fixed-path profile extraction. It is immutable after
// construction and safe to reuse across runs.
type Crawler struct {
	paths         []string
	rules         signals.Rules
	fetcher       Fetcher
	summaryLength int
	now           func() time.Time
	logger        *log.Logger
}

// NewCrawler builds a Crawler from opts.
func NewCrawler(opts *Options) *Crawler {
	if opts == nil {
		opts = &Options{}
	}

	c := &Crawler{
		paths:         opts.Paths,
		rules:         opts.Rules,
		fetcher:       opts.Fetcher,
		summaryLength: opts.SummaryLength,
		now:           opts.Now,
		logger:        opts.Logger,
	}

	if c.paths == nil {
		c.paths = DefaultPaths()
	}
	if c.fetcher == nil {
		c.fetcher = fetch.NewClient(&fetch.Options{
			Timeout:   opts.Timeout,
			UserAgent: opts.UserAgent,
		})
	}
	if c.summaryLength <= 0 {
		c.summaryLength = DefaultSummaryLength
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard, "", 0)
	}

	return c
}

// CrawlCompanyProfile normalizes rawURL, probes every candidate path in order
// and returns the assembled profile. It always returns a complete record;
// fetch failures are reported in Metadata.Errors.
func CrawlCompanyProfile(ctx context.Context, rawURL string, opts *Options) *types.CompanyProfile {
	return NewCrawler(opts).Crawl(ctx, rawURL)
}

// Crawl runs one extraction. Candidate paths are fetched strictly in sequence
// and every path is attempted; a cancelled context makes the remaining
// fetches fail fast rather than ending the loop.
func (c *Crawler) Crawl(ctx context.Context, rawURL string) *types.CompanyProfile {
	baseURL := NormalizeBaseURL(rawURL)
	b := newProfileBuilder(baseURL, c.now())

	c.logger.Printf("[VERBOSE] Base URL: %s", baseURL)

	for _, path := range c.paths {
		pageURL := PageURL(baseURL, path)

		html, err := c.fetcher.Fetch(ctx, pageURL)
		if err != nil {
			c.logger.Printf("[VERBOSE] Fetch failed: %s: %v", pageURL, err)
			b.recordError(pageURL, err)
			continue
		}

		c.logger.Printf("[VERBOSE] Fetched %s: %d bytes", pageURL, len(html))
		b.recordPage(pageURL, ParsePage(html), c.rules)
	}

	profile := b.assemble(c.summaryLength)
	c.logger.Printf("[VERBOSE] Visited %d of %d pages, %d errors",
		len(profile.Metadata.PagesVisited), len(c.paths), len(profile.Metadata.Errors))

	return profile
}
