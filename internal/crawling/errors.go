// Package crawling extracts a company profile from a website by probing a
// fixed list of candidate pages and mining their text.
package crawling

import (
	"fmt"
	"strings"
)

// CrawlError represents input that cannot start a crawl.
type CrawlError struct {
	Message string
	Cause   error
}

func (e *CrawlError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("crawl error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("crawl error: %s", e.Message)
}

func (e *CrawlError) Unwrap() error {
	return e.Cause
}

// CheckInput rejects a blank company URL. Anything else is accepted and left
// for the fetcher to fail on.
func CheckInput(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return &CrawlError{Message: "company URL is empty"}
	}
	return nil
}
