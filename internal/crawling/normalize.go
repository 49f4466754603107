package crawling

import "strings"

// NormalizeBaseURL prefixes https:// when raw has no http(s) scheme and
// strips trailing slashes. It never fails; a malformed result simply fails
// at fetch time.
func NormalizeBaseURL(raw string) string {
	if !strings.HasPrefix(raw, "http") {
		raw = "https://" + raw
	}
	return strings.TrimRight(raw, "/")
}

// PageURL joins a candidate path onto the base URL. The empty path is the site root.
func PageURL(baseURL, path string) string {
	if path == "" {
		return baseURL
	}
	return baseURL + "/" + path
}
