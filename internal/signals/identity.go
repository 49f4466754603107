package signals

// Identity accumulates first-seen identity fields across pages.
// The empty string means unset. CompanyName and Tagline are tracked
// independently, so they may come from different pages.
type Identity struct {
	CompanyName string
	WebsiteURL  string
	Tagline     string
}

// Observe applies one page's title and meta description.
// title and description carry the sentinel when the page lacks the element.
func (id *Identity) Observe(baseURL, title, description string) {
	if id.CompanyName == "" {
		id.CompanyName = title
		id.WebsiteURL = baseURL
	}
	if id.Tagline == "" {
		id.Tagline = description
	}
}
