package crawling

import (
	"iter"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/jonathan/company-profiler/internal/types"
)

// Page exposes the lookups the crawler needs from one HTML document.
// Missing elements yield the sentinel or an empty result, never an error.
type Page struct {
	doc       *goquery.Document
	plainText string
}

// ParsePage parses raw HTML. Unparseable input yields an empty page.
func ParsePage(htmlContent string) *Page {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		doc, _ = goquery.NewDocumentFromReader(strings.NewReader(""))
	}
	return &Page{doc: doc}
}

// PlainText returns the document's text nodes, trimmed and joined by single
// spaces, lowercased. Script, style, template and noscript contents are skipped.
func (p *Page) PlainText() string {
	if p.plainText != "" {
		return p.plainText
	}

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "template", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			if fields := strings.Fields(n.Data); len(fields) > 0 {
				parts = append(parts, strings.Join(fields, " "))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range p.doc.Nodes {
		walk(n)
	}

	p.plainText = strings.ToLower(strings.Join(parts, " "))
	return p.plainText
}

// Title returns the trimmed text of the first <title>, or the sentinel.
func (p *Page) Title() string {
	title := p.doc.Find("title").First()
	if title.Length() == 0 {
		return types.NotFound
	}
	return strings.TrimSpace(title.Text())
}

// MetaDescription returns the content of <meta name="description">, or the sentinel.
func (p *Page) MetaDescription() string {
	content, ok := p.doc.Find(`meta[name="description"]`).First().Attr("content")
	if !ok {
		return types.NotFound
	}
	return content
}

// Anchors yields (href, element) for every anchor carrying an href, in document order.
func (p *Page) Anchors() iter.Seq2[string, *goquery.Selection] {
	return func(yield func(string, *goquery.Selection) bool) {
		p.doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			href, _ := s.Attr("href")
			return yield(href, s)
		})
	}
}
