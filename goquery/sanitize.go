// Package goquery provides HTML parsing implementations of the geoaudit
// domain interfaces: sanitization, structured data extraction, and
// semantic structure analysis.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kimmoihanus/geoaudit"
)

var (
	commentRE    = regexp.MustCompile(`(?s)<!--.*?-->`)
	whitespaceRE = regexp.MustCompile(`\s+`)
	tagGapRE     = regexp.MustCompile(`>\s+<`)
)

// Ensure Sanitizer implements geoaudit.Sanitizer at compile time.
var _ geoaudit.Sanitizer = (*Sanitizer)(nil)

// Sanitizer produces cleaned variants of raw HTML. Both operations
// return the original input unchanged on any parse failure.
type Sanitizer struct{}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{}
}

// ContentOnly strips non-content markup for content quality analysis.
// Scripts, styles, metadata regions, and embedded media containers are
// removed; id/class/data-* attributes are dropped from every remaining
// element while structural attributes (href, src) are preserved.
func (s *Sanitizer) ContentOnly(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return raw
	}

	doc.Find("script, style, noscript, template, iframe, svg, canvas, link, meta").Remove()
	doc.Find("head").Remove()

	doc.Find("*").Each(func(_ int, el *goquery.Selection) {
		for _, node := range el.Nodes {
			var names []string
			for _, attr := range node.Attr {
				if attr.Key == "id" || attr.Key == "class" || strings.HasPrefix(attr.Key, "data-") {
					names = append(names, attr.Key)
				}
			}
			for _, name := range names {
				el.RemoveAttr(name)
			}
		}
	})

	var out string
	if body := doc.Find("body"); body.Length() > 0 {
		out, err = body.Html()
	} else {
		out, err = doc.Html()
	}
	if err != nil {
		return raw
	}

	out = commentRE.ReplaceAllString(out, "")
	out = whitespaceRE.ReplaceAllString(out, " ")
	out = tagGapRE.ReplaceAllString(out, "><")
	return strings.TrimSpace(out)
}

// StripSchemas removes JSON-LD script blocks, style elements, inline
// style attributes, and noscript elements, leaving all other structure
// intact. The result is used for technical analysis that should not be
// biased by embedded metadata.
func (s *Sanitizer) StripSchemas(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return raw
	}

	doc.Find("script").Each(func(_ int, sel *goquery.Selection) {
		typ, _ := sel.Attr("type")
		if strings.Contains(strings.ToLower(typ), "ld+json") {
			sel.Remove()
		}
	})
	doc.Find("style").Remove()
	doc.Find("[style]").RemoveAttr("style")
	doc.Find("noscript").Remove()

	out, err := doc.Html()
	if err != nil {
		return raw
	}
	return out
}
