package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kimmoihanus/geoaudit"
)

// Ensure Analyzer implements geoaudit.PageAnalyzer at compile time.
var _ geoaudit.PageAnalyzer = (*Analyzer)(nil)

// Analyzer derives structural and metadata signals from raw HTML.
type Analyzer struct{}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Structure computes semantic landmark, heading, content, and
// accessibility counts, the heading outline (capped at
// geoaudit.MaxHeadings entries), and the semantic-HTML5 flag.
func (a *Analyzer) Structure(raw string) *geoaudit.SemanticStructure {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return &geoaudit.SemanticStructure{}
	}

	structure := &geoaudit.SemanticStructure{
		SemanticElements: geoaudit.SemanticElementCounts{
			Header:  doc.Find("header").Length(),
			Nav:     doc.Find("nav").Length(),
			Main:    doc.Find("main").Length(),
			Article: doc.Find("article").Length(),
			Section: doc.Find("section").Length(),
			Aside:   doc.Find("aside").Length(),
			Footer:  doc.Find("footer").Length(),
		},
		HeadingStructure: geoaudit.HeadingCounts{
			H1: doc.Find("h1").Length(),
			H2: doc.Find("h2").Length(),
			H3: doc.Find("h3").Length(),
			H4: doc.Find("h4").Length(),
			H5: doc.Find("h5").Length(),
			H6: doc.Find("h6").Length(),
		},
		ContentElements: geoaudit.ContentElementCounts{
			Paragraphs: doc.Find("p").Length(),
			Lists:      doc.Find("ul, ol").Length(),
			Tables:     doc.Find("table").Length(),
			Figures:    doc.Find("figure").Length(),
			Images:     doc.Find("img").Length(),
			CodeBlocks: doc.Find("pre code").Length(),
		},
		AccessibilityElements: geoaudit.AccessibilityCounts{
			ImagesWithAlt:    doc.Find("img[alt]").Length(),
			ImagesWithoutAlt: doc.Find("img:not([alt])").Length(),
			AriaLabels:       doc.Find("[aria-label]").Length(),
			Landmarks:        doc.Find("[role='banner'], [role='navigation'], [role='main'], [role='contentinfo']").Length(),
		},
	}

	doc.Find("h1, h2, h3, h4, h5, h6").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(structure.HeadingHierarchy) >= geoaudit.MaxHeadings {
			return false
		}
		name := goquery.NodeName(sel)
		level := 0
		if len(name) == 2 {
			level = int(name[1] - '0')
		}
		structure.HeadingHierarchy = append(structure.HeadingHierarchy, geoaudit.Heading{
			Level: level,
			Text:  truncate(strings.TrimSpace(sel.Text()), 100),
		})
		return true
	})

	structure.HasSemanticHTML5 = structure.SemanticElements.Main > 0 ||
		structure.SemanticElements.Article > 0 ||
		structure.SemanticElements.Section > 0

	return structure
}

// PageData extracts page metadata for schema generation.
func (a *Analyzer) PageData(url, raw string) *geoaudit.PageData {
	pd := &geoaudit.PageData{URL: url}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return pd
	}

	pd.Title = strings.TrimSpace(doc.Find("title").Text())
	pd.Description = doc.Find("meta[name='description']").AttrOr("content", "")
	pd.OGTitle = doc.Find("meta[property='og:title']").AttrOr("content", "")
	pd.OGDescription = doc.Find("meta[property='og:description']").AttrOr("content", "")
	pd.OGImage = doc.Find("meta[property='og:image']").AttrOr("content", "")
	pd.OGSiteName = doc.Find("meta[property='og:site_name']").AttrOr("content", "")
	pd.H1 = strings.TrimSpace(doc.Find("h1").First().Text())

	return pd
}

// TechnicalData assembles the technical signal record for a page from
// its raw HTML and previously extracted schema nodes.
func (a *Analyzer) TechnicalData(url, raw string, schemas []geoaudit.SchemaNode) *geoaudit.TechnicalData {
	td := &geoaudit.TechnicalData{
		URL:         url,
		IsHTTPS:     strings.HasPrefix(url, "https://"),
		Semantic:    a.Structure(raw),
		SchemaCount: len(schemas),
		SchemaTypes: geoaudit.UniqueTypes(schemas),
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return td
	}

	canonical := doc.Find("link[rel='canonical']")

	td.Title = doc.Find("title").Text()
	td.MetaDescription = doc.Find("meta[name='description']").AttrOr("content", "")
	td.H1Count = doc.Find("h1").Length()
	td.H1Text = strings.TrimSpace(doc.Find("h1").First().Text())
	td.HasCanonical = canonical.Length() > 0
	td.Canonical = canonical.AttrOr("href", "")
	td.CodeBlockCount = doc.Find("pre code").Length()
	td.WordCount = len(strings.Fields(doc.Find("body").Text()))
	td.OGTitle = doc.Find("meta[property='og:title']").AttrOr("content", "")
	td.OGDescription = doc.Find("meta[property='og:description']").AttrOr("content", "")
	td.OGImage = doc.Find("meta[property='og:image']").AttrOr("content", "")

	return td
}

// QuestionMarks counts question marks in the document's visible text,
// used as a cheap FAQ-content signal.
func (a *Analyzer) QuestionMarks(raw string) int {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return 0
	}
	text := doc.Find("body").Text()
	if text == "" {
		text = doc.Text()
	}
	return strings.Count(text, "?")
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
