package audit

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/kimmoihanus/geoaudit"
)

// Schema audits existing structured data, classifies the page type from
// its URL, and recommends missing Schema.org types. The quality score is
// fully rule-based; the collaborator is not consulted.
func (a *Auditor) Schema(ctx context.Context, pageURL, rawHTML string) *geoaudit.SchemaAudit {
	existing := a.Extractor.ExtractSchemas(rawHTML)
	pageData := a.Analyzer.PageData(pageURL, rawHTML)
	pageType := PageTypeFor(pageURL)
	existingTypes := geoaudit.UniqueTypes(existing)

	hasType := func(name string) bool { return geoaudit.HasType(existing, name) }

	recommendations := []geoaudit.SchemaRecommendation{}
	if !hasType("Organization") && !hasType("LocalBusiness") {
		recommendations = append(recommendations, geoaudit.SchemaRecommendation{
			Type:     "Organization",
			Priority: geoaudit.PriorityHigh,
			Reason:   "Every site should have Organization schema",
		})
	}
	if !hasType("FAQPage") && a.Analyzer.QuestionMarks(rawHTML) > 5 {
		recommendations = append(recommendations, geoaudit.SchemaRecommendation{
			Type:     "FAQPage",
			Priority: geoaudit.PriorityHigh,
			Reason:   "FAQ content detected - add FAQPage schema for AI visibility",
		})
	}
	if pageType == geoaudit.PageTypeArticle && !hasType("Article") && !hasType("BlogPosting") {
		recommendations = append(recommendations, geoaudit.SchemaRecommendation{
			Type:     "Article",
			Priority: geoaudit.PriorityHigh,
			Reason:   "Blog/article pages should have Article schema",
		})
	}
	if pageType == geoaudit.PageTypeDocumentation && !hasType("HowTo") && !hasType("TechArticle") {
		recommendations = append(recommendations, geoaudit.SchemaRecommendation{
			Type:     "HowTo",
			Priority: geoaudit.PriorityMedium,
			Reason:   "Documentation benefits from HowTo schema",
		})
	}

	qualityScore := 0
	if len(existing) > 0 {
		qualityScore += 30
	}
	if hasType("Organization") {
		qualityScore += 20
	}
	if hasType("FAQPage") {
		qualityScore += 20
	}
	if hasType("Article") || hasType("Product") || hasType("SoftwareApplication") {
		qualityScore += 15
	}
	if len(recommendations) == 0 {
		qualityScore += 15
	}

	var existingJSONLD string
	if len(existing) > 0 {
		b, err := json.MarshalIndent(map[string]any{
			"@context": "https://schema.org",
			"@graph":   existing,
		}, "", "  ")
		if err == nil {
			existingJSONLD = string(b)
		}
	}

	return &geoaudit.SchemaAudit{
		ExistingSchemas: existing,
		ExistingTypes:   existingTypes,
		PageType:        pageType,
		PageData:        pageData,
		Recommendations: recommendations,
		QualityScore:    geoaudit.ClampScore(qualityScore),
		ExistingJSONLD:  existingJSONLD,
	}
}

// PageTypeFor classifies a page by URL shape, in priority order.
// A root or bare-domain path is a homepage.
func PageTypeFor(rawURL string) geoaudit.PageType {
	lower := strings.ToLower(rawURL)
	switch {
	case strings.Contains(lower, "/blog"), strings.Contains(lower, "/post"):
		return geoaudit.PageTypeArticle
	case strings.Contains(lower, "/product"):
		return geoaudit.PageTypeProduct
	case strings.Contains(lower, "/doc"), strings.Contains(lower, "/guide"):
		return geoaudit.PageTypeDocumentation
	case strings.Contains(lower, "/about"):
		return geoaudit.PageTypeAbout
	case strings.Contains(lower, "/pricing"):
		return geoaudit.PageTypePricing
	}
	if u, err := url.Parse(lower); err == nil && (u.Path == "" || u.Path == "/") {
		return geoaudit.PageTypeHomepage
	}
	return geoaudit.PageTypeGeneral
}
