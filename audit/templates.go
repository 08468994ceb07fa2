package audit

import (
	"encoding/json"
	"net/url"

	"github.com/kimmoihanus/geoaudit"
)

// Templates generates JSON-LD starting points for schema types the page
// is missing, pre-filled from extracted page metadata. Bracketed values
// are placeholders the site owner must replace; nothing is invented.
func Templates(pageData *geoaudit.PageData, pageType geoaudit.PageType, existingTypes []string) []geoaudit.SchemaTemplate {
	has := func(name string) bool {
		for _, t := range existingTypes {
			if t == name {
				return true
			}
		}
		return false
	}

	domain := ""
	if u, err := url.Parse(pageData.URL); err == nil {
		domain = u.Hostname()
	}

	firstOf := func(values ...string) string {
		for _, v := range values {
			if v != "" {
				return v
			}
		}
		return ""
	}

	templates := []geoaudit.SchemaTemplate{}
	add := func(typ string, priority geoaudit.Priority, reason string, node map[string]any) {
		b, err := json.MarshalIndent(node, "", "  ")
		if err != nil {
			return
		}
		templates = append(templates, geoaudit.SchemaTemplate{
			Type:     typ,
			Priority: priority,
			Reason:   reason,
			JSONLD:   string(b),
		})
	}

	if !has("Organization") && !has("LocalBusiness") {
		add("Organization", geoaudit.PriorityHigh,
			"Every site should have Organization schema for brand identity",
			map[string]any{
				"@context":    "https://schema.org",
				"@type":       "Organization",
				"name":        firstOf(pageData.OGSiteName, "[Company Name]"),
				"url":         "https://" + domain,
				"logo":        firstOf(pageData.OGImage, "https://"+domain+"/logo.png"),
				"description": firstOf(pageData.Description, "[Company description]"),
				"sameAs": []string{
					"https://github.com/[org]",
					"https://twitter.com/[handle]",
					"https://linkedin.com/company/[company]",
				},
			})
	}

	if pageType == geoaudit.PageTypeArticle && !has("Article") && !has("BlogPosting") {
		add("Article", geoaudit.PriorityHigh,
			"Blog/article pages should have Article schema for rich results",
			map[string]any{
				"@context":    "https://schema.org",
				"@type":       "Article",
				"headline":    firstOf(pageData.OGTitle, pageData.H1, pageData.Title),
				"description": firstOf(pageData.OGDescription, pageData.Description),
				"image":       pageData.OGImage,
				"author": map[string]any{
					"@type": "Person",
					"name":  "[Author Name]",
				},
				"publisher": map[string]any{
					"@type": "Organization",
					"name":  firstOf(pageData.OGSiteName, "[Publisher]"),
				},
			})
	}

	if (pageType == geoaudit.PageTypeProduct || pageType == geoaudit.PageTypeHomepage) &&
		!has("Product") && !has("SoftwareApplication") {
		add("SoftwareApplication", geoaudit.PriorityMedium,
			"Product/devtool pages benefit from SoftwareApplication schema",
			map[string]any{
				"@context":            "https://schema.org",
				"@type":               "SoftwareApplication",
				"name":                firstOf(pageData.OGTitle, pageData.H1, pageData.Title),
				"description":         firstOf(pageData.OGDescription, pageData.Description),
				"applicationCategory": "DeveloperApplication",
				"operatingSystem":     "Cross-platform",
				"offers": map[string]any{
					"@type":         "Offer",
					"price":         "0",
					"priceCurrency": "USD",
					"description":   "Free tier available",
				},
			})
	}

	if !has("FAQPage") {
		add("FAQPage", geoaudit.PriorityHigh,
			"FAQ content helps LLMs find answers to common questions",
			map[string]any{
				"@context": "https://schema.org",
				"@type":    "FAQPage",
				"mainEntity": []any{
					map[string]any{
						"@type": "Question",
						"name":  "[Common question from your content]",
						"acceptedAnswer": map[string]any{
							"@type": "Answer",
							"text":  "[Answer to the question]",
						},
					},
				},
			})
	}

	if pageType == geoaudit.PageTypeDocumentation && !has("HowTo") {
		add("HowTo", geoaudit.PriorityMedium,
			"Documentation pages benefit from HowTo schema for step visibility",
			map[string]any{
				"@context":    "https://schema.org",
				"@type":       "HowTo",
				"name":        firstOf(pageData.H1, pageData.Title),
				"description": pageData.Description,
				"step": []any{
					map[string]any{"@type": "HowToStep", "name": "Step 1", "text": "[Extract from content]"},
					map[string]any{"@type": "HowToStep", "name": "Step 2", "text": "[Extract from content]"},
				},
			})
	}

	if pageType == geoaudit.PageTypeHomepage && !has("WebSite") {
		add("WebSite", geoaudit.PriorityMedium,
			"Homepage should have WebSite schema",
			map[string]any{
				"@context": "https://schema.org",
				"@type":    "WebSite",
				"name":     firstOf(pageData.OGSiteName, pageData.Title),
				"url":      "https://" + domain,
			})
	}

	return templates
}
