package audit

import (
	"context"

	"github.com/kimmoihanus/geoaudit"
)

// Content audits content quality using the cleaned content-only HTML.
// There is no rule-based fallback: content quality cannot be assessed
// without semantic judgment, so an unavailable or failing collaborator
// yields the default score with an empty analysis.
func (a *Auditor) Content(ctx context.Context, url, rawHTML string) *geoaudit.ContentAudit {
	analysis := ""
	score := defaultScore

	if a.Generator != nil {
		content := truncateRunes(a.Sanitizer.ContentOnly(rawHTML), contentHTMLBudget)
		if text, ok := a.generate(ctx, "content", contentPrompt(url, content), a.contentSystem(), geoaudit.GenerateOptions{
			Temperature:     0.2,
			MaxOutputTokens: 2000,
		}); ok {
			analysis = text
			score = a.extractScore(analysis, "content")
		}
	}

	return &geoaudit.ContentAudit{
		Analysis: analysis,
		Score:    geoaudit.ClampScore(score),
	}
}
