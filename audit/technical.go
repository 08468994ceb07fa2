package audit

import (
	"context"

	"github.com/kimmoihanus/geoaudit"
)

// Technical audits HTML structure, metadata, and headings. When the
// text generation collaborator produces an analysis, the score is
// extracted from it; otherwise the score is computed from fixed
// rule-based signal weights.
func (a *Auditor) Technical(ctx context.Context, url, rawHTML string) *geoaudit.TechnicalAudit {
	schemas := a.Extractor.ExtractSchemas(rawHTML)
	technical := a.Analyzer.TechnicalData(url, rawHTML, schemas)

	var analysis string
	if a.Generator != nil {
		stripped := truncateRunes(a.Sanitizer.StripSchemas(rawHTML), technicalHTMLBudget)
		if text, ok := a.generate(ctx, "technical", technicalPrompt(url, stripped), a.technicalSystem(), geoaudit.GenerateOptions{
			Temperature:     0.1,
			MaxOutputTokens: 2500,
		}); ok {
			analysis = text
		}
	}

	var score int
	if analysis != "" {
		score = a.extractScore(analysis, "technical")
	} else {
		if technical.IsHTTPS {
			score += 15
		}
		if technical.H1Count == 1 {
			score += 15
		}
		if technical.MetaDescription != "" {
			score += 10
		}
		if technical.HasCanonical {
			score += 5
		}
		if technical.Semantic.HasSemanticHTML5 {
			score += 15
		}
		if technical.SchemaCount > 0 {
			score += 20
		}
		if technical.CodeBlockCount > 0 {
			score += 10
		}
		if technical.WordCount > 500 {
			score += 10
		}
	}

	return &geoaudit.TechnicalAudit{
		Technical: technical,
		Analysis:  analysis,
		Score:     geoaudit.ClampScore(score),
		Schemas:   schemas,
	}
}
