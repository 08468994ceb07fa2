package audit

import (
	"context"
	"fmt"
	"math"

	"github.com/kimmoihanus/geoaudit"
	"golang.org/x/sync/errgroup"
)

// General runs the three audits concurrently and combines them into a
// weighted overall score, letter grade, merged recommendation list, and
// a strengths/gaps summary. The auditors share no mutable state, so a
// collaborator failure in one cannot abort the others.
func (a *Auditor) General(ctx context.Context, url, rawHTML string) *geoaudit.GeneralAudit {
	var (
		technical *geoaudit.TechnicalAudit
		content   *geoaudit.ContentAudit
		schema    *geoaudit.SchemaAudit
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		technical = a.Technical(gctx, url, rawHTML)
		return nil
	})
	g.Go(func() error {
		content = a.Content(gctx, url, rawHTML)
		return nil
	})
	g.Go(func() error {
		schema = a.Schema(gctx, url, rawHTML)
		return nil
	})
	_ = g.Wait()

	overall := int(math.Round(
		float64(technical.Score)*geoaudit.TechnicalWeight +
			float64(content.Score)*geoaudit.ContentWeight +
			float64(schema.QualityScore)*geoaudit.SchemaWeight))
	overall = geoaudit.ClampScore(overall)

	recommendations := []geoaudit.Recommendation{}
	if technical.Technical.MetaDescription == "" {
		recommendations = append(recommendations, geoaudit.Recommendation{
			Priority: geoaudit.PriorityMedium,
			Category: "technical",
			Issue:    "Missing meta description",
			Action:   "Add a clear meta description",
		})
	}
	if technical.Technical.H1Count != 1 {
		issue := "Multiple H1 tags"
		if technical.Technical.H1Count == 0 {
			issue = "No H1 tag"
		}
		recommendations = append(recommendations, geoaudit.Recommendation{
			Priority: geoaudit.PriorityMedium,
			Category: "technical",
			Issue:    issue,
			Action:   "Ensure exactly one H1 tag per page",
		})
	}
	for _, rec := range schema.Recommendations {
		recommendations = append(recommendations, geoaudit.Recommendation{
			Priority: rec.Priority,
			Category: "schema",
			Issue:    fmt.Sprintf("Missing %s schema", rec.Type),
			Action:   rec.Reason,
		})
	}

	strengths := []string{}
	if technical.Technical.IsHTTPS {
		strengths = append(strengths, "HTTPS enabled")
	}
	if technical.Technical.H1Count == 1 {
		strengths = append(strengths, "Proper H1 structure")
	}
	if technical.Technical.SchemaCount > 0 {
		strengths = append(strengths, fmt.Sprintf("%d schema(s) found", technical.Technical.SchemaCount))
	}
	if technical.Technical.Semantic != nil && technical.Technical.Semantic.HasSemanticHTML5 {
		strengths = append(strengths, "Semantic HTML5")
	}
	if technical.Technical.CodeBlockCount > 0 {
		strengths = append(strengths, fmt.Sprintf("%d code examples", technical.Technical.CodeBlockCount))
	}

	gaps := []string{}
	for _, rec := range recommendations {
		if rec.Priority == geoaudit.PriorityHigh {
			gaps = append(gaps, rec.Issue)
		}
	}

	return &geoaudit.GeneralAudit{
		URL:          url,
		OverallScore: overall,
		Grade:        geoaudit.GradeFor(overall),
		Technical: geoaudit.GeneralTechnical{
			Score:    technical.Score,
			Data:     technical.Technical,
			Analysis: technical.Analysis,
		},
		Content: geoaudit.GeneralContent{
			Score:    content.Score,
			Analysis: content.Analysis,
		},
		Schema: geoaudit.GeneralSchema{
			Score:           schema.QualityScore,
			ExistingCount:   len(schema.ExistingSchemas),
			ExistingTypes:   schema.ExistingTypes,
			Recommendations: schema.Recommendations,
			ExistingJSONLD:  schema.ExistingJSONLD,
		},
		Recommendations: recommendations,
		Summary: geoaudit.Summary{
			Strengths: strengths,
			Gaps:      gaps,
		},
	}
}
