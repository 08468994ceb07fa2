package audit_test

import (
	"context"
	"testing"

	"github.com/kimmoihanus/geoaudit"
	"github.com/kimmoihanus/geoaudit/audit"
	"github.com/kimmoihanus/geoaudit/goquery"
	"github.com/kimmoihanus/geoaudit/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRuleBasedAuditor returns an auditor with real HTML collaborators
// and no text generator, so every score is deterministic.
func newRuleBasedAuditor() *audit.Auditor {
	return &audit.Auditor{
		Sanitizer: goquery.NewSanitizer(),
		Extractor: goquery.NewExtractor(),
		Analyzer:  goquery.NewAnalyzer(),
	}
}

// fullSignalHTML carries every rule-based technical signal: HTTPS URL,
// one H1, meta description, canonical, semantic HTML5, a schema, a code
// block, and over 500 words.
const fullSignalURL = "https://example.com/docs/setup"

func fullSignalHTML(t *testing.T) string {
	t.Helper()
	words := ""
	for range 600 {
		words += "word "
	}
	return `<html><head>
		<title>Setup</title>
		<meta name="description" content="How to set it up">
		<link rel="canonical" href="https://example.com/docs/setup">
		<script type="application/ld+json">{"@type":"Organization","name":"Acme"}</script>
	</head><body>
		<main><h1>Setup</h1><pre><code>make install</code></pre><p>` + words + `</p></main>
	</body></html>`
}

func TestAuditor_Technical_RuleBased(t *testing.T) {
	t.Parallel()

	a := newRuleBasedAuditor()

	t.Run("all signals present", func(t *testing.T) {
		t.Parallel()

		result := a.Technical(context.Background(), fullSignalURL, fullSignalHTML(t))
		assert.Equal(t, 100, result.Score)
		assert.Empty(t, result.Analysis)
		require.Len(t, result.Schemas, 1)
		assert.Equal(t, 1, result.Technical.H1Count)
	})

	t.Run("no signals", func(t *testing.T) {
		t.Parallel()

		result := a.Technical(context.Background(), "http://example.com/x", "<html><body><div>hi</div></body></html>")
		assert.Equal(t, 0, result.Score)
	})

	t.Run("partial signals", func(t *testing.T) {
		t.Parallel()

		// HTTPS (15) + one H1 (15) + semantic HTML5 (15) = 45.
		html := `<html><body><main><h1>Hello</h1></main></body></html>`
		result := a.Technical(context.Background(), "https://example.com/x", html)
		assert.Equal(t, 45, result.Score)
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		t.Parallel()

		html := fullSignalHTML(t)
		first := a.Technical(context.Background(), fullSignalURL, html)
		for range 5 {
			assert.Equal(t, first, a.Technical(context.Background(), fullSignalURL, html))
		}
	})
}

func TestAuditor_Technical_WithGenerator(t *testing.T) {
	t.Parallel()

	t.Run("score extracted from analysis", func(t *testing.T) {
		t.Parallel()

		a := newRuleBasedAuditor()
		a.Generator = &mock.Generator{
			GenerateFn: func(ctx context.Context, prompt, system string, opts geoaudit.GenerateOptions) (string, error) {
				assert.InDelta(t, 0.1, opts.Temperature, 0.001)
				assert.Equal(t, int32(2500), opts.MaxOutputTokens)
				assert.NotContains(t, prompt, "ld+json", "schemas are stripped before prompting")
				return "## Strengths\n- fine\n\nScore: 82", nil
			},
		}

		result := a.Technical(context.Background(), fullSignalURL, fullSignalHTML(t))
		assert.Equal(t, 82, result.Score)
		assert.Contains(t, result.Analysis, "Score: 82")
	})

	t.Run("generator failure falls back to rules", func(t *testing.T) {
		t.Parallel()

		a := newRuleBasedAuditor()
		a.Generator = &mock.Generator{
			GenerateFn: func(ctx context.Context, prompt, system string, opts geoaudit.GenerateOptions) (string, error) {
				return "", geoaudit.Errorf(geoaudit.EINTERNAL, "model exploded")
			},
		}

		result := a.Technical(context.Background(), fullSignalURL, fullSignalHTML(t))
		assert.Equal(t, 100, result.Score)
		assert.Empty(t, result.Analysis)
	})

	t.Run("unconfigured generator falls back to rules", func(t *testing.T) {
		t.Parallel()

		a := newRuleBasedAuditor()
		a.Generator = &mock.Generator{
			GenerateFn: func(ctx context.Context, prompt, system string, opts geoaudit.GenerateOptions) (string, error) {
				return "", geoaudit.Errorf(geoaudit.EUNAVAILABLE, "text generation service not configured")
			},
		}

		result := a.Technical(context.Background(), fullSignalURL, fullSignalHTML(t))
		assert.Equal(t, 100, result.Score)
	})
}

func TestAuditor_Technical_ScoreExtraction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		analysis string
		want     int
	}{
		{"score label", "All good.\nScore: 88", 88},
		{"score with dash", "Score - 71", 71},
		{"fraction of 100", "I rate this 64/100 overall", 64},
		{"out of 100", "This page scores 59 out of 100", 59},
		{"out of range value ignored", "Score: 250", 50},
		{"no score at all", "Looks reasonable to me.", 50},
		{"zero is valid", "Score: 0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := newRuleBasedAuditor()
			a.Generator = &mock.Generator{
				GenerateFn: func(ctx context.Context, prompt, system string, opts geoaudit.GenerateOptions) (string, error) {
					return tt.analysis, nil
				},
			}

			result := a.Technical(context.Background(), "https://example.com/", "<html><body></body></html>")
			assert.Equal(t, tt.want, result.Score)
		})
	}
}
