package audit_test

import (
	"context"
	"strings"
	"testing"

	"github.com/kimmoihanus/geoaudit"
	"github.com/kimmoihanus/geoaudit/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageTypeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want geoaudit.PageType
	}{
		{"https://example.com/blog/my-post", geoaudit.PageTypeArticle},
		{"https://example.com/posts/2024", geoaudit.PageTypeArticle},
		{"https://example.com/products/widget", geoaudit.PageTypeProduct},
		{"https://example.com/docs/setup", geoaudit.PageTypeDocumentation},
		{"https://example.com/guides/intro", geoaudit.PageTypeDocumentation},
		{"https://example.com/about", geoaudit.PageTypeAbout},
		{"https://example.com/pricing", geoaudit.PageTypePricing},
		{"https://example.com", geoaudit.PageTypeHomepage},
		{"https://example.com/", geoaudit.PageTypeHomepage},
		{"https://example.com/contact", geoaudit.PageTypeGeneral},
		{"https://example.com/BLOG/Post", geoaudit.PageTypeArticle},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, audit.PageTypeFor(tt.url), "url %s", tt.url)
	}
}

func TestAuditor_Schema_Recommendations(t *testing.T) {
	t.Parallel()

	a := newRuleBasedAuditor()

	t.Run("bare page recommends Organization first", func(t *testing.T) {
		t.Parallel()

		result := a.Schema(context.Background(), "https://example.com/contact", "<html><body><p>hi</p></body></html>")
		require.NotEmpty(t, result.Recommendations)
		assert.Equal(t, "Organization", result.Recommendations[0].Type)
		assert.Equal(t, geoaudit.PriorityHigh, result.Recommendations[0].Priority)
	})

	t.Run("question-heavy page recommends FAQPage after Organization", func(t *testing.T) {
		t.Parallel()

		html := "<html><body><p>" + strings.Repeat("Really? ", 6) + "</p></body></html>"
		result := a.Schema(context.Background(), "https://example.com/contact", html)

		require.Len(t, result.Recommendations, 2)
		assert.Equal(t, "Organization", result.Recommendations[0].Type)
		assert.Equal(t, "FAQPage", result.Recommendations[1].Type)
	})

	t.Run("five question marks is not enough", func(t *testing.T) {
		t.Parallel()

		html := "<html><body><p>" + strings.Repeat("Really? ", 5) + "</p></body></html>"
		result := a.Schema(context.Background(), "https://example.com/contact", html)

		for _, rec := range result.Recommendations {
			assert.NotEqual(t, "FAQPage", rec.Type)
		}
	})

	t.Run("article page recommends Article", func(t *testing.T) {
		t.Parallel()

		result := a.Schema(context.Background(), "https://example.com/blog/post", "<html><body></body></html>")
		types := recTypes(result.Recommendations)
		assert.Contains(t, types, "Article")
	})

	t.Run("documentation page recommends HowTo", func(t *testing.T) {
		t.Parallel()

		result := a.Schema(context.Background(), "https://example.com/docs/setup", "<html><body></body></html>")
		types := recTypes(result.Recommendations)
		assert.Contains(t, types, "HowTo")
	})

	t.Run("existing types suppress recommendations", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
			<script type="application/ld+json">{"@context":"https://schema.org","@type":"Organization","name":"Acme"}</script>
			<script type="application/ld+json">{"@context":"https://schema.org","@type":"Article","headline":"Post"}</script>
		</head><body></body></html>`

		result := a.Schema(context.Background(), "https://example.com/blog/post", html)
		assert.Empty(t, result.Recommendations)
	})
}

func TestAuditor_Schema_QualityScore(t *testing.T) {
	t.Parallel()

	a := newRuleBasedAuditor()

	t.Run("no schemas", func(t *testing.T) {
		t.Parallel()

		result := a.Schema(context.Background(), "https://example.com/contact", "<html><body></body></html>")
		assert.Equal(t, 0, result.QualityScore)
		assert.Empty(t, result.ExistingJSONLD)
	})

	t.Run("organization plus article on article page", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
			<script type="application/ld+json">{"@context":"https://schema.org","@type":"Organization","name":"Acme"}</script>
			<script type="application/ld+json">{"@context":"https://schema.org","@type":"Article","headline":"Post"}</script>
		</head><body></body></html>`

		// any (30) + Organization (20) + Article (15) + no recs (15) = 80.
		result := a.Schema(context.Background(), "https://example.com/blog/post", html)
		assert.Equal(t, 80, result.QualityScore)
		assert.Equal(t, []string{"Organization", "Article"}, result.ExistingTypes)
		assert.Contains(t, result.ExistingJSONLD, `"@graph"`)
	})
}
func recTypes(recs []geoaudit.SchemaRecommendation) []string {
	types := make([]string, 0, len(recs))
	for _, r := range recs {
		types = append(types, r.Type)
	}
	return types
}
