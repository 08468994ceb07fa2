package goquery_test

import (
	"testing"

	"github.com/kimmoihanus/geoaudit"
	"github.com/kimmoihanus/geoaudit/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Microdata(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor()

	t.Run("simple scope with tag-specific values", func(t *testing.T) {
		t.Parallel()

		html := `<div itemscope itemtype="https://schema.org/Person">
			<span itemprop="name">Jane Doe</span>
			<a itemprop="url" href="https://example.com/jane">profile</a>
			<img itemprop="image" src="/jane.jpg">
			<meta itemprop="jobTitle" content="Engineer">
			<time itemprop="birthDate" datetime="1990-01-01">Jan 1</time>
		</div>`

		schemas := e.ExtractSchemas(html)
		require.Len(t, schemas, 1)
		assert.Equal(t, "Person", schemas[0]["@type"])
		assert.Equal(t, "Jane Doe", schemas[0]["name"])
		assert.Equal(t, "https://example.com/jane", schemas[0]["url"])
		assert.Equal(t, "/jane.jpg", schemas[0]["image"])
		assert.Equal(t, "Engineer", schemas[0]["jobTitle"])
		assert.Equal(t, "1990-01-01", schemas[0]["birthDate"])
	})

	t.Run("nested scope becomes nested node", func(t *testing.T) {
		t.Parallel()

		html := `<div itemscope itemtype="https://schema.org/Article">
			<span itemprop="headline">Title</span>
			<div itemprop="author" itemscope itemtype="https://schema.org/Person">
				<span itemprop="name">Jane</span>
			</div>
		</div>`

		schemas := e.ExtractSchemas(html)
		require.Len(t, schemas, 1)

		author, ok := schemas[0]["author"].(geoaudit.SchemaNode)
		require.True(t, ok, "author should be a nested node")
		assert.Equal(t, "Person", author["@type"])
		assert.Equal(t, "Jane", author["name"])

		// The nested scope's property must not leak into the parent.
		assert.NotContains(t, schemas[0], "name")
	})

	t.Run("repeated property becomes array", func(t *testing.T) {
		t.Parallel()

		html := `<div itemscope itemtype="https://schema.org/Recipe">
			<span itemprop="ingredient">flour</span>
			<span itemprop="ingredient">water</span>
		</div>`

		schemas := e.ExtractSchemas(html)
		require.Len(t, schemas, 1)
		assert.Equal(t, []any{"flour", "water"}, schemas[0]["ingredient"])
	})

	t.Run("empty values are skipped", func(t *testing.T) {
		t.Parallel()

		html := `<div itemscope itemtype="https://schema.org/Person">
			<span itemprop="name"></span>
		</div>`

		schemas := e.ExtractSchemas(html)
		require.Len(t, schemas, 1)
		assert.NotContains(t, schemas[0], "name")
	})

	t.Run("itemtype without schema.org path is ignored", func(t *testing.T) {
		t.Parallel()

		html := `<div itemscope itemtype="https://example.com/Thing">
			<span itemprop="name">x</span>
		</div>`

		assert.Empty(t, e.ExtractSchemas(html))
	})
}

func TestExtractor_MicrodataFAQPage(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor()

	html := `<div itemscope itemtype="https://schema.org/FAQPage">
		<div itemscope itemtype="https://schema.org/Question">
			<h3 itemprop="name">What is it?</h3>
			<div itemscope itemtype="https://schema.org/Answer">
				<p itemprop="text">A thing.</p>
			</div>
		</div>
		<div itemscope itemtype="https://schema.org/Question">
			<h3 itemprop="name">How much?</h3>
			<div itemscope itemtype="https://schema.org/Answer">
				<p itemprop="text">Free.</p>
			</div>
		</div>
	</div>`

	schemas := e.ExtractSchemas(html)
	require.Len(t, schemas, 1)
	assert.Equal(t, "FAQPage", schemas[0]["@type"])

	mainEntity, ok := schemas[0]["mainEntity"].([]any)
	require.True(t, ok, "mainEntity should be an array")
	require.Len(t, mainEntity, 2)

	first, ok := mainEntity[0].(geoaudit.SchemaNode)
	require.True(t, ok)
	assert.Equal(t, "Question", first["@type"])
	assert.Equal(t, "What is it?", first["name"])

	answer, ok := first["acceptedAnswer"].(geoaudit.SchemaNode)
	require.True(t, ok)
	assert.Equal(t, "Answer", answer["@type"])
	assert.Equal(t, "A thing.", answer["text"])
}

func TestExtractor_MicrodataBreadcrumbList(t *testing.T) {
	t.Parallel()

	e := goquery.NewExtractor()

	html := `<ol itemscope itemtype="https://schema.org/BreadcrumbList">
		<li itemscope itemtype="https://schema.org/ListItem">
			<meta itemprop="position" content="1">
			<a itemprop="item" href="/"><span itemprop="name">Home</span></a>
		</li>
		<li itemscope itemtype="https://schema.org/ListItem">
			<meta itemprop="position" content="2">
			<a itemprop="item" href="/blog"><span itemprop="name">Blog</span></a>
		</li>
	</ol>`

	schemas := e.ExtractSchemas(html)
	require.Len(t, schemas, 1)
	assert.Equal(t, "BreadcrumbList", schemas[0]["@type"])

	items, ok := schemas[0]["itemListElement"].([]any)
	require.True(t, ok)
	require.Len(t, items, 2)

	second, ok := items[1].(geoaudit.SchemaNode)
	require.True(t, ok)
	assert.Equal(t, 2, second["position"])
	assert.Equal(t, "Blog", second["name"])
	assert.Equal(t, "/blog", second["item"])
}
