package geoaudit_test

import (
	"testing"

	"github.com/kimmoihanus/geoaudit"
	"github.com/stretchr/testify/assert"
)

func TestSchemaNode_TypeStrings(t *testing.T) {
	t.Parallel()

	t.Run("string type", func(t *testing.T) {
		t.Parallel()
		n := geoaudit.SchemaNode{"@type": "Organization"}
		assert.Equal(t, []string{"Organization"}, n.TypeStrings())
	})

	t.Run("array type from decoded JSON", func(t *testing.T) {
		t.Parallel()
		n := geoaudit.SchemaNode{"@type": []any{"Article", "TechArticle"}}
		assert.Equal(t, []string{"Article", "TechArticle"}, n.TypeStrings())
	})

	t.Run("missing type", func(t *testing.T) {
		t.Parallel()
		n := geoaudit.SchemaNode{"name": "no type here"}
		assert.Empty(t, n.TypeStrings())
	})

	t.Run("non-string type", func(t *testing.T) {
		t.Parallel()
		n := geoaudit.SchemaNode{"@type": 42}
		assert.Empty(t, n.TypeStrings())
	})
}

func TestUniqueTypes(t *testing.T) {
	t.Parallel()

	nodes := []geoaudit.SchemaNode{
		{"@type": "Organization"},
		{"@type": []any{"Article", "Organization"}},
		{"@type": "FAQPage"},
	}

	assert.Equal(t, []string{"Organization", "Article", "FAQPage"}, geoaudit.UniqueTypes(nodes))
}

func TestUniqueTypes_Empty(t *testing.T) {
	t.Parallel()

	// Callers serialize the result, so it must be an empty slice rather
	// than nil.
	assert.NotNil(t, geoaudit.UniqueTypes(nil))
	assert.Empty(t, geoaudit.UniqueTypes(nil))
}

func TestHasType(t *testing.T) {
	t.Parallel()

	nodes := []geoaudit.SchemaNode{
		{"@type": "Organization"},
		{"@type": []any{"Article", "BlogPosting"}},
	}

	assert.True(t, geoaudit.HasType(nodes, "Organization"))
	assert.True(t, geoaudit.HasType(nodes, "BlogPosting"))
	assert.False(t, geoaudit.HasType(nodes, "FAQPage"))
}
