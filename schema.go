package geoaudit

// SchemaNode is a single Schema.org node recovered from a page. The shape
// is arbitrary JSON; only the "@type" key is guaranteed after extraction.
// "@type" may be a string or an array of strings.
type SchemaNode map[string]any

// TypeStrings returns the node's "@type" values as a flat string slice.
// A missing or non-string type yields an empty slice.
func (n SchemaNode) TypeStrings() []string {
	switch t := n["@type"].(type) {
	case string:
		return []string{t}
	case []any:
		var types []string
		for _, v := range t {
			if s, ok := v.(string); ok {
				types = append(types, s)
			}
		}
		return types
	case []string:
		return t
	}
	return nil
}

// SchemaExtractor recovers structured data nodes from raw HTML.
// Extraction never fails: malformed input yields fewer (or zero) nodes.
type SchemaExtractor interface {
	// ExtractSchemas returns all unique schema nodes found in the HTML,
	// in first-seen order across extraction strategies. Two nodes with
	// identical serialized content are the same node regardless of which
	// strategy found them.
	ExtractSchemas(html string) []SchemaNode
}

// UniqueTypes returns the distinct type names across the given nodes,
// preserving first-seen order.
func UniqueTypes(nodes []SchemaNode) []string {
	seen := make(map[string]bool)
	types := []string{}
	for _, n := range nodes {
		for _, t := range n.TypeStrings() {
			if !seen[t] {
				seen[t] = true
				types = append(types, t)
			}
		}
	}
	return types
}

// HasType reports whether any of the nodes declares the given type.
func HasType(nodes []SchemaNode, name string) bool {
	for _, n := range nodes {
		for _, t := range n.TypeStrings() {
			if t == name {
				return true
			}
		}
	}
	return false
}
