package goquery

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kimmoihanus/geoaudit"
)

// cleanJSONLD repairs common JSON-LD breakage so a second parse attempt
// can succeed. It walks the raw string tracking string-literal state
// (respecting escape sequences): inside string literals, literal control
// characters are escaped (newline, carriage return, tab, or a \u00XX
// escape for other control bytes); outside string literals, control
// bytes other than those three are dropped.
//
// Dropping out-of-string control bytes can mask a genuinely corrupt
// payload as a partial object. That lenient behavior is intentional and
// matched to what real pages need.
func cleanJSONLD(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	inString := false
	escaped := false

	for _, r := range raw {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			b.WriteRune(r)
			escaped = true
			continue
		}
		if r == '"' {
			inString = !inString
			b.WriteRune(r)
			continue
		}
		if inString {
			switch {
			case r == '\n':
				b.WriteString(`\n`)
			case r == '\r':
				b.WriteString(`\r`)
			case r == '\t':
				b.WriteString(`\t`)
			case r < 0x20:
				fmt.Fprintf(&b, `\u%04x`, r)
			default:
				b.WriteRune(r)
			}
		} else {
			if r >= 0x20 || r == '\n' || r == '\r' || r == '\t' {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// parseJSONLD parses a raw JSON-LD payload, retrying with a sanitizing
// repass when strict parsing fails.
func parseJSONLD(raw string) (any, bool) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v, true
	}
	if err := json.Unmarshal([]byte(cleanJSONLD(raw)), &v); err == nil {
		return v, true
	}
	return nil, false
}

// flattenSchema flattens a parsed JSON-LD value into individual nodes.
// An object with an array under "@graph" contributes its graph members;
// an object declaring "@type" is one node; an array contributes each of
// its items. Anything else yields no nodes.
func flattenSchema(v any) []geoaudit.SchemaNode {
	var nodes []geoaudit.SchemaNode
	switch t := v.(type) {
	case map[string]any:
		if graph, ok := t["@graph"].([]any); ok {
			for _, member := range graph {
				nodes = append(nodes, flattenSchema(member)...)
			}
		} else if _, ok := t["@type"]; ok {
			nodes = append(nodes, geoaudit.SchemaNode(t))
		}
	case []any:
		for _, item := range t {
			nodes = append(nodes, flattenSchema(item)...)
		}
	}
	return nodes
}
