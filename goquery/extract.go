package goquery

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/kimmoihanus/geoaudit"
)

// jsonLdScriptRE matches JSON-LD script tags independently of the parsed
// DOM, as a last-resort extraction strategy.
var jsonLdScriptRE = regexp.MustCompile(`(?is)<script[^>]*type\s*=\s*["']application/ld\+json["'][^>]*>(.*?)</script>`)

// frameworkSchemaKeys are object keys that commonly hold structured data
// inside framework hydration payloads. Matching is case-insensitive.
// Only these keys (plus the generic pageProps/props containers) are
// descended into, bounding the search cost.
var frameworkSchemaKeys = map[string]bool{
	"schema":         true,
	"jsonld":         true,
	"ldjson":         true,
	"structureddata": true,
	"seo":            true,
	"head":           true,
}

// Ensure Extractor implements geoaudit.SchemaExtractor at compile time.
var _ geoaudit.SchemaExtractor = (*Extractor)(nil)

// Extractor recovers Schema.org nodes from raw HTML. Real-world pages
// embed structured data inconsistently: some JSON-LD is malformed, some
// data is attribute-based microdata without any script tag, and some is
// nested inside framework hydration payloads. The extractor runs four
// strategies and deduplicates the combined output by serialized content.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractSchemas returns all unique schema nodes found in the HTML, in
// first-seen order across strategies. It never fails: a failure in one
// strategy is swallowed and extraction continues with the rest.
func (e *Extractor) ExtractSchemas(html string) []geoaudit.SchemaNode {
	out := []geoaudit.SchemaNode{}
	seen := make(map[uint64]bool)

	add := func(node geoaudit.SchemaNode) {
		serialized, err := json.Marshal(node)
		if err != nil {
			return
		}
		key := xxhash.Sum64(serialized)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, node)
	}

	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		// Strategy 1: JSON-LD script blocks. The type attribute match is
		// deliberately loose to cover quoting and casing variants.
		doc.Find("script").Each(func(_ int, sel *goquery.Selection) {
			typ, _ := sel.Attr("type")
			if !strings.Contains(strings.ToLower(typ), "ld+json") {
				return
			}
			raw := sel.Text()
			if strings.TrimSpace(raw) == "" {
				return
			}
			if v, ok := parseJSONLD(raw); ok {
				for _, node := range flattenSchema(v) {
					add(node)
				}
			}
		})

		// Strategy 2: attribute-based microdata.
		for _, node := range extractMicrodata(doc) {
			add(node)
		}

		// Strategy 3: framework hydration payload.
		if next := doc.Find("#__NEXT_DATA__"); next.Length() > 0 {
			var payload any
			if err := json.Unmarshal([]byte(next.First().Text()), &payload); err == nil {
				findFrameworkSchemas(payload, add)
			}
		}
	}

	// Strategy 4: regex fallback over the raw text, catching JSON-LD in
	// documents the parser mangled.
	for _, m := range jsonLdScriptRE.FindAllStringSubmatch(html, -1) {
		raw := m[1]
		if strings.TrimSpace(raw) == "" {
			continue
		}
		if v, ok := parseJSONLD(raw); ok {
			for _, node := range flattenSchema(v) {
				add(node)
			}
		}
	}

	return out
}

// findFrameworkSchemas recursively searches a hydration payload for
// schema roots: objects with "@type" plus at least one corroborating key
// (@context, name, url, mainEntity). Descent stops at schema roots and
// otherwise follows only keys likely to hold structured data. Keys are
// visited in sorted order so output order is stable.
func findFrameworkSchemas(v any, add func(geoaudit.SchemaNode)) {
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			findFrameworkSchemas(item, add)
		}
	case map[string]any:
		if _, ok := t["@type"]; ok {
			if t["@context"] != nil || t["name"] != nil || t["url"] != nil || t["mainEntity"] != nil {
				for _, node := range flattenSchema(t) {
					add(node)
				}
				return
			}
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if frameworkSchemaKeys[strings.ToLower(k)] || k == "pageProps" || k == "props" {
				findFrameworkSchemas(t[k], add)
			}
		}
	}
}
