package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kimmoihanus/geoaudit"
	"golang.org/x/net/html"
)

// schemaTypeRE derives the schema type from the trailing path of an
// itemtype URL (e.g. https://schema.org/Person -> Person).
var schemaTypeRE = regexp.MustCompile(`schema\.org/(.+)$`)

// extractMicrodata converts itemscope/itemtype annotations into schema
// nodes. Only top-level scopes are walked directly; nested scopes become
// nested values during node construction, so each scope is visited
// exactly once.
func extractMicrodata(doc *goquery.Document) []geoaudit.SchemaNode {
	var schemas []geoaudit.SchemaNode
	doc.Find("[itemscope][itemtype]").Each(func(_ int, sel *goquery.Selection) {
		if len(sel.Nodes) == 0 || nearestScope(sel.Nodes[0]) != nil {
			return
		}
		node := microdataNode(sel, sel.AttrOr("itemtype", ""))
		if node != nil {
			schemas = append(schemas, node)
		}
	})
	return schemas
}

// microdataNode builds one schema node from an itemscope element.
// Returns nil when no schema type can be derived from the itemtype URL.
func microdataNode(scope *goquery.Selection, itemType string) geoaudit.SchemaNode {
	m := schemaTypeRE.FindStringSubmatch(itemType)
	if m == nil || len(scope.Nodes) == 0 {
		return nil
	}
	schemaType := m[1]
	scopeNode := scope.Nodes[0]

	schema := geoaudit.SchemaNode{"@type": schemaType}

	scope.Find("[itemprop]").Each(func(_ int, prop *goquery.Selection) {
		if len(prop.Nodes) == 0 || nearestScope(prop.Nodes[0]) != scopeNode {
			return
		}
		name := prop.AttrOr("itemprop", "")
		if name == "" {
			return
		}

		var value any
		if _, nested := prop.Attr("itemscope"); nested {
			child := microdataNode(prop, prop.AttrOr("itemtype", ""))
			if child == nil {
				return
			}
			value = child
		} else {
			value = microdataValue(prop)
		}
		if s, ok := value.(string); ok && s == "" {
			return
		}

		if existing, ok := schema[name]; ok {
			if list, ok := existing.([]any); ok {
				schema[name] = append(list, value)
			} else {
				schema[name] = []any{existing, value}
			}
		} else {
			schema[name] = value
		}
	})

	switch schemaType {
	case "FAQPage":
		if mainEntity := microdataFAQEntities(scope); len(mainEntity) > 0 {
			schema["mainEntity"] = mainEntity
		}
	case "BreadcrumbList":
		if items := microdataListItems(scope); len(items) > 0 {
			schema["itemListElement"] = items
		}
	}

	return schema
}

// microdataValue extracts a property value by tag-specific rule.
func microdataValue(prop *goquery.Selection) string {
	switch goquery.NodeName(prop) {
	case "meta":
		return prop.AttrOr("content", "")
	case "a", "link":
		return prop.AttrOr("href", "")
	case "img":
		return prop.AttrOr("src", "")
	case "time":
		if dt := prop.AttrOr("datetime", ""); dt != "" {
			return dt
		}
		return strings.TrimSpace(prop.Text())
	default:
		return strings.TrimSpace(prop.Text())
	}
}

// microdataFAQEntities builds the mainEntity array for a FAQPage scope
// from nested Question/Answer items.
func microdataFAQEntities(scope *goquery.Selection) []any {
	var mainEntity []any
	scope.Find("[itemtype*='Question']").Each(func(_ int, q *goquery.Selection) {
		question := geoaudit.SchemaNode{"@type": "Question"}

		if name := strings.TrimSpace(q.Find("[itemprop='name']").First().Text()); name != "" {
			question["name"] = name
		}

		if answer := q.Find("[itemtype*='Answer']").First(); answer.Length() > 0 {
			text := strings.TrimSpace(answer.Find("[itemprop='text']").First().Text())
			if text == "" {
				text = strings.TrimSpace(answer.Text())
			}
			question["acceptedAnswer"] = geoaudit.SchemaNode{
				"@type": "Answer",
				"text":  text,
			}
		}

		if question["name"] != nil && question["acceptedAnswer"] != nil {
			mainEntity = append(mainEntity, question)
		}
	})
	return mainEntity
}

// microdataListItems builds the itemListElement array for a
// BreadcrumbList scope from nested ListItem items.
func microdataListItems(scope *goquery.Selection) []any {
	var items []any
	scope.Find("[itemtype*='ListItem']").Each(func(_ int, li *goquery.Selection) {
		item := geoaudit.SchemaNode{"@type": "ListItem"}

		if pos := li.Find("[itemprop='position']").First(); pos.Length() > 0 {
			raw := pos.AttrOr("content", "")
			if raw == "" {
				raw = pos.Text()
			}
			if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
				item["position"] = n
			}
		}
		if name := strings.TrimSpace(li.Find("[itemprop='name']").First().Text()); name != "" {
			item["name"] = name
		}
		if el := li.Find("[itemprop='item']").First(); el.Length() > 0 {
			v := el.AttrOr("href", "")
			if v == "" {
				v = strings.TrimSpace(el.Text())
			}
			if v != "" {
				item["item"] = v
			}
		}

		if len(item) > 1 {
			items = append(items, item)
		}
	})
	return items
}

// nearestScope returns the closest proper ancestor element carrying an
// itemscope attribute, or nil for a top-level scope. Walking the parent
// chain resolves which scope an itemprop belongs to without back-pointer
// bookkeeping.
func nearestScope(n *html.Node) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		for _, attr := range p.Attr {
			if attr.Key == "itemscope" {
				return p
			}
		}
	}
	return nil
}
