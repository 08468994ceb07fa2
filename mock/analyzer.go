package mock

import "github.com/kimmoihanus/geoaudit"

var _ geoaudit.SchemaExtractor = (*SchemaExtractor)(nil)

// SchemaExtractor is a mock implementation of geoaudit.SchemaExtractor.
type SchemaExtractor struct {
	ExtractSchemasFn func(html string) []geoaudit.SchemaNode
}

func (e *SchemaExtractor) ExtractSchemas(html string) []geoaudit.SchemaNode {
	return e.ExtractSchemasFn(html)
}

var _ geoaudit.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of geoaudit.Sanitizer.
type Sanitizer struct {
	ContentOnlyFn  func(html string) string
	StripSchemasFn func(html string) string
}

func (s *Sanitizer) ContentOnly(html string) string {
	return s.ContentOnlyFn(html)
}

func (s *Sanitizer) StripSchemas(html string) string {
	return s.StripSchemasFn(html)
}

var _ geoaudit.PageAnalyzer = (*PageAnalyzer)(nil)

// PageAnalyzer is a mock implementation of geoaudit.PageAnalyzer.
type PageAnalyzer struct {
	StructureFn     func(html string) *geoaudit.SemanticStructure
	PageDataFn      func(url, html string) *geoaudit.PageData
	TechnicalDataFn func(url, html string, schemas []geoaudit.SchemaNode) *geoaudit.TechnicalData
	QuestionMarksFn func(html string) int
}

func (a *PageAnalyzer) Structure(html string) *geoaudit.SemanticStructure {
	return a.StructureFn(html)
}

func (a *PageAnalyzer) PageData(url, html string) *geoaudit.PageData {
	return a.PageDataFn(url, html)
}

func (a *PageAnalyzer) TechnicalData(url, html string, schemas []geoaudit.SchemaNode) *geoaudit.TechnicalData {
	return a.TechnicalDataFn(url, html, schemas)
}

func (a *PageAnalyzer) QuestionMarks(html string) int {
	return a.QuestionMarksFn(html)
}
