package geoaudit

import "context"

// Priority classifies how urgent a recommendation is.
type Priority string

// Recommendation priorities.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// PageType is a coarse content-category classification inferred from
// URL shape.
type PageType string

// Page types, in detection priority order.
const (
	PageTypeArticle       PageType = "article"
	PageTypeProduct       PageType = "product"
	PageTypeDocumentation PageType = "documentation"
	PageTypeAbout         PageType = "about"
	PageTypePricing       PageType = "pricing"
	PageTypeHomepage      PageType = "homepage"
	PageTypeGeneral       PageType = "general"
)

// Recommendation is one actionable improvement surfaced by an audit.
type Recommendation struct {
	Priority Priority `json:"priority"`
	Category string   `json:"category"`
	Issue    string   `json:"issue"`
	Action   string   `json:"action"`
}

// SchemaRecommendation suggests a missing Schema.org type.
type SchemaRecommendation struct {
	Type     string   `json:"type"`
	Priority Priority `json:"priority"`
	Reason   string   `json:"reason"`
}

// TechnicalAudit is the result of a technical audit.
type TechnicalAudit struct {
	Technical *TechnicalData `json:"technical"`
	Analysis  string         `json:"analysis"`
	Score     int            `json:"score"`
	Schemas   []SchemaNode   `json:"schemas"`
}

// ContentAudit is the result of a content quality audit.
type ContentAudit struct {
	Analysis string `json:"analysis"`
	Score    int    `json:"score"`
}

// SchemaAudit is the result of a structured data audit.
type SchemaAudit struct {
	ExistingSchemas []SchemaNode           `json:"existingSchemas"`
	ExistingTypes   []string               `json:"existingTypes"`
	PageType        PageType               `json:"pageType"`
	PageData        *PageData              `json:"pageData"`
	Recommendations []SchemaRecommendation `json:"recommendations"`
	QualityScore    int                    `json:"qualityScore"`

	// ExistingJSONLD is the existing schemas re-serialized as one
	// indented JSON-LD @graph document, or empty if none were found.
	ExistingJSONLD string `json:"existingJsonLd,omitempty"`
}

// SchemaTemplate is a generated JSON-LD starting point for a missing type.
type SchemaTemplate struct {
	Type     string   `json:"type"`
	Priority Priority `json:"priority"`
	Reason   string   `json:"reason"`
	JSONLD   string   `json:"jsonLd"`
}

// GeneralTechnical summarizes the technical audit inside a general audit.
type GeneralTechnical struct {
	Score    int            `json:"score"`
	Data     *TechnicalData `json:"data"`
	Analysis string         `json:"analysis"`
}

// GeneralContent summarizes the content audit inside a general audit.
type GeneralContent struct {
	Score    int    `json:"score"`
	Analysis string `json:"analysis"`
}

// GeneralSchema summarizes the schema audit inside a general audit.
type GeneralSchema struct {
	Score           int                    `json:"score"`
	ExistingCount   int                    `json:"existingCount"`
	ExistingTypes   []string               `json:"existingTypes"`
	Recommendations []SchemaRecommendation `json:"recommendations"`
	ExistingJSONLD  string                 `json:"existingJsonLd,omitempty"`
}

// Summary lists the page's notable strengths and high-priority gaps.
type Summary struct {
	Strengths []string `json:"strengths"`
	Gaps      []string `json:"gaps"`
}

// GeneralAudit is the top-level aggregate of all three audits.
type GeneralAudit struct {
	URL             string           `json:"url"`
	OverallScore    int              `json:"overallScore"`
	Grade           string           `json:"grade"`
	Technical       GeneralTechnical `json:"technical"`
	Content         GeneralContent   `json:"content"`
	Schema          GeneralSchema    `json:"schema"`
	Recommendations []Recommendation `json:"recommendations"`
	Summary         Summary          `json:"summary"`
}

// AISearchInput is the input to AI-based comprehensive scoring.
type AISearchInput struct {
	URL              string   `json:"url"`
	TechnicalScore   int      `json:"technicalScore"`
	ContentScore     int      `json:"contentScore"`
	SchemaScore      int      `json:"schemaScore"`
	SchemaTypes      []string `json:"schemaTypes"`
	HasSemanticHTML5 bool     `json:"hasSemanticHTML5"`
	CodeBlockCount   int      `json:"codeBlockCount"`
	WordCount        int      `json:"wordCount"`
}

// AISearchResult is the result of AI-based comprehensive scoring.
type AISearchResult struct {
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
}

// Auditor runs AI search visibility audits on single HTML snapshots.
// The audit methods never fail: internal errors degrade to rule-based or
// default scoring, and every method returns a well-formed result. The
// context bounds optional text generation calls only.
type Auditor interface {
	// Technical audits HTML structure, metadata, and headings.
	Technical(ctx context.Context, url, html string) *TechnicalAudit

	// Content audits content quality using the cleaned content HTML.
	Content(ctx context.Context, url, html string) *ContentAudit

	// Schema audits existing structured data and recommends missing types.
	Schema(ctx context.Context, url, html string) *SchemaAudit

	// General runs all three audits concurrently and combines them into
	// a weighted overall score with a letter grade.
	General(ctx context.Context, url, html string) *GeneralAudit

	// AISearchScore delegates comprehensive scoring to the text
	// generation collaborator, returning a fixed default when it is
	// unavailable.
	AISearchScore(ctx context.Context, input AISearchInput) *AISearchResult
}

// Overall score weights for the general audit.
const (
	TechnicalWeight = 0.35
	ContentWeight   = 0.35
	SchemaWeight    = 0.30
)

// GradeFor maps an overall score to a letter grade.
func GradeFor(score int) string {
	switch {
	case score >= 85:
		return "A"
	case score >= 70:
		return "B"
	case score >= 55:
		return "C"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}

// ClampScore bounds a score to [0, 100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
