package geoaudit

// MaxHeadings caps the heading hierarchy recorded per document.
const MaxHeadings = 20

// SemanticElementCounts holds per-landmark element counts.
type SemanticElementCounts struct {
	Header  int `json:"header"`
	Nav     int `json:"nav"`
	Main    int `json:"main"`
	Article int `json:"article"`
	Section int `json:"section"`
	Aside   int `json:"aside"`
	Footer  int `json:"footer"`
}

// HeadingCounts holds per-level heading counts.
type HeadingCounts struct {
	H1 int `json:"h1"`
	H2 int `json:"h2"`
	H3 int `json:"h3"`
	H4 int `json:"h4"`
	H5 int `json:"h5"`
	H6 int `json:"h6"`
}

// ContentElementCounts holds counts of content element categories.
type ContentElementCounts struct {
	Paragraphs int `json:"paragraphs"`
	Lists      int `json:"lists"`
	Tables     int `json:"tables"`
	Figures    int `json:"figures"`
	Images     int `json:"images"`
	CodeBlocks int `json:"codeBlocks"`
}

// AccessibilityCounts holds accessibility-related element counts.
type AccessibilityCounts struct {
	ImagesWithAlt    int `json:"imagesWithAlt"`
	ImagesWithoutAlt int `json:"imagesWithoutAlt"`
	AriaLabels       int `json:"ariaLabels"`
	Landmarks        int `json:"landmarks"`
}

// Heading is one entry in a document's heading outline.
type Heading struct {
	// Level is the numeric heading level (1-6).
	Level int `json:"level"`

	// Text is the heading text, truncated to 100 characters.
	Text string `json:"text"`
}

// SemanticStructure summarizes the semantic markup of one HTML document.
type SemanticStructure struct {
	SemanticElements      SemanticElementCounts `json:"semanticElements"`
	HeadingStructure      HeadingCounts         `json:"headingStructure"`
	ContentElements       ContentElementCounts  `json:"contentElements"`
	AccessibilityElements AccessibilityCounts   `json:"accessibilityElements"`

	// HeadingHierarchy lists headings in document order, capped at
	// MaxHeadings entries.
	HeadingHierarchy []Heading `json:"headingHierarchy"`

	// HasSemanticHTML5 is true iff at least one main, article, or
	// section landmark is present.
	HasSemanticHTML5 bool `json:"hasSemanticHTML5"`
}

// PageData holds page metadata extracted for schema generation.
// Empty strings mean the corresponding tag was absent.
type PageData struct {
	URL           string `json:"url"`
	Title         string `json:"title,omitempty"`
	Description   string `json:"description,omitempty"`
	OGTitle       string `json:"ogTitle,omitempty"`
	OGDescription string `json:"ogDescription,omitempty"`
	OGImage       string `json:"ogImage,omitempty"`
	OGSiteName    string `json:"ogSiteName,omitempty"`
	H1            string `json:"h1,omitempty"`
}

// TechnicalData holds the always-available technical signals for one page.
type TechnicalData struct {
	URL             string             `json:"url"`
	IsHTTPS         bool               `json:"isHttps"`
	Title           string             `json:"title,omitempty"`
	MetaDescription string             `json:"metaDescription,omitempty"`
	H1Count         int                `json:"h1Count"`
	H1Text          string             `json:"h1Text,omitempty"`
	HasCanonical    bool               `json:"hasCanonical"`
	Canonical       string             `json:"canonical,omitempty"`
	CodeBlockCount  int                `json:"codeBlockCount"`
	WordCount       int                `json:"wordCount"`
	OGTitle         string             `json:"ogTitle,omitempty"`
	OGDescription   string             `json:"ogDescription,omitempty"`
	OGImage         string             `json:"ogImage,omitempty"`
	Semantic        *SemanticStructure `json:"semantic"`
	SchemaCount     int                `json:"schemaCount"`
	SchemaTypes     []string           `json:"schemaTypes"`
}

// Sanitizer produces cleaned variants of raw HTML. Both operations are
// pure functions and never fail: on any parse failure they return the
// original input unchanged.
type Sanitizer interface {
	// ContentOnly strips scripts, styles, metadata regions, presentation
	// attributes, and comments, collapsing whitespace. Used for content
	// quality analysis.
	ContentOnly(html string) string

	// StripSchemas removes only JSON-LD scripts, style elements, inline
	// style attributes, and noscript elements, leaving all other
	// structure intact. Used for technical structure analysis that should
	// not be biased by embedded metadata.
	StripSchemas(html string) string
}

// PageAnalyzer derives structural and metadata signals from raw HTML.
// All methods are deterministic and perform no I/O.
type PageAnalyzer interface {
	// Structure computes the semantic structure summary for the document.
	Structure(html string) *SemanticStructure

	// PageData extracts page metadata (title, description, Open Graph
	// fields, first H1) for schema generation.
	PageData(url, html string) *PageData

	// TechnicalData assembles the technical signal record from the raw
	// HTML and the given schema nodes.
	TechnicalData(url, html string, schemas []SchemaNode) *TechnicalData

	// QuestionMarks counts question marks in the document's visible text.
	QuestionMarks(html string) int
}
