package audit

import (
	"fmt"
	"strings"

	"github.com/kimmoihanus/geoaudit"
)

// outputStructure is appended to analysis prompts so the response ends
// in an extractable "Score: N" line.
const outputStructure = `
Provide your analysis in this structure:

## Strengths
- List positive aspects found

## Weaknesses
- List issues and gaps

## Recommendations
- Provide specific, actionable improvements

## Score
**IMPORTANT**: Provide a numeric score from 0-100:
Score: [number]`

func (a *Auditor) technicalSystem() string {
	return fmt.Sprintf(`You are an expert in AI Search technical optimization.
Current date: %s

RULES:
- Analyze HTML structure, metadata, heading structure, accessibility, and technical SEO
- IGNORE JSON-LD schemas (analyzed separately)
- Use ONLY provided data
- Output structured markdown`, a.now().Format("January 2, 2006"))
}

func (a *Auditor) contentSystem() string {
	return fmt.Sprintf(`You are an expert in AI-optimized content strategy.
Current date: %s

RULES:
- Analyze only content structure and quality
- No technical elements
- Score 0-100 based on AI search best practices
- Be specific with examples`, a.now().Format("January 2, 2006"))
}

func technicalPrompt(url, html string) string {
	return fmt.Sprintf("Technical audit for: %s\n\nHTML (schemas removed, first 80k chars):\n```html\n%s\n```\n%s", url, html, outputStructure)
}

func contentPrompt(url, html string) string {
	return fmt.Sprintf("Content audit for: %s\n\nContent HTML (cleaned):\n```html\n%s\n```\n%s", url, html, outputStructure)
}

func aiSearchPrompt(input geoaudit.AISearchInput) string {
	types := strings.Join(input.SchemaTypes, ", ")
	if types == "" {
		types = "None"
	}
	return fmt.Sprintf(`Evaluate this webpage's AI Search optimization (0-100).

URL: %s

Technical Score: %d/100
Content Score: %d/100
Schema Score: %d/100

Schemas found: %s
Has semantic HTML5: %t
Code examples: %d
Word count: %d

Provide a fair, rigorous overall score where:
- 0-40: Poor AI visibility
- 40-60: Basic implementation
- 60-75: Good optimization
- 75-85: Very good
- 85-100: Excellent to exceptional

Return JSON: { "score": 75, "reasoning": "explanation" }`,
		input.URL, input.TechnicalScore, input.ContentScore, input.SchemaScore,
		types, input.HasSemanticHTML5, input.CodeBlockCount, input.WordCount)
}
