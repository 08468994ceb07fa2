// Package gemini implements geoaudit.TextGenerator using Google Gemini.
package gemini

import (
	"context"

	"github.com/kimmoihanus/geoaudit"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is specified.
const DefaultModel = "gemini-2.0-flash"

// Ensure Generator implements geoaudit.TextGenerator at compile time.
var _ geoaudit.TextGenerator = (*Generator)(nil)

// Generator generates text using the Gemini API. A nil client puts the
// Generator in the not-configured state: every call returns an
// EUNAVAILABLE error, which callers treat as a fallback signal.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator. client may be nil when no API
// credential is configured. An empty model selects DefaultModel.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Generate produces text for the prompt in a single attempt.
func (g *Generator) Generate(ctx context.Context, prompt, systemInstruction string, opts geoaudit.GenerateOptions) (string, error) {
	if g.client == nil {
		return "", geoaudit.Errorf(geoaudit.EUNAVAILABLE, "text generation is not configured")
	}
	if prompt == "" {
		return "", geoaudit.Errorf(geoaudit.EINVALID, "prompt required")
	}

	config := &genai.GenerateContentConfig{}
	if opts.Temperature > 0 {
		temp := opts.Temperature
		config.Temperature = &temp
	}
	if opts.MaxOutputTokens > 0 {
		config.MaxOutputTokens = opts.MaxOutputTokens
	}
	if systemInstruction != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		}
	}
	if opts.ResponseSchema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = toSchema(opts.ResponseSchema)
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", geoaudit.Errorf(geoaudit.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// toSchema converts a JSON-schema-shaped map into a genai.Schema.
// Only the subset used by the audit prompts is supported: object,
// string, number, integer, boolean, and array types with properties,
// required, and items.
func toSchema(m map[string]any) *genai.Schema {
	s := &genai.Schema{}

	if typ, ok := m["type"].(string); ok {
		switch typ {
		case "object":
			s.Type = genai.TypeObject
		case "string":
			s.Type = genai.TypeString
		case "number":
			s.Type = genai.TypeNumber
		case "integer":
			s.Type = genai.TypeInteger
		case "boolean":
			s.Type = genai.TypeBoolean
		case "array":
			s.Type = genai.TypeArray
		}
	}

	if props, ok := m["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*genai.Schema, len(props))
		for name, v := range props {
			if pm, ok := v.(map[string]any); ok {
				s.Properties[name] = toSchema(pm)
			}
		}
	}

	switch req := m["required"].(type) {
	case []string:
		s.Required = req
	case []any:
		for _, v := range req {
			if name, ok := v.(string); ok {
				s.Required = append(s.Required, name)
			}
		}
	}

	if items, ok := m["items"].(map[string]any); ok {
		s.Items = toSchema(items)
	}

	return s
}
