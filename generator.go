package geoaudit

import "context"

// GenerateOptions configures a single text generation call.
type GenerateOptions struct {
	// Temperature controls sampling randomness.
	Temperature float32

	// MaxOutputTokens bounds the response length. Zero means the
	// implementation default.
	MaxOutputTokens int32

	// ResponseSchema, when set, requests a structured JSON response
	// conforming to the given JSON schema (an object with "type",
	// "properties", "required", etc.).
	ResponseSchema map[string]any
}

// TextGenerator is the external text generation collaborator used for
// qualitative analysis. It is optional enrichment: implementations
// return an EUNAVAILABLE error when no credential is configured, and
// callers fall back to deterministic scoring.
type TextGenerator interface {
	// Generate produces text for the prompt. systemInstruction may be
	// empty. A single attempt is made; failures are not retried.
	Generate(ctx context.Context, prompt, systemInstruction string, opts GenerateOptions) (string, error)
}
