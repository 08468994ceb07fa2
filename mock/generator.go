// Package mock provides mock implementations of geoaudit interfaces for testing.
package mock

import (
	"context"

	"github.com/kimmoihanus/geoaudit"
)

var _ geoaudit.TextGenerator = (*Generator)(nil)

// Generator is a mock implementation of geoaudit.TextGenerator.
type Generator struct {
	GenerateFn func(ctx context.Context, prompt, systemInstruction string, opts geoaudit.GenerateOptions) (string, error)
}

func (g *Generator) Generate(ctx context.Context, prompt, systemInstruction string, opts geoaudit.GenerateOptions) (string, error) {
	return g.GenerateFn(ctx, prompt, systemInstruction, opts)
}
