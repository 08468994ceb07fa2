// Package slog provides logging decorators for geoaudit interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/kimmoihanus/geoaudit"
)

// Ensure LoggingGenerator implements geoaudit.TextGenerator.
var _ geoaudit.TextGenerator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a TextGenerator with call logging. Generation
// calls are the audit engine's only suspension points, so their latency
// and failures are worth surfacing.
type LoggingGenerator struct {
	next   geoaudit.TextGenerator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next geoaudit.TextGenerator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the outcome.
func (g *LoggingGenerator) Generate(ctx context.Context, prompt, systemInstruction string, opts geoaudit.GenerateOptions) (string, error) {
	begin := time.Now()
	text, err := g.next.Generate(ctx, prompt, systemInstruction, opts)
	if err != nil {
		g.logger.Warn("text generation failed",
			"prompt_chars", len(prompt),
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	g.logger.Info("text generation",
		"prompt_chars", len(prompt),
		"response_chars", len(text),
		"duration", time.Since(begin),
	)
	return text, nil
}
