// Package audit implements the geoaudit scoring engine: three
// independent auditors (technical, content, schema) and a combiner that
// blends them into a weighted overall score with a letter grade.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/kimmoihanus/geoaudit"
)

// Prompt character budgets. The collaborator sees at most this much of
// the page, matching the page sizes the prompts were tuned on.
const (
	technicalHTMLBudget = 80000
	contentHTMLBudget   = 100000
)

// Ensure Auditor implements geoaudit.Auditor at compile time.
var _ geoaudit.Auditor = (*Auditor)(nil)

// Auditor runs AI search visibility audits on single HTML snapshots.
// Generator is optional: when nil (or unavailable at call time) every
// audit degrades to deterministic rule-based or default scoring. The
// audit methods never fail and always return a well-formed result.
type Auditor struct {
	Sanitizer geoaudit.Sanitizer
	Extractor geoaudit.SchemaExtractor
	Analyzer  geoaudit.PageAnalyzer

	// Generator is the optional text generation collaborator.
	Generator geoaudit.TextGenerator

	// Logger receives fallback and failure events. Defaults to
	// slog.Default().
	Logger *slog.Logger

	// Now supplies the current time for prompt construction. Defaults
	// to time.Now.
	Now func() time.Time
}

func (a *Auditor) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}

func (a *Auditor) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// generate performs one text generation attempt. A failure (including
// the collaborator being unconfigured) is logged and reported as not-ok;
// it is never retried and never propagated.
func (a *Auditor) generate(ctx context.Context, name, prompt, system string, opts geoaudit.GenerateOptions) (string, bool) {
	if a.Generator == nil {
		return "", false
	}
	text, err := a.Generator.Generate(ctx, prompt, system, opts)
	if err != nil {
		if geoaudit.ErrorCode(err) == geoaudit.EUNAVAILABLE {
			a.logger().Debug("text generation unavailable", "audit", name)
		} else {
			a.logger().Error("text generation failed", "audit", name, "error", err)
		}
		return "", false
	}
	return text, true
}

// truncateRunes shortens s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
