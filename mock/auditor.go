package mock

import (
	"context"

	"github.com/kimmoihanus/geoaudit"
)

var _ geoaudit.Auditor = (*Auditor)(nil)

// Auditor is a mock implementation of geoaudit.Auditor.
type Auditor struct {
	TechnicalFn     func(ctx context.Context, url, html string) *geoaudit.TechnicalAudit
	ContentFn       func(ctx context.Context, url, html string) *geoaudit.ContentAudit
	SchemaFn        func(ctx context.Context, url, html string) *geoaudit.SchemaAudit
	GeneralFn       func(ctx context.Context, url, html string) *geoaudit.GeneralAudit
	AISearchScoreFn func(ctx context.Context, input geoaudit.AISearchInput) *geoaudit.AISearchResult
}

func (a *Auditor) Technical(ctx context.Context, url, html string) *geoaudit.TechnicalAudit {
	return a.TechnicalFn(ctx, url, html)
}

func (a *Auditor) Content(ctx context.Context, url, html string) *geoaudit.ContentAudit {
	return a.ContentFn(ctx, url, html)
}

func (a *Auditor) Schema(ctx context.Context, url, html string) *geoaudit.SchemaAudit {
	return a.SchemaFn(ctx, url, html)
}

func (a *Auditor) General(ctx context.Context, url, html string) *geoaudit.GeneralAudit {
	return a.GeneralFn(ctx, url, html)
}

func (a *Auditor) AISearchScore(ctx context.Context, input geoaudit.AISearchInput) *geoaudit.AISearchResult {
	return a.AISearchScoreFn(ctx, input)
}
