package ui

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/becomethebagfx/us-mission-control/internal/mission/backend"
	"github.com/becomethebagfx/us-mission-control/internal/mission/pages"
)

// BrandAuditData feeds the brand audit page.
type BrandAuditData struct {
	Audits  *backend.AuditsResult
	Summary *backend.AuditSummary
}

func (h *Handlers) renderBrandAudit(w http.ResponseWriter, r *http.Request, route pages.Route) error {
	var (
		audits  *backend.AuditsResult
		summary *backend.AuditSummary
	)
	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		audits, err = h.backend.Audits(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = h.backend.AuditSummary(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	data := h.pageData(r, route)
	data.Data = BrandAuditData{Audits: audits, Summary: summary}
	return h.templates.Render(w, pages.BrandAudit, data)
}
