package ui

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/becomethebagfx/us-mission-control/internal/mission/backend"
	custommw "github.com/becomethebagfx/us-mission-control/internal/mission/httpserver/middleware"
	"github.com/becomethebagfx/us-mission-control/internal/mission/pages"
)

// AEOData feeds the answer-engine tracking page.
type AEOData struct {
	Queries *backend.QueriesResult
	Stats   *backend.AEOStats
}

func (h *Handlers) renderAEO(w http.ResponseWriter, r *http.Request, route pages.Route) error {
	ctx := r.Context()
	company := custommw.CompanyFromContext(ctx)

	var (
		queries *backend.QueriesResult
		stats   *backend.AEOStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		queries, err = h.backend.Queries(gctx, company)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = h.backend.AEOStats(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	data := h.pageData(r, route)
	data.Data = AEOData{Queries: queries, Stats: stats}
	return h.templates.Render(w, pages.AEO, data)
}
