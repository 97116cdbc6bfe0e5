package ui

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/becomethebagfx/us-mission-control/internal/mission/backend"
	"github.com/becomethebagfx/us-mission-control/internal/mission/pages"
)

// GBPData feeds the Google Business Profiles page.
type GBPData struct {
	Locations *backend.LocationsResult
	Insights  *backend.InsightsResult
}

func (h *Handlers) renderGBP(w http.ResponseWriter, r *http.Request, route pages.Route) error {
	var (
		locations *backend.LocationsResult
		insights  *backend.InsightsResult
	)
	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		locations, err = h.backend.Locations(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		insights, err = h.backend.Insights(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	data := h.pageData(r, route)
	data.Data = GBPData{Locations: locations, Insights: insights}
	return h.templates.Render(w, pages.GBP, data)
}
