package ui

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/becomethebagfx/us-mission-control/internal/mission/backend"
	custommw "github.com/becomethebagfx/us-mission-control/internal/mission/httpserver/middleware"
	"github.com/becomethebagfx/us-mission-control/internal/mission/pages"
)

var assetTypes = []string{"social_banner", "post_image", "infographic"}

// AssetsData feeds the visual assets page.
type AssetsData struct {
	Assets *backend.AssetsResult
	Stats  *backend.AssetStats
	Type   string
	Status string
	Types  []string
}

func (h *Handlers) renderAssets(w http.ResponseWriter, r *http.Request, route pages.Route) error {
	ctx := r.Context()
	company := custommw.CompanyFromContext(ctx)
	assetType := r.URL.Query().Get("type")
	status := r.URL.Query().Get("status")

	var (
		assets *backend.AssetsResult
		stats  *backend.AssetStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		assets, err = h.backend.Assets(gctx, company, assetType, status)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = h.backend.AssetStats(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	data := h.pageData(r, route)
	data.Data = AssetsData{
		Assets: assets,
		Stats:  stats,
		Type:   assetType,
		Status: status,
		Types:  assetTypes,
	}
	return h.templates.Render(w, pages.Assets, data)
}
