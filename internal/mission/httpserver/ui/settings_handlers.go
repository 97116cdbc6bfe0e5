package ui

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/becomethebagfx/us-mission-control/internal/mission/backend"
	custommw "github.com/becomethebagfx/us-mission-control/internal/mission/httpserver/middleware"
	"github.com/becomethebagfx/us-mission-control/internal/mission/pages"
)

// SettingsData feeds the settings page.
type SettingsData struct {
	Tokens    *backend.TokensResult
	Companies *backend.CompaniesResult
	System    *backend.SystemInfo
	Selected  *backend.Company
}

func (h *Handlers) renderSettings(w http.ResponseWriter, r *http.Request, route pages.Route) error {
	ctx := r.Context()

	var (
		tokens    *backend.TokensResult
		companies *backend.CompaniesResult
		system    *backend.SystemInfo
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tokens, err = h.backend.Tokens(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		companies, err = h.backend.Companies(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		system, err = h.backend.SystemInfo(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	// Drill into one company when the filter points at it.
	var selected *backend.Company
	if slug := custommw.CompanyFromContext(ctx); slug != "" {
		var err error
		selected, err = h.backend.Company(ctx, slug)
		if err != nil {
			custommw.Logger(ctx).Warn("company detail unavailable",
				zap.String("slug", slug),
				zap.Error(err),
			)
		}
	}

	data := h.pageData(r, route)
	data.Data = SettingsData{
		Tokens:    tokens,
		Companies: companies,
		System:    system,
		Selected:  selected,
	}
	return h.templates.Render(w, pages.Settings, data)
}
