package ui

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/becomethebagfx/us-mission-control/internal/mission/backend"
	custommw "github.com/becomethebagfx/us-mission-control/internal/mission/httpserver/middleware"
	"github.com/becomethebagfx/us-mission-control/internal/mission/pages"
)

// QualityData feeds the quality loop page.
type QualityData struct {
	Runs        []backend.QualityRun
	Stats       *backend.QualityStats
	Types       []backend.ContentType
	ContentType string
	Status      string
}

func (h *Handlers) renderQuality(w http.ResponseWriter, r *http.Request, route pages.Route) error {
	ctx := r.Context()
	company := custommw.CompanyFromContext(ctx)
	contentType := r.URL.Query().Get("content_type")
	status := r.URL.Query().Get("status")

	var (
		runs  []backend.QualityRun
		stats *backend.QualityStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		runs, err = h.backend.QualityRuns(gctx, company, contentType, status)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = h.backend.QualityStats(gctx, company)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	// Filter chips survive a content-type endpoint outage.
	types, err := h.backend.QualityContentTypes(ctx)
	if err != nil {
		custommw.Logger(ctx).Warn("content types unavailable", zap.Error(err))
		types = nil
	}

	data := h.pageData(r, route)
	data.Data = QualityData{
		Runs:        runs,
		Stats:       stats,
		Types:       types,
		ContentType: contentType,
		Status:      status,
	}
	return h.templates.Render(w, pages.Quality, data)
}

// QualityRunData feeds the run detail page.
type QualityRunData struct {
	Run *backend.QualityRun
}

func (h *Handlers) renderQualityRun(w http.ResponseWriter, r *http.Request, route pages.Route) error {
	run, err := h.backend.QualityRun(r.Context(), route.Param(0))
	if err != nil {
		return err
	}

	data := h.pageData(r, route)
	data.Data = QualityRunData{Run: run}
	return h.templates.Render(w, pages.QualityRun, data)
}
