package ui

import (
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/becomethebagfx/us-mission-control/internal/mission/backend"
	custommw "github.com/becomethebagfx/us-mission-control/internal/mission/httpserver/middleware"
	"github.com/becomethebagfx/us-mission-control/internal/mission/pages"
)

var pipelineStages = []string{"new", "contacted", "engaged", "converted", "dead"}

// ReactivationData feeds the pipeline page.
type ReactivationData struct {
	Leads     *backend.LeadsResult
	Funnel    *backend.Funnel
	Metrics   *backend.PipelineMetrics
	Sequences *backend.Sequences
	Status    string
	Stages    []string
	Steps     []string
}

func (h *Handlers) renderReactivation(w http.ResponseWriter, r *http.Request, route pages.Route) error {
	ctx := r.Context()
	company := custommw.CompanyFromContext(ctx)
	status := r.URL.Query().Get("status")
	minScore, _ := strconv.Atoi(r.URL.Query().Get("min_score"))

	var (
		leads     *backend.LeadsResult
		funnel    *backend.Funnel
		metrics   *backend.PipelineMetrics
		sequences *backend.Sequences
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		leads, err = h.backend.Leads(gctx, company, status, minScore)
		return err
	})
	g.Go(func() error {
		var err error
		funnel, err = h.backend.Funnel(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		metrics, err = h.backend.PipelineMetrics(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sequences, err = h.backend.Sequences(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	data := h.pageData(r, route)
	data.Data = ReactivationData{
		Leads:     leads,
		Funnel:    funnel,
		Metrics:   metrics,
		Sequences: sequences,
		Status:    status,
		Stages:    pipelineStages,
		Steps:     []string{"0", "1", "2", "3", "4"},
	}
	return h.templates.Render(w, pages.Reactivation, data)
}
