package ui

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/becomethebagfx/us-mission-control/internal/mission/backend"
	custommw "github.com/becomethebagfx/us-mission-control/internal/mission/httpserver/middleware"
	"github.com/becomethebagfx/us-mission-control/internal/mission/pages"
)

// HomeData feeds the dashboard home page.
type HomeData struct {
	Summary *backend.Summary
	Events  []backend.Event
}

const upcomingEventLimit = 6

func (h *Handlers) renderHome(w http.ResponseWriter, r *http.Request, route pages.Route) error {
	ctx := r.Context()
	company := custommw.CompanyFromContext(ctx)

	summary, err := h.backend.Summary(ctx, company)
	if err != nil {
		return err
	}

	// The upcoming list is secondary; a calendar outage should not take
	// the whole dashboard down.
	events, err := h.backend.Events(ctx, company, "")
	if err != nil {
		custommw.Logger(ctx).Warn("calendar events unavailable", zap.Error(err))
		events = nil
	}
	if len(events) > upcomingEventLimit {
		events = events[:upcomingEventLimit]
	}

	data := h.pageData(r, route)
	data.Data = HomeData{Summary: summary, Events: events}
	return h.templates.Render(w, pages.Home, data)
}
