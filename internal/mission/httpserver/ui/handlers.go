// Package ui holds the page renderers. Every dashboard page is a Renderer
// resolved through a typed registry keyed by page name; the dispatcher
// catches renderer errors and turns them into the shared error panel, so a
// failing backend never breaks navigation.
package ui

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/becomethebagfx/us-mission-control/internal/mission/api"
	"github.com/becomethebagfx/us-mission-control/internal/mission/backend"
	custommw "github.com/becomethebagfx/us-mission-control/internal/mission/httpserver/middleware"
	"github.com/becomethebagfx/us-mission-control/internal/mission/pages"
	"github.com/becomethebagfx/us-mission-control/internal/mission/templates"
	"github.com/becomethebagfx/us-mission-control/internal/mission/templates/helpers"
)

// Renderer produces a full page for a resolved route.
type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, route pages.Route) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(w http.ResponseWriter, r *http.Request, route pages.Route) error

// Render implements Renderer.
func (f RendererFunc) Render(w http.ResponseWriter, r *http.Request, route pages.Route) error {
	return f(w, r, route)
}

// Dependencies collects what the UI handlers need.
type Dependencies struct {
	Backend   backend.Service
	Templates *templates.Registry
}

// Handlers exposes HTTP handlers for every dashboard page and action.
type Handlers struct {
	backend   backend.Service
	templates *templates.Registry
	registry  map[string]Renderer
}

// NewHandlers wires the handler set and its renderer registry.
func NewHandlers(deps Dependencies) (*Handlers, error) {
	svc := deps.Backend
	if svc == nil {
		svc = backend.NewStaticService()
	}
	reg := deps.Templates
	if reg == nil {
		var err error
		reg, err = templates.New()
		if err != nil {
			return nil, fmt.Errorf("ui: build templates: %w", err)
		}
	}

	h := &Handlers{backend: svc, templates: reg}
	h.registry = map[string]Renderer{
		pages.Home:          RendererFunc(h.renderHome),
		pages.Calendar:      RendererFunc(h.renderCalendar),
		pages.Posts:         RendererFunc(h.renderPosts),
		pages.PostDetail:    RendererFunc(h.renderPostDetail),
		pages.Content:       RendererFunc(h.renderContent),
		pages.ContentDetail: RendererFunc(h.renderContentDetail),
		pages.Reactivation:  RendererFunc(h.renderReactivation),
		pages.Settings:      RendererFunc(h.renderSettings),
		pages.GBP:           RendererFunc(h.renderGBP),
		pages.AEO:           RendererFunc(h.renderAEO),
		pages.Reviews:       RendererFunc(h.renderReviews),
		pages.BrandAudit:    RendererFunc(h.renderBrandAudit),
		pages.Assets:        RendererFunc(h.renderAssets),
		pages.Quality:       RendererFunc(h.renderQuality),
		pages.QualityRun:    RendererFunc(h.renderQualityRun),
	}
	return h, nil
}

// Page returns an HTTP handler that dispatches the given page key, pulling
// the named chi URL params as ordered route params.
func (h *Handlers) Page(page string, paramNames ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		route := pages.Route{Page: page}
		for _, name := range paramNames {
			route.Params = append(route.Params, chi.URLParam(r, name))
		}
		h.dispatch(w, r, route)
	}
}

// GoRedirect resolves a legacy fragment deep link ("/go/post-detail/42")
// and redirects to the canonical path, preserving the company filter.
func (h *Handlers) GoRedirect(w http.ResponseWriter, r *http.Request) {
	route := pages.Parse(chi.URLParam(r, "*"))
	if !pages.Known(route.Page) {
		route = pages.Route{Page: pages.Home}
	}
	target := helpers.WithCompany(route.Path(), custommw.CompanyFromContext(r.Context()))
	http.Redirect(w, r, target, http.StatusFound)
}

func (h *Handlers) dispatch(w http.ResponseWriter, r *http.Request, route pages.Route) {
	renderer, ok := h.registry[route.Page]
	if !ok {
		route = pages.Route{Page: pages.Home}
		renderer = h.registry[pages.Home]
	}

	if err := renderer.Render(w, r, route); err != nil {
		custommw.Logger(r.Context()).Error("page render failed",
			zap.String("page", route.Page),
			zap.Error(err),
		)
		h.renderError(w, r, route, err)
	}
}

func (h *Handlers) renderError(w http.ResponseWriter, r *http.Request, route pages.Route, err error) {
	status := http.StatusBadGateway
	if api.IsNotFound(err) {
		status = http.StatusNotFound
	}
	w.WriteHeader(status)

	data := h.pageData(r, route)
	data.Data = ErrorData{Message: err.Error()}
	if renderErr := h.templates.Render(w, "error", data); renderErr != nil {
		custommw.Logger(r.Context()).Error("error panel render failed", zap.Error(renderErr))
	}
}

// ErrorData feeds the shared error panel.
type ErrorData struct {
	Message string
}

// pageData assembles the layout view model. The company list feeding the
// filter dropdown is an optional fetch: when it fails the dropdown is
// empty but the page still renders.
func (h *Handlers) pageData(r *http.Request, route pages.Route) templates.PageData {
	desc := pages.Describe(route.Page)
	data := templates.PageData{
		Title:    desc.Title,
		Subtitle: desc.Subtitle,
		Page:     route.Page,
		Path:     route.Path(),
		Company:  custommw.CompanyFromContext(r.Context()),
		Nav:      pages.Nav,
	}
	if companies, err := h.backend.Companies(r.Context()); err == nil {
		data.Companies = companies.Companies
	} else {
		custommw.Logger(r.Context()).Warn("company list unavailable", zap.Error(err))
	}
	return data
}

// completeAction finishes a successful mutation: htmx callers get a toast
// trigger, plain form posts are redirected back to where they came from.
func (h *Handlers) completeAction(w http.ResponseWriter, r *http.Request, message, fallback string) {
	if custommw.IsHTMXRequest(r.Context()) {
		w.Header().Set("HX-Trigger", fmt.Sprintf(`{"toast":{"message":%q,"tone":"success"}}`, message))
		w.WriteHeader(http.StatusNoContent)
		return
	}
	target := r.Referer()
	if target == "" {
		target = helpers.WithCompany(fallback, custommw.CompanyFromContext(r.Context()))
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// failAction reports a failed mutation through the error panel.
func (h *Handlers) failAction(w http.ResponseWriter, r *http.Request, route pages.Route, err error) {
	custommw.Logger(r.Context()).Error("action failed",
		zap.String("page", route.Page),
		zap.Error(err),
	)
	h.renderError(w, r, route, err)
}
