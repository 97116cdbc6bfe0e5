package ui

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/becomethebagfx/us-mission-control/internal/mission/backend"
	custommw "github.com/becomethebagfx/us-mission-control/internal/mission/httpserver/middleware"
	"github.com/becomethebagfx/us-mission-control/internal/mission/pages"
)

var articleStatuses = []string{"draft", "approved", "published"}

// ContentData feeds the content library page.
type ContentData struct {
	Articles []backend.Article
	Stats    *backend.ContentStats
	Topics   []string
	Status   string
	Sort     string
	Statuses []string
}

func (h *Handlers) renderContent(w http.ResponseWriter, r *http.Request, route pages.Route) error {
	ctx := r.Context()
	company := custommw.CompanyFromContext(ctx)
	status := r.URL.Query().Get("status")
	sortKey := r.URL.Query().Get("sort")

	var (
		articles []backend.Article
		stats    *backend.ContentStats
		topics   []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		articles, err = h.backend.Articles(gctx, company, status, sortKey)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = h.backend.ContentStats(gctx, company)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	// Topic chips are decoration; render without them if the fetch fails.
	topics, err := h.backend.Topics(ctx)
	if err != nil {
		custommw.Logger(ctx).Warn("topics unavailable", zap.Error(err))
		topics = nil
	}

	data := h.pageData(r, route)
	data.Data = ContentData{
		Articles: articles,
		Stats:    stats,
		Topics:   topics,
		Status:   status,
		Sort:     sortKey,
		Statuses: articleStatuses,
	}
	return h.templates.Render(w, pages.Content, data)
}

// ContentDetailData feeds the article detail page.
type ContentDetailData struct {
	Article *backend.Article
}

func (h *Handlers) renderContentDetail(w http.ResponseWriter, r *http.Request, route pages.Route) error {
	article, err := h.backend.Article(r.Context(), route.Param(0))
	if err != nil {
		return err
	}

	data := h.pageData(r, route)
	data.Data = ContentDetailData{Article: article}
	return h.templates.Render(w, pages.ContentDetail, data)
}

// ApproveArticle marks an article ready for publication.
func (h *Handlers) ApproveArticle(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)
	route := pages.Route{Page: pages.ContentDetail, Params: []string{id}}

	action, err := h.backend.ApproveArticle(r.Context(), id)
	if err != nil {
		h.failAction(w, r, route, err)
		return
	}
	h.completeAction(w, r, action.Message, route.Path())
}

// PublishArticle publishes an approved article.
func (h *Handlers) PublishArticle(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)
	route := pages.Route{Page: pages.ContentDetail, Params: []string{id}}

	action, err := h.backend.PublishArticle(r.Context(), id)
	if err != nil {
		h.failAction(w, r, route, err)
		return
	}
	h.completeAction(w, r, action.Message, route.Path())
}
