package ui

import (
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/becomethebagfx/us-mission-control/internal/mission/backend"
	custommw "github.com/becomethebagfx/us-mission-control/internal/mission/httpserver/middleware"
	"github.com/becomethebagfx/us-mission-control/internal/mission/pages"
)

var postStatuses = []string{"draft", "scheduled", "published", "rejected"}

// PostsData feeds the post queue page.
type PostsData struct {
	Posts    []backend.Post
	Stats    *backend.PostStats
	Status   string
	Statuses []string
}

func (h *Handlers) renderPosts(w http.ResponseWriter, r *http.Request, route pages.Route) error {
	ctx := r.Context()
	company := custommw.CompanyFromContext(ctx)
	status := r.URL.Query().Get("status")

	var (
		posts []backend.Post
		stats *backend.PostStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = h.backend.Posts(gctx, company, status)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = h.backend.PostStats(gctx, company)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	data := h.pageData(r, route)
	data.Data = PostsData{Posts: posts, Stats: stats, Status: status, Statuses: postStatuses}
	return h.templates.Render(w, pages.Posts, data)
}

// PostDetailData feeds the post detail page.
type PostDetailData struct {
	Post *backend.Post
}

func (h *Handlers) renderPostDetail(w http.ResponseWriter, r *http.Request, route pages.Route) error {
	post, err := h.backend.Post(r.Context(), route.Param(0))
	if err != nil {
		return err
	}

	data := h.pageData(r, route)
	data.Data = PostDetailData{Post: post}
	return h.templates.Render(w, pages.PostDetail, data)
}

// UpdatePost applies the edit form and re-fetches via redirect.
func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)
	route := pages.Route{Page: pages.PostDetail, Params: []string{id}}

	if err := r.ParseForm(); err != nil {
		h.failAction(w, r, route, err)
		return
	}

	title := r.PostFormValue("title")
	content := r.PostFormValue("content")
	update := backend.PostUpdate{
		Title:    &title,
		Content:  &content,
		Hashtags: strings.Fields(r.PostFormValue("hashtags")),
	}
	if _, err := h.backend.UpdatePost(r.Context(), id, update); err != nil {
		h.failAction(w, r, route, err)
		return
	}
	h.completeAction(w, r, "Post updated", route.Path())
}

// ApprovePost moves a post to the scheduled queue.
func (h *Handlers) ApprovePost(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)
	route := pages.Route{Page: pages.PostDetail, Params: []string{id}}

	action, err := h.backend.ApprovePost(r.Context(), id)
	if err != nil {
		h.failAction(w, r, route, err)
		return
	}
	h.completeAction(w, r, action.Message, route.Path())
}

// RejectPost rejects a post.
func (h *Handlers) RejectPost(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)
	route := pages.Route{Page: pages.PostDetail, Params: []string{id}}

	action, err := h.backend.RejectPost(r.Context(), id)
	if err != nil {
		h.failAction(w, r, route, err)
		return
	}
	h.completeAction(w, r, action.Message, route.Path())
}

// ReschedulePost moves a post to a new slot.
func (h *Handlers) ReschedulePost(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)
	route := pages.Route{Page: pages.PostDetail, Params: []string{id}}

	if err := r.ParseForm(); err != nil {
		h.failAction(w, r, route, err)
		return
	}
	scheduled := normalizeFormTime(r.PostFormValue("scheduled_date"))
	action, err := h.backend.ReschedulePost(r.Context(), id, scheduled)
	if err != nil {
		h.failAction(w, r, route, err)
		return
	}
	h.completeAction(w, r, action.Message, route.Path())
}

// normalizeFormTime pads a datetime-local value ("2006-01-02T15:04") to
// the backend's second-precision isoformat.
func normalizeFormTime(v string) string {
	if len(v) == len("2006-01-02T15:04") {
		return v + ":00"
	}
	return v
}
