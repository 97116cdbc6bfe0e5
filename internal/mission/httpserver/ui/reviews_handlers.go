package ui

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/becomethebagfx/us-mission-control/internal/mission/backend"
	custommw "github.com/becomethebagfx/us-mission-control/internal/mission/httpserver/middleware"
	"github.com/becomethebagfx/us-mission-control/internal/mission/pages"
)

var reviewPlatforms = []string{"google", "yelp", "facebook"}

// ReviewsData feeds the reviews page.
type ReviewsData struct {
	Reviews   *backend.ReviewsResult
	Summary   *backend.ReviewSummary
	Platform  string
	Platforms []string
}

func (h *Handlers) renderReviews(w http.ResponseWriter, r *http.Request, route pages.Route) error {
	ctx := r.Context()
	company := custommw.CompanyFromContext(ctx)
	platform := r.URL.Query().Get("platform")
	minRating, _ := strconv.Atoi(r.URL.Query().Get("min_rating"))

	var (
		reviews *backend.ReviewsResult
		summary *backend.ReviewSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reviews, err = h.backend.Reviews(gctx, company, platform, minRating)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = h.backend.ReviewSummary(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	data := h.pageData(r, route)
	data.Data = ReviewsData{
		Reviews:   reviews,
		Summary:   summary,
		Platform:  platform,
		Platforms: reviewPlatforms,
	}
	return h.templates.Render(w, pages.Reviews, data)
}

// ReplyToReview submits a reply and returns to the review list.
func (h *Handlers) ReplyToReview(w http.ResponseWriter, r *http.Request) {
	id := routeID(r)
	route := pages.Route{Page: pages.Reviews}

	if err := r.ParseForm(); err != nil {
		h.failAction(w, r, route, err)
		return
	}
	reply := strings.TrimSpace(r.PostFormValue("reply"))
	if reply == "" {
		h.failAction(w, r, route, fmt.Errorf("reply text is required"))
		return
	}

	if _, err := h.backend.ReplyToReview(r.Context(), id, reply); err != nil {
		h.failAction(w, r, route, err)
		return
	}
	h.completeAction(w, r, "Reply queued for posting", route.Path())
}
