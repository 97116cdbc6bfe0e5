// Package httpserver assembles the chi router, middleware stack and routes
// for the dashboard frontend.
package httpserver

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	custommw "github.com/becomethebagfx/us-mission-control/internal/mission/httpserver/middleware"
	"github.com/becomethebagfx/us-mission-control/internal/mission/httpserver/ui"
	"github.com/becomethebagfx/us-mission-control/internal/mission/pages"
	"github.com/becomethebagfx/us-mission-control/public"
)

// Config holds runtime options for the frontend HTTP server.
type Config struct {
	Address      string
	BasePath     string
	Logger       *zap.Logger
	UI           ui.Dependencies
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) (*http.Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	handlers, err := ui.NewHandlers(cfg.UI)
	if err != nil {
		return nil, fmt.Errorf("httpserver: build handlers: %w", err)
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(custommw.RequestLogger(logger))
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(60 * time.Second))

	staticContent, err := public.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("httpserver: embed static: %w", err)
	}
	router.Handle("/public/static/*", http.StripPrefix("/public/static/", http.FileServer(http.FS(staticContent))))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mountPageRoutes(router, normalizeBasePath(cfg.BasePath), handlers)

	return &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  orDuration(cfg.ReadTimeout, 10*time.Second),
		WriteTimeout: orDuration(cfg.WriteTimeout, 30*time.Second),
		IdleTimeout:  orDuration(cfg.IdleTimeout, 60*time.Second),
	}, nil
}

func orDuration(v, fallback time.Duration) time.Duration {
	if v > 0 {
		return v
	}
	return fallback
}

func mountPageRoutes(router chi.Router, base string, h *ui.Handlers) {
	mount := func(r chi.Router) {
		r.Use(custommw.HTMX())
		r.Use(custommw.CompanyFilter())

		r.Get("/", h.Page(pages.Home))
		r.Get("/calendar", h.Page(pages.Calendar))

		r.Get("/posts", h.Page(pages.Posts))
		r.Get("/posts/{id}", h.Page(pages.PostDetail, "id"))
		r.Post("/posts/{id}", h.UpdatePost)
		r.Post("/posts/{id}/approve", h.ApprovePost)
		r.Post("/posts/{id}/reject", h.RejectPost)
		r.Post("/posts/{id}/reschedule", h.ReschedulePost)

		r.Get("/content", h.Page(pages.Content))
		r.Get("/content/{id}", h.Page(pages.ContentDetail, "id"))
		r.Post("/content/{id}/approve", h.ApproveArticle)
		r.Post("/content/{id}/publish", h.PublishArticle)

		r.Get("/reactivation", h.Page(pages.Reactivation))
		r.Get("/settings", h.Page(pages.Settings))
		r.Get("/gbp", h.Page(pages.GBP))
		r.Get("/aeo", h.Page(pages.AEO))

		r.Get("/reviews", h.Page(pages.Reviews))
		r.Post("/reviews/{id}/reply", h.ReplyToReview)

		r.Get("/brand-audit", h.Page(pages.BrandAudit))
		r.Get("/assets", h.Page(pages.Assets))

		r.Get("/quality", h.Page(pages.Quality))
		r.Get("/quality/runs/{id}", h.Page(pages.QualityRun, "id"))

		// Legacy fragment deep links.
		r.Get("/go/*", h.GoRedirect)
	}

	if base == "/" {
		router.Group(mount)
		return
	}
	router.Route(base, mount)
}

func normalizeBasePath(path string) string {
	p := strings.TrimSpace(path)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
	}
	if p == "" {
		return "/"
	}
	return p
}
