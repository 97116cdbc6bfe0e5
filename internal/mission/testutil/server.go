package testutil

import (
	"net/http/httptest"
	"testing"

	"github.com/becomethebagfx/us-mission-control/internal/mission/backend"
	"github.com/becomethebagfx/us-mission-control/internal/mission/httpserver"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithService wires a custom backend service implementation.
func WithService(service backend.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.UI.Backend = service
	}
}

// WithBasePath sets a custom base path for the dashboard routes.
func WithBasePath(path string) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.BasePath = path
	}
}

// NewServer constructs an httptest server running the full frontend stack
// against the static fixture backend.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		Address:  ":0",
		BasePath: "/",
	}
	cfg.UI.Backend = backend.NewStaticService()

	for _, opt := range opts {
		opt(&cfg)
	}

	srv, err := httpserver.New(cfg)
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
