package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func routeID(r *http.Request) string {
	return chi.URLParam(r, "id")
}
