package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTMXAnnotatesContext(t *testing.T) {
	t.Parallel()

	var got HTMXInfo
	handler := HTMX()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = HTMXInfoFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Target", "page-container")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, got.IsHTMX)
	require.Equal(t, "page-container", got.Target)
}

func TestCompanyFilterQueryParamWins(t *testing.T) {
	t.Parallel()

	var got string
	handler := CompanyFilter()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = CompanyFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/posts?company=us-framing", nil)
	req.AddCookie(&http.Cookie{Name: companyCookie, Value: "us-drywall"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, "us-framing", got)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "us-framing", cookies[0].Value)
}

func TestCompanyFilterFallsBackToCookie(t *testing.T) {
	t.Parallel()

	var got string
	handler := CompanyFilter()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = CompanyFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.AddCookie(&http.Cookie{Name: companyCookie, Value: "us-drywall"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, "us-drywall", got)
}

func TestCompanyFilterExplicitEmptyClears(t *testing.T) {
	t.Parallel()

	var got string
	handler := CompanyFilter()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = CompanyFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/posts?company=", nil)
	req.AddCookie(&http.Cookie{Name: companyCookie, Value: "us-drywall"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, "", got)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Negative(t, cookies[0].MaxAge, "clearing the filter should expire the cookie")
}

func TestCompanyFilterRejectsBadSlug(t *testing.T) {
	t.Parallel()

	var got string
	handler := CompanyFilter()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = CompanyFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/posts?company=%3Cscript%3E", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, "", got)
}
