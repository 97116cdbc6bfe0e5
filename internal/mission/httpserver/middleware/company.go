package middleware

import (
	"context"
	"net/http"
	"regexp"
)

type companyKeyType int

const companyKey companyKeyType = iota

// companyCookie persists the active filter across navigations that omit
// the query parameter.
const companyCookie = "mission_company"

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// CompanyFilter resolves the active company filter: the ?company query
// parameter wins, falling back to the persisted cookie. An explicit
// `?company=` (empty value) clears the filter.
func CompanyFilter() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			company := ""
			if values := r.URL.Query(); values.Has("company") {
				company = sanitizeSlug(values.Get("company"))
				setCompanyCookie(w, company)
			} else if c, err := r.Cookie(companyCookie); err == nil {
				company = sanitizeSlug(c.Value)
			}

			ctx := context.WithValue(r.Context(), companyKey, company)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CompanyFromContext returns the active company slug, or "" for all companies.
func CompanyFromContext(ctx context.Context) string {
	company, _ := ctx.Value(companyKey).(string)
	return company
}

func sanitizeSlug(v string) string {
	if v == "" || !slugPattern.MatchString(v) {
		return ""
	}
	return v
}

func setCompanyCookie(w http.ResponseWriter, company string) {
	cookie := &http.Cookie{
		Name:     companyCookie,
		Value:    company,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if company == "" {
		cookie.MaxAge = -1
	}
	http.SetCookie(w, cookie)
}
