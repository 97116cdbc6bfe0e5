// Package templates owns the embedded HTML template set. Each page gets
// its own template built from the shared layout plus the page's content
// block, so rendering a page is ExecuteTemplate("layout") on that page's
// set.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/becomethebagfx/us-mission-control/internal/mission/backend"
	"github.com/becomethebagfx/us-mission-control/internal/mission/pages"
	"github.com/becomethebagfx/us-mission-control/internal/mission/templates/helpers"
)

//go:embed layout/*.tmpl pages/*.tmpl
var files embed.FS

var funcMap = template.FuncMap{
	"currency":    helpers.Currency,
	"number":      helpers.Number,
	"score":       helpers.Score,
	"date":        helpers.Date,
	"relative":    helpers.Relative,
	"badge":       helpers.BadgeClass,
	"trend":       helpers.TrendArrow,
	"navclass":    helpers.NavClass,
	"withCompany": helpers.WithCompany,
	"stars":       helpers.Stars,
	"markdown":    Markdown,
	"pct":         pct,
	"add":         func(a, b int) int { return a + b },
	"scoreband":   scoreband,
}

// scoreband groups audit scores into display bands.
func scoreband(score int) string {
	switch {
	case score >= 90:
		return "high"
	case score >= 75:
		return "mid"
	default:
		return "low"
	}
}

// pct returns part's share of total as a whole percentage, for bar widths.
func pct(part, total int) int {
	if total <= 0 {
		return 0
	}
	return part * 100 / total
}

// PageData is the view model every page template receives.
type PageData struct {
	Title     string
	Subtitle  string
	Page      string
	Path      string
	Company   string
	Nav       []pages.NavItem
	Companies []backend.Company
	Data      any
}

// Registry holds one parsed template set per page.
type Registry struct {
	sets map[string]*template.Template
}

// New parses the embedded layout and page templates.
func New() (*Registry, error) {
	base, err := template.New("layout").Funcs(funcMap).ParseFS(files, "layout/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("templates: parse layout: %w", err)
	}

	pageFiles, err := fs.Glob(files, "pages/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("templates: glob pages: %w", err)
	}

	sets := make(map[string]*template.Template, len(pageFiles))
	for _, file := range pageFiles {
		name := strings.TrimSuffix(path.Base(file), ".tmpl")
		set, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("templates: clone layout for %s: %w", name, err)
		}
		if _, err := set.ParseFS(files, file); err != nil {
			return nil, fmt.Errorf("templates: parse %s: %w", file, err)
		}
		sets[name] = set
	}
	return &Registry{sets: sets}, nil
}

// Render writes the named page. The page is rendered to a buffer first so
// a template error never leaves a half-written response.
func (r *Registry) Render(w io.Writer, page string, data PageData) error {
	set, ok := r.sets[page]
	if !ok {
		return fmt.Errorf("templates: no template for page %q", page)
	}
	var buf bytes.Buffer
	if err := set.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("templates: render %s: %w", page, err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Has reports whether a page template exists.
func (r *Registry) Has(page string) bool {
	_, ok := r.sets[page]
	return ok
}
