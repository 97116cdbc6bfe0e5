package templates

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/becomethebagfx/us-mission-control/internal/mission/pages"
)

func TestNewParsesEveryPage(t *testing.T) {
	t.Parallel()

	reg, err := New()
	require.NoError(t, err)

	for _, page := range []string{
		pages.Home, pages.Calendar, pages.Posts, pages.PostDetail,
		pages.Content, pages.ContentDetail, pages.Reactivation,
		pages.Settings, pages.GBP, pages.AEO, pages.Reviews,
		pages.BrandAudit, pages.Assets, pages.Quality, pages.QualityRun,
	} {
		require.True(t, reg.Has(page), "missing template for page %q", page)
	}
	require.True(t, reg.Has("error"))
	require.False(t, reg.Has("nonexistent"))
}

func TestRenderUnknownPageFails(t *testing.T) {
	t.Parallel()

	reg, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = reg.Render(&buf, "nonexistent", PageData{})
	require.Error(t, err)
	require.Zero(t, buf.Len(), "nothing written on failure")
}

func TestRenderErrorPage(t *testing.T) {
	t.Parallel()

	reg, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = reg.Render(&buf, "error", PageData{
		Title: "Something broke",
		Page:  "error",
		Nav:   pages.Nav,
		Data:  struct{ Message string }{Message: "backend returned 502"},
	})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "backend returned 502")
	require.Contains(t, out, `class="error-panel"`)
}

func TestRenderEscapesUntrustedText(t *testing.T) {
	t.Parallel()

	reg, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = reg.Render(&buf, "error", PageData{
		Title: "err",
		Page:  "error",
		Data:  struct{ Message string }{Message: `<script>alert("x")</script>`},
	})
	require.NoError(t, err)
	require.NotContains(t, buf.String(), "<script>")
}

func TestMarkdownRendersAndSanitizes(t *testing.T) {
	t.Parallel()

	out := string(Markdown("## Heading\n\n- item one\n- item two\n\n<script>alert(1)</script>"))
	require.Contains(t, out, "<h2")
	require.Contains(t, out, "<li>item one</li>")
	require.NotContains(t, out, "<script>")
}

func TestMarkdownTables(t *testing.T) {
	t.Parallel()

	out := string(Markdown("| a | b |\n|---|---|\n| 1 | 2 |\n"))
	require.True(t, strings.Contains(out, "<table>"), "GFM tables should render: %s", out)
}
