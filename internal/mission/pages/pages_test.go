package pages

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string
		want     Route
	}{
		{name: "empty fragment resolves to home", fragment: "", want: Route{Page: Home}},
		{name: "bare slash resolves to home", fragment: "/", want: Route{Page: Home}},
		{name: "plain page key", fragment: "posts", want: Route{Page: Posts}},
		{name: "leading hash stripped", fragment: "#calendar", want: Route{Page: Calendar}},
		{name: "detail page with one param", fragment: "post-detail/42", want: Route{Page: PostDetail, Params: []string{"42"}}},
		{name: "extra segments become ordered params", fragment: "quality-run/run-1/extra", want: Route{Page: QualityRun, Params: []string{"run-1", "extra"}}},
		{name: "unknown key passes through", fragment: "bogus", want: Route{Page: "bogus"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Parse(tc.fragment))
		})
	}
}

func TestParamOutOfRange(t *testing.T) {
	t.Parallel()

	r := Parse("post-detail/42")
	require.Equal(t, "42", r.Param(0))
	require.Equal(t, "", r.Param(1))
	require.Equal(t, "", r.Param(-1))
}

func TestDescribeFallsBackToHome(t *testing.T) {
	t.Parallel()

	home := Describe(Home)
	require.Equal(t, "Mission Control", home.Title)

	require.Equal(t, home, Describe("not-a-page"))
	require.Equal(t, home, Describe(""))

	posts := Describe(Posts)
	require.NotEqual(t, home, posts)
	require.Equal(t, "LinkedIn Posts", posts.Title)
}

func TestPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		route Route
		want  string
	}{
		{Route{Page: Home}, "/"},
		{Route{Page: Posts}, "/posts"},
		{Route{Page: PostDetail, Params: []string{"42"}}, "/posts/42"},
		{Route{Page: ContentDetail, Params: []string{"article-framing-1"}}, "/content/article-framing-1"},
		{Route{Page: QualityRun, Params: []string{"run-1"}}, "/quality/runs/run-1"},
		{Route{Page: BrandAudit}, "/brand-audit"},
		{Route{Page: "bogus"}, "/"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, tc.route.Path(), "route %+v", tc.route)
	}
}

func TestNavCoversEveryListPage(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, item := range Nav {
		require.True(t, Known(item.Page), "nav item %q must have a descriptor", item.Page)
		require.NotEmpty(t, item.Label)
		require.NotEmpty(t, item.Icon)
		require.Equal(t, Route{Page: item.Page}.Path(), item.Path)
		seen[item.Page] = true
	}
	for _, page := range []string{Home, Calendar, Posts, Content, Reactivation, GBP, AEO, Reviews, BrandAudit, Assets, Quality, Settings} {
		require.True(t, seen[page], "page %q missing from nav", page)
	}
}
