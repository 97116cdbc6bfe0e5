package ui_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/becomethebagfx/us-mission-control/internal/mission/backend"
	"github.com/becomethebagfx/us-mission-control/internal/mission/testutil"
)

func get(t *testing.T, url string) (*http.Response, *goquery.Document) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, testutil.ParseHTML(t, body)
}

func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func TestHomeStatBarForFilteredCompany(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	resp, doc := get(t, ts.URL+"/?company=us-framing")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	values := doc.Find(".stat-value").Map(func(_ int, s *goquery.Selection) string {
		return strings.TrimSpace(s.Text())
	})
	require.Contains(t, values, "5", "scheduled posts")
	require.Contains(t, values, "2", "published articles")
	require.Contains(t, values, "10", "active leads")
	require.Contains(t, values, "$50,000", "pipeline value")
}

func TestHomeRendersTokenHealth(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	resp, doc := get(t, ts.URL+"/")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Equal(t, "Mission Control", doc.Find("h1").First().Text())
	require.Equal(t, "Mission Control | US Construction Mission Control", doc.Find("title").First().Text())
	require.Greater(t, doc.Find(".token-cell").Length(), 0)
	require.Greater(t, doc.Find(".badge-danger").Length(), 0, "expired token should show a danger badge")
}

func TestPostDetailUsesRouteParam(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	resp, doc := get(t, ts.URL+"/posts/post-framing-1")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Equal(t, "Post Detail", doc.Find("h1").First().Text())
	require.Contains(t, doc.Find("h2").First().Text(), "Framing insight #1")
}

func TestPostDetailNotFoundRendersErrorPanel(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	resp, doc := get(t, ts.URL+"/posts/nope")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	panel := doc.Find(".error-panel")
	require.Equal(t, 1, panel.Length())
	require.Contains(t, panel.Find(".error-message").Text(), "404")
	// Navigation chrome survives the failure.
	require.Greater(t, doc.Find(".nav a").Length(), 0)
}

func TestFailedPrimaryFetchRendersErrorPanel(t *testing.T) {
	t.Parallel()

	svc := &failingSummaryService{Service: backend.NewStaticService()}
	ts := testutil.NewServer(t, testutil.WithService(svc))

	resp, doc := get(t, ts.URL+"/")
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
	require.Contains(t, doc.Find(".error-message").Text(), "summary fetch exploded")
}

func TestCompanyFilterReinvokesSamePage(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	_, all := get(t, ts.URL+"/posts")
	_, framing := get(t, ts.URL+"/posts?company=us-framing")

	require.Greater(t, all.Find("tbody tr").Length(), framing.Find("tbody tr").Length())
	require.Equal(t, "LinkedIn Posts", framing.Find("h1").First().Text(), "filter change stays on the same page")

	framing.Find("tbody tr td:nth-child(2)").Each(func(_ int, s *goquery.Selection) {
		require.Equal(t, "US Framing", strings.TrimSpace(s.Text()))
	})

	// Sidebar links carry the filter forward.
	framing.Find(".nav a").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		require.Contains(t, href, "company=us-framing")
	})
}

func TestCompanyFilterPersistsViaCookie(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	jar := newCookieClient(t)
	resp, err := jar.Get(ts.URL + "/posts?company=us-framing")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = jar.Get(ts.URL + "/posts")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	doc := testutil.ParseHTML(t, body)
	doc.Find("tbody tr td:nth-child(2)").Each(func(_ int, s *goquery.Selection) {
		require.Equal(t, "US Framing", strings.TrimSpace(s.Text()))
	})
}

func TestCalendarRendersSingleChartSubtreePerRequest(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	_, first := get(t, ts.URL+"/calendar")
	require.Equal(t, 1, first.Find(".chart").Length())

	// A re-render replaces the whole fragment rather than stacking widgets.
	_, second := get(t, ts.URL+"/calendar")
	require.Equal(t, 1, second.Find(".chart").Length())
	require.Greater(t, second.Find(".calendar-event").Length(), 0)
}

func TestAEOEmptyState(t *testing.T) {
	t.Parallel()

	svc := &emptyQueriesService{Service: backend.NewStaticService()}
	ts := testutil.NewServer(t, testutil.WithService(svc))

	resp, doc := get(t, ts.URL+"/aeo")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, doc.Find(".empty-state").Text(), "No queries tracked")
	require.Equal(t, 0, doc.Find("tbody tr").Length())
}

func TestGoRedirectResolvesLegacyFragments(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	client := noRedirectClient()

	resp, err := client.Get(ts.URL + "/go/post-detail/42")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/posts/42", resp.Header.Get("Location"))
}

func TestGoRedirectUnknownPageFallsBackToHome(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	client := noRedirectClient()

	resp, err := client.Get(ts.URL + "/go/definitely-not-a-page")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))
}

func TestGoRedirectPreservesCompanyFilter(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	client := noRedirectClient()

	resp, err := client.Get(ts.URL + "/go/reviews?company=us-drywall")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/reviews?company=us-drywall", resp.Header.Get("Location"))
}

func TestApprovePostRedirectsAndPersists(t *testing.T) {
	t.Parallel()

	svc := backend.NewStaticService()
	ts := testutil.NewServer(t, testutil.WithService(svc))
	client := noRedirectClient()

	resp, err := client.Post(ts.URL+"/posts/post-framing-7/approve", "application/x-www-form-urlencoded", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/posts/post-framing-7", resp.Header.Get("Location"))

	post, err := svc.Post(context.Background(), "post-framing-7")
	require.NoError(t, err)
	require.Equal(t, "scheduled", post.Status)
}

func TestApprovePostHTMXGetsToastTrigger(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/posts/post-framing-7/approve", nil)
	require.NoError(t, err)
	req.Header.Set("HX-Request", "true")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Contains(t, resp.Header.Get("HX-Trigger"), "toast")
}

func TestUpdatePostFromForm(t *testing.T) {
	t.Parallel()

	svc := backend.NewStaticService()
	ts := testutil.NewServer(t, testutil.WithService(svc))
	client := noRedirectClient()

	form := url.Values{}
	form.Set("title", "Reworked title")
	form.Set("content", "Reworked body")
	form.Set("hashtags", "#one #two")

	resp, err := client.PostForm(ts.URL+"/posts/post-framing-1", form)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	post, err := svc.Post(context.Background(), "post-framing-1")
	require.NoError(t, err)
	require.Equal(t, "Reworked title", post.Title)
	require.Equal(t, []string{"#one", "#two"}, post.Hashtags)
}

func TestReplyToReviewRequiresText(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	client := noRedirectClient()

	form := url.Values{}
	form.Set("reply", "   ")
	resp, err := client.PostForm(ts.URL+"/reviews/review-2/reply", form)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
	require.Contains(t, string(body), "reply text is required")
}

func TestContentDetailRendersMarkdownBody(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	resp, doc := get(t, ts.URL+"/content/article-framing-1")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := doc.Find(".article-body")
	require.Equal(t, 1, body.Length())
	require.Greater(t, body.Find("h2").Length(), 0, "markdown headings render as elements")
	require.Greater(t, body.Find("li").Length(), 0, "markdown lists render as elements")
}

func TestReactivationFunnelBars(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	resp, doc := get(t, ts.URL+"/reactivation")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Equal(t, 1, doc.Find(".funnel.chart").Length())
	require.Equal(t, 5, doc.Find(".funnel-row").Length())
	require.Greater(t, doc.Find(".data-table").Length(), 0)
}

func TestSettingsShowsCompanyDetailWhenFiltered(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	resp, doc := get(t, ts.URL+"/settings?company=us-framing")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Contains(t, doc.Text(), "usframing.example.com")
	require.Contains(t, doc.Text(), "wood framing")
}

func TestQualityRunIterationDetail(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)
	resp, doc := get(t, ts.URL+"/quality/runs/run-2")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Equal(t, 3, doc.Find(".iteration").Length())
	require.Contains(t, doc.Find(".iteration-feedback").First().Text(), "first 100 words")
}

func TestBasePathMounting(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithBasePath("/dash"))

	resp, doc := get(t, ts.URL+"/dash/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Mission Control", doc.Find("h1").First().Text())
}

type failingSummaryService struct {
	backend.Service
}

func (s *failingSummaryService) Summary(ctx context.Context, company string) (*backend.Summary, error) {
	return nil, errors.New("summary fetch exploded")
}

type emptyQueriesService struct {
	backend.Service
}

func (s *emptyQueriesService) Queries(ctx context.Context, company string) (*backend.QueriesResult, error) {
	return &backend.QueriesResult{Queries: []backend.Query{}, Total: 0}, nil
}

func newCookieClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}
