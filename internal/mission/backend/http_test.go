package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/becomethebagfx/us-mission-control/internal/mission/api"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *HTTPService {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := api.NewClient(ts.URL+"/api", ts.Client())
	require.NoError(t, err)
	return NewHTTPService(client)
}

func TestHTTPSummaryPassesCompanyFilter(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/dashboard/summary", r.URL.Path)
		require.Equal(t, "us-framing", r.URL.Query().Get("company"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Summary{
			LinkedIn:     LinkedInSummary{Scheduled: 5},
			Content:      ContentSummary{Published: 2},
			Reactivation: ReactivationSummary{ActiveLeads: 10, PipelineValue: 50000},
			Tokens:       map[string]string{"us-framing": "healthy"},
			Companies:    6,
		})
	})

	sum, err := svc.Summary(context.Background(), "us-framing")
	require.NoError(t, err)
	require.Equal(t, 5, sum.LinkedIn.Scheduled)
	require.Equal(t, int64(50000), sum.Reactivation.PipelineValue)
}

func TestHTTPSummaryOmitsEmptyCompany(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.False(t, r.URL.Query().Has("company"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Summary{})
	})

	_, err := svc.Summary(context.Background(), "")
	require.NoError(t, err)
}

func TestHTTPPostListKeepsTrailingSlash(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/posts/", r.URL.Path)
		require.Equal(t, "draft", r.URL.Query().Get("status"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Post{{ID: "post-1", Status: "draft"}})
	})

	posts, err := svc.Posts(context.Background(), "", "draft")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, "post-1", posts[0].ID)
}

func TestHTTPApprovePostPostsToActionPath(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/posts/post-1/approve", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(PostAction{
			Message: "Post post-1 approved and scheduled",
			Post:    Post{ID: "post-1", Status: "scheduled"},
		})
	})

	action, err := svc.ApprovePost(context.Background(), "post-1")
	require.NoError(t, err)
	require.Equal(t, "scheduled", action.Post.Status)
}

func TestHTTPUpdatePostSendsNonNilFieldsOnly(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "New title", body["title"])
		require.NotContains(t, body, "content")
		require.NotContains(t, body, "scheduled_date")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Post{ID: "post-1", Title: "New title"})
	})

	title := "New title"
	post, err := svc.UpdatePost(context.Background(), "post-1", PostUpdate{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "New title", post.Title)
}

func TestHTTPNotFoundWrapsTypedError(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Post missing not found"}`))
	})

	_, err := svc.Post(context.Background(), "missing")
	require.Error(t, err)
	require.True(t, api.IsNotFound(err))
	require.Contains(t, err.Error(), "Post missing not found")
}

func TestHTTPReplyToReviewSendsBody(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/reviews/review-1/reply", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Thanks!", body["reply"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Review{ID: "review-1", Reply: "Thanks!", ReplyStatus: "pending"})
	})

	review, err := svc.ReplyToReview(context.Background(), "review-1", "Thanks!")
	require.NoError(t, err)
	require.Equal(t, "pending", review.ReplyStatus)
}

func TestHTTPQualityRunsQuery(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/quality/runs", r.URL.Path)
		require.Equal(t, "linkedin_post", r.URL.Query().Get("content_type"))
		require.False(t, r.URL.Query().Has("status"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]QualityRun{{ID: "run-1"}})
	})

	runs, err := svc.QualityRuns(context.Background(), "", "linkedin_post", "")
	require.NoError(t, err)
	require.Len(t, runs, 1)
}
