package backend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/becomethebagfx/us-mission-control/internal/mission/api"
)

func TestStaticSummaryForCompany(t *testing.T) {
	t.Parallel()

	svc := NewStaticService()
	sum, err := svc.Summary(context.Background(), "us-framing")
	require.NoError(t, err)

	require.Equal(t, 5, sum.LinkedIn.Scheduled)
	require.Equal(t, 2, sum.Content.Published)
	require.Equal(t, 10, sum.Reactivation.ActiveLeads)
	require.Equal(t, int64(50000), sum.Reactivation.PipelineValue)
	require.Equal(t, 1, sum.Reactivation.Converted)
}

func TestStaticSummaryUnfilteredCountsEveryCompany(t *testing.T) {
	t.Parallel()

	svc := NewStaticService()
	sum, err := svc.Summary(context.Background(), "")
	require.NoError(t, err)

	require.Equal(t, 6, sum.Companies)
	require.Greater(t, sum.LinkedIn.Scheduled, 5)
	require.Contains(t, sum.Tokens, "us-framing")
	require.Equal(t, "healthy", sum.Tokens["us-framing"])
	require.Equal(t, "expired", sum.Tokens["us-interiors"])
}

func TestStaticPostsFilters(t *testing.T) {
	t.Parallel()

	svc := NewStaticService()
	ctx := context.Background()

	all, err := svc.Posts(ctx, "", "")
	require.NoError(t, err)

	drafts, err := svc.Posts(ctx, "", "draft")
	require.NoError(t, err)
	require.NotEmpty(t, drafts)
	require.Less(t, len(drafts), len(all))
	for _, p := range drafts {
		require.Equal(t, "draft", p.Status)
	}

	framing, err := svc.Posts(ctx, "us-framing", "scheduled")
	require.NoError(t, err)
	require.Len(t, framing, 5)
}

func TestStaticApprovePost(t *testing.T) {
	t.Parallel()

	svc := NewStaticService()
	ctx := context.Background()

	action, err := svc.ApprovePost(ctx, "post-framing-7")
	require.NoError(t, err)
	require.Equal(t, "scheduled", action.Post.Status)
	require.Contains(t, action.Message, "post-framing-7")

	post, err := svc.Post(ctx, "post-framing-7")
	require.NoError(t, err)
	require.Equal(t, "scheduled", post.Status)
}

func TestStaticPostNotFound(t *testing.T) {
	t.Parallel()

	svc := NewStaticService()
	_, err := svc.Post(context.Background(), "missing")
	require.Error(t, err)
	require.True(t, api.IsNotFound(err))
	require.Contains(t, err.Error(), "404")
}

func TestStaticUpdatePostAppliesOnlyProvidedFields(t *testing.T) {
	t.Parallel()

	svc := NewStaticService()
	ctx := context.Background()

	before, err := svc.Post(ctx, "post-framing-1")
	require.NoError(t, err)

	title := "Updated title"
	updated, err := svc.UpdatePost(ctx, "post-framing-1", PostUpdate{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "Updated title", updated.Title)
	require.Equal(t, before.Content, updated.Content)
	require.Equal(t, before.ScheduledDate, updated.ScheduledDate)
}

func TestStaticFunnelRates(t *testing.T) {
	t.Parallel()

	svc := NewStaticService()
	funnel, err := svc.Funnel(context.Background())
	require.NoError(t, err)

	total := 0
	for _, stage := range []string{"new", "contacted", "engaged", "converted", "dead"} {
		require.Contains(t, funnel.Counts, stage)
		total += funnel.Counts[stage]
	}
	require.Equal(t, funnel.Total, total)
	require.Equal(t, funnel.Total-funnel.Counts["dead"], funnel.Active)
	require.Greater(t, funnel.ConversionRates["converted_rate"], 0.0)
}

func TestStaticReviewSummaryAndReply(t *testing.T) {
	t.Parallel()

	svc := NewStaticService()
	ctx := context.Background()

	sum, err := svc.ReviewSummary(ctx)
	require.NoError(t, err)
	require.Equal(t, 6, sum.TotalReviews)
	require.Equal(t, 2, sum.Replied)
	require.InDelta(t, 33.3, sum.ReplyRate, 0.1)

	review, err := svc.ReplyToReview(ctx, "review-2", "Thanks for the patience, Marcus.")
	require.NoError(t, err)
	require.Equal(t, "pending", review.ReplyStatus)

	sum, err = svc.ReviewSummary(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, sum.Replied)
}

func TestStaticQualityStats(t *testing.T) {
	t.Parallel()

	svc := NewStaticService()
	stats, err := svc.QualityStats(context.Background(), "")
	require.NoError(t, err)

	require.Equal(t, 5, stats.TotalRuns)
	require.Equal(t, 3, stats.ByStatus["passed"])
	require.InDelta(t, 60.0, stats.PassRate, 0.1)
	require.Contains(t, stats.ByContentType, "linkedin_post")

	framing, err := svc.QualityStats(context.Background(), "us-framing")
	require.NoError(t, err)
	require.Equal(t, 3, framing.TotalRuns)
}

func TestStaticQualityRunsNewestFirst(t *testing.T) {
	t.Parallel()

	svc := NewStaticService()
	runs, err := svc.QualityRuns(context.Background(), "", "", "")
	require.NoError(t, err)
	require.NotEmpty(t, runs)
	for i := 1; i < len(runs); i++ {
		require.GreaterOrEqual(t, runs[i-1].CreatedAt, runs[i].CreatedAt)
	}
}
