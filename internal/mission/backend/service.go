// Package backend binds the Mission Control REST API into typed Go calls.
// Timestamps are kept as the backend's ISO-8601 strings; parsing for
// display happens in the template helpers.
package backend

import "context"

// Service exposes every backend endpoint the dashboard renders from.
// Implementations: HTTPService (live backend) and StaticService (demo
// mode and tests).
type Service interface {
	// Dashboard
	Summary(ctx context.Context, company string) (*Summary, error)

	// Calendar
	Events(ctx context.Context, company, eventType string) ([]Event, error)

	// Posts
	Posts(ctx context.Context, company, status string) ([]Post, error)
	PostStats(ctx context.Context, company string) (*PostStats, error)
	Post(ctx context.Context, id string) (*Post, error)
	UpdatePost(ctx context.Context, id string, update PostUpdate) (*Post, error)
	ApprovePost(ctx context.Context, id string) (*PostAction, error)
	RejectPost(ctx context.Context, id string) (*PostAction, error)
	ReschedulePost(ctx context.Context, id, scheduledDate string) (*PostAction, error)

	// Content
	Articles(ctx context.Context, company, status, sort string) ([]Article, error)
	ContentStats(ctx context.Context, company string) (*ContentStats, error)
	Topics(ctx context.Context) ([]string, error)
	Article(ctx context.Context, id string) (*Article, error)
	UpdateArticle(ctx context.Context, id string, update ArticleUpdate) (*Article, error)
	ApproveArticle(ctx context.Context, id string) (*ArticleAction, error)
	PublishArticle(ctx context.Context, id string) (*ArticleAction, error)

	// Reactivation
	Leads(ctx context.Context, company, status string, minScore int) (*LeadsResult, error)
	Funnel(ctx context.Context) (*Funnel, error)
	PipelineMetrics(ctx context.Context) (*PipelineMetrics, error)
	Sequences(ctx context.Context) (*Sequences, error)

	// Settings
	Tokens(ctx context.Context) (*TokensResult, error)
	Companies(ctx context.Context) (*CompaniesResult, error)
	Company(ctx context.Context, slug string) (*Company, error)
	SystemInfo(ctx context.Context) (*SystemInfo, error)

	// GBP
	Locations(ctx context.Context) (*LocationsResult, error)
	Insights(ctx context.Context) (*InsightsResult, error)

	// AEO
	Queries(ctx context.Context, company string) (*QueriesResult, error)
	AEOStats(ctx context.Context) (*AEOStats, error)

	// Reviews
	Reviews(ctx context.Context, company, platform string, minRating int) (*ReviewsResult, error)
	ReviewSummary(ctx context.Context) (*ReviewSummary, error)
	ReplyToReview(ctx context.Context, id, reply string) (*Review, error)

	// Brand audit
	Audits(ctx context.Context) (*AuditsResult, error)
	AuditSummary(ctx context.Context) (*AuditSummary, error)

	// Assets
	Assets(ctx context.Context, company, assetType, status string) (*AssetsResult, error)
	AssetStats(ctx context.Context) (*AssetStats, error)

	// Quality loop
	QualityRuns(ctx context.Context, company, contentType, status string) ([]QualityRun, error)
	QualityRun(ctx context.Context, id string) (*QualityRun, error)
	QualityStats(ctx context.Context, company string) (*QualityStats, error)
	QualityContentTypes(ctx context.Context) ([]ContentType, error)
}
