package backend

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strconv"

	"github.com/becomethebagfx/us-mission-control/internal/mission/api"
)

// HTTPService implements Service against the live REST backend.
type HTTPService struct {
	client *api.Client
}

// NewHTTPService wraps an api.Client as a Service.
func NewHTTPService(client *api.Client) *HTTPService {
	return &HTTPService{client: client}
}

func companyQuery(company string) url.Values {
	return url.Values{"company": {company}}
}

// Summary fetches the aggregated dashboard summary.
func (s *HTTPService) Summary(ctx context.Context, company string) (*Summary, error) {
	var out Summary
	if err := s.client.Get(ctx, "/dashboard/summary", companyQuery(company), &out); err != nil {
		return nil, fmt.Errorf("backend: dashboard summary: %w", err)
	}
	return &out, nil
}

// Events fetches calendar events, optionally filtered by company and type.
func (s *HTTPService) Events(ctx context.Context, company, eventType string) ([]Event, error) {
	query := url.Values{"company": {company}, "type": {eventType}}
	var out []Event
	if err := s.client.Get(ctx, "/calendar/events", query, &out); err != nil {
		return nil, fmt.Errorf("backend: calendar events: %w", err)
	}
	return out, nil
}

// Posts lists the LinkedIn post queue.
func (s *HTTPService) Posts(ctx context.Context, company, status string) ([]Post, error) {
	query := url.Values{"company": {company}, "status": {status}}
	var out []Post
	if err := s.client.Get(ctx, "/posts/", query, &out); err != nil {
		return nil, fmt.Errorf("backend: list posts: %w", err)
	}
	return out, nil
}

// PostStats fetches post queue aggregates.
func (s *HTTPService) PostStats(ctx context.Context, company string) (*PostStats, error) {
	var out PostStats
	if err := s.client.Get(ctx, "/posts/stats", companyQuery(company), &out); err != nil {
		return nil, fmt.Errorf("backend: post stats: %w", err)
	}
	return &out, nil
}

// Post fetches a single post.
func (s *HTTPService) Post(ctx context.Context, id string) (*Post, error) {
	var out Post
	if err := s.client.Get(ctx, path.Join("/posts", url.PathEscape(id)), nil, &out); err != nil {
		return nil, fmt.Errorf("backend: get post %s: %w", id, err)
	}
	return &out, nil
}

// UpdatePost updates editable post fields.
func (s *HTTPService) UpdatePost(ctx context.Context, id string, update PostUpdate) (*Post, error) {
	var out Post
	if err := s.client.Put(ctx, path.Join("/posts", url.PathEscape(id)), update, &out); err != nil {
		return nil, fmt.Errorf("backend: update post %s: %w", id, err)
	}
	return &out, nil
}

// ApprovePost moves a post to scheduled.
func (s *HTTPService) ApprovePost(ctx context.Context, id string) (*PostAction, error) {
	var out PostAction
	if err := s.client.Post(ctx, path.Join("/posts", url.PathEscape(id), "approve"), nil, &out); err != nil {
		return nil, fmt.Errorf("backend: approve post %s: %w", id, err)
	}
	return &out, nil
}

// RejectPost moves a post to rejected.
func (s *HTTPService) RejectPost(ctx context.Context, id string) (*PostAction, error) {
	var out PostAction
	if err := s.client.Post(ctx, path.Join("/posts", url.PathEscape(id), "reject"), nil, &out); err != nil {
		return nil, fmt.Errorf("backend: reject post %s: %w", id, err)
	}
	return &out, nil
}

// ReschedulePost updates the scheduled date and keeps the post scheduled.
func (s *HTTPService) ReschedulePost(ctx context.Context, id, scheduledDate string) (*PostAction, error) {
	body := map[string]string{"scheduled_date": scheduledDate}
	var out PostAction
	if err := s.client.Post(ctx, path.Join("/posts", url.PathEscape(id), "reschedule"), body, &out); err != nil {
		return nil, fmt.Errorf("backend: reschedule post %s: %w", id, err)
	}
	return &out, nil
}

// Articles lists the content library.
func (s *HTTPService) Articles(ctx context.Context, company, status, sort string) ([]Article, error) {
	query := url.Values{"company": {company}, "status": {status}, "sort": {sort}}
	var out []Article
	if err := s.client.Get(ctx, "/content/", query, &out); err != nil {
		return nil, fmt.Errorf("backend: list articles: %w", err)
	}
	return out, nil
}

// ContentStats fetches content library aggregates.
func (s *HTTPService) ContentStats(ctx context.Context, company string) (*ContentStats, error) {
	var out ContentStats
	if err := s.client.Get(ctx, "/content/stats", companyQuery(company), &out); err != nil {
		return nil, fmt.Errorf("backend: content stats: %w", err)
	}
	return &out, nil
}

// Topics lists the distinct article topics.
func (s *HTTPService) Topics(ctx context.Context) ([]string, error) {
	var out []string
	if err := s.client.Get(ctx, "/content/topics", nil, &out); err != nil {
		return nil, fmt.Errorf("backend: list topics: %w", err)
	}
	return out, nil
}

// Article fetches a single article.
func (s *HTTPService) Article(ctx context.Context, id string) (*Article, error) {
	var out Article
	if err := s.client.Get(ctx, path.Join("/content", url.PathEscape(id)), nil, &out); err != nil {
		return nil, fmt.Errorf("backend: get article %s: %w", id, err)
	}
	return &out, nil
}

// UpdateArticle updates editable article fields.
func (s *HTTPService) UpdateArticle(ctx context.Context, id string, update ArticleUpdate) (*Article, error) {
	var out Article
	if err := s.client.Put(ctx, path.Join("/content", url.PathEscape(id)), update, &out); err != nil {
		return nil, fmt.Errorf("backend: update article %s: %w", id, err)
	}
	return &out, nil
}

// ApproveArticle marks an article approved.
func (s *HTTPService) ApproveArticle(ctx context.Context, id string) (*ArticleAction, error) {
	var out ArticleAction
	if err := s.client.Post(ctx, path.Join("/content", url.PathEscape(id), "approve"), nil, &out); err != nil {
		return nil, fmt.Errorf("backend: approve article %s: %w", id, err)
	}
	return &out, nil
}

// PublishArticle marks an article published.
func (s *HTTPService) PublishArticle(ctx context.Context, id string) (*ArticleAction, error) {
	var out ArticleAction
	if err := s.client.Post(ctx, path.Join("/content", url.PathEscape(id), "publish"), nil, &out); err != nil {
		return nil, fmt.Errorf("backend: publish article %s: %w", id, err)
	}
	return &out, nil
}

// Leads lists reactivation leads.
func (s *HTTPService) Leads(ctx context.Context, company, status string, minScore int) (*LeadsResult, error) {
	query := url.Values{"company": {company}, "status": {status}}
	if minScore > 0 {
		query.Set("min_score", strconv.Itoa(minScore))
	}
	var out LeadsResult
	if err := s.client.Get(ctx, "/reactivation/leads", query, &out); err != nil {
		return nil, fmt.Errorf("backend: list leads: %w", err)
	}
	return &out, nil
}

// Funnel fetches pipeline stage counts and conversion rates.
func (s *HTTPService) Funnel(ctx context.Context) (*Funnel, error) {
	var out Funnel
	if err := s.client.Get(ctx, "/reactivation/funnel", nil, &out); err != nil {
		return nil, fmt.Errorf("backend: funnel: %w", err)
	}
	return &out, nil
}

// PipelineMetrics fetches pipeline value aggregates and top leads.
func (s *HTTPService) PipelineMetrics(ctx context.Context) (*PipelineMetrics, error) {
	var out PipelineMetrics
	if err := s.client.Get(ctx, "/reactivation/metrics", nil, &out); err != nil {
		return nil, fmt.Errorf("backend: pipeline metrics: %w", err)
	}
	return &out, nil
}

// Sequences fetches leads grouped by outreach step.
func (s *HTTPService) Sequences(ctx context.Context) (*Sequences, error) {
	var out Sequences
	if err := s.client.Get(ctx, "/reactivation/sequences", nil, &out); err != nil {
		return nil, fmt.Errorf("backend: sequences: %w", err)
	}
	return &out, nil
}

// Tokens fetches OAuth token health per company.
func (s *HTTPService) Tokens(ctx context.Context) (*TokensResult, error) {
	var out TokensResult
	if err := s.client.Get(ctx, "/settings/tokens", nil, &out); err != nil {
		return nil, fmt.Errorf("backend: tokens: %w", err)
	}
	return &out, nil
}

// Companies fetches the company registry.
func (s *HTTPService) Companies(ctx context.Context) (*CompaniesResult, error) {
	var out CompaniesResult
	if err := s.client.Get(ctx, "/settings/companies", nil, &out); err != nil {
		return nil, fmt.Errorf("backend: companies: %w", err)
	}
	return &out, nil
}

// Company fetches one company by slug.
func (s *HTTPService) Company(ctx context.Context, slug string) (*Company, error) {
	var out Company
	if err := s.client.Get(ctx, path.Join("/settings/companies", url.PathEscape(slug)), nil, &out); err != nil {
		return nil, fmt.Errorf("backend: get company %s: %w", slug, err)
	}
	return &out, nil
}

// SystemInfo fetches the backend's self-description.
func (s *HTTPService) SystemInfo(ctx context.Context) (*SystemInfo, error) {
	var out SystemInfo
	if err := s.client.Get(ctx, "/settings/system", nil, &out); err != nil {
		return nil, fmt.Errorf("backend: system info: %w", err)
	}
	return &out, nil
}

// Locations fetches GBP locations.
func (s *HTTPService) Locations(ctx context.Context) (*LocationsResult, error) {
	var out LocationsResult
	if err := s.client.Get(ctx, "/gbp/locations", nil, &out); err != nil {
		return nil, fmt.Errorf("backend: gbp locations: %w", err)
	}
	return &out, nil
}

// Insights fetches aggregated GBP insights.
func (s *HTTPService) Insights(ctx context.Context) (*InsightsResult, error) {
	var out InsightsResult
	if err := s.client.Get(ctx, "/gbp/insights", nil, &out); err != nil {
		return nil, fmt.Errorf("backend: gbp insights: %w", err)
	}
	return &out, nil
}

// Queries fetches tracked AEO queries.
func (s *HTTPService) Queries(ctx context.Context, company string) (*QueriesResult, error) {
	var out QueriesResult
	if err := s.client.Get(ctx, "/aeo/queries", companyQuery(company), &out); err != nil {
		return nil, fmt.Errorf("backend: aeo queries: %w", err)
	}
	return &out, nil
}

// AEOStats fetches AEO aggregates.
func (s *HTTPService) AEOStats(ctx context.Context) (*AEOStats, error) {
	var out AEOStats
	if err := s.client.Get(ctx, "/aeo/stats", nil, &out); err != nil {
		return nil, fmt.Errorf("backend: aeo stats: %w", err)
	}
	return &out, nil
}

// Reviews lists reviews.
func (s *HTTPService) Reviews(ctx context.Context, company, platform string, minRating int) (*ReviewsResult, error) {
	query := url.Values{"company": {company}, "platform": {platform}}
	if minRating > 0 {
		query.Set("min_rating", strconv.Itoa(minRating))
	}
	var out ReviewsResult
	if err := s.client.Get(ctx, "/reviews/", query, &out); err != nil {
		return nil, fmt.Errorf("backend: list reviews: %w", err)
	}
	return &out, nil
}

// ReviewSummary fetches review aggregates.
func (s *HTTPService) ReviewSummary(ctx context.Context) (*ReviewSummary, error) {
	var out ReviewSummary
	if err := s.client.Get(ctx, "/reviews/summary", nil, &out); err != nil {
		return nil, fmt.Errorf("backend: review summary: %w", err)
	}
	return &out, nil
}

// ReplyToReview attaches a reply to a review.
func (s *HTTPService) ReplyToReview(ctx context.Context, id, reply string) (*Review, error) {
	body := map[string]string{"reply": reply}
	var out Review
	if err := s.client.Post(ctx, path.Join("/reviews", url.PathEscape(id), "reply"), body, &out); err != nil {
		return nil, fmt.Errorf("backend: reply to review %s: %w", id, err)
	}
	return &out, nil
}

// Audits lists brand audits.
func (s *HTTPService) Audits(ctx context.Context) (*AuditsResult, error) {
	var out AuditsResult
	if err := s.client.Get(ctx, "/brand-audit/", nil, &out); err != nil {
		return nil, fmt.Errorf("backend: list audits: %w", err)
	}
	return &out, nil
}

// AuditSummary fetches overall brand health.
func (s *HTTPService) AuditSummary(ctx context.Context) (*AuditSummary, error) {
	var out AuditSummary
	if err := s.client.Get(ctx, "/brand-audit/summary", nil, &out); err != nil {
		return nil, fmt.Errorf("backend: audit summary: %w", err)
	}
	return &out, nil
}

// Assets lists visual assets.
func (s *HTTPService) Assets(ctx context.Context, company, assetType, status string) (*AssetsResult, error) {
	query := url.Values{"company": {company}, "type": {assetType}, "status": {status}}
	var out AssetsResult
	if err := s.client.Get(ctx, "/assets/", query, &out); err != nil {
		return nil, fmt.Errorf("backend: list assets: %w", err)
	}
	return &out, nil
}

// AssetStats fetches asset aggregates.
func (s *HTTPService) AssetStats(ctx context.Context) (*AssetStats, error) {
	var out AssetStats
	if err := s.client.Get(ctx, "/assets/stats", nil, &out); err != nil {
		return nil, fmt.Errorf("backend: asset stats: %w", err)
	}
	return &out, nil
}

// QualityRuns lists quality loop runs.
func (s *HTTPService) QualityRuns(ctx context.Context, company, contentType, status string) ([]QualityRun, error) {
	query := url.Values{"company": {company}, "content_type": {contentType}, "status": {status}}
	var out []QualityRun
	if err := s.client.Get(ctx, "/quality/runs", query, &out); err != nil {
		return nil, fmt.Errorf("backend: list quality runs: %w", err)
	}
	return out, nil
}

// QualityRun fetches one run with full iteration detail.
func (s *HTTPService) QualityRun(ctx context.Context, id string) (*QualityRun, error) {
	var out QualityRun
	if err := s.client.Get(ctx, path.Join("/quality/runs", url.PathEscape(id)), nil, &out); err != nil {
		return nil, fmt.Errorf("backend: get quality run %s: %w", id, err)
	}
	return &out, nil
}

// QualityStats fetches quality loop aggregates.
func (s *HTTPService) QualityStats(ctx context.Context, company string) (*QualityStats, error) {
	var out QualityStats
	if err := s.client.Get(ctx, "/quality/stats", companyQuery(company), &out); err != nil {
		return nil, fmt.Errorf("backend: quality stats: %w", err)
	}
	return &out, nil
}

// QualityContentTypes lists the selectable content types.
func (s *HTTPService) QualityContentTypes(ctx context.Context) ([]ContentType, error) {
	var out []ContentType
	if err := s.client.Get(ctx, "/quality/content-types", nil, &out); err != nil {
		return nil, fmt.Errorf("backend: quality content types: %w", err)
	}
	return out, nil
}

var _ Service = (*HTTPService)(nil)
