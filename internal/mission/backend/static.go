package backend

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"sort"
	"strconv"
	"sync"

	"github.com/becomethebagfx/us-mission-control/internal/mission/api"
)

// StaticService implements Service with deterministic in-memory fixtures.
// It backs demo mode (the frontend runs without a live backend) and the
// handler tests. Aggregate endpoints compute their numbers from the fixture
// lists the same way the backend does, so filters behave consistently.
type StaticService struct {
	mu sync.Mutex

	posts     []Post
	articles  []Article
	leads     []Lead
	events    []Event
	tokens    []TokenStatus
	companies []Company
	locations []Location
	queries   []Query
	reviews   []Review
	audits    []Audit
	assets    []Asset
	runs      []QualityRun
}

// NewStaticService returns a StaticService seeded with demo data.
func NewStaticService() *StaticService {
	s := &StaticService{}
	s.seed()
	return s
}

// Lookups return the same typed 404 the live backend produces, so the UI
// behaves identically in demo mode.
func notFound(kind, id string) error {
	return &api.Error{
		StatusCode: http.StatusNotFound,
		Status:     http.StatusText(http.StatusNotFound),
		Detail:     fmt.Sprintf("%s %s not found", kind, id),
	}
}

// Summary aggregates the fixture stores, honouring the company filter.
func (s *StaticService) Summary(ctx context.Context, company string) (*Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := filterPosts(s.posts, company, "")
	articles := filterArticles(s.articles, company, "")
	leads := filterLeads(s.leads, company, "", 0)

	sum := &Summary{Tokens: map[string]string{}, Companies: len(s.companies)}
	for _, p := range posts {
		switch p.Status {
		case "scheduled":
			sum.LinkedIn.Scheduled++
		case "published":
			sum.LinkedIn.Published++
			sum.LinkedIn.TotalEngagement += p.Engagement.Likes + p.Engagement.Comments + p.Engagement.Shares
		case "draft":
			sum.LinkedIn.Drafts++
		}
	}
	sum.LinkedIn.PostsThisWeek = sum.LinkedIn.Scheduled

	var aeoTotal float64
	for _, a := range articles {
		sum.Content.TotalArticles++
		aeoTotal += a.AEOScore
		switch a.Status {
		case "approved":
			sum.Content.Approved++
		case "published":
			sum.Content.Published++
		}
	}
	if sum.Content.TotalArticles > 0 {
		sum.Content.AvgAEOScore = round1(aeoTotal / float64(sum.Content.TotalArticles))
	}

	converted := 0
	for _, l := range leads {
		switch l.Status {
		case "new", "contacted", "engaged":
			sum.Reactivation.ActiveLeads++
			sum.Reactivation.PipelineValue += l.DealValue
		case "converted":
			converted++
		}
	}
	sum.Reactivation.Converted = converted
	if len(leads) > 0 {
		sum.Reactivation.ConversionRate = round1(float64(converted) / float64(len(leads)) * 100)
	}

	for _, t := range s.tokens {
		sum.Tokens[t.CompanySlug] = t.LinkedInToken.Status
	}
	return sum, nil
}

// Events returns fixture calendar events with optional filters.
func (s *StaticService) Events(ctx context.Context, company, eventType string) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Event, 0, len(s.events))
	for _, e := range s.events {
		if company != "" && e.ExtendedProps.CompanySlug != company {
			continue
		}
		if eventType != "" && e.ExtendedProps.Type != eventType {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// Posts returns fixture posts with optional filters.
func (s *StaticService) Posts(ctx context.Context, company, status string) ([]Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterPosts(s.posts, company, status), nil
}

// PostStats aggregates the fixture post queue.
func (s *StaticService) PostStats(ctx context.Context, company string) (*PostStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := filterPosts(s.posts, company, "")
	stats := &PostStats{
		Total:     len(posts),
		ByStatus:  map[string]int{},
		ByCompany: map[string]int{},
	}
	for _, p := range posts {
		stats.ByStatus[p.Status]++
		stats.ByCompany[p.CompanySlug]++
	}
	return stats, nil
}

// Post returns one fixture post by id.
func (s *StaticService) Post(ctx context.Context, id string) (*Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			p := s.posts[i]
			return &p, nil
		}
	}
	return nil, notFound("Post", id)
}

// UpdatePost applies non-nil fields in place.
func (s *StaticService) UpdatePost(ctx context.Context, id string, update PostUpdate) (*Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		if update.Title != nil {
			s.posts[i].Title = *update.Title
		}
		if update.Content != nil {
			s.posts[i].Content = *update.Content
		}
		if update.ScheduledDate != nil {
			s.posts[i].ScheduledDate = *update.ScheduledDate
		}
		if update.Hashtags != nil {
			s.posts[i].Hashtags = update.Hashtags
		}
		p := s.posts[i]
		return &p, nil
	}
	return nil, notFound("Post", id)
}

func (s *StaticService) setPostStatus(id, status string) (*PostAction, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i].Status = status
			return &PostAction{Post: s.posts[i]}, s.posts[i].ID, nil
		}
	}
	return nil, "", notFound("Post", id)
}

// ApprovePost schedules a post.
func (s *StaticService) ApprovePost(ctx context.Context, id string) (*PostAction, error) {
	action, postID, err := s.setPostStatus(id, "scheduled")
	if err != nil {
		return nil, err
	}
	action.Message = fmt.Sprintf("Post %s approved and scheduled", postID)
	return action, nil
}

// RejectPost rejects a post.
func (s *StaticService) RejectPost(ctx context.Context, id string) (*PostAction, error) {
	action, postID, err := s.setPostStatus(id, "rejected")
	if err != nil {
		return nil, err
	}
	action.Message = fmt.Sprintf("Post %s rejected", postID)
	return action, nil
}

// ReschedulePost updates the scheduled date and keeps the post scheduled.
func (s *StaticService) ReschedulePost(ctx context.Context, id, scheduledDate string) (*PostAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i].ScheduledDate = scheduledDate
			s.posts[i].Status = "scheduled"
			return &PostAction{
				Message: fmt.Sprintf("Post %s rescheduled to %s", id, scheduledDate),
				Post:    s.posts[i],
			}, nil
		}
	}
	return nil, notFound("Post", id)
}

// Articles returns fixture articles with optional filters and sorting.
func (s *StaticService) Articles(ctx context.Context, company, status, sortKey string) ([]Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := filterArticles(s.articles, company, status)
	switch sortKey {
	case "created_at":
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	case "aeo_score":
		sort.SliceStable(out, func(i, j int) bool { return out[i].AEOScore > out[j].AEOScore })
	}
	return out, nil
}

// ContentStats aggregates the fixture library.
func (s *StaticService) ContentStats(ctx context.Context, company string) (*ContentStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles := filterArticles(s.articles, company, "")
	stats := &ContentStats{
		Total:    len(articles),
		ByStatus: map[string]int{},
		ByCompany: map[string]int{},
	}
	var words, scores float64
	for _, a := range articles {
		stats.ByStatus[a.Status]++
		stats.ByCompany[a.CompanySlug]++
		words += float64(a.WordCount)
		scores += a.AEOScore
	}
	if len(articles) > 0 {
		stats.AvgWordCount = round1(words / float64(len(articles)))
		stats.AvgAEOScore = round1(scores / float64(len(articles)))
	}
	return stats, nil
}

// Topics returns the distinct fixture topics, sorted.
func (s *StaticService) Topics(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := map[string]bool{}
	for _, a := range s.articles {
		if a.Topic != "" {
			seen[a.Topic] = true
		}
	}
	topics := make([]string, 0, len(seen))
	for t := range seen {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return topics, nil
}

// Article returns one fixture article by id.
func (s *StaticService) Article(ctx context.Context, id string) (*Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.articles {
		if s.articles[i].ID == id {
			a := s.articles[i]
			return &a, nil
		}
	}
	return nil, notFound("Article", id)
}

// UpdateArticle applies non-nil fields in place.
func (s *StaticService) UpdateArticle(ctx context.Context, id string, update ArticleUpdate) (*Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.articles {
		if s.articles[i].ID != id {
			continue
		}
		if update.Title != nil {
			s.articles[i].Title = *update.Title
		}
		if update.Topic != nil {
			s.articles[i].Topic = *update.Topic
		}
		if update.Tags != nil {
			s.articles[i].Tags = update.Tags
		}
		if update.Status != nil {
			s.articles[i].Status = *update.Status
		}
		a := s.articles[i]
		return &a, nil
	}
	return nil, notFound("Article", id)
}

func (s *StaticService) setArticleStatus(id, status string) (*ArticleAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.articles {
		if s.articles[i].ID == id {
			s.articles[i].Status = status
			return &ArticleAction{Article: s.articles[i]}, nil
		}
	}
	return nil, notFound("Article", id)
}

// ApproveArticle marks an article approved.
func (s *StaticService) ApproveArticle(ctx context.Context, id string) (*ArticleAction, error) {
	action, err := s.setArticleStatus(id, "approved")
	if err != nil {
		return nil, err
	}
	action.Message = fmt.Sprintf("Article %s approved", id)
	return action, nil
}

// PublishArticle marks an article published.
func (s *StaticService) PublishArticle(ctx context.Context, id string) (*ArticleAction, error) {
	action, err := s.setArticleStatus(id, "published")
	if err != nil {
		return nil, err
	}
	action.Message = fmt.Sprintf("Article %s published", id)
	return action, nil
}

// Leads returns fixture leads with optional filters.
func (s *StaticService) Leads(ctx context.Context, company, status string, minScore int) (*LeadsResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	leads := filterLeads(s.leads, company, status, minScore)
	return &LeadsResult{Leads: leads, Total: len(leads)}, nil
}

// Funnel aggregates fixture leads by stage.
func (s *StaticService) Funnel(ctx context.Context) (*Funnel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stages := []string{"new", "contacted", "engaged", "converted", "dead"}
	counts := map[string]int{}
	for _, st := range stages {
		counts[st] = 0
	}
	for _, l := range s.leads {
		if _, ok := counts[l.Status]; ok {
			counts[l.Status]++
		}
	}

	total := len(s.leads)
	f := &Funnel{
		Counts:          counts,
		Total:           total,
		Active:          total - counts["dead"],
		ConversionRates: map[string]float64{},
	}
	if total > 0 {
		f.ConversionRates["contacted_rate"] = round1(float64(counts["contacted"]+counts["engaged"]+counts["converted"]) / float64(total) * 100)
		f.ConversionRates["engaged_rate"] = round1(float64(counts["engaged"]+counts["converted"]) / float64(total) * 100)
		f.ConversionRates["converted_rate"] = round1(float64(counts["converted"]) / float64(total) * 100)
		f.ConversionRates["dead_rate"] = round1(float64(counts["dead"]) / float64(total) * 100)
	}
	return f, nil
}

// PipelineMetrics aggregates fixture lead value by company.
func (s *StaticService) PipelineMetrics(ctx context.Context) (*PipelineMetrics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := &PipelineMetrics{ByCompany: map[string]CompanyPipeline{}}
	scoreSums := map[string]int{}
	var allScores int
	for _, l := range s.leads {
		cp := m.ByCompany[l.Company]
		cp.Count++
		cp.PipelineValue += l.DealValue
		m.ByCompany[l.Company] = cp
		scoreSums[l.Company] += l.Score
		allScores += l.Score
		m.TotalPipelineValue += l.DealValue
	}
	for company, cp := range m.ByCompany {
		cp.AvgScore = round1(float64(scoreSums[company]) / float64(cp.Count))
		m.ByCompany[company] = cp
	}
	if len(s.leads) > 0 {
		m.AvgScore = round1(float64(allScores) / float64(len(s.leads)))
	}

	top := make([]Lead, len(s.leads))
	copy(top, s.leads)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Score > top[j].Score })
	if len(top) > 10 {
		top = top[:10]
	}
	m.TopLeads = top
	return m, nil
}

// Sequences groups fixture leads by outreach step.
func (s *StaticService) Sequences(ctx context.Context) (*Sequences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := &Sequences{Sequences: map[string]SequenceGroup{}, Total: len(s.leads)}
	for step := 0; step <= 4; step++ {
		out.Sequences[strconv.Itoa(step)] = SequenceGroup{Leads: []Lead{}}
	}
	for _, l := range s.leads {
		key := strconv.Itoa(l.SequenceStep)
		group, ok := out.Sequences[key]
		if !ok {
			continue
		}
		group.Leads = append(group.Leads, l)
		group.Count = len(group.Leads)
		out.Sequences[key] = group
	}
	return out, nil
}

// Tokens returns fixture OAuth token health keyed by company name.
func (s *StaticService) Tokens(ctx context.Context) (*TokensResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := &TokensResult{Tokens: map[string]TokenStatus{}}
	for _, t := range s.tokens {
		out.Tokens[t.Company] = t
	}
	out.TotalCompanies = len(out.Tokens)
	return out, nil
}

// Companies returns the fixture registry.
func (s *StaticService) Companies(ctx context.Context) (*CompaniesResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := &CompaniesResult{Companies: append([]Company(nil), s.companies...)}
	out.Total = len(out.Companies)
	for _, c := range out.Companies {
		if c.Active {
			out.Active++
		}
	}
	return out, nil
}

// Company returns one fixture company by slug or key.
func (s *StaticService) Company(ctx context.Context, slug string) (*Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.companies {
		if s.companies[i].Slug == slug || s.companies[i].Key == slug {
			c := s.companies[i]
			return &c, nil
		}
	}
	return nil, notFound("Company", slug)
}

// SystemInfo describes the demo backend.
func (s *StaticService) SystemInfo(ctx context.Context) (*SystemInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := 0
	for _, c := range s.companies {
		if c.Active {
			active++
		}
	}
	return &SystemInfo{
		AppName:              "US Construction Mission Control",
		Version:              "1.0.0",
		DemoMode:             true,
		DataDir:              "memory",
		DataDirInfo:          DirInfo{Exists: true},
		Host:                 "localhost",
		Port:                 8000,
		CompaniesCount:       len(s.companies),
		ActiveCompaniesCount: active,
	}, nil
}

// Locations returns fixture GBP locations.
func (s *StaticService) Locations(ctx context.Context) (*LocationsResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &LocationsResult{Locations: append([]Location(nil), s.locations...), Total: len(s.locations)}, nil
}

// Insights aggregates fixture GBP interactions per company.
func (s *StaticService) Insights(ctx context.Context) (*InsightsResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := &InsightsResult{ByCompany: map[string]CompanyInsights{}}
	for _, loc := range s.locations {
		ins := CompanyInsights{
			Views:      loc.Insights.Views,
			Clicks:     loc.Insights.Clicks,
			Calls:      loc.Insights.Calls,
			Directions: loc.Insights.Directions,
		}
		ins.TotalInteractions = ins.Views + ins.Clicks + ins.Calls + ins.Directions
		out.ByCompany[loc.Company] = ins

		out.Totals.Views += ins.Views
		out.Totals.Clicks += ins.Clicks
		out.Totals.Calls += ins.Calls
		out.Totals.Directions += ins.Directions
	}
	out.Totals.TotalInteractions = out.Totals.Views + out.Totals.Clicks + out.Totals.Calls + out.Totals.Directions
	out.CompaniesTracked = len(out.ByCompany)
	return out, nil
}

// Queries returns fixture AEO queries.
func (s *StaticService) Queries(ctx context.Context, company string) (*QueriesResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Query, 0, len(s.queries))
	for _, q := range s.queries {
		if company != "" && q.Company != company {
			continue
		}
		out = append(out, q)
	}
	return &QueriesResult{Queries: out, Total: len(out)}, nil
}

// AEOStats aggregates fixture query data.
func (s *StaticService) AEOStats(ctx context.Context) (*AEOStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &AEOStats{
		TotalQueries:    len(s.queries),
		CapsuleStatuses: map[string]int{},
	}
	var positions, scores float64
	companies := map[string]bool{}
	for _, q := range s.queries {
		positions += float64(q.Position)
		scores += float64(q.Score)
		companies[q.Company] = true
	}
	if len(s.queries) > 0 {
		stats.AvgQueryPosition = round1(positions / float64(len(s.queries)))
		stats.AvgAEOScore = round1(scores / float64(len(s.queries)))
	}
	stats.CompaniesTracked = len(companies)
	return stats, nil
}

// Reviews returns fixture reviews with optional filters.
func (s *StaticService) Reviews(ctx context.Context, company, platform string, minRating int) (*ReviewsResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Review, 0, len(s.reviews))
	for _, r := range s.reviews {
		if company != "" && r.Company != company {
			continue
		}
		if platform != "" && r.Platform != platform {
			continue
		}
		if minRating > 0 && r.Rating < minRating {
			continue
		}
		out = append(out, r)
	}
	return &ReviewsResult{Reviews: out, Total: len(out)}, nil
}

// ReviewSummary aggregates fixture reviews.
func (s *StaticService) ReviewSummary(ctx context.Context) (*ReviewSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := &ReviewSummary{
		TotalReviews: len(s.reviews),
		ByPlatform:   map[string]RatingBucket{},
		ByCompany:    map[string]RatingBucket{},
	}
	if len(s.reviews) == 0 {
		return sum, nil
	}

	var ratingTotal int
	platformTotals := map[string]int{}
	companyTotals := map[string]int{}
	for _, r := range s.reviews {
		ratingTotal += r.Rating
		if r.Reply != "" {
			sum.Replied++
		}

		pb := sum.ByPlatform[r.Platform]
		pb.Count++
		sum.ByPlatform[r.Platform] = pb
		platformTotals[r.Platform] += r.Rating

		cb := sum.ByCompany[r.Company]
		cb.Count++
		sum.ByCompany[r.Company] = cb
		companyTotals[r.Company] += r.Rating
	}
	for p, b := range sum.ByPlatform {
		b.AvgRating = round2(float64(platformTotals[p]) / float64(b.Count))
		sum.ByPlatform[p] = b
	}
	for c, b := range sum.ByCompany {
		b.AvgRating = round2(float64(companyTotals[c]) / float64(b.Count))
		sum.ByCompany[c] = b
	}
	sum.AvgRating = round2(float64(ratingTotal) / float64(len(s.reviews)))
	sum.ReplyRate = round1(float64(sum.Replied) / float64(len(s.reviews)) * 100)
	return sum, nil
}

// ReplyToReview attaches a reply to a fixture review.
func (s *StaticService) ReplyToReview(ctx context.Context, id, reply string) (*Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reviews {
		if s.reviews[i].ID == id {
			s.reviews[i].Reply = reply
			s.reviews[i].ReplyStatus = "pending"
			r := s.reviews[i]
			return &r, nil
		}
	}
	return nil, notFound("Review", id)
}

// Audits returns fixture brand audits.
func (s *StaticService) Audits(ctx context.Context) (*AuditsResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &AuditsResult{Audits: append([]Audit(nil), s.audits...), Total: len(s.audits)}, nil
}

// AuditSummary aggregates fixture brand health.
func (s *StaticService) AuditSummary(ctx context.Context) (*AuditSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := &AuditSummary{
		TotalAudits: len(s.audits),
		ByCompany:   map[string]CompanyAudit{},
		Issues:      []string{},
	}
	var scores float64
	for _, a := range s.audits {
		scores += float64(a.OverallScore)
		sum.TotalIssues += len(a.Issues)
		sum.Issues = append(sum.Issues, a.Issues...)
		sum.ByCompany[a.Company] = CompanyAudit{
			Score:       a.OverallScore,
			Issues:      len(a.Issues),
			LastAudited: a.LastAudited,
		}
	}
	if len(s.audits) > 0 {
		sum.AvgScore = round1(scores / float64(len(s.audits)))
	}
	return sum, nil
}

// Assets returns fixture assets with optional filters.
func (s *StaticService) Assets(ctx context.Context, company, assetType, status string) (*AssetsResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Asset, 0, len(s.assets))
	for _, a := range s.assets {
		if company != "" && a.Company != company {
			continue
		}
		if assetType != "" && a.Type != assetType {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		out = append(out, a)
	}
	return &AssetsResult{Assets: out, Total: len(out)}, nil
}

// AssetStats aggregates fixture assets.
func (s *StaticService) AssetStats(ctx context.Context) (*AssetStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &AssetStats{
		Total:     len(s.assets),
		ByType:    map[string]int{},
		ByCompany: map[string]int{},
		ByStatus:  map[string]int{},
	}
	for _, a := range s.assets {
		stats.ByType[a.Type]++
		stats.ByCompany[a.Company]++
		stats.ByStatus[a.Status]++
	}
	return stats, nil
}

// QualityRuns returns fixture runs with optional filters, newest first.
func (s *StaticService) QualityRuns(ctx context.Context, company, contentType, status string) ([]QualityRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]QualityRun, 0, len(s.runs))
	for _, r := range s.runs {
		if company != "" && r.CompanySlug != company {
			continue
		}
		if contentType != "" && r.ContentType != contentType {
			continue
		}
		if status != "" && r.Status != status {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

// QualityRun returns one fixture run by id.
func (s *StaticService) QualityRun(ctx context.Context, id string) (*QualityRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.runs {
		if s.runs[i].ID == id {
			r := s.runs[i]
			return &r, nil
		}
	}
	return nil, notFound("Run", id)
}

// QualityStats aggregates fixture runs.
func (s *StaticService) QualityStats(ctx context.Context, company string) (*QualityStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runs := make([]QualityRun, 0, len(s.runs))
	for _, r := range s.runs {
		if company != "" && r.CompanySlug != company {
			continue
		}
		runs = append(runs, r)
	}

	stats := &QualityStats{
		TotalRuns:     len(runs),
		ByContentType: map[string]TypeQuality{},
		ByStatus:      map[string]int{},
	}
	if len(runs) == 0 {
		return stats, nil
	}

	var scores, iterations float64
	passed := 0
	typeScores := map[string]float64{}
	for _, r := range runs {
		scores += r.FinalScore
		iterations += float64(r.IterationCount)
		if r.Status == "passed" {
			passed++
		}
		stats.ByStatus[r.Status]++

		tq := stats.ByContentType[r.ContentType]
		tq.Total++
		if r.Status == "passed" {
			tq.Passed++
		}
		stats.ByContentType[r.ContentType] = tq
		typeScores[r.ContentType] += r.FinalScore
	}
	for ct, tq := range stats.ByContentType {
		tq.AvgScore = round1(typeScores[ct] / float64(tq.Total))
		tq.PassRate = round1(float64(tq.Passed) / float64(tq.Total) * 100)
		stats.ByContentType[ct] = tq
	}
	stats.AvgScore = round1(scores / float64(len(runs)))
	stats.PassRate = round1(float64(passed) / float64(len(runs)) * 100)
	stats.AvgIterations = round1(iterations / float64(len(runs)))
	return stats, nil
}

// QualityContentTypes returns the static content-type list.
func (s *StaticService) QualityContentTypes(ctx context.Context) ([]ContentType, error) {
	return []ContentType{
		{Value: "linkedin_post", Label: "LinkedIn Post"},
		{Value: "outreach_email", Label: "Outreach Email"},
		{Value: "aeo_capsule", Label: "AEO Capsule"},
		{Value: "gbp_post", Label: "GBP Post"},
		{Value: "review_response", Label: "Review Response"},
		{Value: "blog_article", Label: "Blog Article"},
	}, nil
}

func filterPosts(posts []Post, company, status string) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if company != "" && p.CompanySlug != company {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		out = append(out, p)
	}
	return out
}

func filterArticles(articles []Article, company, status string) []Article {
	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		if company != "" && a.CompanySlug != company {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		out = append(out, a)
	}
	return out
}

func filterLeads(leads []Lead, company, status string, minScore int) []Lead {
	out := make([]Lead, 0, len(leads))
	for _, l := range leads {
		if company != "" && l.CompanySlug != company {
			continue
		}
		if status != "" && l.Status != status {
			continue
		}
		if minScore > 0 && l.Score < minScore {
			continue
		}
		out = append(out, l)
	}
	return out
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }

var _ Service = (*StaticService)(nil)
