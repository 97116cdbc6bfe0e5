package backend

// Summary aggregates counts from every system for the home page stat bar.
type Summary struct {
	LinkedIn     LinkedInSummary     `json:"linkedin"`
	Content      ContentSummary      `json:"content"`
	Reactivation ReactivationSummary `json:"reactivation"`
	Tokens       map[string]string   `json:"tokens"`
	Companies    int                 `json:"companies"`
}

// LinkedInSummary covers the post queue.
type LinkedInSummary struct {
	Scheduled       int `json:"scheduled"`
	Published       int `json:"published"`
	Drafts          int `json:"drafts"`
	TotalEngagement int `json:"total_engagement"`
	PostsThisWeek   int `json:"posts_this_week"`
}

// ContentSummary covers the article library.
type ContentSummary struct {
	TotalArticles int     `json:"total_articles"`
	Approved      int     `json:"approved"`
	Published     int     `json:"published"`
	AvgAEOScore   float64 `json:"avg_aeo_score"`
}

// ReactivationSummary covers the lead pipeline.
type ReactivationSummary struct {
	ActiveLeads    int     `json:"active_leads"`
	Converted      int     `json:"converted"`
	PipelineValue  int64   `json:"pipeline_value"`
	ConversionRate float64 `json:"conversion_rate"`
}

// Event is a calendar entry in FullCalendar-compatible form.
type Event struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Start         string     `json:"start"`
	End           string     `json:"end"`
	Color         string     `json:"color"`
	ExtendedProps EventProps `json:"extendedProps"`
}

// EventProps carries the non-display event metadata.
type EventProps struct {
	Company     string `json:"company"`
	CompanySlug string `json:"company_slug"`
	Type        string `json:"type"`
}

// Post is a LinkedIn post in the publishing queue.
type Post struct {
	ID            string     `json:"id"`
	Company       string     `json:"company"`
	CompanySlug   string     `json:"company_slug"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Status        string     `json:"status"`
	ScheduledDate string     `json:"scheduled_date"`
	Hashtags      []string   `json:"hashtags"`
	Platform      string     `json:"platform"`
	Engagement    Engagement `json:"engagement"`
	CreatedAt     string     `json:"created_at"`
	UpdatedAt     string     `json:"updated_at,omitempty"`
	PublishedAt   string     `json:"published_at,omitempty"`
}

// Engagement counts reactions on a published post.
type Engagement struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
}

// PostStats summarises the queue by status and company.
type PostStats struct {
	Total     int            `json:"total"`
	ByStatus  map[string]int `json:"by_status"`
	ByCompany map[string]int `json:"by_company"`
}

// PostUpdate carries editable post fields; nil fields are left unchanged.
type PostUpdate struct {
	Title         *string  `json:"title,omitempty"`
	Content       *string  `json:"content,omitempty"`
	ScheduledDate *string  `json:"scheduled_date,omitempty"`
	Hashtags      []string `json:"hashtags,omitempty"`
}

// PostAction is the backend acknowledgement for approve/reject/reschedule.
type PostAction struct {
	Message string `json:"message"`
	Post    Post   `json:"post"`
}

// Article is a content-library entry.
type Article struct {
	ID          string   `json:"id"`
	Company     string   `json:"company"`
	CompanySlug string   `json:"company_slug"`
	Title       string   `json:"title"`
	Topic       string   `json:"topic"`
	WordCount   int      `json:"word_count"`
	Status      string   `json:"status"`
	AEOScore    float64  `json:"aeo_score"`
	CreatedAt   string   `json:"created_at"`
	PublishedAt string   `json:"published_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
	Tags        []string `json:"tags"`
	// Body holds the article's markdown source when the backend includes it.
	Body string `json:"body,omitempty"`
}

// ContentStats summarises the library.
type ContentStats struct {
	Total        int            `json:"total"`
	ByStatus     map[string]int `json:"by_status"`
	ByCompany    map[string]int `json:"by_company"`
	AvgWordCount float64        `json:"avg_word_count"`
	AvgAEOScore  float64        `json:"avg_aeo_score"`
}

// ArticleUpdate carries editable article fields.
type ArticleUpdate struct {
	Title  *string  `json:"title,omitempty"`
	Topic  *string  `json:"topic,omitempty"`
	Tags   []string `json:"tags,omitempty"`
	Status *string  `json:"status,omitempty"`
}

// ArticleAction is the backend acknowledgement for approve/publish.
type ArticleAction struct {
	Message string  `json:"message"`
	Article Article `json:"article"`
}

// Lead is a reactivation pipeline entry.
type Lead struct {
	ID           string `json:"id"`
	Company      string `json:"company"`
	CompanySlug  string `json:"company_slug"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ProjectType  string `json:"project_type"`
	DealValue    int64  `json:"deal_value"`
	Score        int    `json:"score"`
	Status       string `json:"status"`
	LastContact  string `json:"last_contact"`
	SequenceStep int    `json:"sequence_step"`
	CreatedAt    string `json:"created_at"`
}

// LeadsResult wraps the lead list endpoint response.
type LeadsResult struct {
	Leads []Lead `json:"leads"`
	Total int    `json:"total"`
}

// Funnel reports counts and conversion rates by pipeline stage.
type Funnel struct {
	Counts          map[string]int     `json:"counts"`
	Total           int                `json:"total"`
	Active          int                `json:"active"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// CompanyPipeline aggregates lead value per company.
type CompanyPipeline struct {
	Count         int     `json:"count"`
	PipelineValue int64   `json:"pipeline_value"`
	AvgScore      float64 `json:"avg_score"`
}

// PipelineMetrics reports pipeline value by company plus top leads.
type PipelineMetrics struct {
	ByCompany          map[string]CompanyPipeline `json:"by_company"`
	AvgScore           float64                    `json:"avg_score"`
	TopLeads           []Lead                     `json:"top_leads"`
	TotalPipelineValue int64                      `json:"total_pipeline_value"`
}

// SequenceGroup lists the leads sitting at one outreach step.
type SequenceGroup struct {
	Count int    `json:"count"`
	Leads []Lead `json:"leads"`
}

// Sequences groups leads by outreach sequence step (0-4).
type Sequences struct {
	Sequences map[string]SequenceGroup `json:"sequences"`
	Total     int                      `json:"total"`
}

// TokenInfo is one OAuth token's health.
type TokenInfo struct {
	Status        string `json:"status"`
	ExpiresAt     string `json:"expires_at,omitempty"`
	LastRefreshed string `json:"last_refreshed,omitempty"`
	Connected     bool   `json:"connected,omitempty"`
}

// TokenStatus is the per-company OAuth token state.
type TokenStatus struct {
	Company       string    `json:"company"`
	CompanySlug   string    `json:"company_slug"`
	LinkedInToken TokenInfo `json:"linkedin_token"`
	MondayToken   TokenInfo `json:"monday_token"`
}

// TokensResult wraps the token status endpoint response.
type TokensResult struct {
	Tokens         map[string]TokenStatus `json:"tokens"`
	TotalCompanies int                    `json:"total_companies"`
}

// Company is one entry in the company registry.
type Company struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	AccentColor string   `json:"accent_color"`
	AccentName  string   `json:"accent_name"`
	Website     string   `json:"website"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Address     string   `json:"address"`
	Services    []string `json:"services"`
	Tagline     string   `json:"tagline"`
	IsParent    bool     `json:"is_parent,omitempty"`
	Status      string   `json:"status,omitempty"`
	Active      bool     `json:"active"`
}

// CompaniesResult wraps the company registry endpoint response.
type CompaniesResult struct {
	Companies []Company `json:"companies"`
	Total     int       `json:"total"`
	Active    int       `json:"active"`
}

// DirInfo describes the backend data directory.
type DirInfo struct {
	Exists    bool   `json:"exists"`
	Files     int    `json:"files"`
	SizeBytes int64  `json:"size_bytes"`
	SizeHuman string `json:"size_human,omitempty"`
}

// SystemInfo is the backend's self-description.
type SystemInfo struct {
	AppName              string  `json:"app_name"`
	Version              string  `json:"version"`
	DemoMode             bool    `json:"demo_mode"`
	Debug                bool    `json:"debug"`
	DataDir              string  `json:"data_dir"`
	DataDirInfo          DirInfo `json:"data_dir_info"`
	Host                 string  `json:"host"`
	Port                 int     `json:"port"`
	CompaniesCount       int     `json:"companies_count"`
	ActiveCompaniesCount int     `json:"active_companies_count"`
}

// Location is a Google Business Profile listing.
type Location struct {
	Company     string   `json:"company"`
	CompanySlug string   `json:"company_slug"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Verified    bool     `json:"verified"`
	Insights    Insights `json:"insights"`
}

// Insights counts profile interactions.
type Insights struct {
	Views      int `json:"views"`
	Clicks     int `json:"clicks"`
	Calls      int `json:"calls"`
	Directions int `json:"directions"`
}

// CompanyInsights adds the interaction total.
type CompanyInsights struct {
	Views             int `json:"views"`
	Clicks            int `json:"clicks"`
	Calls             int `json:"calls"`
	Directions        int `json:"directions"`
	TotalInteractions int `json:"total_interactions"`
}

// LocationsResult wraps the GBP locations endpoint response.
type LocationsResult struct {
	Locations []Location `json:"locations"`
	Total     int        `json:"total"`
}

// InsightsResult wraps the aggregated GBP insights endpoint response.
type InsightsResult struct {
	ByCompany        map[string]CompanyInsights `json:"by_company"`
	Totals           CompanyInsights            `json:"totals"`
	CompaniesTracked int                        `json:"companies_tracked"`
}

// Query is a tracked AEO search query.
type Query struct {
	Query    string `json:"query"`
	Company  string `json:"company"`
	Position int    `json:"position"`
	Score    int    `json:"score"`
	Trend    string `json:"trend"`
}

// QueriesResult wraps the AEO queries endpoint response.
type QueriesResult struct {
	Queries []Query `json:"queries"`
	Total   int     `json:"total"`
}

// AEOStats summarises queries, capsules and page audits.
type AEOStats struct {
	AvgAEOScore      float64        `json:"avg_aeo_score"`
	AvgQueryPosition float64        `json:"avg_query_position"`
	TotalQueries     int            `json:"total_queries"`
	TotalCapsules    int            `json:"total_capsules"`
	CapsuleStatuses  map[string]int `json:"capsule_statuses"`
	PagesAudited     int            `json:"pages_audited"`
	CompaniesTracked int            `json:"companies_tracked"`
}

// Review is a customer review from one of the tracked platforms.
type Review struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Platform    string `json:"platform"`
	Rating      int    `json:"rating"`
	Text        string `json:"text"`
	Author      string `json:"author"`
	Date        string `json:"date"`
	Reply       string `json:"reply,omitempty"`
	ReplyDate   string `json:"reply_date,omitempty"`
	ReplyStatus string `json:"reply_status,omitempty"`
}

// ReviewsResult wraps the review list endpoint response.
type ReviewsResult struct {
	Reviews []Review `json:"reviews"`
	Total   int      `json:"total"`
}

// RatingBucket is one group's review count and average.
type RatingBucket struct {
	Count     int     `json:"count"`
	AvgRating float64 `json:"avg_rating"`
}

// ReviewSummary aggregates reviews by platform and company.
type ReviewSummary struct {
	TotalReviews int                     `json:"total_reviews"`
	AvgRating    float64                 `json:"avg_rating"`
	ByPlatform   map[string]RatingBucket `json:"by_platform"`
	ByCompany    map[string]RatingBucket `json:"by_company"`
	Replied      int                     `json:"replied"`
	ReplyRate    float64                 `json:"reply_rate"`
}

// Audit is one company's brand consistency audit.
type Audit struct {
	Company      string         `json:"company"`
	CompanySlug  string         `json:"company_slug"`
	OverallScore int            `json:"overall_score"`
	Categories   map[string]int `json:"categories"`
	Issues       []string       `json:"issues"`
	LastAudited  string         `json:"last_audited"`
}

// AuditsResult wraps the brand audit list endpoint response.
type AuditsResult struct {
	Audits []Audit `json:"audits"`
	Total  int     `json:"total"`
}

// CompanyAudit is the per-company slice of the audit summary.
type CompanyAudit struct {
	Score       int    `json:"score"`
	Issues      int    `json:"issues"`
	LastAudited string `json:"last_audited"`
}

// AuditSummary is overall brand health.
type AuditSummary struct {
	AvgScore    float64                 `json:"avg_score"`
	TotalAudits int                     `json:"total_audits"`
	TotalIssues int                     `json:"total_issues"`
	Issues      []string                `json:"issues"`
	ByCompany   map[string]CompanyAudit `json:"by_company"`
}

// Asset is a generated visual asset.
type Asset struct {
	ID         string `json:"id"`
	Company    string `json:"company"`
	Type       string `json:"type"`
	Title      string `json:"title"`
	Dimensions string `json:"dimensions"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
	URL        string `json:"url"`
}

// AssetsResult wraps the asset list endpoint response.
type AssetsResult struct {
	Assets []Asset `json:"assets"`
	Total  int     `json:"total"`
}

// AssetStats counts assets by type, company and status.
type AssetStats struct {
	Total     int            `json:"total"`
	ByType    map[string]int `json:"by_type"`
	ByCompany map[string]int `json:"by_company"`
	ByStatus  map[string]int `json:"by_status"`
}

// QualityIteration is one pass through the quality loop.
type QualityIteration struct {
	Number   int     `json:"number"`
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// QualityRun is one content item's trip through the quality loop.
type QualityRun struct {
	ID             string             `json:"id"`
	Company        string             `json:"company"`
	CompanySlug    string             `json:"company_slug"`
	ContentType    string             `json:"content_type"`
	Status         string             `json:"status"`
	FinalScore     float64            `json:"final_score"`
	IterationCount int                `json:"iteration_count"`
	CreatedAt      string             `json:"created_at"`
	Iterations     []QualityIteration `json:"iterations,omitempty"`
}

// TypeQuality is the per-content-type slice of quality stats.
type TypeQuality struct {
	Total    int     `json:"total"`
	Passed   int     `json:"passed"`
	AvgScore float64 `json:"avg_score"`
	PassRate float64 `json:"pass_rate"`
}

// QualityStats aggregates quality loop runs.
type QualityStats struct {
	TotalRuns     int                    `json:"total_runs"`
	AvgScore      float64                `json:"avg_score"`
	PassRate      float64                `json:"pass_rate"`
	AvgIterations float64                `json:"avg_iterations"`
	ByContentType map[string]TypeQuality `json:"by_content_type"`
	ByStatus      map[string]int         `json:"by_status"`
}

// ContentType is a selectable quality loop content type.
type ContentType struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
