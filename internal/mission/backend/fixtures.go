package backend

import "fmt"

// seed fills the fixture stores. The data is deterministic so demo mode and
// tests render the same pages on every run.
func (s *StaticService) seed() {
	s.companies = []Company{
		{
			Key: "us_construction", Name: "US Construction", Slug: "us-construction",
			AccentColor: "#c8963c", AccentName: "gold",
			Website: "https://usconstruction.example.com", Phone: "(555) 010-1000",
			Email: "info@usconstruction.example.com", Address: "100 Main St, Denver, CO",
			Services: []string{"general contracting", "design-build"},
			Tagline:  "Built on trust", IsParent: true, Status: "active", Active: true,
		},
		{
			Key: "us_framing", Name: "US Framing", Slug: "us-framing",
			AccentColor: "#3c78c8", AccentName: "steel blue",
			Website: "https://usframing.example.com", Phone: "(555) 010-2000",
			Email: "info@usframing.example.com", Address: "200 Mill Rd, Denver, CO",
			Services: []string{"wood framing", "structural steel"},
			Tagline:  "Frames that last", Status: "active", Active: true,
		},
		{
			Key: "us_drywall", Name: "US Drywall", Slug: "us-drywall",
			AccentColor: "#78c83c", AccentName: "sage",
			Website: "https://usdrywall.example.com", Phone: "(555) 010-3000",
			Email: "info@usdrywall.example.com", Address: "300 Plaster Ave, Denver, CO",
			Services: []string{"drywall installation", "finishing"},
			Tagline:  "Smooth from the start", Status: "active", Active: true,
		},
		{
			Key: "us_exteriors", Name: "US Exteriors", Slug: "us-exteriors",
			AccentColor: "#c83c3c", AccentName: "brick",
			Website: "https://usexteriors.example.com", Phone: "(555) 010-4000",
			Email: "info@usexteriors.example.com", Address: "400 Siding Ln, Denver, CO",
			Services: []string{"siding", "roofing", "windows"},
			Tagline:  "Weather every season", Status: "active", Active: true,
		},
		{
			Key: "us_interiors", Name: "US Interiors", Slug: "us-interiors",
			AccentColor: "#9c3cc8", AccentName: "plum",
			Website: "https://usinteriors.example.com", Phone: "(555) 010-5000",
			Email: "info@usinteriors.example.com", Address: "500 Finish Ct, Denver, CO",
			Services: []string{"interior finishing", "cabinetry"},
			Tagline:  "Where details live", Status: "active", Active: true,
		},
		{
			Key: "us_development", Name: "US Development", Slug: "us-development",
			AccentColor: "#3cc8b4", AccentName: "teal",
			Website: "https://usdevelopment.example.com", Phone: "(555) 010-6000",
			Email: "info@usdevelopment.example.com", Address: "600 Horizon Pkwy, Denver, CO",
			Services: []string{"land development", "project planning"},
			Tagline:  "Ground up", Status: "paused", Active: false,
		},
	}

	s.seedPosts()
	s.seedArticles()
	s.seedLeads()
	s.seedEvents()
	s.seedTokens()
	s.seedLocations()
	s.seedQueries()
	s.seedReviews()
	s.seedAudits()
	s.seedAssets()
	s.seedQualityRuns()
}

func (s *StaticService) seedPosts() {
	// Five scheduled posts for US Framing, one per upcoming weekday.
	for i := 1; i <= 5; i++ {
		s.posts = append(s.posts, Post{
			ID:            fmt.Sprintf("post-framing-%d", i),
			Company:       "US Framing",
			CompanySlug:   "us-framing",
			Title:         fmt.Sprintf("Framing insight #%d", i),
			Content:       fmt.Sprintf("Jobsite lesson %d: measure the lumber package before the crane shows up.", i),
			Status:        "scheduled",
			ScheduledDate: fmt.Sprintf("2026-09-%02dT09:00:00", i),
			Hashtags:      []string{"#construction", "#framing"},
			Platform:      "linkedin",
			CreatedAt:     fmt.Sprintf("2026-08-%02dT10:00:00", 20+i),
		})
	}
	s.posts = append(s.posts,
		Post{
			ID: "post-framing-6", Company: "US Framing", CompanySlug: "us-framing",
			Title: "Topping out in Arvada", Content: "Crew topped out the Arvada multifamily project three days early.",
			Status: "published", ScheduledDate: "2026-08-18T09:00:00",
			Hashtags: []string{"#framing", "#milestone"}, Platform: "linkedin",
			Engagement: Engagement{Likes: 42, Comments: 7, Shares: 3},
			CreatedAt:  "2026-08-15T10:00:00", PublishedAt: "2026-08-18T09:05:00",
		},
		Post{
			ID: "post-framing-7", Company: "US Framing", CompanySlug: "us-framing",
			Title: "Draft: winter framing checklist", Content: "Cold-weather fastening and moisture control notes.",
			Status: "draft", ScheduledDate: "2026-09-10T09:00:00",
			Hashtags: []string{"#framing"}, Platform: "linkedin",
			CreatedAt: "2026-08-26T10:00:00",
		},
		Post{
			ID: "post-drywall-1", Company: "US Drywall", CompanySlug: "us-drywall",
			Title: "Level 5 finish walkthrough", Content: "What a level 5 finish actually involves, panel by panel.",
			Status: "scheduled", ScheduledDate: "2026-09-02T09:00:00",
			Hashtags: []string{"#drywall"}, Platform: "linkedin",
			CreatedAt: "2026-08-24T10:00:00",
		},
		Post{
			ID: "post-drywall-2", Company: "US Drywall", CompanySlug: "us-drywall",
			Title: "Hospital wing handover", Content: "Acoustic assemblies signed off on the St. Mary's wing.",
			Status: "published", ScheduledDate: "2026-08-20T09:00:00",
			Hashtags: []string{"#drywall", "#healthcare"}, Platform: "linkedin",
			Engagement: Engagement{Likes: 18, Comments: 2, Shares: 1},
			CreatedAt:  "2026-08-17T10:00:00", PublishedAt: "2026-08-20T09:02:00",
		},
		Post{
			ID: "post-exteriors-1", Company: "US Exteriors", CompanySlug: "us-exteriors",
			Title: "Hail season prep", Content: "Five checks before the first storm cell rolls through.",
			Status: "draft", ScheduledDate: "2026-09-05T09:00:00",
			Hashtags: []string{"#roofing"}, Platform: "linkedin",
			CreatedAt: "2026-08-25T10:00:00",
		},
	)
}

func (s *StaticService) seedArticles() {
	s.articles = []Article{
		{
			ID: "article-framing-1", Company: "US Framing", CompanySlug: "us-framing",
			Title: "How Long Does Framing a Custom Home Take?", Topic: "framing timelines",
			WordCount: 1480, Status: "published", AEOScore: 88.5,
			CreatedAt: "2026-08-10T08:00:00", PublishedAt: "2026-08-14T08:00:00",
			Tags: []string{"framing", "timelines"},
			Body: "## Framing timelines\n\nA typical 2,800 sq ft custom home frames out in **three to five weeks**.\n\n- Week 1: first floor walls\n- Week 2: second floor and stairs\n- Week 3+: roof structure and sheathing\n",
		},
		{
			ID: "article-framing-2", Company: "US Framing", CompanySlug: "us-framing",
			Title: "Wood vs. Steel Framing for Light Commercial", Topic: "materials",
			WordCount: 1720, Status: "published", AEOScore: 91.0,
			CreatedAt: "2026-08-05T08:00:00", PublishedAt: "2026-08-09T08:00:00",
			Tags: []string{"framing", "materials"},
			Body: "Steel wins on span and fire rating; wood wins on cost and schedule. The crossover point for light commercial sits around three stories.\n",
		},
		{
			ID: "article-framing-3", Company: "US Framing", CompanySlug: "us-framing",
			Title: "Reading a Truss Layout Sheet", Topic: "framing basics",
			WordCount: 1150, Status: "approved", AEOScore: 84.0,
			CreatedAt: "2026-08-19T08:00:00",
			Tags: []string{"framing", "education"},
		},
		{
			ID: "article-framing-4", Company: "US Framing", CompanySlug: "us-framing",
			Title: "Draft: Shear Wall Basics", Topic: "framing basics",
			WordCount: 900, Status: "draft", AEOScore: 72.5,
			CreatedAt: "2026-08-26T08:00:00",
			Tags: []string{"framing"},
		},
		{
			ID: "article-drywall-1", Company: "US Drywall", CompanySlug: "us-drywall",
			Title: "Drywall Finish Levels Explained", Topic: "finishing",
			WordCount: 1320, Status: "published", AEOScore: 89.5,
			CreatedAt: "2026-08-08T08:00:00", PublishedAt: "2026-08-12T08:00:00",
			Tags: []string{"drywall", "finishing"},
		},
		{
			ID: "article-exteriors-1", Company: "US Exteriors", CompanySlug: "us-exteriors",
			Title: "Choosing Siding for Colorado Weather", Topic: "siding",
			WordCount: 1560, Status: "approved", AEOScore: 86.0,
			CreatedAt: "2026-08-21T08:00:00",
			Tags: []string{"siding", "weather"},
		},
	}
}

func (s *StaticService) seedLeads() {
	// Ten active US Framing leads worth $50,000 together.
	statuses := []string{"new", "new", "new", "contacted", "contacted", "contacted", "engaged", "engaged", "engaged", "engaged"}
	values := []int64{8000, 6500, 6000, 5500, 5000, 5000, 4500, 4000, 3000, 2500}
	for i := 0; i < 10; i++ {
		s.leads = append(s.leads, Lead{
			ID:           fmt.Sprintf("lead-framing-%d", i+1),
			Company:      "US Framing",
			CompanySlug:  "us-framing",
			Name:         fmt.Sprintf("Framing Prospect %d", i+1),
			Email:        fmt.Sprintf("prospect%d@example.com", i+1),
			Phone:        fmt.Sprintf("(555) 020-%04d", 1000+i),
			ProjectType:  "residential framing",
			DealValue:    values[i],
			Score:        92 - i*3,
			Status:       statuses[i],
			LastContact:  fmt.Sprintf("2026-08-%02dT14:00:00", 15+i),
			SequenceStep: i % 4,
			CreatedAt:    fmt.Sprintf("2026-07-%02dT09:00:00", 10+i),
		})
	}
	s.leads = append(s.leads,
		Lead{
			ID: "lead-framing-11", Company: "US Framing", CompanySlug: "us-framing",
			Name: "Summit Ridge Builders", Email: "pm@summitridge.example.com",
			Phone: "(555) 020-2001", ProjectType: "multifamily framing",
			DealValue: 24000, Score: 95, Status: "converted",
			LastContact: "2026-08-12T14:00:00", SequenceStep: 4,
			CreatedAt: "2026-06-02T09:00:00",
		},
		Lead{
			ID: "lead-framing-12", Company: "US Framing", CompanySlug: "us-framing",
			Name: "Old Town Remodels", Email: "office@oldtown.example.com",
			Phone: "(555) 020-2002", ProjectType: "remodel framing",
			DealValue: 6000, Score: 40, Status: "dead",
			LastContact: "2026-07-20T14:00:00", SequenceStep: 3,
			CreatedAt: "2026-05-18T09:00:00",
		},
		Lead{
			ID: "lead-drywall-1", Company: "US Drywall", CompanySlug: "us-drywall",
			Name: "Foothills Medical Group", Email: "facilities@foothills.example.com",
			Phone: "(555) 030-1001", ProjectType: "commercial drywall",
			DealValue: 18000, Score: 88, Status: "engaged",
			LastContact: "2026-08-24T14:00:00", SequenceStep: 2,
			CreatedAt: "2026-07-01T09:00:00",
		},
		Lead{
			ID: "lead-drywall-2", Company: "US Drywall", CompanySlug: "us-drywall",
			Name: "Platte River Offices", Email: "admin@platteriver.example.com",
			Phone: "(555) 030-1002", ProjectType: "tenant finish",
			DealValue: 9500, Score: 71, Status: "contacted",
			LastContact: "2026-08-22T14:00:00", SequenceStep: 1,
			CreatedAt: "2026-07-14T09:00:00",
		},
		Lead{
			ID: "lead-exteriors-1", Company: "US Exteriors", CompanySlug: "us-exteriors",
			Name: "Cherry Creek HOA", Email: "board@cherrycreekhoa.example.com",
			Phone: "(555) 040-1001", ProjectType: "siding replacement",
			DealValue: 32000, Score: 90, Status: "new",
			LastContact: "2026-08-27T14:00:00", SequenceStep: 0,
			CreatedAt: "2026-08-20T09:00:00",
		},
	)
}

func (s *StaticService) seedEvents() {
	colors := map[string]string{
		"us-framing":  "#3c78c8",
		"us-drywall":  "#78c83c",
		"us-exteriors": "#c83c3c",
	}
	for _, p := range s.posts {
		if p.Status != "scheduled" {
			continue
		}
		s.events = append(s.events, Event{
			ID:    "event-" + p.ID,
			Title: p.Company + ": " + p.Title,
			Start: p.ScheduledDate,
			Color: colors[p.CompanySlug],
			ExtendedProps: EventProps{
				Company:     p.Company,
				CompanySlug: p.CompanySlug,
				Type:        "linkedin_post",
			},
		})
	}
	s.events = append(s.events,
		Event{
			ID: "event-article-framing-3", Title: "US Framing: Reading a Truss Layout Sheet",
			Start: "2026-09-04T08:00:00", Color: "#3c78c8",
			ExtendedProps: EventProps{Company: "US Framing", CompanySlug: "us-framing", Type: "article"},
		},
		Event{
			ID: "event-gbp-drywall-1", Title: "US Drywall: GBP photo update",
			Start: "2026-09-03T11:00:00", Color: "#78c83c",
			ExtendedProps: EventProps{Company: "US Drywall", CompanySlug: "us-drywall", Type: "gbp_post"},
		},
	)
}

func (s *StaticService) seedTokens() {
	healthy := TokenInfo{Status: "healthy", ExpiresAt: "2026-10-15T00:00:00", LastRefreshed: "2026-08-25T06:00:00", Connected: true}
	s.tokens = []TokenStatus{
		{Company: "US Framing", CompanySlug: "us-framing", LinkedInToken: healthy, MondayToken: healthy},
		{Company: "US Drywall", CompanySlug: "us-drywall", LinkedInToken: healthy, MondayToken: healthy},
		{
			Company: "US Exteriors", CompanySlug: "us-exteriors",
			LinkedInToken: TokenInfo{Status: "expiring_soon", ExpiresAt: "2026-09-05T00:00:00", LastRefreshed: "2026-07-05T06:00:00", Connected: true},
			MondayToken:   healthy,
		},
		{
			Company: "US Interiors", CompanySlug: "us-interiors",
			LinkedInToken: TokenInfo{Status: "expired", ExpiresAt: "2026-08-01T00:00:00", LastRefreshed: "2026-06-01T06:00:00"},
			MondayToken:   TokenInfo{Status: "healthy", Connected: true},
		},
	}
}

func (s *StaticService) seedLocations() {
	s.locations = []Location{
		{
			Company: "US Framing", CompanySlug: "us-framing",
			Name: "US Framing - Denver", Address: "200 Mill Rd, Denver, CO",
			Phone: "(555) 010-2000", Rating: 4.8, ReviewCount: 64, Verified: true,
			Insights: Insights{Views: 2140, Clicks: 320, Calls: 85, Directions: 141},
		},
		{
			Company: "US Drywall", CompanySlug: "us-drywall",
			Name: "US Drywall - Denver", Address: "300 Plaster Ave, Denver, CO",
			Phone: "(555) 010-3000", Rating: 4.6, ReviewCount: 41, Verified: true,
			Insights: Insights{Views: 1480, Clicks: 210, Calls: 52, Directions: 98},
		},
		{
			Company: "US Exteriors", CompanySlug: "us-exteriors",
			Name: "US Exteriors - Denver", Address: "400 Siding Ln, Denver, CO",
			Phone: "(555) 010-4000", Rating: 4.4, ReviewCount: 28, Verified: false,
			Insights: Insights{Views: 970, Clicks: 122, Calls: 31, Directions: 54},
		},
	}
}

func (s *StaticService) seedQueries() {
	s.queries = []Query{
		{Query: "how long does framing a house take", Company: "US Framing", Position: 2, Score: 91, Trend: "up"},
		{Query: "wood vs steel framing cost", Company: "US Framing", Position: 3, Score: 87, Trend: "up"},
		{Query: "framing contractor denver", Company: "US Framing", Position: 5, Score: 78, Trend: "flat"},
		{Query: "drywall finish levels", Company: "US Drywall", Position: 1, Score: 94, Trend: "up"},
		{Query: "drywall contractor near me", Company: "US Drywall", Position: 7, Score: 63, Trend: "down"},
		{Query: "best siding for hail", Company: "US Exteriors", Position: 4, Score: 81, Trend: "flat"},
	}
}

func (s *StaticService) seedReviews() {
	s.reviews = []Review{
		{
			ID: "review-1", Company: "US Framing", Platform: "google", Rating: 5,
			Text: "Crew framed our custom home two weeks ahead of schedule. Clean site every day.",
			Author: "Dana W.", Date: "2026-08-20T00:00:00",
			Reply: "Thanks Dana, it was a pleasure working with you.", ReplyDate: "2026-08-21T00:00:00", ReplyStatus: "posted",
		},
		{
			ID: "review-2", Company: "US Framing", Platform: "google", Rating: 4,
			Text: "Solid work, a little slow returning calls during the busy season.",
			Author: "Marcus T.", Date: "2026-08-12T00:00:00",
		},
		{
			ID: "review-3", Company: "US Framing", Platform: "yelp", Rating: 5,
			Text: "They caught a truss layout error before it became a problem. Professionals.",
			Author: "Priya S.", Date: "2026-07-30T00:00:00",
			Reply: "Appreciate it Priya!", ReplyDate: "2026-07-31T00:00:00", ReplyStatus: "posted",
		},
		{
			ID: "review-4", Company: "US Drywall", Platform: "google", Rating: 5,
			Text: "Level 5 finish throughout and you can tell. Walls look like glass.",
			Author: "Keith R.", Date: "2026-08-18T00:00:00",
		},
		{
			ID: "review-5", Company: "US Drywall", Platform: "facebook", Rating: 3,
			Text: "Finish quality was fine but scheduling kept slipping.",
			Author: "Lauren B.", Date: "2026-08-05T00:00:00",
		},
		{
			ID: "review-6", Company: "US Exteriors", Platform: "google", Rating: 4,
			Text: "New siding survived its first hailstorm without a mark.",
			Author: "Omar H.", Date: "2026-08-25T00:00:00",
		},
	}
}

func (s *StaticService) seedAudits() {
	s.audits = []Audit{
		{
			Company: "US Framing", CompanySlug: "us-framing", OverallScore: 92,
			Categories: map[string]int{"visual_identity": 95, "messaging": 90, "online_presence": 91},
			Issues:     []string{"LinkedIn banner uses the pre-2025 logo"},
			LastAudited: "2026-08-15T00:00:00",
		},
		{
			Company: "US Drywall", CompanySlug: "us-drywall", OverallScore: 85,
			Categories: map[string]int{"visual_identity": 88, "messaging": 80, "online_presence": 87},
			Issues:     []string{"Tagline differs between website and GBP listing", "Yelp profile missing accent color"},
			LastAudited: "2026-08-10T00:00:00",
		},
		{
			Company: "US Exteriors", CompanySlug: "us-exteriors", OverallScore: 74,
			Categories: map[string]int{"visual_identity": 70, "messaging": 75, "online_presence": 77},
			Issues: []string{
				"GBP listing unverified",
				"Website footer shows outdated phone number",
				"No brand guidelines document on file",
			},
			LastAudited: "2026-07-28T00:00:00",
		},
	}
}

func (s *StaticService) seedAssets() {
	s.assets = []Asset{
		{
			ID: "asset-1", Company: "US Framing", Type: "social_banner",
			Title: "Q3 LinkedIn banner", Dimensions: "1584x396", Status: "approved",
			CreatedAt: "2026-08-14T00:00:00", URL: "/static/assets/framing-banner-q3.png",
		},
		{
			ID: "asset-2", Company: "US Framing", Type: "post_image",
			Title: "Topping out photo card", Dimensions: "1200x627", Status: "published",
			CreatedAt: "2026-08-17T00:00:00", URL: "/static/assets/framing-topping-out.png",
		},
		{
			ID: "asset-3", Company: "US Framing", Type: "infographic",
			Title: "Framing timeline infographic", Dimensions: "800x2000", Status: "draft",
			CreatedAt: "2026-08-26T00:00:00", URL: "/static/assets/framing-timeline.png",
		},
		{
			ID: "asset-4", Company: "US Drywall", Type: "post_image",
			Title: "Finish levels comparison", Dimensions: "1200x627", Status: "approved",
			CreatedAt: "2026-08-11T00:00:00", URL: "/static/assets/drywall-finish-levels.png",
		},
		{
			ID: "asset-5", Company: "US Exteriors", Type: "social_banner",
			Title: "Storm season banner", Dimensions: "1584x396", Status: "pending_review",
			CreatedAt: "2026-08-23T00:00:00", URL: "/static/assets/exteriors-storm-banner.png",
		},
	}
}

func (s *StaticService) seedQualityRuns() {
	s.runs = []QualityRun{
		{
			ID: "run-1", Company: "US Framing", CompanySlug: "us-framing",
			ContentType: "linkedin_post", Status: "passed", FinalScore: 9.2, IterationCount: 2,
			CreatedAt: "2026-08-27T12:00:00",
			Iterations: []QualityIteration{
				{Number: 1, Score: 7.8, Feedback: "Hook is buried in the second paragraph. Lead with the schedule win."},
				{Number: 2, Score: 9.2, Feedback: "Strong opening, clear call to action."},
			},
		},
		{
			ID: "run-2", Company: "US Framing", CompanySlug: "us-framing",
			ContentType: "blog_article", Status: "passed", FinalScore: 8.8, IterationCount: 3,
			CreatedAt: "2026-08-25T12:00:00",
			Iterations: []QualityIteration{
				{Number: 1, Score: 6.9, Feedback: "Missing a direct answer to the title question in the first 100 words."},
				{Number: 2, Score: 8.1, Feedback: "Answer present. Tighten the materials section."},
				{Number: 3, Score: 8.8, Feedback: "Reads well end to end."},
			},
		},
		{
			ID: "run-3", Company: "US Drywall", CompanySlug: "us-drywall",
			ContentType: "review_response", Status: "passed", FinalScore: 9.5, IterationCount: 1,
			CreatedAt: "2026-08-24T12:00:00",
			Iterations: []QualityIteration{
				{Number: 1, Score: 9.5, Feedback: "Acknowledges the scheduling issue without excuses."},
			},
		},
		{
			ID: "run-4", Company: "US Exteriors", CompanySlug: "us-exteriors",
			ContentType: "outreach_email", Status: "failed", FinalScore: 5.4, IterationCount: 3,
			CreatedAt: "2026-08-22T12:00:00",
			Iterations: []QualityIteration{
				{Number: 1, Score: 4.2, Feedback: "Reads like a template. No reference to the prospect's property."},
				{Number: 2, Score: 5.0, Feedback: "Still generic. Personalization is one clause."},
				{Number: 3, Score: 5.4, Feedback: "Below threshold after max iterations."},
			},
		},
		{
			ID: "run-5", Company: "US Framing", CompanySlug: "us-framing",
			ContentType: "aeo_capsule", Status: "running", FinalScore: 0, IterationCount: 1,
			CreatedAt: "2026-08-28T12:00:00",
			Iterations: []QualityIteration{
				{Number: 1, Score: 7.1, Feedback: "Answer paragraph exceeds 60 words."},
			},
		},
	}
}
