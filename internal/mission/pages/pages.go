// Package pages holds the route model shared by the server and the
// navigation chrome: page keys, route parsing, page descriptors and the
// sidebar items.
package pages

import "strings"

// Page keys. Every dashboard section has exactly one.
const (
	Home          = "home"
	Calendar      = "calendar"
	Posts         = "posts"
	PostDetail    = "post-detail"
	Content       = "content"
	ContentDetail = "content-detail"
	Reactivation  = "reactivation"
	Settings      = "settings"
	GBP           = "gbp"
	AEO           = "aeo"
	Reviews       = "reviews"
	BrandAudit    = "brand-audit"
	Assets        = "assets"
	Quality       = "quality"
	QualityRun    = "quality-run"
)

// Route is a resolved navigation target: a page key plus the ordered
// string parameters that followed it (a post id, a run id).
type Route struct {
	Page   string
	Params []string
}

// Parse resolves a path fragment into a Route. The fragment is split on
// "/": the first segment is the page key, the rest are parameters. An
// empty fragment resolves to the home page. Unknown keys are returned
// as-is; Describe and the dispatcher fall back to home for them.
func Parse(fragment string) Route {
	fragment = strings.Trim(strings.TrimPrefix(fragment, "#"), "/")
	if fragment == "" {
		return Route{Page: Home}
	}
	parts := strings.Split(fragment, "/")
	r := Route{Page: parts[0]}
	if len(parts) > 1 {
		r.Params = parts[1:]
	}
	return r
}

// Param returns the i-th route parameter, or "" when absent.
func (r Route) Param(i int) string {
	if i < 0 || i >= len(r.Params) {
		return ""
	}
	return r.Params[i]
}

// Path returns the canonical server path for the route.
func (r Route) Path() string {
	switch r.Page {
	case Home, "":
		return "/"
	case PostDetail:
		return "/posts/" + r.Param(0)
	case ContentDetail:
		return "/content/" + r.Param(0)
	case QualityRun:
		return "/quality/runs/" + r.Param(0)
	default:
		if _, ok := descriptors[r.Page]; !ok {
			return "/"
		}
		return "/" + r.Page
	}
}

// Descriptor is the static heading shown for a page.
type Descriptor struct {
	Title    string
	Subtitle string
}

var descriptors = map[string]Descriptor{
	Home:          {Title: "Mission Control", Subtitle: "All systems at a glance"},
	Calendar:      {Title: "Content Calendar", Subtitle: "Scheduled posts and publications"},
	Posts:         {Title: "LinkedIn Posts", Subtitle: "Post queue across all companies"},
	PostDetail:    {Title: "Post Detail", Subtitle: "Review, edit and schedule"},
	Content:       {Title: "Content Library", Subtitle: "Articles and AEO scores"},
	ContentDetail: {Title: "Article Detail", Subtitle: "Review and publish"},
	Reactivation:  {Title: "Reactivation Pipeline", Subtitle: "Dormant leads back to revenue"},
	Settings:      {Title: "Settings", Subtitle: "Companies, tokens and system status"},
	GBP:           {Title: "Google Business Profiles", Subtitle: "Listings and local insights"},
	AEO:           {Title: "AEO Tracking", Subtitle: "Answer-engine visibility"},
	Reviews:       {Title: "Reviews", Subtitle: "Ratings and replies across platforms"},
	BrandAudit:    {Title: "Brand Audit", Subtitle: "Consistency across every surface"},
	Assets:        {Title: "Visual Assets", Subtitle: "Generated banners and post images"},
	Quality:       {Title: "Quality Loop", Subtitle: "Generate, critique, revise"},
	QualityRun:    {Title: "Quality Run", Subtitle: "Iteration by iteration"},
}

// Describe returns the descriptor for a page key, falling back to the
// home descriptor for unknown keys.
func Describe(page string) Descriptor {
	if d, ok := descriptors[page]; ok {
		return d
	}
	return descriptors[Home]
}

// Known reports whether the page key has a descriptor.
func Known(page string) bool {
	_, ok := descriptors[page]
	return ok
}

// NavItem is one sidebar entry.
type NavItem struct {
	Page  string
	Path  string
	Label string
	Icon  string
}

// Nav is the sidebar, in display order. Detail pages are reached from
// their list pages and do not appear here.
var Nav = []NavItem{
	{Page: Home, Path: "/", Label: "Dashboard", Icon: "home"},
	{Page: Calendar, Path: "/calendar", Label: "Calendar", Icon: "calendar"},
	{Page: Posts, Path: "/posts", Label: "LinkedIn Posts", Icon: "send"},
	{Page: Content, Path: "/content", Label: "Content Library", Icon: "book-open"},
	{Page: Reactivation, Path: "/reactivation", Label: "Reactivation", Icon: "refresh-cw"},
	{Page: GBP, Path: "/gbp", Label: "Business Profiles", Icon: "map-pin"},
	{Page: AEO, Path: "/aeo", Label: "AEO Tracking", Icon: "search"},
	{Page: Reviews, Path: "/reviews", Label: "Reviews", Icon: "star"},
	{Page: BrandAudit, Path: "/brand-audit", Label: "Brand Audit", Icon: "shield"},
	{Page: Assets, Path: "/assets", Label: "Visual Assets", Icon: "image"},
	{Page: Quality, Path: "/quality", Label: "Quality Loop", Icon: "check-circle"},
	{Page: Settings, Path: "/settings", Label: "Settings", Icon: "settings"},
}
