package helpers

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// isoLayout matches the backend's naive isoformat timestamps.
const isoLayout = "2006-01-02T15:04:05"

// Currency formats a whole-dollar amount with thousands separators.
func Currency(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "$" + groupThousands(strconv.FormatInt(amount, 10))
}

// Number formats an integer with thousands separators.
func Number(n int) string {
	if n < 0 {
		return "-" + groupThousands(strconv.Itoa(-n))
	}
	return groupThousands(strconv.Itoa(n))
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Score formats a float score trimming a trailing .0.
func Score(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// ParseTime parses a backend timestamp. The backend emits naive isoformat
// strings, occasionally date-only.
func ParseTime(ts string) (time.Time, bool) {
	for _, layout := range []string{isoLayout, "2006-01-02"} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date formats a backend timestamp in the provided layout (defaults to
// 2006-01-02 15:04). Unparseable input is returned unchanged.
func Date(ts, layout string) string {
	t, ok := ParseTime(ts)
	if !ok {
		return ts
	}
	if layout == "" {
		layout = "2006-01-02 15:04"
	}
	return t.Format(layout)
}

// Relative returns a coarse "time ago" string for a backend timestamp.
func Relative(ts string) string {
	t, ok := ParseTime(ts)
	if !ok {
		return ts
	}
	diff := time.Since(t)
	if diff < 0 {
		return t.Format("2006-01-02")
	}
	if diff < time.Minute {
		return "just now"
	}
	if diff < time.Hour {
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	}
	if diff < 24*time.Hour {
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	}
	return t.Format("2006-01-02")
}

// BadgeClass maps a status to its badge CSS class.
func BadgeClass(status string) string {
	switch status {
	case "published", "approved", "converted", "passed", "healthy", "posted", "active":
		return "badge badge-success"
	case "scheduled", "engaged", "running", "pending", "pending_review", "expiring_soon":
		return "badge badge-info"
	case "draft", "new", "contacted", "paused":
		return "badge badge-neutral"
	case "rejected", "failed", "dead", "expired":
		return "badge badge-danger"
	default:
		return "badge badge-neutral"
	}
}

// TrendArrow renders a query trend as an arrow glyph.
func TrendArrow(trend string) string {
	switch trend {
	case "up":
		return "↑"
	case "down":
		return "↓"
	default:
		return "→"
	}
}

// NavClass returns sidebar link classes.
func NavClass(active bool) string {
	if active {
		return "nav-link nav-link-active"
	}
	return "nav-link"
}

// WithCompany appends the company filter to a path, preserving any query
// string already present. An empty company returns the path unchanged.
func WithCompany(path, company string) string {
	if company == "" {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "company=" + url.QueryEscape(company)
}

// Stars renders a 1-5 rating as filled and empty star glyphs.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
