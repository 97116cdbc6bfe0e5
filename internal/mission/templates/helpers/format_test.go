package helpers

import "testing"

func TestCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount int64
		want   string
	}{
		{0, "$0"},
		{950, "$950"},
		{50000, "$50,000"},
		{1234567, "$1,234,567"},
		{-4500, "-$4,500"},
	}
	for _, tc := range tests {
		if got := Currency(tc.amount); got != tc.want {
			t.Errorf("Currency(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want string
	}{
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{2140, "2,140"},
		{-12345, "-12,345"},
	}
	for _, tc := range tests {
		if got := Number(tc.n); got != tc.want {
			t.Errorf("Number(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestDate(t *testing.T) {
	t.Parallel()

	if got := Date("2026-09-01T09:00:00", ""); got != "2026-09-01 09:00" {
		t.Errorf("Date() = %q", got)
	}
	if got := Date("2026-08-20T00:00:00", "Jan 2, 2006"); got != "Aug 20, 2026" {
		t.Errorf("Date(layout) = %q", got)
	}
	if got := Date("2026-08-20", "Jan 2, 2006"); got != "Aug 20, 2026" {
		t.Errorf("Date(date-only) = %q", got)
	}
	if got := Date("not a date", ""); got != "not a date" {
		t.Errorf("Date(garbage) = %q, want input unchanged", got)
	}
}

func TestScore(t *testing.T) {
	t.Parallel()

	if got := Score(88.5); got != "88.5" {
		t.Errorf("Score(88.5) = %q", got)
	}
	if got := Score(91.0); got != "91" {
		t.Errorf("Score(91.0) = %q", got)
	}
}

func TestWithCompany(t *testing.T) {
	t.Parallel()

	if got := WithCompany("/posts", "us-framing"); got != "/posts?company=us-framing" {
		t.Errorf("WithCompany = %q", got)
	}
	if got := WithCompany("/posts?status=draft", "us-framing"); got != "/posts?status=draft&company=us-framing" {
		t.Errorf("WithCompany existing query = %q", got)
	}
	if got := WithCompany("/posts", ""); got != "/posts" {
		t.Errorf("WithCompany empty = %q", got)
	}
}

func TestBadgeClass(t *testing.T) {
	t.Parallel()

	if got := BadgeClass("published"); got != "badge badge-success" {
		t.Errorf("BadgeClass(published) = %q", got)
	}
	if got := BadgeClass("rejected"); got != "badge badge-danger" {
		t.Errorf("BadgeClass(rejected) = %q", got)
	}
	if got := BadgeClass("mystery"); got != "badge badge-neutral" {
		t.Errorf("BadgeClass(unknown) = %q", got)
	}
}

func TestStars(t *testing.T) {
	t.Parallel()

	if got := Stars(4); got != "★★★★☆" {
		t.Errorf("Stars(4) = %q", got)
	}
	if got := Stars(0); got != "☆☆☆☆☆" {
		t.Errorf("Stars(0) = %q", got)
	}
}
