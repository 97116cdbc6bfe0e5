package ui

import (
	"net/http"
	"time"

	"github.com/becomethebagfx/us-mission-control/internal/mission/backend"
	custommw "github.com/becomethebagfx/us-mission-control/internal/mission/httpserver/middleware"
	"github.com/becomethebagfx/us-mission-control/internal/mission/pages"
	"github.com/becomethebagfx/us-mission-control/internal/mission/templates/helpers"
)

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Day     int
	InMonth bool
	Events  []backend.Event
}

// CalendarData feeds the calendar page.
type CalendarData struct {
	MonthLabel string
	Weeks      [][]CalendarDay
	Type       string
}

func (h *Handlers) renderCalendar(w http.ResponseWriter, r *http.Request, route pages.Route) error {
	ctx := r.Context()
	company := custommw.CompanyFromContext(ctx)
	eventType := r.URL.Query().Get("type")

	events, err := h.backend.Events(ctx, company, eventType)
	if err != nil {
		return err
	}

	month := resolveMonth(r.URL.Query().Get("month"), events)

	data := h.pageData(r, route)
	data.Data = CalendarData{
		MonthLabel: month.Format("January 2006"),
		Weeks:      buildMonthGrid(month, events),
		Type:       eventType,
	}
	return h.templates.Render(w, pages.Calendar, data)
}

// resolveMonth picks the month to display: an explicit ?month=2006-01
// wins, then the month of the first event, then the current month.
func resolveMonth(param string, events []backend.Event) time.Time {
	if param != "" {
		if t, err := time.Parse("2006-01", param); err == nil {
			return t
		}
	}
	for _, e := range events {
		if t, ok := helpers.ParseTime(e.Start); ok {
			return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		}
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// buildMonthGrid lays the month out in Monday-first weeks, attaching each
// event to its day cell.
func buildMonthGrid(month time.Time, events []backend.Event) [][]CalendarDay {
	byDay := map[string][]backend.Event{}
	for _, e := range events {
		if t, ok := helpers.ParseTime(e.Start); ok {
			key := t.Format("2006-01-02")
			byDay[key] = append(byDay[key], e)
		}
	}

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	// Walk back to Monday.
	start := first
	for start.Weekday() != time.Monday {
		start = start.AddDate(0, 0, -1)
	}

	var weeks [][]CalendarDay
	day := start
	for {
		week := make([]CalendarDay, 0, 7)
		for i := 0; i < 7; i++ {
			week = append(week, CalendarDay{
				Day:     day.Day(),
				InMonth: day.Month() == month.Month(),
				Events:  byDay[day.Format("2006-01-02")],
			})
			day = day.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
		if day.Month() != month.Month() || len(weeks) >= 6 {
			break
		}
	}
	return weeks
}
