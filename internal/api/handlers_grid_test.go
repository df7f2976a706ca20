package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/vchaumont/agenda/internal/models"
	"github.com/vchaumont/agenda/internal/store"
)

type gridCell struct {
	Date    string                 `json:"date"`
	InMonth bool                   `json:"in_month"`
	IsToday bool                   `json:"is_today"`
	Events  []models.CalendarEvent `json:"events"`
}

type monthGridBody struct {
	Reference string     `json:"reference"`
	Weeks     int        `json:"weeks"`
	Cells     []gridCell `json:"cells"`
}

type positionedEventBody struct {
	ID       string `json:"id"`
	Geometry struct {
		Top    float64 `json:"top"`
		Height float64 `json:"height"`
	} `json:"geometry"`
}

type dayColumnBody struct {
	Date    string                `json:"date"`
	IsToday bool                  `json:"is_today"`
	Events  []positionedEventBody `json:"events"`
}

type weekGridBody struct {
	Reference string          `json:"reference"`
	Slots     []string        `json:"slots"`
	Columns   []dayColumnBody `json:"columns"`
}

func seedTimedEvent(t *testing.T, session *store.Session, title string, start time.Time, duration time.Duration, calendarID string) models.CalendarEvent {
	t.Helper()
	return session.AddEvent(models.CalendarEvent{
		Title:      title,
		Start:      start,
		End:        start.Add(duration),
		CalendarID: calendarID,
	})
}

func TestMonthGridShapeAndTodayFlag(t *testing.T) {
	app, _ := newTestApp(t)

	response := doJSON(t, app, http.MethodGet, "/api/grid/month?date=2026-09-15", nil)
	expectStatus(t, response, http.StatusOK)

	var body monthGridBody
	decodeBody(t, response, &body)

	if body.Reference != "2026-09-15" {
		t.Fatalf("expected reference 2026-09-15, got %s", body.Reference)
	}
	if len(body.Cells)%7 != 0 || len(body.Cells) == 0 {
		t.Fatalf("expected whole weeks of cells, got %d", len(body.Cells))
	}
	if body.Weeks != len(body.Cells)/7 {
		t.Fatalf("expected weeks %d, got %d", len(body.Cells)/7, body.Weeks)
	}
	if body.Cells[0].Date != "2026-08-31" {
		t.Fatalf("expected grid to open on Monday 2026-08-31, got %s", body.Cells[0].Date)
	}
	if body.Cells[0].InMonth {
		t.Fatalf("expected the leading August day to be out of month")
	}

	todayCount := 0
	for _, cell := range body.Cells {
		if cell.IsToday {
			todayCount++
			if cell.Date != "2026-09-01" {
				t.Fatalf("expected today on 2026-09-01, got %s", cell.Date)
			}
		}
	}
	if todayCount != 1 {
		t.Fatalf("expected exactly one today cell, got %d", todayCount)
	}
}

func TestMonthGridRespectsFilterToggles(t *testing.T) {
	app, session := newTestApp(t)
	start := time.Date(2026, time.September, 10, 9, 0, 0, 0, time.UTC)
	seedTimedEvent(t, session, "Point d'équipe", start, time.Hour, "2")

	findEventCount := func() int {
		response := doJSON(t, app, http.MethodGet, "/api/grid/month?date=2026-09-15", nil)
		expectStatus(t, response, http.StatusOK)
		var body monthGridBody
		decodeBody(t, response, &body)
		for _, cell := range body.Cells {
			if cell.Date == "2026-09-10" {
				return len(cell.Events)
			}
		}
		t.Fatalf("expected 2026-09-10 in the grid")
		return 0
	}

	if got := findEventCount(); got != 1 {
		t.Fatalf("expected the work event visible initially, got %d events", got)
	}

	response := doJSON(t, app, http.MethodPost, "/api/filters/2/toggle", nil)
	expectStatus(t, response, http.StatusOK)

	if got := findEventCount(); got != 0 {
		t.Fatalf("expected the work event hidden after toggle, got %d events", got)
	}

	response = doJSON(t, app, http.MethodPost, "/api/filters/2/toggle", nil)
	expectStatus(t, response, http.StatusOK)

	if got := findEventCount(); got != 1 {
		t.Fatalf("expected the work event back after second toggle, got %d events", got)
	}
}

func TestWeekGridGeometryAndSlots(t *testing.T) {
	app, session := newTestApp(t)
	created := seedTimedEvent(t, session, "Réunion",
		time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC), 90*time.Minute, "")

	response := doJSON(t, app, http.MethodGet, "/api/grid/week?date=2026-09-01", nil)
	expectStatus(t, response, http.StatusOK)

	var body weekGridBody
	decodeBody(t, response, &body)

	if len(body.Columns) != 7 {
		t.Fatalf("expected 7 day columns, got %d", len(body.Columns))
	}
	if len(body.Slots) != 24 || body.Slots[0] != "00:00" || body.Slots[23] != "23:00" {
		t.Fatalf("expected the fixed 24 hour slots, got %v", body.Slots)
	}
	if body.Columns[0].Date != "2026-08-31" {
		t.Fatalf("expected the week to open on Monday 2026-08-31, got %s", body.Columns[0].Date)
	}

	var matched *positionedEventBody
	for index := range body.Columns {
		for eventIndex := range body.Columns[index].Events {
			if body.Columns[index].Events[eventIndex].ID == created.ID {
				matched = &body.Columns[index].Events[eventIndex]
				if body.Columns[index].Date != "2026-09-01" {
					t.Fatalf("expected the event in the Tuesday column, got %s", body.Columns[index].Date)
				}
			}
		}
	}

	if matched == nil {
		t.Fatalf("expected the created event in the week grid")
	}
	if matched.Geometry.Top != 480 {
		t.Fatalf("expected top 480 for a 10:00 start, got %v", matched.Geometry.Top)
	}
	if matched.Geometry.Height != 72 {
		t.Fatalf("expected height 72 for 90 minutes, got %v", matched.Geometry.Height)
	}
}

func TestDayGridUsesSessionDateWhenQueryOmitted(t *testing.T) {
	app, session := newTestApp(t)
	seedTimedEvent(t, session, "Déjeuner",
		time.Date(2026, time.September, 1, 12, 30, 0, 0, time.UTC), time.Hour, "")

	response := doJSON(t, app, http.MethodGet, "/api/grid/day", nil)
	expectStatus(t, response, http.StatusOK)

	var body struct {
		Slots  []string      `json:"slots"`
		Column dayColumnBody `json:"column"`
	}
	decodeBody(t, response, &body)

	if body.Column.Date != "2026-09-01" {
		t.Fatalf("expected the session's current day, got %s", body.Column.Date)
	}
	if !body.Column.IsToday {
		t.Fatalf("expected the current day flagged as today")
	}
	if len(body.Column.Events) != 1 {
		t.Fatalf("expected one event in the day column, got %d", len(body.Column.Events))
	}
}

func TestAgendaListsReferenceMonthChronologically(t *testing.T) {
	app, session := newTestApp(t)
	seedTimedEvent(t, session, "fin du mois",
		time.Date(2026, time.September, 28, 9, 0, 0, 0, time.UTC), time.Hour, "")
	seedTimedEvent(t, session, "mois précédent",
		time.Date(2026, time.August, 20, 9, 0, 0, 0, time.UTC), time.Hour, "")
	seedTimedEvent(t, session, "plus tôt ce mois",
		time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC), time.Hour, "")
	seedTimedEvent(t, session, "mois suivant",
		time.Date(2026, time.October, 10, 9, 0, 0, 0, time.UTC), time.Hour, "")

	response := doJSON(t, app, http.MethodGet, "/api/agenda?date=2026-09-15", nil)
	expectStatus(t, response, http.StatusOK)

	var body struct {
		Events []models.CalendarEvent `json:"events"`
	}
	decodeBody(t, response, &body)

	if len(body.Events) != 2 {
		t.Fatalf("expected the 2 September events, got %d", len(body.Events))
	}
	if body.Events[0].Title != "plus tôt ce mois" || body.Events[1].Title != "fin du mois" {
		t.Fatalf("expected chronological September order, got %s then %s",
			body.Events[0].Title, body.Events[1].Title)
	}
	for _, event := range body.Events {
		if event.Start.Month() != time.September {
			t.Fatalf("expected only reference-month events, got %s on %s",
				event.Title, event.Start.Format("2006-01-02"))
		}
	}
}

func TestGridRejectsMalformedDate(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{
		"/api/grid/month?date=15-09-2026",
		"/api/grid/week?date=tomorrow",
		"/api/grid/day?date=2026-13-01",
		"/api/agenda?date=x",
	} {
		response := doJSON(t, app, http.MethodGet, path, nil)
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected status 400, got %d", path, response.StatusCode)
		}
		response.Body.Close()
	}
}
