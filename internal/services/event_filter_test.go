package services

import (
	"testing"
	"time"

	"github.com/vchaumont/agenda/internal/models"
)

func filterTestEvent(id string, calendarID string) models.CalendarEvent {
	start := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	return models.CalendarEvent{
		ID:         id,
		Start:      start,
		End:        start.Add(time.Hour),
		CalendarID: calendarID,
	}
}

func TestEventVisibleResolvesPrimaryBeforeOther(t *testing.T) {
	primary := []models.CalendarFilter{{ID: "work", Name: "Travail", Checked: false}}
	other := []models.CalendarFilter{{ID: "work", Name: "Shadow", Checked: true}}

	if EventVisible(filterTestEvent("1", "work"), primary, other) {
		t.Fatalf("expected the primary filter to win when both sequences hold the id")
	}
}

func TestEventVisibleFallsBackToOtherFilters(t *testing.T) {
	primary := []models.CalendarFilter{{ID: "work", Name: "Travail", Checked: true}}
	other := []models.CalendarFilter{{ID: "birthdays", Name: "Anniversaires", Checked: false}}

	if EventVisible(filterTestEvent("1", "birthdays"), primary, other) {
		t.Fatalf("expected an unchecked other-filter to hide its events")
	}
}

func TestEventVisibleFailsOpen(t *testing.T) {
	primary, other := models.StarterFilters()

	if !EventVisible(filterTestEvent("1", ""), primary, other) {
		t.Fatalf("expected an event without a calendar reference to be visible")
	}
	if !EventVisible(filterTestEvent("2", "no-such-filter"), primary, other) {
		t.Fatalf("expected a dangling calendar reference to stay visible")
	}
}

func TestVisibleEventsToggleRoundTrip(t *testing.T) {
	primary := []models.CalendarFilter{
		{ID: "1", Name: "Personnel", Checked: true},
		{ID: "2", Name: "Travail", Checked: true},
	}
	events := []models.CalendarEvent{
		filterTestEvent("a", "2"),
		filterTestEvent("b", ""),
		filterTestEvent("c", "1"),
	}

	primary[1].Checked = false
	visible := VisibleEvents(events, primary, nil)
	if len(visible) != 2 {
		t.Fatalf("expected 2 visible events with Travail unchecked, got %d", len(visible))
	}
	if visible[0].ID != "b" || visible[1].ID != "c" {
		t.Fatalf("expected visible order b,c, got %s,%s", visible[0].ID, visible[1].ID)
	}

	primary[1].Checked = true
	visible = VisibleEvents(events, primary, nil)
	if len(visible) != 3 {
		t.Fatalf("expected all 3 events back after re-checking, got %d", len(visible))
	}
	if visible[0].CalendarID != "2" {
		t.Fatalf("expected the hidden event unchanged by filtering, got calendar id %q", visible[0].CalendarID)
	}
}
