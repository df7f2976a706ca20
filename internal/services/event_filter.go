package services

import "github.com/vchaumont/agenda/internal/models"

// EventVisible decides whether an event passes the current calendar filter
// state. Events without a calendar reference are always visible; the
// reference is resolved against the primary filters first, then the "other"
// group. A dangling reference degrades to visible rather than hidden.
func EventVisible(event models.CalendarEvent, primary []models.CalendarFilter, other []models.CalendarFilter) bool {
	if event.CalendarID == "" {
		return true
	}
	if filter, found := findFilter(primary, event.CalendarID); found {
		return filter.Checked
	}
	if filter, found := findFilter(other, event.CalendarID); found {
		return filter.Checked
	}
	return true
}

// VisibleEvents applies EventVisible across a list, preserving order.
func VisibleEvents(events []models.CalendarEvent, primary []models.CalendarFilter, other []models.CalendarFilter) []models.CalendarEvent {
	visible := make([]models.CalendarEvent, 0, len(events))
	for _, event := range events {
		if EventVisible(event, primary, other) {
			visible = append(visible, event)
		}
	}
	return visible
}

func findFilter(filters []models.CalendarFilter, id string) (models.CalendarFilter, bool) {
	for _, filter := range filters {
		if filter.ID == id {
			return filter, true
		}
	}
	return models.CalendarFilter{}, false
}
