package services

import (
	"time"

	"github.com/vchaumont/agenda/internal/models"
)

const (
	// HourHeight is the rendered height of one hour in a time-grid column.
	HourHeight = 48.0
	// AllDayBandHeight is the fixed band all-day events occupy at the top
	// of a column; it does not scale with the 24-hour axis.
	AllDayBandHeight = 24.0
	// MinEventHeight is the floor that keeps zero and negative duration
	// events visible and clickable.
	MinEventHeight = 16.0
)

// Geometry is the vertical placement of an event inside a 24-hour day
// column, in the same units as HourHeight.
type Geometry struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// EventsOnDate returns the events whose start falls on the same calendar day
// as date, preserving the input order. Events spanning midnight are
// attributed to their start day only.
func EventsOnDate(events []models.CalendarEvent, date time.Time) []models.CalendarEvent {
	matched := make([]models.CalendarEvent, 0)
	for _, event := range events {
		if SameCalendarDay(event.Start, date) {
			matched = append(matched, event)
		}
	}
	return matched
}

// EventGeometry computes the vertical placement of a single event. All-day
// events pin to the fixed top band regardless of their literal times; timed
// events scale with start time and duration, clamped to MinEventHeight so
// degenerate ranges never collapse to zero.
func EventGeometry(event models.CalendarEvent) Geometry {
	if event.AllDay {
		return Geometry{Top: 0, Height: AllDayBandHeight}
	}

	startHours := float64(event.Start.Hour()) + float64(event.Start.Minute())/60
	endHours := float64(event.End.Hour()) + float64(event.End.Minute())/60

	height := (endHours - startHours) * HourHeight
	if height < MinEventHeight {
		height = MinEventHeight
	}

	return Geometry{Top: startHours * HourHeight, Height: height}
}
