package api

import (
	"github.com/vchaumont/agenda/internal/models"
	"github.com/vchaumont/agenda/internal/services"
)

// PositionedEvent pairs an event with its vertical geometry inside a day
// column, ready for a time-grid view to place absolutely.
type PositionedEvent struct {
	models.CalendarEvent
	Geometry services.Geometry `json:"geometry"`
}

// MonthCell is one day square of the month grid.
type MonthCell struct {
	Date    string                 `json:"date"`
	InMonth bool                   `json:"in_month"`
	IsToday bool                   `json:"is_today"`
	Events  []models.CalendarEvent `json:"events"`
}

type monthGridResponse struct {
	Reference string      `json:"reference"`
	Weeks     int         `json:"weeks"`
	Cells     []MonthCell `json:"cells"`
}

// DayColumn is one day of a time-grid view. Events carry geometry and keep
// their insertion order; overlapping blocks stack by list position.
type DayColumn struct {
	Date    string            `json:"date"`
	IsToday bool              `json:"is_today"`
	Events  []PositionedEvent `json:"events"`
}

type weekGridResponse struct {
	Reference string      `json:"reference"`
	Slots     []string    `json:"slots"`
	Columns   []DayColumn `json:"columns"`
}

type dayGridResponse struct {
	Slots  []string  `json:"slots"`
	Column DayColumn `json:"column"`
}

type agendaResponse struct {
	Reference string                 `json:"reference"`
	Events    []models.CalendarEvent `json:"events"`
}

type sessionResponse struct {
	CurrentDate  string                  `json:"current_date"`
	View         string                  `json:"view"`
	TimeZone     string                  `json:"time_zone"`
	SidebarOpen  bool                    `json:"sidebar_open"`
	Filters      []models.CalendarFilter `json:"filters"`
	OtherFilters []models.CalendarFilter `json:"other_filters"`
}

type labelsResponse struct {
	Language   string   `json:"language"`
	MonthLabel string   `json:"month_label"`
	DayLabel   string   `json:"day_label"`
	Weekdays   []string `json:"weekdays"`
}
