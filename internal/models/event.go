package models

import "time"

const (
	RecurrenceNone    = "none"
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
	RecurrenceYearly  = "yearly"
	RecurrenceCustom  = "custom"
)

const (
	NotificationNone      = "none"
	NotificationTenMin    = "10min"
	NotificationThirtyMin = "30min"
	NotificationOneHour   = "1hour"
	NotificationOneDay    = "1day"
)

const (
	CalendarTypePersonal = "personal"
	CalendarTypeWork     = "work"
	CalendarTypeFamily   = "family"
)

const (
	ColorBlue   = "blue"
	ColorGreen  = "green"
	ColorRed    = "red"
	ColorPurple = "purple"
	ColorYellow = "yellow"
	ColorOrange = "orange"
	ColorCyan   = "cyan"
)

// CalendarEvent is a single scheduled item. Recurrence and Notification are
// stored tags only: recurrence is never expanded into instances and
// notifications are never scheduled.
type CalendarEvent struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	AllDay       bool      `json:"all_day"`
	Color        string    `json:"color"`
	Description  string    `json:"description,omitempty"`
	Location     string    `json:"location,omitempty"`
	Recurrence   string    `json:"recurrence"`
	Notification string    `json:"notification"`
	Guests       []string  `json:"guests,omitempty"`
	CalendarType string    `json:"calendar_type"`
	CalendarID   string    `json:"calendar_id,omitempty"`
}

var recurrenceValues = []string{
	RecurrenceNone,
	RecurrenceDaily,
	RecurrenceWeekly,
	RecurrenceMonthly,
	RecurrenceYearly,
	RecurrenceCustom,
}

var notificationValues = []string{
	NotificationNone,
	NotificationTenMin,
	NotificationThirtyMin,
	NotificationOneHour,
	NotificationOneDay,
}

var calendarTypeValues = []string{
	CalendarTypePersonal,
	CalendarTypeWork,
	CalendarTypeFamily,
}

var colorValues = []string{
	ColorBlue,
	ColorGreen,
	ColorRed,
	ColorPurple,
	ColorYellow,
	ColorOrange,
	ColorCyan,
}

func normalizeChoice(value string, allowed []string, fallback string) string {
	for _, candidate := range allowed {
		if value == candidate {
			return value
		}
	}
	return fallback
}

func NormalizeRecurrence(value string) string {
	return normalizeChoice(value, recurrenceValues, RecurrenceNone)
}

func NormalizeNotification(value string) string {
	return normalizeChoice(value, notificationValues, NotificationNone)
}

func NormalizeCalendarType(value string) string {
	return normalizeChoice(value, calendarTypeValues, CalendarTypePersonal)
}

func NormalizeColor(value string) string {
	return normalizeChoice(value, colorValues, ColorBlue)
}

// Normalize coerces every closed field to a member of its allowed set.
// It runs once at the API boundary so the rest of the code can assume
// well-typed values.
func (event *CalendarEvent) Normalize() {
	event.Color = NormalizeColor(event.Color)
	event.Recurrence = NormalizeRecurrence(event.Recurrence)
	event.Notification = NormalizeNotification(event.Notification)
	event.CalendarType = NormalizeCalendarType(event.CalendarType)
}
