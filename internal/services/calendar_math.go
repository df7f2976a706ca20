package services

import (
	"fmt"
	"time"

	"github.com/vchaumont/agenda/internal/models"
)

const daysPerWeek = 7

// DayStart truncates a moment to local midnight of its calendar day.
func DayStart(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, value.Location())
}

// weekStartOffset is the distance in days from the configured week start
// back to value's weekday, always in 0..6.
func weekStartOffset(value time.Time, weekStart time.Weekday) int {
	offset := int(value.Weekday()) - int(weekStart)
	if offset < 0 {
		offset += daysPerWeek
	}
	return offset
}

// StartOfWeek returns midnight of the weekStart day on or before value.
func StartOfWeek(value time.Time, weekStart time.Weekday) time.Time {
	day := DayStart(value)
	return day.AddDate(0, 0, -weekStartOffset(day, weekStart))
}

// MonthGridDays builds the day grid for the month containing reference. The
// grid begins on the weekStart on or before the 1st, contains every day of
// the month exactly once, and is padded out so the final week is complete;
// its length is always a multiple of 7.
func MonthGridDays(reference time.Time, weekStart time.Weekday) []time.Time {
	monthStart := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	gridStart := StartOfWeek(monthStart, weekStart)
	gridEnd := monthEnd.AddDate(0, 0, daysPerWeek-1-weekStartOffset(monthEnd, weekStart))

	days := make([]time.Time, 0, 42)
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

// WeekDays returns the 7 consecutive days of the week containing reference,
// beginning on weekStart.
func WeekDays(reference time.Time, weekStart time.Weekday) []time.Time {
	start := StartOfWeek(reference, weekStart)
	days := make([]time.Time, 0, daysPerWeek)
	for offset := 0; offset < daysPerWeek; offset++ {
		days = append(days, start.AddDate(0, 0, offset))
	}
	return days
}

// TimeSlots returns the fixed hourly row labels used as the vertical axis of
// the week and day views, "00:00" through "23:00".
func TimeSlots() []string {
	slots := make([]string, 0, 24)
	for hour := 0; hour < 24; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
	}
	return slots
}

// SameCalendarDay reports whether two moments fall on the same local
// calendar day, independent of time-of-day.
func SameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// SameCalendarMonth reports whether two moments fall in the same year and
// month.
func SameCalendarMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func IsToday(value time.Time, now time.Time) bool {
	return SameCalendarDay(value, now)
}

// PreviousPeriod steps reference one view period backwards: a calendar month
// snapped to day 1 for the month view, 7 days for the week view, and a
// single day for the day and agenda views.
func PreviousPeriod(reference time.Time, view string) time.Time {
	return stepPeriod(reference, view, -1)
}

// NextPeriod steps reference one view period forwards.
func NextPeriod(reference time.Time, view string) time.Time {
	return stepPeriod(reference, view, 1)
}

func stepPeriod(reference time.Time, view string, direction int) time.Time {
	switch view {
	case models.ViewMonth:
		monthStart := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
		return monthStart.AddDate(0, direction, 0)
	case models.ViewWeek:
		return reference.AddDate(0, 0, direction*daysPerWeek)
	default:
		return reference.AddDate(0, 0, direction)
	}
}
