package ics

import (
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/vchaumont/agenda/internal/models"
)

const productID = "-//Agenda//Calendrier 1.0//FR"

// Non-standard properties carrying the fields iCalendar has no slot for.
// Recurrence deliberately travels as an opaque tag instead of an RRULE so
// importers never expand it into instances.
const (
	propRecurrence   = ical.ComponentProperty("X-AGENDA-RECURRENCE")
	propNotification = ical.ComponentProperty("X-AGENDA-NOTIFICATION")
	propColor        = ical.ComponentProperty("X-AGENDA-COLOR")
	propCalendarID   = ical.ComponentProperty("X-AGENDA-CALENDAR-ID")
)

// Build serializes the event list into a single VCALENDAR payload.
func Build(events []models.CalendarEvent, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, event := range events {
		vevent := cal.AddEvent(event.ID + "@agenda.local")
		vevent.SetDtStampTime(now)
		vevent.SetSummary(event.Title)

		if event.Description != "" {
			vevent.SetDescription(event.Description)
		}
		if event.Location != "" {
			vevent.SetLocation(event.Location)
		}

		if event.AllDay {
			firstDay := dayStart(event.Start)
			lastDay := dayStart(event.End)
			if lastDay.Before(firstDay) {
				lastDay = firstDay
			}
			vevent.SetAllDayStartAt(firstDay)
			// DTEND on a date value is exclusive.
			vevent.SetAllDayEndAt(lastDay.AddDate(0, 0, 1))
		} else {
			vevent.SetStartAt(event.Start)
			vevent.SetEndAt(event.End)
		}

		for _, guest := range event.Guests {
			vevent.AddAttendee(guest)
		}

		vevent.SetProperty(propColor, event.Color)
		if event.Recurrence != "" && event.Recurrence != models.RecurrenceNone {
			vevent.SetProperty(propRecurrence, event.Recurrence)
		}
		if event.Notification != "" && event.Notification != models.NotificationNone {
			vevent.SetProperty(propNotification, event.Notification)
		}
		if event.CalendarID != "" {
			vevent.SetProperty(propCalendarID, event.CalendarID)
		}
	}

	return cal.Serialize()
}

func dayStart(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, value.Location())
}
