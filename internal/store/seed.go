package store

import (
	"time"

	"github.com/vchaumont/agenda/internal/models"
)

// SeedDemoEvents fills an empty session with the demo schedule shown on
// first launch: a handful of events placed relative to today so the month
// view is never blank. It does nothing once any event exists.
func (session *Session) SeedDemoEvents() {
	session.mu.Lock()
	defer session.mu.Unlock()

	if len(session.events) > 0 {
		return
	}

	today := session.now()
	onDay := func(offset int, hour int, minute int) time.Time {
		base := today.AddDate(0, 0, offset)
		return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, base.Location())
	}
	midMonth := time.Date(today.Year(), today.Month(), 15, 0, 0, 0, 0, today.Location())

	session.events = []models.CalendarEvent{
		{
			ID:           "1",
			Title:        "Réunion d'équipe",
			Start:        onDay(0, 10, 0),
			End:          onDay(0, 11, 30),
			Description:  "Réunion hebdomadaire d'équipe",
			Color:        models.ColorBlue,
			Recurrence:   models.RecurrenceNone,
			Notification: models.NotificationNone,
			CalendarType: models.CalendarTypeWork,
			CalendarID:   "2",
		},
		{
			ID:           "2",
			Title:        "Déjeuner avec client",
			Start:        onDay(1, 12, 30),
			End:          onDay(1, 14, 0),
			Location:     "Restaurant Le Français",
			Color:        models.ColorGreen,
			Recurrence:   models.RecurrenceNone,
			Notification: models.NotificationNone,
			CalendarType: models.CalendarTypeWork,
			CalendarID:   "2",
		},
		{
			ID:           "3",
			Title:        "Présentation projet",
			Start:        onDay(2, 15, 0),
			End:          onDay(2, 16, 30),
			Description:  "Présentation du nouveau projet aux parties prenantes",
			Color:        models.ColorPurple,
			Recurrence:   models.RecurrenceNone,
			Notification: models.NotificationNone,
			CalendarType: models.CalendarTypeFamily,
			CalendarID:   "3",
		},
		{
			ID:           "4",
			Title:        "Jour férié",
			Start:        midMonth,
			End:          midMonth.Add(23*time.Hour + 59*time.Minute),
			AllDay:       true,
			Color:        models.ColorRed,
			Recurrence:   models.RecurrenceNone,
			Notification: models.NotificationNone,
			CalendarType: models.CalendarTypePersonal,
			CalendarID:   "4",
		},
		{
			ID:           "5",
			Title:        "Rendez-vous médical",
			Start:        onDay(3, 9, 0),
			End:          onDay(3, 10, 0),
			Description:  "Consultation annuelle",
			Color:        models.ColorBlue,
			Recurrence:   models.RecurrenceNone,
			Notification: models.NotificationNone,
			CalendarType: models.CalendarTypePersonal,
			CalendarID:   "1",
		},
		{
			ID:           "6",
			Title:        "Anniversaire de Marie",
			Start:        onDay(5, 0, 0),
			End:          onDay(5, 23, 59),
			AllDay:       true,
			Color:        models.ColorYellow,
			Recurrence:   models.RecurrenceYearly,
			Notification: models.NotificationNone,
			CalendarType: models.CalendarTypeFamily,
			CalendarID:   "5",
		},
	}
}
