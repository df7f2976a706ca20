package api

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vchaumont/agenda/internal/models"
	"github.com/vchaumont/agenda/internal/services"
)

func (handler *Handler) MonthGrid(c *fiber.Ctx) error {
	reference, err := handler.resolveReferenceDate(c.Query("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	snapshot := handler.session.Snapshot()
	visible := services.VisibleEvents(snapshot.Events, snapshot.PrimaryFilters, snapshot.OtherFilters)
	now := handler.now()

	days := services.MonthGridDays(reference, handler.weekStart)
	cells := make([]MonthCell, 0, len(days))
	for _, day := range days {
		cells = append(cells, MonthCell{
			Date:    day.Format(dayLayout),
			InMonth: services.SameCalendarMonth(day, reference),
			IsToday: services.IsToday(day, now),
			Events:  services.EventsOnDate(visible, day),
		})
	}

	return c.JSON(monthGridResponse{
		Reference: reference.Format(dayLayout),
		Weeks:     len(cells) / 7,
		Cells:     cells,
	})
}

func (handler *Handler) WeekGrid(c *fiber.Ctx) error {
	reference, err := handler.resolveReferenceDate(c.Query("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	snapshot := handler.session.Snapshot()
	visible := services.VisibleEvents(snapshot.Events, snapshot.PrimaryFilters, snapshot.OtherFilters)
	now := handler.now()

	columns := make([]DayColumn, 0, 7)
	for _, day := range services.WeekDays(reference, handler.weekStart) {
		columns = append(columns, handler.dayColumn(day, visible, now))
	}

	return c.JSON(weekGridResponse{
		Reference: reference.Format(dayLayout),
		Slots:     services.TimeSlots(),
		Columns:   columns,
	})
}

func (handler *Handler) DayGrid(c *fiber.Ctx) error {
	reference, err := handler.resolveReferenceDate(c.Query("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	snapshot := handler.session.Snapshot()
	visible := services.VisibleEvents(snapshot.Events, snapshot.PrimaryFilters, snapshot.OtherFilters)

	return c.JSON(dayGridResponse{
		Slots:  services.TimeSlots(),
		Column: handler.dayColumn(reference, visible, handler.now()),
	})
}

// Agenda lists the visible events of the reference date's calendar month
// in chronological order.
func (handler *Handler) Agenda(c *fiber.Ctx) error {
	reference, err := handler.resolveReferenceDate(c.Query("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	snapshot := handler.session.Snapshot()
	visible := services.VisibleEvents(snapshot.Events, snapshot.PrimaryFilters, snapshot.OtherFilters)

	monthEvents := make([]models.CalendarEvent, 0, len(visible))
	for _, event := range visible {
		if services.SameCalendarMonth(event.Start, reference) {
			monthEvents = append(monthEvents, event)
		}
	}
	sort.SliceStable(monthEvents, func(i, j int) bool {
		return monthEvents[i].Start.Before(monthEvents[j].Start)
	})

	return c.JSON(agendaResponse{
		Reference: reference.Format(dayLayout),
		Events:    monthEvents,
	})
}

func (handler *Handler) Slots(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"slots": services.TimeSlots()})
}

func (handler *Handler) dayColumn(day time.Time, visible []models.CalendarEvent, now time.Time) DayColumn {
	onDay := services.EventsOnDate(visible, day)
	positioned := make([]PositionedEvent, 0, len(onDay))
	for _, event := range onDay {
		positioned = append(positioned, PositionedEvent{
			CalendarEvent: event,
			Geometry:      services.EventGeometry(event),
		})
	}

	return DayColumn{
		Date:    day.Format(dayLayout),
		IsToday: services.IsToday(day, now),
		Events:  positioned,
	}
}
