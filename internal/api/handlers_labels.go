package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Labels returns the locale-dependent display strings for a reference date:
// the month header, the day header and the weekday row in configured week
// order. The calendar core itself only ever deals in dates and hours.
func (handler *Handler) Labels(c *fiber.Ctx) error {
	reference, err := handler.resolveReferenceDate(c.Query("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	language := handler.i18n.ResolveLanguage(c.Query("lang"))

	weekdays := make([]string, 0, 7)
	for offset := 0; offset < 7; offset++ {
		weekday := time.Weekday((int(handler.weekStart) + offset) % 7)
		weekdays = append(weekdays, handler.i18n.WeekdayLabel(language, weekday))
	}

	return c.JSON(labelsResponse{
		Language:   language,
		MonthLabel: handler.i18n.MonthLabel(language, reference),
		DayLabel:   handler.i18n.DayLabel(language, reference),
		Weekdays:   weekdays,
	})
}
