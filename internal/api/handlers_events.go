package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vchaumont/agenda/internal/models"
	"github.com/vchaumont/agenda/internal/services"
	"github.com/vchaumont/agenda/internal/store"
)

type eventPayload struct {
	Title        string    `json:"title"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	AllDay       bool      `json:"all_day"`
	Color        string    `json:"color"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Recurrence   string    `json:"recurrence"`
	Notification string    `json:"notification"`
	Guests       []string  `json:"guests"`
	CalendarType string    `json:"calendar_type"`
	CalendarID   string    `json:"calendar_id"`
}

type dragPayload struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Title string `json:"title"`
}

// toEvent turns an inbound payload into a well-typed event. This is the
// single validation point for the closed enum fields; past here the rest of
// the code assumes member values.
func (payload eventPayload) toEvent() models.CalendarEvent {
	event := models.CalendarEvent{
		Title:        strings.TrimSpace(payload.Title),
		Start:        payload.Start,
		End:          payload.End,
		AllDay:       payload.AllDay,
		Color:        payload.Color,
		Description:  payload.Description,
		Location:     payload.Location,
		Recurrence:   payload.Recurrence,
		Notification: payload.Notification,
		Guests:       payload.Guests,
		CalendarType: payload.CalendarType,
		CalendarID:   payload.CalendarID,
	}
	if event.End.IsZero() {
		event.End = event.Start.Add(time.Hour)
	}
	event.Normalize()
	return event
}

func (handler *Handler) GetEvents(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"events": handler.session.Snapshot().Events})
}

func (handler *Handler) CreateEvent(c *fiber.Ctx) error {
	var payload eventPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if payload.Start.IsZero() {
		return apiError(c, fiber.StatusBadRequest, "start is required")
	}

	created := handler.session.AddEvent(payload.toEvent())
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (handler *Handler) UpdateEvent(c *fiber.Ctx) error {
	var payload eventPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if payload.Start.IsZero() {
		return apiError(c, fiber.StatusBadRequest, "start is required")
	}

	event := payload.toEvent()
	event.ID = c.Params("id")

	updated, err := handler.session.UpdateEvent(event)
	if err == store.ErrEventNotFound {
		return apiError(c, fiber.StatusNotFound, "event not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update event")
	}
	return c.JSON(updated)
}

func (handler *Handler) DeleteEvent(c *fiber.Ctx) error {
	err := handler.session.RemoveEvent(c.Params("id"))
	if err == store.ErrEventNotFound {
		return apiError(c, fiber.StatusNotFound, "event not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete event")
	}
	return c.JSON(fiber.Map{"deleted": true})
}

// CreateDragEvent finishes a drag-to-create gesture on the month grid: the
// two day stamps arrive in gesture order and are normalized before the
// all-day event is created over the inclusive range.
func (handler *Handler) CreateDragEvent(c *fiber.Ctx) error {
	var payload dragPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	anchor, err := parseDayParam(payload.Start, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid start date")
	}
	release, err := parseDayParam(payload.End, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid end date")
	}

	rangeStart, rangeEnd := services.NormalizeDragRange(anchor, release)

	event := models.CalendarEvent{
		Title:  strings.TrimSpace(payload.Title),
		Start:  rangeStart,
		End:    rangeEnd.Add(23*time.Hour + 59*time.Minute),
		AllDay: true,
	}
	event.Normalize()

	created := handler.session.AddEvent(event)
	return c.Status(fiber.StatusCreated).JSON(created)
}
