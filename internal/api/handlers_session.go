package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vchaumont/agenda/internal/store"
)

type viewPayload struct {
	View string `json:"view"`
}

type datePayload struct {
	Date string `json:"date"`
}

type navigatePayload struct {
	Direction string `json:"direction"`
}

type timeZonePayload struct {
	TimeZone string `json:"time_zone"`
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) GetSession(c *fiber.Ctx) error {
	return c.JSON(sessionState(handler.session.Snapshot()))
}

func (handler *Handler) SetView(c *fiber.Ctx) error {
	var payload viewPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := handler.session.SetView(payload.View); err != nil {
		return apiError(c, fiber.StatusBadRequest, "unknown view")
	}
	return c.JSON(sessionState(handler.session.Snapshot()))
}

func (handler *Handler) SetDate(c *fiber.Ctx) error {
	var payload datePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	date, err := parseDayParam(payload.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	handler.session.SetDate(date)
	return c.JSON(sessionState(handler.session.Snapshot()))
}

func (handler *Handler) Navigate(c *fiber.Ctx) error {
	var payload navigatePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	switch strings.ToLower(strings.TrimSpace(payload.Direction)) {
	case "previous":
		handler.session.NavigatePrevious()
	case "next":
		handler.session.NavigateNext()
	case "today":
		handler.session.NavigateToday()
	default:
		return apiError(c, fiber.StatusBadRequest, "unknown direction")
	}

	return c.JSON(sessionState(handler.session.Snapshot()))
}

func (handler *Handler) SetTimeZone(c *fiber.Ctx) error {
	var payload timeZonePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	label := strings.TrimSpace(payload.TimeZone)
	if label == "" {
		return apiError(c, fiber.StatusBadRequest, "time zone label is required")
	}

	handler.session.SetTimeZone(label)
	return c.JSON(sessionState(handler.session.Snapshot()))
}

func (handler *Handler) ToggleSidebar(c *fiber.Ctx) error {
	open := handler.session.ToggleSidebar()
	return c.JSON(fiber.Map{"sidebar_open": open})
}

func sessionState(snapshot store.Snapshot) sessionResponse {
	return sessionResponse{
		CurrentDate:  snapshot.CurrentDate.Format(dayLayout),
		View:         snapshot.View,
		TimeZone:     snapshot.TimeZone,
		SidebarOpen:  snapshot.SidebarOpen,
		Filters:      snapshot.PrimaryFilters,
		OtherFilters: snapshot.OtherFilters,
	}
}
