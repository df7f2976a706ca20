package api

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vchaumont/agenda/internal/ics"
	"github.com/vchaumont/agenda/internal/services"
)

const mimeTextCalendar = "text/calendar; charset=utf-8"

// ExportICS downloads the currently visible events as an iCalendar file.
// Hidden categories are excluded, matching what the user sees.
func (handler *Handler) ExportICS(c *fiber.Ctx) error {
	snapshot := handler.session.Snapshot()
	visible := services.VisibleEvents(snapshot.Events, snapshot.PrimaryFilters, snapshot.OtherFilters)
	now := handler.now()

	payload := ics.Build(visible, now)

	setExportAttachmentHeaders(c, mimeTextCalendar, buildExportFilename(now, "ics"))
	return c.SendString(payload)
}

// ExportJSON downloads the currently visible events as an indented JSON
// document.
func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	snapshot := handler.session.Snapshot()
	visible := services.VisibleEvents(snapshot.Events, snapshot.PrimaryFilters, snapshot.OtherFilters)
	now := handler.now()

	payload := fiber.Map{
		"exported_at": now.Format(time.RFC3339),
		"events":      visible,
	}

	serialized, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, fiber.MIMEApplicationJSON, buildExportFilename(now, "json"))
	return c.Send(serialized)
}

func buildExportFilename(now time.Time, extension string) string {
	return fmt.Sprintf("agenda-export-%s.%s", now.Format("2006-01-02"), extension)
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
