package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vchaumont/agenda/internal/store"
)

func (handler *Handler) GetFilters(c *fiber.Ctx) error {
	snapshot := handler.session.Snapshot()
	return c.JSON(fiber.Map{
		"filters":       snapshot.PrimaryFilters,
		"other_filters": snapshot.OtherFilters,
	})
}

func (handler *Handler) ToggleFilter(c *fiber.Ctx) error {
	toggled, err := handler.session.ToggleFilter(c.Params("id"))
	if err == store.ErrFilterNotFound {
		return apiError(c, fiber.StatusNotFound, "filter not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to toggle filter")
	}
	return c.JSON(toggled)
}
