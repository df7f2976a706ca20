package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	session := api.Group("/session")
	session.Get("", handler.GetSession)
	session.Post("/view", handler.SetView)
	session.Post("/date", handler.SetDate)
	session.Post("/navigate", handler.Navigate)
	session.Post("/timezone", handler.SetTimeZone)
	session.Post("/sidebar", handler.ToggleSidebar)

	grid := api.Group("/grid")
	grid.Get("/month", handler.MonthGrid)
	grid.Get("/week", handler.WeekGrid)
	grid.Get("/day", handler.DayGrid)

	api.Get("/agenda", handler.Agenda)
	api.Get("/slots", handler.Slots)
	api.Get("/labels", handler.Labels)

	events := api.Group("/events")
	events.Get("", handler.GetEvents)
	events.Post("", handler.CreateEvent)
	events.Post("/drag", handler.CreateDragEvent)
	events.Put("/:id", handler.UpdateEvent)
	events.Delete("/:id", handler.DeleteEvent)

	filters := api.Group("/filters")
	filters.Get("", handler.GetFilters)
	filters.Post("/:id/toggle", handler.ToggleFilter)

	export := api.Group("/export")
	export.Get("/ics", handler.ExportICS)
	export.Get("/json", handler.ExportJSON)
}
