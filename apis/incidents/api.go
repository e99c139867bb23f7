package incidents

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the incident API routes.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	v1 := app.Group("/api/v1")

	// Static paths are registered before the :index parameter route
	v1.Get("/incidents", handler.List)
	v1.Get("/incidents.toon", handler.ListTOON)
	v1.Get("/incidents/summary", handler.Summary)
	v1.Get("/incidents/:index", handler.Detail)
}
