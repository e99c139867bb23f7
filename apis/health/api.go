package health

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the health API under /api/v1.
func RegisterRoutes(app *fiber.App, h *Handler) {
	healthGroup := app.Group("/api/v1")

	healthGroup.Get("/health", h.Health)
}
