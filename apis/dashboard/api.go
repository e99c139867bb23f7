package dashboard

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the HTML dashboard at the root path.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/", handler.Page)
}
