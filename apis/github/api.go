package github

import (
	"github.com/redhat-appstudio/incident-dashboard/apis/common"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the GitHub lookup routes. With a nil handler the
// routes answer 503.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	v1 := app.Group("/api/v1")

	gh := v1.Group("/github")

	if handler != nil {
		gh.Get("/commit/:owner/:repo/:sha", handler.GetCommit)
		gh.Get("/file-history/:owner/:repo/*", handler.GetFileHistory)
	} else {
		unavailable := func(c *fiber.Ctx) error {
			return common.SendError(c, fiber.StatusServiceUnavailable, "GitHub lookup not enabled")
		}
		gh.Get("/commit/:owner/:repo/:sha", unavailable)
		gh.Get("/file-history/:owner/:repo/*", unavailable)
	}
}
