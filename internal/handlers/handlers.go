package handlers

import (
	"github.com/redhat-appstudio/incident-dashboard/apis/dashboard"
	githubapi "github.com/redhat-appstudio/incident-dashboard/apis/github"
	"github.com/redhat-appstudio/incident-dashboard/apis/health"
	incidentsapi "github.com/redhat-appstudio/incident-dashboard/apis/incidents"
	"github.com/redhat-appstudio/incident-dashboard/apis/prometheus"
	"github.com/redhat-appstudio/incident-dashboard/pkg/github"
	"github.com/redhat-appstudio/incident-dashboard/pkg/incidents"
	"github.com/redhat-appstudio/incident-dashboard/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// Dependencies are the shared services handed to the API handlers.
type Dependencies struct {
	// Store holds the incident snapshot served by every handler
	Store *incidents.Store

	// Source describes where the dataset is read from
	Source string

	// GitHub is nil when commit lookup is disabled
	GitHub github.Client
}

// SetupRoutes configures all HTTP routes for the incident dashboard.
// This function should be called during server initialization.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	health.RegisterRoutes(app, health.NewHandler(deps.Store, deps.Source))

	var githubHandler *githubapi.Handler
	if deps.GitHub != nil {
		handler, err := githubapi.NewHandler(deps.GitHub)
		if err != nil {
			logger.Warnf("GitHub API will not be available: %v", err)
		} else {
			githubHandler = handler
		}
	}

	incidentsapi.RegisterRoutes(app, incidentsapi.NewHandler(deps.Store, githubHandler != nil))
	githubapi.RegisterRoutes(app, githubHandler)

	if err := prometheus.RegisterRoutes(app, deps.Store); err != nil {
		logger.Warnf("Metrics endpoint will not be available: %v", err)
	}

	dashboard.RegisterRoutes(app, dashboard.NewHandler(deps.Store))
}
