package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redhat-appstudio/incident-dashboard/pkg/incidents"
)

func TestSetupRoutes(t *testing.T) {
	store := incidents.NewStore(&incidents.Snapshot{
		Dataset: incidents.NewDataset("incidents.csv", []incidents.Record{{Repo: "svc-a", ErrorName: "KeyError"}}),
	})

	app := fiber.New()
	SetupRoutes(app, Dependencies{Store: store, Source: "incidents.csv"})

	tests := []struct {
		target         string
		expectedStatus int
	}{
		{target: "/", expectedStatus: fiber.StatusOK},
		{target: "/api/v1/health", expectedStatus: fiber.StatusOK},
		{target: "/api/v1/incidents", expectedStatus: fiber.StatusOK},
		{target: "/api/v1/incidents/summary", expectedStatus: fiber.StatusOK},
		{target: "/api/v1/incidents/0", expectedStatus: fiber.StatusOK},
		{target: "/api/v1/github/commit/svc/a/abcdef1", expectedStatus: fiber.StatusServiceUnavailable},
		{target: "/metrics", expectedStatus: fiber.StatusOK},
		{target: "/api/v1/unknown", expectedStatus: fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}
