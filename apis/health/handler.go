package health

import (
	"time"

	"github.com/redhat-appstudio/incident-dashboard/internal/version"
	"github.com/redhat-appstudio/incident-dashboard/pkg/incidents"

	"github.com/gofiber/fiber/v2"
)

// Handler serves the health endpoint.
type Handler struct {
	store     *incidents.Store
	source    string
	startTime time.Time
}

// NewHandler creates a health handler reporting on store. source describes
// where the dataset is read from.
func NewHandler(store *incidents.Store, source string) *Handler {
	return &Handler{
		store:     store,
		source:    source,
		startTime: time.Now(),
	}
}

// Health returns server status, uptime, version and dataset state. A failed
// dataset load reports "degraded" but still answers 200 so the process is
// not restarted over a missing file.
func (h *Handler) Health(c *fiber.Ctx) error {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   version.GetShortVersion(),
		Uptime:    time.Since(h.startTime).String(),
		Dataset:   DatasetStatus{Source: h.source},
	}

	if snapshot := h.store.Current(); snapshot != nil {
		if snapshot.Err != nil {
			response.Status = "degraded"
			response.Dataset.Error = snapshot.Err.Error()
		}
		if snapshot.Dataset != nil {
			loadedAt := snapshot.Dataset.LoadedAt
			response.Dataset.Incidents = snapshot.Dataset.Len()
			response.Dataset.LoadedAt = &loadedAt
		}
	}

	return c.JSON(response)
}
