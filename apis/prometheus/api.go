package prometheus

import (
	"github.com/redhat-appstudio/incident-dashboard/pkg/incidents"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers the /metrics scrape endpoint backed by a
// registry holding the incident collector.
func RegisterRoutes(app *fiber.App, store *incidents.Store) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(NewIncidentCollector(store)); err != nil {
		return err
	}

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	return nil
}
