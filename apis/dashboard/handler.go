// Package dashboard renders the incident dashboard page.
package dashboard

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"math"
	"strconv"

	"github.com/redhat-appstudio/incident-dashboard/pkg/incidents"
	"github.com/redhat-appstudio/incident-dashboard/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("dashboard.html").Funcs(template.FuncMap{
		"percent":  progressPercent,
		"shortSHA": incidents.ShortSHA,
		"orDash":   orDash,
		"owners": func(raw string) string {
			return incidents.FormatOwnerSummary(incidents.ParseOwners(raw))
		},
	}).ParseFS(templateFS, "templates/*.html"),
)

// Handler serves the dashboard page.
type Handler struct {
	store *incidents.Store
}

// NewHandler creates a dashboard handler reading from store.
func NewHandler(store *incidents.Store) *Handler {
	return &Handler{store: store}
}

// pageData is the template input. Problem replaces the whole page when set.
type pageData struct {
	Title   string
	Problem string
	View    *incidents.View
}

// Page handles GET /
// Query parameters: repo, error (substring filters) and selected (row index).
func (h *Handler) Page(c *fiber.Ctx) error {
	data := pageData{Title: "Incident Dashboard"}
	status := fiber.StatusOK

	snapshot := h.store.Current()
	switch {
	case snapshot == nil || (snapshot.Err == nil && snapshot.Dataset == nil):
		data.Problem = "Incident dataset not loaded yet."
		status = fiber.StatusServiceUnavailable
	case snapshot.Err != nil:
		data.Problem = snapshot.Err.Error()
		status = fiber.StatusServiceUnavailable
	default:
		selected, err := strconv.Atoi(c.Query("selected", "0"))
		if err != nil {
			selected = 0
		}
		data.View = incidents.BuildView(snapshot.Dataset.Records, incidents.Query{
			Repo:     c.Query("repo"),
			Error:    c.Query("error"),
			Selected: selected,
		})
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		logger.Errorf("Failed to render dashboard: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("failed to render dashboard: %v", err))
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

// progressPercent converts a [0,1] progress value to a whole CSS percentage.
func progressPercent(progress float64) int {
	return int(math.Round(progress * 100))
}

func orDash(s string) string {
	if s == "" {
		return incidents.EmptyPlaceholder
	}
	return s
}
