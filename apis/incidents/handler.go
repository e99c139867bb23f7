// Package incidents exposes the incident dataset over JSON and TOON.
package incidents

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/redhat-appstudio/incident-dashboard/apis/common"
	"github.com/redhat-appstudio/incident-dashboard/pkg/github"
	"github.com/redhat-appstudio/incident-dashboard/pkg/incidents"
	"github.com/redhat-appstudio/incident-dashboard/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/toon-format/toon-go"
)

// Handler handles incident API requests.
type Handler struct {
	// store holds the currently served dataset snapshot
	store *incidents.Store

	// linkCommits adds GitHub lookup URLs to commits in the detail response
	linkCommits bool
}

// NewHandler creates a new incident API handler. When linkCommits is set,
// commits in incident details point at the GitHub commit endpoint.
func NewHandler(store *incidents.Store, linkCommits bool) *Handler {
	return &Handler{
		store:       store,
		linkCommits: linkCommits,
	}
}

// dataset returns the current dataset, or writes a 503 and returns false
// when the last load failed.
func (h *Handler) dataset(c *fiber.Ctx) (*incidents.Dataset, bool, error) {
	snapshot := h.store.Current()
	if snapshot == nil || snapshot.Err != nil || snapshot.Dataset == nil {
		message := "incident dataset not loaded"
		if snapshot != nil && snapshot.Err != nil {
			message = snapshot.Err.Error()
		}
		return nil, false, common.SendError(c, fiber.StatusServiceUnavailable, message)
	}
	return snapshot.Dataset, true, nil
}

func queryFrom(c *fiber.Ctx) incidents.Query {
	return incidents.Query{
		Repo:  c.Query("repo"),
		Error: c.Query("error"),
	}
}

func rowsFrom(records []incidents.Record) []IncidentRow {
	rows := make([]IncidentRow, len(records))
	for i, record := range records {
		rows[i] = IncidentRow{
			Index:        i,
			Record:       record,
			OwnerSummary: incidents.FormatOwnerSummary(incidents.ParseOwners(record.OwnersRaw)),
		}
	}
	return rows
}

// List handles GET /api/v1/incidents
// Returns the filtered incidents, newest first.
func (h *Handler) List(c *fiber.Ctx) error {
	dataset, ok, err := h.dataset(c)
	if !ok {
		return err
	}

	query := queryFrom(c)
	filtered := incidents.Filter(dataset.Records, query.Repo, query.Error)

	return c.JSON(ListResponse{
		Repo:      query.Repo,
		Error:     query.Error,
		Count:     len(filtered),
		Source:    dataset.Source,
		LoadedAt:  dataset.LoadedAt,
		Incidents: rowsFrom(filtered),
	})
}

// ListTOON handles GET /api/v1/incidents.toon
// Returns the same rows as List encoded as TOON.
func (h *Handler) ListTOON(c *fiber.Ctx) error {
	dataset, ok, err := h.dataset(c)
	if !ok {
		return err
	}

	query := queryFrom(c)
	filtered := incidents.Filter(dataset.Records, query.Repo, query.Error)

	rows := make([]map[string]any, len(filtered))
	for i, record := range filtered {
		rows[i] = map[string]any{
			"index":         i,
			"timestamp":     record.Timestamp,
			"repo":          record.Repo,
			"file":          record.File,
			"line":          record.Line,
			"error_name":    record.ErrorName,
			"error_message": record.ErrorMessage,
			"owners":        incidents.FormatOwnerSummary(incidents.ParseOwners(record.OwnersRaw)),
			"incident_id":   record.IncidentID,
		}
	}

	payload := map[string]any{
		"count":     len(filtered),
		"incidents": rows,
	}

	encoded, err := toon.Marshal(payload)
	if err != nil {
		logger.Errorf("Failed to encode incidents as TOON: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("failed to encode incidents: %v", err))
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.Send(encoded)
}

// Summary handles GET /api/v1/incidents/summary
// Returns the headline figures over the filtered incidents.
func (h *Handler) Summary(c *fiber.Ctx) error {
	dataset, ok, err := h.dataset(c)
	if !ok {
		return err
	}

	query := queryFrom(c)
	return c.JSON(incidents.Summarize(incidents.Filter(dataset.Records, query.Repo, query.Error)))
}

// Detail handles GET /api/v1/incidents/:index
// Returns owners, commits and the full record of the index-th filtered incident.
func (h *Handler) Detail(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil || index < 0 {
		return common.SendError(c, fiber.StatusBadRequest, fmt.Sprintf("invalid incident index %q", c.Params("index")))
	}

	dataset, ok, err := h.dataset(c)
	if !ok {
		return err
	}

	query := queryFrom(c)
	filtered := incidents.Filter(dataset.Records, query.Repo, query.Error)

	record, found := incidents.Select(filtered, index)
	if !found {
		return common.SendError(c, fiber.StatusNotFound, fmt.Sprintf("incident %d not found (%d matching incidents)", index, len(filtered)))
	}

	detail := incidents.Describe(index, record)

	return c.JSON(DetailResponse{
		Index:    detail.Index,
		Label:    detail.Label,
		Record:   detail.Record,
		Location: detail.Location,
		Owners:   detail.Owners,
		Commits:  h.commitLinks(record.Repo, detail.Commits),
		Total:    len(filtered),
	})
}

func (h *Handler) commitLinks(repo string, commits []incidents.CommitEntry) []CommitLink {
	owner, name, linkable := github.SplitRepo(repo)
	linkable = linkable && h.linkCommits

	links := make([]CommitLink, len(commits))
	for i, commit := range commits {
		links[i] = CommitLink{
			CommitEntry: commit,
			ShortSHA:    incidents.ShortSHA(commit.SHA),
		}
		if linkable && commit.SHA != "" {
			links[i].DetailURL = fmt.Sprintf("/api/v1/github/commit/%s/%s/%s",
				url.PathEscape(owner), url.PathEscape(name), url.PathEscape(commit.SHA))
		}
	}
	return links
}
