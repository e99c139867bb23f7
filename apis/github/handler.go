// Package github serves commit lookups for incidents.
package github

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/redhat-appstudio/incident-dashboard/apis/common"
	"github.com/redhat-appstudio/incident-dashboard/pkg/github"
	"github.com/redhat-appstudio/incident-dashboard/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// Handler handles GitHub lookup requests.
type Handler struct {
	client github.Client
}

// NewHandler creates a new GitHub API handler.
func NewHandler(client github.Client) (*Handler, error) {
	if client == nil {
		return nil, errors.New("GitHub client is nil")
	}
	return &Handler{client: client}, nil
}

// FileHistoryResponse is returned by the file history endpoint.
type FileHistoryResponse struct {
	Owner   string                 `json:"owner"`
	Repo    string                 `json:"repo"`
	Path    string                 `json:"path"`
	Count   int                    `json:"count"`
	Commits []github.CommitSummary `json:"commits"`
}

// GetCommit handles GET /api/v1/github/commit/:owner/:repo/:sha
func (h *Handler) GetCommit(c *fiber.Ctx) error {
	owner, repo, sha := c.Params("owner"), c.Params("repo"), c.Params("sha")

	if !github.IsValidCommit(sha) {
		return common.SendError(c, fiber.StatusBadRequest, fmt.Sprintf("invalid commit sha %q", sha))
	}

	details, err := h.client.GetCommitDetails(c.UserContext(), owner, repo, sha)
	if err != nil {
		return lookupError(c, err)
	}

	return c.JSON(details)
}

// GetFileHistory handles GET /api/v1/github/file-history/:owner/:repo/*
// The optional count query parameter must be between 1 and 100.
func (h *Handler) GetFileHistory(c *fiber.Ctx) error {
	owner, repo := c.Params("owner"), c.Params("repo")

	path, err := url.PathUnescape(c.Params("*"))
	if err != nil || path == "" {
		return common.SendError(c, fiber.StatusBadRequest, "file path is required")
	}

	count := github.DefaultHistoryCount
	if raw := c.Query("count"); raw != "" {
		count, err = strconv.Atoi(raw)
		if err != nil || count < 1 || count > github.MaxHistoryCount {
			return common.SendError(c, fiber.StatusBadRequest,
				fmt.Sprintf("count must be between 1 and %d", github.MaxHistoryCount))
		}
	}

	commits, err := h.client.GetFileCommitHistory(c.UserContext(), owner, repo, path, count)
	if err != nil {
		return lookupError(c, err)
	}

	return c.JSON(FileHistoryResponse{
		Owner:   owner,
		Repo:    repo,
		Path:    path,
		Count:   len(commits),
		Commits: commits,
	})
}

func lookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, github.ErrNotFound) {
		return common.SendError(c, fiber.StatusNotFound, err.Error())
	}
	logger.Warnf("GitHub lookup failed for %s: %v", c.Path(), err)
	return common.SendError(c, fiber.StatusBadRequest, err.Error())
}
