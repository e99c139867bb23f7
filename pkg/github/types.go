// Package github looks up commits on GitHub so the dashboard can show more
// than the one-line commit list recorded with an incident.
package github

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when the repository, file or commit does not exist.
var ErrNotFound = errors.New("not found")

// Client defines the GitHub operations used by the dashboard.
type Client interface {
	// GetCommitDetails retrieves a single commit including its changed files
	GetCommitDetails(ctx context.Context, owner, repo, sha string) (*CommitDetails, error)

	// GetFileCommitHistory retrieves the most recent commits touching path
	GetFileCommitHistory(ctx context.Context, owner, repo, path string, count int) ([]CommitSummary, error)
}

// Config holds GitHub client configuration.
type Config struct {
	// Token is the GitHub personal access token for API authentication
	Token string

	// BaseURL is the GitHub API base URL (for GitHub Enterprise)
	BaseURL string

	// Timeout bounds each API call
	Timeout time.Duration
}

// CommitSummary is a commit as listed in a file's history.
type CommitSummary struct {
	SHA      string    `json:"sha"`
	ShortSHA string    `json:"short_sha"`
	Message  string    `json:"message"`
	Author   string    `json:"author"`
	Email    string    `json:"email"`
	Date     time.Time `json:"date"`
	URL      string    `json:"url"`
}

// FileChange is one file touched by a commit.
type FileChange struct {
	Filename  string `json:"filename"`
	Status    string `json:"status"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
	Changes   int    `json:"changes"`
	Patch     string `json:"patch,omitempty"`
}

// CommitDetails is a commit with its changed files.
type CommitDetails struct {
	CommitSummary
	Files []FileChange `json:"files"`
}

// Default and maximum number of commits returned by GetFileCommitHistory.
const (
	DefaultHistoryCount = 5
	MaxHistoryCount     = 100
)
