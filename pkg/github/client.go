package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/redhat-appstudio/incident-dashboard/pkg/incidents"
	"github.com/redhat-appstudio/incident-dashboard/pkg/logger"

	"github.com/google/go-github/v53/github"
	"golang.org/x/oauth2"
)

var (
	commitHashRegex = regexp.MustCompile(`^[a-fA-F0-9]{4,40}$`)
	repoNameRegex   = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)
)

// client implements the GitHub Client interface.
type client struct {
	github *github.Client
	config *Config
}

// NewClient creates a new GitHub client instance. Without a token requests
// are unauthenticated.
func NewClient(config *Config) Client {
	var httpClient *http.Client
	if config.Token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: config.Token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	githubClient := github.NewClient(httpClient)
	if config.BaseURL != "" {
		baseURL, err := url.Parse(config.BaseURL)
		if err == nil {
			// Ensure BaseURL has trailing slash
			if !strings.HasSuffix(baseURL.Path, "/") {
				baseURL.Path += "/"
			}
			githubClient.BaseURL = baseURL
		} else {
			logger.Warnf("Ignoring invalid GitHub base URL %q: %v", config.BaseURL, err)
		}
	}

	return &client{
		github: githubClient,
		config: config,
	}
}

func (c *client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.config.Timeout > 0 {
		return context.WithTimeout(ctx, c.config.Timeout)
	}
	return context.WithCancel(ctx)
}

// GetCommitDetails retrieves a commit and the files it changed.
func (c *client) GetCommitDetails(ctx context.Context, owner, repo, sha string) (*CommitDetails, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	commit, resp, err := c.github.Repositories.GetCommit(ctx, owner, repo, sha, nil)
	if err != nil {
		if isNotFound(resp) {
			return nil, fmt.Errorf("commit %s in %s/%s: %w", sha, owner, repo, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch commit details: %w", err)
	}

	files := make([]FileChange, 0, len(commit.Files))
	for _, file := range commit.Files {
		files = append(files, FileChange{
			Filename:  file.GetFilename(),
			Status:    file.GetStatus(),
			Additions: file.GetAdditions(),
			Deletions: file.GetDeletions(),
			Changes:   file.GetChanges(),
			Patch:     file.GetPatch(),
		})
	}

	return &CommitDetails{
		CommitSummary: summarize(commit),
		Files:         files,
	}, nil
}

// GetFileCommitHistory retrieves up to count commits touching path, newest
// first. count is clamped to [1, MaxHistoryCount].
func (c *client) GetFileCommitHistory(ctx context.Context, owner, repo, path string, count int) ([]CommitSummary, error) {
	if count <= 0 {
		count = DefaultHistoryCount
	}
	if count > MaxHistoryCount {
		count = MaxHistoryCount
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	opts := &github.CommitsListOptions{
		Path:        path,
		ListOptions: github.ListOptions{PerPage: count},
	}

	commits, resp, err := c.github.Repositories.ListCommits(ctx, owner, repo, opts)
	if err != nil {
		if isNotFound(resp) {
			return nil, fmt.Errorf("repository or file %s/%s/%s: %w", owner, repo, path, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch commits: %w", err)
	}

	history := make([]CommitSummary, 0, len(commits))
	for _, commit := range commits {
		history = append(history, summarize(commit))
	}

	return history, nil
}

func summarize(commit *github.RepositoryCommit) CommitSummary {
	author := commit.GetCommit().GetAuthor()
	return CommitSummary{
		SHA:      commit.GetSHA(),
		ShortSHA: incidents.ShortSHA(commit.GetSHA()),
		Message:  commit.GetCommit().GetMessage(),
		Author:   author.GetName(),
		Email:    author.GetEmail(),
		Date:     author.GetDate().Time,
		URL:      commit.GetHTMLURL(),
	}
}

func isNotFound(resp *github.Response) bool {
	return resp != nil && resp.StatusCode == http.StatusNotFound
}

// IsValidCommit reports whether sha looks like a (possibly abbreviated)
// commit hash.
func IsValidCommit(sha string) bool {
	return commitHashRegex.MatchString(sha)
}

// SplitRepo splits an incident repo of the form "owner/name". The boolean is
// false for any other shape.
func SplitRepo(repo string) (string, string, bool) {
	repo = strings.TrimSpace(strings.TrimSuffix(repo, ".git"))
	if !repoNameRegex.MatchString(repo) {
		return "", "", false
	}
	owner, name, _ := strings.Cut(repo, "/")
	return owner, name, true
}
