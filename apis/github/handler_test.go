package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redhat-appstudio/incident-dashboard/apis/common"
	"github.com/redhat-appstudio/incident-dashboard/pkg/github"
)

type fakeClient struct {
	details   *github.CommitDetails
	history   []github.CommitSummary
	err       error
	lastPath  string
	lastCount int
}

func (f *fakeClient) GetCommitDetails(ctx context.Context, owner, repo, sha string) (*github.CommitDetails, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.details, nil
}

func (f *fakeClient) GetFileCommitHistory(ctx context.Context, owner, repo, path string, count int) ([]github.CommitSummary, error) {
	f.lastPath = path
	f.lastCount = count
	if f.err != nil {
		return nil, f.err
	}
	return f.history, nil
}

func newTestApp(t *testing.T, client github.Client) *fiber.App {
	t.Helper()

	app := fiber.New()
	if client == nil {
		RegisterRoutes(app, nil)
		return app
	}

	handler, err := NewHandler(client)
	require.NoError(t, err)
	RegisterRoutes(app, handler)
	return app
}

func doGet(t *testing.T, app *fiber.App, target string) (int, []byte) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestNewHandler_NilClient(t *testing.T) {
	handler, err := NewHandler(nil)
	assert.Error(t, err)
	assert.Nil(t, handler)
}

func TestGetCommit(t *testing.T) {
	details := &github.CommitDetails{
		CommitSummary: github.CommitSummary{SHA: "87123b7abc", ShortSHA: "87123b7", Message: "fix totals", Author: "alice"},
		Files:         []github.FileChange{{Filename: "app/main.py", Status: "modified", Additions: 2, Deletions: 1, Changes: 3}},
	}

	tests := []struct {
		name           string
		client         *fakeClient
		target         string
		expectedStatus int
	}{
		{name: "found", client: &fakeClient{details: details}, target: "/api/v1/github/commit/ichack26/broken_app/87123b7abc", expectedStatus: fiber.StatusOK},
		{name: "invalid sha", client: &fakeClient{details: details}, target: "/api/v1/github/commit/ichack26/broken_app/not-a-sha", expectedStatus: fiber.StatusBadRequest},
		{name: "not found", client: &fakeClient{err: fmt.Errorf("commit 87123b7abc: %w", github.ErrNotFound)}, target: "/api/v1/github/commit/ichack26/broken_app/87123b7abc", expectedStatus: fiber.StatusNotFound},
		{name: "upstream failure", client: &fakeClient{err: errors.New("rate limited")}, target: "/api/v1/github/commit/ichack26/broken_app/87123b7abc", expectedStatus: fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doGet(t, newTestApp(t, tt.client), tt.target)
			require.Equal(t, tt.expectedStatus, status)

			if status != fiber.StatusOK {
				var response common.ErrorResponse
				require.NoError(t, json.Unmarshal(body, &response))
				assert.True(t, response.Error)
				return
			}

			var got github.CommitDetails
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, "87123b7abc", got.SHA)
			assert.Equal(t, "alice", got.Author)
			require.Len(t, got.Files, 1)
			assert.Equal(t, "app/main.py", got.Files[0].Filename)
		})
	}
}

func TestGetFileHistory(t *testing.T) {
	history := []github.CommitSummary{{SHA: "aaa1111"}, {SHA: "bbb2222"}}

	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedCount  int
		expectedPath   string
	}{
		{name: "default count", target: "/api/v1/github/file-history/ichack26/broken_app/app/main.py", expectedStatus: fiber.StatusOK, expectedCount: github.DefaultHistoryCount, expectedPath: "app/main.py"},
		{name: "explicit count", target: "/api/v1/github/file-history/ichack26/broken_app/app/main.py?count=20", expectedStatus: fiber.StatusOK, expectedCount: 20, expectedPath: "app/main.py"},
		{name: "maximum count", target: "/api/v1/github/file-history/ichack26/broken_app/README.md?count=100", expectedStatus: fiber.StatusOK, expectedCount: 100, expectedPath: "README.md"},
		{name: "zero count", target: "/api/v1/github/file-history/ichack26/broken_app/app/main.py?count=0", expectedStatus: fiber.StatusBadRequest},
		{name: "count too large", target: "/api/v1/github/file-history/ichack26/broken_app/app/main.py?count=101", expectedStatus: fiber.StatusBadRequest},
		{name: "count not a number", target: "/api/v1/github/file-history/ichack26/broken_app/app/main.py?count=ten", expectedStatus: fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{history: history}
			status, body := doGet(t, newTestApp(t, client), tt.target)
			require.Equal(t, tt.expectedStatus, status)

			if status != fiber.StatusOK {
				return
			}

			var response FileHistoryResponse
			require.NoError(t, json.Unmarshal(body, &response))
			assert.Equal(t, tt.expectedPath, response.Path)
			assert.Equal(t, 2, response.Count)
			assert.Equal(t, tt.expectedPath, client.lastPath)
			assert.Equal(t, tt.expectedCount, client.lastCount)
		})
	}
}

func TestGetFileHistory_NotFound(t *testing.T) {
	client := &fakeClient{err: github.ErrNotFound}
	status, _ := doGet(t, newTestApp(t, client), "/api/v1/github/file-history/ichack26/missing/app.py")
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestRoutesDisabled(t *testing.T) {
	app := newTestApp(t, nil)

	for _, target := range []string{
		"/api/v1/github/commit/ichack26/broken_app/87123b7",
		"/api/v1/github/file-history/ichack26/broken_app/app/main.py",
	} {
		status, body := doGet(t, app, target)
		assert.Equal(t, fiber.StatusServiceUnavailable, status)

		var response common.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &response))
		assert.Equal(t, "GitHub lookup not enabled", response.Message)
	}
}
