package health

import "time"

// HealthResponse represents the health check response structure.
// It contains server status information for monitoring and health checks,
// including uptime, version, and the state of the incident dataset.
type HealthResponse struct {
	// Status is "healthy", or "degraded" when the dataset failed to load
	Status string `json:"status"`

	// Timestamp is when the health check was performed
	Timestamp time.Time `json:"timestamp"`

	// Version is the server version information
	Version string `json:"version"`

	// Uptime is the server uptime duration
	Uptime string `json:"uptime"`

	// Dataset describes the currently served incident snapshot
	Dataset DatasetStatus `json:"dataset"`
}

// DatasetStatus reports where incidents are read from and how many are loaded.
type DatasetStatus struct {
	Source    string     `json:"source"`
	Incidents int        `json:"incidents"`
	LoadedAt  *time.Time `json:"loaded_at,omitempty"`
	Error     string     `json:"error,omitempty"`
}
