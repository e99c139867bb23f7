// Package dataset keeps the incident snapshot served by the dashboard up to
// date. It performs the initial load and, when configured, periodic reloads.
package dataset

import (
	"context"
	"errors"
	"time"

	"github.com/redhat-appstudio/incident-dashboard/pkg/incidents"
	"github.com/redhat-appstudio/incident-dashboard/pkg/logger"
	"github.com/redhat-appstudio/incident-dashboard/pkg/storage"
)

// DefaultLoadTimeout bounds a single load of the dataset source.
const DefaultLoadTimeout = 30 * time.Second

// Monitor loads the dataset source into a store and optionally reloads it
// at a fixed interval.
type Monitor struct {
	source   storage.Source
	store    *incidents.Store
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewMonitor creates a monitor for source publishing into store. An interval
// of zero or less disables periodic reloads.
func NewMonitor(source storage.Source, store *incidents.Store, interval time.Duration) *Monitor {
	if source == nil || store == nil {
		return nil
	}

	if interval < 0 {
		interval = 0
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Monitor{
		source:   source,
		store:    store,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// LoadOnce reads the source and publishes the result. The initial load is
// always published, including a failure, so the dashboard can report it.
func (m *Monitor) LoadOnce(ctx context.Context) *incidents.Snapshot {
	ctx, cancel := context.WithTimeout(ctx, DefaultLoadTimeout)
	defer cancel()

	dataset, err := m.source.Load(ctx)
	snapshot := &incidents.Snapshot{Dataset: dataset, Err: err}

	switch {
	case errors.Is(err, storage.ErrMissingFile):
		logger.Errorf("Incident dataset unavailable: %v", err)
	case err != nil:
		logger.Errorf("Failed to load incident dataset from %s: %v", m.source.Describe(), err)
	default:
		logger.Infof("Loaded %d incidents from %s", dataset.Len(), m.source.Describe())
	}

	m.store.Publish(snapshot)
	return snapshot
}

// reload re-reads the source. A failed reload keeps a previously good
// snapshot in place.
func (m *Monitor) reload() {
	ctx, cancel := context.WithTimeout(m.ctx, DefaultLoadTimeout)
	defer cancel()

	dataset, err := m.source.Load(ctx)
	if err != nil {
		if current := m.store.Current(); current != nil && current.Err == nil {
			logger.Warnf("Dataset reload failed, keeping previous snapshot: %v", err)
			return
		}
		m.store.Publish(&incidents.Snapshot{Err: err})
		logger.Errorf("Dataset reload failed: %v", err)
		return
	}

	m.store.Publish(&incidents.Snapshot{Dataset: dataset})
	logger.Debugf("Reloaded %d incidents from %s", dataset.Len(), m.source.Describe())
}

// Start reloads the dataset at the configured interval until Stop is called.
// It returns immediately when reloading is disabled.
func (m *Monitor) Start() {
	if m == nil || m.interval <= 0 {
		return
	}

	logger.Infof("Starting dataset reloads - interval: %v", m.interval)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.reload()
		case <-m.ctx.Done():
			logger.Infof("Dataset reloads stopped")
			return
		}
	}
}

// Stop ends periodic reloads.
func (m *Monitor) Stop() {
	if m != nil && m.cancel != nil {
		m.cancel()
	}
}
