// Package prometheus exposes the incident dataset as Prometheus metrics so
// incident counts can be graphed in Grafana next to other dashboards.
package prometheus

import (
	"sort"
	"strings"

	"github.com/redhat-appstudio/incident-dashboard/pkg/incidents"
	"github.com/redhat-appstudio/incident-dashboard/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
)

// IncidentCollector reads the current snapshot on every scrape. It holds
// no state of its own, so reloads show up on the next scrape.
type IncidentCollector struct {
	incidentsMetric *prometheus.Desc
	latestMetric    *prometheus.Desc
	datasetUpMetric *prometheus.Desc
	loadedAtMetric  *prometheus.Desc
	store           *incidents.Store
}

// NewIncidentCollector creates a collector over store.
func NewIncidentCollector(store *incidents.Store) *IncidentCollector {
	return &IncidentCollector{
		incidentsMetric: prometheus.NewDesc("incidents:count",
			"Number of incidents per repository and error name",
			[]string{"repo", "error_name"}, nil,
		),
		latestMetric: prometheus.NewDesc("incidents:latest",
			"Timestamp of the newest dated incident per repository",
			[]string{"repo"}, nil,
		),
		datasetUpMetric: prometheus.NewDesc("incidents:dataset_up",
			"Whether the incident dataset loaded successfully",
			nil, nil,
		),
		loadedAtMetric: prometheus.NewDesc("incidents:dataset_loaded",
			"Timestamp of the last successful dataset load",
			nil, nil,
		),
		store: store,
	}
}

// Describe implements prometheus.Collector.
func (collector *IncidentCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.incidentsMetric
	ch <- collector.latestMetric
	ch <- collector.datasetUpMetric
	ch <- collector.loadedAtMetric
}

// Collect implements prometheus.Collector.
func (collector *IncidentCollector) Collect(ch chan<- prometheus.Metric) {
	snapshot := collector.store.Current()
	if snapshot == nil || snapshot.Err != nil || snapshot.Dataset == nil {
		ch <- prometheus.MustNewConstMetric(collector.datasetUpMetric, prometheus.GaugeValue, 0)
		return
	}

	dataset := snapshot.Dataset
	ch <- prometheus.MustNewConstMetric(collector.datasetUpMetric, prometheus.GaugeValue, 1)
	ch <- prometheus.MustNewConstMetric(collector.loadedAtMetric, prometheus.GaugeValue, float64(dataset.LoadedAt.Unix()))

	type key struct{ repo, errorName string }
	counts := map[key]int{}
	latest := map[string]int64{}

	for _, record := range dataset.Records {
		repo := labelValue(record.Repo)
		counts[key{repo, labelValue(record.ErrorName)}]++

		ts, ok := incidents.ParseTimestamp(record.Timestamp)
		if !ok {
			continue
		}
		// records are sorted newest first, so the first dated one wins
		if _, seen := latest[repo]; !seen {
			latest[repo] = ts.Unix()
		}
	}

	// duplicate label sets are rejected by the registry, so each key is sent once
	keys := make([]key, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].repo != keys[j].repo {
			return keys[i].repo < keys[j].repo
		}
		return keys[i].errorName < keys[j].errorName
	})

	for _, k := range keys {
		send(ch, collector.incidentsMetric, float64(counts[k]), k.repo, k.errorName)
	}
	for repo, ts := range latest {
		send(ch, collector.latestMetric, float64(ts), repo)
	}
}

// labelValue makes CSV text usable as a label value. Collect runs outside
// any request handler, so a rejected label would otherwise panic the process.
func labelValue(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}

// send emits a gauge, skipping it when the label values are rejected.
func send(ch chan<- prometheus.Metric, desc *prometheus.Desc, value float64, labelValues ...string) {
	metric, err := prometheus.NewConstMetric(desc, prometheus.GaugeValue, value, labelValues...)
	if err != nil {
		logger.Warnf("Skipping incident metric %v: %v", labelValues, err)
		return
	}
	ch <- metric
}
