package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records pipeline events as Prometheus metrics in a private registry.
type Metrics struct {
	reg *prometheus.Registry

	stageDuration *prometheus.HistogramVec
	stageErrors   *prometheus.CounterVec
	records       prometheus.Gauge
	gaps          prometheus.Gauge
	lanes         prometheus.Gauge
	days          prometheus.Gauge
	artifactBytes *prometheus.GaugeVec
	opens         *prometheus.CounterVec
	lastSuccess   prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sitegrid_stage_duration_seconds",
			Help:    "Time spent in each pipeline stage",
			Buckets: prometheus.DefBuckets,
		}, []string{"stage"}),
		stageErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sitegrid_stage_errors_total",
			Help: "Pipeline stages that returned an error",
		}, []string{"stage"}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sitegrid_schedule_records",
			Help: "Records loaded from the last schedule",
		}),
		gaps: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sitegrid_schedule_gaps",
			Help: "Records skipped in the last schedule because they were unusable",
		}),
		lanes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sitegrid_layout_lanes",
			Help: "Stack slots used by all contractor bands in the last layout",
		}),
		days: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sitegrid_layout_days",
			Help: "Days in the last rendered range",
		}),
		artifactBytes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sitegrid_artifact_bytes",
			Help: "Size of the last artifact written per format",
		}, []string{"format"}),
		opens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sitegrid_viewer_opens_total",
			Help: "Attempts to open output in the system viewer",
		}, []string{"ok"}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sitegrid_last_success_timestamp_seconds",
			Help: "Unix time of the last render that completed without error",
		}),
	}
	m.reg.MustRegister(m.stageDuration, m.stageErrors, m.records, m.gaps, m.lanes,
		m.days, m.artifactBytes, m.opens, m.lastSuccess)
	return m
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// WriteTextfile writes all metrics in the text exposition format to path,
// atomically, for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}

func (m *Metrics) observe(stage string, d time.Duration, err error) {
	m.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
	if err != nil {
		m.stageErrors.WithLabelValues(stage).Inc()
	}
}

func (m *Metrics) OnLoadStart(context.Context, string) {}

func (m *Metrics) OnLoadComplete(_ context.Context, _ string, records, gaps int, d time.Duration, err error) {
	m.observe("load", d, err)
	if err == nil {
		m.records.Set(float64(records))
		m.gaps.Set(float64(gaps))
	}
}

func (m *Metrics) OnLayoutStart(_ context.Context, days, _ int) {
	m.days.Set(float64(days))
}

func (m *Metrics) OnLayoutComplete(_ context.Context, lanes int, d time.Duration, err error) {
	m.observe("layout", d, err)
	if err == nil {
		m.lanes.Set(float64(lanes))
	}
}

func (m *Metrics) OnRenderStart(context.Context, []string) {}

func (m *Metrics) OnRenderComplete(_ context.Context, _ []string, d time.Duration, err error) {
	m.observe("render", d, err)
	if err == nil {
		m.lastSuccess.SetToCurrentTime()
	}
}

func (m *Metrics) OnArtifact(_ context.Context, format string, size int) {
	m.artifactBytes.WithLabelValues(format).Set(float64(size))
}

func (m *Metrics) OnOpen(_ context.Context, _ string, err error) {
	m.opens.WithLabelValues(strconv.FormatBool(err == nil)).Inc()
}

var (
	_ PipelineHooks = (*Metrics)(nil)
	_ OutputHooks   = (*Metrics)(nil)
)
