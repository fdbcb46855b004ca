package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the collectors of one process on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	rowsLoaded      *prometheus.CounterVec
	rowsSkipped     *prometheus.CounterVec
	reportsWritten  prometheus.Counter
	reportsFailed   prometheus.Counter
	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry.
func New(cfg Config) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		rowsLoaded: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "rows_loaded_total",
			Help:      "Input rows applied to the inventory, by source",
		}, []string{"source"}),
		rowsSkipped: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "rows_skipped_total",
			Help:      "Input rows skipped, by source and reason",
		}, []string{"source", "reason"}),
		reportsWritten: f.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "reports_written_total",
			Help:      "Report files written",
		}),
		reportsFailed: f.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "reports_failed_total",
			Help:      "Report files that could not be written",
		}),
		requestTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

func (m *Metrics) RowLoaded(source string) {
	if m == nil {
		return
	}
	m.rowsLoaded.WithLabelValues(source).Inc()
}

func (m *Metrics) RowSkipped(source, reason string) {
	if m == nil {
		return
	}
	m.rowsSkipped.WithLabelValues(source, reason).Inc()
}

func (m *Metrics) ReportWritten() {
	if m == nil {
		return
	}
	m.reportsWritten.Inc()
}

func (m *Metrics) ReportFailed() {
	if m == nil {
		return
	}
	m.reportsFailed.Inc()
}

// Handler exposes the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// NormalizePath keeps only the first path segment so that item IDs and
// type names do not explode label cardinality.
func NormalizePath(p string) string {
	p = strings.TrimPrefix(p, "/")
	if idx := strings.Index(p, "/"); idx >= 0 {
		p = p[:idx]
	}
	if p == "" {
		return "root"
	}
	return p
}

// Middleware records request count and latency.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m == nil || c.Path() == "/metrics" {
			return c.Next()
		}
		start := time.Now()
		err := c.Next()
		path := NormalizePath(c.Path())
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		m.requestTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())
		return err
	}
}
