package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	uploadsTotal        *prometheus.CounterVec
	reportsTotal        *prometheus.CounterVec
	reportDuration      *prometheus.HistogramVec
	knowledgeAsksTotal  *prometheus.CounterVec
	knowledgeNoHitTotal *prometheus.CounterVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aca",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "aca",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "aca",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	uploadsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aca",
			Subsystem: "ingest",
			Name:      "uploads_total",
			Help:      "Total accepted document uploads.",
		},
		[]string{"service", "extension"},
	)
	reportsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aca",
			Subsystem: "report",
			Name:      "generated_total",
			Help:      "Total generated compliance reports by overall status.",
		},
		[]string{"service", "status"},
	)
	reportDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "aca",
			Subsystem: "report",
			Name:      "generation_duration_seconds",
			Help:      "Report generation duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service"},
	)
	knowledgeAsksTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aca",
			Subsystem: "knowledge",
			Name:      "asks_total",
			Help:      "Total answered knowledge questions.",
		},
		[]string{"service"},
	)
	knowledgeNoHitTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aca",
			Subsystem: "knowledge",
			Name:      "no_hit_total",
			Help:      "Total knowledge questions answered without a matching entry.",
		},
		[]string{"service"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		uploadsTotal,
		reportsTotal,
		reportDuration,
		knowledgeAsksTotal,
		knowledgeNoHitTotal,
	)

	return &HTTPServerMetrics{
		registry:            registry,
		requestTotal:        requestTotal,
		requestDuration:     requestDuration,
		requestInFlight:     requestInFlight,
		uploadsTotal:        uploadsTotal,
		reportsTotal:        reportsTotal,
		reportDuration:      reportDuration,
		knowledgeAsksTotal:  knowledgeAsksTotal,
		knowledgeNoHitTotal: knowledgeNoHitTotal,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/v1/documents/"):
		return "/v1/documents/{document_id}"
	case strings.HasPrefix(path, "/v1/batches/"):
		return "/v1/batches/{batch_id}/report"
	default:
		return path
	}
}

func (m *HTTPServerMetrics) RecordUpload(service, extension string) {
	if extension == "" {
		extension = "unknown"
	}
	m.uploadsTotal.WithLabelValues(service, extension).Inc()
}

func (m *HTTPServerMetrics) RecordReport(service, status string, duration time.Duration) {
	if status == "" {
		status = "unknown"
	}
	m.reportsTotal.WithLabelValues(service, status).Inc()
	m.reportDuration.WithLabelValues(service).Observe(duration.Seconds())
}

func (m *HTTPServerMetrics) RecordKnowledgeAsk(service string, sourceCount int) {
	m.knowledgeAsksTotal.WithLabelValues(service).Inc()
	if sourceCount == 0 {
		m.knowledgeNoHitTotal.WithLabelValues(service).Inc()
	}
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Flush() {
	flusher, ok := w.ResponseWriter.(http.Flusher)
	if ok {
		flusher.Flush()
	}
}

func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not implement http.Hijacker")
	}
	return hijacker.Hijack()
}

func (w *statusRecorder) Push(target string, opts *http.PushOptions) error {
	pusher, ok := w.ResponseWriter.(http.Pusher)
	if !ok {
		return http.ErrNotSupported
	}
	return pusher.Push(target, opts)
}
