package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type WorkerMetrics struct {
	registry *prometheus.Registry

	processTotal    *prometheus.CounterVec
	processDuration *prometheus.HistogramVec
	processInFlight prometheus.Gauge
	queueLag        *prometheus.HistogramVec
	classifiedTotal *prometheus.CounterVec
	redFlagsTotal   *prometheus.CounterVec
}

func NewWorkerMetrics(service string) *WorkerMetrics {
	registry := prometheus.NewRegistry()

	processTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aca",
			Subsystem: "worker",
			Name:      "document_process_total",
			Help:      "Total processed documents by status.",
		},
		[]string{"service", "status"},
	)
	processDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "aca",
			Subsystem: "worker",
			Name:      "document_process_duration_seconds",
			Help:      "Document processing duration in seconds by status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "status"},
	)
	processInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "aca",
			Subsystem: "worker",
			Name:      "document_process_in_flight",
			Help:      "Number of in-flight document processing tasks.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	queueLag := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "aca",
			Subsystem: "worker",
			Name:      "queue_lag_seconds",
			Help:      "Delay between document upload and processing start.",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"service"},
	)
	classifiedTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aca",
			Subsystem: "analysis",
			Name:      "documents_classified_total",
			Help:      "Total classified documents by resolved type.",
		},
		[]string{"service", "document_type"},
	)
	redFlagsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aca",
			Subsystem: "analysis",
			Name:      "red_flags_total",
			Help:      "Total raised red flags by severity.",
		},
		[]string{"service", "severity"},
	)

	registry.MustRegister(processTotal, processDuration, processInFlight, queueLag, classifiedTotal, redFlagsTotal)

	return &WorkerMetrics{
		registry:        registry,
		processTotal:    processTotal,
		processDuration: processDuration,
		processInFlight: processInFlight,
		queueLag:        queueLag,
		classifiedTotal: classifiedTotal,
		redFlagsTotal:   redFlagsTotal,
	}
}

func (m *WorkerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *WorkerMetrics) StartDocument() {
	m.processInFlight.Inc()
}

func (m *WorkerMetrics) FinishDocument(service string, duration time.Duration, err error) {
	m.processInFlight.Dec()

	status := "success"
	if err != nil {
		status = "error"
	}

	m.processTotal.WithLabelValues(service, status).Inc()
	m.processDuration.WithLabelValues(service, status).Observe(duration.Seconds())
}

func (m *WorkerMetrics) ObserveQueueLag(service string, lag time.Duration) {
	if lag < 0 {
		return
	}
	m.queueLag.WithLabelValues(service).Observe(lag.Seconds())
}

func (m *WorkerMetrics) RecordClassification(service, documentType string) {
	if documentType == "" {
		documentType = "unknown"
	}
	m.classifiedTotal.WithLabelValues(service, documentType).Inc()
}

func (m *WorkerMetrics) RecordRedFlags(service string, highSeverity, mediumSeverity int) {
	if highSeverity > 0 {
		m.redFlagsTotal.WithLabelValues(service, "high").Add(float64(highSeverity))
	}
	if mediumSeverity > 0 {
		m.redFlagsTotal.WithLabelValues(service, "medium").Add(float64(mediumSeverity))
	}
}
