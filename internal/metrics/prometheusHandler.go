package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var modelRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "model_call_retries_total",
	Help: "Transient model-call failures that triggered a retry",
})

var extractionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "document_extractions_total",
	Help: "Completed extractions labelled by method",
}, []string{"method"})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

func IncrementModelRetries() {
	modelRetriesTotal.Inc()
}

func CountExtraction(method string) {
	extractionsTotal.WithLabelValues(method).Inc()
}

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10, 30, 90},
}, []string{"service"})

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}
