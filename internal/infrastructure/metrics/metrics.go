package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns the service's Prometheus registry. A nil *Recorder is valid and
// records nothing, which keeps use cases free of nil checks in tests.
type Recorder struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	transitions     *prometheus.CounterVec
	regenerations   *prometheus.CounterVec
	payments        *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "workflow_transitions_total",
		Help: "Workflow status changes by entity and outcome",
	}, []string{"entity", "to", "result"})

	regenerations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "milestone_regenerations_total",
		Help: "Payment milestone regenerations by outcome",
	}, []string{"result"})

	payments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "milestone_payments_total",
		Help: "Milestone payment attempts by outcome",
	}, []string{"result"})

	registry.MustRegister(requestDuration, transitions, regenerations, payments)

	return &Recorder{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		transitions:     transitions,
		regenerations:   regenerations,
		payments:        payments,
	}
}

func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return r.handler
}

func (r *Recorder) Transition(entity, to string, ok bool) {
	if r == nil {
		return
	}
	r.transitions.WithLabelValues(entity, to, result(ok)).Inc()
}

func (r *Recorder) Regeneration(ok bool) {
	if r == nil {
		return
	}
	r.regenerations.WithLabelValues(result(ok)).Inc()
}

func (r *Recorder) Payment(ok bool) {
	if r == nil {
		return
	}
	r.payments.WithLabelValues(result(ok)).Inc()
}

// Middleware records request latency keyed by the route template.
func (r *Recorder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if r == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		r.requestDuration.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Observe(time.Since(start).Seconds())
	}
}

func result(ok bool) string {
	if ok {
		return "ok"
	}
	return "failed"
}
