package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	DraftsCreated      prometheus.Counter
	DraftsDiscarded    prometheus.Counter
	ValidationFailures *prometheus.CounterVec
	Submissions        *prometheus.CounterVec
	SubmitDuration     prometheus.Histogram
	RequestDuration    *prometheus.HistogramVec
}

// New creates the metrics and registers them with reg. A nil reg registers
// with the default Prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		DraftsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "registration_drafts_created_total",
			Help: "Total number of registration drafts created",
		}),
		DraftsDiscarded: factory.NewCounter(prometheus.CounterOpts{
			Name: "registration_drafts_discarded_total",
			Help: "Total number of drafts discarded, whether abandoned or submitted",
		}),
		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "registration_validation_failures_total",
			Help: "Submission attempts blocked by validation, by reason",
		}, []string{"reason"}),
		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "registration_submissions_total",
			Help: "Outbound registration submissions, by outcome",
		}, []string{"outcome"}),
		SubmitDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "registration_submit_duration_seconds",
			Help:    "Latency of the outbound registration request",
			Buckets: prometheus.DefBuckets,
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "registration_http_request_duration_seconds",
			Help:    "Latency of draft API requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// IncrementDraftsCreated increments the drafts created counter by 1
func (m *Metrics) IncrementDraftsCreated() {
	m.DraftsCreated.Inc()
}

func (m *Metrics) IncrementDraftsDiscarded() {
	m.DraftsDiscarded.Inc()
}

func (m *Metrics) IncrementValidationFailure(reason string) {
	m.ValidationFailures.WithLabelValues(reason).Inc()
}

// ObserveSubmission records one outbound submission and its latency.
func (m *Metrics) ObserveSubmission(outcome string, elapsed time.Duration) {
	m.Submissions.WithLabelValues(outcome).Inc()
	m.SubmitDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveRequest(method, route, status string, elapsed time.Duration) {
	m.RequestDuration.WithLabelValues(method, route, status).Observe(elapsed.Seconds())
}
