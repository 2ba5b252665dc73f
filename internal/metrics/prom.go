package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeDone     = "done"
	OutcomeError    = "error"
	OutcomeCanceled = "canceled"
)

var (
	buildInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "chatty_bot_build_info",
			Help:        "Build information",
			ConstLabels: prometheus.Labels{"component": "server"},
		},
		[]string{"date", "sha", "version"},
	)

	requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatty_bot_requests_total",
			Help: "Number of chat requests by terminal outcome",
		},
		[]string{"outcome"},
	)

	streamFragments = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chatty_bot_stream_fragments_total",
			Help: "Number of text fragments relayed to callers",
		},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chatty_bot_request_duration_seconds",
			Help:    "Chat request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)
)

// Register registers all metrics with the provided registerer.
func Register(r prometheus.Registerer) {
	r.MustRegister(buildInfo, requests, streamFragments, requestDuration)
}

// SetBuildInfo sets the build info metric for the server.
func SetBuildInfo(version, sha, date string) {
	buildInfo.WithLabelValues(date, sha, version).Set(1)
}

// RecordRequest increments the chat request counter for an outcome.
func RecordRequest(outcome string) {
	requests.WithLabelValues(outcome).Inc()
}

// RecordFragments adds relayed fragments to the fragment counter.
func RecordFragments(n int) {
	streamFragments.Add(float64(n))
}

// ObserveRequestDuration records how long a chat request took.
func ObserveRequestDuration(outcome string, d time.Duration) {
	requestDuration.WithLabelValues(outcome).Observe(d.Seconds())
}
