// Package observability holds the process-wide Prometheus collectors.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for LoadsTotal.
const (
	OutcomeSuccess   = "success"
	OutcomeEmpty     = "empty"
	OutcomeNetwork   = "network"
	OutcomeDecode    = "decode"
	OutcomeDiscarded = "discarded"
)

var (
	loadsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit",
		Subsystem: "dataview",
		Name:      "loads_total",
		Help:      "Number of settled data-view loads by resource and outcome.",
	}, []string{"resource", "outcome"})

	fetchSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "octofit",
		Subsystem: "dataview",
		Name:      "fetch_duration_seconds",
		Help:      "Duration of REST API fetches, excluding the presentation delay.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"resource"})

	mountedGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "octofit",
		Subsystem: "shell",
		Name:      "mounted_views",
		Help:      "Number of data-views currently mounted by browser sessions.",
	}, []string{"resource"})
)

func init() {
	prometheus.MustRegister(loadsCounter, fetchSeconds, mountedGauge)
}

// RecordLoad counts one settled load. Fetch latency is only observed for
// loads that actually reached the network.
func RecordLoad(resource, outcome string, elapsed time.Duration) {
	loadsCounter.WithLabelValues(resource, outcome).Inc()
	if elapsed > 0 {
		fetchSeconds.WithLabelValues(resource).Observe(elapsed.Seconds())
	}
}

// ViewMounted increments the mounted gauge for resource.
func ViewMounted(resource string) {
	mountedGauge.WithLabelValues(resource).Inc()
}

// ViewUnmounted decrements the mounted gauge for resource.
func ViewUnmounted(resource string) {
	mountedGauge.WithLabelValues(resource).Dec()
}
