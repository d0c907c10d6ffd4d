package generator

import "github.com/prometheus/client_golang/prometheus"

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "embedd",
			Subsystem: "generator",
			Name:      "requests_total",
			Help:      "Total embedding requests served by the worker",
		},
		[]string{"model", "outcome"},
	)

	encodeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "embedd",
			Subsystem: "generator",
			Name:      "encode_duration_seconds",
			Help:      "Duration of a single batch-encode call in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"model"},
	)

	queueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "embedd",
			Subsystem: "generator",
			Name:      "queue_depth",
			Help:      "Requests currently waiting in the bounded queue",
		},
	)

	rejectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "embedd",
			Subsystem: "generator",
			Name:      "rejections_total",
			Help:      "Requests rejected before reaching the worker",
		},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal, encodeDuration, queueDepth, rejectionsTotal)
}
