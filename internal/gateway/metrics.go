package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	outboundRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "driver_assist",
		Subsystem: "gateway",
		Name:      "requests_total",
		Help:      "Total number of backend order service calls.",
	}, []string{"operation", "outcome"})

	outboundDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "driver_assist",
		Subsystem: "gateway",
		Name:      "request_duration_seconds",
		Help:      "Backend order service call latencies in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	outboundRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "driver_assist",
		Subsystem: "gateway",
		Name:      "retries_total",
		Help:      "Total number of retried backend calls.",
	}, []string{"operation"})
)
