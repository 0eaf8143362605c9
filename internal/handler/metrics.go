package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "driver_assist",
		Subsystem: "event_consumer",
		Name:      "events_processed_total",
		Help:      "Total number of successfully processed order events",
	})

	eventsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "driver_assist",
		Subsystem: "event_consumer",
		Name:      "events_failed_total",
		Help:      "Total number of failed order event handling attempts",
	})

	eventsDLQ = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "driver_assist",
		Subsystem: "event_consumer",
		Name:      "events_dlq_total",
		Help:      "Total number of order events written to DLQ",
	})

	urgentAlerts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "driver_assist",
		Subsystem: "event_consumer",
		Name:      "urgent_alerts_total",
		Help:      "Total number of urgent-order alerts rendered",
	})
)
