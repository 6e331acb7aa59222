package jobs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	taskRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "jobs",
		Name:      "task_runs_total",
		Help:      "Total number of background task runs.",
	}, []string{"task", "trigger", "result"})

	taskProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "jobs",
		Name:      "task_processed_total",
		Help:      "Total number of records processed by background tasks.",
	}, []string{"task", "trigger"})

	taskDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "order_service",
		Subsystem: "jobs",
		Name:      "task_duration_seconds",
		Help:      "Background task run durations in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"task"})

	delayedPending = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "order_service",
		Subsystem: "jobs",
		Name:      "delayed_runs_pending",
		Help:      "Number of delayed task runs waiting to fire.",
	})
)
