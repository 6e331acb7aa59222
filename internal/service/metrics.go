package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	staleOrdersRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "sweeper",
		Name:      "orders_rejected_total",
		Help:      "Placed orders rejected automatically after the auto reject window.",
	})

	staleOrderFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "sweeper",
		Name:      "reject_failures_total",
		Help:      "Stale orders the sweeper failed to reject.",
	})

	staleOrderRaces = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "sweeper",
		Name:      "lost_races_total",
		Help:      "Stale orders finalised by someone else before the sweeper got to them.",
	})
)
