package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	expiryMessagesProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "expiry_messages_processed_total",
			Help:      "Total number of successfully processed expiry messages",
		},
	)

	expiryMessagesSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "expiry_messages_skipped_total",
			Help:      "Total number of expiry messages for orders already known to be finalised",
		},
	)

	expiryMessagesFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "expiry_messages_failed_total",
			Help:      "Total number of failed expiry message processing attempts",
		},
	)

	expiryMessagesDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "expiry_messages_dlq_total",
			Help:      "Total number of expiry messages written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	expiryMessagesPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_producer",
			Name:      "expiry_messages_published_total",
			Help:      "Total number of expiry messages published",
		},
		[]string{"result"},
	)
)

var (
	ordersPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "http",
			Name:      "orders_placed_total",
			Help:      "Total number of placed orders",
		},
	)

	orderActions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "http",
			Name:      "order_actions_total",
			Help:      "Total number of restaurant actions on orders",
		},
		[]string{"action", "result"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		expiryMessagesProcessed,
		expiryMessagesSkipped,
		expiryMessagesFailed,
		expiryMessagesDLQ,
		commitErrors,
		expiryMessagesPublished,

		ordersPlaced,
		orderActions,
	)
}
