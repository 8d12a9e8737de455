package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics holds the order-lifecycle metrics.
type OrderMetrics struct {
	OrdersCreatedTotal        prometheus.CounterVec
	OrdersCreatedAmountTotal  prometheus.CounterVec
	OrdersCanceledTotal       prometheus.CounterVec
	OrdersCanceledAmountTotal prometheus.CounterVec
	OrderErrorsTotal          prometheus.CounterVec
	OrderProcessingDuration   prometheus.HistogramVec
}

func NewOrderMetrics() *OrderMetrics {
	return &OrderMetrics{
		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Total number of created orders",
			},
			[]string{"side", "asset"},
		),

		OrdersCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_amount_total",
				Help: "Total settlement-currency amount reserved by created orders",
			},
			[]string{"side", "asset"},
		),

		OrdersCanceledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_canceled_total",
				Help: "Total number of canceled orders",
			},
			[]string{"side", "asset"},
		),

		OrdersCanceledAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_canceled_amount_total",
				Help: "Total settlement-currency amount refunded by canceled orders",
			},
			[]string{"side", "asset"},
		),

		OrderErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_errors_total",
				Help: "Total number of failed order operations",
			},
			[]string{"operation", "kind"},
		),

		OrderProcessingDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "order_processing_duration_seconds",
				Help:    "Order operation processing time in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"operation"},
		),
	}
}
