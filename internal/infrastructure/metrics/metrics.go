package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics groups the order-related prometheus collectors.
type OrderMetrics struct {
	OrdersCreatedTotal       prometheus.CounterVec
	OrdersCreatedAmountTotal prometheus.CounterVec

	OrderTransitionsTotal   prometheus.CounterVec
	InsufficientStockTotal  prometheus.CounterVec
	TransitionDuration      prometheus.HistogramVec
	PixCodesGeneratedTotal  prometheus.CounterVec
	OrderTransitionFailures prometheus.CounterVec
}

func NewOrderMetrics() *OrderMetrics {
	return &OrderMetrics{
		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Total number of orders created at checkout",
			},
			[]string{"store_id"},
		),

		OrdersCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_amount_total",
				Help: "Total amount of created orders",
			},
			[]string{"store_id"},
		),

		OrderTransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_transitions_total",
				Help: "Total number of successful order status transitions",
			},
			[]string{"store_id", "status"},
		),

		InsufficientStockTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_insufficient_stock_total",
				Help: "Total number of stock-commit transitions rejected for lack of stock",
			},
			[]string{"store_id"},
		),

		TransitionDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "order_transition_duration_seconds",
				Help:    "Duration of order status transitions",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"status"},
		),

		PixCodesGeneratedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pix_codes_generated_total",
				Help: "Total number of generated pix payment codes",
			},
			[]string{"store_id"},
		),

		OrderTransitionFailures: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_transition_failures_total",
				Help: "Total number of order transitions failed in storage",
			},
			[]string{"store_id"},
		),
	}
}

func (m *OrderMetrics) RecordOrderCreated(storeID string, amount float64) {
	if m == nil {
		return
	}
	m.OrdersCreatedTotal.WithLabelValues(storeID).Inc()
	m.OrdersCreatedAmountTotal.WithLabelValues(storeID).Add(amount)
}

func (m *OrderMetrics) RecordTransition(storeID, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.OrderTransitionsTotal.WithLabelValues(storeID, status).Inc()
	m.TransitionDuration.WithLabelValues(status).Observe(elapsed.Seconds())
}

func (m *OrderMetrics) RecordInsufficientStock(storeID string) {
	if m == nil {
		return
	}
	m.InsufficientStockTotal.WithLabelValues(storeID).Inc()
}

func (m *OrderMetrics) RecordTransitionFailure(storeID string) {
	if m == nil {
		return
	}
	m.OrderTransitionFailures.WithLabelValues(storeID).Inc()
}

func (m *OrderMetrics) RecordPixCodeGenerated(storeID string) {
	if m == nil {
		return
	}
	m.PixCodesGeneratedTotal.WithLabelValues(storeID).Inc()
}
