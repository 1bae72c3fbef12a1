package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "famfit_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "famfit_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SubscriptionsSoldTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "famfit_subscriptions_sold_total",
			Help: "Total number of subscriptions sold",
		},
		[]string{"plan", "channel"},
	)

	SubscriptionCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "famfit_subscription_cancellations_total",
			Help: "Total number of subscription cancellations",
		},
	)

	PaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "famfit_payments_total",
			Help: "Total number of recorded payments",
		},
		[]string{"method"},
	)

	CheckInsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "famfit_check_ins_total",
			Help: "Total number of gym check-ins",
		},
		[]string{"kind"},
	)

	SalesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "famfit_sales_total",
			Help: "Total number of staff-recorded sales",
		},
		[]string{"type", "payment_method"},
	)

	PushesSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "famfit_pushes_sent_total",
			Help: "Total number of push notifications sent",
		},
		[]string{"type", "status"},
	)

	PushQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "famfit_push_queue_length",
			Help: "Current length of the push notification queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordSubscription(plan, channel string) {
	SubscriptionsSoldTotal.WithLabelValues(plan, channel).Inc()
}

func RecordSubscriptionCancellation() {
	SubscriptionCancellationsTotal.Inc()
}

func RecordPayment(method string) {
	PaymentsTotal.WithLabelValues(method).Inc()
}

func RecordCheckIn(kind string) {
	CheckInsTotal.WithLabelValues(kind).Inc()
}

func RecordSale(saleType, paymentMethod string) {
	SalesTotal.WithLabelValues(saleType, paymentMethod).Inc()
}

func RecordPush(notifType, status string) {
	PushesSentTotal.WithLabelValues(notifType, status).Inc()
}
