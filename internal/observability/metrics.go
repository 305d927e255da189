package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NotificationsAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kirimuang",
			Subsystem: "notifications",
			Name:      "added_total",
			Help:      "Toasts added to the notification center by kind",
		},
		[]string{"kind"},
	)

	NotificationsVisible = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "kirimuang",
			Subsystem: "notifications",
			Name:      "visible",
			Help:      "Toasts currently in the notification list",
		},
	)

	PlatformDeliveryFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "kirimuang",
			Subsystem: "notifications",
			Name:      "platform_failures_total",
			Help:      "Swallowed failures while mirroring toasts to the platform channel",
		},
	)

	TransfersSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kirimuang",
			Subsystem: "wizard",
			Name:      "submissions_total",
			Help:      "Wizard submissions by outcome",
		},
		[]string{"outcome"},
	)

	SubmitLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "kirimuang",
			Subsystem: "wizard",
			Name:      "submit_duration_seconds",
			Help:      "Time spent waiting on the submission service",
			Buckets:   prometheus.DefBuckets,
		},
	)

	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kirimuang",
			Subsystem: "wizard",
			Name:      "validation_failures_total",
			Help:      "Blocked step transitions by field",
		},
		[]string{"field"},
	)

	RateRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kirimuang",
			Subsystem: "rates",
			Name:      "refreshes_total",
			Help:      "Exchange rate refreshes by trigger and result",
		},
		[]string{"trigger", "result"},
	)

	CurrentRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "kirimuang",
			Subsystem: "rates",
			Name:      "usd_idr",
			Help:      "Current simulated USD to IDR rate",
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "kirimuang",
			Subsystem: "wizard",
			Name:      "active_sessions",
			Help:      "Open transfer wizard sessions",
		},
	)
)
