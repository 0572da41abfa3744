// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QuotesComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_computations_total",
			Help: "Total number of quote computations by presentation",
		},
		[]string{"presentation"},
	)

	LeadsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_submissions_total",
			Help: "Total number of lead submissions by outcome",
		},
		[]string{"status"},
	)

	LeadSubmitDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "lead_submission_duration_seconds",
			Help: "Duration of lead submission processing in seconds",
		},
		[]string{"status"},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_notifications_sent_total",
			Help: "Total number of lead notifications by channel and outcome",
		},
		[]string{"channel", "status"},
	)

	WizardSessionsSaved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wizard_sessions_saved_total",
			Help: "Total number of wizard session writes by outcome",
		},
		[]string{"status"},
	)
)
