package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	WebhookEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stripe_webhook_events_total",
			Help: "Webhook events received, by event type",
		},
		[]string{"type"},
	)

	PipelineRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "failed_payment_pipeline_runs_total",
			Help: "Pipeline executions, by terminal status",
		},
		[]string{"status"},
	)

	AlertEmailsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_alert_emails_total",
			Help: "Alert email deliveries, by outcome",
		},
		[]string{"status"},
	)

	FailureRecordsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_failure_records_total",
			Help: "Tabular store record creations, by outcome",
		},
		[]string{"status"},
	)

	FailedPaymentAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "failed_payment_amounts",
			Help:    "Distribution of failed payment amounts in major units",
			Buckets: prometheus.LinearBuckets(0, 50, 20),
		},
		[]string{"currency"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		WebhookEventsTotal,
		PipelineRunsTotal,
		AlertEmailsTotal,
		FailureRecordsTotal,
		FailedPaymentAmounts,
	)
}
