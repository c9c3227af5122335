package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/activitylog"
	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/metrics"
	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/models"
)

const defaultCallTimeout = 10 * time.Second

// Enricher resolves the customer email behind a payment's customer reference.
type Enricher interface {
	CustomerEmail(ctx context.Context, customerRef string) (string, error)
}

// Notifier delivers the alert email for a failed payment.
type Notifier interface {
	Notify(ctx context.Context, event *models.FailedPaymentEvent) error
}

// Recorder persists a failed payment into the external tabular store.
type Recorder interface {
	Record(ctx context.Context, event *models.FailedPaymentEvent) error
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// PaymentFailureService orchestrates the failed-payment pipeline:
// enrichment, alert notification, record creation and the optional event
// fan-out, for a single event, independent of the trigger source.
//
// Enrichment, notification, storage and publishing are all best-effort: their
// failures degrade to activity-log entries and never abort the run. There is
// no dedup on the payment id, so an at-least-once redelivery produces a
// second alert and a second store row.
type PaymentFailureService struct {
	Log       *activitylog.Log
	Enricher  Enricher
	Notifier  Notifier
	Recorder  Recorder
	Publisher Publisher // nil when no brokers are configured

	CallTimeout time.Duration
}

func NewPaymentFailureService(
	log *activitylog.Log,
	enricher Enricher,
	notifier Notifier,
	recorder Recorder,
	publisher Publisher,
	callTimeout time.Duration,
) *PaymentFailureService {
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}
	return &PaymentFailureService{
		Log:         log,
		Enricher:    enricher,
		Notifier:    notifier,
		Recorder:    recorder,
		Publisher:   publisher,
		CallTimeout: callTimeout,
	}
}

// ProcessFailedPayment runs one event through the pipeline. It returns an
// error only when the event itself is unusable; downstream failures are
// absorbed and the run still terminates as processed.
func (s *PaymentFailureService) ProcessFailedPayment(ctx context.Context, event *models.FailedPaymentEvent) error {
	if event == nil || event.ID == "" {
		s.Log.Append("Error processing failed payment: event has no id", activitylog.SeverityError)
		metrics.PipelineRunsTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("failed payment event has no id")
	}

	traceID := uuid.New().String()
	log := logrus.WithFields(logrus.Fields{"payment_id": event.ID, "trace_id": traceID})

	s.Log.Append(fmt.Sprintf("Processing failed payment: %s", event.ID), activitylog.SeverityInfo)

	if event.CustomerRef != "" {
		cctx, cancel := context.WithTimeout(ctx, s.CallTimeout)
		email, err := s.Enricher.CustomerEmail(cctx, event.CustomerRef)
		cancel()
		if err != nil {
			log.Warnf("Could not fetch customer details: %s", err.Error())
			s.Log.Append(fmt.Sprintf("Could not fetch customer details for %s: %s", event.CustomerRef, err.Error()), activitylog.SeverityWarn)
		} else {
			event.CustomerEmail = email
		}
	}

	if err := s.Notifier.Notify(ctx, event); err != nil {
		log.Errorf("Failed to send alert email: %s", err.Error())
		s.Log.Append(fmt.Sprintf("Failed to send alert email for %s: %s", event.ID, err.Error()), activitylog.SeverityError)
		metrics.AlertEmailsTotal.WithLabelValues("error").Inc()
	} else {
		s.Log.Append(fmt.Sprintf("Alert email sent for payment %s", event.ID), activitylog.SeveritySuccess)
		metrics.AlertEmailsTotal.WithLabelValues("sent").Inc()
	}

	if err := s.Recorder.Record(ctx, event); err != nil {
		log.Errorf("Failed to create store record: %s", err.Error())
		s.Log.Append(fmt.Sprintf("Failed to create store record for %s: %s", event.ID, err.Error()), activitylog.SeverityError)
		metrics.FailureRecordsTotal.WithLabelValues("error").Inc()
	} else {
		s.Log.Append(fmt.Sprintf("Store record created for payment %s", event.ID), activitylog.SeveritySuccess)
		metrics.FailureRecordsTotal.WithLabelValues("created").Inc()
	}

	if s.Publisher != nil {
		s.publishProcessed(ctx, event, traceID, log)
	}

	s.Log.Append(fmt.Sprintf("Successfully processed failed payment: %s", event.ID), activitylog.SeveritySuccess)
	metrics.PipelineRunsTotal.WithLabelValues("processed").Inc()
	metrics.FailedPaymentAmounts.WithLabelValues(event.DisplayCurrency()).Observe(float64(event.Amount) / 100)

	return nil
}

func (s *PaymentFailureService) publishProcessed(ctx context.Context, event *models.FailedPaymentEvent, traceID string, log *logrus.Entry) {
	processed := models.PaymentFailureProcessedEvent{
		PaymentID:     event.ID,
		Amount:        event.Amount,
		Currency:      event.DisplayCurrency(),
		CustomerEmail: event.CustomerEmail,
		FailureReason: event.FailureReason,
		FailureCode:   event.FailureCode,
		TraceID:       traceID,
		ProcessedAt:   time.Now().UTC(),
	}

	pctx, cancel := context.WithTimeout(ctx, s.CallTimeout)
	defer cancel()
	if err := s.Publisher.Publish(pctx, models.PaymentFailureProcessedTopic, processed); err != nil {
		log.Errorf("Failed to publish processed event: %s", err.Error())
		s.Log.Append(fmt.Sprintf("Failed to publish processed event for %s: %s", event.ID, err.Error()), activitylog.SeverityError)
	}
}
