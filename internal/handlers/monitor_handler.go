package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/activitylog"
	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/metrics"
	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/models"
)

// Pipeline runs one failed-payment event end to end.
type Pipeline interface {
	ProcessFailedPayment(ctx context.Context, event *models.FailedPaymentEvent) error
}

// EventDecoder verifies and classifies a raw webhook delivery. A nil event
// with a nil error means the type is outside the allow-list and should only
// be acknowledged.
type EventDecoder interface {
	Decode(payload []byte, sigHeader string) (*models.FailedPaymentEvent, string, error)
}

type MonitorHandler struct {
	Pipeline  Pipeline
	Decoder   EventDecoder
	Log       *activitylog.Log
	StartedAt time.Time
}

func NewMonitorHandler(pipeline Pipeline, decoder EventDecoder, log *activitylog.Log) *MonitorHandler {
	return &MonitorHandler{
		Pipeline:  pipeline,
		Decoder:   decoder,
		Log:       log,
		StartedAt: time.Now(),
	}
}

// GET /
func (h *MonitorHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "stripe-failed-payments-monitor",
		"status":  "running",
		"endpoints": gin.H{
			"GET /":                "service descriptor",
			"GET /health":          "liveness probe",
			"GET /logs":            "recent activity, most recent first (limit query param)",
			"GET /metrics":         "prometheus metrics",
			"POST /test":           "run a synthetic failed payment through the pipeline",
			"POST /stripe-webhook": "Stripe webhook ingress",
		},
	})
}

// GET /health
func (h *MonitorHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"uptime":     time.Since(h.StartedAt).String(),
		"logs_count": h.Log.Len(),
	})
}

// GET /logs?limit=N
func (h *MonitorHandler) Logs(c *gin.Context) {
	limit := activitylog.DefaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	entries := h.Log.Recent(limit)
	c.JSON(http.StatusOK, gin.H{
		"logs":       entries,
		"total_logs": h.Log.Len(),
		"showing":    len(entries),
	})
}

// POST /test
func (h *MonitorHandler) TestTrigger(c *gin.Context) {
	event := models.NewTestFailedPayment()

	if err := h.Pipeline.ProcessFailedPayment(c.Request.Context(), event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Test failed payment processed",
		"test_data": event,
	})
}

// POST /stripe-webhook
//
// Deliveries are at-least-once and there is no dedup on the payment id, so a
// redelivered event produces a second alert and a second store row.
func (h *MonitorHandler) StripeWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.String(http.StatusBadRequest, "Webhook Error: %v", err)
		return
	}

	event, eventType, err := h.Decoder.Decode(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		logrus.Errorf("Webhook rejected: %s", err.Error())
		c.String(http.StatusBadRequest, "Webhook Error: %v", err)
		return
	}

	if eventType != "" {
		metrics.WebhookEventsTotal.WithLabelValues(eventType).Inc()
	}

	if event == nil {
		// outside the allow-list: acknowledge and drop
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	if err := h.Pipeline.ProcessFailedPayment(c.Request.Context(), event); err != nil {
		logrus.Errorf("Pipeline error for payment %s: %s", event.ID, err.Error())
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
