package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/activitylog"
	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/handlers"
	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/handlers/mocks"
	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/ingress"
	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/metrics"
	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/models"
)

func newRouter(h *handlers.MonitorHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.GET("/logs", h.Logs)
	router.POST("/test", h.TestTrigger)
	router.POST("/stripe-webhook", h.StripeWebhook)
	return router
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRoot_ListsEndpoints(t *testing.T) {
	h := handlers.NewMonitorHandler(mocks.NewMockPipeline(t), mocks.NewMockEventDecoder(t), activitylog.New())
	router := newRouter(h)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "stripe-failed-payments-monitor", body["service"])
	endpoints, ok := body["endpoints"].(map[string]interface{})
	assert.True(t, ok)
	assert.Contains(t, endpoints, "POST /stripe-webhook")
}

func TestHealth(t *testing.T) {
	log := activitylog.New()
	log.Append("one", activitylog.SeverityInfo)
	log.Append("two", activitylog.SeverityInfo)
	log.Append("three", activitylog.SeverityInfo)

	h := handlers.NewMonitorHandler(mocks.NewMockPipeline(t), mocks.NewMockEventDecoder(t), log)
	router := newRouter(h)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(3), body["logs_count"])
	assert.NotEmpty(t, body["timestamp"])
	assert.NotEmpty(t, body["uptime"])
}

func TestLogs_LimitQuery(t *testing.T) {
	log := activitylog.New()
	for i := 0; i < 10; i++ {
		log.Append(fmt.Sprintf("entry-%d", i), activitylog.SeverityInfo)
	}

	h := handlers.NewMonitorHandler(mocks.NewMockPipeline(t), mocks.NewMockEventDecoder(t), log)
	router := newRouter(h)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/logs?limit=5", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(10), body["total_logs"])
	assert.Equal(t, float64(5), body["showing"])

	logs, ok := body["logs"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, logs, 5)
	first, ok := logs[0].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "entry-9", first["message"])
}

func TestLogs_InvalidLimit(t *testing.T) {
	h := handlers.NewMonitorHandler(mocks.NewMockPipeline(t), mocks.NewMockEventDecoder(t), activitylog.New())
	router := newRouter(h)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/logs?limit=abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTestTrigger_RunsPipeline(t *testing.T) {
	mockPipeline := mocks.NewMockPipeline(t)
	h := handlers.NewMonitorHandler(mockPipeline, mocks.NewMockEventDecoder(t), activitylog.New())
	router := newRouter(h)

	var processed *models.FailedPaymentEvent
	mockPipeline.EXPECT().
		ProcessFailedPayment(mock.Anything, mock.AnythingOfType("*models.FailedPaymentEvent")).
		Run(func(ctx context.Context, event *models.FailedPaymentEvent) {
			processed = event
		}).
		Return(nil).
		Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotNil(t, processed)
	assert.True(t, strings.HasPrefix(processed.ID, "pi_test_"))
	assert.Equal(t, int64(2500), processed.Amount)
	mockPipeline.AssertExpectations(t)
}

func TestTestTrigger_PipelineError(t *testing.T) {
	mockPipeline := mocks.NewMockPipeline(t)
	h := handlers.NewMonitorHandler(mockPipeline, mocks.NewMockEventDecoder(t), activitylog.New())
	router := newRouter(h)

	mockPipeline.EXPECT().
		ProcessFailedPayment(mock.Anything, mock.AnythingOfType("*models.FailedPaymentEvent")).
		Return(errors.New("failed payment event has no id")).
		Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}

func TestStripeWebhook_InvalidSignature(t *testing.T) {
	mockPipeline := mocks.NewMockPipeline(t)
	mockDecoder := mocks.NewMockEventDecoder(t)
	h := handlers.NewMonitorHandler(mockPipeline, mockDecoder, activitylog.New())
	router := newRouter(h)

	mockDecoder.EXPECT().
		Decode(mock.Anything, "t=1,v1=bad").
		Return(nil, "", fmt.Errorf("%w: no valid signature", ingress.ErrInvalidSignature)).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/stripe-webhook", strings.NewReader(`{}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=bad")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Webhook Error")
	mockPipeline.AssertNotCalled(t, "ProcessFailedPayment", mock.Anything, mock.Anything)
}

func TestStripeWebhook_IgnoredEventType(t *testing.T) {
	mockPipeline := mocks.NewMockPipeline(t)
	mockDecoder := mocks.NewMockEventDecoder(t)
	h := handlers.NewMonitorHandler(mockPipeline, mockDecoder, activitylog.New())
	router := newRouter(h)

	mockDecoder.EXPECT().
		Decode(mock.Anything, mock.Anything).
		Return(nil, "charge.succeeded", nil).
		Once()

	webhookEventsBefore := testutil.ToFloat64(metrics.WebhookEventsTotal.WithLabelValues("charge.succeeded"))
	pipelineRunsBefore := testutil.ToFloat64(metrics.PipelineRunsTotal.WithLabelValues("processed"))

	req := httptest.NewRequest(http.MethodPost, "/stripe-webhook", strings.NewReader(`{"type":"charge.succeeded"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["received"])
	mockPipeline.AssertNotCalled(t, "ProcessFailedPayment", mock.Anything, mock.Anything)

	assert.Equal(t, webhookEventsBefore+1, testutil.ToFloat64(metrics.WebhookEventsTotal.WithLabelValues("charge.succeeded")))
	assert.Equal(t, pipelineRunsBefore, testutil.ToFloat64(metrics.PipelineRunsTotal.WithLabelValues("processed")))
}

func TestStripeWebhook_FailureEventReachesPipeline(t *testing.T) {
	mockPipeline := mocks.NewMockPipeline(t)
	mockDecoder := mocks.NewMockEventDecoder(t)
	h := handlers.NewMonitorHandler(mockPipeline, mockDecoder, activitylog.New())
	router := newRouter(h)

	event := &models.FailedPaymentEvent{ID: "pi_abc", Amount: 2500, Currency: "usd"}

	mockDecoder.EXPECT().
		Decode(mock.Anything, mock.Anything).
		Return(event, "payment_intent.payment_failed", nil).
		Once()

	mockPipeline.EXPECT().
		ProcessFailedPayment(mock.Anything, event).
		Return(nil).
		Once()

	webhookEventsBefore := testutil.ToFloat64(metrics.WebhookEventsTotal.WithLabelValues("payment_intent.payment_failed"))

	req := httptest.NewRequest(http.MethodPost, "/stripe-webhook", strings.NewReader(`{"type":"payment_intent.payment_failed"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["received"])
	assert.Equal(t, webhookEventsBefore+1, testutil.ToFloat64(metrics.WebhookEventsTotal.WithLabelValues("payment_intent.payment_failed")))
	mockPipeline.AssertExpectations(t)
}

func TestStripeWebhook_PipelineErrorStillAcknowledged(t *testing.T) {
	mockPipeline := mocks.NewMockPipeline(t)
	mockDecoder := mocks.NewMockEventDecoder(t)
	h := handlers.NewMonitorHandler(mockPipeline, mockDecoder, activitylog.New())
	router := newRouter(h)

	event := &models.FailedPaymentEvent{ID: "pi_abc"}

	mockDecoder.EXPECT().
		Decode(mock.Anything, mock.Anything).
		Return(event, "charge.failed", nil).
		Once()

	mockPipeline.EXPECT().
		ProcessFailedPayment(mock.Anything, event).
		Return(errors.New("failed payment event has no id")).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/stripe-webhook", strings.NewReader(`{"type":"charge.failed"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["received"])
}
