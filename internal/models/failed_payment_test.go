package models_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/models"
)

func TestFailedPaymentFromStripe_PaymentIntent(t *testing.T) {
	raw := json.RawMessage(`{
		"id": "pi_abc",
		"amount": 2500,
		"currency": "usd",
		"customer": "cus_123",
		"created": 1756290000,
		"last_payment_error": {
			"code": "card_declined",
			"message": "Your card was declined."
		}
	}`)

	event, err := models.FailedPaymentFromStripe(raw)

	assert.NoError(t, err)
	assert.Equal(t, "pi_abc", event.ID)
	assert.Equal(t, int64(2500), event.Amount)
	assert.Equal(t, "cus_123", event.CustomerRef)
	assert.Equal(t, models.EmailNotAvailable, event.CustomerEmail)
	assert.Equal(t, "card_declined", event.FailureCode)
	assert.Equal(t, "Your card was declined.", event.FailureReason)
	assert.Equal(t, int64(1756290000), event.CreatedAt)
}

func TestFailedPaymentFromStripe_ChargeFields(t *testing.T) {
	raw := json.RawMessage(`{
		"id": "ch_1",
		"amount": 999,
		"currency": "eur",
		"failure_code": "insufficient_funds",
		"failure_message": "Insufficient funds."
	}`)

	event, err := models.FailedPaymentFromStripe(raw)

	assert.NoError(t, err)
	assert.Equal(t, "insufficient_funds", event.FailureCode)
	assert.Equal(t, "Insufficient funds.", event.FailureReason)
	assert.Equal(t, "EUR", event.DisplayCurrency())
}

func TestFailedPaymentFromStripe_InvoiceAmountDue(t *testing.T) {
	raw := json.RawMessage(`{"id": "in_1", "amount_due": 5000, "currency": "usd"}`)

	event, err := models.FailedPaymentFromStripe(raw)

	assert.NoError(t, err)
	assert.Equal(t, int64(5000), event.Amount)
	assert.Equal(t, models.CodeNone, event.FailureCode)
	assert.Equal(t, models.ReasonUnknown, event.FailureReason)
}

func TestFailedPaymentFromStripe_Defaults(t *testing.T) {
	event, err := models.FailedPaymentFromStripe(json.RawMessage(`{"id": "pi_1"}`))

	assert.NoError(t, err)
	assert.Equal(t, "USD", event.Currency)
	assert.Equal(t, models.EmailNotAvailable, event.CustomerEmail)
	assert.Empty(t, event.CustomerRef)
}

func TestFailedPaymentFromStripe_MissingID(t *testing.T) {
	_, err := models.FailedPaymentFromStripe(json.RawMessage(`{"amount": 100}`))
	assert.Error(t, err)
}

func TestFailedPaymentFromStripe_MalformedJSON(t *testing.T) {
	_, err := models.FailedPaymentFromStripe(json.RawMessage(`{"id":`))
	assert.Error(t, err)
}

func TestDisplayHelpers(t *testing.T) {
	event := &models.FailedPaymentEvent{
		ID:        "pi_test_1",
		Amount:    2500,
		Currency:  "usd",
		CreatedAt: time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC).Unix(),
	}

	assert.Equal(t, "$25.00", event.DisplayAmount())
	assert.Equal(t, "25.00", event.DecimalAmount())
	assert.Equal(t, "USD", event.DisplayCurrency())
	assert.Equal(t, "2026-08-27T12:00:00Z", event.FailedAtISO())
	assert.Equal(t, "https://dashboard.stripe.com/payments/pi_test_1", event.DashboardURL())
}

func TestNewTestFailedPayment(t *testing.T) {
	event := models.NewTestFailedPayment()

	assert.True(t, strings.HasPrefix(event.ID, "pi_test_"))
	assert.Equal(t, int64(2500), event.Amount)
	assert.Equal(t, "$25.00", event.DisplayAmount())
	assert.Equal(t, "USD", event.DisplayCurrency())
	assert.Equal(t, models.EmailNotAvailable, event.CustomerEmail)
	assert.Equal(t, "card_declined", event.FailureCode)
}
