package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	// EmailNotAvailable is the sentinel used until enrichment resolves the
	// customer's address.
	EmailNotAvailable = "not available"

	ReasonUnknown = "unknown"
	CodeNone      = "none"
)

// FailedPaymentEvent is the normalized shape every trigger source (webhook or
// test endpoint) hands to the pipeline. It is immutable except for
// CustomerEmail, which enrichment populates at most once before any consumer
// reads it.
type FailedPaymentEvent struct {
	ID             string `json:"id"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	CustomerRef    string `json:"customer_ref,omitempty"`
	CustomerEmail  string `json:"customer_email"`
	FailureReason  string `json:"failure_reason"`
	FailureCode    string `json:"failure_code"`
	FailureMessage string `json:"failure_message"`
	CreatedAt      int64  `json:"created_at"`
}

// stripePaymentObject covers the fields this service reads from the nested
// object of payment_intent.payment_failed, charge.failed and
// invoice.payment_failed events. Customer is the unexpanded string reference.
type stripePaymentObject struct {
	ID             string `json:"id"`
	Amount         int64  `json:"amount"`
	AmountDue      int64  `json:"amount_due"`
	Currency       string `json:"currency"`
	Customer       string `json:"customer"`
	FailureCode    string `json:"failure_code"`
	FailureMessage string `json:"failure_message"`
	Created        int64  `json:"created"`

	LastPaymentError *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"last_payment_error"`
}

// FailedPaymentFromStripe decodes the nested payment object of a qualifying
// webhook event into a FailedPaymentEvent with all sentinels applied.
func FailedPaymentFromStripe(raw json.RawMessage) (*FailedPaymentEvent, error) {
	var obj stripePaymentObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("decoding payment object: %w", err)
	}
	if obj.ID == "" {
		return nil, fmt.Errorf("payment object has no id")
	}

	amount := obj.Amount
	if amount == 0 {
		// invoices carry amount_due instead of amount
		amount = obj.AmountDue
	}

	event := &FailedPaymentEvent{
		ID:             obj.ID,
		Amount:         amount,
		Currency:       obj.Currency,
		CustomerRef:    obj.Customer,
		CustomerEmail:  EmailNotAvailable,
		FailureReason:  ReasonUnknown,
		FailureCode:    obj.FailureCode,
		FailureMessage: obj.FailureMessage,
		CreatedAt:      obj.Created,
	}
	if event.Currency == "" {
		event.Currency = "USD"
	}
	if event.FailureCode == "" {
		event.FailureCode = CodeNone
	}
	if event.FailureMessage == "" {
		event.FailureMessage = ReasonUnknown
	}
	if obj.LastPaymentError != nil {
		if obj.LastPaymentError.Message != "" {
			event.FailureMessage = obj.LastPaymentError.Message
		}
		if obj.LastPaymentError.Code != "" {
			event.FailureCode = obj.LastPaymentError.Code
		}
	}
	if event.FailureMessage != ReasonUnknown {
		event.FailureReason = event.FailureMessage
	}
	return event, nil
}

// NewTestFailedPayment synthesizes the fixed sample event used by the manual
// trigger endpoint.
func NewTestFailedPayment() *FailedPaymentEvent {
	return &FailedPaymentEvent{
		ID:             fmt.Sprintf("pi_test_%d", time.Now().Unix()),
		Amount:         2500,
		Currency:       "usd",
		CustomerEmail:  EmailNotAvailable,
		FailureReason:  "Your card was declined",
		FailureCode:    "card_declined",
		FailureMessage: "Your card was declined",
		CreatedAt:      time.Now().Unix(),
	}
}

// DisplayAmount renders the minor-unit amount for humans, e.g. "$25.00".
func (e *FailedPaymentEvent) DisplayAmount() string {
	return fmt.Sprintf("$%.2f", float64(e.Amount)/100)
}

// DecimalAmount renders the amount as a bare decimal string, e.g. "25.00".
func (e *FailedPaymentEvent) DecimalAmount() string {
	return fmt.Sprintf("%.2f", float64(e.Amount)/100)
}

func (e *FailedPaymentEvent) DisplayCurrency() string {
	return strings.ToUpper(e.Currency)
}

// FailedAt returns the processor-supplied failure time, falling back to now
// when the payload carried none.
func (e *FailedPaymentEvent) FailedAt() time.Time {
	if e.CreatedAt == 0 {
		return time.Now().UTC()
	}
	return time.Unix(e.CreatedAt, 0).UTC()
}

func (e *FailedPaymentEvent) FailedAtISO() string {
	return e.FailedAt().Format(time.RFC3339)
}

func (e *FailedPaymentEvent) FailedAtHuman() string {
	return e.FailedAt().Format("Jan 2, 2006 15:04:05 MST")
}

func (e *FailedPaymentEvent) DashboardURL() string {
	return "https://dashboard.stripe.com/payments/" + e.ID
}
