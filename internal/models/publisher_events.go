package models

import "time"

const (
	PaymentFailureProcessedTopic = "payments.failed.processed"
)

type PaymentFailureProcessedEvent struct {
	PaymentID     string    `json:"payment_id"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	CustomerEmail string    `json:"customer_email"`
	FailureReason string    `json:"failure_reason"`
	FailureCode   string    `json:"failure_code"`
	TraceID       string    `json:"trace_id"`
	ProcessedAt   time.Time `json:"processed_at"`
}
