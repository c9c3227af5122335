package recorder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/config"
	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/models"
)

const airtableBaseURL = "https://api.airtable.com/v0"

// AirtableRecorder persists one row per processed failed payment into the
// configured Airtable base. This row is the system's only durable artifact.
type AirtableRecorder struct {
	Client  *http.Client
	BaseURL string
	Key     string
	BaseID  string
	Table   string
}

func New(cfg config.Airtable, timeout time.Duration) *AirtableRecorder {
	return &AirtableRecorder{
		Client:  &http.Client{Timeout: timeout},
		BaseURL: airtableBaseURL,
		Key:     cfg.Key,
		BaseID:  cfg.BaseID,
		Table:   cfg.TableName,
	}
}

type recordFields struct {
	Fields map[string]interface{} `json:"fields"`
}

type createRequest struct {
	Records []recordFields `json:"records"`
}

func (r *AirtableRecorder) Record(ctx context.Context, event *models.FailedPaymentEvent) error {
	fields := map[string]interface{}{
		"Payment ID":           event.ID,
		"Amount":               event.DecimalAmount(),
		"Currency":             event.DisplayCurrency(),
		"Customer Email":       event.CustomerEmail,
		"Customer ID":          event.CustomerRef,
		"Failure Reason":       event.FailureReason,
		"Failure Code":         event.FailureCode,
		"Failed At":            event.FailedAtISO(),
		"Stripe Dashboard URL": event.DashboardURL(),
		"Status":               "Failed",
		"Notes":                fmt.Sprintf("Recorded automatically for payment %s", event.ID),
	}

	body, err := json.Marshal(createRequest{Records: []recordFields{{Fields: fields}}})
	if err != nil {
		return fmt.Errorf("encoding airtable request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/%s", r.BaseURL, r.BaseID, url.PathEscape(r.Table))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building airtable request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.Key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return fmt.Errorf("creating airtable record: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("airtable create failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}
