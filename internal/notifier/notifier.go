package notifier

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/config"
	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/models"
)

const gmailBaseURL = "https://gmail.googleapis.com/gmail/v1"

// GmailNotifier sends the failed-payment alert email through the Gmail API,
// authenticated with an auto-refreshing OAuth2 client. Exactly one message is
// sent per Notify call, to the single configured recipient.
type GmailNotifier struct {
	Client    *http.Client
	BaseURL   string
	Sender    string
	Recipient string
}

func New(cfg config.Gmail, timeout time.Duration) *GmailNotifier {
	conf := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
	}
	token := &oauth2.Token{
		AccessToken:  cfg.AccessToken,
		RefreshToken: cfg.RefreshToken,
	}
	if cfg.RefreshToken != "" {
		// an access token coming from the environment has unknown age, so
		// mark it expired and let the token source refresh on first use
		token.Expiry = time.Now().Add(-time.Minute)
	}

	client := oauth2.NewClient(context.Background(), conf.TokenSource(context.Background(), token))
	client.Timeout = timeout

	return &GmailNotifier{
		Client:    client,
		BaseURL:   gmailBaseURL,
		Sender:    cfg.Sender,
		Recipient: cfg.Recipient,
	}
}

func (n *GmailNotifier) Notify(ctx context.Context, event *models.FailedPaymentEvent) error {
	raw := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString([]byte(n.buildMessage(event)))

	body, err := json.Marshal(map[string]string{"raw": raw})
	if err != nil {
		return fmt.Errorf("encoding gmail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.BaseURL+"/users/me/messages/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building gmail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.Client.Do(req)
	if err != nil {
		return fmt.Errorf("sending alert email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("gmail send failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}

// buildMessage renders the fixed-structure RFC 822 alert.
func (n *GmailNotifier) buildMessage(event *models.FailedPaymentEvent) string {
	subject := fmt.Sprintf("Payment failed: %s %s (%s)", event.DisplayAmount(), event.DisplayCurrency(), event.ID)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", n.Sender)
	fmt.Fprintf(&b, "To: %s\r\n", n.Recipient)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "A payment has failed and may need attention.\r\n\r\n")
	fmt.Fprintf(&b, "Payment ID: %s\r\n", event.ID)
	fmt.Fprintf(&b, "Amount: %s %s\r\n", event.DisplayAmount(), event.DisplayCurrency())
	fmt.Fprintf(&b, "Customer Email: %s\r\n", event.CustomerEmail)
	fmt.Fprintf(&b, "Failure Reason: %s\r\n", event.FailureReason)
	fmt.Fprintf(&b, "Failure Code: %s\r\n", event.FailureCode)
	fmt.Fprintf(&b, "Failed At: %s\r\n\r\n", event.FailedAtHuman())
	fmt.Fprintf(&b, "View in Stripe: %s\r\n", event.DashboardURL())

	return b.String()
}
