package ingress

import (
	"encoding/json"
	"errors"
	"fmt"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/models"
)

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrInvalidPayload   = errors.New("invalid webhook payload")
)

// failureEventTypes is the allow-list of event kinds that reach the pipeline.
// Everything else is acknowledged and dropped.
var failureEventTypes = map[stripe.EventType]bool{
	"payment_intent.payment_failed": true,
	"charge.failed":                 true,
	"invoice.payment_failed":        true,
}

// Ingress verifies and classifies inbound Stripe webhook deliveries.
type Ingress struct {
	// SigningSecret empty means reduced-trust mode: the payload is parsed
	// without verification. The App logs a warning at startup when this mode
	// is active.
	SigningSecret string
}

func New(signingSecret string) *Ingress {
	return &Ingress{SigningSecret: signingSecret}
}

// Decode verifies the raw delivery against the signature header, classifies
// the event, and extracts the nested payment object for qualifying types.
// It returns (nil, eventType, nil) for well-formed events outside the
// allow-list; the caller acknowledges those without invoking the pipeline.
func (i *Ingress) Decode(payload []byte, sigHeader string) (*models.FailedPaymentEvent, string, error) {
	var event stripe.Event

	if i.SigningSecret != "" {
		verified, err := webhook.ConstructEventWithOptions(payload, sigHeader, i.SigningSecret, webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}
		event = verified
	} else {
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
	}

	eventType := string(event.Type)
	if !failureEventTypes[event.Type] {
		return nil, eventType, nil
	}

	if event.Data == nil || len(event.Data.Raw) == 0 {
		return nil, eventType, fmt.Errorf("%w: event has no data object", ErrInvalidPayload)
	}
	failed, err := models.FailedPaymentFromStripe(event.Data.Raw)
	if err != nil {
		return nil, eventType, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return failed, eventType, nil
}
