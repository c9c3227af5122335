package publisher_test

import (
	"context"
	"testing"
	"time"

	kafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/config"
	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/models"
	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/publisher"
)

// unreachableWriter targets a closed loopback port so every write attempt
// fails immediately without a broker.
func unreachableWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:            kafka.TCP("127.0.0.1:1"),
		Topic:           topic,
		Balancer:        &kafka.LeastBytes{},
		MaxAttempts:     1,
		WriteBackoffMin: time.Millisecond,
		WriteBackoffMax: time.Millisecond,
	}
}

func TestNewKafkaPublisher_AppliesRetryDefaults(t *testing.T) {
	p := publisher.NewKafkaPublisher("localhost:9092", []string{models.PaymentFailureProcessedTopic}, config.RetryConfig{})

	assert.Equal(t, 5, p.RetryConfig.MaxAttempts)
	assert.Equal(t, 100*time.Millisecond, p.RetryConfig.BaseDelay)
	assert.Equal(t, 10*time.Second, p.RetryConfig.MaxDelay)
	assert.Contains(t, p.Writers, models.PaymentFailureProcessedTopic)
}

func TestPublish_NoWriterForTopic(t *testing.T) {
	p := publisher.NewKafkaPublisher("localhost:9092", []string{models.PaymentFailureProcessedTopic}, config.RetryConfig{})

	err := p.Publish(context.Background(), "payments.unknown", models.PaymentFailureProcessedEvent{PaymentID: "pi_123"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no writer configured for topic payments.unknown")
}

func TestPublish_MarshalError(t *testing.T) {
	p := publisher.NewKafkaPublisher("localhost:9092", []string{models.PaymentFailureProcessedTopic}, config.RetryConfig{})

	err := p.Publish(context.Background(), models.PaymentFailureProcessedTopic, make(chan int))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error marshaling message")
}

func TestPublish_ExhaustsRetries(t *testing.T) {
	retryConfig := config.RetryConfig{
		MaxAttempts: 2,
		BaseDelay:   time.Millisecond,
		MaxDelay:    2 * time.Millisecond,
		Jitter:      false,
	}
	p := publisher.NewKafkaPublisher("127.0.0.1:1", []string{models.PaymentFailureProcessedTopic}, retryConfig)
	p.Writers[models.PaymentFailureProcessedTopic] = unreachableWriter(models.PaymentFailureProcessedTopic)

	err := p.Publish(context.Background(), models.PaymentFailureProcessedTopic, models.PaymentFailureProcessedEvent{PaymentID: "pi_123"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
}

func TestPublish_ContextCancelledDuringRetry(t *testing.T) {
	retryConfig := config.RetryConfig{
		MaxAttempts: 5,
		// long enough that the backoff sleep can only be interrupted by the
		// cancelled context
		BaseDelay: time.Minute,
		MaxDelay:  time.Minute,
		Jitter:    false,
	}
	p := publisher.NewKafkaPublisher("127.0.0.1:1", []string{models.PaymentFailureProcessedTopic}, retryConfig)
	p.Writers[models.PaymentFailureProcessedTopic] = unreachableWriter(models.PaymentFailureProcessedTopic)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := p.Publish(ctx, models.PaymentFailureProcessedTopic, models.PaymentFailureProcessedEvent{PaymentID: "pi_123"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "context cancelled during retry")
	assert.Less(t, time.Since(start), 5*time.Second)
}
