package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	Stripe
	Gmail
	Airtable
	Kafka
	HTTP
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

type Stripe struct {
	APIKey string `env:"STRIPE_API_KEY"`
	// An empty WebhookSecret enables the reduced-trust mode: webhook payloads
	// are parsed without signature verification.
	WebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`
}

type Gmail struct {
	ClientID     string `env:"GMAIL_CLIENT_ID"`
	ClientSecret string `env:"GMAIL_CLIENT_SECRET"`
	AccessToken  string `env:"GMAIL_ACCESS_TOKEN"`
	RefreshToken string `env:"GMAIL_REFRESH_TOKEN"`
	Sender       string `env:"GMAIL_SENDER"`
	Recipient    string `env:"ALERT_RECIPIENT"`
}

type Airtable struct {
	Key       string `env:"AIRTABLE_API_KEY"`
	BaseID    string `env:"AIRTABLE_BASE_ID"`
	TableName string `env:"AIRTABLE_TABLE_NAME" envDefault:"Failed Payments"`
}

type Kafka struct {
	// Empty Brokers disables the processed-failure event publisher.
	Brokers       string `env:"KAFKA_BROKERS"`
	PublishTopics string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"payments.failed.processed"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type HTTP struct {
	// Bound applied to every outbound call (Stripe, Gmail, Airtable, Kafka).
	ClientTimeout time.Duration `env:"HTTP_CLIENT_TIMEOUT" envDefault:"10s"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}
