package app

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/config"
	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/activitylog"
	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/enrichment"
	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/handlers"
	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/ingress"
	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/metrics"
	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/notifier"
	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/publisher"
	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/recorder"
	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/service"
)

type App struct {
	config *config.Config
	Router *gin.Engine
	Log    *activitylog.Log
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	a.Log = activitylog.New()

	metrics.RegisterMetrics()

	enricher := enrichment.New(cfg.Stripe.APIKey)
	gmailNotifier := notifier.New(cfg.Gmail, cfg.HTTP.ClientTimeout)
	airtableRecorder := recorder.New(cfg.Airtable, cfg.HTTP.ClientTimeout)

	var processedPublisher service.Publisher
	if cfg.Kafka.Brokers != "" {
		publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
		processedPublisher = publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.Kafka.GetRetryConfig())
	}

	pipeline := service.NewPaymentFailureService(
		a.Log,
		enricher,
		gmailNotifier,
		airtableRecorder,
		processedPublisher,
		cfg.HTTP.ClientTimeout,
	)

	if cfg.Stripe.WebhookSecret == "" {
		logrus.Warn("STRIPE_WEBHOOK_SECRET is not set; webhook payloads are accepted without signature verification")
	}
	decoder := ingress.New(cfg.Stripe.WebhookSecret)
	monitorHandler := handlers.NewMonitorHandler(pipeline, decoder, a.Log)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(monitorHandler)

	a.Log.Append("Stripe failed-payments monitor started", activitylog.SeverityInfo)
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}
