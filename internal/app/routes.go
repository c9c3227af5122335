package app

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/handlers"
)

func (a *App) RegisterRoutes(h *handlers.MonitorHandler) {
	a.Router.GET("/", h.Root)
	a.Router.GET("/health", h.Health)
	a.Router.GET("/logs", h.Logs)
	a.Router.POST("/test", h.TestTrigger)
	a.Router.POST("/stripe-webhook", h.StripeWebhook)
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
