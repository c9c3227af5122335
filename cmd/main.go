package main

import (
	"fmt"
	"os"

	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/config"
	"github.com/Blakeyyyyyyy/agent-stripe-failed-payments-monitor-1756504701944/internal/app"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Println("Error reading config file", err)
		os.Exit(1)
	}
	myApp := &app.App{}
	myApp.Initialize(cfg)
	myApp.Run()
}
