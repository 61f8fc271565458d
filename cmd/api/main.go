package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travel-concierge/config"
	_ "travel-concierge/docs" // Swagger docs
	"travel-concierge/internal/agent"
	"travel-concierge/internal/agent/orchestrator"
	"travel-concierge/internal/agent/tools"
	"travel-concierge/internal/decision"
	"travel-concierge/internal/httpserver"
	"travel-concierge/internal/parser"
	"travel-concierge/internal/router"
	"travel-concierge/pkg/kayak"
	"travel-concierge/pkg/llmprovider"
	"travel-concierge/pkg/log"
	"travel-concierge/pkg/wttr"
)

// @title       Travel Concierge API
// @description French-language travel assistant with rule-based routing, LLM escalation, and live weather, flight, and hotel lookups.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Travel Concierge...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}

	retryDelay, err := time.ParseDuration(cfg.LLM.RetryDelay)
	if err != nil {
		logger.Warnf(ctx, "Invalid llm.retry_delay %q, using 1s: %v", cfg.LLM.RetryDelay, err)
		retryDelay = time.Second
	}
	maxTotalTimeout, err := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	if err != nil {
		logger.Warnf(ctx, "Invalid llm.max_total_timeout %q, using 180s: %v", cfg.LLM.MaxTotalTimeout, err)
		maxTotalTimeout = 180 * time.Second
	}

	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotalTimeout,
	}, logger)
	logger.Infof(ctx, "LLM manager initialized with %d provider(s)", len(providers))

	// 4. Scraper clients
	weatherClient := wttr.New(wttr.Config{
		BaseURL: cfg.Weather.BaseURL,
		Timeout: time.Duration(cfg.Weather.TimeoutSeconds) * time.Second,
	})
	kayakClient := kayak.New(kayak.Config{
		BaseURL:       cfg.Kayak.BaseURL,
		FlightTimeout: time.Duration(cfg.Kayak.FlightTimeoutSeconds) * time.Second,
		HotelTimeout:  time.Duration(cfg.Kayak.HotelTimeoutSeconds) * time.Second,
	})

	// 5. Decision pipeline
	extractor, err := parser.New(cfg.Agent.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Agent.Timezone, err)
		extractor, _ = parser.New("UTC")
	}

	classifier := router.New(llm, logger)
	arbitrator := decision.New(llm, logger)

	registry := agent.NewToolRegistry()
	registry.Register(tools.NewWeatherTool(weatherClient))
	registry.Register(tools.NewFlightsTool(kayakClient))
	registry.Register(tools.NewHotelsTool(kayakClient))

	uc := orchestrator.New(classifier, extractor, arbitrator, registry, llm, logger)
	logger.Info(ctx, "Decision pipeline initialized")

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		RateLimit:   cfg.RateLimit,
		Processor:   uc,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
