package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/adipramono/ramalan-cuaca/internal/api/http"
	"github.com/adipramono/ramalan-cuaca/internal/config"
	"github.com/adipramono/ramalan-cuaca/internal/forecast"
	"github.com/adipramono/ramalan-cuaca/internal/forecast/providers"
	"github.com/adipramono/ramalan-cuaca/internal/logging"
)

func main() {
	serve := flag.Bool("serve", false, "serve the message over HTTP instead of printing once")
	area := flag.String("area", "", "BMKG adm4 area code, overrides AREA_CODE")
	policy := flag.String("policy", "", "message layout (siang-malam or hari-ini), overrides FORECAST_POLICY")
	flag.Parse()

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *area != "" {
		cfg.AreaCode = *area
	}
	if *policy != "" {
		cfg.Policy = *policy
	}

	pol, err := forecast.PolicyByName(cfg.Policy)
	if err != nil {
		log.Fatalf("invalid FORECAST_POLICY: %v", err)
	}

	logger := logging.New(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	// Shared HTTP client for the outbound BMKG call.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	client := providers.NewBMKGProvider(httpClient, cfg.BaseURL)
	retriever := forecast.NewRetriever(client, cfg.AreaCode, logger)
	formatter := forecast.NewFormatter(pol, logger)

	if *serve {
		runServe(cfg, retriever, formatter, logger)
		return
	}

	runOnce(retriever, formatter)
}

// runOnce fetches once and prints the message for copy-pasting. Retrieval
// failure is reported as printed text; the exit status stays 0.
func runOnce(retriever *forecast.Retriever, formatter *forecast.Formatter) {
	fmt.Println("Fetching weather data from BMKG...")

	resp := retriever.Forecast(context.Background(), "")
	if resp == nil {
		fmt.Println("⚠️ Tidak dapat mengambil data cuaca dari BMKG. Silakan periksa koneksi internet Anda atau coba lagi nanti.")
		return
	}

	message := formatter.Format(resp, time.Now())

	banner := strings.Repeat("=", 50)
	fmt.Println("\n" + banner)
	fmt.Println("WEATHER FORECAST")
	fmt.Println(banner)
	fmt.Println(message)
	fmt.Println(banner)
}

func runServe(cfg *config.AppConfig, retriever *forecast.Retriever, formatter *forecast.Formatter, logger *logging.Logger) {
	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "ramalan-cuaca",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(fiberlogger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "ramalan-cuaca",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, retriever, formatter)

	go func() {
		logger.Infof("serving forecast messages on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Errorf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Errorf("error during shutdown: %v", err)
	}
}
