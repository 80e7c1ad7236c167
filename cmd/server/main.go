package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitlife/config"
	"fitlife/internal/auth"
	"fitlife/internal/db"
	"fitlife/internal/foodpolicy"
	"fitlife/internal/gpt"
	"fitlife/internal/payment"
	"fitlife/internal/plan"
	"fitlife/internal/server"
	"fitlife/internal/subscription"
	"fitlife/pkg/logger"
)

func main() {
	// Initialize logger
	l := logger.New()
	l.Info("Starting FitLife API...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l.Fatal("Failed to load config", err)
	}

	// Validate critical configuration
	if cfg.GPT.APIKey == "" {
		l.Fatal("GPT API key is not configured")
	}
	if cfg.Stripe.SecretKey == "" || cfg.Stripe.WebhookKey == "" {
		l.Fatal("Stripe configuration is incomplete")
	}
	if cfg.JWT.Secret == "" {
		l.Fatal("JWT secret is not configured")
	}

	// Initialize database connection with retry
	var database *db.PostgresDB
	maxRetries := 5
	for i := 0; i < maxRetries; i++ {
		database, err = db.NewPostgresDB(cfg.DB)
		if err == nil {
			break
		}
		l.Error("Failed to connect to database, retrying...", err)
		time.Sleep(time.Duration(i+1) * time.Second)
	}
	if database == nil {
		l.Fatal("Failed to connect to database after multiple attempts", err)
	}
	defer database.Close()

	// Initialize Stripe client
	stripeClient := payment.NewStripeClient(cfg.Stripe)

	// Initialize GPT client
	gptClient := gpt.NewClient(cfg.GPT.APIKey).WithModel(cfg.GPT.Model)

	tokens := auth.NewManager(cfg.JWT.Secret, cfg.JWT.TTL)
	generator := plan.NewGenerator(gptClient, foodpolicy.Default(), cfg.GPT.Timeout, l)
	ledger := subscription.NewLedger(database, stripeClient, l)

	api := server.NewAPI(database, tokens, generator, ledger, stripeClient, l)
	httpServer := server.NewServer(cfg.Server.Port, api, cfg.Server.CORSOrigins, l)

	go func() {
		if err := httpServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("Failed to start HTTP server", err)
		}
	}()

	// Wait for termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	l.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Stop(ctx); err != nil {
		l.Error("Error during HTTP server shutdown", err)
	}

	l.Info("Server stopped successfully")
}
