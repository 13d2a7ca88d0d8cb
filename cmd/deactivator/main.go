package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"membership_deactivation_bot/internal/app"
	"membership_deactivation_bot/internal/infra/config"
	idb "membership_deactivation_bot/internal/infra/database"
	"membership_deactivation_bot/internal/infra/httpapi"
	"membership_deactivation_bot/internal/infra/kajabi"
	"membership_deactivation_bot/internal/infra/logger"
	"membership_deactivation_bot/internal/infra/scheduler"
	"membership_deactivation_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	log := logger.Get()
	log.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Product: %s", cfg.LogLevel, cfg.Environment, cfg.MembershipProductID)

	// Initialize Database Connection
	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to database: %v", err)
	}
	defer db.Close()
	log.Info("Database connection established successfully.")

	// Initialize Order Repository
	orderRepo := idb.NewPostgresOrderRepository(db)
	log.Info("Order repository initialized.")

	// Initialize Kajabi webhook client
	kajabiClient := kajabi.NewClient(cfg.DeactivationWebhookURL)
	log.Info("Kajabi deactivation client initialized.")

	// Initialize Telegram notification sink. The bot is send-only: no poller
	// is started, it exists to publish one report per run.
	bot, err := telebot.NewBot(telebot.Settings{Token: cfg.TelegramToken})
	if err != nil {
		log.Fatalf("FATAL: Could not create Telegram bot: %v", err)
	}
	notifier := telegram.NewTelebotAdapter(bot, cfg.NotificationChatID)
	log.Info("Telegram notification sink initialized.")

	// Initialize DeactivationService
	dispatcher := app.NewDeactivationDispatcher(kajabiClient, log)
	deactivationService := app.NewDeactivationService(
		orderRepo,
		dispatcher,
		notifier,
		log,
		cfg.MembershipProductID,
		cfg.GraceDays,
	)
	log.Info("Deactivation service initialized.")

	// Initialize ReconciliationScheduler
	reconScheduler := scheduler.NewReconciliationScheduler(deactivationService, log, cfg.CronSpecDeactivation)
	if err := reconScheduler.Start(); err != nil {
		log.Fatalf("FATAL: Could not start reconciliation scheduler: %v", err)
	}

	// Initialize HTTP trigger server
	server := httpapi.NewServer(cfg.HTTPAddr, cfg.CronSharedSecret, cfg.OrderSharedSecret, deactivationService, notifier, log)
	go func() {
		log.Infof("HTTP trigger listening on %s", server.Addr())
		if err := server.Run(); err != nil {
			log.Fatalf("FATAL: HTTP server failed: %v", err)
		}
	}()

	log.Info("Application setup complete. Scheduler and HTTP trigger are running.")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down application...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("HTTP server shutdown error: %v", err)
	}
	reconScheduler.Stop()
	log.Info("Application shut down gracefully.")
}
