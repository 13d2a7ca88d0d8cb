package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application. It is constructed
// once at startup and passed in explicitly; nothing reads the environment
// after Load returns.
type AppConfig struct {
	DatabaseURL            string
	TelegramToken          string
	NotificationChatID     int64
	DeactivationWebhookURL string
	CronSharedSecret       string // bearer secret for the HTTP run trigger
	OrderSharedSecret      string // bearer secret for the order announcement hook
	MembershipProductID    string
	HTTPAddr               string
	CronSpecDeactivation   string
	GraceDays              int
	LogLevel               string
	Environment            string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}

	chatIDStr := os.Getenv("NOTIFICATION_CHAT_ID")
	if chatIDStr == "" {
		return nil, fmt.Errorf("NOTIFICATION_CHAT_ID is not set")
	}
	cfg.NotificationChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid NOTIFICATION_CHAT_ID: %w", err)
	}

	cfg.DeactivationWebhookURL = os.Getenv("DEACTIVATION_WEBHOOK_URL")
	if cfg.DeactivationWebhookURL == "" {
		return nil, fmt.Errorf("DEACTIVATION_WEBHOOK_URL is not set")
	}

	cfg.CronSharedSecret = os.Getenv("CRON_SHARED_SECRET")
	if cfg.CronSharedSecret == "" {
		return nil, fmt.Errorf("CRON_SHARED_SECRET is not set")
	}

	cfg.OrderSharedSecret = os.Getenv("ORDER_SHARED_SECRET")
	if cfg.OrderSharedSecret == "" {
		return nil, fmt.Errorf("ORDER_SHARED_SECRET is not set")
	}

	cfg.MembershipProductID = os.Getenv("MEMBERSHIP_PRODUCT_ID")
	if cfg.MembershipProductID == "" {
		return nil, fmt.Errorf("MEMBERSHIP_PRODUCT_ID is not set")
	}

	cfg.HTTPAddr = os.Getenv("HTTP_ADDR")
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}

	cfg.CronSpecDeactivation = os.Getenv("CRON_SPEC_DEACTIVATION")
	if cfg.CronSpecDeactivation == "" {
		cfg.CronSpecDeactivation = "0 6 * * *" // Default: 06:00 daily
	}

	graceDaysStr := os.Getenv("GRACE_DAYS")
	if graceDaysStr == "" {
		cfg.GraceDays = 2 // Default grace period past the renewal anniversary
	} else {
		cfg.GraceDays, err = strconv.Atoi(graceDaysStr)
		if err != nil || cfg.GraceDays < 0 {
			return nil, fmt.Errorf("invalid GRACE_DAYS: %q", graceDaysStr)
		}
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}
