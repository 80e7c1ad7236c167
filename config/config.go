package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DB struct {
		Host         string
		Port         string
		User         string
		Password     string
		DBName       string
		SSLMode      string
		MaxOpenConns int
		MaxIdleConns int
		ConnLifetime time.Duration
	}
	Stripe struct {
		SecretKey  string
		PublicKey  string
		WebhookKey string
	}
	GPT struct {
		APIKey  string
		Model   string
		Timeout time.Duration
	}
	JWT struct {
		Secret string
		TTL    time.Duration
	}
	Server struct {
		Port        string
		CORSOrigins []string
	}
	ShutdownTimeout time.Duration
}

// Load loads the configuration
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.fitlife")

	// Set default values
	v.SetDefault("ShutdownTimeout", 10*time.Second)
	v.SetDefault("GPT.Model", "gpt-4")
	v.SetDefault("GPT.Timeout", 90*time.Second)
	v.SetDefault("JWT.TTL", 24*time.Hour)
	v.SetDefault("Server.Port", "8080")
	v.SetDefault("Server.CORSOrigins", []string{"*"})
	v.SetDefault("DB.MaxOpenConns", 20)
	v.SetDefault("DB.MaxIdleConns", 10)
	v.SetDefault("DB.ConnLifetime", 5*time.Minute)

	// Enable environment variables to override config values
	v.AutomaticEnv()

	err := v.ReadInConfig()

	// No config file: assemble the config from environment variables alone
	if err != nil {
		cfg := &Config{}

		cfg.DB.Host = getEnvOr("DB_HOST", "localhost")
		cfg.DB.Port = getEnvOr("DB_PORT", "5432")
		cfg.DB.User = getEnvOr("DB_USER", "postgres")
		cfg.DB.Password = getEnvOr("DB_PASSWORD", "postgres")
		cfg.DB.DBName = getEnvOr("DB_NAME", "fitlife")
		cfg.DB.SSLMode = getEnvOr("DB_SSL_MODE", "disable")
		cfg.DB.MaxOpenConns = 20
		cfg.DB.MaxIdleConns = 10
		cfg.DB.ConnLifetime = 5 * time.Minute
		cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
		cfg.Stripe.PublicKey = os.Getenv("STRIPE_PUBLIC_KEY")
		cfg.Stripe.WebhookKey = os.Getenv("STRIPE_WEBHOOK_KEY")
		cfg.GPT.APIKey = os.Getenv("GPT_API_KEY")
		cfg.GPT.Model = getEnvOr("GPT_MODEL", "gpt-4")
		cfg.GPT.Timeout = 90 * time.Second
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		cfg.JWT.TTL = 24 * time.Hour
		cfg.Server.Port = getEnvOr("SERVER_PORT", "8080")
		cfg.Server.CORSOrigins = strings.Split(getEnvOr("CORS_ORIGINS", "*"), ",")
		cfg.ShutdownTimeout = 10 * time.Second

		return cfg, nil
	}

	// Process any ${ENV_VAR} syntax in the config values
	for _, key := range v.AllKeys() {
		value := v.GetString(key)
		if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
			envVar := strings.TrimPrefix(strings.TrimSuffix(value, "}"), "${")
			if envValue := os.Getenv(envVar); envValue != "" {
				v.Set(key, envValue)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Helper function to get environment variable with default value
func getEnvOr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
