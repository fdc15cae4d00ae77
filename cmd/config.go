package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
)

// Config captures all tunable parameters of the service process. Values come
// from the environment, optionally seeded from a .env file.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaBrokers []string
	KafkaTopic   string

	StaleGraceMinutes int
	LogLevel          string
}

// LoadConfig reads the configuration from environment variables, applying
// defaults for everything optional.
func LoadConfig() Config {
	cfg := Config{
		HTTPPort:          envOr("HTTP_PORT", "8080"),
		DBHost:            envOr("DB_HOST", "localhost"),
		DBPort:            envOr("DB_PORT", "5432"),
		DBUser:            envOr("DB_USER", "postgres"),
		DBPassword:        envOr("DB_PASSWORD", "postgres"),
		DBName:            envOr("DB_NAME", "swiftbid"),
		DBSslMode:         envOr("DB_SSLMODE", "disable"),
		KafkaTopic:        envOr("KAFKA_TOPIC", "delivery-status"),
		StaleGraceMinutes: cast.ToInt(envOr("STALE_GRACE_MINUTES", "60")),
		LogLevel:          envOr("LOG_LEVEL", "info"),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	if cfg.StaleGraceMinutes <= 0 {
		cfg.StaleGraceMinutes = 60
	}

	return cfg
}

// DSN assembles the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
