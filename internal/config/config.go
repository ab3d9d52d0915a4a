package config

import (
	"log/slog"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type Config struct {
	Env            string
	Listen         string
	ListenMetrics  string
	Secret         string
	DbPath         string
	MigrationsPath string
	TelegramToken  string
	ReportsTZ      *time.Location
}

func NewConfig() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", slog.String("error", err.Error()))
	}

	var cfg Config
	cfg.LoadEnv()
	return cfg
}

func GetOrDefault(key string, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return value
}

func (c *Config) LoadEnv() {
	c.Env = GetOrDefault("ENV", "local")
	c.Listen = GetOrDefault("SERVER_ADDRESS", ":8080")
	c.ListenMetrics = GetOrDefault("METRICS_ADDRESS", ":9000")
	c.Secret = GetOrDefault("JWT_SECRET", "dev-secret")
	c.DbPath = GetOrDefault("DATABASE_URL", "")
	c.MigrationsPath = GetOrDefault("MIGRATIONS_PATH", "migrations")
	c.TelegramToken = GetOrDefault("TELEGRAM_BOT_TOKEN", "")

	tz := GetOrDefault("REPORTS_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		slog.Warn("unknown reports timezone, falling back to UTC", slog.String("timezone", tz))
		loc = time.UTC
	}
	c.ReportsTZ = loc
}
