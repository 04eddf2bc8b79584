package config

import (
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"go-pescados/pkg/database"
)

type Config struct {
	AppName  string
	Port     string
	LogLevel string
	Database database.Config
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by the caller) > default.
func Load() Config {
	def := database.DefaultConfig()
	return Config{
		AppName:  getEnv("APP_NAME", "Pescados Ledger API"),
		Port:     getEnv("PORT", "3000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Database: database.Config{
			URL:             os.Getenv("DATABASE_URL"),
			SQLitePath:      getEnv("SQLITE_PATH", def.SQLitePath),
			Debug:           ParseBool("DB_DEBUG", false),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", def.MaxOpenConns),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", def.MaxIdleConns),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", def.ConnMaxLifetime),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			logrus.Warnf("invalid boolean for %s: %s", key, v)
			return def
		}
		return b
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			logrus.Warnf("invalid integer for %s: %s", key, v)
			return def
		}
		return n
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			logrus.Warnf("invalid duration for %s: %s", key, v)
			return def
		}
		return d
	}
	return def
}
