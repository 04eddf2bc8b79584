package database

import "time"

// DefaultSQLitePath is the embedded database file used when no server URL is configured.
const DefaultSQLitePath = "pescados.db"

// Config holds everything needed to pick and open a backend.
type Config struct {
	// URL of a PostgreSQL server. Empty selects the embedded SQLite file.
	URL        string
	SQLitePath string
	Debug      bool

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultConfig mirrors the pool sizes the API has always run with.
func DefaultConfig() Config {
	return Config{
		SQLitePath:      DefaultSQLitePath,
		MaxOpenConns:    100,
		MaxIdleConns:    10,
		ConnMaxLifetime: time.Hour,
	}
}
