package database

import (
	"database/sql"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
)

// Dialect hides what differs between the embedded and the networked backend:
// the gorm dialector (placeholders, quoting, types), pool sizing and how an
// auto-increment counter is moved past explicitly inserted ids.
type Dialect interface {
	Backend() Backend
	Dialector() gorm.Dialector
	Configure(sqlDB *sql.DB, cfg Config)
	ResyncSequence(tx *gorm.DB, table string) error
	// Describe is safe to log.
	Describe() string
}

// Resolve picks the backend: a configured server URL wins, otherwise the embedded file.
func Resolve(cfg Config) Dialect {
	if dsn := NormalizeDSN(cfg.URL); dsn != "" {
		return NewPostgres(dsn)
	}
	path := strings.TrimSpace(cfg.SQLitePath)
	if path == "" {
		path = DefaultSQLitePath
	}
	return NewSQLite(path)
}

type sqliteDialect struct {
	dsn string
}

// NewSQLite opens path (a file name or a file: URI) with a busy timeout so
// concurrent writers wait instead of failing.
func NewSQLite(path string) Dialect {
	dsn := path
	if !strings.Contains(dsn, "_busy_timeout") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_busy_timeout=5000"
	}
	return &sqliteDialect{dsn: dsn}
}

func (d *sqliteDialect) Backend() Backend { return BackendSQLite }

func (d *sqliteDialect) Dialector() gorm.Dialector { return sqlite.Open(d.dsn) }

// Configure serializes access through one connection. SQLite allows a single
// writer, and shared in-memory databases vanish once their last connection closes.
func (d *sqliteDialect) Configure(sqlDB *sql.DB, _ Config) {
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
}

// ResyncSequence is a no-op: AUTOINCREMENT-less rowid tables always continue from MAX(id)+1.
func (d *sqliteDialect) ResyncSequence(*gorm.DB, string) error { return nil }

func (d *sqliteDialect) Describe() string {
	return fmt.Sprintf("sqlite (%s)", d.dsn)
}

type postgresDialect struct {
	dsn string
}

func NewPostgres(dsn string) Dialect {
	return &postgresDialect{dsn: dsn}
}

func (d *postgresDialect) Backend() Backend { return BackendPostgres }

func (d *postgresDialect) Dialector() gorm.Dialector {
	return postgres.New(postgres.Config{
		DSN: d.dsn,
		// Disables implicit prepared statements for transaction-mode poolers
		PreferSimpleProtocol: true,
	})
}

func (d *postgresDialect) Configure(sqlDB *sql.DB, cfg Config) {
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

// ResyncSequence moves the serial behind table.id to the current maximum so the
// next generated id is MAX(id)+1. An empty table resets the sequence to start at 1.
func (d *postgresDialect) ResyncSequence(tx *gorm.DB, table string) error {
	return tx.Exec(
		"SELECT setval(pg_get_serial_sequence(?, 'id'), COALESCE(MAX(id), 1), MAX(id) IS NOT NULL) FROM ?",
		table, clause.Table{Name: table},
	).Error
}

func (d *postgresDialect) Describe() string {
	return fmt.Sprintf("postgres (%s)", MaskDSN(d.dsn))
}
