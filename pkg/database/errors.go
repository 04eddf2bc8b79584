package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrConnectivity means the backend could not be reached or dropped the connection.
	ErrConnectivity = errors.New("database unreachable")
	// ErrConstraintViolation means a row broke a CHECK or NOT NULL rule.
	ErrConstraintViolation = errors.New("constraint violation")
)

// Classify wraps err with ErrConnectivity or ErrConstraintViolation when it is one
// of those, and returns it unchanged otherwise.
func Classify(err error) error {
	if err == nil || errors.Is(err, ErrConnectivity) || errors.Is(err, ErrConstraintViolation) {
		return err
	}
	switch {
	case isConstraint(err):
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	case isConnectivity(err):
		return fmt.Errorf("%w: %w", ErrConnectivity, err)
	}
	return err
}

func isConstraint(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23514", "23502":
			return true
		}
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	return false
}

func isConnectivity(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
