package database

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Store is an open connection to one backend.
type Store struct {
	db      *gorm.DB
	dialect Dialect
}

// ConnectDB resolves the backend from cfg and opens it.
func ConnectDB(cfg Config) (*Store, error) {
	return Connect(Resolve(cfg), cfg)
}

// Connect opens the given dialect. Failing to reach a networked server yields an
// error wrapping ErrConnectivity.
func Connect(dialect Dialect, cfg Config) (*Store, error) {
	db, err := gorm.Open(dialect.Dialector(), &gorm.Config{
		Logger:                                   NewGormLogger(cfg.Debug),
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
		PrepareStmt:                              false,
	})
	if err != nil {
		return nil, openError(dialect, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, openError(dialect, err)
	}
	dialect.Configure(sqlDB, cfg)

	logrus.WithField("backend", dialect.Backend()).Infof("Database connection established: %s", dialect.Describe())
	return &Store{db: db, dialect: dialect}, nil
}

func openError(dialect Dialect, err error) error {
	if dialect.Backend() == BackendPostgres {
		return fmt.Errorf("%w: %s: %w", ErrConnectivity, dialect.Describe(), err)
	}
	return fmt.Errorf("open %s: %w", dialect.Describe(), err)
}

// Conn returns a session bound to ctx.
func (s *Store) Conn(ctx context.Context) *gorm.DB { return s.db.WithContext(ctx) }

func (s *Store) Gorm() *gorm.DB { return s.db }

func (s *Store) Dialect() Dialect { return s.dialect }

func (s *Store) Backend() Backend { return s.dialect.Backend() }

// Ping checks the backend is still reachable.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return Classify(err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrConnectivity, err)
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
