package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNormalizeDSN(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "  ", ""},
		{"url kept", " 'postgres://u:p@db:5432/app' ", "postgres://u:p@db:5432/app"},
		{"kv collapsed with sslmode", "host=db   user=u dbname=app", "host=db user=u dbname=app sslmode=disable"},
		{"kv keeps sslmode", "host=db sslmode=require", "host=db sslmode=require"},
		{"unknown passthrough", "not a dsn", "not a dsn"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDSN(tt.in))
		})
	}
}

func TestMaskDSN(t *testing.T) {
	assert.Equal(t, "postgres://user:***@db:5432/app", MaskDSN("postgres://user:secret@db:5432/app"))
	assert.Equal(t, "host=db password=*** dbname=app", MaskDSN("host=db password=secret dbname=app"))
	assert.Equal(t, "postgres://db/app", MaskDSN("postgres://db/app"))
}

func TestResolve(t *testing.T) {
	d := Resolve(Config{})
	assert.Equal(t, BackendSQLite, d.Backend())
	assert.Contains(t, d.Describe(), DefaultSQLitePath)

	d = Resolve(Config{URL: "   ", SQLitePath: "ledger.db"})
	assert.Equal(t, BackendSQLite, d.Backend())
	assert.Contains(t, d.Describe(), "ledger.db?_busy_timeout=5000")

	d = Resolve(Config{URL: "postgres://u:pw@localhost/app", SQLitePath: "ledger.db"})
	assert.Equal(t, BackendPostgres, d.Backend())
	assert.NotContains(t, d.Describe(), "pw")
}

func TestNewSQLiteAppendsBusyTimeout(t *testing.T) {
	d := NewSQLite("file:x?mode=memory&cache=shared")
	assert.Contains(t, d.Describe(), "file:x?mode=memory&cache=shared&_busy_timeout=5000")
}

func TestConnectSQLiteInMemory(t *testing.T) {
	store, err := Connect(NewSQLite("file:connect_test?mode=memory&cache=shared"), DefaultConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	assert.Equal(t, BackendSQLite, store.Backend())
	require.NoError(t, store.Ping(context.Background()))
	require.NoError(t, store.Dialect().ResyncSequence(store.Gorm(), "anything"))
}

func TestConnectPostgresUnreachable(t *testing.T) {
	if testing.Short() {
		t.Skip("dials the network")
	}
	_, err := ConnectDB(Config{URL: "postgres://nobody:pw@127.0.0.1:1/none?sslmode=disable&connect_timeout=1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnectivity)
	assert.NotContains(t, err.Error(), ":pw@")
}

func TestClassify(t *testing.T) {
	assert.NoError(t, Classify(nil))

	plain := errors.New("boom")
	assert.Equal(t, plain, Classify(plain))

	assert.ErrorIs(t, Classify(gorm.ErrCheckConstraintViolated), ErrConstraintViolation)
	assert.ErrorIs(t, Classify(&pgconn.PgError{Code: "23502"}), ErrConstraintViolation)
	assert.ErrorIs(t, Classify(context.DeadlineExceeded), ErrConnectivity)

	once := Classify(gorm.ErrCheckConstraintViolated)
	assert.Equal(t, once, Classify(once))
}
