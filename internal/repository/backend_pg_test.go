package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"steakhouse/storefront/internal/repository"
)

func newPGBackend(t *testing.T) (repository.Backend, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)
	return repository.NewPGBackend(gdb), mock
}

func TestPGBackend_Get(t *testing.T) {
	ctx := context.Background()
	selectEntry := `SELECT \* FROM "session_entries" WHERE key = \$1`

	t.Run("found", func(t *testing.T) {
		b, mock := newPGBackend(t)
		rows := sqlmock.NewRows([]string{"key", "value", "updated_at"}).
			AddRow("session:1:cart", `{"payload":"W10="}`, time.Now())
		mock.ExpectQuery(selectEntry).WillReturnRows(rows)

		v, ok, err := b.Get(ctx, "session:1:cart")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"payload":"W10="}`, v)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found is absent", func(t *testing.T) {
		b, mock := newPGBackend(t)
		mock.ExpectQuery(selectEntry).
			WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}))

		v, ok, err := b.Get(ctx, "session:1:cart")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		b, mock := newPGBackend(t)
		mock.ExpectQuery(selectEntry).WillReturnError(errors.New("connection reset"))

		_, ok, err := b.Get(ctx, "session:1:cart")
		assert.Error(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPGBackend_Set(t *testing.T) {
	ctx := context.Background()

	t.Run("upserts on key", func(t *testing.T) {
		b, mock := newPGBackend(t)
		mock.ExpectExec(`INSERT INTO "session_entries" \(.+\) VALUES \(.+\)\s*` +
			`ON CONFLICT \("key"\) DO UPDATE SET "value"="excluded"\."value",\s*"updated_at"="excluded"\."updated_at"`).
			WithArgs("session:1:cart", "envelope", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, b.Set(ctx, "session:1:cart", "envelope"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty key", func(t *testing.T) {
		b, mock := newPGBackend(t)

		assert.ErrorIs(t, b.Set(ctx, "", "envelope"), repository.ErrKeyEmpty)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPGBackend_Remove(t *testing.T) {
	b, mock := newPGBackend(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "session_entries" WHERE key = $1`)).
		WithArgs("session:1:cart").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, b.Remove(context.Background(), "session:1:cart"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
