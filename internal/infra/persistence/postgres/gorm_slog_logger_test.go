package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"herbal/config"
	"herbal/internal/domain/entity"
	"herbal/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), buf
}

func sqlAndRows() (string, int64) {
	return `SELECT * FROM "accounts"`, 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("record not found is suppressed", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now(), sqlAndRows, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("errors are logged", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now(), sqlAndRows, assert.AnError)
		assert.Contains(t, buf.String(), "GORM query failed")
	})

	t.Run("slow queries are logged", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now().Add(-time.Second), sqlAndRows, nil)
		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("fast queries only in debug", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now(), sqlAndRows, nil)
		assert.Empty(t, buf.String())

		l, buf = newBufferedGormLogger(true)
		l.Trace(ctx, time.Now(), sqlAndRows, nil)
		assert.Contains(t, buf.String(), "GORM query")
	})

	t.Run("silent mode", func(t *testing.T) {
		l, buf := newBufferedGormLogger(true)
		l.LogMode(logger.Silent).Trace(ctx, time.Now(), sqlAndRows, assert.AnError)
		assert.Empty(t, buf.String())
	})
}

func TestGormSlogLogger_ParamsFilter(t *testing.T) {
	l := newGormSlogLogger(newDiscardLogger(), nil)

	sql, params := l.ParamsFilter(context.Background(), `INSERT INTO "accounts" VALUES ($1,$2)`, "alice", "$2a$10$hash")

	assert.Equal(t, `INSERT INTO "accounts" VALUES ($1,$2)`, sql)
	assert.Empty(t, params)
}

func TestGormSlogLogger_DoesNotLogPasswordHash(t *testing.T) {
	const passwordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

	tests := []struct {
		name  string
		debug bool
		err   error
	}{
		{
			name: "failed insert",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "accounts_username_key"},
		},
		{
			name:  "successful insert in debug",
			debug: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gormLogger, buf := newBufferedGormLogger(tt.debug)
			db, mock := newMockDBWithLogger(t, gormLogger)
			repo := NewAccountRepository(db)

			expect := mock.ExpectQuery(insertAccount)
			if tt.err != nil {
				expect.WillReturnError(tt.err)
			} else {
				expect.WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
			}

			err := repo.Insert(context.Background(), &entity.Account{Username: "alice", PasswordHash: passwordHash})
			if tt.err != nil {
				require.ErrorIs(t, err, repository.ErrAccountExists)
			} else {
				require.NoError(t, err)
			}

			logged := buf.String()
			assert.Contains(t, logged, `INSERT INTO \"accounts\"`)
			assert.NotContains(t, logged, passwordHash)
			assert.NotContains(t, logged, "N9qo8uLOickgx2ZMRZoMye")
		})
	}
}
