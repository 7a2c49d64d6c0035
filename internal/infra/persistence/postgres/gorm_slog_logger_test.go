package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"pedido/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferedGormLogger(t *testing.T, debug bool) (*gormSlogLogger, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	l, ok := newGormSlogLogger(slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg).(*gormSlogLogger)
	assert.True(t, ok)

	return l, buf
}

func TestGormSlogLogger_Trace(t *testing.T) {
	ctx := context.Background()
	query := func(sql string) func() (string, int64) {
		return func() (string, int64) { return sql, 1 }
	}

	t.Run("record not found is silent", func(t *testing.T) {
		l, buf := newBufferedGormLogger(t, false)
		l.Trace(ctx, time.Now(), query(`SELECT * FROM "customers"`), gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("unique violation is logged at debug", func(t *testing.T) {
		l, buf := newBufferedGormLogger(t, false)
		l.Trace(ctx, time.Now(), query(`INSERT INTO "customers"`), errors.New("ERROR: duplicate key value (SQLSTATE 23505)"))

		assert.Contains(t, buf.String(), `"level":"DEBUG"`)
	})

	t.Run("other failures are errors", func(t *testing.T) {
		l, buf := newBufferedGormLogger(t, false)
		l.Trace(ctx, time.Now(), query(`UPDATE "orders"`), errors.New("connection reset"))

		assert.Contains(t, buf.String(), `"level":"ERROR"`)
		assert.Contains(t, buf.String(), `UPDATE \"orders\"`)
	})

	t.Run("settings statements are redacted", func(t *testing.T) {
		l, buf := newBufferedGormLogger(t, true)
		l.Trace(ctx, time.Now(), query(`UPDATE "ai_settings" SET "completion_api_key"='sk-live-123'`), nil)

		assert.Contains(t, buf.String(), redactedSQL)
		assert.NotContains(t, buf.String(), "sk-live-123")
	})

	t.Run("queries are logged only in debug", func(t *testing.T) {
		l, buf := newBufferedGormLogger(t, false)
		l.Trace(ctx, time.Now(), query(`SELECT 1`), nil)
		assert.Empty(t, buf.String())

		l, buf = newBufferedGormLogger(t, true)
		l.Trace(ctx, time.Now(), query(`SELECT 1`), nil)
		assert.Contains(t, buf.String(), "GORM query")
	})
}

func TestConstraintViolations(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`duplicate key value violates unique constraint "idx_orders_number" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("timeout")))
	assert.True(t, isForeignKeyConstraintViolation(errors.New("(SQLSTATE 23503)")))
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "phone"`)))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
}
