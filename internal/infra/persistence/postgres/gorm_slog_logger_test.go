package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/errors"
)

func newBufferedLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func staticSQL(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("logs failed queries", func(t *testing.T) {
		base, buf := newBufferedLogger()
		l := newGormSlogLogger(base, false)

		l.Trace(context.Background(), time.Now(), staticSQL("INSERT INTO users"), errors.New("boom"))

		assert.Contains(t, buf.String(), "gorm query failed")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("skips record not found", func(t *testing.T) {
		base, buf := newBufferedLogger()
		l := newGormSlogLogger(base, false)

		l.Trace(context.Background(), time.Now(), staticSQL("SELECT"), gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("warns on slow queries", func(t *testing.T) {
		base, buf := newBufferedLogger()
		l := newGormSlogLogger(base, false)

		l.Trace(context.Background(), time.Now().Add(-time.Second), staticSQL("SELECT"), nil)

		assert.Contains(t, buf.String(), "gorm slow query")
	})

	t.Run("quiet for fast queries outside debug", func(t *testing.T) {
		base, buf := newBufferedLogger()
		l := newGormSlogLogger(base, false)

		l.Trace(context.Background(), time.Now(), staticSQL("SELECT"), nil)

		assert.Empty(t, buf.String())
	})

	t.Run("silent mode logs nothing", func(t *testing.T) {
		base, buf := newBufferedLogger()
		l := newGormSlogLogger(base, true).LogMode(logger.Silent)

		l.Trace(context.Background(), time.Now(), staticSQL("SELECT"), errors.New("boom"))

		assert.Empty(t, buf.String())
	})

	t.Run("prefers request scoped logger", func(t *testing.T) {
		base, baseBuf := newBufferedLogger()
		reqLogger, reqBuf := newBufferedLogger()
		ctx := deliverycontext.WithLogger(context.Background(), reqLogger.With(slog.String("request_id", "req-1")))
		l := newGormSlogLogger(base, true)

		l.Trace(ctx, time.Now(), staticSQL("SELECT 1"), nil)

		assert.Empty(t, baseBuf.String())
		assert.Contains(t, reqBuf.String(), "req-1")
	})
}

func TestGormSlogLogger_ParamsFilter(t *testing.T) {
	l := &gormSlogLogger{}

	sql, params := l.ParamsFilter(context.Background(), "INSERT INTO users (password) VALUES (?)", "$2a$10$secret")

	assert.Equal(t, "INSERT INTO users (password) VALUES (?)", sql)
	assert.Empty(t, params)
}
