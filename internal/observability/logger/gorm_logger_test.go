package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func TestOperationFromSQL(t *testing.T) {
	assert.Equal(t, "SELECT", operationFromSQL("select * from events"))
	assert.Equal(t, "INSERT", operationFromSQL(" (INSERT INTO events"))
	assert.Equal(t, "DELETE", operationFromSQL("WITH x AS (select 1) DELETE FROM events"))
	assert.Equal(t, "UNKNOWN", operationFromSQL(""))
}

func TestGormLoggerTrace(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewGormLogger(DefaultGormLoggerConfig()).WithBase(zap.New(core))
	ctx := context.Background()
	fc := func() (string, int64) { return "SELECT * FROM events WHERE id = 1", 0 }

	l.Trace(ctx, time.Now(), fc, gormlogger.ErrRecordNotFound)
	assert.Equal(t, 0, logs.Len())

	l.Trace(ctx, time.Now(), fc, errors.New("boom"))
	assert.Equal(t, 1, logs.FilterMessage("gorm.query").FilterField(zap.String("operation", "SELECT")).Len())

	l.Trace(ctx, time.Now().Add(-time.Second), fc, nil)
	assert.Equal(t, 2, logs.Len())
	assert.Equal(t, zap.WarnLevel, logs.All()[1].Level)

	silent := l.LogMode(gormlogger.Silent)
	silent.Trace(ctx, time.Now(), fc, errors.New("boom"))
	assert.Equal(t, 2, logs.Len())
}
