package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("nonsense"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
}

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Empty(t, RequestID(context.Background()))
}

func TestInit(t *testing.T) {
	for _, cfg := range []ZapConfig{
		{Level: "debug", Mode: ModeDevelopment, Encoding: EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: ModeProduction, Encoding: EncodingJSON},
	} {
		l := Init(cfg)
		assert.NotNil(t, l)
		l.Debugf(context.Background(), "level %s", cfg.Level)
	}
}

func TestNewTest(t *testing.T) {
	l := NewTest(t)
	ctx := WithRequestID(context.Background(), "abc")
	l.Info(ctx, "hello")
	l.Warnf(ctx, "value=%d", 1)
}
