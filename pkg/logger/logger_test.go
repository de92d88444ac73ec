package logger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoggerIsNoopBeforeInit(t *testing.T) {
	require.NotNil(t, GetLogger())
	require.NotPanics(t, func() {
		Info(context.Background(), "before init")
	})
}

func TestInitAndContextLogging(t *testing.T) {
	Init("development")
	require.NotNil(t, GetLogger())

	ctx := context.WithValue(context.Background(), "request_id", "req-1")
	ctx = context.WithValue(ctx, UserIDKey, "user-1")
	require.NotNil(t, WithContext(ctx))

	Info(ctx, "info")
	Debug(ctx, "debug")
	Warn(ctx, "warn")
	Error(ctx, "error", zap.String("k", "v"))
	LogRequest(ctx, "GET", "/health", 200, 10*time.Millisecond, "127.0.0.1")
	LogRequest(ctx, "GET", "/boom", 500, time.Millisecond, "127.0.0.1")
}

func TestWithContextNil(t *testing.T) {
	Init("development")
	//nolint:staticcheck
	require.NotNil(t, WithContext(nil))
}

func TestWithContextTypedRequestID(t *testing.T) {
	Init("development")
	ctx := context.WithValue(context.Background(), RequestIDKey, "typed-req-id")
	require.NotNil(t, WithContext(ctx))
}

func TestInit_Production(t *testing.T) {
	log = zap.NewNop()
	once = sync.Once{}

	Init("production")
	require.NotNil(t, GetLogger())
	require.NotNil(t, WithContext(context.Background()))
	Sync()
}
