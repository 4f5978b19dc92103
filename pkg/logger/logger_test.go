package logger_test

import (
	"context"
	"testing"

	"contracts/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       []string
		debug       bool
		wantErr     bool
	}{
		{name: "development", environment: logger.DevelopmentEnvironment, debug: true},
		{name: "production", environment: logger.ProductionEnvironment, debug: false},
		{name: "production with debug override", environment: logger.ProductionEnvironment, level: []string{"debug"}, debug: true},
		{name: "development with warn override", environment: logger.DevelopmentEnvironment, level: []string{"warn"}, debug: false},
		{name: "empty override ignored", environment: logger.DevelopmentEnvironment, level: []string{""}, debug: true},
		{name: "bad level", environment: logger.DevelopmentEnvironment, level: []string{"loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := logger.Setup(tt.environment, tt.level...)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)

			ctx := context.Background()
			require.NotNil(t, logger.Get(ctx))
			require.Equal(t, tt.debug, logger.IsDebug(ctx))
		})
	}
}

func TestGet(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment))

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx), "should return default logger when context has no logger")

	custom := zap.NewExample()
	require.Equal(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("kind", "otp-response"), zap.Int("size", 42))
	logger.Info(ctx, "payload checked")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "payload checked", entries[0].Message)
	require.Equal(t, map[string]any{"kind": "otp-response", "size": int64(42)}, entries[0].ContextMap())
}

func TestLoggingFunctions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug message", zap.String("key", "value"))
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	levels := make([]zapcore.Level, 0, 4)
	for _, e := range logs.All() {
		levels = append(levels, e.Level)
	}
	require.Equal(t, []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}, levels)

	infoOnly, _ := observer.New(zapcore.InfoLevel)
	require.False(t, logger.IsDebug(logger.WithLogger(ctx, zap.New(infoOnly))))
}
