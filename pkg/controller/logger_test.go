package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"contracts/pkg/controller"
	"contracts/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{name: "x-forwarded-for", headers: map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, want: "1.2.3.4"},
		{name: "x-real-ip", headers: map[string]string{"X-Real-IP": "9.8.7.6"}, want: "9.8.7.6"},
		{name: "remote addr", remoteAddr: "10.0.0.1:12345", want: "10.0.0.1"},
		{name: "invalid remote addr", remoteAddr: "not-an-addr", want: "not-an-addr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if tt.remoteAddr != "" {
				req.RemoteAddr = tt.remoteAddr
			}
			require.Equal(t, tt.want, controller.GetClientIP(req))
		})
	}
}

func TestWithLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := logger.WithLogger(context.Background(), zap.New(core))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info(r.Context(), "handling")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequestWithContext(base, http.MethodPost, "/v1/contracts/otp-status/check", nil)
	req.Header.Set(controller.RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "abc-123", rec.Header().Get(controller.RequestIDHeader))

	inner := logs.FilterMessage("handling").All()
	require.Len(t, inner, 1)
	require.Equal(t, "abc-123", inner[0].ContextMap()["request_id"])

	entries := logs.FilterMessage("access log").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "abc-123", fields["request_id"])
	require.Equal(t, int64(http.StatusCreated), fields["status_code"])
	require.Equal(t, int64(2), fields["response_size"])
	require.Equal(t, http.MethodPost, fields["method"])
}

func TestWithLogger_GeneratesRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := logger.WithLogger(context.Background(), zap.New(core))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info(r.Context(), "handling")
	})

	rec := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, httptest.NewRequestWithContext(base, http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	id := rec.Header().Get(controller.RequestIDHeader)
	require.NotEmpty(t, id)

	inner := logs.FilterMessage("handling").All()
	require.Len(t, inner, 1)
	require.Equal(t, id, inner[0].ContextMap()["request_id"])
}
