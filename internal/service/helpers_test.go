package service_test

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustTime(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2025, 12, 23, 12, 0, 0, 0, time.UTC)
}
