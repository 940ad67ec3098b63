package logger_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gunvolt24/top_products/pkg/ctxmeta"
	"github.com/Gunvolt24/top_products/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_RedactsErrors(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := logger.New(zap.New(core))

	l.Errorf(context.Background(), "database error: %v", "connect: user=app password=secret123 host=db")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("want 1 entry, got %d", len(entries))
	}
	msg := entries[0].Message
	if strings.Contains(msg, "secret123") {
		t.Fatalf("password leaked: %q", msg)
	}
	if !strings.Contains(msg, "password=[REDACTED]") {
		t.Fatalf("want redaction marker, got %q", msg)
	}
	if entries[0].Level != zapcore.ErrorLevel {
		t.Fatalf("want error level, got %v", entries[0].Level)
	}
}

func TestZapLogger_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := logger.New(zap.New(core))
	ctx := context.Background()

	l.Infof(ctx, "info %d", 1)
	l.Warnf(ctx, "warn %d", 2)
	l.Errorf(ctx, "error %d", 3)

	want := []zapcore.Level{zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	got := logs.All()
	if len(got) != len(want) {
		t.Fatalf("want %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Level != want[i] {
			t.Fatalf("entry %d: want %v, got %v", i, want[i], got[i].Level)
		}
	}
}

func TestZapLogger_RequestIDField(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := logger.New(zap.New(core))

	ctx := ctxmeta.WithRequestID(context.Background(), "req-7")
	l.Warnf(ctx, "stale")

	entries := logs.FilterField(zap.String("request_id", "req-7")).All()
	if len(entries) != 1 {
		t.Fatalf("want entry with request_id field, got %d", len(entries))
	}
}

func TestNewZapLoggerWithConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	l, cleanup, err := logger.NewZapLoggerWithConfig(logger.Config{FilePath: path, MaxSizeMB: 1})
	if err != nil {
		t.Fatalf("NewZapLoggerWithConfig: %v", err)
	}
	l.Infof(context.Background(), "hello")
	_ = cleanup()
}
