package logger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Gunvolt24/top_products/pkg/ctxmeta"
	"github.com/Gunvolt24/top_products/pkg/redact"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config — параметры логгера: режим и опциональный файл с ротацией.
type Config struct {
	IsProd     bool
	FilePath   string // пусто — только stdout/stderr
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// ZapLogger — реализация ports.Logger поверх zap.
// Все сообщения проходят через redact до записи.
type ZapLogger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

// NewZapLogger — консольный логгер (dev/prod).
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	return NewZapLoggerWithConfig(Config{IsProd: isProd})
}

// NewZapLoggerWithConfig — логгер с дополнительной записью в файл (lumberjack), если задан FilePath.
func NewZapLoggerWithConfig(cfg Config) (*ZapLogger, func() error, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if cfg.IsProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, nil, err
	}

	var file *lumberjack.Logger
	if cfg.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		file = &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(file),
			zap.InfoLevel,
		)
		logger = logger.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
			return zapcore.NewTee(c, fileCore)
		}))
	}

	loggerWrap := New(logger)

	cleanup := func() error {
		syncErr := loggerWrap.base.Sync()
		if file != nil {
			if err := file.Close(); err != nil {
				return err
			}
		}
		return syncErr
	}
	return loggerWrap, cleanup, nil
}

// New — обёртка над готовым *zap.Logger (тесты, встраивание).
func New(base *zap.Logger) *ZapLogger {
	return &ZapLogger{base: base, sugar: base.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.with(ctx).Info(redact.String(fmt.Sprintf(format, args...)))
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Warn(redact.String(fmt.Sprintf(format, args...)))
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Error(redact.String(fmt.Sprintf(format, args...)))
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }

// with — добавляет request_id/run_id из контекста, если они есть.
func (z *ZapLogger) with(ctx context.Context) *zap.SugaredLogger {
	s := z.sugar
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		s = s.With("request_id", rid)
	}
	if run, ok := ctxmeta.RunIDFromContext(ctx); ok {
		s = s.With("run_id", run)
	}
	return s
}
