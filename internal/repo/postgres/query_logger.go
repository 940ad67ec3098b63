package postgres

import (
	"context"
	"time"

	"github.com/Gunvolt24/top_products/internal/ports"
	"github.com/jackc/pgx/v5/tracelog"
)

// QueryLogger — адаптер tracelog.Logger поверх ports.Logger.
type QueryLogger struct {
	log    ports.Logger
	logAll bool
	slow   time.Duration
}

var _ tracelog.Logger = (*QueryLogger)(nil)

func NewQueryLogger(log ports.Logger, logAll bool, slow time.Duration) *QueryLogger {
	return &QueryLogger{log: log, logAll: logAll, slow: slow}
}

// Log — ошибки и медленные запросы уходят в warn, остальное в info только при logAll.
func (l *QueryLogger) Log(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	sql, _ := data["sql"].(string)
	took, _ := data["time"].(time.Duration)

	switch {
	case level <= tracelog.LogLevelWarn:
		l.log.Warnf(ctx, "pgx %s: sql=%q err=%v", msg, sql, data["err"])
	case l.slow > 0 && took >= l.slow:
		l.log.Warnf(ctx, "pgx slow query: sql=%q took=%s", sql, took)
	case l.logAll:
		l.log.Infof(ctx, "pgx %s: sql=%q took=%s", msg, sql, took)
	}
}
