package postgres

import (
	"context"
	"time"

	"github.com/Gunvolt24/top_products/internal/domain"
	"github.com/Gunvolt24/top_products/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
)

// PoolOption — дополнительная настройка пула.
type PoolOption func(*pgxpool.Config)

// WithQueryLog — логирование запросов через pgx tracelog.
// logAll=false пишет только медленные (дольше slow) и упавшие запросы.
func WithQueryLog(log ports.Logger, logAll bool, slow time.Duration) PoolOption {
	return func(cfg *pgxpool.Config) {
		if log == nil || (!logAll && slow <= 0) {
			return
		}
		cfg.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   NewQueryLogger(log, logAll, slow),
			LogLevel: tracelog.LogLevelInfo,
		}
	}
}

// NewPool — создаёт пул соединений к Postgres на базе DSN.
// Если maxConns > 0 — переопределяем размер пула.
// В конце выполняем Ping для fail-fast; ошибка классифицируется как ошибка подключения.
func NewPool(ctx context.Context, dsn string, maxConns int32, opts ...PoolOption) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, domain.NewStoreError(domain.KindConnection, "parse dsn", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	// Жизненный цикл соединений.
	cfg.MaxConnLifetime = time.Hour
	cfg.MaxConnIdleTime = 30 * time.Minute

	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, classify("new pool", err, domain.KindConnection)
	}

	if connErr := pool.Ping(ctx); connErr != nil {
		pool.Close()
		return nil, domain.NewStoreError(domain.KindConnection, "ping", connErr)
	}

	return pool, nil
}
