package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/Gunvolt24/top_products/config"
	cachemem "github.com/Gunvolt24/top_products/internal/cache/memory"
	"github.com/Gunvolt24/top_products/internal/kafka"
	"github.com/Gunvolt24/top_products/internal/ports"
	"github.com/Gunvolt24/top_products/internal/repo/postgres"
	rest "github.com/Gunvolt24/top_products/internal/transport/http"
	"github.com/Gunvolt24/top_products/internal/usecase"
	"github.com/Gunvolt24/top_products/pkg/logger"
	"github.com/Gunvolt24/top_products/pkg/metrics"
	"github.com/Gunvolt24/top_products/pkg/telemetry"
)

// App — собранный сервис чтения и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер
	KafkaConsumer   ports.MessageConsumer // nil — инвалидация по событиям выключена
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// base — то, что общее у сервиса и джобы: логгер, трейсинг, пул.
type base struct {
	log           *logger.ZapLogger
	pool          *pgxpool.Pool
	shutdownTrace telemetry.Shutdown
	closeLogger   func() error
}

func (b *base) close(ctx context.Context) {
	if b.shutdownTrace != nil {
		if err := b.shutdownTrace(context.Background()); err != nil {
			b.log.Warnf(ctx, "shutdown tracing: %v", err)
		}
	}
	if b.pool != nil {
		b.pool.Close()
	}
	if err := b.closeLogger(); err != nil {
		b.log.Warnf(ctx, "cleanup logger: %v", err)
	}
}

func newBase(ctx context.Context, cfg *config.Config) (*base, error) {
	logg, closeLogger, err := logger.NewZapLoggerWithConfig(logger.Config{
		IsProd:     cfg.Logger.IsProd,
		FilePath:   cfg.Logger.FilePath,
		MaxSizeMB:  cfg.Logger.MaxSizeMB,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAgeDays: cfg.Logger.MaxAgeDays,
	})
	if err != nil {
		return nil, err
	}
	b := &base{log: logg, closeLogger: closeLogger, shutdownTrace: telemetry.NoopShutdown}

	// Трейсинг OTEL (при включённой конфигурации); сбой настройки не фатален.
	if cfg.Tracing.Enabled {
		shutdown, tErr := telemetry.Setup(ctx, telemetry.Config{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			b.shutdownTrace = shutdown
		}
	}

	var opts []postgres.PoolOption
	if cfg.Postgres.LogQueries || cfg.Postgres.SlowQuery > 0 {
		opts = append(opts, postgres.WithQueryLog(logg, cfg.Postgres.LogQueries, cfg.Postgres.SlowQuery))
	}
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns, opts...)
	if err != nil {
		b.close(ctx)
		return nil, err
	}
	b.pool = pool
	return b, nil
}

// Bootstrap — собирает сервис чтения: пул → хранилище рейтинга → снимок в памяти → Reader → HTTP.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	b, err := newBase(ctx, cfg)
	if err != nil {
		return nil, func() {}, err
	}
	logg := b.log

	metrics.MustRegister()

	store, err := postgres.NewRankingRepository(b.pool, cfg.Ranking.Strategy)
	if err != nil {
		b.close(ctx)
		return nil, func() {}, err
	}
	snapshot := cachemem.NewSnapshotCache(store, cfg.Cache.TTL, clockwork.NewRealClock())
	reader := usecase.NewReader(snapshot, logg, clockwork.NewRealClock(), usecase.ReaderConfig{
		TopN:            cfg.Ranking.TopN,
		FreshnessWindow: cfg.Ranking.FreshnessWindow,
	})

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Публичный срок жизни ответа совпадает с окном свежести.
	httpHandler := rest.NewHandler(reader, logg, cfg.HTTP.HandlerTimeout, cfg.Ranking.FreshnessWindow)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Консьюмер событий обновления сбрасывает снимок в памяти.
	var consumer *kafka.Consumer
	if cfg.Kafka.Enabled {
		instanceID := cfg.Kafka.InstanceID
		if instanceID == "" {
			instanceID = kafka.NewInstanceID()
		}
		consumer = kafka.NewConsumer(&kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			InstanceID:     instanceID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}, kafka.NewInvalidationHandler(snapshot, logg), logg)
		app.KafkaConsumer = consumer
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if consumer != nil {
			if err := consumer.Close(); err != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", err)
			}
		}
		b.close(ctx)
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	if a.KafkaConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Errorf(ctx, "background error: %v", err)
			runErr = err
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return runErr
}
