package app

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Gunvolt24/top_products/config"
	"github.com/Gunvolt24/top_products/internal/domain"
	"github.com/Gunvolt24/top_products/internal/kafka"
	"github.com/Gunvolt24/top_products/internal/ports"
	"github.com/Gunvolt24/top_products/internal/repo/postgres"
	"github.com/Gunvolt24/top_products/internal/usecase"
	"github.com/Gunvolt24/top_products/pkg/metrics"
	"github.com/Gunvolt24/top_products/pkg/validate"
)

// pushTimeout — отдельный бюджет на Pushgateway: метрики отправляются и после таймаута обновления.
const pushTimeout = 5 * time.Second

// Refresher — один цикл обновления кэша.
type Refresher interface {
	Refresh(ctx context.Context) (domain.RefreshReport, error)
}

// RefreshJob — собранная джоба обновления для внешнего планировщика.
type RefreshJob struct {
	Logger    ports.Logger
	Refresher Refresher
	Timeout   time.Duration // 0 — без собственного таймаута
	PushURL   string        // пусто — метрики не отправляются
	JobName   string
}

// BootstrapRefresh — собирает джобу: продажи + хранилище (стратегия из конфига) + валидатор + publisher (опционально).
func BootstrapRefresh(ctx context.Context, cfg *config.Config) (*RefreshJob, Cleanup, error) {
	b, err := newBase(ctx, cfg)
	if err != nil {
		return nil, func() {}, err
	}
	logg := b.log

	store, err := postgres.NewRankingRepository(b.pool, cfg.Ranking.Strategy)
	if err != nil {
		b.close(ctx)
		return nil, func() {}, err
	}

	var (
		publisher ports.RefreshPublisher
		kafkaPub  *kafka.Publisher
	)
	if cfg.Kafka.Enabled {
		kafkaPub = kafka.NewPublisher(kafka.PublisherConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			WriteTimeout: cfg.Kafka.WriteTimeout,
		})
		publisher = kafkaPub
	}

	agg := usecase.NewAggregator(
		postgres.NewSalesRepository(b.pool),
		store,
		validate.NewRankingValidator(),
		publisher,
		logg,
		clockwork.NewRealClock(),
		usecase.AggregatorConfig{
			TopN:        cfg.Ranking.TopN,
			SalesWindow: cfg.Ranking.SalesWindow,
			Strategy:    store.Strategy(),
		},
	)

	job := &RefreshJob{
		Logger:    logg,
		Refresher: agg,
		Timeout:   cfg.Refresh.Timeout,
		PushURL:   cfg.Metrics.PushURL,
		JobName:   cfg.Metrics.JobName,
	}

	cleanup := func() {
		if kafkaPub != nil {
			if err := kafkaPub.Close(); err != nil {
				logg.Warnf(ctx, "kafka publisher close error: %v", err)
			}
		}
		b.close(ctx)
	}
	return job, cleanup, nil
}

// Run — один цикл обновления и отправка метрик. Ошибку логирует и отображает точка входа.
func (j *RefreshJob) Run(ctx context.Context) (domain.RefreshReport, error) {
	runCtx := ctx
	if j.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}

	report, err := j.Refresher.Refresh(runCtx)

	pushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), pushTimeout)
	defer cancel()
	if pErr := metrics.PushRefresh(pushCtx, j.PushURL, j.JobName); pErr != nil {
		j.Logger.Warnf(ctx, "%v", pErr)
	}

	return report, err
}
