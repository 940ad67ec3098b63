package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Gunvolt24/top_products/internal/domain"
	"github.com/Gunvolt24/top_products/internal/ports"
	"github.com/Gunvolt24/top_products/pkg/metrics"
	"github.com/Gunvolt24/top_products/pkg/telemetry"
)

// AggregatorConfig — параметры расчёта рейтинга.
type AggregatorConfig struct {
	TopN        int
	SalesWindow time.Duration // окно продаж назад от момента обновления
	Strategy    string        // только для отчёта и логов; запись выбирает хранилище
}

// Aggregator — обновление кэша: продажи → рейтинг → проверка → атомарная замена.
type Aggregator struct {
	sales     ports.SalesSource
	store     ports.RankingStore
	validator ports.RankingValidator
	publisher ports.RefreshPublisher
	log       ports.Logger
	clock     clockwork.Clock
	cfg       AggregatorConfig
}

// NewAggregator — publisher может быть nil (события не публикуются).
func NewAggregator(
	sales ports.SalesSource,
	store ports.RankingStore,
	validator ports.RankingValidator,
	publisher ports.RefreshPublisher,
	log ports.Logger,
	clock clockwork.Clock,
	cfg AggregatorConfig,
) *Aggregator {
	if cfg.TopN <= 0 {
		cfg.TopN = domain.DefaultTopN
	}
	if cfg.SalesWindow <= 0 {
		cfg.SalesWindow = 30 * 24 * time.Hour
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Aggregator{
		sales:     sales,
		store:     store,
		validator: validator,
		publisher: publisher,
		log:       log,
		clock:     clock,
		cfg:       cfg,
	}
}

// Refresh — один цикл обновления. Повторов внутри нет: при ошибке хранилище
// откатывает транзакцию, прежнее поколение остаётся видимым, следующую попытку делает планировщик.
func (a *Aggregator) Refresh(ctx context.Context) (report domain.RefreshReport, err error) {
	ctx, span := telemetry.StartSpan(ctx, "aggregator.refresh",
		attribute.Int("top_n", a.cfg.TopN), attribute.String("strategy", a.cfg.Strategy))
	defer func() { telemetry.EndSpan(span, err) }()

	started := a.clock.Now()
	// Postgres хранит микросекунды: метка в памяти должна совпадать с прочитанной.
	now := started.UTC().Truncate(time.Microsecond)

	records, err := a.sales.TopSelling(ctx, now.Add(-a.cfg.SalesWindow), domain.CountedStatuses(), a.cfg.TopN)
	if err != nil {
		return a.fail(started, fmt.Errorf("aggregate sales: %w", err))
	}

	entries := domain.Rank(records, now, a.cfg.TopN)
	if err = a.validator.Validate(ctx, entries, a.cfg.TopN); err != nil {
		return a.fail(started, err)
	}

	if err = a.store.ReplaceRanked(ctx, entries); err != nil {
		return a.fail(started, fmt.Errorf("replace ranking: %w", err))
	}

	report = domain.RefreshReport{
		Generation: now,
		Count:      len(entries),
		Strategy:   a.cfg.Strategy,
		Took:       a.clock.Since(started),
	}

	metrics.RefreshTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	metrics.RefreshDuration.Observe(report.Took.Seconds())
	metrics.GenerationTimestamp.Set(float64(now.UnixMicro()) / 1e6)
	metrics.CacheEntries.Set(float64(report.Count))

	a.log.Infof(ctx, "Top products cache updated successfully: generation=%s count=%d strategy=%s took=%s",
		now.Format(time.RFC3339Nano), report.Count, report.Strategy, report.Took)

	// Поколение уже закоммичено: сбой публикации не делает обновление неуспешным.
	if a.publisher != nil {
		if pubErr := a.publisher.PublishRefreshed(ctx, report); pubErr != nil {
			a.log.Warnf(ctx, "publish refresh event: %v", pubErr)
		}
	}

	return report, nil
}

func (a *Aggregator) fail(started time.Time, err error) (domain.RefreshReport, error) {
	metrics.RefreshTotal.WithLabelValues(metrics.ResultFailure).Inc()
	metrics.RefreshDuration.Observe(a.clock.Since(started).Seconds())
	return domain.RefreshReport{}, fmt.Errorf("refresh top products: %w", err)
}
