package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Gunvolt24/top_products/internal/domain"
	"github.com/Gunvolt24/top_products/internal/ports"
	"github.com/Gunvolt24/top_products/pkg/metrics"
)

var _ ports.TopProductsReader = (*Reader)(nil)

// ReaderConfig — размер выдачи и окно свежести.
type ReaderConfig struct {
	TopN            int
	FreshnessWindow time.Duration
}

// Reader — чтение рейтинга с признаком свежести. Писать в хранилище не умеет.
type Reader struct {
	store ports.RankingReader
	log   ports.Logger
	clock clockwork.Clock
	cfg   ReaderConfig
}

func NewReader(store ports.RankingReader, log ports.Logger, clock clockwork.Clock, cfg ReaderConfig) *Reader {
	if cfg.TopN <= 0 {
		cfg.TopN = domain.DefaultTopN
	}
	if cfg.FreshnessWindow <= 0 {
		cfg.FreshnessWindow = time.Hour
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Reader{store: store, log: log, clock: clock, cfg: cfg}
}

// GetTopProducts — устаревшее поколение отдаётся как есть с предупреждением в лог;
// ошибка хранилища возвращается без данных.
func (r *Reader) GetTopProducts(ctx context.Context) (domain.TopProducts, error) {
	gen, err := r.store.ReadRanked(ctx, r.cfg.TopN)
	if err != nil {
		metrics.ReadsTotal.WithLabelValues("error").Inc()
		return domain.TopProducts{}, fmt.Errorf("read top products: %w", err)
	}

	now := r.clock.Now()
	freshness := domain.Classify(gen, now, r.cfg.FreshnessWindow)
	if freshness == domain.FreshnessStale {
		r.log.Warnf(ctx, "top products cache is stale: generation=%s age=%s window=%s",
			gen.UpdatedAt.Format(time.RFC3339), now.Sub(gen.UpdatedAt).Truncate(time.Second), r.cfg.FreshnessWindow)
	}
	metrics.ReadsTotal.WithLabelValues(freshness.String()).Inc()

	entries := gen.Entries
	if entries == nil {
		entries = []domain.CacheEntry{}
	}
	return domain.TopProducts{
		Entries:    entries,
		Generation: gen.UpdatedAt,
		Freshness:  freshness,
		Message:    freshness.Message(),
	}, nil
}
