package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus/push"
)

// PushRefresh — отправляет метрики обновления в Pushgateway (джоба короткоживущая,
// скрейпить её некому). Пустой url — no-op.
func PushRefresh(ctx context.Context, url, job string) error {
	if url == "" {
		return nil
	}
	p := push.New(url, job).
		Collector(RefreshTotal).
		Collector(RefreshDuration).
		Collector(GenerationTimestamp).
		Collector(CacheEntries)
	if err := p.PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}
	return nil
}
