package kafka

import (
	"context"

	"github.com/Gunvolt24/top_products/internal/ports"
)

// InvalidationHandler — сбрасывает локальную копию рейтинга по событию обновления.
type InvalidationHandler struct {
	cache ports.CacheInvalidator
	log   ports.Logger
}

func NewInvalidationHandler(cache ports.CacheInvalidator, log ports.Logger) *InvalidationHandler {
	return &InvalidationHandler{cache: cache, log: log}
}

// HandleEvent — невалидное событие возвращает ErrInvalidEvent (оффсет коммитится, кэш не трогаем).
func (h *InvalidationHandler) HandleEvent(ctx context.Context, raw []byte) error {
	ev, err := DecodeRefreshedEvent(raw)
	if err != nil {
		return err
	}
	h.cache.Invalidate()
	h.log.Infof(ctx, "snapshot cache invalidated generation=%s count=%d", ev.Generation.Format("2006-01-02T15:04:05.000000Z07:00"), ev.Count)
	return nil
}
