package ports

import (
	"context"

	"github.com/Gunvolt24/top_products/internal/domain"
)

// RefreshPublisher — уведомление внешних подписчиков о новом поколении кэша.
// Публикуется только после коммита; ошибка публикации не отменяет обновление.
type RefreshPublisher interface {
	PublishRefreshed(ctx context.Context, report domain.RefreshReport) error
}

// CacheInvalidator — сброс локальных копий рейтинга.
type CacheInvalidator interface {
	Invalidate()
}
