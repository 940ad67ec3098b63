package ports

import (
	"context"

	"github.com/Gunvolt24/top_products/internal/domain"
)

// RankingValidator — проверка инвариантов рейтинга перед записью.
type RankingValidator interface {
	Validate(ctx context.Context, entries []domain.CacheEntry, limit int) error
}
