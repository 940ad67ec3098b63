package ports

import (
	"context"

	"github.com/Gunvolt24/top_products/internal/domain"
)

// TopProductsReader — сервис чтения рейтинга для транспорта.
type TopProductsReader interface {
	GetTopProducts(ctx context.Context) (domain.TopProducts, error)
}
