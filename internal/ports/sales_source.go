package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/top_products/internal/domain"
)

// SalesSource — агрегаты продаж по транзакционным данным (orders, order_items, products).
type SalesSource interface {
	// TopSelling — товары по сумме quantity за позиции с created_at >= since
	// в заказах со статусами statuses; сортировка sales_count DESC, product_id ASC; не больше limit.
	TopSelling(ctx context.Context, since time.Time, statuses []string, limit int) ([]domain.SalesRecord, error)
}
