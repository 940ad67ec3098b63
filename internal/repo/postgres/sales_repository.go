package postgres

import (
	"context"
	"time"

	"github.com/Gunvolt24/top_products/internal/domain"
	"github.com/Gunvolt24/top_products/internal/ports"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.SalesSource = (*SalesRepository)(nil)

// SalesRepository — агрегаты продаж по orders/order_items/products.
type SalesRepository struct {
	pool *pgxpool.Pool
}

func NewSalesRepository(pool *pgxpool.Pool) *SalesRepository { return &SalesRepository{pool: pool} }

// TopSelling — сумма quantity по товару за окно; при равенстве продаж меньший product_id выше.
func (r *SalesRepository) TopSelling(ctx context.Context, since time.Time, statuses []string, limit int) ([]domain.SalesRecord, error) {
	if limit <= 0 {
		limit = domain.DefaultTopN
	}

	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.name, p.price, p.image_url, SUM(oi.quantity)::bigint AS sales_count
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		WHERE oi.created_at >= $1
		  AND o.status = ANY($2::text[])
		GROUP BY p.id, p.name, p.price, p.image_url
		ORDER BY sales_count DESC, p.id ASC
		LIMIT $3
	`, since, statuses, limit)
	if err != nil {
		return nil, classify("select top selling", err, domain.KindQuery)
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0, limit)
	for rows.Next() {
		var (
			rec   domain.SalesRecord
			price pgtype.Numeric
		)
		if err := rows.Scan(&rec.ProductID, &rec.Name, &price, &rec.ImageURL, &rec.SalesCount); err != nil {
			return nil, classify("scan top selling", err, domain.KindQuery)
		}
		if rec.Price, err = numericToDecimal(price); err != nil {
			return nil, domain.NewStoreError(domain.KindQuery, "scan top selling", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("top selling rows", err, domain.KindQuery)
	}
	return records, nil
}
