//go:build integration

package testutil

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// OrderLine — позиция заказа для фикстуры.
type OrderLine struct {
	ProductID int64
	Quantity  int
}

// SetupPostgres — контейнер + миграции + пул; всё закрывается через t.Cleanup.
func SetupPostgres(t *testing.T) (*PGContainer, *pgxpool.Pool) {
	t.Helper()

	// длинный контекст — только на подъём контейнера
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	pg, stopPG, err := StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })

	require.NoError(t, ApplyMigrationsGoose(pg.DSN))
	return pg, pg.Pool
}

// SeedProduct — товар с ценой в виде строки ("199.90"); возвращает id.
func SeedProduct(ctx context.Context, t *testing.T, pool *pgxpool.Pool, name, price string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(ctx, `
		INSERT INTO products (name, price, image_url)
		VALUES ($1, $2::numeric, $3)
		RETURNING id
	`, name, price, "https://img.example.com/"+UniqSuffix()+".png").Scan(&id)
	require.NoError(t, err)
	return id
}

// SeedOrder — заказ со статусом и позициями; created_at позиций совпадает с заказом.
func SeedOrder(ctx context.Context, t *testing.T, pool *pgxpool.Pool, status string, createdAt time.Time, lines ...OrderLine) int64 {
	t.Helper()

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(ctx) }()

	var orderID int64
	require.NoError(t, tx.QueryRow(ctx, `
		INSERT INTO orders (status, created_at) VALUES ($1, $2) RETURNING id
	`, status, createdAt).Scan(&orderID))

	rows := make([][]any, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []any{orderID, l.ProductID, int32(l.Quantity), createdAt})
	}
	_, err = tx.CopyFrom(ctx, pgx.Identifier{"order_items"},
		[]string{"order_id", "product_id", "quantity", "created_at"}, pgx.CopyFromRows(rows))
	require.NoError(t, err)

	require.NoError(t, tx.Commit(ctx))
	return orderID
}

// CacheRowCount — число строк в top_products_cache.
func CacheRowCount(ctx context.Context, t *testing.T, pool *pgxpool.Pool) int {
	t.Helper()

	var n int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM top_products_cache`).Scan(&n))
	return n
}
