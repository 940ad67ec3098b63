package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/top_products/internal/domain"
	"github.com/Gunvolt24/top_products/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Способы замены рейтинга; оба атомарны для читателей.
const (
	StrategyReplace = "replace" // DELETE всех строк + COPY нового набора
	StrategyUpsert  = "upsert"  // INSERT ... ON CONFLICT + DELETE выпавших товаров
)

const rankingTable = "top_products_cache"

var rankingColumns = []string{"product_id", "name", "price", "image_url", "sales_count", "rank_order", "updated_at"}

// ErrUnknownStrategy — неизвестный способ записи рейтинга.
var ErrUnknownStrategy = errors.New("unknown ranking write strategy")

var _ ports.RankingStore = (*RankingRepository)(nil)

// RankingRepository — таблица top_products_cache.
// Запись идёт одной транзакцией под LOCK TABLE ... IN EXCLUSIVE MODE:
// писатели выстраиваются в очередь, обычные SELECT не блокируются и видят
// закоммиченное поколение целиком (MVCC).
type RankingRepository struct {
	pool     *pgxpool.Pool
	strategy string
}

// NewRankingRepository — пустая strategy означает replace.
func NewRankingRepository(pool *pgxpool.Pool, strategy string) (*RankingRepository, error) {
	switch strategy {
	case "":
		strategy = StrategyReplace
	case StrategyReplace, StrategyUpsert:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
	return &RankingRepository{pool: pool, strategy: strategy}, nil
}

// Strategy — текущий способ записи.
func (r *RankingRepository) Strategy() string { return r.strategy }

// ReadRanked — один SELECT: строки и метка поколения берутся из одного снимка.
func (r *RankingRepository) ReadRanked(ctx context.Context, limit int) (domain.Generation, error) {
	if limit <= 0 {
		limit = domain.DefaultTopN
	}

	rows, err := r.pool.Query(ctx, `
		SELECT product_id, name, price, image_url, sales_count, rank_order, updated_at
		FROM top_products_cache
		ORDER BY rank_order ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return domain.Generation{}, classify("select ranking", err, domain.KindQuery)
	}
	defer rows.Close()

	entries := make([]domain.CacheEntry, 0, limit)
	for rows.Next() {
		var (
			e     domain.CacheEntry
			price pgtype.Numeric
		)
		if err := rows.Scan(&e.ProductID, &e.Name, &price, &e.ImageURL, &e.SalesCount, &e.RankOrder, &e.UpdatedAt); err != nil {
			return domain.Generation{}, classify("scan ranking", err, domain.KindQuery)
		}
		if e.Price, err = numericToDecimal(price); err != nil {
			return domain.Generation{}, domain.NewStoreError(domain.KindQuery, "scan ranking", err)
		}
		e.UpdatedAt = e.UpdatedAt.UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return domain.Generation{}, classify("ranking rows", err, domain.KindQuery)
	}

	return domain.NewGeneration(entries), nil
}

// ReplaceRanked — атомарная замена рейтинга; при любой ошибке транзакция откатывается.
func (r *RankingRepository) ReplaceRanked(ctx context.Context, entries []domain.CacheEntry) error {
	transaction, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return classify("begin", err, domain.KindTransaction)
	}
	// после Commit вернёт ErrTxClosed
	defer func() { _ = transaction.Rollback(ctx) }()

	if _, err = transaction.Exec(ctx, `LOCK TABLE top_products_cache IN EXCLUSIVE MODE`); err != nil {
		return r.txError("lock ranking", err)
	}

	switch r.strategy {
	case StrategyUpsert:
		err = upsertRanking(ctx, transaction, entries)
	default:
		err = replaceRanking(ctx, transaction, entries)
	}
	if err != nil {
		return r.txError(r.strategy, err)
	}

	// Отложенная проверка уникальности rank_order срабатывает здесь.
	if err := transaction.Commit(ctx); err != nil {
		return r.txError("commit", err)
	}
	return nil
}

func (r *RankingRepository) txError(op string, err error) error {
	return domain.NewStoreError(domain.KindTransaction, "replace ranking: "+op, err)
}

// replaceRanking — очистка таблицы и COPY нового набора.
func replaceRanking(ctx context.Context, tx pgx.Tx, entries []domain.CacheEntry) error {
	if _, err := tx.Exec(ctx, `DELETE FROM top_products_cache`); err != nil {
		return fmt.Errorf("delete ranking: %w", err)
	}
	if len(entries) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, rankingRow(e))
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{rankingTable}, rankingColumns, pgx.CopyFromRows(rows)); err != nil {
		return fmt.Errorf("copy ranking: %w", err)
	}
	return nil
}

// upsertRanking — обновление по product_id и обязательное удаление товаров вне нового набора,
// иначе таблица разрастается и в ней остаются старые позиции.
func upsertRanking(ctx context.Context, tx pgx.Tx, entries []domain.CacheEntry) error {
	ids := make([]int64, 0, len(entries))
	batch := &pgx.Batch{}
	for _, e := range entries {
		ids = append(ids, e.ProductID)
		batch.Queue(`
			INSERT INTO top_products_cache (product_id, name, price, image_url, sales_count, rank_order, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (product_id) DO UPDATE SET
				name = EXCLUDED.name,
				price = EXCLUDED.price,
				image_url = EXCLUDED.image_url,
				sales_count = EXCLUDED.sales_count,
				rank_order = EXCLUDED.rank_order,
				updated_at = EXCLUDED.updated_at
		`, rankingRow(e)...)
	}

	if batch.Len() > 0 {
		results := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := results.Exec(); err != nil {
				_ = results.Close()
				return fmt.Errorf("upsert product %d: %w", entries[i].ProductID, err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("upsert batch: %w", err)
		}
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM top_products_cache
		WHERE NOT (product_id = ANY($1::bigint[]))
	`, ids); err != nil {
		return fmt.Errorf("delete dropped products: %w", err)
	}
	return nil
}

func rankingRow(e domain.CacheEntry) []any {
	return []any{e.ProductID, e.Name, decimalToNumeric(e.Price), e.ImageURL, e.SalesCount, e.RankOrder, e.UpdatedAt}
}
