package ports

import (
	"context"

	"github.com/Gunvolt24/top_products/internal/domain"
)

// RankingReader — read-only доступ к таблице рейтинга.
type RankingReader interface {
	// ReadRanked — строки по rank_order ASC (не больше limit) и метка их поколения.
	// Строки и метка относятся к одному поколению.
	ReadRanked(ctx context.Context, limit int) (domain.Generation, error)
}

// RankingStore — граница кэша рейтинга: ровно две операции.
// Единственный писатель — обновление кэша; читатели получают только RankingReader.
type RankingStore interface {
	RankingReader

	// ReplaceRanked — атомарно заменяет содержимое таблицы новым рейтингом.
	// Конкурентный читатель видит либо старое поколение целиком, либо новое.
	// При ошибке таблица остаётся в состоянии до вызова.
	ReplaceRanked(ctx context.Context, entries []domain.CacheEntry) error
}
