package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/top_products/internal/domain"
	"github.com/Gunvolt24/top_products/internal/ports"
)

// Проверка, что RankingValidator удовлетворяет интерфейсу RankingValidator.
var _ ports.RankingValidator = (*RankingValidator)(nil)

// ErrInvalidRanking — базовая (sentinel error) ошибка валидации рейтинга.
var ErrInvalidRanking = errors.New("ranking validation failed")

// RankingValidator — проверяет инварианты рейтинга до записи в кэш.
type RankingValidator struct{}

// NewRankingValidator — конструктор RankingValidator.
// Возвращает ErrInvalidRanking (с обёрнутой причиной) при любой проблеме.
func NewRankingValidator() *RankingValidator { return &RankingValidator{} }

// Validate — проверяет набор строк одного поколения:
// не больше limit строк, rank_order = 1..N без пропусков, уникальные product_id,
// sales_count не растёт от первого места к последнему, одна метка updated_at на всё поколение.
func (v *RankingValidator) Validate(_ context.Context, entries []domain.CacheEntry, limit int) error {
	if limit > 0 && len(entries) > limit {
		return fmt.Errorf("%w: %d строк при лимите %d", ErrInvalidRanking, len(entries), limit)
	}

	seen := make(map[int64]struct{}, len(entries))
	for i := range entries {
		e := &entries[i]
		if err := v.validateEntry(e); err != nil {
			return err
		}
		if e.RankOrder != i+1 {
			return fmt.Errorf("%w: позиция %d имеет rank_order=%d", ErrInvalidRanking, i+1, e.RankOrder)
		}
		if _, dup := seen[e.ProductID]; dup {
			return fmt.Errorf("%w: product_id=%d встречается дважды", ErrInvalidRanking, e.ProductID)
		}
		seen[e.ProductID] = struct{}{}

		if i == 0 {
			continue
		}
		prev := &entries[i-1]
		if e.SalesCount > prev.SalesCount {
			return fmt.Errorf("%w: sales_count растёт на rank_order=%d (%d > %d)",
				ErrInvalidRanking, e.RankOrder, e.SalesCount, prev.SalesCount)
		}
		if !e.UpdatedAt.Equal(prev.UpdatedAt) {
			return fmt.Errorf("%w: разные updated_at внутри поколения", ErrInvalidRanking)
		}
	}
	return nil
}

// validateEntry — поля одной строки.
func (v *RankingValidator) validateEntry(e *domain.CacheEntry) error {
	if e.ProductID <= 0 {
		return fmt.Errorf("%w: product_id должен быть положительным", ErrInvalidRanking)
	}
	if e.Name == "" {
		return fmt.Errorf("%w: name обязателен (product_id=%d)", ErrInvalidRanking, e.ProductID)
	}
	if e.Price.IsNegative() {
		return fmt.Errorf("%w: price отрицательная (product_id=%d)", ErrInvalidRanking, e.ProductID)
	}
	if e.SalesCount < 0 {
		return fmt.Errorf("%w: sales_count отрицательный (product_id=%d)", ErrInvalidRanking, e.ProductID)
	}
	if e.UpdatedAt.IsZero() {
		return fmt.Errorf("%w: updated_at не проставлен (product_id=%d)", ErrInvalidRanking, e.ProductID)
	}
	return nil
}
