package validate_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Gunvolt24/top_products/internal/domain"
	"github.com/Gunvolt24/top_products/pkg/validate"
	"github.com/shopspring/decimal"
)

var stamp = time.Date(2025, 11, 26, 6, 22, 19, 0, time.UTC)

func validRanking() []domain.CacheEntry {
	return domain.Rank([]domain.SalesRecord{
		{ProductID: 1, Name: "Kettle", Price: decimal.RequireFromString("19.99"), SalesCount: 30},
		{ProductID: 2, Name: "Mug", Price: decimal.RequireFromString("4.50"), SalesCount: 30},
		{ProductID: 3, Name: "Spoon", Price: decimal.Zero, SalesCount: 7},
	}, stamp, domain.DefaultTopN)
}

func TestRankingValidator_Validate(t *testing.T) {
	v := validate.NewRankingValidator()
	ctx := context.Background()

	t.Run("valid ranking", func(t *testing.T) {
		if err := v.Validate(ctx, validRanking(), domain.DefaultTopN); err != nil {
			t.Fatalf("expected valid ranking, got: %v", err)
		}
	})

	t.Run("empty ranking", func(t *testing.T) {
		if err := v.Validate(ctx, nil, domain.DefaultTopN); err != nil {
			t.Fatalf("expected empty ranking to be valid, got: %v", err)
		}
	})

	cases := []struct {
		name   string
		mutate func([]domain.CacheEntry) []domain.CacheEntry
		limit  int
		msg    string
	}{
		{
			name:   "over limit",
			mutate: func(e []domain.CacheEntry) []domain.CacheEntry { return e },
			limit:  2,
			msg:    "при лимите",
		},
		{
			name: "rank gap",
			mutate: func(e []domain.CacheEntry) []domain.CacheEntry {
				e[2].RankOrder = 4
				return e
			},
			msg: "rank_order=4",
		},
		{
			name: "duplicate product",
			mutate: func(e []domain.CacheEntry) []domain.CacheEntry {
				e[1].ProductID = 1
				return e
			},
			msg: "дважды",
		},
		{
			name: "sales grow down the ranking",
			mutate: func(e []domain.CacheEntry) []domain.CacheEntry {
				e[2].SalesCount = 100
				return e
			},
			msg: "sales_count растёт",
		},
		{
			name: "mixed stamps",
			mutate: func(e []domain.CacheEntry) []domain.CacheEntry {
				e[1].UpdatedAt = stamp.Add(time.Second)
				return e
			},
			msg: "разные updated_at",
		},
		{
			name: "zero stamp",
			mutate: func(e []domain.CacheEntry) []domain.CacheEntry {
				for i := range e {
					e[i].UpdatedAt = time.Time{}
				}
				return e
			},
			msg: "updated_at",
		},
		{
			name: "negative price",
			mutate: func(e []domain.CacheEntry) []domain.CacheEntry {
				e[0].Price = decimal.NewFromInt(-1)
				return e
			},
			msg: "price",
		},
		{
			name: "negative sales",
			mutate: func(e []domain.CacheEntry) []domain.CacheEntry {
				e[2].SalesCount = -1
				return e
			},
			msg: "sales_count отрицательный",
		},
		{
			name: "empty name",
			mutate: func(e []domain.CacheEntry) []domain.CacheEntry {
				e[0].Name = ""
				return e
			},
			msg: "name",
		},
		{
			name: "non-positive product id",
			mutate: func(e []domain.CacheEntry) []domain.CacheEntry {
				e[0].ProductID = 0
				return e
			},
			msg: "product_id",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			limit := tc.limit
			if limit == 0 {
				limit = domain.DefaultTopN
			}
			err := v.Validate(ctx, tc.mutate(validRanking()), limit)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, validate.ErrInvalidRanking) {
				t.Fatalf("expected ErrInvalidRanking, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("error %q does not contain %q", err.Error(), tc.msg)
			}
		})
	}
}
