package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTopN — размер рейтинга по умолчанию.
const DefaultTopN = 10

// Статусы заказов, которые учитываются в продажах.
const (
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

// CountedStatuses — статусы заказов, попадающие в агрегат продаж.
func CountedStatuses() []string {
	return []string{OrderStatusShipped, OrderStatusDelivered}
}

// SalesRecord — агрегат продаж одного товара за окно (не хранится, живёт в рамках одного обновления).
type SalesRecord struct {
	ProductID  int64           `json:"product_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	ImageURL   string          `json:"image_url"`
	SalesCount int64           `json:"sales_count"`
}

// CacheEntry — строка таблицы рейтинга (top_products_cache).
// UpdatedAt наружу не отдаётся: это внутренняя метка поколения.
type CacheEntry struct {
	ProductID  int64           `json:"product_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	ImageURL   string          `json:"image_url"`
	SalesCount int64           `json:"sales_count"`
	RankOrder  int             `json:"rank_order"`
	UpdatedAt  time.Time       `json:"-"`
}

// Generation — набор строк одного обновления и его метка времени.
// UpdatedAt — max(updated_at) по тем же самым строкам; нулевое значение у пустого кэша.
type Generation struct {
	Entries   []CacheEntry
	UpdatedAt time.Time
}

// Empty — в кэше нет ни одной строки.
func (g Generation) Empty() bool { return len(g.Entries) == 0 }

// NewGeneration — собирает поколение из прочитанных строк, метку считает в памяти.
func NewGeneration(entries []CacheEntry) Generation {
	g := Generation{Entries: entries}
	for i := range entries {
		if entries[i].UpdatedAt.After(g.UpdatedAt) {
			g.UpdatedAt = entries[i].UpdatedAt
		}
	}
	return g
}

// Clone — глубокая копия поколения (слайс строк не разделяется).
func (g Generation) Clone() Generation {
	if g.Entries == nil {
		return Generation{UpdatedAt: g.UpdatedAt}
	}
	return Generation{
		Entries:   append([]CacheEntry(nil), g.Entries...),
		UpdatedAt: g.UpdatedAt,
	}
}

// Rank — превращает отсортированный список продаж в строки рейтинга:
// обрезает до limit, проставляет rank_order = 1..N в порядке входа и одну метку stampedAt на все строки.
// Если limit <= 0, используется DefaultTopN.
func Rank(records []SalesRecord, stampedAt time.Time, limit int) []CacheEntry {
	if limit <= 0 {
		limit = DefaultTopN
	}
	if len(records) > limit {
		records = records[:limit]
	}

	entries := make([]CacheEntry, 0, len(records))
	for i, r := range records {
		entries = append(entries, CacheEntry{
			ProductID:  r.ProductID,
			Name:       r.Name,
			Price:      r.Price,
			ImageURL:   r.ImageURL,
			SalesCount: r.SalesCount,
			RankOrder:  i + 1,
			UpdatedAt:  stampedAt,
		})
	}
	return entries
}

// TopProducts — результат чтения рейтинга для клиента.
type TopProducts struct {
	Entries    []CacheEntry
	Generation time.Time
	Freshness  Freshness
	Message    string
}

// RefreshReport — итог одного успешного обновления кэша.
type RefreshReport struct {
	Generation time.Time
	Count      int
	Strategy   string
	Took       time.Duration
}
