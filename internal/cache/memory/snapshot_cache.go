package memory

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/Gunvolt24/top_products/internal/domain"
	"github.com/Gunvolt24/top_products/internal/ports"
	"github.com/Gunvolt24/top_products/pkg/metrics"
)

var (
	_ ports.RankingReader    = (*SnapshotCache)(nil)
	_ ports.CacheInvalidator = (*SnapshotCache)(nil)
)

// loadTimeout — предел общего чтения, которое уже не привязано к контексту первого запроса.
const loadTimeout = 5 * time.Second

type snapshot struct {
	gen       domain.Generation
	limit     int
	expiresAt time.Time
}

// SnapshotCache — короткоживущая копия последнего прочитанного поколения перед RankingReader.
// Хранит поколение только целиком; конкурентные промахи схлопываются в один запрос (singleflight).
type SnapshotCache struct {
	next  ports.RankingReader
	ttl   time.Duration
	clock clockwork.Clock

	group singleflight.Group

	mu    sync.Mutex
	snap  *snapshot
	epoch uint64 // растёт при Invalidate; чтение, начатое до сброса, не сохраняется
}

// NewSnapshotCache — ttl <= 0 выключает кэш (каждый вызов идёт в next).
func NewSnapshotCache(next ports.RankingReader, ttl time.Duration, clock clockwork.Clock) *SnapshotCache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &SnapshotCache{next: next, ttl: ttl, clock: clock}
}

func (c *SnapshotCache) ReadRanked(ctx context.Context, limit int) (domain.Generation, error) {
	if c.ttl <= 0 {
		return c.next.ReadRanked(ctx, limit)
	}

	c.mu.Lock()
	snap, epoch := c.snap, c.epoch
	switch {
	case snap != nil && snap.limit == limit && c.clock.Now().Before(snap.expiresAt):
		c.mu.Unlock()
		metrics.CacheOps.WithLabelValues("hit").Inc()
		return snap.gen.Clone(), nil
	case snap != nil && snap.limit == limit:
		c.snap = nil
		metrics.CacheOps.WithLabelValues("expired").Inc()
	default:
		metrics.CacheOps.WithLabelValues("miss").Inc()
	}
	c.mu.Unlock()

	key := strconv.FormatUint(epoch, 10) + ":" + strconv.Itoa(limit)
	ch := c.group.DoChan(key, func() (any, error) {
		// отмена одного ожидающего не должна ронять остальных
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		g, err := c.next.ReadRanked(lctx, limit)
		if err != nil {
			return domain.Generation{}, err
		}

		c.mu.Lock()
		if c.epoch == epoch {
			c.snap = &snapshot{gen: g.Clone(), limit: limit, expiresAt: c.clock.Now().Add(c.ttl)}
		}
		c.mu.Unlock()
		return g, nil
	})

	select {
	case <-ctx.Done():
		return domain.Generation{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return domain.Generation{}, res.Err
		}
		return res.Val.(domain.Generation).Clone(), nil
	}
}

// Invalidate — сбрасывает копию (например, по событию о новом поколении).
func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	c.snap = nil
	c.epoch++
	c.mu.Unlock()
	metrics.CacheOps.WithLabelValues("invalidated").Inc()
}
