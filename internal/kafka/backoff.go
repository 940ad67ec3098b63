package kafka

import (
	"context"
	"math/rand"
	"time"
)

// backoff — экспоненциальная пауза между повторами с equal-jitter.
// Не потокобезопасен: принадлежит одному циклу Run.
type backoff struct {
	initial time.Duration
	max     time.Duration
	current time.Duration
	rnd     *rand.Rand
}

func newBackoff(initial, max time.Duration, seed int64) *backoff {
	if max < initial {
		max = initial
	}
	return &backoff{initial: initial, max: max, current: initial, rnd: rand.New(rand.NewSource(seed))}
}

// Next — очередная пауза; база удваивается до max.
func (b *backoff) Next() time.Duration {
	d := equalJitter(b.rnd, b.current)
	b.current = min(b.current*2, b.max)
	return d
}

// Reset — после успешного fetch снова с начальной паузы.
func (b *backoff) Reset() { b.current = b.initial }

// equalJitter — половина задержки фиксирована, вторая половина случайна: итог в [d/2, d].
func equalJitter(rnd *rand.Rand, d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(rnd.Int63n(int64(d-half)+1))
}

// sleepCtx — ждёт d; false, если ctx отменён раньше.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
