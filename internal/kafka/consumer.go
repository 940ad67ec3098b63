package kafka

import (
	"context"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/top_products/internal/ports"
	"github.com/Gunvolt24/top_products/pkg/metrics"
)

var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — минимальный контракт над kafka.Reader (подменяется моками).
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// eventHandler — реакция на событие обновления (сброс локального кэша).
type eventHandler interface {
	HandleEvent(ctx context.Context, raw []byte) error
}

// defaultHandlerTries — попыток обработать одно событие; reader в рамках сессии его повторно не отдаст.
const defaultHandlerTries = 3

// Consumer — подписка API-инстанса на события о новом поколении рейтинга.
type Consumer struct {
	reader         reader
	handler        eventHandler
	log            ports.Logger
	processTimeout time.Duration
	fetchRetry     *backoff
	handlerPause   time.Duration // пауза после сбоя обработчика, до повтора того же события
	handlerTries   int
	closeOnce      sync.Once
}

// NewConsumer — reader настроен на ручной коммит оффсетов.
func NewConsumer(cfg *ConsumerConfig, handler eventHandler, log ports.Logger) *Consumer {
	pt := cfg.ProcessTimeout
	if pt <= 0 {
		pt = 5 * time.Second
	}
	rInit := cfg.RetryInitial
	if rInit <= 0 {
		rInit = time.Second
	}
	rMax := cfg.RetryMax
	if rMax <= 0 {
		rMax = 30 * time.Second
	}

	return &Consumer{
		reader:         kafka.NewReader(cfg.ReaderConfig()),
		handler:        handler,
		log:            log,
		processTimeout: pt,
		fetchRetry:     newBackoff(rInit, rMax, time.Now().UnixNano()),
		handlerPause:   min(rInit, 500*time.Millisecond),
		handlerTries:   defaultHandlerTries,
	}
}

// Run — цикл чтения событий до отмены ctx.
// Ошибка брокера → пауза с растущим backoff. Событие обработано или признано мусором → коммит.
// Сбой обработчика → повтор того же сообщения после паузы; после handlerTries попыток
// событие пропускается и коммитится (следующее событие всё равно сбросит кэш).
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "refresh events consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			pause := c.fetchRetry.Next()
			c.log.Warnf(ctx, "fetch refresh event failed: %v (will retry in %s)", err, pause)
			if !sleepCtx(ctx, pause) {
				return ctx.Err()
			}
			continue
		}
		c.fetchRetry.Reset()
		metrics.KafkaEventsConsumed.WithLabelValues(rc.Topic).Inc()

		done := c.handleMessage(ctx, rc.Topic, &msg)
		for try := 1; !done && try < c.handlerTries; try++ {
			if !sleepCtx(ctx, c.handlerPause) {
				return ctx.Err()
			}
			done = c.handleMessage(ctx, rc.Topic, &msg)
		}
		if !done {
			c.log.Warnf(ctx, "refresh event partition=%d offset=%d dropped after %d tries", msg.Partition, msg.Offset, max(c.handlerTries, 1))
		}
		c.commitSafely(ctx, &msg)
	}
}

// Close — закрывает reader; повторные вызовы — no-op.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
