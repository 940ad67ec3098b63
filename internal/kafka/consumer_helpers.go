package kafka

import (
	"context"
	"errors"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/top_products/pkg/metrics"
)

// handleMessage — true, если оффсет можно коммитить.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	hctx, cancel := context.WithTimeout(ctx, c.processTimeout)
	defer cancel()

	err := c.handler.HandleEvent(hctx, msg.Value)
	switch {
	case err == nil:
		metrics.KafkaEventsProcessed.WithLabelValues(topic).Inc()
		return true
	case errors.Is(err, ErrInvalidEvent):
		// мусор повторно не читаем
		metrics.KafkaEventsFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "invalid refresh event partition=%d offset=%d: %v (skipped)", msg.Partition, msg.Offset, err)
		return true
	default:
		metrics.KafkaEventsFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "handle refresh event partition=%d offset=%d: %v (will retry)", msg.Partition, msg.Offset, err)
		return false
	}
}

// commitSafely — сбой коммита только логируется: событие идемпотентно, повтор безвреден.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if err := c.reader.CommitMessages(ctx, *msg); err != nil {
		c.log.Warnf(ctx, "commit refresh event offset=%d: %v", msg.Offset, err)
	}
}
