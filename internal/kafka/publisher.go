package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/top_products/internal/domain"
	"github.com/Gunvolt24/top_products/internal/ports"
	"github.com/Gunvolt24/top_products/pkg/metrics"
)

var _ ports.RefreshPublisher = (*Publisher)(nil)

// eventKey — один ключ на все события: одна партиция, порядок поколений сохраняется.
const eventKey = "top-products"

// writer — минимальный контракт над kafka.Writer.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher — отправка RefreshedEvent после коммита нового поколения.
type Publisher struct {
	writer    writer
	timeout   time.Duration
	closeOnce sync.Once
}

func NewPublisher(cfg PublisherConfig) *Publisher {
	timeout := cfg.WriteTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           timeout,
	}
	return &Publisher{writer: w, timeout: timeout}
}

// PublishRefreshed — синхронная запись одного события с таймаутом.
func (p *Publisher) PublishRefreshed(ctx context.Context, report domain.RefreshReport) error {
	payload, err := json.Marshal(NewRefreshedEvent(report))
	if err != nil {
		return fmt.Errorf("marshal refresh event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(eventKey), Value: payload}); err != nil {
		metrics.KafkaEventsPublished.WithLabelValues(metrics.ResultFailure).Inc()
		return fmt.Errorf("write refresh event: %w", err)
	}
	metrics.KafkaEventsPublished.WithLabelValues(metrics.ResultSuccess).Inc()
	return nil
}

func (p *Publisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}
