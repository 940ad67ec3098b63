package kafka

import (
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// События обновления крошечные: большой буфер выборки не нужен.
const (
	fetchMaxBytes = 1 << 20
	fetchMaxWait  = time.Second
)

// ConsumerConfig — подписка API-инстанса на события обновления.
// Каждый инстанс читает топик своей группой GroupID-InstanceID: сбросить кэш должен каждый.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	InstanceID  string
	StartOffset string // first|last; у новой группы по умолчанию last

	ProcessTimeout time.Duration
	RetryInitial   time.Duration
	RetryMax       time.Duration
}

// ReaderConfig — настройки kafka.Reader с ручным коммитом оффсетов.
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.InstanceGroupID(),
		Topic:          c.Topic,
		MinBytes:       1,
		MaxBytes:       fetchMaxBytes,
		MaxWait:        fetchMaxWait,
		CommitInterval: 0,
		StartOffset:    kafka.LastOffset,
	}
	if strings.EqualFold(strings.TrimSpace(c.StartOffset), "first") {
		rc.StartOffset = kafka.FirstOffset
	}
	return rc
}

// InstanceGroupID — группа консьюмера этого инстанса.
func (c *ConsumerConfig) InstanceGroupID() string {
	id := strings.TrimSpace(c.InstanceID)
	if id == "" {
		return c.GroupID
	}
	return c.GroupID + "-" + id
}

// NewInstanceID — hostname с коротким случайным суффиксом (два процесса на одном хосте не делят группу).
func NewInstanceID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	host, err := os.Hostname()
	if err != nil || host == "" {
		return suffix
	}
	return host + "-" + suffix
}

// PublisherConfig — запись событий обновления из джобы.
type PublisherConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}
