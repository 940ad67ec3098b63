package metrics

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Метки результата обновления.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	RefreshTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "top_products_refresh_total",
			Help: "Number of cache refresh runs by result",
		},
		[]string{"result"}, // success|failure
	)
	RefreshDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "top_products_refresh_duration_seconds",
			Help:    "Duration of cache refresh runs",
			Buckets: prometheus.DefBuckets,
		},
	)
	GenerationTimestamp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "top_products_cache_generation_timestamp_seconds",
			Help: "Unix time of the last committed cache generation",
		},
	)
	CacheEntries = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "top_products_cache_entries",
			Help: "Number of rows written by the last committed refresh",
		},
	)
)

var (
	ReadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "top_products_reads_total",
			Help: "Top products reads by freshness classification",
		},
		[]string{"freshness"}, // fresh|stale|empty|error
	)
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "top_products_snapshot_cache_operations_total",
			Help: "In-process snapshot cache operations",
		},
		[]string{"op"}, // hit|miss|expired|invalidated
	)
)

var (
	KafkaEventsConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "top_products_kafka_events_consumed_total",
			Help: "Refresh events fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaEventsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "top_products_kafka_events_processed_total",
			Help: "Refresh events handled successfully",
		},
		[]string{"topic"},
	)
	KafkaEventsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "top_products_kafka_events_failed_total",
			Help: "Refresh events that failed to process",
		},
		[]string{"topic"},
	)
	KafkaEventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "top_products_kafka_events_published_total",
			Help: "Refresh events published by result",
		},
		[]string{"result"}, // success|failure
	)
)

var registerOnce sync.Once

// Collectors — все коллекторы сервиса (для push и собственных реестров).
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		RefreshTotal, RefreshDuration, GenerationTimestamp, CacheEntries,
		ReadsTotal, CacheOps,
		KafkaEventsConsumed, KafkaEventsProcessed, KafkaEventsFailed, KafkaEventsPublished,
	}
}

// MustRegister — регистрирует коллекторы в глобальном реестре (повторный вызов безопасен).
func MustRegister() {
	registerOnce.Do(func() {
		for _, c := range Collectors() {
			if err := prometheus.Register(c); err != nil {
				var are prometheus.AlreadyRegisteredError
				if !errors.As(err, &are) {
					panic(err)
				}
			}
		}
	})
}
