package config_test

import (
	"slices"
	"strings"
	"testing"
	"time"

	cfg "github.com/Gunvolt24/top_products/config"
)

// TestLoadWithPrefix_Defaults — проверка наличия значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("TOP_PRODUCTS_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" || c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP defaults wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadTimeout != 10*time.Second || c.HTTP.WriteTimeout != 10*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadHeaderTimeout != 5*time.Second || c.HTTP.IdleTimeout != 60*time.Second {
		t.Fatalf("HTTP header/idle timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.HandlerTimeout != 3*time.Second || c.HTTP.GracefulTimeout != 5*time.Second {
		t.Fatalf("HTTP handler/graceful timeouts wrong: %+v", c.HTTP)
	}

	// Metrics
	if c.Metrics.PushURL != "" || c.Metrics.JobName != "top_products_refresh" {
		t.Fatalf("Metrics defaults wrong: %+v", c.Metrics)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "top-products" || c.Tracing.Endpoint != "jaeger:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Postgres
	if c.Postgres.DSN == "" || c.Postgres.MaxConns != 10 {
		t.Fatalf("Postgres defaults wrong: %+v", c.Postgres)
	}
	if c.Postgres.LogQueries || c.Postgres.SlowQuery != 100*time.Millisecond {
		t.Fatalf("Postgres query log defaults wrong: %+v", c.Postgres)
	}

	// Kafka
	if c.Kafka.Enabled {
		t.Fatalf("Kafka.Enabled: want false")
	}
	if !slices.Equal(c.Kafka.Brokers, []string{"kafka:9092"}) {
		t.Fatalf("Kafka.Brokers: want [kafka:9092], got %v", c.Kafka.Brokers)
	}
	if c.Kafka.Topic != "top-products-refreshed" || c.Kafka.GroupID != "top-products-api" || c.Kafka.InstanceID != "" || c.Kafka.StartOffset != "last" {
		t.Fatalf("Kafka defaults wrong: %+v", c.Kafka)
	}
	if c.Kafka.ProcessTimeout != 5*time.Second || c.Kafka.RetryInitial != time.Second ||
		c.Kafka.RetryMax != 30*time.Second || c.Kafka.WriteTimeout != 5*time.Second {
		t.Fatalf("Kafka timeouts wrong: %+v", c.Kafka)
	}

	// Cache
	if c.Cache.TTL != 5*time.Second {
		t.Fatalf("Cache.TTL: want 5s, got %v", c.Cache.TTL)
	}

	// Ranking
	if c.Ranking.TopN != 10 || c.Ranking.FreshnessWindow != time.Hour ||
		c.Ranking.SalesWindow != 30*24*time.Hour || c.Ranking.Strategy != cfg.StrategyReplace {
		t.Fatalf("Ranking defaults wrong: %+v", c.Ranking)
	}

	// Refresh
	if c.Refresh.Timeout != time.Minute {
		t.Fatalf("Refresh.Timeout: want 1m, got %v", c.Refresh.Timeout)
	}

	// Logger
	if c.Logger.IsProd || c.Logger.FilePath != "" || c.Logger.MaxSizeMB != 100 {
		t.Fatalf("Logger defaults wrong: %+v", c.Logger)
	}
}

// Меняем окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	const p = "TOP_PRODUCTS_TEST_OVR"

	t.Setenv(p+"_HTTP_ADDR", ":9999")
	t.Setenv(p+"_HTTP_GIN_MODE", "release")
	t.Setenv(p+"_HTTP_HANDLER_TIMEOUT", "4500ms")
	t.Setenv(p+"_METRICS_PUSH_URL", "http://pushgateway:9091")
	t.Setenv(p+"_TRACING_OTEL_ENABLED", "true")
	t.Setenv(p+"_TRACING_OTEL_SAMPLE_RATIO", "0.25")
	t.Setenv(p+"_POSTGRES_DSN", "postgres://u:p@h:5432/db?sslmode=disable")
	t.Setenv(p+"_POSTGRES_MAX_CONNS", "42")
	t.Setenv(p+"_POSTGRES_LOG_QUERIES", "true")
	t.Setenv(p+"_KAFKA_ENABLED", "true")
	t.Setenv(p+"_KAFKA_BROKERS", "k1:9092,k2:9093")
	t.Setenv(p+"_KAFKA_START_OFFSET", "first")
	t.Setenv(p+"_CACHE_TTL", "0s")
	t.Setenv(p+"_RANKING_TOP_N", "5")
	t.Setenv(p+"_RANKING_FRESHNESS_WINDOW", "300s")
	t.Setenv(p+"_RANKING_SALES_WINDOW", "168h")
	t.Setenv(p+"_RANKING_STRATEGY", " UPSERT ")
	t.Setenv(p+"_REFRESH_TIMEOUT", "30s")
	t.Setenv(p+"_LOGGER_IS_PROD", "true")
	t.Setenv(p+"_LOGGER_FILE_PATH", "/var/log/top-products/app.log")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	if c.HTTP.Addr != ":9999" || c.HTTP.GinMode != "release" || c.HTTP.HandlerTimeout != 4500*time.Millisecond {
		t.Fatalf("HTTP overrides wrong: %+v", c.HTTP)
	}
	if c.Metrics.PushURL != "http://pushgateway:9091" {
		t.Fatalf("Metrics overrides wrong: %+v", c.Metrics)
	}
	if !c.Tracing.Enabled || c.Tracing.SampleRatio != 0.25 {
		t.Fatalf("Tracing overrides wrong: %+v", c.Tracing)
	}
	if c.Postgres.DSN != "postgres://u:p@h:5432/db?sslmode=disable" || c.Postgres.MaxConns != 42 || !c.Postgres.LogQueries {
		t.Fatalf("Postgres overrides wrong: %+v", c.Postgres)
	}
	if !c.Kafka.Enabled || !slices.Equal(c.Kafka.Brokers, []string{"k1:9092", "k2:9093"}) || c.Kafka.StartOffset != "first" {
		t.Fatalf("Kafka overrides wrong: %+v", c.Kafka)
	}
	if c.Cache.TTL != 0 {
		t.Fatalf("Cache.TTL override wrong: %v", c.Cache.TTL)
	}
	if c.Ranking.TopN != 5 || c.Ranking.FreshnessWindow != 300*time.Second ||
		c.Ranking.SalesWindow != 7*24*time.Hour || c.Ranking.Strategy != cfg.StrategyUpsert {
		t.Fatalf("Ranking overrides wrong: %+v", c.Ranking)
	}
	if c.Refresh.Timeout != 30*time.Second {
		t.Fatalf("Refresh overrides wrong: %+v", c.Refresh)
	}
	if !c.Logger.IsProd || c.Logger.FilePath != "/var/log/top-products/app.log" {
		t.Fatalf("Logger overrides wrong: %+v", c.Logger)
	}
}

// Тоже меняем окружение — но с невалидными значениями.
func TestLoadWithPrefix_InvalidValue_ReturnsError(t *testing.T) {
	const p = "TOP_PRODUCTS_TEST_BAD"
	t.Setenv(p+"_HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := cfg.LoadWithPrefix(p); err == nil {
		t.Fatalf("expected error for invalid duration, got nil")
	}
}

func TestLoadWithPrefix_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		msg  string
	}{
		{"top_n zero", map[string]string{"_RANKING_TOP_N": "0"}, "top_n"},
		{"negative freshness", map[string]string{"_RANKING_FRESHNESS_WINDOW": "-1s"}, "freshness_window"},
		{"zero sales window", map[string]string{"_RANKING_SALES_WINDOW": "0s"}, "sales_window"},
		{"unknown strategy", map[string]string{"_RANKING_STRATEGY": "merge"}, "strategy"},
		{"kafka without topic", map[string]string{"_KAFKA_ENABLED": "true", "_KAFKA_TOPIC": ""}, "kafka"},
	}

	for i, tt := range tests {
		tt := tt
		p := "TOP_PRODUCTS_TEST_VAL" + strings.Repeat("X", i+1)
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(p+k, v)
			}
			_, err := cfg.LoadWithPrefix(p)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Fatalf("error %q does not contain %q", err.Error(), tt.msg)
			}
		})
	}
}
