package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnv_Defaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, StorePostgres, cfg.Ledger.StoreDriver)
	assert.Equal(t, 5, cfg.Ledger.MaxUpdateAttempts)
	assert.Equal(t, 3, cfg.Ledger.CodeRetryAttempts)
	assert.Equal(t, 5*time.Minute, cfg.Ledger.CatalogCacheTTL)
	assert.Equal(t, 5*time.Second, cfg.Ledger.PublishTimeout)
	assert.Equal(t, 1024, cfg.Ledger.PublishQueueSize)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("LEDGER_MAX_UPDATE_ATTEMPTS", "9")
	t.Setenv("LEDGER_CATALOG_CACHE_TTL", "30s")
	t.Setenv("LEDGER_PUBLISH_TIMEOUT", "750ms")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("LOGGER_DISABLE_CALLER", "true")

	cfg := LoadEnv()

	assert.Equal(t, StoreMemory, cfg.Ledger.StoreDriver)
	assert.Equal(t, 9, cfg.Ledger.MaxUpdateAttempts)
	assert.Equal(t, 30*time.Second, cfg.Ledger.CatalogCacheTTL)
	assert.Equal(t, 750*time.Millisecond, cfg.Ledger.PublishTimeout)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Logger.DisableCaller)
}

func TestLoadEnv_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("LEDGER_CODE_RETRY_ATTEMPTS", "lots")
	t.Setenv("LEDGER_CATALOG_CACHE_TTL", "soon")

	cfg := LoadEnv()

	assert.Equal(t, 3, cfg.Ledger.CodeRetryAttempts)
	assert.Equal(t, 5*time.Minute, cfg.Ledger.CatalogCacheTTL)
}
