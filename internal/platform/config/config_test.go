package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newViper(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, EventsNone, cfg.EventsDriver)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 256, cfg.TenantCacheSize)
	assert.Equal(t, 5*time.Minute, cfg.TenantCacheTTL)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Contains(t, cfg.CORSAllowedOrigins, "http://localhost:5173")
	assert.Len(t, cfg.CORSAllowedOrigins, 4)
	assert.True(t, cfg.RunMigrations)
	assert.False(t, cfg.SeedDemoTenants)
}

func TestFromViper_Validation(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
		wantErr   string
	}{
		{"unknown store", map[string]any{"STORE_DRIVER": "mongo"}, "unknown STORE_DRIVER"},
		{"postgres without url", map[string]any{"STORE_DRIVER": "postgres"}, "PGSQL_URL is required"},
		{"amqp without url", map[string]any{"EVENTS_DRIVER": "amqp"}, "AMQP_URL is required"},
		{"kafka without brokers", map[string]any{"EVENTS_DRIVER": "kafka"}, "KAFKA_BROKERS is required"},
		{"unknown events", map[string]any{"EVENTS_DRIVER": "sns"}, "unknown EVENTS_DRIVER"},
		{"bad duration", map[string]any{"READ_TIMEOUT": "soon"}, "READ_TIMEOUT"},
		{"bad log level", map[string]any{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fromViper(newViper(tt.overrides))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFromViper_Drivers(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{
		"STORE_DRIVER":  "Postgres",
		"PGSQL_URL":     "postgres://localhost/cashbook",
		"EVENTS_DRIVER": "kafka",
		"KAFKA_BROKERS": "k1:9092, k2:9092",
		"LOG_LEVEL":     "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, StorePostgres, cfg.StoreDriver)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}
