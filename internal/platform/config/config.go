package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"

	EventsNone  = "none"
	EventsAMQP  = "amqp"
	EventsKafka = "kafka"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	StoreDriver     string
	DatabaseURL     string
	SQLitePath      string
	RunMigrations   bool
	SeedDemoTenants bool

	CORSAllowedOrigins []string
	RateLimit          string

	TenantCacheSize int
	TenantCacheTTL  time.Duration

	EventsDriver string
	AMQPURL      string
	AMQPExchange string
	KafkaBrokers []string
	KafkaTopic   string

	ShutdownTimeout time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", StoreMemory)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("SQLITE_PATH", "./data/cashbook.db")
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("SEED_DEMO_TENANTS", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173,http://localhost:3000,http://127.0.0.1:3000")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("TENANT_CACHE_SIZE", 256)
	v.SetDefault("TENANT_CACHE_TTL", "5m")
	v.SetDefault("EVENTS_DRIVER", EventsNone)
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "cashbook")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "cashbook.events")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("READ_TIMEOUT", "15s")
	v.SetDefault("WRITE_TIMEOUT", "15s")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		StoreDriver:     strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		DatabaseURL:     v.GetString("PGSQL_URL"),
		SQLitePath:      v.GetString("SQLITE_PATH"),
		RunMigrations:   v.GetBool("RUN_MIGRATIONS"),
		SeedDemoTenants: v.GetBool("SEED_DEMO_TENANTS"),
		RateLimit:       v.GetString("RATE_LIMIT"),
		TenantCacheSize: v.GetInt("TENANT_CACHE_SIZE"),
		EventsDriver:    strings.ToLower(strings.TrimSpace(v.GetString("EVENTS_DRIVER"))),
		AMQPURL:         v.GetString("AMQP_URL"),
		AMQPExchange:    v.GetString("AMQP_EXCHANGE"),
		KafkaTopic:      v.GetString("KAFKA_TOPIC"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.KafkaBrokers = splitList(v.GetString("KAFKA_BROKERS"))

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"TENANT_CACHE_TTL", &cfg.TenantCacheTTL},
		{"SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout},
		{"READ_TIMEOUT", &cfg.ReadTimeout},
		{"WRITE_TIMEOUT", &cfg.WriteTimeout},
	}
	for _, d := range durations {
		parsed, err := time.ParseDuration(v.GetString(d.key))
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", d.key, err)
		}
		*d.dst = parsed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown drivers and missing connection settings for the
// selected drivers.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreMemory:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("PGSQL_URL is required when STORE_DRIVER=%s", StorePostgres)
		}
	case StoreSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required when STORE_DRIVER=%s", StoreSQLite)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	switch c.EventsDriver {
	case EventsNone, "":
	case EventsAMQP:
		if c.AMQPURL == "" {
			return fmt.Errorf("AMQP_URL is required when EVENTS_DRIVER=%s", EventsAMQP)
		}
	case EventsKafka:
		if len(c.KafkaBrokers) == 0 {
			return fmt.Errorf("KAFKA_BROKERS is required when EVENTS_DRIVER=%s", EventsKafka)
		}
	default:
		return fmt.Errorf("unknown EVENTS_DRIVER %q", c.EventsDriver)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
