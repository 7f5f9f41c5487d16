package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ruudy-sib/taskkeeper/internal/domain"
)

// Store drivers accepted in STORE_DRIVER.
const (
	StoreDriverMemory   = "memory"
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
)

// Config holds all application configuration values.
type Config struct {
	// HTTP server
	HTTPAddr string

	// Task store
	StoreDriver string // "memory" (default), "sqlite", "postgres"
	SQLitePath  string
	DatabaseURL string

	// Redis lookup cache
	CacheEnabled       bool
	CacheTTL           time.Duration
	RedisMode          string // "standalone" (default), "sentinel", "cluster"
	RedisAddr          string // standalone: host:port
	RedisPassword      string
	RedisDB            int
	RedisMasterName    string   // sentinel: master name
	RedisSentinelAddrs []string // sentinel: sentinel node addresses
	RedisClusterAddrs  []string // cluster: cluster node addresses

	// Task events
	KafkaBrokers []string // empty disables the Kafka publisher
	KafkaTopic   string
	WebhookURL   string // empty disables the webhook publisher

	// Application
	Environment      string
	LogLevel         string
	MetricsNamespace string
}

// New creates a Config populated from environment variables with sensible defaults.
func New() *Config {
	cfg := &Config{
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		StoreDriver:      strings.ToLower(getEnv("STORE_DRIVER", StoreDriverMemory)),
		SQLitePath:       getEnv("SQLITE_PATH", "taskkeeper.db"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		CacheEnabled:     getEnvBool("CACHE_ENABLED", false),
		CacheTTL:         getEnvDuration("CACHE_TTL", domain.DefaultCacheTTL),
		RedisMode:        getEnv("REDIS_MODE", "standalone"),
		RedisAddr:        getEnv("REDIS_HOST", "localhost") + ":" + getEnv("REDIS_PORT", "6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          0,
		KafkaTopic:       getEnv("KAFKA_TOPIC", domain.DefaultEventsTopic),
		WebhookURL:       getEnv("WEBHOOK_URL", ""),
		Environment:      getEnv("ENVIRONMENT", "local"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "taskkeeper"),
	}

	if v := getEnv("KAFKA_BROKERS", ""); v != "" {
		cfg.KafkaBrokers = splitList(v)
	}
	if v := getEnv("REDIS_MASTER_NAME", ""); v != "" {
		cfg.RedisMasterName = v
	}
	if v := getEnv("REDIS_SENTINEL_ADDRS", ""); v != "" {
		cfg.RedisSentinelAddrs = splitList(v)
	}
	if v := getEnv("REDIS_CLUSTER_ADDRS", ""); v != "" {
		cfg.RedisClusterAddrs = splitList(v)
	}

	return cfg
}

// Validate reports configuration combinations the application cannot start with.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverMemory, StoreDriverSQLite:
	case StoreDriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres store")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}

	if c.CacheEnabled {
		switch c.RedisMode {
		case "standalone", "":
		case "sentinel":
			if c.RedisMasterName == "" || len(c.RedisSentinelAddrs) == 0 {
				return fmt.Errorf("sentinel mode requires REDIS_MASTER_NAME and REDIS_SENTINEL_ADDRS")
			}
		case "cluster":
			if len(c.RedisClusterAddrs) == 0 {
				return fmt.Errorf("cluster mode requires REDIS_CLUSTER_ADDRS")
			}
		default:
			return fmt.Errorf("unknown redis mode %q", c.RedisMode)
		}
		if c.CacheTTL <= 0 {
			return fmt.Errorf("CACHE_TTL must be positive")
		}
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return d
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
