package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Seed sources.
const (
	SeedSourceDemo     = "demo"
	SeedSourceFile     = "file"
	SeedSourcePostgres = "postgres"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Postgres     PostgresConfig
	Redis        RedisConfig
	Logger       LoggerConfig
	Chat         ChatConfig
	Seed         SeedConfig
	Notification NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	MigrationsDir  string
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// ChatConfig tunes the assistant.
type ChatConfig struct {
	ResponseDelayMS        int
	ResponseTimeoutSeconds int
	RandomSeed             uint64
	SessionIdleMinutes     int
	RateLimitPerMinute     int
}

// SeedConfig selects where startup data comes from.
type SeedConfig struct {
	Source string
	File   string
}

// NotificationConfig holds stub notification endpoints.
type NotificationConfig struct {
	WebhookURL string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	seed, err := strconv.ParseUint(getEnv("CHAT_RANDOM_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid CHAT_RANDOM_SEED: %w", err)
	}

	seedSource := getEnv("SEED_SOURCE", SeedSourceDemo)
	switch seedSource {
	case SeedSourceDemo, SeedSourceFile, SeedSourcePostgres:
	default:
		return nil, fmt.Errorf("invalid SEED_SOURCE %q", seedSource)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "resty-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", false),
			MigrationsDir:  getEnv("POSTGRES_MIGRATIONS_DIR", "migrations"),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Chat: ChatConfig{
			ResponseDelayMS:        getEnvAsInt("CHAT_RESPONSE_DELAY_MS", 1500),
			ResponseTimeoutSeconds: getEnvAsInt("CHAT_RESPONSE_TIMEOUT_SECONDS", 10),
			RandomSeed:             seed,
			SessionIdleMinutes:     getEnvAsInt("CHAT_SESSION_IDLE_MINUTES", 30),
			RateLimitPerMinute:     getEnvAsInt("CHAT_RATE_LIMIT_PER_MINUTE", 30),
		},
		Seed: SeedConfig{
			Source: seedSource,
			File:   getEnv("SEED_FILE", "seed.yaml"),
		},
		Notification: NotificationConfig{
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// ResponseDelay returns the simulated reply latency.
func (c ChatConfig) ResponseDelay() time.Duration {
	if c.ResponseDelayMS < 0 {
		return 0
	}
	return time.Duration(c.ResponseDelayMS) * time.Millisecond
}

// ResponseTimeout bounds one reply; zero disables the bound.
func (c ChatConfig) ResponseTimeout() time.Duration {
	if c.ResponseTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.ResponseTimeoutSeconds) * time.Second
}

// SessionIdle returns how long an unused chat session is kept.
func (c ChatConfig) SessionIdle() time.Duration {
	if c.SessionIdleMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.SessionIdleMinutes) * time.Minute
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
