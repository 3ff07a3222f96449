package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RedisConfig holds the rate-cache connection settings.
type RedisConfig struct {
	Addr       string
	Enabled    bool
	TTLSeconds int
}

// KafkaConfig holds event publishing settings.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// TrackerConfig holds the rate tracker daemon settings. The feed source
// list is explicit configuration injected at construction, never ambient
// state.
type TrackerConfig struct {
	Schedule string // cron expression
	FeedSeed int64  // seed for the mock feed generator
}

// Config is the full service configuration, loaded from the environment.
type Config struct {
	GRPCPort    int
	HTTPPort    int
	LogLevel    string
	LogFormat   string
	DB          DatabaseConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	Tracker     TrackerConfig
	ServiceName string
}

// Validate panics on missing required settings so misconfigured deployments
// fail at startup.
func (c Config) Validate() {
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
}

// Load reads configuration from the environment, after loading a local .env
// file when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		GRPCPort:  getEnvInt("GRPC_PORT", 9090),
		HTTPPort:  getEnvInt("HTTP_PORT", 8080),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "loanscope"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "loanscope"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:       getEnv("REDIS_ADDR", "localhost:6379"),
			Enabled:    getEnvBool("REDIS_ENABLED", false),
			TTLSeconds: getEnvInt("REDIS_TTL_SECONDS", 300),
		},
		Kafka: KafkaConfig{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:   getEnv("KAFKA_TOPIC", "loanscope.events"),
		},
		Tracker: TrackerConfig{
			Schedule: getEnv("TRACKER_SCHEDULE", "0 */6 * * *"),
			FeedSeed: int64(getEnvInt("TRACKER_FEED_SEED", 0)),
		},
		ServiceName: "loanscope",
	}
}

// GRPCAddr returns the gRPC listen address.
func (c Config) GRPCAddr() string {
	return ":" + strconv.Itoa(c.GRPCPort)
}

// HTTPAddr returns the HTTP listen address.
func (c Config) HTTPAddr() string {
	return ":" + strconv.Itoa(c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
