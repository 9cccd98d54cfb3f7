package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	TransactionModeBestEffort = "best_effort"
	TransactionModeAtomic     = "atomic"
)

// Config is the complete service configuration. Values come from the
// environment (optionally seeded from a .env file) and may be overridden by a
// TOML file named in CONFIG_FILE.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	AMQP     AMQPConfig     `toml:"amqp"`
	Minio    MinioConfig    `toml:"minio"`
	Orders   OrderConfig    `toml:"orders"`
	Jobs     JobsConfig     `toml:"jobs"`
	Logger   LoggerConfig   `toml:"logger"`
}

type ServerConfig struct {
	Port int `toml:"port"`
}

type DatabaseConfig struct {
	URL           string `toml:"url"`
	RunMigrations bool   `toml:"run_migrations"`
}

type RedisConfig struct {
	Addr      string        `toml:"addr"`
	Password  string        `toml:"password"`
	DB        int           `toml:"db"`
	RecipeTTL time.Duration `toml:"recipe_ttl"`
}

// AMQPConfig configures the order event publisher. An empty URL disables publishing.
type AMQPConfig struct {
	URL      string `toml:"url"`
	Exchange string `toml:"exchange"`
}

type MinioConfig struct {
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	UseSSL    bool   `toml:"use_ssl"`
	Bucket    string `toml:"bucket"`
	Region    string `toml:"region"`
}

type OrderConfig struct {
	TaxRate         float64 `toml:"tax_rate"`
	TransactionMode string  `toml:"transaction_mode"`
}

type JobsConfig struct {
	LowStockInterval time.Duration `toml:"low_stock_interval"`
	SnapshotInterval time.Duration `toml:"snapshot_interval"`
	SnapshotWindow   time.Duration `toml:"snapshot_window"`
}

type LoggerConfig struct {
	Level    string `toml:"level"`
	Encoding string `toml:"encoding"`
}

// Load reads the configuration and validates it.
func Load() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvAsInt("PORT", 8080),
		},
		Database: DatabaseConfig{
			URL:           getEnv("DATABASE_URL", ""),
			RunMigrations: getEnvAsBool("RUN_MIGRATIONS", true),
		},
		Redis: RedisConfig{
			Addr:      getEnv("REDIS_ADDR", "localhost:6379"),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getEnvAsInt("REDIS_DB", 0),
			RecipeTTL: getEnvAsDuration("RECIPE_CACHE_TTL", 10*time.Minute),
		},
		AMQP: AMQPConfig{
			URL:      getEnv("AMQP_URL", ""),
			Exchange: getEnv("AMQP_EXCHANGE", "orders_topic"),
		},
		Minio: MinioConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			UseSSL:    getEnvAsBool("MINIO_USE_SSL", false),
			Bucket:    getEnv("MINIO_BUCKET", "dinepos-snapshots"),
			Region:    getEnv("MINIO_REGION", ""),
		},
		Orders: OrderConfig{
			TaxRate:         getEnvAsFloat("TAX_RATE", 0.05),
			TransactionMode: getEnv("ORDER_TRANSACTION_MODE", TransactionModeBestEffort),
		},
		Jobs: JobsConfig{
			LowStockInterval: getEnvAsDuration("LOW_STOCK_INTERVAL", 30*time.Minute),
			SnapshotInterval: getEnvAsDuration("SNAPSHOT_INTERVAL", 24*time.Hour),
			SnapshotWindow:   getEnvAsDuration("SNAPSHOT_WINDOW", 24*time.Hour),
		},
		Logger: LoggerConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Encoding: getEnv("LOG_ENCODING", "json"),
		},
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := LoadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the keys present in a TOML file onto cfg.
func LoadFile(filename string, cfg *Config) error {
	if _, err := toml.DecodeFile(filename, cfg); err != nil {
		return fmt.Errorf("failed to load config file: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Orders.TaxRate < 0 || c.Orders.TaxRate > 1 {
		return fmt.Errorf("tax rate must be between 0 and 1, got %v", c.Orders.TaxRate)
	}
	switch c.Orders.TransactionMode {
	case TransactionModeBestEffort, TransactionModeAtomic:
	default:
		return fmt.Errorf("unknown order transaction mode %q", c.Orders.TransactionMode)
	}
	if c.Jobs.LowStockInterval <= 0 || c.Jobs.SnapshotInterval <= 0 {
		return fmt.Errorf("job intervals must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
