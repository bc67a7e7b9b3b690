package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	Port           string        `yaml:"port"`
	GinMode        string        `yaml:"gin_mode"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	TemplatesDir   string        `yaml:"templates_dir"`
	StaticDir      string        `yaml:"static_dir"`
	AllowedOrigins []string      `yaml:"cors_allowed_origins"`

	StorageDriver string      `yaml:"storage_driver"`
	Mongo         MongoConfig `yaml:"mongo"`

	NATSURL string `yaml:"nats_url"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// MongoConfig holds the document store connection and pool settings
type MongoConfig struct {
	URI            string        `yaml:"uri"`
	Database       string        `yaml:"database"`
	MaxPoolSize    uint64        `yaml:"max_pool_size"`
	MinPoolSize    uint64        `yaml:"min_pool_size"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

// Load reads configuration from the environment. If CONFIG_FILE names a YAML
// file, values present in it take precedence.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8000"),
		GinMode:        getEnv("GIN_MODE", "release"),
		RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", 10*time.Second),
		TemplatesDir:   getEnv("TEMPLATES_DIR", "./web/templates"),
		StaticDir:      getEnv("STATIC_DIR", "./web/static"),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://127.0.0.1:8000")),
		StorageDriver:  getEnv("STORAGE_DRIVER", DriverMongo),
		Mongo: MongoConfig{
			URI:            getEnv("MONGO_URI", "mongodb://localhost:27017/"),
			Database:       getEnv("MONGO_DATABASE", "blog_platform"),
			MaxPoolSize:    uint64(getEnvAsInt("MONGO_MAX_POOL_SIZE", 50)),
			MinPoolSize:    uint64(getEnvAsInt("MONGO_MIN_POOL_SIZE", 0)),
			ConnectTimeout: getEnvAsDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
		},
		NATSURL:   os.Getenv("NATS_URL"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StorageDriver {
	case DriverMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("mongo uri is required (set MONGO_URI)")
		}
		if c.Mongo.Database == "" {
			return fmt.Errorf("mongo database is required (set MONGO_DATABASE)")
		}
		if c.Mongo.MaxPoolSize == 0 {
			return fmt.Errorf("mongo max pool size must be positive")
		}
		if c.Mongo.MinPoolSize > c.Mongo.MaxPoolSize {
			return fmt.Errorf("mongo min pool size %d exceeds max %d", c.Mongo.MinPoolSize, c.Mongo.MaxPoolSize)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil || value < 0 {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
