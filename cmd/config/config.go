package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment    string
	InternalAPIKey string
	Server         ServerConfig
	Redis          RedisConfig
	Cloudinary     CloudinaryConfig
	RabbitMQ       RabbitMQConfig
	Session        SessionConfig
	Catalog        CatalogConfig
	Order          OrderConfig
	Notifier       NotifierConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CloudinaryConfig struct {
	CloudName     string
	APIKey        string
	APISecret     string
	BaseURL       string
	DefaultFolder string
	Timeout       time.Duration
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

type CatalogConfig struct {
	CacheTTL time.Duration
}

type OrderConfig struct {
	MaxFiles         int
	MaxFileSizeBytes int64
	DefaultListLimit int
}

type NotifierConfig struct {
	WebhookURL string
}

// Load reads configuration from the environment, with an optional .env file
// and inline fallback defaults for local development.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		InternalAPIKey: getEnv("INTERNAL_API_KEY", "local-internal-key"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Cloudinary: CloudinaryConfig{
			CloudName:     getEnv("CLOUDINARY_CLOUD_NAME", "urbannest"),
			APIKey:        getEnv("CLOUDINARY_API_KEY", ""),
			APISecret:     getEnv("CLOUDINARY_API_SECRET", ""),
			BaseURL:       getEnv("CLOUDINARY_BASE_URL", "https://api.cloudinary.com"),
			DefaultFolder: getEnv("CLOUDINARY_FOLDER", "furniture-products"),
			Timeout:       getEnvDuration("CLOUDINARY_TIMEOUT", 30*time.Second),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "local-session-secret"),
			TTL:    getEnvDuration("SESSION_TTL", 72*time.Hour),
		},
		Catalog: CatalogConfig{
			CacheTTL: getEnvDuration("CATALOG_CACHE_TTL", 1*time.Minute),
		},
		Order: OrderConfig{
			MaxFiles:         getEnvInt("ORDER_MAX_FILES", 5),
			MaxFileSizeBytes: int64(getEnvInt("ORDER_MAX_FILE_SIZE_MB", 10)) * 1024 * 1024,
			DefaultListLimit: getEnvInt("ORDER_LIST_LIMIT", 50),
		},
		Notifier: NotifierConfig{
			WebhookURL: getEnv("NOTIFIER_WEBHOOK_URL", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
