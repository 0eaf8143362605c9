package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Backend Backend `validate:"required"`

	Events Events `validate:"required"`

	Cache Cache `validate:"required"`

	HealthProbe HealthProbe `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

// Backend describes the upstream order service every outbound call goes to.
type Backend struct {
	BaseURL string `validate:"required,url"`
	Token   string `validate:"required"`

	Timeout time.Duration `validate:"gt=0"`

	RetryMaxAttempts  int           `validate:"gte=1"`
	RetryInitialDelay time.Duration `validate:"gt=0"`
}

type Events struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type HealthProbe struct {
	Schedule string `validate:"required"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Backend: Backend{
			BaseURL: env("BACKEND_BASE_URL", "http://localhost:4000"),
			Token:   env("BACKEND_API_TOKEN", ""),

			Timeout: envDuration("BACKEND_TIMEOUT", 30*time.Second),

			RetryMaxAttempts:  envInt("BACKEND_RETRY_MAX_ATTEMPTS", 3),
			RetryInitialDelay: envDuration("BACKEND_RETRY_INITIAL_DELAY", time.Second),
		},

		Events: Events{
			GroupID: env("EVENTS_GROUP_ID", "driver-assist"),
			Topic:   env("EVENTS_TOPIC", "order-events"),
			Brokers: strings.Split(env("EVENTS_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("EVENTS_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("EVENTS_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Cache: Cache{
			Capacity: envInt("DRIVER_CACHE_CAPACITY", 256),
			TTL:      envDuration("DRIVER_CACHE_TTL", 5*time.Minute),
		},

		HealthProbe: HealthProbe{
			Schedule: env("HEALTH_PROBE_SCHEDULE", "@every 30s"),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if len(fallback) == 0 {
		return ""
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
