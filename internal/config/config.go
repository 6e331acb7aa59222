package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	SchedulerLocal = "local"
	SchedulerKafka = "kafka"
)

type Config struct {
	Env     string `validate:"required,oneof=development stage production"`
	LogFile string
	Http    Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Orders    Orders
	Scheduler Scheduler
	Cache     Cache
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID     string   `validate:"required"`
	Brokers     []string `validate:"required,min=1,dive,hostname_port"`
	ExpiryTopic string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Orders struct {
	// Placed orders older than this are rejected automatically.
	AutoRejectMinutes int `validate:"gte=1"`

	PageSize    int `validate:"gte=1"`
	MaxPageSize int `validate:"gtefield=PageSize"`
}

func (o Orders) AutoRejectAfter() time.Duration {
	return time.Duration(o.AutoRejectMinutes) * time.Minute
}

type Scheduler struct {
	Backend       string        `validate:"required,oneof=local kafka"`
	SweepInterval time.Duration `validate:"gt=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

func New() Config {
	return Config{
		Env:     env("ENV", "development"),
		LogFile: env("LOG_FILE", ""),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID:     env("KAFKA_GROUP_ID", "order-service"),
			ExpiryTopic: env("KAFKA_EXPIRY_TOPIC", "order-expiry"),
			Brokers:     strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "orders"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Orders: Orders{
			AutoRejectMinutes: envInt("AUTO_REJECT_MINUTES", 5),
			PageSize:          envInt("PAGE_SIZE", 20),
			MaxPageSize:       envInt("MAX_PAGE_SIZE", 100),
		},

		Scheduler: Scheduler{
			Backend:       env("SCHEDULER_BACKEND", SchedulerLocal),
			SweepInterval: envDuration("SWEEP_INTERVAL", time.Minute),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 10000),
			TTL:      envDuration("CACHE_TTL", time.Hour),
		},
	}
}

// Validate checks the whole config. Kafka settings are only required when
// the kafka scheduler backend is selected.
func (c Config) Validate() error {
	validate := validator.New()
	if c.Scheduler.Backend != SchedulerKafka {
		return validate.StructExcept(c, "Kafka")
	}
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
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
