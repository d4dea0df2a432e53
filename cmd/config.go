package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	HTTPPort  string `env:"HTTP_PORT, default=8080"`
	AppEnv    string `env:"APP_ENV, default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	JWTSecret string `env:"JWT_SECRET, required"`

	DB    DBConfig
	Redis RedisConfig
	Kafka KafkaConfig

	OutboxRelaySchedule string        `env:"OUTBOX_RELAY_SCHEDULE, default=@every 5s"`
	OutboxBatchSize     int           `env:"OUTBOX_BATCH_SIZE, default=100"`
	VolumetricDivisor   float64       `env:"VOLUMETRIC_DIVISOR, default=5000"`
	IdempotencyTTL      time.Duration `env:"IDEMPOTENCY_TTL, default=24h"`
}

type DBConfig struct {
	Host     string `env:"DB_HOST, default=localhost"`
	Port     string `env:"DB_PORT, default=5432"`
	User     string `env:"DB_USER, default=postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME, default=backoffice"`
	SslMode  string `env:"DB_SSLMODE, default=disable"`
}

// DSN is the libpq connection string for the database.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SslMode)
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type KafkaConfig struct {
	Brokers     []string `env:"KAFKA_BROKERS, default=localhost:9092"`
	TopicPrefix string   `env:"KAFKA_TOPIC_PREFIX, default=backoffice."`
}

// IsDevelopment selects the console log writer.
func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// LoadConfig reads the environment, after loading envFile when it exists.
func LoadConfig(ctx context.Context, envFile string) (Config, error) {
	if envFile != "" {
		// A missing file is fine: the environment alone may be complete.
		_ = godotenv.Load(envFile)
	}

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
