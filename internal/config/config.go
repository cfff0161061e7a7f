package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyUUID    key = "uuid"
	KeyLogger  key = "logger"
	KeyMetrics key = "metrics"
)

type Config struct {
	Service     Service
	Postgres    Postgres
	Kafka       Kafka
	Metrics     Metrics
	Logger      Logger
	Platform    Platform
	Centrifuge  Centrifuge
	UserService UserService
	Attachment  Attachment
}

type Service struct {
	Port string `env:"MESSENGER_SERVICE_PORT"`
	Name string `env:"MESSENGER_SERVICE_NAME" env-default:"messenger-service"`
}

type Postgres struct {
	User     string `env:"MESSENGER_SERVICE_POSTGRES_USER"`
	Password string `env:"MESSENGER_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"MESSENGER_SERVICE_POSTGRES_DB"`
	Host     string `env:"MESSENGER_SERVICE_POSTGRES_HOST"`
	Port     string `env:"MESSENGER_SERVICE_POSTGRES_PORT"`
}

type Kafka struct {
	Host              string `env:"KAFKA_HOST"`
	Port              string `env:"KAFKA_PORT"`
	UserTopic         string `env:"USER_TOPIC"`
	NotificationTopic string `env:"NOTIFICATION_TOPIC"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Platform struct {
	Env string `env:"ENV"`
}

type Centrifuge struct {
	BaseURL   string        `env:"CENTRIFUGO_BASE_URL"`
	APIKey    string        `env:"CENTRIFUGO_API_KEY"`
	JWTSecret string        `env:"CENTRIFUGO_JWT_SECRET"`
	Timeout   time.Duration `env:"CENTRIFUGO_TIMEOUT" env-default:"5s"`
}

type UserService struct {
	Host string `env:"USER_SERVICE_HOST"`
	Port string `env:"USER_SERVICE_PORT"`
}

type Attachment struct {
	BaseURL string        `env:"ATTACHMENT_SERVICE_BASE_URL"`
	Timeout time.Duration `env:"ATTACHMENT_SERVICE_TIMEOUT" env-default:"5s"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env variables: %s", err)
	}
	return cfg
}
