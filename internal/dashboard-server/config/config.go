package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server ServerConfig
	JWT    JWTConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
	Mail   MailConfig
	Login  LoginRateConfig
}

type ServerConfig struct {
	Port           string        `envconfig:"SERVER_PORT" default:"3001"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFile        string        `envconfig:"LOG_FILE" default:"./log/dashboard-server.log"`
	DataDir        string        `envconfig:"DATA_DIR" default:"./data"`
	UserSessionTTL time.Duration `envconfig:"USER_SESSION_TTL" default:"720h"`
	ReportSchedule string        `envconfig:"REPORT_SCHEDULE" default:"0 0 * * *"`
}

type JWTConfig struct {
	SecretKey       string        `envconfig:"JWT_SECRET_KEY" required:"true"`
	AccessTokenTTL  time.Duration `envconfig:"JWT_ACCESS_TOKEN_TTL" default:"15m"`
	RefreshTokenTTL time.Duration `envconfig:"JWT_REFRESH_TOKEN_TTL" default:"168h"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" required:"true"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// KafkaConfig with no brokers disables service events.
type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS"`
	Topic   string   `envconfig:"KAFKA_SERVICE_EVENTS_TOPIC" default:"service-events"`
}

// MailConfig with no host disables the daily report.
type MailConfig struct {
	Email            string `envconfig:"MAIL_EMAIL"`
	Password         string `envconfig:"MAIL_PASSWORD"`
	Host             string `envconfig:"MAIL_HOST"`
	Port             int    `envconfig:"MAIL_PORT" default:"587"`
	AdminMailAddress string `envconfig:"MAIL_ADMIN_EMAIL"`
}

func (m MailConfig) Enabled() bool {
	return m.Host != "" && m.Email != "" && m.AdminMailAddress != ""
}

type LoginRateConfig struct {
	Every time.Duration `envconfig:"LOGIN_RATE_EVERY" default:"12s"`
	Burst int           `envconfig:"LOGIN_RATE_BURST" default:"5"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
