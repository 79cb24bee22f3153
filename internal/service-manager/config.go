package service_manager

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Client    ClientConfig
	Dashboard DashboardConfig
}

type ClientConfig struct {
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFile        string        `envconfig:"LOG_FILE" default:"./log/service-sync.log"`
	CacheDir       string        `envconfig:"CACHE_DIR" default:"./cache"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`
}

// DashboardConfig with no URL keeps the manager in local mode.
type DashboardConfig struct {
	URL      string `envconfig:"DASHBOARD_URL"`
	Username string `envconfig:"DASHBOARD_USERNAME"`
	Password string `envconfig:"DASHBOARD_PASSWORD"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
