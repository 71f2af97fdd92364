package initializers

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment.
type Config struct {
	DBURL          string  `env:"DB_URL"`
	Port           string  `env:"PORT" envDefault:"8080"`
	GinMode        string  `env:"GIN_MODE" envDefault:"debug"`
	LogLevel       string  `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string  `env:"LOG_FORMAT" envDefault:"text"`
	SampleData     bool    `env:"SAMPLE_DATA" envDefault:"true"`
	RunMigrations  bool    `env:"RUN_MIGRATIONS" envDefault:"true"`
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

var Cfg Config

// LoadEnv reads a .env file when one is present and parses the environment
// into Cfg.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		Log.Debug("no .env file found, using process environment")
	}

	cfg, err := LoadConfig()
	if err != nil {
		Log.WithError(err).Fatal("invalid configuration")
	}
	Cfg = cfg
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
