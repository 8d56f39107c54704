package configs

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all configuration for the application
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Server   ServerConfig
	Database DatabaseConfig
	Quote    QuoteConfig
	Trading  TradingConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8080"`
	Env  string `env:"GO_ENV" envDefault:"development"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL string `env:"DATABASE_URL,required"`
}

// QuoteConfig holds quote provider configuration
type QuoteConfig struct {
	BaseURL string        `env:"QUOTE_API_URL" envDefault:"https://cloud.iexapis.com"`
	Token   string        `env:"QUOTE_API_KEY,required"`
	Timeout time.Duration `env:"QUOTE_API_TIMEOUT" envDefault:"10s"`
	Debug   bool          `env:"QUOTE_API_DEBUG" envDefault:"false"`
}

// TradingConfig holds simulated-trading configuration
type TradingConfig struct {
	// StartingCash is the cash balance granted at registration,
	// as a decimal string (e.g. "10000.00").
	StartingCash string `env:"TRADING_STARTING_CASH" envDefault:"10000.00"`
}

// StartingCashAmount returns StartingCash parsed as a decimal.
// MustLoad has already validated the string.
func (t TradingConfig) StartingCashAmount() decimal.Decimal {
	return decimal.RequireFromString(t.StartingCash)
}

// MustLoad loads configuration from environment variables and exits on error
func MustLoad() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	if _, err := decimal.NewFromString(cfg.Trading.StartingCash); err != nil {
		log.Fatalf("invalid TRADING_STARTING_CASH %q: %s", cfg.Trading.StartingCash, err)
	}

	return cfg
}
