package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	CatalogEmbedded = "embedded"
	CatalogMongo    = "mongo"
)

// Config is read from the environment, optionally seeded from a .env file.
type Config struct {
	Env            string   `env:"ENV" envDefault:"development"`
	Port           string   `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`

	ShopName       string `env:"SHOP_NAME" envDefault:"Shoaib"`
	WhatsAppNumber string `env:"WHATSAPP_NUMBER" envDefault:"1234567890"`
	CurrencySymbol string `env:"CURRENCY_SYMBOL" envDefault:"₹"`
	CurrencyCode   string `env:"CURRENCY_CODE" envDefault:"INR"`

	CatalogSource   string `env:"CATALOG_SOURCE" envDefault:"embedded"`
	MongoURI        string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase   string `env:"MONGO_DATABASE" envDefault:"shoaib"`
	MongoCollection string `env:"MONGO_COLLECTION" envDefault:"products"`

	RedisAddr       string `env:"REDIS_ADDR"`
	RedisPassword   string `env:"REDIS_PASSWORD"`
	RedisDB         int    `env:"REDIS_DB" envDefault:"0"`
	CheckoutChannel string `env:"CHECKOUT_CHANNEL" envDefault:"checkout-events"`

	ImageDir           string        `env:"PRODUCT_IMAGE_DIR" envDefault:"static"`
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"2h"`
	RateLimitPerMinute int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`
	RateLimitBurst     int           `env:"RATE_LIMIT_BURST" envDefault:"5"`
}

// Production reports whether ENV is "production".
func (c Config) Production() bool {
	return c.Env == "production"
}

// Addr is the listen address derived from PORT.
func (c Config) Addr() string {
	if c.Port != "" && c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

// Load reads .env if present, then the process environment.
func Load() (Config, error) {
	// a missing .env is normal outside development
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	switch c.CatalogSource {
	case CatalogEmbedded, CatalogMongo:
	default:
		errs = append(errs, fmt.Errorf("CATALOG_SOURCE %q: want %q or %q", c.CatalogSource, CatalogEmbedded, CatalogMongo))
	}
	if c.SessionIdleTimeout <= 0 {
		errs = append(errs, errors.New("SESSION_IDLE_TIMEOUT must be positive"))
	}
	if c.RateLimitPerMinute <= 0 || c.RateLimitBurst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MINUTE and RATE_LIMIT_BURST must be positive"))
	}
	if c.ShopName == "" {
		errs = append(errs, errors.New("SHOP_NAME is required"))
	}
	return errors.Join(errs...)
}
