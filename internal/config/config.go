package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	StoreMemory = "memory"
	StoreBadger = "badger"
	StoreRedis  = "redis"

	CartLocal      = "local"
	CartStorefront = "storefront"
)

type Config struct {
	Port                          string        `mapstructure:"PORT"`
	Env                           string        `mapstructure:"ENV"`
	DatabasePath                  string        `mapstructure:"DATABASE_PATH"`
	RateLimitPerMinute            int           `mapstructure:"RATE_LIMIT_PER_MINUTE"`
	TrustProxy                    bool          `mapstructure:"TRUST_PROXY"`
	SweepInterval                 time.Duration `mapstructure:"SWEEP_INTERVAL"`
	SessionSecret                 string        `mapstructure:"SESSION_SECRET"`
	SessionStore                  string        `mapstructure:"SESSION_STORE"`
	SessionTTL                    time.Duration `mapstructure:"SESSION_TTL"`
	BadgerPath                    string        `mapstructure:"BADGER_PATH"`
	RedisAddr                     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword                 string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB                       int           `mapstructure:"REDIS_DB"`
	CatalogPath                   string        `mapstructure:"CATALOG_PATH"`
	PricingStrategy               string        `mapstructure:"PRICING_STRATEGY"`
	CartBackend                   string        `mapstructure:"CART_BACKEND"`
	MerchandiseID                 string        `mapstructure:"MERCHANDISE_ID"`
	StorefrontCartURL             string        `mapstructure:"STOREFRONT_CART_URL"`
	StorefrontTokenURL            string        `mapstructure:"STOREFRONT_TOKEN_URL"`
	StorefrontClientID            string        `mapstructure:"STOREFRONT_CLIENT_ID"`
	StorefrontClientSecret        string        `mapstructure:"STOREFRONT_CLIENT_SECRET"`
	CheckoutBaseURL               string        `mapstructure:"CHECKOUT_BASE_URL"`
	ResetAfterCheckout            bool          `mapstructure:"RESET_AFTER_CHECKOUT"`
	DiscordBotToken               string        `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string        `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// LoadConfig reads configuration from the environment. Outside production a
// .env file in the working directory is loaded first if present.
func LoadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if !strings.EqualFold(os.Getenv("ENV"), EnvProduction) {
		_ = godotenv.Load()
	}

	for _, key := range []string{
		"SESSION_SECRET",
		"REDIS_PASSWORD",
		"CATALOG_PATH",
		"MERCHANDISE_ID",
		"STOREFRONT_CART_URL",
		"STOREFRONT_TOKEN_URL",
		"STOREFRONT_CLIENT_ID",
		"STOREFRONT_CLIENT_SECRET",
		"DISCORD_BOT_TOKEN",
		"DISCORD_NOTIFICATIONS_CHANNEL_ID",
	} {
		v.BindEnv(key)
	}

	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("DATABASE_PATH", "booking.db")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	v.SetDefault("TRUST_PROXY", false)
	v.SetDefault("SWEEP_INTERVAL", "5m")
	v.SetDefault("SESSION_STORE", StoreMemory)
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("BADGER_PATH", "sessions.badger")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("PRICING_STRATEGY", "beverage")
	v.SetDefault("CART_BACKEND", CartLocal)
	v.SetDefault("MERCHANDISE_ID", "venue-booking")
	v.SetDefault("CHECKOUT_BASE_URL", "http://127.0.0.1:8080")
	v.SetDefault("RESET_AFTER_CHECKOUT", true)
}

func (c *Config) validate() error {
	c.Env = strings.ToLower(c.Env)
	c.SessionStore = strings.ToLower(c.SessionStore)
	c.CartBackend = strings.ToLower(c.CartBackend)

	if c.SessionSecret == "" {
		if c.IsProduction() {
			return errors.New("SESSION_SECRET is required in production")
		}
		secret, err := randomSecret()
		if err != nil {
			return err
		}
		c.SessionSecret = secret
	}

	switch c.SessionStore {
	case StoreMemory, StoreBadger:
	case StoreRedis:
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR is required for the redis session store")
		}
	default:
		return fmt.Errorf("unknown SESSION_STORE %q", c.SessionStore)
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("SWEEP_INTERVAL must be positive, got %s", c.SweepInterval)
	}

	switch c.CartBackend {
	case CartLocal:
	case CartStorefront:
		if c.StorefrontCartURL == "" || c.StorefrontTokenURL == "" {
			return errors.New("STOREFRONT_CART_URL and STOREFRONT_TOKEN_URL are required for the storefront cart")
		}
	default:
		return fmt.Errorf("unknown CART_BACKEND %q", c.CartBackend)
	}

	return nil
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
