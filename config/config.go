package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"

	ProviderTwilio   = "twilio"
	ProviderTelegram = "telegram"
	ProviderLog      = "log"
)

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	Redis      RedisConfig
	Notify     NotifyConfig
	Storefront StorefrontConfig
}

type ServerConfig struct {
	Port             string
	Mode             string
	CORSAllowOrigins []string
}

type DBConfig struct {
	URL         string // DATABASE_URL wins over the individual fields
	Host        string
	Port        int
	User        string
	Password    string
	Database    string
	AutoMigrate bool
}

type RedisConfig struct {
	Addr     string // empty disables the catalog cache
	Password string
	DB       int
	CacheTTL time.Duration
}

type NotifyConfig struct {
	Provider string
	To       string // destination: WhatsApp number for twilio, chat id for telegram

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string

	TelegramToken string // MESSAGE_TOKEN: bot used only for order notifications
}

type StorefrontConfig struct {
	APIHost string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("DB_PORT: %w", err)
	}
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("REDIS_DB: %w", err)
	}
	ttl, err := time.ParseDuration(getEnv("CATALOG_CACHE_TTL", "60s"))
	if err != nil {
		return nil, fmt.Errorf("CATALOG_CACHE_TTL: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:             getEnv("PORT", "5000"),
			Mode:             strings.ToLower(getEnv("APP_ENV", getEnv("NODE_ENV", ModeProduction))),
			CORSAllowOrigins: splitCSV(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		},
		DB: DBConfig{
			URL:         getEnv("DATABASE_URL", ""),
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        dbPort,
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", ""),
			Database:    getEnv("DB_NAME", "food_ordering"),
			AutoMigrate: envBool("AUTO_MIGRATE", false),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
			CacheTTL: ttl,
		},
		Notify: NotifyConfig{
			Provider:         strings.ToLower(getEnv("NOTIFY_PROVIDER", ProviderTwilio)),
			To:               getEnv("NOTIFY_TO", ""),
			TwilioAccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
			TwilioAuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
			TwilioFrom:       getEnv("TWILIO_FROM", "+14155238886"),
			TelegramToken:    getEnv("MESSAGE_TOKEN", ""),
		},
		Storefront: StorefrontConfig{
			APIHost: strings.TrimRight(getEnv("API_HOST", "http://localhost:5000"), "/"),
		},
	}
	return cfg, nil
}

// Validate checks the settings needed to serve. The storefront command does not call it.
func (c *Config) Validate() error {
	switch c.Notify.Provider {
	case ProviderTwilio:
		if c.Notify.TwilioAccountSID == "" || c.Notify.TwilioAuthToken == "" {
			return fmt.Errorf("TWILIO_ACCOUNT_SID and TWILIO_AUTH_TOKEN are required for provider %q", ProviderTwilio)
		}
	case ProviderTelegram:
		if c.Notify.TelegramToken == "" {
			return fmt.Errorf("MESSAGE_TOKEN is required for provider %q", ProviderTelegram)
		}
	case ProviderLog:
	default:
		return fmt.Errorf("unknown NOTIFY_PROVIDER %q", c.Notify.Provider)
	}
	if c.Notify.Provider != ProviderLog && c.Notify.To == "" {
		return fmt.Errorf("NOTIFY_TO is required")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Mode == ModeDevelopment
}

// DatabaseURL returns DATABASE_URL if set, otherwise a postgres URL built from DB_*.
func (c *Config) DatabaseURL() string {
	if c.DB.URL != "" {
		return c.DB.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Database)
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	default:
		return def
	}
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
