package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port          string        `validate:"required,numeric"`
	Env           string        `validate:"oneof=development production test"`
	APIBaseURL    string        `validate:"required,url"`
	APIKey        string
	APITimeout    time.Duration `validate:"gt=0"`
	SessionName   string        `validate:"required"`
	SessionSecret string        `validate:"required,min=32"`
	SecureCookies bool
	RedisURL      string        `validate:"omitempty,url"`
	LatestPostTTL time.Duration `validate:"gt=0"`
	SearchPath    string        `validate:"required,startswith=/"`

	HeaderActiveLinks bool
	HeaderSearch      bool
	LoginAlerts       bool
}

const devSessionSecret = "connectly-development-session-secret"

// Load reads .env (when present) and the environment
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	env := getEnv("ENV", "development")
	return &Config{
		Port:              getEnv("PORT", "8080"),
		Env:               env,
		APIBaseURL:        getEnv("API_BASE_URL", "https://v2.api.noroff.dev"),
		APIKey:            getEnv("API_KEY", ""),
		APITimeout:        getDuration("API_TIMEOUT", 10*time.Second),
		SessionName:       getEnv("SESSION_NAME", "connectly_session"),
		SessionSecret:     getEnv("SESSION_SECRET", devSessionSecret),
		SecureCookies:     getBool("SECURE_COOKIES", env == "production"),
		RedisURL:          getEnv("REDIS_URL", ""),
		LatestPostTTL:     getDuration("LATEST_POST_TTL", 24*time.Hour),
		SearchPath:        getEnv("SEARCH_PATH", "/search/"),
		HeaderActiveLinks: getBool("HEADER_ACTIVE_LINKS", true),
		HeaderSearch:      getBool("HEADER_SEARCH", true),
		LoginAlerts:       getBool("LOGIN_ALERTS", true),
	}
}

// Validate checks field constraints. Production refuses the development
// session secret.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Env == "production" && c.SessionSecret == devSessionSecret {
		return fmt.Errorf("invalid config: SESSION_SECRET must be set in production")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}
