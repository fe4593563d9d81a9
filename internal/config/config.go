package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	DatabaseURL      string
	BaseURL          string   // Public base URL used to compose short links
	Port             int
	JWTSecret        string   // Secret key for JWT token signing
	AllowedOrigins   []string // Origins allowed to make cross-origin requests
	AllowCredentials bool     // Whether cross-origin requests may carry cookies
	CookieSecure     bool     // Secure flag on the session cookie
	TrustedProxies   []string // Proxies whose X-Forwarded-For is trusted for the visitor address
	BcryptCost       int
	LogLevel         string
	LogJSON          bool
	ShutdownTimeout  time.Duration
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		BaseURL:          strings.TrimRight(getEnv("BASE_URL", "http://localhost:8080"), "/"),
		Port:             getEnvInt("PORT", 8080),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		AllowedOrigins:   getEnvList("ALLOWED_ORIGINS", nil),
		AllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", true),
		CookieSecure:     getEnvBool("COOKIE_SECURE", true),
		TrustedProxies:   getEnvList("TRUSTED_PROXIES", nil),
		BcryptCost:       getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogJSON:          getEnvBool("LOG_JSON", false),
		ShutdownTimeout:  getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// Validate reports the first setting that would leave the server unusable.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("BASE_URL must be an absolute URL, got %q", c.BaseURL)
	}

	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
