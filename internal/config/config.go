package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultWebhookURL is the downstream webhook the relay forwards to when
// WEBHOOK_URL is not set.
const DefaultWebhookURL = "http://localhost:5678/webhook-test/3c1f6a52-8d4e-4b7a-9f21-6e0d5b9a7c44"

// Mode selects how much work the notification endpoint does per request.
type Mode string

const (
	ModeBasic    Mode = "basic"    // log only
	ModeForward  Mode = "forward"  // log and forward to the webhook
	ModeEnriched Mode = "enriched" // payment data, QR code, forward
)

// Valid reports whether m is a known relay mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeBasic, ModeForward, ModeEnriched:
		return true
	}
	return false
}

// Forwards reports whether the mode calls the downstream webhook.
func (m Mode) Forwards() bool {
	return m == ModeForward || m == ModeEnriched
}

type Config struct {
	Port           string
	Env            string
	ExposeErrors   bool
	Mode           Mode
	WebhookURL     string
	WebhookTimeout time.Duration
	QRDir          string
	QRMaxFiles     int
	QRPublicPath   string
	CORSOrigins    string
	RateLimitMax   int
	RateLimitWin   time.Duration
	Redis          RedisConfig
}

// RedisConfig is only consulted when Host is set; the limiter falls back to
// in-memory storage otherwise.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv returns a time.Duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// Load builds the relay configuration from the environment.
func Load() Config {
	env := GetEnv("NODE_ENV", GetEnv("APP_ENV", "production"))

	mode := Mode(strings.ToLower(GetEnv("RELAY_MODE", string(ModeEnriched))))
	if !mode.Valid() {
		log.Printf("Warning: unknown RELAY_MODE %q, using %s", mode, ModeEnriched)
		mode = ModeEnriched
	}

	maxFiles := GetIntEnv("QR_MAX_FILES", 100)
	if maxFiles < 1 {
		log.Printf("Warning: invalid QR_MAX_FILES %d, using default: 100", maxFiles)
		maxFiles = 100
	}

	return Config{
		Port:           GetEnv("PORT", "3000"),
		Env:            env,
		ExposeErrors:   env == "development",
		Mode:           mode,
		WebhookURL:     GetEnv("WEBHOOK_URL", DefaultWebhookURL),
		WebhookTimeout: GetDurationEnv("WEBHOOK_TIMEOUT", 0),
		QRDir:          GetEnv("QR_DIR", "./public/qrcodes"),
		QRMaxFiles:     maxFiles,
		QRPublicPath:   "/qrcodes",
		CORSOrigins:    GetEnv("CORS_ORIGINS", "*"),
		RateLimitMax:   GetIntEnv("RATE_LIMIT_MAX", 0),
		RateLimitWin:   GetDurationEnv("RATE_LIMIT_WINDOW", time.Minute),
		Redis: RedisConfig{
			Host:     GetEnv("REDIS_HOST", ""),
			Port:     GetEnv("REDIS_PORT", "6379"),
			Password: GetEnv("REDIS_PASSWORD", ""),
			DB:       GetIntEnv("REDIS_DB", 0),
		},
	}
}

// IsDevelopment reports whether error details may be echoed to clients.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}
