package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Email delivery modes. The mode is resolved once at startup and passed
// into the mailer constructor; nothing reads mail credentials at call time.
const (
	EmailModeResend   = "resend"
	EmailModeLogged   = "logged"
	EmailModeDisabled = "disabled"
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	// Email (Resend)
	ResendAPIKey        string
	EmailFrom           string
	EmailFromName       string
	EmailMode           string
	EmailTimeoutSeconds int
	// When true, a failed reminder delivery decrements the counter that was
	// incremented before the send attempt. Default false: the counter stays
	// incremented even when delivery fails.
	ReminderCompensateOnFailure bool
	// Other
	AllowedOrigins []string
	AppURL         string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		ServerPort:                  getEnv("SERVER_PORT", "8080"),
		DBPath:                      getEnv("DB_PATH", "db/app.db"),
		Environment:                 getEnv("ENVIRONMENT", "development"),
		ResendAPIKey:                getEnv("RESEND_API_KEY", ""),
		EmailFrom:                   getEnv("EMAIL_FROM", "noreply@dmcourtoffice.org"),
		EmailFromName:               getEnv("EMAIL_FROM_NAME", "District Magistrate Office"),
		EmailMode:                   getEnv("EMAIL_MODE", ""),
		EmailTimeoutSeconds:         getEnvInt("EMAIL_TIMEOUT_SECONDS", 15),
		ReminderCompensateOnFailure: getEnvBool("REMINDER_COMPENSATE_ON_FAILURE", false),
		AllowedOrigins:              strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		AppURL:                      getEnv("APP_URL", "http://localhost:8080"),
	}

	cfg.EmailMode = resolveEmailMode(cfg.EmailMode, cfg.ResendAPIKey)
	return cfg
}

// resolveEmailMode picks the delivery strategy once at load time.
// An explicit EMAIL_MODE wins; otherwise a configured API key means real
// delivery and a missing one degrades to the logged fallback so the rest
// of the system stays operable without mail credentials.
func resolveEmailMode(explicit, apiKey string) string {
	switch strings.ToLower(explicit) {
	case EmailModeResend, EmailModeLogged, EmailModeDisabled:
		return strings.ToLower(explicit)
	case "":
		// infer below
	default:
		log.Printf("[WARNING] Unknown EMAIL_MODE %q, inferring from credentials", explicit)
	}

	if apiKey != "" {
		return EmailModeResend
	}
	log.Println("[EMAIL] No mail credentials configured, falling back to logged delivery")
	return EmailModeLogged
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("[WARNING] Invalid value for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}
