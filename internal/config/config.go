package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Server     ServerConfig
	Completion CompletionConfig
	Voice      VoiceConfig
	Mail       MailConfig
	Ledger     LedgerConfig
	Relay      RelayConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port      int
	WebAppURI string
}

// CompletionConfig holds settings for the Groq chat-completion service
type CompletionConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// VoiceConfig holds telephony callback settings
type VoiceConfig struct {
	// PublicBaseURL is the externally reachable address of this service,
	// used to build the Gather action URL. May be empty; the TwiML is
	// still well-formed but Twilio has no callback target.
	PublicBaseURL string
}

// MailConfig holds transactional email settings
type MailConfig struct {
	ResendAPIKey  string
	DefaultSender string
}

// LedgerConfig holds Google Sheets booking-ledger settings
type LedgerConfig struct {
	ProjectID     string
	ClientEmail   string
	PrivateKey    string
	SpreadsheetID string
}

// RelayConfig holds the automation webhook settings for chat messages
type RelayConfig struct {
	WebhookURL string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	var err error
	if cfg.Completion.APIKey, err = requireEnv("GROQ_API_KEY"); err != nil {
		return nil, err
	}
	cfg.Completion.Model = getEnvWithDefault("GROQ_MODEL", "llama3-8b-8192")

	timeoutSeconds := getEnvWithDefault("COMPLETION_TIMEOUT_SECONDS", "4")
	seconds, err := strconv.Atoi(timeoutSeconds)
	if err != nil {
		return nil, fmt.Errorf("failed to parse COMPLETION_TIMEOUT_SECONDS: %w", err)
	}
	cfg.Completion.Timeout = time.Duration(seconds) * time.Second

	// Optional: without it the Gather has no callback target, which is a
	// deployment defect rather than a structural one. Callers log loudly.
	cfg.Voice.PublicBaseURL = strings.TrimSuffix(os.Getenv("PUBLIC_BASE_URL"), "/")

	// Sibling endpoints validate these per request
	cfg.Mail.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Mail.DefaultSender = os.Getenv("DEFAULT_EMAIL_SENDER_ADDRESS")
	cfg.Relay.WebhookURL = os.Getenv("AUTOMATION_WEBHOOK_URL")

	cfg.Ledger.ProjectID = os.Getenv("GOOGLE_PROJECT_ID")
	cfg.Ledger.ClientEmail = os.Getenv("GOOGLE_CLIENT_EMAIL")
	// Private keys arrive with literal \n sequences from most env tooling
	cfg.Ledger.PrivateKey = strings.ReplaceAll(os.Getenv("GOOGLE_PRIVATE_KEY"), `\n`, "\n")
	cfg.Ledger.SpreadsheetID = os.Getenv("GOOGLE_SHEET_ID")

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	cfg.Server.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")

	return cfg, nil
}

// MailConfigured reports whether the email notifier can send
func (c *Config) MailConfigured() bool {
	return c.Mail.ResendAPIKey != "" && c.Mail.DefaultSender != ""
}

// LedgerConfigured reports whether the booking ledger can append
func (c *Config) LedgerConfigured() bool {
	return c.Ledger.ClientEmail != "" && c.Ledger.PrivateKey != "" && c.Ledger.SpreadsheetID != ""
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
