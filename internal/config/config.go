package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/abdullahzahoor404/telco-scanner/internal/models"
)

var (
	ErrEmptyToken   = errors.New("error getting TS_TELEGRAM_TOKEN: variable not specified or contains an empty string")
	ErrEmptySources = errors.New("error getting TS_SOURCES: variable not specified or contains an empty string")
)

type Config struct {
	Env         string // Env is the current environment: local, dev, prod.
	StoragePath string
	Sources     []models.Source
	Tg          Telegram
	Inference   Inference
}

type Telegram struct {
	Token   string        // Token is an unique telegram bot token.
	Timeout time.Duration // Timeout is a poller timeout duration.
}

// Inference configures the optional model-backed extraction strategy.
// It stays disabled when no API key is supplied.
type Inference struct {
	Enabled     bool
	APIKey      string
	BaseURL     string
	Models      []string // ordered model preference list
	Timeout     time.Duration
	RetryDelay  time.Duration
	MaxAttempts int
}

// MustLoad loads the configuration from environment variables and returns a Config struct.
func MustLoad() *Config {
	// Automatically binds environment variables to config keys
	viper.SetEnvPrefix("TS")
	viper.AutomaticEnv()

	// optional args
	viper.SetDefault("ENV", "production")
	viper.SetDefault("TELEGRAM_TIMEOUT", "15s")
	viper.SetDefault("STORAGE_PATH", "telco-scanner.db")
	viper.SetDefault("CARD_SELECTOR", ".card")
	viper.SetDefault("INFERENCE_MODELS", "gpt-4o-mini,gpt-4.1-mini")
	viper.SetDefault("INFERENCE_TIMEOUT", "60s")
	viper.SetDefault("INFERENCE_RETRY_DELAY", "20s")
	viper.SetDefault("INFERENCE_MAX_ATTEMPTS", 3)

	if viper.GetString("TELEGRAM_TOKEN") == "" {
		panic(ErrEmptyToken)
	}
	if viper.GetString("SOURCES") == "" {
		panic(ErrEmptySources)
	}

	return &Config{
		Env:         viper.GetString("ENV"),
		StoragePath: viper.GetString("STORAGE_PATH"),
		Sources:     parseSources(viper.GetString("SOURCES"), viper.GetString("CARD_SELECTOR")),
		Tg: Telegram{
			Token:   viper.GetString("TELEGRAM_TOKEN"),
			Timeout: viper.GetDuration("TELEGRAM_TIMEOUT"),
		},
		Inference: Inference{
			Enabled:     viper.GetString("INFERENCE_API_KEY") != "",
			APIKey:      viper.GetString("INFERENCE_API_KEY"),
			BaseURL:     viper.GetString("INFERENCE_BASE_URL"),
			Models:      splitList(viper.GetString("INFERENCE_MODELS")),
			Timeout:     viper.GetDuration("INFERENCE_TIMEOUT"),
			RetryDelay:  viper.GetDuration("INFERENCE_RETRY_DELAY"),
			MaxAttempts: viper.GetInt("INFERENCE_MAX_ATTEMPTS"),
		},
	}
}

// parseSources decodes "Operator=URL" pairs separated by semicolons,
// e.g. "Zong=https://example.com/prepaid;Jazz=https://example.org/bundles".
func parseSources(raw, selector string) []models.Source {
	var sources []models.Source
	for _, pair := range strings.Split(raw, ";") {
		operator, pageURL, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found {
			continue
		}
		sources = append(sources, models.Source{
			Operator: strings.TrimSpace(operator),
			URL:      strings.TrimSpace(pageURL),
			Selector: selector,
		})
	}
	return sources
}

func splitList(raw string) []string {
	var values []string
	for _, value := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
