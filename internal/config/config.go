package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// Supported generative-text providers.
const (
	ProviderArk    = "ark"
	ProviderOpenAI = "openai"
)

// Config aggregates every subsystem's settings.
type Config struct {
	Server   ServerConfig
	Telegram TelegramConfig
	AI       AIConfig
	Database DatabaseConfig
	History  HistoryConfig
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	telegram, err := loadTelegramConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	history, err := loadHistoryConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:   server,
		Telegram: telegram,
		AI:       ai,
		Database: DatabaseConfig{URL: strings.TrimSpace(os.Getenv("DATABASE_URL"))},
		History:  history,
	}, nil
}

// ServerConfig describes the ops HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow ":8080" or "127.0.0.1:8080" as-is.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// TelegramConfig describes the bot transport.
type TelegramConfig struct {
	Token       string
	PollTimeout time.Duration
}

// Enabled reports whether the bot token is present.
func (c TelegramConfig) Enabled() bool {
	return c.Token != ""
}

func loadTelegramConfig() (TelegramConfig, error) {
	pollSeconds := 30
	if override, err := parseOptionalIntEnv("TELEGRAM_POLL_TIMEOUT"); err != nil {
		return TelegramConfig{}, err
	} else if override != nil && *override > 0 {
		pollSeconds = *override
	}

	return TelegramConfig{
		Token:       strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")),
		PollTimeout: time.Duration(pollSeconds) * time.Second,
	}, nil
}

// AIConfig describes the generative-text service.
type AIConfig struct {
	Provider       string
	APIKey         string
	AccessKey      string
	SecretKey      string
	Model          string
	BaseURL        string
	Region         string
	Temperature    *float64
	MaxTokens      *int
	OpenAIKey      string
	OpenAIModel    string
	RequestTimeout time.Duration
}

// Enabled reports whether the selected provider has usable credentials.
func (c AIConfig) Enabled() bool {
	switch c.Provider {
	case ProviderOpenAI:
		return c.OpenAIKey != ""
	default:
		return c.Model != "" && (c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != ""))
	}
}

// NewChatModel builds an Ark chat model from the configuration.
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("ark credentials missing: provide ARK_API_KEY + ARK_MODEL or AK/SK pair")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Model:       c.Model,
		MaxTokens:   c.MaxTokens,
		Temperature: temperature,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("ARK_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("ARK_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	timeoutSeconds := 30
	if override, err := parseOptionalIntEnv("AI_REQUEST_TIMEOUT"); err != nil {
		return AIConfig{}, err
	} else if override != nil && *override > 0 {
		timeoutSeconds = *override
	}

	provider := strings.ToLower(getEnvOrDefault("AI_PROVIDER", ProviderArk))
	if provider != ProviderArk && provider != ProviderOpenAI {
		return AIConfig{}, fmt.Errorf("invalid AI_PROVIDER value: %q", provider)
	}

	return AIConfig{
		Provider:       provider,
		APIKey:         strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		AccessKey:      strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		SecretKey:      strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		Model:          strings.TrimSpace(os.Getenv("ARK_MODEL")),
		BaseURL:        getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		Region:         getEnvOrDefault("ARK_REGION", "cn-beijing"),
		Temperature:    temperature,
		MaxTokens:      maxTokens,
		OpenAIKey:      strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIModel:    getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		RequestTimeout: time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

// DatabaseConfig describes the exchange-history database.
type DatabaseConfig struct {
	URL string
}

// Enabled reports whether a database connection string was provided.
func (c DatabaseConfig) Enabled() bool {
	return c.URL != ""
}

// HistoryConfig tunes the asynchronous exchange recorder.
type HistoryConfig struct {
	QueueSize    int
	WriteTimeout time.Duration
}

func loadHistoryConfig() (HistoryConfig, error) {
	queueSize := 64
	if override, err := parseOptionalIntEnv("HISTORY_QUEUE_SIZE"); err != nil {
		return HistoryConfig{}, err
	} else if override != nil && *override > 0 {
		queueSize = *override
	}

	writeSeconds := 5
	if override, err := parseOptionalIntEnv("HISTORY_WRITE_TIMEOUT"); err != nil {
		return HistoryConfig{}, err
	} else if override != nil && *override > 0 {
		writeSeconds = *override
	}

	return HistoryConfig{
		QueueSize:    queueSize,
		WriteTimeout: time.Duration(writeSeconds) * time.Second,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
