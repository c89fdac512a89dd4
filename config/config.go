package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Parsing
	NLP       NLPConfig
	PackCache PackCacheConfig

	// Delivery
	RateLimit RateLimitConfig
	Telegram  TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// NLPConfig holds parser defaults.
type NLPConfig struct {
	Language           string
	DefaultToScheduled bool
	Timezone           string
	// VocabularyFile is a .json or .toml file of priorities and statuses. Inline lists
	// below are used only when no file is set.
	VocabularyFile string
	Priorities     []TermConfig
	Statuses       []TermConfig
}

// TermConfig is one custom priority or status.
type TermConfig struct {
	ID    string `mapstructure:"id"`
	Label string `mapstructure:"label"`
}

type PackCacheConfig struct {
	Size int
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
	NgrokAPI   string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/tasknotes/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/tasknotes/")

	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Parsing
	cfg.NLP.Language = v.GetString("nlp.language")
	cfg.NLP.DefaultToScheduled = v.GetBool("nlp.default_to_scheduled")
	cfg.NLP.Timezone = v.GetString("nlp.timezone")
	cfg.NLP.VocabularyFile = v.GetString("nlp.vocabulary_file")
	if err := v.UnmarshalKey("nlp.priorities", &cfg.NLP.Priorities); err != nil {
		return nil, fmt.Errorf("nlp.priorities: %w", err)
	}
	if err := v.UnmarshalKey("nlp.statuses", &cfg.NLP.Statuses); err != nil {
		return nil, fmt.Errorf("nlp.statuses: %w", err)
	}
	cfg.PackCache.Size = v.GetInt("pack_cache.size")

	// Delivery
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.NgrokAPI = v.GetString("telegram.ngrok_api")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d is out of range", cfg.HTTPServer.Port)
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("nlp.language", "en")
	v.SetDefault("nlp.default_to_scheduled", true)
	v.SetDefault("nlp.timezone", "UTC")
	v.SetDefault("pack_cache.size", 64)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)
	v.SetDefault("telegram.ngrok_api", "http://ngrok:4040")
}
