package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort            int    `mapstructure:"APP_PORT"`
	DatabasePath       string `mapstructure:"DATABASE_PATH"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	ProviderTimeoutSec int    `mapstructure:"PROVIDER_TIMEOUT_SECONDS"`

	// Base URLs are overridable for tests and self-hosted gateways.
	OpenAIBaseURL     string `mapstructure:"OPENAI_BASE_URL"`
	AnthropicBaseURL  string `mapstructure:"ANTHROPIC_BASE_URL"`
	GoogleBaseURL     string `mapstructure:"GOOGLE_BASE_URL"`
	OpenRouterBaseURL string `mapstructure:"OPENROUTER_BASE_URL"`

	// OpenRouter asks callers to identify themselves.
	OpenRouterReferer  string `mapstructure:"OPENROUTER_REFERER"`
	OpenRouterAppTitle string `mapstructure:"OPENROUTER_APP_TITLE"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("DATABASE_PATH", "/data/prism.db")
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("PROVIDER_TIMEOUT_SECONDS", 30)
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com")
	viper.SetDefault("ANTHROPIC_BASE_URL", "https://api.anthropic.com")
	viper.SetDefault("GOOGLE_BASE_URL", "https://generativelanguage.googleapis.com")
	viper.SetDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api")
	viper.SetDefault("OPENROUTER_REFERER", "https://prism.chat")
	viper.SetDefault("OPENROUTER_APP_TITLE", "Prism")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ProviderTimeout is the bound on one upstream provider call. A timed-out
// direct call counts as a failure and triggers the aggregator fallback.
func (c *Config) ProviderTimeout() time.Duration {
	return time.Duration(c.ProviderTimeoutSec) * time.Second
}
