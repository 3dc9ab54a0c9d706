package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/PetroczyP/mergington-activities/internal/i18n"
)

type Config struct {
	Port                          string        `mapstructure:"PORT"`
	DefaultLang                   string        `mapstructure:"DEFAULT_LANG"`
	LogLevel                      string        `mapstructure:"LOG_LEVEL"`
	LogFormat                     string        `mapstructure:"LOG_FORMAT"`
	EnableCORS                    bool          `mapstructure:"ENABLE_CORS"`
	StaticDir                     string        `mapstructure:"STATIC_DIR"`
	ShutdownTimeout               time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	DiscordBotToken               string        `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string        `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
}

// Lang returns the configured fallback language.
func (c *Config) Lang() i18n.Lang {
	if lang, ok := i18n.ParseLang(c.DefaultLang); ok {
		return lang
	}
	return i18n.Default
}

// DiscordEnabled reports whether signup announcements should be posted.
func (c *Config) DiscordEnabled() bool {
	return c.DiscordBotToken != "" && c.DiscordNotificationsChannelID != ""
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DEFAULT_LANG", string(i18n.Default))
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("ENABLE_CORS", false)
	v.SetDefault("STATIC_DIR", "static")
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)

	v.BindEnv("DISCORD_BOT_TOKEN")
	v.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")

	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if _, ok := i18n.ParseLang(config.DefaultLang); !ok {
		return nil, fmt.Errorf("DEFAULT_LANG %q is not one of %v", config.DefaultLang, i18n.Supported())
	}
	if config.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", config.ShutdownTimeout)
	}

	return &config, nil
}
