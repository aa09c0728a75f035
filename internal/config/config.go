package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Store Store `mapstructure:"store"`
	Log   Log   `mapstructure:"log"`
	Seed  Seed  `mapstructure:"seed"`
	Chat  Chat  `mapstructure:"chat"`
}

type Store struct {
	Path string `mapstructure:"path"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

type Seed struct {
	Enabled bool `mapstructure:"enabled"`
}

// Chat tunes the cosmetic typing delay the console front-end inserts
// before showing a reply. It has no effect on correctness: the message
// is persisted before the delay starts.
type Chat struct {
	TypingDelayMinMS int `mapstructure:"typing_delay_min_ms"`
	TypingDelayMaxMS int `mapstructure:"typing_delay_max_ms"`
}

// envOverrides are applied after the config file, prefixed PORTAL_
// (PORTAL_STORE_PATH, PORTAL_LOG_LEVEL, PORTAL_SEED_ENABLED).
type envOverrides struct {
	StorePath   string `envconfig:"STORE_PATH"`
	LogLevel    string `envconfig:"LOG_LEVEL"`
	SeedEnabled *bool  `envconfig:"SEED_ENABLED"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("store.path", "portal.db")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("seed.enabled", true)
	viper.SetDefault("chat.typing_delay_min_ms", 1000)
	viper.SetDefault("chat.typing_delay_max_ms", 2000)

	if err := viper.ReadInConfig(); err != nil {
		// Defaults are complete, so a missing file is fine.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var env envOverrides
	if err := envconfig.Process("portal", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment overrides: %w", err)
	}
	if env.StorePath != "" {
		config.Store.Path = env.StorePath
	}
	if env.LogLevel != "" {
		config.Log.Level = env.LogLevel
	}
	if env.SeedEnabled != nil {
		config.Seed.Enabled = *env.SeedEnabled
	}

	return &config, nil
}
