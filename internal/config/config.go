package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string   `mapstructure:"env"`          // current application environment (local, dev, production etc)
	TelegramAPIToken string   `mapstructure:"-"`            // Telegram API token loaded from environment
	CatalogPath      string   `mapstructure:"catalog_path"` // path to a JSON or YAML element catalog, empty for the bundled one
	Telegram         Telegram `mapstructure:"telegram"`     // Telegram client configuration section
	Log              Log      `mapstructure:"log"`          // logging configuration section
}

// Telegram contains bot client parameters.
type Telegram struct {
	Debug         bool `mapstructure:"debug"`          // log raw Bot API traffic
	UpdateTimeout int  `mapstructure:"update_timeout"` // long polling timeout in seconds
}

// Log contains logger parameters.
type Log struct {
	Level string `mapstructure:"level"` // minimal level: debug, info, warn, error
	File  string `mapstructure:"file"`  // optional rotating log file
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	// Variables already set in the environment win over .env.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("catalog_path", "")
	v.SetDefault("telegram.debug", false)
	v.SetDefault("telegram.update_timeout", 60)
	v.SetDefault("log.level", "")
	v.SetDefault("log.file", "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("catalog_path", "CATALOG_PATH")
	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("log.file", "LOG_FILE")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	if cfg.Telegram.UpdateTimeout <= 0 {
		cfg.Telegram.UpdateTimeout = 60
	}

	return &cfg, nil
}
