// Package config loads shade settings from shade.yaml, SHADE_* environment
// variables and defaults, in that order of precedence below explicit flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/renato0307/shade/internal/css"
	"github.com/renato0307/shade/internal/logging"
	"github.com/renato0307/shade/internal/registry"
)

// EnvPrefix prefixes every environment variable, e.g. SHADE_LOG_LEVEL.
const EnvPrefix = "SHADE"

type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Store    StoreConfig    `mapstructure:"store"`
	Registry RegistryConfig `mapstructure:"registry"`
	CSS      CSSConfig      `mapstructure:"css"`
	Presets  PresetsConfig  `mapstructure:"presets"`
	Share    ShareConfig    `mapstructure:"share"`
}

type LogConfig struct {
	File   string `mapstructure:"file"`
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type StoreConfig struct {
	Path string `mapstructure:"path"`
}

type RegistryConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type CSSConfig struct {
	Output string `mapstructure:"output"`
	Format string `mapstructure:"format"`
}

type PresetsConfig struct {
	File string `mapstructure:"file"`
}

// ShareConfig.File receives the share token after every theme change.
type ShareConfig struct {
	File string `mapstructure:"file"`
}

// New returns a viper instance reading cfgFile, or shade.yaml from the
// working directory and the user config directory when cfgFile is empty.
// A missing config file is not an error.
func New(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("shade")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "shade"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", string(logging.FormatText))
	v.SetDefault("store.path", defaultStorePath())
	v.SetDefault("registry.base_url", registry.DefaultBaseURL)
	v.SetDefault("css.output", "")
	v.SetDefault("css.format", string(css.FormatLegacy))
	v.SetDefault("presets.file", "")
	v.SetDefault("share.file", "")
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("log.level must be one of: debug, info, warn, error")
	}
	if cfg.Log.Format != string(logging.FormatText) && cfg.Log.Format != string(logging.FormatJSON) {
		return nil, fmt.Errorf("log.format must be text or json")
	}
	if _, err := css.ParseFormat(cfg.CSS.Format); err != nil {
		return nil, fmt.Errorf("css.format: %w", err)
	}
	if cfg.Store.Path == "" {
		return nil, fmt.Errorf("store.path is required")
	}

	return &cfg, nil
}

// LoggingConfig converts the log section for logging.Init.
func (c *Config) LoggingConfig() logging.Config {
	return logging.Config{
		FilePath:   c.Log.File,
		Level:      logging.ParseLevel(c.Log.Level),
		Format:     logging.ParseFormat(c.Log.Format),
		MaxSizeMB:  10,
		MaxBackups: 3,
	}
}

func defaultStorePath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "shade", "shade.db")
	}
	return "shade.db"
}
