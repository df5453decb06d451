package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultMaxFileSize caps how large a PDF the server will open.
const DefaultMaxFileSize = 100 * 1024 * 1024

// Config is the resolved server configuration.
type Config struct {
	// DataDir is the directory holding the PDF documents served by the tools.
	DataDir string `mapstructure:"data_dir"`
	// MaxFileSize is the largest PDF, in bytes, the server will process.
	MaxFileSize int64 `mapstructure:"max_file_size"`
	Log         Log   `mapstructure:"log"`
}

// Log holds the logging settings.
type Log struct {
	Level    string `mapstructure:"level"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		DataDir:     "data",
		MaxFileSize: DefaultMaxFileSize,
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads configuration from defaults, an optional config file, and
// STRATA_-prefixed environment variables, in increasing precedence.
// A missing config file is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("data_dir", defaults.DataDir)
	v.SetDefault("max_file_size", defaults.MaxFileSize)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.output", defaults.Log.Output)
	v.SetDefault("log.file_path", defaults.Log.FilePath)

	v.SetEnvPrefix("STRATA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.strata-mcp")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
