// Package config loads ulidkit settings from a YAML file and ULIDKIT_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

const (
	// FileName is the config file name without extension.
	FileName = "config"

	// EnvPrefix prefixes every environment override, e.g. ULIDKIT_LIMITS_BULK.
	EnvPrefix = "ULIDKIT"

	DefaultBulkLimit   = 10_000
	DefaultStreamLimit = 100_000
	DefaultBatchSize   = 1000
	DefaultLogLevel    = "warn"
	DefaultOutput      = "text"
)

// Config is the resolved configuration.
type Config struct {
	Limits Limits `mapstructure:"limits"`
	Stream Stream `mapstructure:"stream"`
	Log    Log    `mapstructure:"log"`
	Output string `mapstructure:"output"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// Limits caps generation requests.
type Limits struct {
	Bulk   int `mapstructure:"bulk"`
	Stream int `mapstructure:"stream"`
}

// Stream holds batch processing defaults.
type Stream struct {
	BatchSize int `mapstructure:"batch_size"`
	Workers   int `mapstructure:"workers"`
}

// Log holds logger settings.
type Log struct {
	Level string `mapstructure:"level"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Limits: Limits{Bulk: DefaultBulkLimit, Stream: DefaultStreamLimit},
		Stream: Stream{BatchSize: DefaultBatchSize, Workers: runtime.NumCPU()},
		Log:    Log{Level: DefaultLogLevel},
		Output: DefaultOutput,
	}
}

// Load reads configuration. dir is an explicit config directory or file
// (the --config flag); when empty the standard locations are searched.
// A missing config file is not an error.
func Load(dir string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if dir != "" && filepath.Ext(dir) != "" {
		v.SetConfigFile(dir)
	} else {
		v.SetConfigName(FileName)
		for _, p := range searchPaths(dir) {
			v.AddConfigPath(p)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values no command can work with.
func (c Config) Validate() error {
	if c.Limits.Bulk <= 0 {
		return fmt.Errorf("limits.bulk must be positive, got %d", c.Limits.Bulk)
	}
	if c.Limits.Stream <= 0 {
		return fmt.Errorf("limits.stream must be positive, got %d", c.Limits.Stream)
	}
	if c.Stream.BatchSize <= 0 {
		return fmt.Errorf("stream.batch_size must be positive, got %d", c.Stream.BatchSize)
	}
	if c.Stream.Workers <= 0 {
		return fmt.Errorf("stream.workers must be positive, got %d", c.Stream.Workers)
	}
	switch c.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("output must be one of text, json, yaml, got %q", c.Output)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("limits.bulk", d.Limits.Bulk)
	v.SetDefault("limits.stream", d.Limits.Stream)
	v.SetDefault("stream.batch_size", d.Stream.BatchSize)
	v.SetDefault("stream.workers", d.Stream.Workers)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("output", d.Output)
}

func searchPaths(dir string) []string {
	if dir != "" {
		return []string{dir}
	}

	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "ulidkit"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "ulidkit"))
	}
	return append(paths, ".")
}
