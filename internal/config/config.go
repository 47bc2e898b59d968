// Package config loads the debugblocker CLI's configuration, layering
// a YAML file and DEBUGBLOCKER_* environment variables over defaults
// via viper (no command-line flags are bound to config keys; the CLI's
// --config flag only selects the file), generalizing jhkimqd-chaos-utils/pkg/config's struct-of-
// structs + file/env layering to this domain's join tunables (field
// removal ratio, output size) plus the logging/concurrency knobs a
// runnable CLI needs.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the debugblocker CLI's full configuration surface.
type Config struct {
	Join        JoinConfig        `yaml:"join" mapstructure:"join"`
	Logging     LoggingConfig     `yaml:"logging" mapstructure:"logging"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
}

// JoinConfig holds the top-k join's tunables.
type JoinConfig struct {
	FieldRemoveRatio float64 `yaml:"field_remove_ratio" mapstructure:"field_remove_ratio"`
	OutputSize       int     `yaml:"output_size" mapstructure:"output_size"`
}

// LoggingConfig selects the CLI's log level and format.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// ConcurrencyConfig controls per-configuration join dispatch.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// Default returns the configuration used when no file is supplied,
// mirroring jhkimqd-chaos-utils/pkg/config.DefaultConfig's role.
func Default() Config {
	return Config{
		Join: JoinConfig{
			FieldRemoveRatio: 0.5,
			OutputSize:       100,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
	}
}

// Load reads configuration from path (if non-empty), overlaying
// DEBUGBLOCKER_* environment variables, on top of Default().
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DEBUGBLOCKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("join.field_remove_ratio", def.Join.FieldRemoveRatio)
	v.SetDefault("join.output_size", def.Join.OutputSize)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("concurrency.workers", def.Concurrency.Workers)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshalling: %w", err)
	}
	return cfg, nil
}

// YAML renders cfg the way it would be written to a config file, for a
// CLI subcommand that prints the resolved or default configuration for
// a user to copy and edit.
func (c Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshalling: %w", err)
	}
	return out, nil
}
