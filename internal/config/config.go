package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the template server settings.
type Config struct {
	// Addr is the listen address, e.g. ":8188".
	Addr string `yaml:"addr"`

	// StateDir is the directory FormatString states are saved under.
	StateDir string `yaml:"state_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// ConfigTTL bounds how long per-node configs are retained.
	ConfigTTL Duration `yaml:"config_ttl"`

	// Redis, when Addr is set, switches the config store from the in-memory
	// cache to a shared Redis instance.
	Redis RedisConfig `yaml:"redis"`
}

// Duration wraps time.Duration so YAML values like "1h" parse.
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// RedisConfig holds the optional Redis connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:      ":8188",
		StateDir:  ".nodewire/states",
		LogLevel:  "info",
		ConfigTTL: Duration(12 * time.Hour),
	}
}

// Load reads settings from an optional YAML file, then applies NODEWIRE_*
// environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("NODEWIRE_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("NODEWIRE_STATE_DIR"); v != "" {
		cfg.StateDir = v
	}
	if v := os.Getenv("NODEWIRE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("NODEWIRE_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("NODEWIRE_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("NODEWIRE_REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = db
		}
	}
}
