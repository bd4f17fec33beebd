// Package config loads the YAML configuration file and applies URBANSIM_*
// environment overrides on top of it.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the simulator.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Simulation SimulationConfig `yaml:"simulation"`
	Storage    StorageConfig    `yaml:"storage"`
	Redis      RedisConfig      `yaml:"redis"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Port           int      `yaml:"port"`
	AdminKey       string   `yaml:"admin_key"` // empty disables admin endpoints
	RatePerMinute  int      `yaml:"rate_per_minute"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// SimulationConfig holds population and run pacing settings.
type SimulationConfig struct {
	Population    int    `yaml:"population"`
	Seed          int64  `yaml:"seed"` // 0 = random per process
	PhaseDelayMS  int    `yaml:"phase_delay_ms"`
	DefaultYears  int    `yaml:"default_years"`
	DefaultLocale string `yaml:"default_locale"`
}

// PhaseDelay returns the staged-run pause as a duration.
func (c SimulationConfig) PhaseDelay() time.Duration {
	return time.Duration(c.PhaseDelayMS) * time.Millisecond
}

// StorageConfig holds the run archive location.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// RedisConfig selects the redis-backed regional cache. Empty Addr keeps the
// cache in memory.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Key      string `yaml:"key"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// SlogLevel maps the configured level onto slog.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{Storage: StorageConfig{Enabled: true}}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RatePerMinute == 0 {
		cfg.Server.RatePerMinute = 30
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}
	if cfg.Simulation.Population == 0 {
		cfg.Simulation.Population = 1000
	}
	if cfg.Simulation.PhaseDelayMS == 0 {
		cfg.Simulation.PhaseDelayMS = 1000
	}
	if cfg.Simulation.DefaultYears == 0 {
		cfg.Simulation.DefaultYears = 10
	}
	if cfg.Simulation.DefaultLocale == "" {
		cfg.Simulation.DefaultLocale = "en"
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "data/urbansim.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// Load reads and parses the configuration file. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Config{Storage: StorageConfig{Enabled: true}}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// LoadFromEnv loads the file at path (if any), then applies environment
// overrides. A .env file in the working directory is read first when present.
func LoadFromEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) applyEnv() error {
	ints := []struct {
		key string
		dst *int
	}{
		{"URBANSIM_PORT", &cfg.Server.Port},
		{"URBANSIM_RATE_PER_MINUTE", &cfg.Server.RatePerMinute},
		{"URBANSIM_POPULATION", &cfg.Simulation.Population},
		{"URBANSIM_PHASE_DELAY_MS", &cfg.Simulation.PhaseDelayMS},
		{"URBANSIM_REDIS_DB", &cfg.Redis.DB},
	}
	for _, e := range ints {
		if v := os.Getenv(e.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", e.key, err)
			}
			*e.dst = n
		}
	}

	if v := os.Getenv("URBANSIM_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("URBANSIM_SEED: %w", err)
		}
		cfg.Simulation.Seed = n
	}
	if v := os.Getenv("URBANSIM_ADMIN_KEY"); v != "" {
		cfg.Server.AdminKey = v
	}
	if v := os.Getenv("URBANSIM_DB_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("URBANSIM_STORAGE"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("URBANSIM_STORAGE: %w", err)
		}
		cfg.Storage.Enabled = enabled
	}
	if v := os.Getenv("URBANSIM_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("URBANSIM_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("URBANSIM_LOCALE"); v != "" {
		cfg.Simulation.DefaultLocale = v
	}
	if v := os.Getenv("URBANSIM_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("URBANSIM_ALLOWED_ORIGINS"); v != "" {
		cfg.Server.AllowedOrigins = strings.Split(v, ",")
	}
	return nil
}
