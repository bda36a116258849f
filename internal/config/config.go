// Package config loads service configuration from a YAML file with
// environment variable expansion and viper-backed defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Waves   WavesConfig   `mapstructure:"waves"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	Host           string   `mapstructure:"host"`
	RateLimit      float64  `mapstructure:"rate_limit"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	CacheSize      int      `mapstructure:"cache_size"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// WavesConfig selects and configures the wave server backend.
type WavesConfig struct {
	Backend  string         `mapstructure:"backend"` // "edge" or "postgres"
	EdgeURL  string         `mapstructure:"edge_url"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// ConnString builds a lib/pq connection string from the Postgres settings.
func (p PostgresConfig) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Name, p.SSLMode,
	)
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from path. Values of the form $VAR are expanded
// from the environment before parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	if err := v.ReadConfig(strings.NewReader(expanded)); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.rate_limit", 5.0)
	v.SetDefault("server.rate_limit_burst", 10)
	v.SetDefault("server.cache_size", 1000)

	v.SetDefault("waves.backend", "edge")
	v.SetDefault("waves.edge_url", "http://localhost:2060/timeseries")
	v.SetDefault("waves.postgres.port", 5432)
	v.SetDefault("waves.postgres.ssl_mode", "disable")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
