package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/gloovup/portal/internal/validation"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Transport modes.
const (
	TransportHTTP  = "http"
	TransportStdio = "stdio"
)

// Config defines portal configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Log    LogConfig    `yaml:"log"`
	Portal PortalConfig `yaml:"portal"`
}

type ServerConfig struct {
	Host      string `yaml:"host" validate:"required"`
	Port      int    `yaml:"port" validate:"gte=1,lte=65535"`
	Transport string `yaml:"transport" validate:"oneof=http stdio"`
}

type DBConfig struct {
	Path string `yaml:"path" validate:"required"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"oneof=text json"`
	File   string `yaml:"file"`
}

// PortalConfig holds application settings.
type PortalConfig struct {
	// Actor is recorded as the author of every audit entry.
	Actor string `yaml:"actor" validate:"required"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:      "0.0.0.0",
			Port:      8080,
			Transport: TransportHTTP,
		},
		DB: DBConfig{
			Path: "portal.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Portal: PortalConfig{
			Actor: "admin_1",
		},
	}
}

// Load reads configuration from an optional .env file, an optional YAML
// file and environment variables, in increasing precedence.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	if path := os.Getenv("PORTAL_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("PORTAL_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("PORTAL_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORTAL_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if transport := os.Getenv("PORTAL_TRANSPORT"); transport != "" {
		cfg.Server.Transport = transport
	}
	if dbPath := os.Getenv("PORTAL_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("PORTAL_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if format := os.Getenv("PORTAL_LOG_FORMAT"); format != "" {
		cfg.Log.Format = format
	}
	if file := os.Getenv("PORTAL_LOG_FILE"); file != "" {
		cfg.Log.File = file
	}
	if actor := os.Getenv("PORTAL_ACTOR"); actor != "" {
		cfg.Portal.Actor = actor
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", validation.Describe(err))
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
