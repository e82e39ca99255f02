package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Engine   EngineConfig
	Critical CriticalConfig
	Logging  LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string
	Environment     string
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds the optional Postgres account store configuration.
// An empty URL keeps accounts in memory.
type DatabaseConfig struct {
	URL string
}

// EngineConfig holds the detection engine cadence
type EngineConfig struct {
	InitialDelay     time.Duration
	Interval         time.Duration
	InitialBatchSize int
}

// CriticalConfig holds the burst-of-alerts escalation parameters
type CriticalConfig struct {
	Window         time.Duration
	Threshold      int
	DisplayTimeout time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string // json or console
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.AutomaticEnv()
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.shutdowntimeout", 30*time.Second)

	// Engine defaults
	v.SetDefault("engine.initialdelay", 2*time.Second)
	v.SetDefault("engine.interval", 8*time.Second)
	v.SetDefault("engine.initialbatchsize", 4)

	// Critical escalation defaults
	v.SetDefault("critical.window", 30*time.Second)
	v.SetDefault("critical.threshold", 3)
	v.SetDefault("critical.displaytimeout", 15*time.Second)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// bindEnvVars binds environment variables to config keys
func bindEnvVars(v *viper.Viper) {
	// Server
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.environment", "ENV", "ENVIRONMENT")

	// Database
	v.BindEnv("database.url", "DATABASE_URL")

	// Engine
	v.BindEnv("engine.initialdelay", "ENGINE_INITIAL_DELAY")
	v.BindEnv("engine.interval", "ENGINE_INTERVAL")
	v.BindEnv("engine.initialbatchsize", "ENGINE_INITIAL_BATCH_SIZE")

	// Critical escalation
	v.BindEnv("critical.window", "CRITICAL_WINDOW")
	v.BindEnv("critical.threshold", "CRITICAL_THRESHOLD")
	v.BindEnv("critical.displaytimeout", "CRITICAL_DISPLAY_TIMEOUT")

	// Logging
	v.BindEnv("logging.level", "LOG_LEVEL")
	v.BindEnv("logging.format", "LOG_FORMAT")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}

	if c.Engine.Interval <= 0 {
		return fmt.Errorf("engine.interval must be positive")
	}

	if c.Engine.InitialBatchSize <= 0 {
		return fmt.Errorf("engine.initialbatchsize must be positive")
	}

	if c.Critical.Threshold <= 0 {
		return fmt.Errorf("critical.threshold must be positive")
	}

	if c.Critical.Window <= 0 || c.Critical.DisplayTimeout <= 0 {
		return fmt.Errorf("critical window and display timeout must be positive")
	}

	return nil
}
