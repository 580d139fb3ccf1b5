package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Server     ServerConfig   `mapstructure:"server"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	SeedOnStart     bool          `mapstructure:"seed_on_start"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Environment string `mapstructure:"environment"`
}

const (
	EnvironmentProduction  = "production"
	EnvironmentDevelopment = "development"
)

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Server: ServerConfig{
			Addr:            ":5001",
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:       "info",
			Environment: EnvironmentProduction,
		},
	}
}

// SetDefaults registers every default on v so that a freshly written config
// file lists all keys.
func SetDefaults(v *viper.Viper) {
	def := NewDefault()

	v.SetDefault("database.path", def.Database.Path)
	v.SetDefault("server.addr", def.Server.Addr)
	v.SetDefault("server.shutdown_timeout", def.Server.ShutdownTimeout.String())
	v.SetDefault("server.seed_on_start", def.Server.SeedOnStart)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.environment", def.Log.Environment)
}

// Load decodes v into a Config starting from the defaults.
func Load(v *viper.Viper) (*Config, error) {
	cfg := NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()
	return cfg, nil
}
