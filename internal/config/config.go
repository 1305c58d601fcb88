// Package config loads application configuration from file and environment
// and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Radar  RadarConfig  `yaml:"radar" mapstructure:"radar"`
	Rules  RulesConfig  `yaml:"rules" mapstructure:"rules"`
	Store  StoreConfig  `yaml:"store" mapstructure:"store"`
	Export ExportConfig `yaml:"export" mapstructure:"export"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// RadarConfig configures what to scan and how.
type RadarConfig struct {
	Terms          []string `yaml:"terms" mapstructure:"terms"`
	Subreddits     []string `yaml:"subreddits" mapstructure:"subreddits"`
	Limit          int      `yaml:"limit" mapstructure:"limit"`
	MinIntent      int      `yaml:"min_intent" mapstructure:"min_intent"`
	IntervalHours  float64  `yaml:"interval_hours" mapstructure:"interval_hours"`
	UserAgent      string   `yaml:"user_agent" mapstructure:"user_agent"`
	RequestsPerSec float64  `yaml:"requests_per_sec" mapstructure:"requests_per_sec"`
}

// RulesConfig points at an optional YAML rule-set override.
type RulesConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// ExportConfig holds the output file paths.
type ExportConfig struct {
	RawPath   string `yaml:"raw_path" mapstructure:"raw_path"`
	LeadsPath string `yaml:"leads_path" mapstructure:"leads_path"`
	LeadsCSV  string `yaml:"leads_csv" mapstructure:"leads_csv"`
	HotCSV    string `yaml:"hot_csv" mapstructure:"hot_csv"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from config.yaml (optional) and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("RADAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("radar.subreddits", []string{
		"startups", "Entrepreneur", "SaaS", "SideProject", "IndieHackers", "ProductManagement",
	})
	v.SetDefault("radar.limit", 25)
	v.SetDefault("radar.min_intent", 3)
	v.SetDefault("radar.interval_hours", 6.0)
	v.SetDefault("radar.user_agent", "signal-radar/1.0 (pre-launch signal finder)")
	v.SetDefault("radar.requests_per_sec", 0.5)
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "data/radar.db")
	v.SetDefault("export.raw_path", "data/raw_posts.jsonl")
	v.SetDefault("export.leads_path", "data/lead_signals.jsonl")
	v.SetDefault("export.leads_csv", "data/lead_signals.csv")
	v.SetDefault("export.hot_csv", "data/hot_companies.csv")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
