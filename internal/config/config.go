package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Supabase   SupabaseConfig   `mapstructure:"supabase"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Analysis   AnalysisConfig   `mapstructure:"analysis"`
	Log        LogConfig        `mapstructure:"log"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Env  string `mapstructure:"env"`
}

// SupabaseConfig holds Supabase-specific configuration
type SupabaseConfig struct {
	URL        string `mapstructure:"url"`
	ServiceKey string `mapstructure:"service_key"`
}

// ClassifierConfig holds the external sentiment classifier configuration
type ClassifierConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// AnalysisConfig tunes the pattern-analysis layer. Changing the cutoffs
// changes forecast classification only, never the shape of any output.
type AnalysisConfig struct {
	HighRiskCutoff     int `mapstructure:"high_risk_cutoff"`
	MediumRiskCutoff   int `mapstructure:"medium_risk_cutoff"`
	ForecastWindowDays int `mapstructure:"forecast_window_days"`
	PromptWindowDays   int `mapstructure:"prompt_window_days"`
	InsightsWindowDays int `mapstructure:"insights_window_days"`
	TrendWindowDays    int `mapstructure:"trend_window_days"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("classifier.timeout", 10*time.Second)
	v.SetDefault("analysis.high_risk_cutoff", 60)
	v.SetDefault("analysis.medium_risk_cutoff", 40)
	v.SetDefault("analysis.forecast_window_days", 60)
	v.SetDefault("analysis.prompt_window_days", 14)
	v.SetDefault("analysis.insights_window_days", 7)
	v.SetDefault("analysis.trend_window_days", 14)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read from environment variables
	v.SetEnvPrefix("MOODCAST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Also bind to non-prefixed environment variables for backward compatibility
	v.BindEnv("server.port", "PORT")
	v.BindEnv("supabase.url", "SUPABASE_URL")
	v.BindEnv("supabase.service_key", "SUPABASE_SERVICE_KEY")
	v.BindEnv("classifier.url", "CLASSIFIER_URL")

	// Read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// It's okay if config file doesn't exist
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks that all required configuration values are present and
// the analysis cutoffs are coherent
func (c *Config) Validate() error {
	if c.Supabase.URL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.Supabase.ServiceKey == "" {
		return fmt.Errorf("SUPABASE_SERVICE_KEY is required")
	}
	if c.Classifier.URL == "" {
		return fmt.Errorf("CLASSIFIER_URL is required")
	}
	if c.Analysis.MediumRiskCutoff > c.Analysis.HighRiskCutoff {
		return fmt.Errorf("analysis.medium_risk_cutoff (%d) must not exceed analysis.high_risk_cutoff (%d)",
			c.Analysis.MediumRiskCutoff, c.Analysis.HighRiskCutoff)
	}
	return nil
}
