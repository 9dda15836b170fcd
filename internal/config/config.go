package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port             string   `mapstructure:"PORT"`
	Env              string   `mapstructure:"ENV"`
	DatabaseURL      string   `mapstructure:"DATABASE_URL"`
	DBMaxConns       int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns       int32    `mapstructure:"DB_MIN_CONNS"`
	PredictorURL     string   `mapstructure:"PREDICTOR_URL"`
	PredictorAPIKey  string   `mapstructure:"PREDICTOR_API_KEY"`
	PredictorTimeout int      `mapstructure:"PREDICTOR_TIMEOUT_SECONDS"`
	CORSOrigins      []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS     float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst   int      `mapstructure:"RATE_LIMIT_BURST"`

	// Risk reinterpretation tuning for patients with a recorded diabetes
	// diagnosis. Product-tuned values; kept configurable pending clinical
	// review.
	ComplicationMultiplier    float64 `mapstructure:"COMPLICATION_MULTIPLIER"`
	ComplicationLowBelow      float64 `mapstructure:"COMPLICATION_LOW_BELOW"`
	ComplicationModerateBelow float64 `mapstructure:"COMPLICATION_MODERATE_BELOW"`
	ComplicationHighBelow     float64 `mapstructure:"COMPLICATION_HIGH_BELOW"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("PREDICTOR_TIMEOUT_SECONDS", 30)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("COMPLICATION_MULTIPLIER", 1.15)
	v.SetDefault("COMPLICATION_LOW_BELOW", 30)
	v.SetDefault("COMPLICATION_MODERATE_BELOW", 70)
	v.SetDefault("COMPLICATION_HIGH_BELOW", 90)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("PREDICTOR_URL")
	v.BindEnv("PREDICTOR_API_KEY")
	v.BindEnv("PREDICTOR_TIMEOUT_SECONDS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("COMPLICATION_MULTIPLIER")
	v.BindEnv("COMPLICATION_LOW_BELOW")
	v.BindEnv("COMPLICATION_MODERATE_BELOW")
	v.BindEnv("COMPLICATION_HIGH_BELOW")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.PredictorURL == "" {
		return nil, fmt.Errorf("PREDICTOR_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// PredictorTimeoutDuration returns the outbound prediction call timeout.
func (c *Config) PredictorTimeoutDuration() time.Duration {
	if c.PredictorTimeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.PredictorTimeout) * time.Second
}

// Validate checks that configuration values are coherent before the server
// starts. The complication thresholds must be strictly increasing so every
// score maps to exactly one category.
func (c *Config) Validate() error {
	if c.ComplicationMultiplier <= 0 {
		return fmt.Errorf("COMPLICATION_MULTIPLIER must be positive, got %v", c.ComplicationMultiplier)
	}
	if !(c.ComplicationLowBelow < c.ComplicationModerateBelow && c.ComplicationModerateBelow < c.ComplicationHighBelow) {
		return fmt.Errorf("complication thresholds must be strictly increasing: %v, %v, %v",
			c.ComplicationLowBelow, c.ComplicationModerateBelow, c.ComplicationHighBelow)
	}
	if c.ComplicationHighBelow > 100 {
		return fmt.Errorf("COMPLICATION_HIGH_BELOW must not exceed 100, got %v", c.ComplicationHighBelow)
	}
	if c.IsProduction() && c.PredictorAPIKey == "" {
		return fmt.Errorf("PREDICTOR_API_KEY is required in production")
	}
	return nil
}
