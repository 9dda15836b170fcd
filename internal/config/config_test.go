package config

import (
	"testing"
	"time"
)

func baseConfig() *Config {
	return &Config{
		Port:                      "8000",
		Env:                       "development",
		DatabaseURL:               "postgres://localhost/risk",
		PredictorURL:              "http://localhost:5000",
		ComplicationMultiplier:    1.15,
		ComplicationLowBelow:      30,
		ComplicationModerateBelow: 70,
		ComplicationHighBelow:     90,
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PREDICTOR_URL", "http://localhost:5000")
	if _, err := Load(); err == nil {
		t.Error("expected error when DATABASE_URL is unset")
	}
}

func TestLoad_MissingPredictorURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/risk")
	t.Setenv("PREDICTOR_URL", "")
	if _, err := Load(); err == nil {
		t.Error("expected error when PREDICTOR_URL is unset")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/risk")
	t.Setenv("PREDICTOR_URL", "http://localhost:5000")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.ComplicationMultiplier != 1.15 {
		t.Errorf("expected default multiplier 1.15, got %v", cfg.ComplicationMultiplier)
	}
	if cfg.ComplicationLowBelow != 30 || cfg.ComplicationModerateBelow != 70 || cfg.ComplicationHighBelow != 90 {
		t.Errorf("unexpected default complication thresholds: %v/%v/%v",
			cfg.ComplicationLowBelow, cfg.ComplicationModerateBelow, cfg.ComplicationHighBelow)
	}
}

func TestValidate_OK(t *testing.T) {
	if err := baseConfig().Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_NonIncreasingThresholds(t *testing.T) {
	cfg := baseConfig()
	cfg.ComplicationModerateBelow = 30
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for non-increasing thresholds")
	}
}

func TestValidate_ZeroMultiplier(t *testing.T) {
	cfg := baseConfig()
	cfg.ComplicationMultiplier = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero multiplier")
	}
}

func TestValidate_ProductionRequiresAPIKey(t *testing.T) {
	cfg := baseConfig()
	cfg.Env = "production"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing predictor API key in production")
	}
	cfg.PredictorAPIKey = "secret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPredictorTimeoutDuration(t *testing.T) {
	cfg := baseConfig()
	if d := cfg.PredictorTimeoutDuration(); d != 30*time.Second {
		t.Errorf("expected 30s default, got %v", d)
	}
	cfg.PredictorTimeout = 5
	if d := cfg.PredictorTimeoutDuration(); d != 5*time.Second {
		t.Errorf("expected 5s, got %v", d)
	}
}
