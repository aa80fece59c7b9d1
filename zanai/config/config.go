package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Client
	APIBaseURL  string
	SendTimeout time.Duration

	// Dev backend (zanaid)
	ListenAddr string
	Pin        string
	JWTSecret  string
}

// fileConfig is the optional ~/.config/zanai/config.yaml shape. Environment
// variables override anything set here.
type fileConfig struct {
	APIBaseURL         string `yaml:"api_base_url"`
	SendTimeoutSeconds int    `yaml:"send_timeout_seconds"`
	ListenAddr         string `yaml:"listen_addr"`
	Pin                string `yaml:"pin"`
	JWTSecret          string `yaml:"jwt_secret"`
}

func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		APIBaseURL:  "http://localhost:8000",
		SendTimeout: 30 * time.Second,
		ListenAddr:  ":8000",
		Pin:         "123456",
		JWTSecret:   "zanai-dev-secret",
	}

	if fc, ok := loadFile(); ok {
		if fc.APIBaseURL != "" {
			cfg.APIBaseURL = fc.APIBaseURL
		}
		if fc.SendTimeoutSeconds > 0 {
			cfg.SendTimeout = time.Duration(fc.SendTimeoutSeconds) * time.Second
		}
		if fc.ListenAddr != "" {
			cfg.ListenAddr = fc.ListenAddr
		}
		if fc.Pin != "" {
			cfg.Pin = fc.Pin
		}
		if fc.JWTSecret != "" {
			cfg.JWTSecret = fc.JWTSecret
		}
	}

	cfg.APIBaseURL = getEnv("ZANAI_API_BASE_URL", cfg.APIBaseURL)
	cfg.ListenAddr = getEnv("ZANAI_LISTEN_ADDR", cfg.ListenAddr)
	cfg.Pin = getEnv("ZANAI_PIN", cfg.Pin)
	cfg.JWTSecret = getEnv("ZANAI_JWT_SECRET", cfg.JWTSecret)
	if secs, err := strconv.Atoi(os.Getenv("ZANAI_SEND_TIMEOUT_SECONDS")); err == nil && secs > 0 {
		cfg.SendTimeout = time.Duration(secs) * time.Second
	}
	return cfg
}

func loadFile() (fileConfig, bool) {
	var fc fileConfig
	dir, err := os.UserConfigDir()
	if err != nil {
		return fc, false
	}
	data, err := os.ReadFile(filepath.Join(dir, "zanai", "config.yaml"))
	if err != nil {
		return fc, false
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, false
	}
	return fc, true
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}
