package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port    string `yaml:"port"`
		BaseURL string `yaml:"baseUrl"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Catalog struct {
		TTL string `yaml:"ttl"`
	} `yaml:"catalog"`
	Quiz struct {
		LeadGate *bool `yaml:"leadGate"`
	} `yaml:"quiz"`
	Leads struct {
		Endpoint string `yaml:"endpoint"`
	} `yaml:"leads"`
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// BaseURL returns the public site address used for share and embed links.
func (c Config) BaseURL() string {
	if c.Server.BaseURL == "" {
		return "https://dentadvisor.example.com"
	}
	return c.Server.BaseURL
}

// LeadGateEnabled defaults to on; the gate is always skippable regardless.
func (c Config) LeadGateEnabled() bool {
	if c.Quiz.LeadGate == nil {
		return true
	}
	return *c.Quiz.LeadGate
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
