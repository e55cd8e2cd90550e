// Package config loads the service configuration from a YAML or JSON file
// with environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Server   ServerConfig   `json:"server"`
	Model    ModelConfig    `json:"model"`
	Scenario ScenarioConfig `json:"scenario"`
	Metrics  MetricsConfig  `json:"metrics"`
	Client   ClientConfig   `json:"client"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	// Address is the listen address, e.g. ":8000".
	Address string `json:"address"`
	// CORSAllowOrigins lists allowed origins; ["*"] allows any.
	CORSAllowOrigins []string `json:"cors_allow_origins"`
}

// ModelConfig locates the fitted pricing model artifact.
type ModelConfig struct {
	Path string `json:"path"`
}

// ScenarioConfig locates the buffer scenario table. The file is searched
// under <dir>/processed/, <dir>/ and the working directory, in that order.
type ScenarioConfig struct {
	Dir  string `json:"dir"`
	File string `json:"file"`
}

// MetricsConfig configures the optional metrics sinks.
type MetricsConfig struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusAddress string `json:"prometheus_address"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// ClientConfig configures the outbound quote client.
type ClientConfig struct {
	// URL is the full /predict endpoint of a running service.
	URL string `json:"url"`
	// TimeoutSeconds bounds the outbound call; a timed-out call is reported
	// once, never retried.
	TimeoutSeconds int `json:"timeout_seconds"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = ":8000"
	}
	if len(c.Server.CORSAllowOrigins) == 0 {
		c.Server.CORSAllowOrigins = []string{"*"}
	}
	if c.Model.Path == "" {
		c.Model.Path = "model.json"
	}
	if c.Scenario.Dir == "" {
		c.Scenario.Dir = "data"
	}
	if c.Scenario.File == "" {
		c.Scenario.File = "buffer_scenarios.csv"
	}
	if c.Metrics.PrometheusAddress == "" {
		c.Metrics.PrometheusAddress = ":9100"
	}
	if c.Client.URL == "" {
		c.Client.URL = "http://localhost:8000/predict"
	}
	if c.Client.TimeoutSeconds == 0 {
		c.Client.TimeoutSeconds = 10
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.Client.TimeoutSeconds < 0 {
		return fmt.Errorf("client timeout must not be negative")
	}
	if c.Metrics.InfluxEnabled && c.Metrics.InfluxURL == "" {
		return fmt.Errorf("influx_url is required when influx is enabled")
	}
	return nil
}

// Load reads the configuration file at path. GA_-prefixed environment
// variables override file values, with "__" separating nested keys
// (e.g. GA_SERVER__ADDRESS).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("GA_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "ga_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
