package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	data := `server:
  address: ":9000"
  cors_allow_origins: ["https://dashboard.example.com"]
model:
  path: "artifacts/model.json"
scenario:
  dir: "data"
  file: "buffer_scenarios.csv"
metrics:
  prometheus_enabled: true
  prometheus_address: ":9101"
client:
  url: "http://api.example.com/predict"
  timeout_seconds: 5
`
	cfg, err := Load(writeConfig(t, "config.yaml", data))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"server.address", cfg.Server.Address, ":9000"},
		{"server.cors", cfg.Server.CORSAllowOrigins[0], "https://dashboard.example.com"},
		{"model.path", cfg.Model.Path, "artifacts/model.json"},
		{"scenario.dir", cfg.Scenario.Dir, "data"},
		{"scenario.file", cfg.Scenario.File, "buffer_scenarios.csv"},
		{"metrics.prometheus_enabled", cfg.Metrics.PrometheusEnabled, true},
		{"metrics.prometheus_address", cfg.Metrics.PrometheusAddress, ":9101"},
		{"client.url", cfg.Client.URL, "http://api.example.com/predict"},
		{"client.timeout_seconds", cfg.Client.TimeoutSeconds, 5},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "config.yaml", "server: {}\n"))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Server.Address != ":8000" {
		t.Errorf("default address: %v", cfg.Server.Address)
	}
	if cfg.Model.Path != "model.json" {
		t.Errorf("default model path: %v", cfg.Model.Path)
	}
	if cfg.Scenario.Dir != "data" || cfg.Scenario.File != "buffer_scenarios.csv" {
		t.Errorf("default scenario location: %+v", cfg.Scenario)
	}
	if cfg.Client.TimeoutSeconds != 10 {
		t.Errorf("default client timeout: %v", cfg.Client.TimeoutSeconds)
	}
	if len(cfg.Server.CORSAllowOrigins) != 1 || cfg.Server.CORSAllowOrigins[0] != "*" {
		t.Errorf("default cors origins: %v", cfg.Server.CORSAllowOrigins)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	if err := os.Setenv("GA_SERVER__ADDRESS", ":7777"); err != nil {
		t.Fatalf("setenv: %v", err)
	}
	defer func() {
		if err := os.Unsetenv("GA_SERVER__ADDRESS"); err != nil {
			t.Fatalf("unsetenv: %v", err)
		}
	}()

	cfg, err := Load(writeConfig(t, "config.yaml", "server:\n  address: \":9000\"\n"))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Server.Address != ":7777" {
		t.Errorf("env override not applied: %v", cfg.Server.Address)
	}
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	if _, err := Load(writeConfig(t, "config.toml", "x = 1\n")); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLoad_InvalidInflux(t *testing.T) {
	data := "metrics:\n  influx_enabled: true\n"
	if _, err := Load(writeConfig(t, "config.yaml", data)); err == nil {
		t.Fatal("expected error when influx enabled without url")
	}
}
