package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadJSONC(t *testing.T) {
	path := writeFile(t, "config.jsonc", `{
	// classifier running on the lab box
	"classifier": {
		"endpoint": "${{ .Env.SCREENER_TEST_HOST }}/predict",
		"timeout": "15s",
	},
	"intro": {"interval": "100ms", "skip": true},
	"stub": {"port": 9999, "class": 1, "probability": 0.8},
	"log": {"level": "debug"},
}`)
	t.Setenv("SCREENER_TEST_HOST", "http://10.1.2.3:5000")
	t.Setenv(EndpointEnv, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Classifier.Endpoint != "http://10.1.2.3:5000/predict" {
		t.Errorf("expected expanded endpoint, got %s", cfg.Classifier.Endpoint)
	}
	if cfg.Classifier.Timeout.Duration() != 15*time.Second {
		t.Errorf("expected timeout 15s, got %v", cfg.Classifier.Timeout.Duration())
	}
	if cfg.Intro.Interval.Duration() != 100*time.Millisecond || !cfg.Intro.Skip {
		t.Errorf("unexpected intro config: %+v", cfg.Intro)
	}
	if cfg.Intro.Settle.Duration() != time.Second {
		t.Errorf("expected default settle 1s, got %v", cfg.Intro.Settle.Duration())
	}
	if cfg.Stub.Port != 9999 || cfg.Stub.Class != 1 || cfg.Stub.Probability == nil || *cfg.Stub.Probability != 0.8 {
		t.Errorf("unexpected stub config: %+v", cfg.Stub)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Log.Level)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
classifier:
  endpoint: https://screening.example.com/predict
  timeout: 2s
stub:
  host: 0.0.0.0
`)
	t.Setenv(EndpointEnv, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Classifier.Endpoint != "https://screening.example.com/predict" {
		t.Errorf("unexpected endpoint %s", cfg.Classifier.Endpoint)
	}
	if cfg.Classifier.Timeout.Duration() != 2*time.Second {
		t.Errorf("expected 2s, got %v", cfg.Classifier.Timeout.Duration())
	}
	if cfg.Stub.Host != "0.0.0.0" || cfg.Stub.Port != 5000 {
		t.Errorf("unexpected stub config: %+v", cfg.Stub)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[classifier]
endpoint = "http://127.0.0.1:8000/predict"

[intro]
settle = "250ms"
`)
	t.Setenv(EndpointEnv, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Classifier.Endpoint != "http://127.0.0.1:8000/predict" {
		t.Errorf("unexpected endpoint %s", cfg.Classifier.Endpoint)
	}
	if cfg.Intro.Settle.Duration() != 250*time.Millisecond {
		t.Errorf("expected 250ms settle, got %v", cfg.Intro.Settle.Duration())
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeFile(t, "config.jsonc", `{}`)
	t.Setenv(EndpointEnv, "")
	t.Setenv("SCREENER_PATH", "/tmp/screener-defaults")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Classifier.Endpoint != DefaultEndpoint {
		t.Errorf("expected default endpoint, got %s", cfg.Classifier.Endpoint)
	}
	if cfg.Classifier.Timeout != 0 {
		t.Errorf("expected no timeout by default, got %v", cfg.Classifier.Timeout.Duration())
	}
	if cfg.Intro.Interval.Duration() != 500*time.Millisecond {
		t.Errorf("expected default interval 500ms, got %v", cfg.Intro.Interval.Duration())
	}
	if cfg.Stub.Host != "127.0.0.1" || cfg.Stub.Port != 5000 {
		t.Errorf("unexpected stub defaults: %+v", cfg.Stub)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level info, got %q", cfg.Log.Level)
	}
	if cfg.Log.File != "/tmp/screener-defaults/screener.log" {
		t.Errorf("unexpected log file %q", cfg.Log.File)
	}
}

func TestLoadEndpointEnvOverride(t *testing.T) {
	path := writeFile(t, "config.jsonc", `{"classifier": {"endpoint": "http://a/predict"}}`)
	t.Setenv(EndpointEnv, "http://b:5000/predict")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Classifier.Endpoint != "http://b:5000/predict" {
		t.Errorf("env should override file, got %s", cfg.Classifier.Endpoint)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad endpoint", `{"classifier": {"endpoint": "not a url"}}`, "Endpoint"},
		{"bad class", `{"stub": {"class": 3}}`, "Class"},
		{"bad probability", `{"stub": {"probability": 1.2}}`, "Probability"},
		{"bad level", `{"log": {"level": "loud"}}`, "Level"},
		{"bad duration", `{"classifier": {"timeout": "soon"}}`, "unmarshal config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "config.jsonc", tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected %q in %q", tt.want, err.Error())
			}
		})
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	cfg, err := LoadOrDefault("/nonexistent/config.jsonc")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Classifier.Endpoint != DefaultEndpoint {
		t.Errorf("expected defaults, got %+v", cfg.Classifier)
	}
}

func TestExpandEnvTemplates(t *testing.T) {
	t.Setenv("TEST_KEY", "my-value")
	result := expandEnvTemplates(`{"key": "${{ .Env.TEST_KEY }}"}`)
	expected := `{"key": "my-value"}`
	if result != expected {
		t.Errorf("expected %s, got %s", expected, result)
	}
}
