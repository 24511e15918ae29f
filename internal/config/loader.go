package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// DefaultEndpoint is the classifier URL used when none is configured.
const DefaultEndpoint = "http://127.0.0.1:5000/predict"

// EndpointEnv overrides classifier.endpoint when set.
const EndpointEnv = "SCREENER_ENDPOINT"

var envTemplateRe = regexp.MustCompile(`\$\{\{\s*\.Env\.(\w+)\s*\}\}`)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads a config file, expands ${{ .Env.VAR }} templates, decodes it
// according to its extension (.jsonc/.json, .yaml/.yml, .toml), applies
// defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand before decoding, templates live inside string values.
	expanded := []byte(expandEnvTemplates(string(data)))

	var cfg Config
	if err := decode(filepath.Ext(path), expanded, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault is Load, except a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func decode(ext string, data []byte, cfg *Config) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		std, err := hujson.Standardize(data)
		if err != nil {
			return err
		}
		return json.Unmarshal(std, cfg)
	}
}

// expandEnvTemplates replaces ${{ .Env.VAR }} with the env var value.
func expandEnvTemplates(s string) string {
	return envTemplateRe.ReplaceAllStringFunc(s, func(match string) string {
		parts := envTemplateRe.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}
		return os.Getenv(parts[1])
	})
}

// applyDefaults fills in zero-value fields.
func applyDefaults(cfg *Config) {
	if v := os.Getenv(EndpointEnv); v != "" {
		cfg.Classifier.Endpoint = v
	}
	if cfg.Classifier.Endpoint == "" {
		cfg.Classifier.Endpoint = DefaultEndpoint
	}
	if cfg.Intro.Interval == 0 {
		cfg.Intro.Interval = Duration(500 * time.Millisecond)
	}
	if cfg.Intro.Settle == 0 {
		cfg.Intro.Settle = Duration(time.Second)
	}
	if cfg.Stub.Host == "" {
		cfg.Stub.Host = "127.0.0.1"
	}
	if cfg.Stub.Port == 0 {
		cfg.Stub.Port = 5000
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.File == "" {
		cfg.Log.File = LogPath()
	}
}

// Validate checks field constraints and reports every violation.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
