package config

import "time"

// Config is the root configuration for screener.
type Config struct {
	Classifier ClassifierConfig `json:"classifier" yaml:"classifier" toml:"classifier"`
	Intro      IntroConfig      `json:"intro" yaml:"intro" toml:"intro"`
	Stub       StubConfig       `json:"stub" yaml:"stub" toml:"stub"`
	Log        LogConfig        `json:"log" yaml:"log" toml:"log"`
}

// ClassifierConfig points at the remote prediction endpoint.
type ClassifierConfig struct {
	Endpoint string   `json:"endpoint" yaml:"endpoint" toml:"endpoint" validate:"required,http_url"`
	Timeout  Duration `json:"timeout,omitempty" yaml:"timeout,omitempty" toml:"timeout,omitempty" validate:"gte=0"` // 0 = no timeout
}

// IntroConfig paces the greeting sequence.
type IntroConfig struct {
	Interval Duration `json:"interval,omitempty" yaml:"interval,omitempty" toml:"interval,omitempty" validate:"gte=0"`
	Settle   Duration `json:"settle,omitempty" yaml:"settle,omitempty" toml:"settle,omitempty" validate:"gte=0"`
	Skip     bool     `json:"skip,omitempty" yaml:"skip,omitempty" toml:"skip,omitempty"`
}

// StubConfig configures the built-in stub classifier.
type StubConfig struct {
	Host        string   `json:"host" yaml:"host" toml:"host" validate:"required"`
	Port        int      `json:"port" yaml:"port" toml:"port" validate:"gte=0,lte=65535"`
	Class       int      `json:"class" yaml:"class" toml:"class" validate:"oneof=0 1"`
	Probability *float64 `json:"probability,omitempty" yaml:"probability,omitempty" toml:"probability,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// LogConfig controls slog output.
type LogConfig struct {
	Level string `json:"level" yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
	File  string `json:"file,omitempty" yaml:"file,omitempty" toml:"file,omitempty"` // TUI log file (default $SCREENER_PATH/screener.log)
}

// Duration wraps time.Duration so config files can say "500ms".
type Duration time.Duration

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// UnmarshalText accepts time.ParseDuration syntax. It serves the JSON, YAML
// and TOML decoders alike.
func (d *Duration) UnmarshalText(b []byte) error {
	dur, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}
