package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/screener/internal/config"
	"github.com/dohr-michael/screener/internal/predict"
)

// loadConfig reads the config file named by --config, falling back to
// defaults when it does not exist, and applies --endpoint.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	path := cmd.String("config")
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if cmd.IsSet("endpoint") {
		cfg.Classifier.Endpoint = cmd.String("endpoint")
		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// setupLogging installs the default slog handler writing to w. --debug wins
// over the configured level.
func setupLogging(cmd *cli.Command, cfg *config.Config, w io.Writer) {
	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		level = slog.LevelInfo
	}
	if cmd.Bool("debug") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// openLogFile opens the TUI log file for appending.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func newClient(cfg *config.Config) *predict.Client {
	return predict.New(cfg.Classifier.Endpoint,
		predict.WithTimeout(cfg.Classifier.Timeout.Duration()),
		predict.WithLogger(slog.Default()),
	)
}
