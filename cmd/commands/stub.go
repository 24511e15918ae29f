package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/screener/internal/config"
	"github.com/dohr-michael/screener/internal/heartbeat"
	"github.com/dohr-michael/screener/internal/stub"
)

// NewStubCommand returns the stub subcommand.
func NewStubCommand() *cli.Command {
	return &cli.Command{
		Name:  "stub",
		Usage: "Serve a fixed-answer classifier for development",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Host to listen on",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to listen on",
			},
			&cli.IntFlag{
				Name:  "class",
				Usage: "prediction_class to answer (0 or 1)",
			},
			&cli.FloatFlag{
				Name:  "probability",
				Usage: "Positive-class probability to include in answers",
			},
			&cli.IntFlag{
				Name:  "fail-status",
				Usage: "Answer every prediction with this HTTP status",
			},
			&cli.StringFlag{
				Name:  "fail-details",
				Usage: "details field sent with --fail-status",
			},
		},
		Action: runStub,
	}
}

func runStub(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupLogging(cmd, cfg, os.Stderr)

	// CLI flags override config
	if cmd.IsSet("host") {
		cfg.Stub.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		cfg.Stub.Port = cmd.Int("port")
	}
	if cmd.IsSet("class") {
		cfg.Stub.Class = cmd.Int("class")
	}
	if cmd.IsSet("probability") {
		p := cmd.Float("probability")
		cfg.Stub.Probability = &p
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	server := stub.NewServer(stub.Options{
		Host:        cfg.Stub.Host,
		Port:        cfg.Stub.Port,
		Class:       cfg.Stub.Class,
		Probability: cfg.Stub.Probability,
		FailStatus:  cmd.Int("fail-status"),
		FailDetails: cmd.String("fail-details"),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	addr, err := waitForAddr(ctx, server, errCh)
	if err != nil {
		return err
	}
	hb := heartbeat.NewWriter(config.StubHeartbeatPath(), addr, cfg.Stub.Class, 0)
	if err := hb.Start(); err != nil {
		slog.Warn("heartbeat disabled", "error", err)
	}
	defer hb.Stop()

	// Wait for signal or error
	select {
	case <-ctx.Done():
		slog.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// waitForAddr returns the bound address, or the error Start failed with.
func waitForAddr(ctx context.Context, server *stub.Server, errCh <-chan error) (string, error) {
	addrCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	addrCh := make(chan string, 1)
	go func() {
		if addr, err := server.Addr(addrCtx); err == nil {
			addrCh <- addr
		}
	}()

	select {
	case addr := <-addrCh:
		return addr, nil
	case err := <-errCh:
		return "", fmt.Errorf("start stub: %w", err)
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
