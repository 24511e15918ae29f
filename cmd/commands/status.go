package commands

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/screener/internal/config"
	"github.com/dohr-michael/screener/internal/heartbeat"
)

// NewStatusCommand returns the status subcommand.
func NewStatusCommand() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Check whether the classifier endpoint accepts connections",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Connection timeout",
				Value: 2 * time.Second,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			w := cmd.Root().Writer

			addr, err := dialAddr(cfg.Classifier.Endpoint)
			if err != nil {
				return err
			}
			if err := probe(ctx, addr, cmd.Duration("timeout")); err != nil {
				fmt.Fprintf(w, "Classifier: UNREACHABLE (%s: %v)\n", addr, err)
			} else {
				fmt.Fprintf(w, "Classifier: REACHABLE (%s)\n", addr)
			}

			status, hb, err := heartbeat.Check(config.StubHeartbeatPath(), 2*heartbeat.DefaultInterval)
			if err != nil {
				return fmt.Errorf("check stub heartbeat: %w", err)
			}
			switch status {
			case heartbeat.StatusAlive:
				fmt.Fprintf(w, "Stub: ALIVE (PID %d, %s, class %d, uptime %s)\n", hb.PID, hb.Addr, hb.Class, hb.Uptime)
			case heartbeat.StatusStale:
				fmt.Fprintf(w, "Stub: STALE (PID %d, last heartbeat %s ago)\n",
					hb.PID, time.Since(hb.Timestamp).Truncate(time.Second))
			case heartbeat.StatusDead:
				fmt.Fprintln(w, "Stub: NOT RUNNING")
			}
			return nil
		},
	}
}

// dialAddr turns an endpoint URL into host:port, defaulting the port from
// the scheme.
func dialAddr(endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("endpoint %q has no host", endpoint)
	}
	port := u.Port()
	if port == "" {
		port = "80"
		if u.Scheme == "https" {
			port = "443"
		}
	}
	return net.JoinHostPort(u.Hostname(), port), nil
}

func probe(ctx context.Context, addr string, timeout time.Duration) error {
	d := net.Dialer{Timeout: timeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	return conn.Close()
}
