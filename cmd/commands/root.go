package commands

import (
	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/screener/internal/config"
)

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "screener",
		Usage: "Diabetes risk screening against a remote classifier",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (.jsonc, .yaml or .toml)",
				Value:   config.ConfigPath(),
			},
			&cli.StringFlag{
				Name:  "endpoint",
				Usage: "Classifier URL, overrides the config file",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			NewTUICommand(),
			NewPredictCommand(),
			NewStubCommand(),
			NewStatusCommand(),
		},
	}
}
