package commands

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/dohr-michael/screener/clients/tui"
	"github.com/dohr-michael/screener/internal/intro"
)

// NewTUICommand returns the tui subcommand.
func NewTUICommand() *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Launch the interactive screening form",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "skip-intro",
				Usage: "Go straight to the form",
			},
		},
		Action: runTUI,
	}
}

func runTUI(ctx context.Context, cmd *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("tui requires an interactive terminal; use `screener predict` instead")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The alt screen owns stdout and stderr, so logs go to a file.
	logFile, err := openLogFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer logFile.Close()
	setupLogging(cmd, cfg, logFile)

	return tui.Run(ctx, tui.Options{
		Predictor: newClient(cfg),
		Endpoint:  cfg.Classifier.Endpoint,
		IntroOptions: []intro.Option{
			intro.WithInterval(cfg.Intro.Interval.Duration()),
			intro.WithSettle(cfg.Intro.Settle.Duration()),
		},
		SkipIntro: cfg.Intro.Skip || cmd.Bool("skip-intro"),
	})
}
