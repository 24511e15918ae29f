package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/screener/internal/form"
	"github.com/dohr-michael/screener/internal/screening"
)

// NewPredictCommand returns the predict subcommand.
func NewPredictCommand() *cli.Command {
	return &cli.Command{
		Name:      "predict",
		Usage:     "Run one screening without the TUI",
		ArgsUsage: "name=value ... (" + strings.Join(screening.FieldNames(), ", ") + ")",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the outcome as JSON",
			},
		},
		Action: runPredict,
	}
}

// predictOutput is the --json shape.
type predictOutput struct {
	PredictionClass int     `json:"prediction_class"`
	Result          string  `json:"result"`
	Confidence      float64 `json:"confidence"`
	Estimated       bool    `json:"estimated"`
	OutcomeText     string  `json:"outcome_text,omitempty"`
}

func runPredict(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupLogging(cmd, cfg, os.Stderr)

	ctrl := form.New()
	if err := fillForm(ctrl, cmd.Args().Slice()); err != nil {
		return err
	}

	if err := ctrl.Submit(ctx, newClient(cfg)); err != nil {
		if msg := ctrl.Err(); msg != "" {
			return errors.New(msg)
		}
		return err
	}

	outcome, _ := ctrl.Outcome()
	return printOutcome(cmd.Root().Writer, outcome, cmd.Bool("json"))
}

// fillForm applies name=value arguments and requires every field.
func fillForm(ctrl *form.Controller, args []string) error {
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("expected name=value, got %q", arg)
		}
		f, err := screening.ParseField(name)
		if err != nil {
			if s := suggestField(name); s != "" {
				return fmt.Errorf("%w (did you mean %q?)", err, s)
			}
			return err
		}
		ctrl.SetField(f, value)
	}

	if missing := ctrl.Fields().Missing(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, f := range missing {
			names[i] = f.Name()
		}
		return fmt.Errorf("missing fields: %s", strings.Join(names, ", "))
	}
	return nil
}

// suggestField returns the closest field name within edit distance 3.
func suggestField(name string) string {
	name = strings.ToLower(name)
	best, bestDist := "", 4
	for _, f := range screening.Fields() {
		for _, candidate := range []string{f.Name(), f.WireKey()} {
			d := levenshtein.ComputeDistance(name, strings.ToLower(candidate))
			if d < bestDist {
				best, bestDist = f.Name(), d
			}
		}
	}
	return best
}

func printOutcome(w io.Writer, o screening.Outcome, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(predictOutput{
			PredictionClass: o.Class(),
			Result:          o.Headline(),
			Confidence:      o.Confidence,
			Estimated:       o.Estimated,
			OutcomeText:     o.Text,
		})
	}

	estimated := ""
	if o.Estimated {
		estimated = " (estimated)"
	}
	_, err := fmt.Fprintf(w, "%s\nConfidence: %.1f%%%s\n", o.Headline(), o.Confidence, estimated)
	return err
}
