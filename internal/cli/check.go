package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Validate records read from a YAML or JSON file",
		Description: `Decodes one record (or a list with --many) of the given kind and validates
it. Registration records are checked against the current user count.

Use "-" as the file to read from standard input.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "kind",
				Aliases:  []string{"k"},
				Required: true,
				Usage:    fmt.Sprintf("record kind (%s)", Kinds()),
			},
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Required: true,
				Usage:    "record `FILE`, YAML or JSON",
			},
			&cli.BoolFlag{
				Name:  "many",
				Usage: "the file holds a list of records",
			},
			totalFlag(),
			maxFlag(),
			langFlag(),
			formatFlag(),
			metricsFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseFormat(cmd.String("format"))
			if err != nil {
				return err
			}

			kind := cmd.String("kind")
			check, err := lookupKind(kind)
			if err != nil {
				return err
			}

			data, err := readInput(cmd, cmd.String("file"))
			if err != nil {
				return err
			}

			rt, err := newRuntime(ctx, cmd, kind == KindRegister)
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx = rt.scope(ctx, kind)
			outcomes, err := check(ctx, rt, data, cmd.Bool("many"))
			if err != nil {
				return err
			}

			report := newReport(ctx, kind, rt.tr, outcomes)
			if err := report.write(rt.out, format); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			if err := rt.writeMetrics(cmd.String("metrics")); err != nil {
				return err
			}
			if report.Invalid > 0 {
				return fmt.Errorf("%w: %d of %d", ErrViolations, report.Invalid, len(report.Outcomes))
			}
			return nil
		},
	}
}

func readInput(cmd *cli.Command, path string) ([]byte, error) {
	if path == "-" {
		r := cmd.Root().Reader
		if r == nil {
			r = os.Stdin
		}
		return io.ReadAll(r)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records from %q: %w", path, err)
	}
	return data, nil
}
