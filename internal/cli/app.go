package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/rulekit/pkg/config"
)

// New returns the root rulekit command.
func New(version string) *cli.Command {
	return &cli.Command{
		Name:                  "rulekit",
		Usage:                 "Validate records against rule schemas",
		Version:               version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "read environment variables from `FILE` before loading configuration",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format (text, json)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := config.LoadEnv(cmd.StringSlice("env-file")...); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			checkCmd(),
			demoCmd(),
		},
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "format",
		Value: string(FormatYAML),
		Usage: fmt.Sprintf("output format (%s, %s)", FormatYAML, FormatJSON),
	}
}

func langFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "lang",
		Usage: "message language or Accept-Language list, e.g. id or \"id-ID,en;q=0.5\"",
	}
}

func totalFlag() cli.Flag {
	return &cli.Int64Flag{
		Name:  "total",
		Usage: "current number of users, replaces the configured capacity source",
	}
}

func maxFlag() cli.Flag {
	return &cli.Int64Flag{
		Name:  "max",
		Usage: "maximum number of users (-1 for unlimited)",
	}
}
