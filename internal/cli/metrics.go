package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/common/expfmt"
	"github.com/urfave/cli/v3"
)

func metricsFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "metrics",
		Usage: "write validation metrics in the Prometheus text format to `FILE` (\"-\" for standard output, after the report)",
	}
}

// writeMetrics writes the collectors of this run to path. An empty path
// writes nothing.
func (rt *runtime) writeMetrics(path string) (err error) {
	if path == "" {
		return nil
	}

	families, err := rt.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	var w io.Writer = rt.out
	if path != "-" {
		f, createErr := os.Create(path)
		if createErr != nil {
			return fmt.Errorf("failed to create metrics file: %w", createErr)
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		w = f
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}
