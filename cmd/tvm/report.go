package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meenmo/timevalue/report"
	"github.com/meenmo/timevalue/series"
)

var reportFormats = []string{"markdown", "csv"}

func newReportCommand(rootOpts *rootOptions) *cobra.Command {
	var (
		guess  float64
		limit  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "report <schedules.yaml>",
		Short: "IRR report over a batch of schedules",
		Long: `Analyze every schedule in a multi-schedule YAML document and render
the results as a table. The document is a list:

  - name: project-a
    amounts: [-100, 60, 60]
  - name: project-b
    amounts: [-50, 10, 10, 10, 10, 10, 10]
    guess: 0.05`,
		Example: `  tvm report book.yaml
  tvm report book.yaml --format csv --guess 0.08`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validFormat(format) {
				return fmt.Errorf("invalid format %q: must be one of %v", format, reportFormats)
			}
			if err := checkRate(guess); err != nil {
				return err
			}
			if limit <= 0 {
				return fmt.Errorf("limit must be positive, got %d", limit)
			}

			schedules, err := series.LoadAllFile(args[0])
			if err != nil {
				return err
			}

			lines := report.Run(report.Config{
				Guess:          guess,
				IterationLimit: limit,
				Precision:      rootOpts.Precision,
			}, schedules)

			switch format {
			case "csv":
				out, err := report.RenderCSV(lines)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
			default:
				fmt.Fprint(cmd.OutOrStdout(), report.RenderMarkdown(lines))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&guess, "guess", 0.05, "default starting rate for schedules without one")
	cmd.Flags().IntVar(&limit, "limit", 100, "iteration budget for each phase")
	cmd.Flags().StringVar(&format, "format", "markdown", "output format (markdown|csv)")

	return cmd
}

func validFormat(format string) bool {
	for _, f := range reportFormats {
		if f == format {
			return true
		}
	}
	return false
}
