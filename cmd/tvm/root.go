package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	// Precision is the NPV magnitude treated as zero during IRR work.
	// Zero means the library default (0.001).
	Precision float64
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tvm",
		Short: "Time-value metrics over discrete cash-flow series",
		Long: `tvm computes time-value metrics over discrete cash-flow series:
present and future value, net present value, and IRR approximation via
bracketed bisection.

Cash-flow schedules are YAML documents:

  name: project-a
  currency: EUR
  amounts: [-100.00, 20.00, 20.00, 20.00, 20.00, 20.00]`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Precision < 0 {
				return fmt.Errorf("precision must not be negative, got %g", opts.Precision)
			}
			return nil
		},
	}

	cmd.PersistentFlags().Float64Var(&opts.Precision, "precision", 0,
		"NPV magnitude treated as zero (default 0.001)")

	cmd.AddCommand(newPvCommand())
	cmd.AddCommand(newFvCommand())
	cmd.AddCommand(newNpvCommand())
	cmd.AddCommand(newIrrCommand(opts))
	cmd.AddCommand(newReportCommand(opts))

	return cmd
}

// checkRate rejects rates at or below -1, where the discounting
// arithmetic degenerates. The library itself leaves this to callers;
// the CLI is one of those callers.
func checkRate(rate float64) error {
	if rate <= -1 {
		return fmt.Errorf("rate must be greater than -1, got %g", rate)
	}
	return nil
}
