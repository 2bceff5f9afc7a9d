package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meenmo/timevalue/irr/bisection"
	"github.com/meenmo/timevalue/series"
)

func newIrrCommand(rootOpts *rootOptions) *cobra.Command {
	var (
		guess float64
		limit int
	)

	cmd := &cobra.Command{
		Use:   "irr <schedule.yaml>",
		Short: "Approximate the internal rate of return of a schedule",
		Long: `Approximate the IRR of a cash-flow schedule: search outward from the
guess for a bracket whose NPVs straddle zero, then bisect it.

Both phases are budgeted by --limit. Schedules with no real IRR, or with
a sign change outside the explored region, are reported as unsolved.`,
		Example: `  tvm irr project.yaml --guess 0.10
  tvm irr project.yaml --guess 0.05 --limit 500`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkRate(guess); err != nil {
				return err
			}
			if limit <= 0 {
				return fmt.Errorf("limit must be positive, got %d", limit)
			}

			s, err := series.LoadFile(args[0])
			if err != nil {
				return err
			}
			if s.Guess != 0 {
				guess = s.Guess
			}

			precision := rootOpts.Precision
			if precision == 0 {
				precision = bisection.NpvPrecision
			}

			cashFlows := s.Float64s()
			out := cmd.OutOrStdout()

			bounds := bisection.FindInitialBoundsWithPrecision(cashFlows, guess, limit, precision)
			if !bounds.Valid {
				fmt.Fprintf(out, "no bracket found near guess %.6f:\n%s\n", guess, bounds)
				return fmt.Errorf("no sign change within %d search iterations", limit)
			}

			if bounds.RateLow == bounds.RateHigh {
				fmt.Fprintf(out, "irr: %.6f (guess already within tolerance, npv %.6g)\n",
					bounds.RateLow, bounds.NpvLow)
				return nil
			}

			approx := bisection.SolveWithPrecision(cashFlows, bounds.RateLow, bounds.RateHigh, limit, precision)
			if !approx.Valid {
				fmt.Fprintf(out, "did not converge:\n%s\n", approx)
				return fmt.Errorf("npv still %.6g after %d iterations", approx.Npv, approx.IterationsRun)
			}

			fmt.Fprintf(out, "irr: %.6f\n", approx.Irr)
			fmt.Fprintf(out, "npv: %.6g\n", approx.Npv)
			fmt.Fprintf(out, "bracket: [%.6f, %.6f] after %d+%d iterations\n",
				approx.RateLow, approx.RateHigh, bounds.IterationsRun, approx.IterationsRun)
			return nil
		},
	}

	cmd.Flags().Float64Var(&guess, "guess", 0.05, "starting rate for the bracket search")
	cmd.Flags().IntVar(&limit, "limit", 100, "iteration budget for each phase")

	return cmd
}
