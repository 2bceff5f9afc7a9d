package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meenmo/timevalue/futurevalue"
	"github.com/meenmo/timevalue/presentvalue"
	"github.com/meenmo/timevalue/series"
)

func newPvCommand() *cobra.Command {
	var (
		amount float64
		period int
		rate   float64
	)

	cmd := &cobra.Command{
		Use:   "pv",
		Short: "Discount a single cash flow to present value",
		Example: `  tvm pv --amount 5 --period 1 --rate 0.20
  tvm pv --amount 10 --period 2 --rate 0.10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkRate(rate); err != nil {
				return err
			}
			if period < 0 {
				return fmt.Errorf("period must not be negative, got %d", period)
			}
			pv := presentvalue.PresentValue(amount, period, rate)
			fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", pv)
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "cash flow amount")
	cmd.Flags().IntVar(&period, "period", 0, "periods from now (0 = present)")
	cmd.Flags().Float64Var(&rate, "rate", 0, "per-period discount rate (0.10 = 10%)")
	cmd.MarkFlagRequired("amount")
	cmd.MarkFlagRequired("rate")

	return cmd
}

func newFvCommand() *cobra.Command {
	var (
		amount float64
		rates  []float64
	)

	cmd := &cobra.Command{
		Use:   "fv",
		Short: "Compound a present value through a rate sequence",
		Example: `  tvm fv --amount 10 --rates 0.1,0.1,0.1
  tvm fv --amount 10 --rates 1.0,2.0,3.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fv := futurevalue.FromRates(amount, rates)
			fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", fv)
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "present value amount")
	cmd.Flags().Float64SliceVar(&rates, "rates", nil, "per-period rates, in order")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func newNpvCommand() *cobra.Command {
	var rate float64

	cmd := &cobra.Command{
		Use:     "npv <schedule.yaml>",
		Short:   "Net present value of a cash-flow schedule",
		Example: `  tvm npv project.yaml --rate 0.10`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkRate(rate); err != nil {
				return err
			}
			s, err := series.LoadFile(args[0])
			if err != nil {
				return err
			}
			npv := presentvalue.NetPresentValue(s.Float64s(), rate)
			fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", npv)
			return nil
		},
	}

	cmd.Flags().Float64Var(&rate, "rate", 0, "per-period discount rate (0.10 = 10%)")
	cmd.MarkFlagRequired("rate")

	return cmd
}
