package main

import (
	"fmt"

	"github.com/meenmo/timevalue/irr/bisection"
	"github.com/meenmo/timevalue/presentvalue"
)

func main() {
	cashFlows := []float64{
		-250_000,
		40_000,
		40_000,
		40_000,
		40_000,
		40_000,
		40_000,
		40_000,
		40_000,
	}

	guess := 0.05
	limit := 100

	fmt.Printf("NPV at %.2f%%: %.2f\n", guess*100,
		presentvalue.NetPresentValue(cashFlows, guess))

	bounds := bisection.FindInitialBounds(cashFlows, guess, limit)
	if !bounds.Valid {
		fmt.Printf("no bracket found:\n%s\n", bounds)
		return
	}

	approx := bisection.Solve(cashFlows, bounds.RateLow, bounds.RateHigh, limit)
	if !approx.Valid {
		fmt.Printf("did not converge:\n%s\n", approx)
		return
	}

	fmt.Printf("IRR: %.4f%%\n", approx.Irr*100)
	fmt.Printf("NPV at IRR: %.6g\n", approx.Npv)
}
