// Package presentvalue discounts cash flows back to the present period.
package presentvalue

import "github.com/meenmo/timevalue/floats"

// PresentValue discounts a single cash flow received `period` periods from
// now at the given per-period rate:
//
//	pv = cashFlow * (1+rate)^(-period)
//
// Period 0 is the present, so the cash flow comes back unchanged.
//
// The rate must be greater than -1; this is not checked, and violating it
// yields a non-finite result.
func PresentValue[T floats.Real](cashFlow T, period int, rate T) T {
	discountFactor := floats.Pow(1+rate, T(-period))
	return cashFlow * discountFactor
}

// NetPresentValue sums the per-period discounted values of a cash-flow
// series at the given rate. Index 0 is the present period and is not
// discounted. Linear in the number of cash flows; the slice is only read.
//
// The rate precondition of PresentValue applies here per element.
func NetPresentValue[T floats.Real](cashFlows []T, rate T) T {
	var npv T
	for period, cashFlow := range cashFlows {
		npv += PresentValue(cashFlow, period, rate)
	}
	return npv
}
