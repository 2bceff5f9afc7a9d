// Package futurevalue compounds a present value forward through a
// sequence of per-period rates.
package futurevalue

import "github.com/meenmo/timevalue/floats"

// FromRates grows presentValue through each rate in order:
//
//	fv = presentValue * Π (1+rate_i)
//
// An empty rate sequence returns presentValue unchanged. Multiplication
// commutes, so the result does not depend on the order of rates.
func FromRates[T floats.Real](presentValue T, rates []T) T {
	fv := presentValue
	for _, rate := range rates {
		fv *= 1 + rate
	}
	return fv
}
