// Package bisection approximates the internal rate of return of a
// cash-flow series: the discount rate at which the series' net present
// value is zero.
//
// The package has two entry points. FindInitialBounds searches outward
// from a single rate guess for a bracket — two rates whose NPVs have
// opposite signs, which by continuity must straddle a root. Solve then
// repeatedly halves a bracket until the midpoint NPV is within tolerance
// or an iteration budget runs out.
//
// Neither function errors or panics. Both return a fully populated result
// record whose Valid flag must be checked before the answer is trusted;
// on failure the record still carries the final bracket and its NPVs for
// diagnosis. Not every series has a real IRR (and some have several), so
// an invalid result is an expected outcome, not an exceptional one.
package bisection

import "github.com/meenmo/timevalue/floats"

// NpvPrecision is the default NPV magnitude below which a rate counts as
// a root. Cash flows are denominated in some currency, so anything under
// a tenth of a cent is indistinguishable from zero for IRR purposes.
// Callers working in other units of account can pass their own tolerance
// to the WithPrecision variants instead.
const NpvPrecision = 0.001

// EqualEnough reports whether a and b are indistinguishable at machine
// precision, scaled by the larger magnitude:
//
//	|a-b| <= max(|a|,|b|) * epsilon
//
// The relative scaling keeps the effective tolerance tight near zero and
// proportionally loose for large values. Behavior on NaN or infinite
// inputs is unspecified; NaN compares unequal to everything.
//
// Hat tip to Bruce Dawson's "Comparing Floating Point Numbers".
func EqualEnough[T floats.Real](a, b T) bool {
	difference := floats.Abs(a - b)
	larger := floats.Max(floats.Abs(a), floats.Abs(b))
	return difference <= larger*floats.Epsilon[T]()
}

// Midpoint returns the value halfway between a and c as a + (c-a)/2.
// The naive (a+c)/2 can overflow when both operands are large and share
// a sign even though their average is representable.
func Midpoint[T floats.Real](a, c T) T {
	return a + (c-a)/2
}
