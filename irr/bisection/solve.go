package bisection

import (
	"fmt"

	"github.com/meenmo/timevalue/floats"
	"github.com/meenmo/timevalue/presentvalue"
)

// Approximation is the result of a bisection run. It is a value object:
// built once, never mutated.
//
// When the input bracket was invalid at entry, IterationsRun is 0 and
// Irr/Npv are NaN; the caller-supplied bounds and their NPVs are kept for
// diagnostics. Otherwise Irr/Npv hold the final midpoint, and Valid is
// exactly |Npv| <= the solve precision, whether the loop converged or ran
// out of budget. The two cases tell apart by comparing IterationsRun to
// IterationLimit.
type Approximation[T floats.Real] struct {
	RateLow        T
	NpvLow         T
	RateHigh       T
	NpvHigh        T
	IterationLimit int
	IterationsRun  int
	Irr            T
	Npv            T
	Valid          bool
}

func (a Approximation[T]) String() string {
	return fmt.Sprintf(
		"rate_low: %v\nnpv_low: %v\nrate_high: %v\nnpv_high: %v\niteration_limit: %d\niterations_run: %d\nirr: %v\nnpv: %v\nis_valid: %t",
		a.RateLow, a.NpvLow, a.RateHigh, a.NpvHigh, a.IterationLimit, a.IterationsRun, a.Irr, a.Npv, a.Valid,
	)
}

// Solve runs the bisection with the default NpvPrecision tolerance.
func Solve[T floats.Real](cashFlows []T, rateLow, rateHigh T, iterationLimit int) Approximation[T] {
	return SolveWithPrecision(cashFlows, rateLow, rateHigh, iterationLimit, T(NpvPrecision))
}

// SolveWithPrecision approximates the IRR of cashFlows by bisecting the
// bracket [rateLow, rateHigh].
//
// The caller is expected to supply rates whose NPVs have opposite signs,
// typically straight from a valid InitialBounds. A same-sign bracket is
// rejected immediately with an invalid record and no iterations.
//
// Each round the midpoint replaces whichever bound shares its NPV sign,
// halving the bracket. The loop stops when the budget is spent or when
// the midpoint NPV is indistinguishable from the tolerance constant under
// EqualEnough. That exit test is not the same check as the Valid flag,
// which is strictly |npv| <= precision; near the tolerance boundary the
// loop can stop an iteration before or after the flag flips.
func SolveWithPrecision[T floats.Real](cashFlows []T, rateLow, rateHigh T, iterationLimit int, precision T) Approximation[T] {
	npvLow := presentvalue.NetPresentValue(cashFlows, rateLow)
	npvHigh := presentvalue.NetPresentValue(cashFlows, rateHigh)

	if npvLow*npvHigh > 0 {
		return Approximation[T]{
			RateLow:        rateLow,
			NpvLow:         npvLow,
			RateHigh:       rateHigh,
			NpvHigh:        npvHigh,
			IterationLimit: iterationLimit,
			IterationsRun:  0,
			Irr:            floats.NaN[T](),
			Npv:            floats.NaN[T](),
			Valid:          false,
		}
	}

	rateMid := Midpoint(rateLow, rateHigh)
	npvMid := presentvalue.NetPresentValue(cashFlows, rateMid)
	iterationsRun := 0

	for iterationsRun < iterationLimit && !EqualEnough(precision, npvMid) {
		iterationsRun++

		if npvLow*npvMid < 0 {
			// Sign change below the midpoint: root is in the lower half.
			rateHigh = rateMid
			npvHigh = npvMid
		} else {
			rateLow = rateMid
			npvLow = npvMid
		}

		rateMid = Midpoint(rateLow, rateHigh)
		npvMid = presentvalue.NetPresentValue(cashFlows, rateMid)
	}

	return Approximation[T]{
		RateLow:        rateLow,
		NpvLow:         npvLow,
		RateHigh:       rateHigh,
		NpvHigh:        npvHigh,
		IterationLimit: iterationLimit,
		IterationsRun:  iterationsRun,
		Irr:            rateMid,
		Npv:            npvMid,
		Valid:          floats.Abs(npvMid) <= precision,
	}
}
