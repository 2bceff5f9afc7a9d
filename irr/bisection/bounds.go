package bisection

import (
	"fmt"

	"github.com/meenmo/timevalue/floats"
	"github.com/meenmo/timevalue/presentvalue"
)

// InitialBounds is the result of a bracket search. It is a value object:
// built once, never mutated.
//
// Valid means RateLow and RateHigh straddle a sign change
// (NpvLow*NpvHigh <= 0), or the guess itself was already within
// tolerance, in which case RateLow == RateHigh == the guess.
type InitialBounds[T floats.Real] struct {
	RateLow        T
	NpvLow         T
	RateHigh       T
	NpvHigh        T
	IterationLimit int
	IterationsRun  int
	Valid          bool
}

func (b InitialBounds[T]) String() string {
	return fmt.Sprintf(
		"rate_low: %v\nnpv_low: %v\nrate_high: %v\nnpv_high: %v\niteration_limit: %d\niterations_run: %d\nis_valid: %t",
		b.RateLow, b.NpvLow, b.RateHigh, b.NpvHigh, b.IterationLimit, b.IterationsRun, b.Valid,
	)
}

// FindInitialBounds searches outward from guess for a bracket usable by
// Solve, treating an NPV magnitude under NpvPrecision as a root.
func FindInitialBounds[T floats.Real](cashFlows []T, guess T, iterationLimit int) InitialBounds[T] {
	return FindInitialBoundsWithPrecision(cashFlows, guess, iterationLimit, T(NpvPrecision))
}

// FindInitialBoundsWithPrecision is FindInitialBounds with a
// caller-supplied tolerance.
//
// The search starts from a micro-bracket guess ± 10·epsilon and widens it
// geometrically, always moving in one direction: toward whichever side of
// the guess already has the smaller NPV magnitude, since that side is the
// one more likely to cross zero first. The direction is chosen once and
// never revisited, so a series whose NPV changes sign on the other side
// of the guess — or more than once — can exhaust the budget without a
// find. That is reported through Valid, not treated as an error.
//
// With iterationLimit 0 and a guess that is not already a root, only the
// micro-bracket is tested and the result is invalid.
func FindInitialBoundsWithPrecision[T floats.Real](cashFlows []T, guess T, iterationLimit int, precision T) InitialBounds[T] {
	npvGuess := presentvalue.NetPresentValue(cashFlows, guess)
	if floats.Abs(npvGuess) < precision {
		// The guess is already an acceptable root; collapse the bracket.
		return InitialBounds[T]{
			RateLow:        guess,
			NpvLow:         npvGuess,
			RateHigh:       guess,
			NpvHigh:        npvGuess,
			IterationLimit: iterationLimit,
			IterationsRun:  0,
			Valid:          true,
		}
	}

	epsilonMultiple := T(10)
	rateLow := guess - epsilonMultiple*floats.Epsilon[T]()
	rateHigh := guess + epsilonMultiple*floats.Epsilon[T]()
	npvLow := presentvalue.NetPresentValue(cashFlows, rateLow)
	npvHigh := presentvalue.NetPresentValue(cashFlows, rateHigh)
	iterationsRun := 0

	// Fixed for the whole search: widen toward the side whose NPV is
	// already nearer zero.
	goLow := floats.Abs(npvLow) < floats.Abs(npvHigh)

	for iterationsRun < iterationLimit {
		if npvLow*npvHigh <= 0 {
			return InitialBounds[T]{
				RateLow:        rateLow,
				NpvLow:         npvLow,
				RateHigh:       rateHigh,
				NpvHigh:        npvHigh,
				IterationLimit: iterationLimit,
				IterationsRun:  iterationsRun,
				Valid:          true,
			}
		}

		epsilonMultiple = doubleEpsilonMultiple(epsilonMultiple)

		if goLow {
			rateHigh = rateLow
			rateLow = rateLow - epsilonMultiple*floats.Epsilon[T]()
		} else {
			rateLow = rateHigh
			rateHigh = rateHigh + epsilonMultiple*floats.Epsilon[T]()
		}

		npvLow = presentvalue.NetPresentValue(cashFlows, rateLow)
		npvHigh = presentvalue.NetPresentValue(cashFlows, rateHigh)

		iterationsRun++
	}

	return InitialBounds[T]{
		RateLow:        rateLow,
		NpvLow:         npvLow,
		RateHigh:       rateHigh,
		NpvHigh:        npvHigh,
		IterationLimit: iterationLimit,
		IterationsRun:  iterationsRun,
		Valid:          false,
	}
}

// doubleEpsilonMultiple doubles the step multiplier, saturating at the
// type's maximum instead of overflowing to infinity.
func doubleEpsilonMultiple[T floats.Real](epsilonMultiple T) T {
	if epsilonMultiple < floats.MaxValue[T]()/2 {
		return epsilonMultiple * 2
	}
	return floats.MaxValue[T]()
}
