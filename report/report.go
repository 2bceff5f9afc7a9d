// Package report runs the IRR pipeline over a batch of cash-flow
// schedules and renders the outcome as Markdown or CSV.
package report

import (
	"math"
	"sync"

	"github.com/meenmo/timevalue/irr/bisection"
	"github.com/meenmo/timevalue/series"
)

var nan = math.NaN()

// Status classifies the outcome of one schedule's analysis.
type Status string

const (
	// StatusConverged means the bisection produced an IRR whose NPV is
	// within tolerance.
	StatusConverged Status = "converged"
	// StatusRootAtGuess means the rate guess itself was already within
	// tolerance; no bisection was needed.
	StatusRootAtGuess Status = "root-at-guess"
	// StatusNoBracket means the bounds search exhausted its budget
	// without finding a sign change.
	StatusNoBracket Status = "no-bracket"
	// StatusNoConvergence means a bracket was found but the bisection
	// budget ran out with the NPV still outside tolerance.
	StatusNoConvergence Status = "no-convergence"
)

// Line is the analysis outcome for a single schedule.
type Line struct {
	Name             string
	Periods          int
	Total            string // exact undiscounted sum
	Guess            float64
	RateLow          float64
	RateHigh         float64
	BoundsIterations int
	SolveIterations  int
	Irr              float64 // NaN unless converged or root-at-guess
	Npv              float64 // NPV at Irr; NaN alongside it
	Status           Status
}

// Valid reports whether the line carries a trustworthy IRR.
func (l Line) Valid() bool {
	return l.Status == StatusConverged || l.Status == StatusRootAtGuess
}

// Config parameterizes a report run.
type Config struct {
	// Guess is the starting rate for the bounds search.
	Guess float64
	// IterationLimit bounds both the bracket search and the bisection.
	IterationLimit int
	// Precision overrides bisection.NpvPrecision when non-zero, for
	// schedules denominated in units where a thousandth is the wrong
	// notion of "zero".
	Precision float64
}

func (c Config) precision() float64 {
	if c.Precision > 0 {
		return c.Precision
	}
	return bisection.NpvPrecision
}

// Run analyzes every schedule and returns one line per schedule, in
// input order. Each schedule's analysis is independent and side-effect
// free, so they run concurrently.
func Run(cfg Config, schedules []series.Schedule) []Line {
	lines := make([]Line, len(schedules))

	var wg sync.WaitGroup
	for i, s := range schedules {
		wg.Add(1)
		go func(i int, s series.Schedule) {
			defer wg.Done()
			lines[i] = analyze(cfg, s)
		}(i, s)
	}
	wg.Wait()

	return lines
}

func analyze(cfg Config, s series.Schedule) Line {
	cashFlows := s.Float64s()
	precision := cfg.precision()
	guess := cfg.Guess
	if s.Guess != 0 {
		guess = s.Guess
	}

	line := Line{
		Name:    s.Name,
		Periods: len(cashFlows),
		Total:   s.Total().String(),
		Guess:   guess,
	}

	bounds := bisection.FindInitialBoundsWithPrecision(cashFlows, guess, cfg.IterationLimit, precision)
	line.RateLow = bounds.RateLow
	line.RateHigh = bounds.RateHigh
	line.BoundsIterations = bounds.IterationsRun
	line.Irr = nan
	line.Npv = nan

	if !bounds.Valid {
		line.Status = StatusNoBracket
		return line
	}

	if bounds.RateLow == bounds.RateHigh {
		// Collapsed bracket: the guess is the root. Bisection would
		// reject it (the NPV product is a square), so report directly.
		line.Irr = bounds.RateLow
		line.Npv = bounds.NpvLow
		line.Status = StatusRootAtGuess
		return line
	}

	approx := bisection.SolveWithPrecision(cashFlows, bounds.RateLow, bounds.RateHigh, cfg.IterationLimit, precision)
	line.SolveIterations = approx.IterationsRun
	if approx.Valid {
		line.Irr = approx.Irr
		line.Npv = approx.Npv
		line.Status = StatusConverged
	} else {
		line.Status = StatusNoConvergence
	}

	return line
}
