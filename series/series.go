// Package series loads and validates cash-flow schedules before they are
// handed to the analytic packages.
//
// Amounts are carried as exact decimals so that "0.10" in a schedule file
// means ten cents, not the nearest binary float; conversion to float64
// happens once, at the boundary to the numeric core.
package series

import (
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Amount is a single signed monetary amount. It unmarshals from any YAML
// scalar via exact decimal parsing, so schedule files may write amounts
// quoted or bare.
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	d, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("series: amount %q: %w", node.Value, err)
	}
	a.Decimal = d
	return nil
}

func (a Amount) MarshalYAML() (interface{}, error) {
	return a.Decimal.String(), nil
}

// Schedule is an ordered cash-flow series, one amount per discrete
// period. Index 0 is the present period.
type Schedule struct {
	Name     string   `yaml:"name"`
	Currency string   `yaml:"currency,omitempty"`
	Amounts  []Amount `yaml:"amounts"`
	// Guess optionally overrides the caller's starting rate for IRR
	// bracket searches over this schedule. Zero means no override.
	Guess float64 `yaml:"guess,omitempty"`
}

// Validate checks that the schedule can be analyzed at all. The numeric
// core itself never validates; this is the hardened edge in front of it.
func (s Schedule) Validate() error {
	if len(s.Amounts) == 0 {
		return fmt.Errorf("series: schedule %q has no amounts", s.Name)
	}
	return nil
}

// Float64s converts the amounts to the float64 slice the analytic
// packages consume. The slice is freshly allocated on every call, so the
// core's repeated traversals never alias the schedule.
func (s Schedule) Float64s() []float64 {
	out := make([]float64, len(s.Amounts))
	for i, a := range s.Amounts {
		out[i] = a.InexactFloat64()
	}
	return out
}

// Total returns the undiscounted sum of all amounts, exactly.
func (s Schedule) Total() decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.Amounts {
		total = total.Add(a.Decimal)
	}
	return total
}

// Parse builds a Schedule from decimal strings, validating each one.
func Parse(name string, amounts []string) (Schedule, error) {
	s := Schedule{Name: name, Amounts: make([]Amount, 0, len(amounts))}
	for _, raw := range amounts {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return Schedule{}, fmt.Errorf("series: amount %q: %w", raw, err)
		}
		s.Amounts = append(s.Amounts, Amount{d})
	}
	return s, s.Validate()
}

// Load decodes a single schedule document from r.
func Load(r io.Reader) (Schedule, error) {
	var s Schedule
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return Schedule{}, fmt.Errorf("series: decode schedule: %w", err)
	}
	return s, s.Validate()
}

// LoadAll decodes a list of schedules from r.
func LoadAll(r io.Reader) ([]Schedule, error) {
	var all []Schedule
	if err := yaml.NewDecoder(r).Decode(&all); err != nil {
		return nil, fmt.Errorf("series: decode schedules: %w", err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("series: no schedules in document")
	}
	for _, s := range all {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	return all, nil
}

// LoadFile reads a single-schedule YAML file.
func LoadFile(path string) (Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return Schedule{}, fmt.Errorf("series: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// LoadAllFile reads a multi-schedule YAML file.
func LoadAllFile(path string) ([]Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("series: %w", err)
	}
	defer f.Close()
	return LoadAll(f)
}
