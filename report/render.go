package report

import (
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RenderMarkdown renders the lines as a Markdown document.
func RenderMarkdown(lines []Line) string {
	var sb strings.Builder

	sb.WriteString("# IRR Report\n\n")
	sb.WriteString(fmt.Sprintf("Schedules: %d | Converged: %d\n\n", len(lines), countValid(lines)))

	sb.WriteString("| Series | Periods | Total | Guess | Bracket | Search Iter | Solve Iter | IRR | NPV | Status |\n")
	sb.WriteString("|--------|---------|-------|-------|---------|-------------|------------|-----|-----|--------|\n")
	for _, l := range lines {
		sb.WriteString(fmt.Sprintf("| %s | %d | %s | %s | %s | %d | %d | %s | %s | %s |\n",
			l.Name, l.Periods, l.Total, formatRate(l.Guess), formatBracket(l),
			l.BoundsIterations, l.SolveIterations,
			formatRate(l.Irr), formatNpv(l.Npv), l.Status))
	}

	failed := invalidLines(lines)
	if len(failed) > 0 {
		sb.WriteString("\n## Not Solved\n\n")
		for _, l := range failed {
			sb.WriteString(fmt.Sprintf("- %s: %s after %d search / %d solve iterations\n",
				l.Name, l.Status, l.BoundsIterations, l.SolveIterations))
		}
	}

	return sb.String()
}

// RenderCSV renders the lines as CSV with a header row.
func RenderCSV(lines []Line) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := []string{
		"series", "periods", "total", "guess", "rate_low", "rate_high",
		"bounds_iterations", "solve_iterations", "irr", "npv", "status",
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("report: write csv header: %w", err)
	}

	for _, l := range lines {
		record := []string{
			l.Name,
			strconv.Itoa(l.Periods),
			l.Total,
			formatRate(l.Guess),
			formatRate(l.RateLow),
			formatRate(l.RateHigh),
			strconv.Itoa(l.BoundsIterations),
			strconv.Itoa(l.SolveIterations),
			formatRate(l.Irr),
			formatNpv(l.Npv),
			string(l.Status),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("report: write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("report: flush csv: %w", err)
	}
	return sb.String(), nil
}

func countValid(lines []Line) int {
	n := 0
	for _, l := range lines {
		if l.Valid() {
			n++
		}
	}
	return n
}

func invalidLines(lines []Line) []Line {
	var out []Line
	for _, l := range lines {
		if !l.Valid() {
			out = append(out, l)
		}
	}
	return out
}

func formatRate(r float64) string {
	if math.IsNaN(r) {
		return "-"
	}
	return fmt.Sprintf("%.6f", r)
}

func formatBracket(l Line) string {
	if l.RateLow == l.RateHigh {
		return fmt.Sprintf("[%s]", formatRate(l.RateLow))
	}
	return fmt.Sprintf("[%s, %s]", formatRate(l.RateLow), formatRate(l.RateHigh))
}

// formatNpv keeps report output stable: converged NPVs hover within an
// ulp or two of zero, where fixed-point formatting would print an
// unstable "-0.0000".
func formatNpv(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	if math.Abs(v) < 1e-9 {
		return "~0"
	}
	return fmt.Sprintf("%.4f", v)
}
