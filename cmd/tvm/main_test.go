package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeSchedule(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "schedule.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPvCommand(t *testing.T) {
	out, err := runCommand(t, "pv", "--amount", "5", "--period", "1", "--rate", "0.20")
	require.NoError(t, err)
	assert.Equal(t, "4.166667\n", out)
}

func TestPvCommand_RejectsDegenerateRate(t *testing.T) {
	_, err := runCommand(t, "pv", "--amount", "5", "--period", "1", "--rate", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "greater than -1")
}

func TestFvCommand(t *testing.T) {
	out, err := runCommand(t, "fv", "--amount", "10", "--rates", "1.0,2.0,3.0")
	require.NoError(t, err)
	assert.Equal(t, "240.000000\n", out)
}

func TestFvCommand_NoRates(t *testing.T) {
	out, err := runCommand(t, "fv", "--amount", "10")
	require.NoError(t, err)
	assert.Equal(t, "10.000000\n", out)
}

func TestNpvCommand(t *testing.T) {
	path := writeSchedule(t, `
name: level
amounts: [10, 10, 10]
`)
	out, err := runCommand(t, "npv", path, "--rate", "0.10")
	require.NoError(t, err)
	assert.Equal(t, "27.355372\n", out)
}

func TestNpvCommand_MissingFile(t *testing.T) {
	_, err := runCommand(t, "npv", filepath.Join(t.TempDir(), "nope.yaml"), "--rate", "0.10")
	require.Error(t, err)
}

func TestIrrCommand(t *testing.T) {
	path := writeSchedule(t, `
name: front-loaded
amounts: [-100, 50, 10, 10, 10, 10, 10, 10, 10, 10, 10]
`)
	out, err := runCommand(t, "irr", path, "--guess", "0.10")
	require.NoError(t, err)
	assert.Contains(t, out, "irr: 0.092788")
}

func TestIrrCommand_NoRoot(t *testing.T) {
	path := writeSchedule(t, `
name: rootless
amounts: [100, 10, 10]
`)
	out, err := runCommand(t, "irr", path, "--guess", "0.05")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sign change")
	assert.Contains(t, out, "no bracket found")
}

func TestIrrCommand_ScheduleGuessWins(t *testing.T) {
	path := writeSchedule(t, `
name: on-target
amounts: [-100, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20]
guess: 0.150984
`)
	out, err := runCommand(t, "irr", path, "--guess", "0.05")
	require.NoError(t, err)
	assert.Contains(t, out, "irr: 0.150984")
	assert.Contains(t, out, "already within tolerance")
}

func TestReportCommand_Markdown(t *testing.T) {
	path := writeSchedule(t, `
- name: a
  amounts: [-100, 60, 60]
- name: b
  amounts: [100, 10, 10]
`)
	out, err := runCommand(t, "report", path, "--guess", "0.05", "--limit", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "# IRR Report")
	assert.Contains(t, out, "| a |")
	assert.Contains(t, out, "no-bracket")
}

func TestReportCommand_CSV(t *testing.T) {
	path := writeSchedule(t, `
- name: a
  amounts: [-100, 60, 60]
`)
	out, err := runCommand(t, "report", path, "--format", "csv")
	require.NoError(t, err)
	rows := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, rows, 2)
	assert.True(t, strings.HasPrefix(rows[0], "series,periods,total"))
}

func TestReportCommand_BadFormat(t *testing.T) {
	path := writeSchedule(t, `
- name: a
  amounts: [-100, 60, 60]
`)
	_, err := runCommand(t, "report", path, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
