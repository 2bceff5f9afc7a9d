package series_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/timevalue/series"
)

func TestParse(t *testing.T) {
	t.Parallel()

	s, err := series.Parse("project-a", []string{"-100.00", "20.00", "20.00"})
	require.NoError(t, err)

	assert.Equal(t, "project-a", s.Name)
	assert.Equal(t, []float64{-100.0, 20.0, 20.0}, s.Float64s())
	assert.Equal(t, "-60", s.Total().String())
}

func TestParse_BadAmount(t *testing.T) {
	t.Parallel()

	_, err := series.Parse("broken", []string{"-100.00", "twenty"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "twenty")
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	_, err := series.Parse("empty", nil)
	require.Error(t, err)
}

func TestLoad_QuotedAndBareAmounts(t *testing.T) {
	t.Parallel()

	doc := `
name: mixed
currency: EUR
amounts:
  - "-100.00"
  - 20.00
  - 20
`
	s, err := series.Load(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "mixed", s.Name)
	assert.Equal(t, "EUR", s.Currency)
	require.Len(t, s.Amounts, 3)
	assert.Equal(t, []float64{-100.0, 20.0, 20.0}, s.Float64s())
}

func TestLoad_ExactDecimals(t *testing.T) {
	t.Parallel()

	// 0.10 has no exact binary representation; the decimal layer must
	// still sum ten of them to exactly 1.
	amounts := make([]string, 10)
	for i := range amounts {
		amounts[i] = "0.10"
	}
	s, err := series.Parse("dimes", amounts)
	require.NoError(t, err)
	assert.Equal(t, "1", s.Total().String())
}

func TestLoad_NoAmounts(t *testing.T) {
	t.Parallel()

	doc := `
name: hollow
amounts: []
`
	_, err := series.Load(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hollow")
}

func TestLoadAll(t *testing.T) {
	t.Parallel()

	doc := `
- name: a
  amounts: [-100, 60, 60]
- name: b
  amounts: [-50, 10, 10, 10, 10, 10, 10]
`
	all, err := series.LoadAll(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].Name)
	assert.Equal(t, "b", all[1].Name)
	assert.Len(t, all[1].Float64s(), 7)
}

func TestLoadAll_EmptyDocument(t *testing.T) {
	t.Parallel()

	_, err := series.LoadAll(strings.NewReader("[]\n"))
	require.Error(t, err)
}

func TestFloat64s_FreshSlice(t *testing.T) {
	t.Parallel()

	s, err := series.Parse("s", []string{"-1", "2"})
	require.NoError(t, err)

	first := s.Float64s()
	first[0] = 999
	assert.Equal(t, []float64{-1, 2}, s.Float64s())
}
