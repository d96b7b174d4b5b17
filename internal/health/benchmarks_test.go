package health

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBenchmarksValid(t *testing.T) {
	assert.NoError(t, DefaultBenchmarks().Validate())
}

func TestLoadBenchmarksOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmarks.yaml")
	yaml := `
emergency_buffer_months: 3
loan_to_value: 0.70
savings_rate: 0.10
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	b, err := LoadBenchmarks(path)
	require.NoError(t, err)

	assert.InDelta(t, 3, b.EmergencyBufferMonths, 1e-9)
	assert.InDelta(t, 0.70, b.LoanToValue, 1e-9)
	assert.InDelta(t, 0.10, b.SavingsRate, 1e-9)
	// Unset fields keep their defaults.
	assert.InDelta(t, 3.5, b.DebtToIncome, 1e-9)
	assert.InDelta(t, 24, b.EmergencyBufferCapMonths, 1e-9)
}

func TestLoadBenchmarksMissingFile(t *testing.T) {
	_, err := LoadBenchmarks(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read")
}

func TestLoadBenchmarksInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml:::"), 0644))

	_, err := LoadBenchmarks(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoadBenchmarksRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("savings_rate: -0.5\n"), 0644))

	_, err := LoadBenchmarks(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "savings_rate must be > 0")
}

func TestBenchmarksValidateCapOrdering(t *testing.T) {
	b := DefaultBenchmarks()
	b.EmergencyBufferCapMonths = 2 // below the 6-month benchmark
	err := b.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "emergency_buffer_cap_months")

	b = DefaultBenchmarks()
	b.IncomeExpenseRatioCap = 1.0
	err = b.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "income_expense_ratio_cap")
}
