package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerodds/poker"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calibration.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCalibrationMissingFile(t *testing.T) {
	cal, err := LoadCalibration(filepath.Join(t.TempDir(), "does-not-exist.hcl"))
	require.NoError(t, err)
	assert.Equal(t, poker.DefaultCalibration(), cal)
}

func TestLoadCalibrationFull(t *testing.T) {
	path := writeConfig(t, `
equity {
  category_win_rates  = [0.05, 0.30, 0.50, 0.60, 0.70, 0.75, 0.85, 0.90, 0.99]
  opponent_decay      = 0.80
  min_win_probability = 0.02
}
`)

	cal, err := LoadCalibration(path)
	require.NoError(t, err)
	assert.Equal(t, 0.80, cal.OpponentDecay)
	assert.Equal(t, 0.02, cal.MinWinProbability)
	assert.Equal(t, 0.05, cal.CategoryWinRates[poker.HighCard])
	assert.Equal(t, 0.99, cal.CategoryWinRates[poker.StraightFlush])
}

func TestLoadCalibrationPartial(t *testing.T) {
	path := writeConfig(t, `
equity {
  opponent_decay = 0.75
}
`)

	cal, err := LoadCalibration(path)
	require.NoError(t, err)
	assert.Equal(t, 0.75, cal.OpponentDecay)
	// Unset fields keep their defaults.
	defaults := poker.DefaultCalibration()
	assert.Equal(t, defaults.CategoryWinRates, cal.CategoryWinRates)
	assert.Equal(t, defaults.MinWinProbability, cal.MinWinProbability)
}

func TestLoadCalibrationEmptyFile(t *testing.T) {
	path := writeConfig(t, "")
	cal, err := LoadCalibration(path)
	require.NoError(t, err)
	assert.Equal(t, poker.DefaultCalibration(), cal)
}

func TestLoadCalibrationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "invalid HCL syntax",
			content: `equity {`,
		},
		{
			name: "wrong table length",
			content: `
equity {
  category_win_rates = [0.1, 0.2]
}
`,
		},
		{
			name: "rate out of range",
			content: `
equity {
  category_win_rates = [0.05, 0.30, 0.50, 0.60, 0.70, 0.75, 0.85, 0.90, 1.5]
}
`,
		},
		{
			name: "decay out of range",
			content: `
equity {
  opponent_decay = 1.5
}
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.content)
			_, err := LoadCalibration(path)
			assert.Error(t, err)
		})
	}
}
