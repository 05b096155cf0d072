// Package config loads equity calibration settings from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokerodds/poker"
)

// File represents the complete calibration configuration file.
type File struct {
	Equity *EquityBlock `hcl:"equity,block"`
}

// EquityBlock tunes the win-probability heuristic.
type EquityBlock struct {
	// CategoryWinRates lists nine win rates indexed by hand category,
	// high card through straight flush.
	CategoryWinRates []float64 `hcl:"category_win_rates,optional"`

	// OpponentDecay is the per-extra-opponent discount factor.
	OpponentDecay float64 `hcl:"opponent_decay,optional"`

	// MinWinProbability is the floor on postflop estimates.
	MinWinProbability float64 `hcl:"min_win_probability,optional"`
}

// LoadCalibration loads a calibration from an HCL file. A missing file is
// not an error: the built-in defaults are returned, matching how server
// configs behave. Fields absent from the file keep their default values.
func LoadCalibration(filename string) (poker.Calibration, error) {
	cal := poker.DefaultCalibration()

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return cal, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return cal, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg File
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return cal, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Equity == nil {
		return cal, nil
	}

	if len(cfg.Equity.CategoryWinRates) > 0 {
		if len(cfg.Equity.CategoryWinRates) != len(cal.CategoryWinRates) {
			return cal, fmt.Errorf("category_win_rates must have %d entries, got %d",
				len(cal.CategoryWinRates), len(cfg.Equity.CategoryWinRates))
		}
		for i, rate := range cfg.Equity.CategoryWinRates {
			if rate < 0 || rate > 1 {
				return cal, fmt.Errorf("category_win_rates[%d] = %v: must be in [0, 1]", i, rate)
			}
			cal.CategoryWinRates[i] = rate
		}
	}

	if cfg.Equity.OpponentDecay != 0 {
		if cfg.Equity.OpponentDecay < 0 || cfg.Equity.OpponentDecay > 1 {
			return cal, fmt.Errorf("opponent_decay = %v: must be in (0, 1]", cfg.Equity.OpponentDecay)
		}
		cal.OpponentDecay = cfg.Equity.OpponentDecay
	}

	if cfg.Equity.MinWinProbability != 0 {
		if cfg.Equity.MinWinProbability < 0 || cfg.Equity.MinWinProbability > 1 {
			return cal, fmt.Errorf("min_win_probability = %v: must be in [0, 1]", cfg.Equity.MinWinProbability)
		}
		cal.MinWinProbability = cfg.Equity.MinWinProbability
	}

	return cal, nil
}
