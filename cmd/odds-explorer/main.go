package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerodds/internal/config"
	"github.com/lox/pokerodds/internal/tui"
	"github.com/lox/pokerodds/poker"
)

type CLI struct {
	Config  string `short:"c" help:"Path to HCL calibration file"`
	Seed    int64  `default:"0" help:"RNG seed for dealt hands (0 for random)"`
	Verbose bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("odds-explorer"),
		kong.Description("Interactive hold'em hand and equity explorer"),
		kong.UsageOnError(),
	)

	level := log.WarnLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	cal := poker.DefaultCalibration()
	if cli.Config != "" {
		var err error
		cal, err = config.LoadCalibration(cli.Config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading calibration: %v\n", err)
			ctx.Exit(1)
		}
	}

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	model := tui.New(logger, cal, rng)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		logger.Error("explorer failed", "error", err)
		ctx.Exit(1)
	}
}
