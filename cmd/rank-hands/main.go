package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerodds/poker"
)

// rank-hands evaluates one hand per stdin line (5-7 card tokens, e.g.
// "As Kh Qd Jc Ts 3h 7d") and prints the best five-card hand for each.
// Lines are evaluated concurrently but printed in input order.

type CLI struct {
	Workers int  `short:"w" default:"0" help:"Worker goroutines (0 = NumCPU)"`
	Verbose bool `short:"v" help:"Verbose logging"`
}

type lineResult struct {
	input string
	eval  poker.Evaluation
	ok    bool
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rank-hands"),
		kong.Description("Batch-rank hold'em hands from stdin"),
		kong.UsageOnError(),
	)

	level := log.WarnLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	workers := cli.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
		ctx.Exit(1)
	}

	results := make([]lineResult, len(lines))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, line := range lines {
		g.Go(func() error {
			eval, ok := poker.BestHand(strings.Fields(line))
			results[i] = lineResult{input: line, eval: eval, ok: ok}
			return nil
		})
	}
	// Workers never return errors; skipped lines are reported below.
	_ = g.Wait()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	skipped := 0
	for _, result := range results {
		if !result.ok {
			skipped++
			logger.Warn("skipping line with fewer than 5 valid cards", "line", result.input)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%d\n", result.input, result.eval.Name, result.eval.Category)
	}
	w.Flush()

	logger.Debug("done", "hands", len(lines)-skipped, "skipped", skipped, "workers", workers)
}
