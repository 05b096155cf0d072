package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/pokerodds/internal/config"
	"github.com/lox/pokerodds/poker"
)

type CLI struct {
	Hole      string `arg:"" help:"Hole cards in format 'AsKh'" required:""`
	Board     string `short:"b" help:"Community board cards (e.g. 'Td7s8h')"`
	Opponents int    `short:"o" default:"1" help:"Number of opponents"`
	Config    string `short:"c" help:"Path to HCL calibration file"`
	Verbose   bool   `short:"v" help:"Verbose logging"`
}

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("poker-odds"),
		kong.Description("Rank a hold'em hand and estimate win equity"),
		kong.UsageOnError(),
	)

	level := log.WarnLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	lipgloss.SetColorProfile(termenv.EnvColorProfile())

	hole, err := poker.ParseCards(cli.Hole)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing hole cards: %v\n", err)
		ctx.Exit(1)
	}
	if len(hole) != 2 {
		fmt.Fprintf(os.Stderr, "Hole must contain exactly 2 cards, got %d\n", len(hole))
		ctx.Exit(1)
	}

	var board []poker.Card
	if cli.Board != "" {
		board, err = poker.ParseCards(cli.Board)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing board: %v\n", err)
			ctx.Exit(1)
		}
		if len(board) > 5 {
			fmt.Fprintf(os.Stderr, "Board cannot have more than 5 cards\n")
			ctx.Exit(1)
		}
	}

	if err := validateNoDuplicates(hole, board); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	cal := poker.DefaultCalibration()
	if cli.Config != "" {
		cal, err = config.LoadCalibration(cli.Config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading calibration: %v\n", err)
			ctx.Exit(1)
		}
		logger.Debug("loaded calibration", "path", cli.Config)
	}

	displayResults(hole, board, cli.Opponents, poker.NewEstimator(cal))
}

func validateNoDuplicates(hole, board []poker.Card) error {
	seen := make(map[poker.Card]bool)
	for _, card := range append(append([]poker.Card{}, hole...), board...) {
		if seen[card] {
			return fmt.Errorf("duplicate card found: %s", card)
		}
		seen[card] = true
	}
	return nil
}

func displayResults(hole, board []poker.Card, opponents int, estimator *poker.Estimator) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("hole"), handStyle.Render(poker.FormatCards(hole)))
	if len(board) > 0 {
		fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("board"), handStyle.Render(poker.FormatCards(board)))
	}

	bucket := poker.CategorizeHoleCards(hole[0], hole[1])
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("class"), categoryStyle.Render(string(bucket)))

	all := append(append([]poker.Card{}, hole...), board...)
	if len(all) >= 5 {
		if eval, ok := poker.BestHandCards(all); ok {
			fmt.Fprintf(w, "%s\t%s %s\n",
				headerStyle.Render("best"),
				handStyle.Render(eval.Name),
				categoryStyle.Render(tiebreakString(eval)))
		}
	} else {
		strength := poker.PreflopStrength(cardTokens(hole))
		fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("preflop"),
			winStyle.Render(fmt.Sprintf("%.1f%%", strength*100)))
	}

	prob := estimator.WinProbability(poker.Estimate{
		HoleCards:  cardTokens(hole),
		BoardCards: cardTokens(board),
		Opponents:  opponents,
	})
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("win"),
		winStyle.Render(fmt.Sprintf("%.1f%% vs %d opponent(s)", prob*100, opponents)))

	w.Flush()
}

func tiebreakString(eval poker.Evaluation) string {
	parts := make([]string, len(eval.Tiebreak))
	for i, rank := range eval.Tiebreak {
		parts[i] = poker.Rank(rank).String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func cardTokens(cards []poker.Card) []string {
	tokens := make([]string, len(cards))
	for i, card := range cards {
		tokens[i] = card.String()
	}
	return tokens
}
