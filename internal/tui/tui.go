// Package tui implements the interactive odds explorer.
package tui

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerodds/poker"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	redSuitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	blackSuitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// Model is the Bubble Tea model for the odds explorer. The user types hole
// and board cards into a single input; the first two cards are the hole
// cards and the remainder is the board.
type Model struct {
	cardInput textinput.Model
	estimator *poker.Estimator
	logger    *log.Logger
	rng       *rand.Rand

	opponents int
	quitting  bool
}

// New creates an explorer model.
func New(logger *log.Logger, cal poker.Calibration, rng *rand.Rand) *Model {
	ti := textinput.New()
	ti.Placeholder = "AsKh Td7s8h (hole cards first, then board)"
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 48
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)

	return &Model{
		cardInput: ti,
		estimator: poker.NewEstimator(cal),
		logger:    logger.WithPrefix("explorer"),
		rng:       rng,
		opponents: 1,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key input.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "+", "=":
			if m.opponents < 9 {
				m.opponents++
			}
			return m, nil
		case "-", "_":
			if m.opponents > 1 {
				m.opponents--
			}
			return m, nil
		case "ctrl+d":
			m.dealRandom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.cardInput, cmd = m.cardInput.Update(msg)
	return m, cmd
}

// dealRandom fills the input with a random hole+board from a fresh deck.
func (m *Model) dealRandom() {
	deck := poker.NewDeck(m.rng)
	cards := deck.Deal(7)
	if cards == nil {
		return
	}
	var sb strings.Builder
	for i, card := range cards {
		if i == 2 {
			sb.WriteByte(' ')
		}
		sb.WriteString(card.String())
	}
	m.cardInput.SetValue(sb.String())
	m.cardInput.CursorEnd()
}

// View renders the explorer.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(" ♠ ♥ odds explorer ♦ ♣ "))
	sb.WriteString("\n\n")
	sb.WriteString(m.cardInput.View())
	sb.WriteString("\n\n")
	sb.WriteString(m.renderEvaluation())
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("+/- opponents · ctrl+d deal · esc quit"))
	sb.WriteString("\n")
	return sb.String()
}

func (m *Model) renderEvaluation() string {
	cards, err := poker.ParseCards(m.cardInput.Value())
	if err != nil {
		if strings.TrimSpace(m.cardInput.Value()) == "" {
			return helpStyle.Render("enter cards to see odds")
		}
		return errorStyle.Render(fmt.Sprintf("parse error: %v", err))
	}
	if len(cards) < 2 {
		return helpStyle.Render("enter at least two hole cards")
	}

	hole, board := cards[:2], cards[2:]
	if len(board) > 5 {
		return errorStyle.Render("board cannot have more than 5 cards")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  %s", labelStyle.Render("hole"), renderCards(hole))
	if len(board) > 0 {
		fmt.Fprintf(&sb, "\n%s %s", labelStyle.Render("board"), renderCards(board))
	}
	sb.WriteString("\n")

	bucket := poker.CategorizeHoleCards(hole[0], hole[1])
	fmt.Fprintf(&sb, "%s %s\n", labelStyle.Render("class"), string(bucket))

	if len(cards) >= 5 && len(cards) <= 7 {
		if eval, ok := poker.BestHandCards(cards); ok {
			fmt.Fprintf(&sb, "%s  %s\n", labelStyle.Render("best"), handStyle.Render(eval.Name))
		}
	}

	est := poker.Estimate{
		HoleCards:  tokens(hole),
		BoardCards: tokens(board),
		Opponents:  m.opponents,
	}
	prob := m.estimator.WinProbability(est)
	fmt.Fprintf(&sb, "%s   %s vs %d opponent(s)\n",
		labelStyle.Render("win"),
		winStyle.Render(fmt.Sprintf("%.1f%%", prob*100)),
		m.opponents)

	return sb.String()
}

func renderCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		style := blackSuitStyle
		if card.Suit.IsRed() {
			style = redSuitStyle
		}
		parts[i] = style.Render(card.String())
	}
	return strings.Join(parts, " ")
}

func tokens(cards []poker.Card) []string {
	out := make([]string, len(cards))
	for i, card := range cards {
		out[i] = card.String()
	}
	return out
}
