package game

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/queenofspades/internal/deck"
)

// DisplayStyles contains styling for game display
type DisplayStyles struct {
	Header    lipgloss.Style
	Action    lipgloss.Style
	Discard   lipgloss.Style
	Out       lipgloss.Style
	Winner    lipgloss.Style
	Loser     lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Separator lipgloss.Style
}

// NewDisplayStyles creates a new set of display styles
func NewDisplayStyles() *DisplayStyles {
	return &DisplayStyles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true),
		Action: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Discard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Out: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Winner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Loser: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardRed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: lipgloss.NewStyle().
			Bold(true),
		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// Display renders a game to a terminal as it is played
type Display struct {
	out    io.Writer
	styles *DisplayStyles
	opts   FormattingOptions
	ef     *EventFormatter
}

// NewDisplay creates a display writing to out
func NewDisplay(out io.Writer, opts FormattingOptions) *Display {
	return &Display{
		out:    out,
		styles: NewDisplayStyles(),
		opts:   opts,
		ef:     NewEventFormatter(opts),
	}
}

func (d *Display) OnDeal(hands []Hand, pairs int) {
	fmt.Fprintln(d.out, d.styles.Header.Render("*** DEAL ***"))
	fmt.Fprintln(d.out, d.ef.FormatDeal(hands, pairs))
	for p, h := range hands {
		fmt.Fprintf(d.out, "  Player %d: %s\n", p, d.formatCards(h))
	}
	fmt.Fprintln(d.out)
}

func (d *Display) OnTurn(e TurnEvent) {
	line := fmt.Sprintf("Turn %d: Player %d draws %s from Player %d",
		e.Turn, e.Player, d.formatCard(e.Card), e.Source)
	fmt.Fprint(d.out, d.styles.Action.Render(line))
	if len(e.Discarded) > 0 {
		parts := make([]string, len(e.Discarded))
		for i, p := range e.Discarded {
			parts[i] = fmt.Sprintf("[%s %s]", p[0], p[1])
		}
		fmt.Fprint(d.out, d.styles.Discard.Render(", discards "+strings.Join(parts, " ")))
	}
	fmt.Fprintln(d.out)

	if d.opts.ShowHands {
		for _, p := range e.Active {
			fmt.Fprintf(d.out, "  Player %d: %s\n", p, d.formatCards(e.Hands[p]))
		}
	}
}

func (d *Display) OnElimination(player, turn int) {
	fmt.Fprintln(d.out, d.styles.Out.Render(d.ef.FormatElimination(player, turn)))
}

func (d *Display) OnGameOver(result Result) {
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, d.styles.Header.Render(fmt.Sprintf("*** GAME OVER • %d turns ***", result.Turns)))
	if result.HasWinner() {
		fmt.Fprintln(d.out, d.styles.Winner.Render(fmt.Sprintf("Winner: Player %d", result.Winner)))
	} else {
		fmt.Fprintln(d.out, d.styles.Winner.Render("Winner: none"))
	}
	if result.Loser != NoPlayer {
		fmt.Fprintln(d.out, d.styles.Loser.Render(fmt.Sprintf("Loser: Player %d", result.Loser)))
	}
	fmt.Fprintln(d.out, d.styles.Separator.Render(strings.Repeat("─", 30)))
}

func (d *Display) formatCard(c deck.Card) string {
	if c.IsRed() {
		return d.styles.CardRed.Render(c.String())
	}
	return d.styles.CardBlack.Render(c.String())
}

func (d *Display) formatCards(h Hand) string {
	if len(h) == 0 {
		return "[]"
	}
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = d.formatCard(c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

var _ Observer = (*Display)(nil)
