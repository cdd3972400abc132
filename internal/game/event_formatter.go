package game

import (
	"fmt"
	"strings"
)

// FormattingOptions controls how events are formatted for different contexts
type FormattingOptions struct {
	ShowHands bool // Append every active hand to turn lines (verbose play)
	ShowRing  bool // Append the draw ring after eliminations
}

// EventFormatter provides centralized formatting for all game events
type EventFormatter struct {
	opts FormattingOptions
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	return &EventFormatter{opts: opts}
}

// FormatDeal formats the state after the deal and initial discard
func (ef *EventFormatter) FormatDeal(hands []Hand, pairs int) string {
	cards := 0
	for _, h := range hands {
		cards += len(h)
	}
	return fmt.Sprintf("Dealt to %d players • %d pairs discarded • %d cards in play",
		len(hands), pairs, cards)
}

// FormatTurn formats a single draw into a human-readable line
func (ef *EventFormatter) FormatTurn(event TurnEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Turn %d: Player %d draws %s from Player %d",
		event.Turn, event.Player, event.Card, event.Source)

	if len(event.Discarded) > 0 {
		b.WriteString(", discards ")
		b.WriteString(ef.formatPairs(event.Discarded))
	}

	if ef.opts.ShowHands {
		b.WriteString("\n")
		b.WriteString(ef.FormatHands(event.Hands, event.Active))
	}
	return b.String()
}

// FormatElimination formats a player leaving the ring
func (ef *EventFormatter) FormatElimination(player, turn int) string {
	return fmt.Sprintf("Player %d is out of cards (turn %d)", player, turn)
}

// FormatRing formats the current draw order, or "" when ShowRing is off
func (ef *EventFormatter) FormatRing(r Ring) string {
	if !ef.opts.ShowRing {
		return ""
	}
	return "Ring: " + r.String()
}

// FormatHands lists the given players' hands, one per line
func (ef *EventFormatter) FormatHands(hands []Hand, players []int) string {
	lines := make([]string, 0, len(players))
	for _, p := range players {
		if p < 0 || p >= len(hands) {
			continue
		}
		lines = append(lines, fmt.Sprintf("  Player %d: [%s]", p, hands[p]))
	}
	return strings.Join(lines, "\n")
}

// FormatGameOver formats the final result
func (ef *EventFormatter) FormatGameOver(result Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Game Complete (%d turns) ===\n", result.Turns)
	if result.HasWinner() {
		fmt.Fprintf(&b, "Winner: Player %d\n", result.Winner)
	} else {
		b.WriteString("Winner: none\n")
	}
	if result.Loser != NoPlayer {
		fmt.Fprintf(&b, "Loser: Player %d (holds the queen of spades)\n", result.Loser)
	}
	return b.String()
}

func (ef *EventFormatter) formatPairs(pairs []Pair) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("[%s %s]", p[0], p[1])
	}
	return strings.Join(parts, " ")
}
