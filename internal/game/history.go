package game

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lox/queenofspades/internal/fileutil"
)

// HistoryWriter persists finished game transcripts
type HistoryWriter interface {
	WriteHistory(gameID string, content string) error
}

// FileHistoryWriter writes game history to files
type FileHistoryWriter struct {
	directory string
}

// NewFileHistoryWriter creates a new file-based history writer
func NewFileHistoryWriter(directory string) *FileHistoryWriter {
	return &FileHistoryWriter{directory: directory}
}

// WriteHistory writes the transcript to game_<id>.txt in the directory
func (w *FileHistoryWriter) WriteHistory(gameID string, content string) error {
	if err := os.MkdirAll(w.directory, 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	filename := filepath.Join(w.directory, fmt.Sprintf("game_%s.txt", gameID))
	if err := fileutil.WriteFileAtomic(filename, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

// NoOpHistoryWriter discards every transcript
type NoOpHistoryWriter struct{}

// WriteHistory does nothing
func (NoOpHistoryWriter) WriteHistory(string, string) error {
	return nil
}

// History records a game as it is played. Attach it as the game's Observer
// (or forward events to it) and call SaveToFile once the game is over.
type History struct {
	GameID    string
	Seed      int64
	StartTime time.Time

	Initial      []Hand
	InitialPairs int
	Turns        []TurnEvent
	Eliminations []Elimination
	Result       *Result

	writer HistoryWriter
}

// Elimination records when a player left the ring
type Elimination struct {
	Player int
	Turn   int
}

// NewHistory creates an empty history. A nil writer discards the transcript.
func NewHistory(gameID string, seed int64, start time.Time, writer HistoryWriter) *History {
	if writer == nil {
		writer = NoOpHistoryWriter{}
	}
	return &History{
		GameID:    gameID,
		Seed:      seed,
		StartTime: start,
		writer:    writer,
	}
}

func (h *History) OnDeal(hands []Hand, pairs int) {
	h.Initial = hands
	h.InitialPairs = pairs
}

func (h *History) OnTurn(event TurnEvent) {
	// Hand snapshots are only needed for live display
	event.Hands = nil
	h.Turns = append(h.Turns, event)
}

func (h *History) OnElimination(player, turn int) {
	h.Eliminations = append(h.Eliminations, Elimination{Player: player, Turn: turn})
}

func (h *History) OnGameOver(result Result) {
	h.Result = &result
}

// GenerateHistoryText renders the full transcript
func (h *History) GenerateHistoryText() string {
	var b strings.Builder
	ef := NewEventFormatter(FormattingOptions{})

	fmt.Fprintf(&b, "=== GAME %s ===\n", h.GameID)
	fmt.Fprintf(&b, "Date: %s\n", h.StartTime.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Seed: %d\n", h.Seed)
	fmt.Fprintf(&b, "Players: %d\n\n", len(h.Initial))

	b.WriteString("AFTER INITIAL DISCARD:\n")
	all := make([]int, len(h.Initial))
	for i := range all {
		all[i] = i
	}
	b.WriteString(ef.FormatHands(h.Initial, all))
	fmt.Fprintf(&b, "\nPairs discarded: %d\n\n", h.InitialPairs)

	if len(h.Turns) > 0 {
		b.WriteString("TURNS:\n")
	}
	next := 0
	for _, e := range h.Eliminations {
		if e.Turn == 0 {
			b.WriteString(ef.FormatElimination(e.Player, e.Turn) + "\n")
			next++
		}
	}
	for _, turn := range h.Turns {
		b.WriteString(ef.FormatTurn(turn) + "\n")
		for next < len(h.Eliminations) && h.Eliminations[next].Turn <= turn.Turn {
			e := h.Eliminations[next]
			b.WriteString(ef.FormatElimination(e.Player, e.Turn) + "\n")
			next++
		}
	}
	for ; next < len(h.Eliminations); next++ {
		e := h.Eliminations[next]
		b.WriteString(ef.FormatElimination(e.Player, e.Turn) + "\n")
	}

	if h.Result != nil {
		b.WriteString("\n")
		b.WriteString(ef.FormatGameOver(*h.Result))
	}
	return b.String()
}

// SaveToFile saves the history using the configured writer
func (h *History) SaveToFile() error {
	return h.writer.WriteHistory(h.GameID, h.GenerateHistoryText())
}

var _ Observer = (*History)(nil)
