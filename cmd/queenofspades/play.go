package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/lox/queenofspades/internal/game"
	"github.com/lox/queenofspades/internal/randutil"
)

type PlayCmd struct {
	Players       int    `kong:"default='4',help='Number of players (1-52)'"`
	Deterministic bool   `kong:"help='Use the fixed shuffle so every game starts from the same deal'"`
	Seed          int64  `kong:"help='Seed for the draws (0 for random)'"`
	Verbose       bool   `kong:"short='V',help='Show every active hand after each turn'"`
	ShowRing      bool   `kong:"help='Show the draw ring after each elimination'"`
	LogHands      bool   `kong:"help='Also log every active hand through the logger'"`
	HistoryDir    string `kong:"help='Write a game transcript to this directory'"`
	Quiet         bool   `kong:"short='q',help='Only print the result'"`
}

func (c *PlayCmd) Run(g *Globals) error {
	logger, err := setupLogger(g.LogLevel, "")
	if err != nil {
		return err
	}
	setupColor(g.NoColor, logger)

	seed := c.Seed
	if seed == 0 {
		seed = randutil.Seed()
	}

	opts := game.FormattingOptions{ShowHands: c.Verbose, ShowRing: c.ShowRing}
	var observers game.Observers
	if !c.Quiet {
		observers = append(observers, game.NewDisplay(os.Stdout, opts))
	}
	var ring *ringPrinter
	if c.ShowRing && !c.Quiet {
		ring = &ringPrinter{ef: game.NewEventFormatter(opts)}
		observers = append(observers, ring)
	}

	var history *game.History
	if c.HistoryDir != "" {
		history = game.NewHistory(uuid.NewString(), seed, time.Now(), game.NewFileHistoryWriter(c.HistoryDir))
		observers = append(observers, history)
	}

	gm, err := game.New(game.Options{
		Players:              c.Players,
		DeterministicShuffle: c.Deterministic,
		Rand:                 randutil.New(seed),
		Verbose:              c.LogHands,
		Logger:               logger,
		Observer:             observers,
	})
	if err != nil {
		return err
	}
	if ring != nil {
		ring.game = gm
	}

	result := gm.Play()

	if c.Quiet {
		fmt.Print(game.NewEventFormatter(opts).FormatGameOver(result))
	}
	fmt.Printf("Replay with: --players %d --seed %d", c.Players, seed)
	if c.Deterministic {
		fmt.Print(" --deterministic")
	}
	fmt.Println()

	if history != nil {
		if err := history.SaveToFile(); err != nil {
			return fmt.Errorf("saving history: %w", err)
		}
		logger.Info("Wrote game history", "dir", c.HistoryDir, "game_id", history.GameID)
	}
	return nil
}

// ringPrinter shows who draws from whom each time the ring changes
type ringPrinter struct {
	game.NopObserver
	ef   *game.EventFormatter
	game *game.Game
}

func (r *ringPrinter) OnElimination(int, int) {
	if r.game == nil {
		return
	}
	fmt.Println(r.ef.FormatRing(r.game.Ring()))
}
