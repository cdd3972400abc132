// Package game implements the rules engine for Queen of Spades.
//
// A full deck is dealt out among the players. Each player discards the pairs they
// hold (rank only, suit does not matter), except that the queen of spades can
// never be discarded. Players then take turns drawing one random card from the
// player seated before them, discarding any pair it makes. A player whose hand
// empties is out, and the first one out wins. The game ends when only two
// cards remain, both queens in one hand including the queen of spades; that
// player loses.
//
// # Basic Usage
//
//	g, err := game.New(game.Options{Players: 4})
//	if err != nil {
//	    return err
//	}
//	result := g.Play()
//	fmt.Println(result.Winner, result.Loser, result.Turns)
//
// # Deterministic Testing
//
// Set DeterministicShuffle for a fixed deal, and pass an explicit source for
// the draws to replay a whole game:
//
//	g, _ := game.New(game.Options{
//	    Players:              4,
//	    DeterministicShuffle: true,
//	    Rand:                 randutil.New(42),
//	})
//
// # Architecture
//
// Game delegates to small pure pieces that can be tested on their own:
//   - DiscardPairs: the pair-discard rule with the protected card exception
//   - Rebuild/Ring: who each active player draws from
//   - IsQueenPair: the losing two-card hand
//
// The visiting sequence (whose nominal turn it is) is fixed at the start and
// is kept apart from the live ring, so eliminated players are skipped rather
// than removed from the rotation.
//
// # Observing Games
//
// Options.Observer receives the deal, every turn, eliminations and the final
// result. Display renders them to a terminal with lipgloss, History records a
// transcript that can be saved through a HistoryWriter, and Observers fans out
// to several at once.
//
// A Game is single-threaded and owns its hands exclusively. Independent
// games may run concurrently.
package game
