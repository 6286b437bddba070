// Package strategy contains automatic players for simulations.
// Strategies are pure: they look at a snapshot and name a move.
package strategy

import "github.com/example/encore/internal/core/performance"

// MaxPlaysPerRound stops a strategy from looping on techniques that refill the hand.
const MaxPlaysPerRound = 30

// Move is a decision: play Index, or pass when Pass is set.
type Move struct {
	Pass  bool
	Index int
}

// Greedy plays the most expensive technique it can afford and passes when none is
// affordable or the round already saw MaxPlaysPerRound plays.
func Greedy(snap performance.Snapshot) Move {
	if snap.PlayedThisRound >= MaxPlaysPerRound {
		return Move{Pass: true}
	}

	best := -1
	for i, t := range snap.Hand {
		if !performance.CanPlayTechnique(performance.PlayContextFor(snap, i)).Allowed {
			continue
		}
		if best < 0 || t.Cost > snap.Hand[best].Cost {
			best = i
		}
	}

	if best < 0 {
		return Move{Pass: true}
	}
	return Move{Index: best}
}
