package game

import (
	"errors"
	"fmt"
	"math/rand"
)

// Player selects a move each turn given both players' full histories so far.
// The first move is the player's response to empty histories. Implementations
// draw randomness only from the supplied source; deterministic players may
// ignore it, and may be called with a nil source.
type Player interface {
	Name() string
	Play(own, opp []Action, rng *rand.Rand) Action
}

// Interaction holds both move sequences of a completed match, source side
// first.
type Interaction struct {
	SourceMoves []Action
	TargetMoves []Action
}

// Match plays a fixed number of simultaneous-move turns between two players.
type Match struct {
	Turns int
}

// Play runs the match to completion. Both moves of a turn are chosen before
// either history is extended. The same random source drives both players, so
// a fixed seed fixes the outcome.
func (m Match) Play(source, target Player, rng *rand.Rand) (Interaction, error) {
	if source == nil || target == nil {
		return Interaction{}, errors.New("both players are required")
	}
	if m.Turns <= 0 {
		return Interaction{}, fmt.Errorf("turns must be > 0, got %d", m.Turns)
	}

	sourceMoves := make([]Action, 0, m.Turns)
	targetMoves := make([]Action, 0, m.Turns)
	for turn := 0; turn < m.Turns; turn++ {
		a := source.Play(sourceMoves, targetMoves, rng)
		b := target.Play(targetMoves, sourceMoves, rng)
		sourceMoves = append(sourceMoves, a)
		targetMoves = append(targetMoves, b)
	}
	return Interaction{SourceMoves: sourceMoves, TargetMoves: targetMoves}, nil
}
