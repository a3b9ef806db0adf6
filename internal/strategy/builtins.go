package strategy

import (
	"errors"
	"math/rand"

	"daktylos/internal/game"
)

type Cooperator struct{}

func (Cooperator) Name() string { return "Cooperator" }

func (Cooperator) Play(_, _ []game.Action, _ *rand.Rand) game.Action {
	return game.Cooperate
}

type Defector struct{}

func (Defector) Name() string { return "Defector" }

func (Defector) Play(_, _ []game.Action, _ *rand.Rand) game.Action {
	return game.Defect
}

// TitForTat opens with cooperation and then repeats the opponent's last move.
type TitForTat struct{}

func (TitForTat) Name() string { return "TitForTat" }

func (TitForTat) Play(_, opp []game.Action, _ *rand.Rand) game.Action {
	if len(opp) == 0 {
		return game.Cooperate
	}
	return opp[len(opp)-1]
}

// Alternator opens with cooperation and then flips its own previous move.
type Alternator struct{}

func (Alternator) Name() string { return "Alternator" }

func (Alternator) Play(own, _ []game.Action, _ *rand.Rand) game.Action {
	if len(own) == 0 {
		return game.Cooperate
	}
	return own[len(own)-1].Flip()
}

// Random cooperates with probability P on every turn.
type Random struct {
	P float64
}

func (Random) Name() string { return "Random" }

func (r Random) Play(_, _ []game.Action, rng *rand.Rand) game.Action {
	if rng.Float64() < r.P {
		return game.Cooperate
	}
	return game.Defect
}

// Cycler replays a fixed move sequence forever.
type Cycler struct {
	Moves []game.Action
}

// NewCycler builds a Cycler from an encoded move string such as "CCD".
func NewCycler(encoded string) (Cycler, error) {
	moves, err := game.ParseMoves(encoded)
	if err != nil {
		return Cycler{}, err
	}
	if len(moves) == 0 {
		return Cycler{}, errors.New("cycle is required")
	}
	return Cycler{Moves: moves}, nil
}

func (Cycler) Name() string { return "Cycler" }

func (c Cycler) Play(own, _ []game.Action, _ *rand.Rand) game.Action {
	return c.Moves[len(own)%len(c.Moves)]
}

// ThueMorse cooperates on turns where the Thue-Morse sequence is 1.
type ThueMorse struct{}

func (ThueMorse) Name() string { return "ThueMorse" }

func (ThueMorse) Play(own, _ []game.Action, _ *rand.Rand) game.Action {
	if game.ThueMorse(len(own)) == 1 {
		return game.Cooperate
	}
	return game.Defect
}

// CycleHunter cooperates until the opponent's play settles into a short
// cycle, then defects for the rest of the match.
type CycleHunter struct {
	MinRounds int
	MaxCycle  int
}

func (CycleHunter) Name() string { return "CycleHunter" }

func (h CycleHunter) Play(_, opp []game.Action, _ *rand.Rand) game.Action {
	minRounds := h.MinRounds
	if minRounds <= 0 {
		minRounds = 10
	}
	maxCycle := h.MaxCycle
	if maxCycle <= 0 {
		maxCycle = 12
	}
	if len(opp) >= minRounds {
		if _, ok := game.DetectCycle(opp, 1, maxCycle, 0); ok {
			return game.Defect
		}
	}
	return game.Cooperate
}
