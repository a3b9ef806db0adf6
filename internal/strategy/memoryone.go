package strategy

import (
	"math/rand"

	"daktylos/internal/game"
)

// MemoryOne plays a fixed opening and then randomizes on the previous
// round's joint outcome: CC, CD, DC and DD are the probabilities of
// cooperating after each (own, opponent) move pair.
type MemoryOne struct {
	Label   string
	Opening game.Action
	CC      float64
	CD      float64
	DC      float64
	DD      float64
}

func (m MemoryOne) Name() string {
	if m.Label != "" {
		return m.Label
	}
	return "MemoryOne"
}

func (m MemoryOne) Play(own, opp []game.Action, rng *rand.Rand) game.Action {
	if len(own) == 0 {
		return m.Opening
	}
	var p float64
	ownLast, oppLast := own[len(own)-1], opp[len(opp)-1]
	switch {
	case ownLast == game.Cooperate && oppLast == game.Cooperate:
		p = m.CC
	case ownLast == game.Cooperate && oppLast == game.Defect:
		p = m.CD
	case ownLast == game.Defect && oppLast == game.Cooperate:
		p = m.DC
	default:
		p = m.DD
	}
	// Degenerate probabilities stay deterministic and never touch the
	// random source.
	if p >= 1 {
		return game.Cooperate
	}
	if p <= 0 {
		return game.Defect
	}
	if rng.Float64() < p {
		return game.Cooperate
	}
	return game.Defect
}

// ZDGTFT2 is the generous zero-determinant response: always cooperate after
// opponent cooperation, forgive defection with probability 1/8 after own
// cooperation and 1/4 after mutual defection.
func ZDGTFT2() MemoryOne {
	return MemoryOne{
		Label:   "ZDGTFT2",
		Opening: game.Cooperate,
		CC:      1,
		CD:      1.0 / 8,
		DC:      1,
		DD:      1.0 / 4,
	}
}

// WinStayLoseShift repeats its move after a good outcome and switches after
// a bad one.
func WinStayLoseShift() MemoryOne {
	return MemoryOne{
		Label:   "WinStayLoseShift",
		Opening: game.Cooperate,
		CC:      1,
		CD:      0,
		DC:      0,
		DD:      1,
	}
}

// SwitchingZD alternates fixed-length blocks between plain tit for tat and
// the generous zero-determinant response.
type SwitchingZD struct {
	Block int
}

func (SwitchingZD) Name() string { return "SwitchingZD" }

func (s SwitchingZD) Play(own, opp []game.Action, rng *rand.Rand) game.Action {
	if len(own) == 0 {
		return game.Cooperate
	}
	block := s.Block
	if block <= 0 {
		block = 30
	}
	if (len(own)/block)%2 == 0 {
		return opp[len(opp)-1]
	}
	return ZDGTFT2().Play(own, opp, rng)
}
