package strategy

import (
	"fmt"
	"math/rand"

	"daktylos/internal/game"
)

// JossAnn mixes fixed moves into a base player: each turn it cooperates with
// probability P, defects with probability Q, and otherwise plays the base
// player's proposed move (on the first turn, the base player's opening).
// Pairs with P+Q > 1 are normalized by their sum; P+Q == 1 leaves no
// probability mass for the base player at all.
type JossAnn struct {
	P    float64
	Q    float64
	Base game.Player
}

func (j JossAnn) Name() string {
	return fmt.Sprintf("JossAnn(%g,%g)/%s", j.P, j.Q, j.Base.Name())
}

func (j JossAnn) Play(own, opp []game.Action, rng *rand.Rand) game.Action {
	p, q := j.P, j.Q
	if sum := p + q; sum > 1 {
		p, q = p/sum, q/sum
	}
	draw := rng.Float64()
	switch {
	case draw < p:
		return game.Cooperate
	case draw < p+q:
		return game.Defect
	default:
		return j.Base.Play(own, opp, rng)
	}
}

// Dual plays the exact complement of its base player. The base player is
// consulted with the complemented own-history, so the dual behaves as if the
// base had played the whole match and every one of its moves were flipped.
// Wrapping twice restores the base behavior.
type Dual struct {
	Base game.Player
}

func (d Dual) Name() string {
	return "Dual/" + d.Base.Name()
}

func (d Dual) Play(own, opp []game.Action, rng *rand.Rand) game.Action {
	shadow := make([]game.Action, len(own))
	for i, move := range own {
		shadow[i] = move.Flip()
	}
	return d.Base.Play(shadow, opp, rng).Flip()
}
