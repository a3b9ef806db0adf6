package game

import (
	"errors"
	"fmt"
)

// Game is the symmetric two-player payoff matrix. R rewards mutual
// cooperation, P punishes mutual defection, T and S are the temptation and
// sucker payoffs when exactly one side defects.
type Game struct {
	R int
	S int
	T int
	P int
}

// Classic returns the standard prisoner's dilemma payoffs.
func Classic() Game {
	return Game{R: 3, S: 0, T: 5, P: 1}
}

// Score returns both players' payoffs for a single round.
func (g Game) Score(a, b Action) (int, int) {
	switch {
	case a == Cooperate && b == Cooperate:
		return g.R, g.R
	case a == Cooperate && b == Defect:
		return g.S, g.T
	case a == Defect && b == Cooperate:
		return g.T, g.S
	default:
		return g.P, g.P
	}
}

// FinalScorePerTurn scores two encoded move sequences against each other and
// normalizes each side's total by the number of turns played.
func FinalScorePerTurn(g Game, sourceMoves, targetMoves string) (float64, float64, error) {
	source, err := ParseMoves(sourceMoves)
	if err != nil {
		return 0, 0, fmt.Errorf("source moves: %w", err)
	}
	target, err := ParseMoves(targetMoves)
	if err != nil {
		return 0, 0, fmt.Errorf("target moves: %w", err)
	}
	if len(source) != len(target) {
		return 0, 0, fmt.Errorf("move counts differ: source %d, target %d", len(source), len(target))
	}
	if len(source) == 0 {
		return 0, 0, errors.New("no moves to score")
	}

	var sourceTotal, targetTotal int
	for i := range source {
		a, b := g.Score(source[i], target[i])
		sourceTotal += a
		targetTotal += b
	}
	turns := float64(len(source))
	return float64(sourceTotal) / turns, float64(targetTotal) / turns, nil
}
