package game

import "fmt"

// Action is a single move in the repeated game.
type Action uint8

const (
	Cooperate Action = iota
	Defect
)

func (a Action) String() string {
	if a == Cooperate {
		return "C"
	}
	return "D"
}

// Flip returns the opposite action.
func (a Action) Flip() Action {
	if a == Cooperate {
		return Defect
	}
	return Cooperate
}

// MovesString encodes a move sequence as a compact string like "CCDC".
func MovesString(moves []Action) string {
	encoded := make([]byte, len(moves))
	for i, move := range moves {
		if move == Cooperate {
			encoded[i] = 'C'
		} else {
			encoded[i] = 'D'
		}
	}
	return string(encoded)
}

// ParseMoves decodes a string produced by MovesString.
func ParseMoves(encoded string) ([]Action, error) {
	moves := make([]Action, len(encoded))
	for i := 0; i < len(encoded); i++ {
		switch encoded[i] {
		case 'C':
			moves[i] = Cooperate
		case 'D':
			moves[i] = Defect
		default:
			return nil, fmt.Errorf("invalid move %q at position %d", encoded[i], i)
		}
	}
	return moves, nil
}
