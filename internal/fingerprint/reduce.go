package fingerprint

import (
	"errors"
	"fmt"

	"daktylos/internal/game"
	"daktylos/internal/model"
	"daktylos/internal/tournament"
)

var ErrMissingRecords = errors.New("missing interaction records")

// Result is the fingerprint artifact: one mean score per grid point, in
// generation order. Immutable once produced.
type Result struct {
	Step   float64
	Points []model.Point
	Scores []float64
}

// Score returns the score associated with a grid point.
func (r *Result) Score(pt model.Point) (float64, bool) {
	for i, p := range r.Points {
		if p == pt {
			return r.Scores[i], true
		}
	}
	return 0, false
}

// Reduce turns raw interaction records into per-point mean scores. For the
// edge at position i the statistic is the mean, across repetitions, of the
// source side's final score per turn. The source is always the strategy under
// test or its dual and never the probe, so every score reads as "what the
// fingerprinted strategy earned against this probe". An edge with missing,
// duplicated, or out of range repetitions fails rather than defaulting.
func Reduce(records []model.InteractionRecord, points []model.Point, edges []tournament.Edge, repetitions int, g game.Game) (*Result, error) {
	if len(points) != len(edges) {
		return nil, fmt.Errorf("point and edge counts differ: %d vs %d", len(points), len(edges))
	}
	if repetitions <= 0 {
		return nil, fmt.Errorf("repetitions must be > 0")
	}

	type pairing struct {
		source, target int
	}
	byEdge := make(map[pairing][]model.InteractionRecord, len(edges))
	for _, record := range records {
		k := pairing{source: record.Source, target: record.Target}
		byEdge[k] = append(byEdge[k], record)
	}

	scores := make([]float64, len(edges))
	for i, edge := range edges {
		group := byEdge[pairing{source: edge.Source, target: edge.Target}]
		if len(group) != repetitions {
			return nil, fmt.Errorf("%w: %v vs %v has %d of %d repetitions",
				ErrMissingRecords, Slot(edge.Source), Slot(edge.Target), len(group), repetitions)
		}

		seen := make(map[int]bool, repetitions)
		total := 0.0
		for _, record := range group {
			if record.Repetition < 0 || record.Repetition >= repetitions || seen[record.Repetition] {
				return nil, fmt.Errorf("%w: %v vs %v repetition %d out of sequence",
					ErrMissingRecords, Slot(edge.Source), Slot(edge.Target), record.Repetition)
			}
			seen[record.Repetition] = true

			sourceScore, _, err := game.FinalScorePerTurn(g, record.SourceMoves, record.TargetMoves)
			if err != nil {
				return nil, fmt.Errorf("score %v vs %v repetition %d: %w",
					Slot(edge.Source), Slot(edge.Target), record.Repetition, err)
			}
			total += sourceScore
		}
		scores[i] = total / float64(repetitions)
	}

	return &Result{
		Points: append([]model.Point(nil), points...),
		Scores: scores,
	}, nil
}
