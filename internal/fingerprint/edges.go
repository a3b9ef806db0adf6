package fingerprint

import (
	"daktylos/internal/model"
	"daktylos/internal/tournament"
)

// Edges builds the pairing list for the tournament engine. The probe for
// points[i] sits at slot i+2 and plays the original strategy, except when the
// point's components sum above 1, in which case it plays the dual. Exact
// equality pairs with the original. Output order matches input order.
func Edges(points []model.Point) []tournament.Edge {
	edges := make([]tournament.Edge, len(points))
	for i, pt := range points {
		source := SlotOriginal
		if pt.X+pt.Y > 1 {
			source = SlotDual
		}
		edges[i] = tournament.Edge{Source: source.Index(), Target: ProbeSlot(i).Index()}
	}
	return edges
}
