package fingerprint

import (
	"daktylos/internal/game"
	"daktylos/internal/model"
	"daktylos/internal/strategy"
)

// Canonicalize folds the upper triangle of the unit square onto the lower
// one: a point whose components sum above 1 maps to (1-y, 1-x). The sum==1
// boundary stays unfolded, and applying the fold twice changes nothing.
func Canonicalize(pt model.Point) model.Point {
	if pt.X+pt.Y > 1 {
		return model.Point{X: 1 - pt.Y, Y: 1 - pt.X}
	}
	return pt
}

// Probes derives one probe player per grid point: the archetype wrapped in a
// joss-ann transform whose (p, q) pair is the canonicalized point. Order
// matches the input points.
func Probes(archetype game.Player, points []model.Point) []game.Player {
	probes := make([]game.Player, len(points))
	for i, pt := range points {
		c := Canonicalize(pt)
		probes[i] = strategy.JossAnn{P: c.X, Q: c.Y, Base: archetype}
	}
	return probes
}
