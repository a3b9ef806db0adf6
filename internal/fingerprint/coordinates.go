package fingerprint

import (
	"math"

	"daktylos/internal/model"
)

// Points enumerates the probe grid over the unit square in row-major order,
// outer loop on x. The per-axis count is ceil(1/step) and values come from
// repeated addition of step, so entries near the top of the range carry
// ordinary floating point drift; consumers tolerate the drift rather than
// rounding it away. A step at or above 1 degenerates to the single point
// (0,0). step must be positive.
func Points(step float64) []model.Point {
	n := axisCount(step)
	points := make([]model.Point, 0, n*n)
	x := 0.0
	for i := 0; i < n; i++ {
		y := 0.0
		for j := 0; j < n; j++ {
			points = append(points, model.Point{X: x, Y: y})
			y += step
		}
		x += step
	}
	return points
}

func axisCount(step float64) int {
	return int(math.Ceil(1 / step))
}
