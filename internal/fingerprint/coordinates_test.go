package fingerprint

import (
	"math"
	"testing"

	"daktylos/internal/model"
)

func TestPointsCountMatchesCeilRule(t *testing.T) {
	for _, step := range []float64{1, 0.5, 0.25, 0.2, 0.3, 0.1} {
		n := int(math.Ceil(1 / step))
		points := Points(step)
		if len(points) != n*n {
			t.Fatalf("step %g: expected %d points, got %d", step, n*n, len(points))
		}
		for _, pt := range points {
			if pt.X < 0 || pt.X >= 1 || pt.Y < 0 || pt.Y >= 1 {
				t.Fatalf("step %g: point outside [0,1): %+v", step, pt)
			}
		}
	}
}

func TestPointsRowMajorHalfStep(t *testing.T) {
	points := Points(0.5)
	want := []model.Point{
		{X: 0, Y: 0},
		{X: 0, Y: 0.5},
		{X: 0.5, Y: 0},
		{X: 0.5, Y: 0.5},
	}
	if len(points) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(points))
	}
	for i := range want {
		if points[i] != want[i] {
			t.Fatalf("point %d: got=%+v want=%+v", i, points[i], want[i])
		}
	}
}

func TestPointsDegenerateStep(t *testing.T) {
	points := Points(1)
	if len(points) != 1 || points[0] != (model.Point{}) {
		t.Fatalf("expected single origin point, got %+v", points)
	}
}

func TestPointsToleratesDrift(t *testing.T) {
	// ceil(1/0.3) is 4, so the top axis value is three additions of 0.3 and
	// lands just under 0.9 rather than on it.
	points := Points(0.3)
	if len(points) != 16 {
		t.Fatalf("expected 16 points, got %d", len(points))
	}
	last := points[len(points)-1]
	if last.X <= 0.89 || last.X >= 1 {
		t.Fatalf("unexpected top coordinate: %+v", last)
	}
}
