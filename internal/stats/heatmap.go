package stats

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
)

// ErrShapeMismatch reports a score slice whose length does not fill the
// square grid implied by the probe step.
var ErrShapeMismatch = errors.New("score count does not match grid shape")

const heatmapCellSize = 24

// Matrix folds a row of scores in generation order into a side by side grid,
// where side is 1/step rounded down. The slice must fill the grid exactly;
// steps that do not divide the unit interval evenly produce more probe
// points than the square holds and are rejected rather than truncated.
func Matrix(values []float64, step float64) ([][]float64, error) {
	if step <= 0 || step > 1 {
		return nil, fmt.Errorf("step must be in (0, 1], got %g", step)
	}
	side := int(1 / step)
	if len(values) != side*side {
		return nil, fmt.Errorf("%w: got %d values, want %d for side %d", ErrShapeMismatch, len(values), side*side, side)
	}

	matrix := make([][]float64, side)
	for i := range matrix {
		matrix[i] = append([]float64(nil), values[i*side:(i+1)*side]...)
	}
	return matrix, nil
}

// WriteHeatmapSVG renders the matrix as an SVG grid of colored cells. Scale
// names a color ramp, "seismic" (blue through white to red) or "grayscale";
// empty means seismic. Cell colors interpolate linearly between the matrix
// minimum and maximum.
func WriteHeatmapSVG(path string, matrix [][]float64, scale string) error {
	if scale == "" {
		scale = "seismic"
	}
	if scale != "seismic" && scale != "grayscale" {
		return fmt.Errorf("unsupported color scale: %s", scale)
	}
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return fmt.Errorf("heatmap matrix is empty")
	}

	rows := len(matrix)
	cols := len(matrix[0])
	for i, row := range matrix {
		if len(row) != cols {
			return fmt.Errorf("heatmap row %d has %d cells, want %d", i, len(row), cols)
		}
	}

	low, high := matrixRange(matrix)
	span := high - low

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		cols*heatmapCellSize, rows*heatmapCellSize, cols*heatmapCellSize, rows*heatmapCellSize)
	b.WriteByte('\n')
	for r, row := range matrix {
		for c, value := range row {
			t := 0.5
			if span > 0 {
				t = (value - low) / span
			}
			fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
				c*heatmapCellSize, r*heatmapCellSize, heatmapCellSize, heatmapCellSize, cellColor(scale, t))
			b.WriteByte('\n')
		}
	}
	b.WriteString("</svg>\n")

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func matrixRange(matrix [][]float64) (float64, float64) {
	low := math.Inf(1)
	high := math.Inf(-1)
	for _, row := range matrix {
		for _, value := range row {
			if value < low {
				low = value
			}
			if value > high {
				high = value
			}
		}
	}
	return low, high
}

func cellColor(scale string, t float64) string {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	if scale == "grayscale" {
		v := int(math.Round(255 * t))
		return fmt.Sprintf("#%02x%02x%02x", v, v, v)
	}
	// Diverging ramp with white at the midpoint.
	if t < 0.5 {
		v := int(math.Round(510 * t))
		return fmt.Sprintf("#%02x%02xff", v, v)
	}
	v := int(math.Round(510 * (1 - t)))
	return fmt.Sprintf("#ff%02x%02x", v, v)
}
