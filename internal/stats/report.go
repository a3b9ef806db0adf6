package stats

import (
	"fmt"

	"daktylos/internal/model"
)

// Report renders a one line summary of a fingerprint run for CLI output.
func Report(summary model.RunSummary) string {
	if len(summary.Scores) == 0 {
		return fmt.Sprintf("strategy=%s probe=%s points=0", summary.Strategy, summary.Probe)
	}

	low := summary.Scores[0]
	high := summary.Scores[0]
	total := 0.0
	for _, score := range summary.Scores {
		if score < low {
			low = score
		}
		if score > high {
			high = score
		}
		total += score
	}
	mean := total / float64(len(summary.Scores))

	return fmt.Sprintf("strategy=%s probe=%s points=%d min=%.4f mean=%.4f max=%.4f",
		summary.Strategy, summary.Probe, len(summary.Scores), low, mean, high)
}
