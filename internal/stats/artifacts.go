package stats

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"daktylos/internal/model"
	"daktylos/internal/storage"
)

const runIndexFile = "run_index.json"

// RunIndexEntry is one row of the run_index.json ledger kept next to the
// per-run artifact directories.
type RunIndexEntry struct {
	RunID        string  `json:"run_id"`
	Strategy     string  `json:"strategy"`
	Probe        string  `json:"probe"`
	Turns        int     `json:"turns"`
	Repetitions  int     `json:"repetitions"`
	Step         float64 `json:"step"`
	Seed         int64   `json:"seed"`
	Points       int     `json:"points"`
	CreatedAtUTC string  `json:"created_at_utc"`
}

// NewRunID builds a filesystem-safe run identifier from the strategy and
// probe names plus a short random suffix.
func NewRunID(strategy, probe string) string {
	return sanitizeID(strategy) + "-" + sanitizeID(probe) + "-" + uuid.New().String()[:8]
}

// WriteRunArtifacts writes one fingerprint run into its own directory under
// baseDir and records it in the run index. It emits fingerprint.json (the
// versioned summary), fingerprint.csv (x, y, score rows) and heatmap.svg
// rendered with the given color scale (empty means seismic), and returns the
// run directory.
func WriteRunArtifacts(baseDir string, summary model.RunSummary, scale string) (string, error) {
	if summary.RunID == "" {
		return "", fmt.Errorf("run id is required")
	}
	if len(summary.Points) != len(summary.Scores) {
		return "", fmt.Errorf("points and scores length mismatch: %d vs %d", len(summary.Points), len(summary.Scores))
	}

	matrix, err := Matrix(summary.Scores, summary.Step)
	if err != nil {
		return "", err
	}

	runDir := filepath.Join(baseDir, summary.RunID)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", err
	}

	summary = storage.StampSummary(summary)
	if err := writeJSON(filepath.Join(runDir, "fingerprint.json"), summary); err != nil {
		return "", err
	}
	if err := WriteScoreCSV(filepath.Join(runDir, "fingerprint.csv"), summary.Points, summary.Scores); err != nil {
		return "", err
	}
	if err := WriteHeatmapSVG(filepath.Join(runDir, "heatmap.svg"), matrix, scale); err != nil {
		return "", err
	}

	entry := RunIndexEntry{
		RunID:        summary.RunID,
		Strategy:     summary.Strategy,
		Probe:        summary.Probe,
		Turns:        summary.Turns,
		Repetitions:  summary.Repetitions,
		Step:         summary.Step,
		Seed:         summary.Seed,
		Points:       len(summary.Points),
		CreatedAtUTC: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := AppendRunIndex(baseDir, entry); err != nil {
		return "", err
	}
	return runDir, nil
}

// ReadRunSummary loads a fingerprint.json written by WriteRunArtifacts.
func ReadRunSummary(path string) (model.RunSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.RunSummary{}, err
	}
	return storage.DecodeRunSummary(data)
}

func AppendRunIndex(baseDir string, entry RunIndexEntry) error {
	if entry.RunID == "" {
		return fmt.Errorf("run id is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return err
	}

	index, err := ListRunIndex(baseDir)
	if err != nil {
		return err
	}

	for i := range index {
		if index[i].RunID == entry.RunID {
			index[i] = entry
			return writeJSON(filepath.Join(baseDir, runIndexFile), index)
		}
	}

	index = append(index, entry)
	return writeJSON(filepath.Join(baseDir, runIndexFile), index)
}

func ListRunIndex(baseDir string) ([]RunIndexEntry, error) {
	path := filepath.Join(baseDir, runIndexFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunIndexEntry{}, nil
		}
		return nil, err
	}

	var entries []RunIndexEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	type indexedEntry struct {
		entry RunIndexEntry
		idx   int
	}
	indexed := make([]indexedEntry, len(entries))
	for i := range entries {
		indexed[i] = indexedEntry{entry: entries[i], idx: i}
	}
	sort.Slice(indexed, func(i, j int) bool {
		if indexed[i].entry.CreatedAtUTC == indexed[j].entry.CreatedAtUTC {
			// Prefer later appended entries for equal timestamps.
			return indexed[i].idx > indexed[j].idx
		}
		return indexed[i].entry.CreatedAtUTC > indexed[j].entry.CreatedAtUTC
	})

	sorted := make([]RunIndexEntry, 0, len(indexed))
	for _, item := range indexed {
		sorted = append(sorted, item.entry)
	}
	return sorted, nil
}

// WriteScoreCSV writes one x, y, score row per probe point.
func WriteScoreCSV(path string, points []model.Point, scores []float64) error {
	if len(points) != len(scores) {
		return fmt.Errorf("points and scores length mismatch: %d vs %d", len(points), len(scores))
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"x", "y", "score"}); err != nil {
		return err
	}
	for i, pt := range points {
		if err := writer.Write([]string{
			strconv.FormatFloat(pt.X, 'f', -1, 64),
			strconv.FormatFloat(pt.Y, 'f', -1, 64),
			strconv.FormatFloat(scores[i], 'f', -1, 64),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

func sanitizeID(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	id := strings.TrimSuffix(b.String(), "-")
	if id == "" {
		return "unnamed"
	}
	return id
}
