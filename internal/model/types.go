package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// Point is a probe coordinate in the unit square.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type InteractionRecord struct {
	VersionedRecord
	Source      int    `json:"source"`
	Target      int    `json:"target"`
	Repetition  int    `json:"repetition"`
	SourceMoves string `json:"source_moves"`
	TargetMoves string `json:"target_moves"`
}

type RunSummary struct {
	VersionedRecord
	RunID       string    `json:"run_id"`
	Strategy    string    `json:"strategy"`
	Probe       string    `json:"probe"`
	Turns       int       `json:"turns"`
	Repetitions int       `json:"repetitions"`
	Step        float64   `json:"step"`
	Seed        int64     `json:"seed"`
	Points      []Point   `json:"points"`
	Scores      []float64 `json:"scores"`
}
