package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"daktylos/internal/model"
)

func TestDecodeInteractionFixture(t *testing.T) {
	record := decodeInteractionFixture(t, "minimal_interaction_v1.json")
	if record.Source != 0 || record.Target != 2 {
		t.Fatalf("unexpected edge: source=%d target=%d", record.Source, record.Target)
	}
	if record.SourceMoves != "CCDC" || record.TargetMoves != "CDCC" {
		t.Fatalf("unexpected moves: %q vs %q", record.SourceMoves, record.TargetMoves)
	}
}

func TestDecodeRunSummaryFixture(t *testing.T) {
	path := fixturePath("minimal_run_summary_v1.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	summary, err := DecodeRunSummary(data)
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	if summary.Strategy != "TitForTat" {
		t.Fatalf("unexpected strategy: %s", summary.Strategy)
	}
	if len(summary.Points) != 4 || len(summary.Scores) != 4 {
		t.Fatalf("unexpected grid size: points=%d scores=%d", len(summary.Points), len(summary.Scores))
	}
	if summary.Points[3] != (model.Point{X: 0.5, Y: 0.5}) {
		t.Fatalf("unexpected last point: %+v", summary.Points[3])
	}
}

func TestInteractionCodecRoundTrip(t *testing.T) {
	input := model.InteractionRecord{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		Source:          1,
		Target:          3,
		Repetition:      2,
		SourceMoves:     "CDCD",
		TargetMoves:     "DDCC",
	}

	encoded, err := EncodeInteraction(input)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := DecodeInteraction(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if !reflect.DeepEqual(decoded, input) {
		t.Fatalf("roundtrip mismatch\nactual=%+v\nexpected=%+v", decoded, input)
	}
}

func TestInteractionCodecRoundTripFixtureEquality(t *testing.T) {
	expected := decodeInteractionFixture(t, "minimal_interaction_v1.json")

	encoded, err := EncodeInteraction(expected)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	actual, err := DecodeInteraction(encoded)
	if err != nil {
		t.Fatalf("decode roundtrip: %v", err)
	}

	if !reflect.DeepEqual(actual, expected) {
		t.Fatalf("roundtrip mismatch\nactual=%+v\nexpected=%+v", actual, expected)
	}
}

func TestRunSummaryCodecRoundTrip(t *testing.T) {
	input := model.RunSummary{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		RunID:           "cooperator-titfortat-ab12cd34",
		Strategy:        "Cooperator",
		Probe:           "TitForTat",
		Turns:           50,
		Repetitions:     10,
		Step:            0.5,
		Seed:            7,
		Points:          []model.Point{{X: 0, Y: 0}, {X: 0, Y: 0.5}},
		Scores:          []float64{3, 2.25},
	}

	encoded, err := EncodeRunSummary(input)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := DecodeRunSummary(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if !reflect.DeepEqual(decoded, input) {
		t.Fatalf("roundtrip mismatch\nactual=%+v\nexpected=%+v", decoded, input)
	}
}

func TestStampFillsCurrentVersions(t *testing.T) {
	record := Stamp(model.InteractionRecord{Source: 0, Target: 2})
	if record.SchemaVersion != CurrentSchemaVersion || record.CodecVersion != CurrentCodecVersion {
		t.Fatalf("unexpected versions: %+v", record.VersionedRecord)
	}
}

func TestDecodeInteractionVersionMismatch(t *testing.T) {
	record := decodeInteractionFixture(t, "minimal_interaction_v1.json")
	record.CodecVersion++

	encoded, err := EncodeInteraction(record)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	_, err = DecodeInteraction(encoded)
	if !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got: %v", err)
	}
}

func TestDecodeRunSummaryVersionMismatch(t *testing.T) {
	summary := model.RunSummary{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion + 1, CodecVersion: CurrentCodecVersion},
		RunID:           "r1",
	}
	encoded, err := EncodeRunSummary(summary)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	_, err = DecodeRunSummary(encoded)
	if !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got: %v", err)
	}
}

func fixturePath(name string) string {
	return filepath.Join("..", "..", "testdata", "fixtures", name)
}

func decodeInteractionFixture(t *testing.T, name string) model.InteractionRecord {
	t.Helper()

	path := fixturePath(name)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	record, err := DecodeInteraction(data)
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}

	return record
}
