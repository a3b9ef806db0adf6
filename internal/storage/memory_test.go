package storage

import (
	"context"
	"testing"

	"daktylos/internal/model"
)

func TestMemoryStoreWriteReadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	input := []model.InteractionRecord{
		{Source: 0, Target: 2, Repetition: 0, SourceMoves: "CC", TargetMoves: "CD"},
		{Source: 1, Target: 2, Repetition: 0, SourceMoves: "DD", TargetMoves: "CC"},
		{Source: 0, Target: 3, Repetition: 1, SourceMoves: "CD", TargetMoves: "DC"},
	}
	for _, record := range input {
		if err := store.WriteInteraction(ctx, Stamp(record)); err != nil {
			t.Fatalf("write interaction: %v", err)
		}
	}

	output, err := store.ReadAllInteractions(ctx)
	if err != nil {
		t.Fatalf("read interactions: %v", err)
	}
	if len(output) != len(input) {
		t.Fatalf("expected %d records, got %d", len(input), len(output))
	}
	for i, record := range output {
		if record.Source != input[i].Source || record.Target != input[i].Target {
			t.Fatalf("record %d out of order: %+v", i, record)
		}
	}
}

func TestMemoryStoreReadIsACopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	if err := store.WriteInteraction(ctx, Stamp(model.InteractionRecord{Source: 0, Target: 2, SourceMoves: "C", TargetMoves: "C"})); err != nil {
		t.Fatalf("write interaction: %v", err)
	}

	first, err := store.ReadAllInteractions(ctx)
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	first[0].SourceMoves = "D"

	second, err := store.ReadAllInteractions(ctx)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if second[0].SourceMoves != "C" {
		t.Fatalf("stored record mutated through returned slice: %+v", second[0])
	}
}

func TestMemoryStoreInitResets(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	if err := store.WriteInteraction(ctx, Stamp(model.InteractionRecord{Source: 0, Target: 2, SourceMoves: "C", TargetMoves: "C"})); err != nil {
		t.Fatalf("write interaction: %v", err)
	}
	if err := store.Init(ctx); err != nil {
		t.Fatalf("second init: %v", err)
	}

	output, err := store.ReadAllInteractions(ctx)
	if err != nil {
		t.Fatalf("read interactions: %v", err)
	}
	if len(output) != 0 {
		t.Fatalf("expected empty store after reinit, got %d records", len(output))
	}
}
