package storage

import (
	"context"
	"path/filepath"
	"testing"

	"daktylos/internal/model"
)

func TestBadgerStoreInteractionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewBadgerStoreInMemory()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	input := []model.InteractionRecord{
		{Source: 0, Target: 2, Repetition: 0, SourceMoves: "CCDC", TargetMoves: "CDCC"},
		{Source: 1, Target: 2, Repetition: 0, SourceMoves: "DDDD", TargetMoves: "CCCC"},
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
		if record.Source != input[i].Source || record.Target != input[i].Target || record.Repetition != input[i].Repetition {
			t.Fatalf("record %d out of order: %+v", i, record)
		}
	}
}

func TestBadgerStorePreservesWriteOrder(t *testing.T) {
	ctx := context.Background()
	store := NewBadgerStoreInMemory()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	// Enough writes that lexicographic ordering of unpadded keys
	// would shuffle the readback.
	const writes = 15
	for i := 0; i < writes; i++ {
		record := Stamp(model.InteractionRecord{Source: 0, Target: 2, Repetition: i, SourceMoves: "C", TargetMoves: "C"})
		if err := store.WriteInteraction(ctx, record); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}

	output, err := store.ReadAllInteractions(ctx)
	if err != nil {
		t.Fatalf("read interactions: %v", err)
	}
	if len(output) != writes {
		t.Fatalf("expected %d records, got %d", writes, len(output))
	}
	for i, record := range output {
		if record.Repetition != i {
			t.Fatalf("record %d out of order: repetition=%d", i, record.Repetition)
		}
	}
}

func TestBadgerStoreRequiresInit(t *testing.T) {
	ctx := context.Background()
	store := NewBadgerStore(filepath.Join(t.TempDir(), "badger"))

	if err := store.WriteInteraction(ctx, Stamp(model.InteractionRecord{Source: 0, Target: 2})); err == nil {
		t.Fatal("expected error writing before init")
	}
}

func TestBadgerStoreRequiresPath(t *testing.T) {
	ctx := context.Background()
	store := NewBadgerStore("")

	if err := store.Init(ctx); err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestBadgerStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "badger")

	first := NewBadgerStore(dir)
	if err := first.Init(ctx); err != nil {
		t.Fatalf("first init: %v", err)
	}
	record := Stamp(model.InteractionRecord{Source: 0, Target: 2, Repetition: 0, SourceMoves: "CC", TargetMoves: "CC"})
	if err := first.WriteInteraction(ctx, record); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}

	second := NewBadgerStore(dir)
	if err := second.Init(ctx); err != nil {
		t.Fatalf("second init: %v", err)
	}
	t.Cleanup(func() {
		_ = second.Close()
	})

	if err := second.WriteInteraction(ctx, Stamp(model.InteractionRecord{Source: 1, Target: 2, Repetition: 0, SourceMoves: "DD", TargetMoves: "DD"})); err != nil {
		t.Fatalf("second write: %v", err)
	}

	loaded, err := second.ReadAllInteractions(ctx)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 interactions after reopen, got %d", len(loaded))
	}
	if loaded[0].SourceMoves != "CC" || loaded[1].SourceMoves != "DD" {
		t.Fatalf("unexpected order after reopen: %+v", loaded)
	}
}

func TestBadgerStoreHonorsContextCancellation(t *testing.T) {
	store := NewBadgerStoreInMemory()
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.WriteInteraction(ctx, Stamp(model.InteractionRecord{Source: 0, Target: 2})); err == nil {
		t.Fatal("expected context error on write")
	}
	if _, err := store.ReadAllInteractions(ctx); err == nil {
		t.Fatal("expected context error on read")
	}
}
