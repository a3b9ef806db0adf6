package storage

import (
	"context"

	"daktylos/internal/model"
)

// Store collects interaction records produced by a tournament run and hands
// them back for reduction. The tournament engine is the only writer and
// reading happens strictly after play completes, so implementations never
// see a reader and a writer at the same time.
type Store interface {
	Init(ctx context.Context) error
	WriteInteraction(ctx context.Context, record model.InteractionRecord) error
	ReadAllInteractions(ctx context.Context) ([]model.InteractionRecord, error)
}
