package tournament

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"daktylos/internal/game"
	"daktylos/internal/model"
	"daktylos/internal/storage"
)

// Edge pairs two roster slots for a series of repeated matches. Players are
// addressed by index into the configured roster.
type Edge struct {
	Source int
	Target int
}

type Config struct {
	Players     []game.Player
	Edges       []Edge
	Turns       int
	Repetitions int
	Workers     int
	Seed        int64
	Store       storage.Store
	Logger      *slog.Logger
}

type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) (*Engine, error) {
	if len(cfg.Players) < 2 {
		return nil, fmt.Errorf("at least two players are required")
	}
	if len(cfg.Edges) == 0 {
		return nil, fmt.Errorf("at least one edge is required")
	}
	for i, edge := range cfg.Edges {
		if edge.Source < 0 || edge.Source >= len(cfg.Players) {
			return nil, fmt.Errorf("edge %d source out of range: %d", i, edge.Source)
		}
		if edge.Target < 0 || edge.Target >= len(cfg.Players) {
			return nil, fmt.Errorf("edge %d target out of range: %d", i, edge.Target)
		}
	}
	if cfg.Turns <= 0 {
		return nil, fmt.Errorf("turns must be > 0")
	}
	if cfg.Repetitions <= 0 {
		return nil, fmt.Errorf("repetitions must be > 0")
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Engine{cfg: cfg}, nil
}

// Run plays every edge for the configured number of repetitions and writes one
// interaction record per match. Matches run across the worker pool, but all
// records are written by this goroutine after play completes, in edge-major
// order, so the store sees a single writer and a deterministic record order.
func (e *Engine) Run(ctx context.Context) error {
	type job struct {
		idx  int
		edge Edge
		rep  int
	}
	type result struct {
		idx    int
		record model.InteractionRecord
		err    error
	}

	total := len(e.cfg.Edges) * e.cfg.Repetitions
	jobs := make(chan job)
	results := make(chan result, total)

	workerCount := e.cfg.Workers
	if workerCount > total {
		workerCount = total
	}

	var wg sync.WaitGroup
	wg.Add(workerCount)
	for w := 0; w < workerCount; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				if err := ctx.Err(); err != nil {
					results <- result{idx: j.idx, err: err}
					continue
				}

				record, err := e.playMatch(j.edge, j.rep, j.idx)
				results <- result{idx: j.idx, record: record, err: err}
			}
		}()
	}

	for i, edge := range e.cfg.Edges {
		for rep := 0; rep < e.cfg.Repetitions; rep++ {
			jobs <- job{idx: i*e.cfg.Repetitions + rep, edge: edge, rep: rep}
		}
	}
	close(jobs)

	wg.Wait()
	close(results)

	records := make([]model.InteractionRecord, total)
	for res := range results {
		if res.err != nil {
			return res.err
		}
		records[res.idx] = res.record
	}

	for _, record := range records {
		if err := e.cfg.Store.WriteInteraction(ctx, record); err != nil {
			return fmt.Errorf("write interaction %d-%d repetition %d: %w", record.Source, record.Target, record.Repetition, err)
		}
	}

	e.cfg.Logger.Debug("tournament complete",
		slog.Int("edges", len(e.cfg.Edges)),
		slog.Int("repetitions", e.cfg.Repetitions),
		slog.Int("matches", total))
	return nil
}

// playMatch seeds each match from its job index, not from the worker, so the
// outcome is independent of pool size and scheduling.
func (e *Engine) playMatch(edge Edge, rep, idx int) (model.InteractionRecord, error) {
	rng := rand.New(rand.NewSource(e.cfg.Seed + int64(idx)))
	match := game.Match{Turns: e.cfg.Turns}

	interaction, err := match.Play(e.cfg.Players[edge.Source], e.cfg.Players[edge.Target], rng)
	if err != nil {
		return model.InteractionRecord{}, fmt.Errorf("play edge %d-%d repetition %d: %w", edge.Source, edge.Target, rep, err)
	}

	return storage.Stamp(model.InteractionRecord{
		Source:      edge.Source,
		Target:      edge.Target,
		Repetition:  rep,
		SourceMoves: game.MovesString(interaction.SourceMoves),
		TargetMoves: game.MovesString(interaction.TargetMoves),
	}), nil
}
