// Package fingerprint computes Ashlock fingerprints: a strategy is played
// against a grid of joss-ann probes over the unit square and each grid point
// receives the strategy side's mean score per turn, giving a two-dimensional
// behavioral profile of the strategy.
package fingerprint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"daktylos/internal/game"
	"daktylos/internal/storage"
	"daktylos/internal/strategy"
	"daktylos/internal/tournament"
)

// The conventional probe archetype. Probing with tit for tat sweeps the
// full range of reactive behavior as (p, q) varies.
var defaultProbe game.Player = strategy.TitForTat{}

type Fingerprinter struct {
	strategy game.Player
	probe    game.Player
}

// New prepares a fingerprint of strategy using the joss-ann family of probe
// as the probe archetype. A nil probe selects tit for tat.
func New(strategy, probe game.Player) (*Fingerprinter, error) {
	if strategy == nil {
		return nil, errors.New("strategy is required")
	}
	if probe == nil {
		probe = defaultProbe
	}
	return &Fingerprinter{strategy: strategy, probe: probe}, nil
}

// TournamentElements derives the pairing list and roster for a run at the
// given grid step, without playing anything.
func (f *Fingerprinter) TournamentElements(step float64) ([]tournament.Edge, Roster, error) {
	if step <= 0 || step > 1 {
		return nil, Roster{}, fmt.Errorf("step must be in (0, 1], got %g", step)
	}
	points := Points(step)
	return Edges(points), NewRoster(f.strategy, Probes(f.probe, points)), nil
}

// RunConfig controls one fingerprint run. StoreKind selects where interaction
// records live while the tournament plays: empty or "memory" keeps them in
// process, "sqlite" or "badger" spills them to a durable store and reads them
// back before reduction. A durable kind with no StorePath gets a private
// temporary location that is removed on every exit path unless Keep is set;
// caller-named paths are always retained.
type RunConfig struct {
	Turns       int
	Repetitions int
	Step        float64
	Workers     int
	Seed        int64
	StoreKind   string
	StorePath   string
	Keep        bool
	Logger      *slog.Logger
}

func (cfg RunConfig) validate() error {
	if cfg.Turns <= 0 {
		return fmt.Errorf("turns must be > 0")
	}
	if cfg.Repetitions <= 0 {
		return fmt.Errorf("repetitions must be > 0")
	}
	if cfg.Step <= 0 || cfg.Step > 1 {
		return fmt.Errorf("step must be in (0, 1], got %g", cfg.Step)
	}
	return nil
}

// Run plays the full probe grid against the strategy and reduces the outcome.
// Engine and store failures propagate unmodified; nothing is retried.
func (f *Fingerprinter) Run(ctx context.Context, cfg RunConfig) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	points := Points(cfg.Step)
	edges := Edges(points)
	roster := NewRoster(f.strategy, Probes(f.probe, points))

	store, cleanup, err := acquireStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	engine, err := tournament.NewEngine(tournament.Config{
		Players:     roster.Players(),
		Edges:       edges,
		Turns:       cfg.Turns,
		Repetitions: cfg.Repetitions,
		Workers:     cfg.Workers,
		Seed:        cfg.Seed,
		Store:       store,
		Logger:      cfg.Logger,
	})
	if err != nil {
		return nil, err
	}
	if err := engine.Run(ctx); err != nil {
		return nil, err
	}

	records, err := store.ReadAllInteractions(ctx)
	if err != nil {
		return nil, err
	}

	result, err := Reduce(records, points, edges, cfg.Repetitions, game.Classic())
	if err != nil {
		return nil, err
	}
	result.Step = cfg.Step
	return result, nil
}

// acquireStore opens the interaction store for a run and returns the cleanup
// to invoke once reduction is done. Temporary stores exist before the engine
// starts so a failing run still has something to remove.
func acquireStore(ctx context.Context, cfg RunConfig) (storage.Store, func(), error) {
	if cfg.StoreKind == "" || cfg.StoreKind == "memory" {
		store := storage.NewMemoryStore()
		if err := store.Init(ctx); err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}

	path := cfg.StorePath
	tempDir := ""
	if path == "" {
		tempDir = filepath.Join(os.TempDir(), "daktylos-"+uuid.New().String())
		if err := os.MkdirAll(tempDir, 0o750); err != nil {
			return nil, nil, fmt.Errorf("create temp store directory: %w", err)
		}
		path = tempDir
		if cfg.StoreKind == "sqlite" {
			path = filepath.Join(tempDir, "interactions.db")
		}
	}

	store, err := storage.NewStore(cfg.StoreKind, path)
	if err != nil {
		if tempDir != "" {
			_ = os.RemoveAll(tempDir)
		}
		return nil, nil, err
	}
	if err := store.Init(ctx); err != nil {
		if tempDir != "" {
			_ = os.RemoveAll(tempDir)
		}
		return nil, nil, err
	}

	cleanup := func() {
		if err := storage.CloseIfSupported(store); err != nil {
			cfg.Logger.Warn("close interaction store", slog.String("error", err.Error()))
		}
		if tempDir == "" {
			return
		}
		if cfg.Keep {
			cfg.Logger.Info("interaction store retained", slog.String("path", path))
			return
		}
		if err := os.RemoveAll(tempDir); err != nil {
			cfg.Logger.Warn("remove temp interaction store", slog.String("path", tempDir), slog.String("error", err.Error()))
		}
	}
	return store, cleanup, nil
}
