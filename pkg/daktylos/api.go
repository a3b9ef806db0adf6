// Package daktylos is the embedding API for running Ashlock fingerprints:
// construct a Client once, then Run named strategies against probe grids.
package daktylos

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"daktylos/internal/fingerprint"
	"daktylos/internal/model"
	"daktylos/internal/stats"
	"daktylos/internal/storage"
	"daktylos/internal/strategy"
)

const (
	defaultTurns       = 50
	defaultRepetitions = 10
	defaultStep        = 0.01
	defaultWorkers     = 4
)

// Options configure a Client. The zero value keeps interaction records in
// memory, logs through slog.Default and writes no artifacts.
type Options struct {
	Logger    *slog.Logger
	StoreKind string
	StorePath string
	KeepStore bool
	OutDir    string
}

type Client struct {
	logger    *slog.Logger
	storeKind string
	storePath string
	keepStore bool
	outDir    string
}

// Request names the strategy to fingerprint and the run parameters. Zero
// numeric fields fall back to the package defaults, an empty probe to tit
// for tat, and an empty scale to the seismic color ramp.
type Request struct {
	Strategy    string
	Probe       string
	Turns       int
	Repetitions int
	Step        float64
	Workers     int
	Seed        int64
	Scale       string
}

// RunSummary reports one completed fingerprint run. ArtifactsDir is empty
// when the client was built without an output directory.
type RunSummary struct {
	Record       model.RunSummary
	ArtifactsDir string
}

func New(opts Options) (*Client, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	// Stores are acquired per run; this only rejects an unusable backend.
	if _, err := storage.NewStore(opts.StoreKind, opts.StorePath); err != nil {
		return nil, err
	}

	return &Client{
		logger:    opts.Logger,
		storeKind: opts.StoreKind,
		storePath: opts.StorePath,
		keepStore: opts.KeepStore,
		outDir:    opts.OutDir,
	}, nil
}

// Run fingerprints the requested strategy and, when the client has an output
// directory, writes the run's artifacts there.
func (c *Client) Run(ctx context.Context, req Request) (RunSummary, error) {
	if req.Strategy == "" {
		return RunSummary{}, errors.New("strategy is required")
	}
	if req.Probe == "" {
		req.Probe = "TitForTat"
	}
	if req.Turns <= 0 {
		req.Turns = defaultTurns
	}
	if req.Repetitions <= 0 {
		req.Repetitions = defaultRepetitions
	}
	if req.Step <= 0 {
		req.Step = defaultStep
	}
	if req.Workers <= 0 {
		req.Workers = defaultWorkers
	}

	player, err := strategy.New(req.Strategy)
	if err != nil {
		return RunSummary{}, err
	}
	probe, err := strategy.New(req.Probe)
	if err != nil {
		return RunSummary{}, err
	}

	fp, err := fingerprint.New(player, probe)
	if err != nil {
		return RunSummary{}, err
	}
	result, err := fp.Run(ctx, fingerprint.RunConfig{
		Turns:       req.Turns,
		Repetitions: req.Repetitions,
		Step:        req.Step,
		Workers:     req.Workers,
		Seed:        req.Seed,
		StoreKind:   c.storeKind,
		StorePath:   c.storePath,
		Keep:        c.keepStore,
		Logger:      c.logger,
	})
	if err != nil {
		return RunSummary{}, err
	}

	record := storage.StampSummary(model.RunSummary{
		RunID:       stats.NewRunID(player.Name(), probe.Name()),
		Strategy:    player.Name(),
		Probe:       probe.Name(),
		Turns:       req.Turns,
		Repetitions: req.Repetitions,
		Step:        result.Step,
		Seed:        req.Seed,
		Points:      result.Points,
		Scores:      result.Scores,
	})

	summary := RunSummary{Record: record}
	if c.outDir == "" {
		return summary, nil
	}

	runDir, err := stats.WriteRunArtifacts(c.outDir, record, req.Scale)
	if err != nil {
		return RunSummary{}, err
	}
	summary.ArtifactsDir = filepath.Clean(runDir)
	return summary, nil
}

// Strategies lists the registered strategy names.
func Strategies() []string {
	return strategy.Names()
}
