package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"daktylos/internal/fingerprint"
	"daktylos/internal/model"
	"daktylos/internal/stats"
	"daktylos/pkg/daktylos"
)

const artifactsDir = "runs"

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "fingerprint":
		return runFingerprint(ctx, args[1:])
	case "render":
		return runRender(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "strategies":
		return runStrategies(ctx, args[1:])
	case "profiles":
		return runProfiles(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func runFingerprint(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("fingerprint", flag.ContinueOnError)
	configPath := fs.String("config", "", "optional run config path, json or yaml by extension")
	profileName := fs.String("profile", "", "optional resolution preset: quick|standard|fine")
	strategyName := fs.String("strategy", "", "strategy under test (name or alias)")
	probeName := fs.String("probe", "TitForTat", "probe archetype (name or alias)")
	turns := fs.Int("turns", 50, "turns per match")
	repetitions := fs.Int("repetitions", 10, "repetitions per probe edge")
	step := fs.Float64("step", 0.01, "probe grid step in (0, 1]")
	workers := fs.Int("workers", 4, "worker count")
	seed := fs.Int64("seed", 1, "rng seed")
	storeKind := fs.String("store", "memory", "store backend: memory|sqlite|badger")
	storePath := fs.String("store-path", "daktylos.db", "store path for sqlite and badger backends")
	keepStore := fs.Bool("keep-store", false, "retain per-match interaction records after the run")
	outDir := fs.String("out", artifactsDir, "artifacts directory (empty disables artifact writes)")
	scale := fs.String("scale", "seismic", "heatmap color scale: seismic|grayscale")
	jsonOut := fs.Bool("json", false, "emit run summary as JSON")
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	setFlags := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = true
	})

	req, err := loadOrDefaultRunRequest(*configPath)
	if err != nil {
		return err
	}
	if *configPath == "" {
		req = daktylos.Request{
			Strategy:    *strategyName,
			Probe:       *probeName,
			Turns:       *turns,
			Repetitions: *repetitions,
			Step:        *step,
			Workers:     *workers,
			Seed:        *seed,
			Scale:       *scale,
		}
	} else {
		err := overrideRunRequestFromFlags(&req, setFlags, map[string]any{
			"strategy":    *strategyName,
			"probe":       *probeName,
			"turns":       *turns,
			"repetitions": *repetitions,
			"step":        *step,
			"workers":     *workers,
			"seed":        *seed,
			"scale":       *scale,
		})
		if err != nil {
			return err
		}
	}
	if *profileName != "" {
		preset, err := lookupProfile(*profileName)
		if err != nil {
			return err
		}
		req.Turns = preset.Turns
		req.Repetitions = preset.Repetitions
		req.Step = preset.Step
		req.Workers = preset.Workers
	}
	if req.Strategy == "" {
		return errors.New("fingerprint requires a strategy from -strategy or the config file")
	}

	client, err := daktylos.New(daktylos.Options{
		Logger:    newLogger(*verbose),
		StoreKind: *storeKind,
		StorePath: *storePath,
		KeepStore: *keepStore,
		OutDir:    *outDir,
	})
	if err != nil {
		return err
	}

	summary, err := client.Run(ctx, req)
	if err != nil {
		return err
	}
	if *jsonOut {
		out := struct {
			Run          model.RunSummary `json:"run"`
			ArtifactsDir string           `json:"artifacts_dir,omitempty"`
		}{Run: summary.Record, ArtifactsDir: summary.ArtifactsDir}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("fingerprint completed run_id=%s turns=%d repetitions=%d step=%g seed=%d\n",
		summary.Record.RunID,
		summary.Record.Turns,
		summary.Record.Repetitions,
		summary.Record.Step,
		summary.Record.Seed,
	)
	fmt.Println(stats.Report(summary.Record))
	if summary.ArtifactsDir != "" {
		fmt.Printf("artifacts_dir=%s\n", summary.ArtifactsDir)
	}
	return nil
}

func runRender(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	in := fs.String("in", "", "path to a saved fingerprint.json")
	outDir := fs.String("out", "", "output directory (defaults to the input file's directory)")
	scale := fs.String("scale", "seismic", "heatmap color scale: seismic|grayscale")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errors.New("render requires -in")
	}

	summary, err := stats.ReadRunSummary(*in)
	if err != nil {
		return err
	}
	matrix, err := stats.Matrix(summary.Scores, summary.Step)
	if err != nil {
		return err
	}
	dir := *outDir
	if dir == "" {
		dir = filepath.Dir(*in)
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := stats.WriteHeatmapSVG(filepath.Join(dir, "heatmap.svg"), matrix, *scale); err != nil {
		return err
	}
	if err := stats.WriteScoreCSV(filepath.Join(dir, "fingerprint.csv"), summary.Points, summary.Scores); err != nil {
		return err
	}

	fmt.Printf("rendered run_id=%s points=%d scale=%s out=%s\n", summary.RunID, len(summary.Scores), *scale, filepath.Clean(dir))
	return nil
}

func runRuns(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	dir := fs.String("dir", artifactsDir, "artifacts directory holding run_index.json")
	limit := fs.Int("limit", 20, "max runs to list")
	jsonOut := fs.Bool("json", false, "emit runs list as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *limit <= 0 {
		return errors.New("limit must be > 0")
	}

	entries, err := stats.ListRunIndex(*dir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	if len(entries) > *limit {
		entries = entries[:*limit]
	}
	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	for _, e := range entries {
		fmt.Printf("run_id=%s created_at=%s strategy=%s probe=%s turns=%d repetitions=%d step=%g seed=%d points=%d\n",
			e.RunID,
			e.CreatedAtUTC,
			e.Strategy,
			e.Probe,
			e.Turns,
			e.Repetitions,
			e.Step,
			e.Seed,
			e.Points,
		)
	}
	return nil
}

func runStrategies(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("strategies", flag.ContinueOnError)
	jsonOut := fs.Bool("json", false, "emit strategy names as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	names := daktylos.Strategies()
	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(names)
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func runProfiles(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("profiles", flag.ContinueOnError)
	jsonOut := fs.Bool("json", false, "emit profiles as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	profiles := listProfiles()
	if *jsonOut {
		type profileItem struct {
			ID          string  `json:"id"`
			Description string  `json:"description"`
			Turns       int     `json:"turns"`
			Repetitions int     `json:"repetitions"`
			Step        float64 `json:"step"`
			Workers     int     `json:"workers"`
			Points      int     `json:"points"`
		}
		items := make([]profileItem, 0, len(profiles))
		for _, p := range profiles {
			items = append(items, profileItem{
				ID:          p.ID,
				Description: p.Description,
				Turns:       p.Turns,
				Repetitions: p.Repetitions,
				Step:        p.Step,
				Workers:     p.Workers,
				Points:      len(fingerprint.Points(p.Step)),
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	for _, p := range profiles {
		fmt.Printf("profile=%s turns=%d repetitions=%d step=%g workers=%d points=%d description=%q\n",
			p.ID,
			p.Turns,
			p.Repetitions,
			p.Step,
			p.Workers,
			len(fingerprint.Points(p.Step)),
			p.Description,
		)
	}
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: daktylosctl <fingerprint|render|runs|strategies|profiles> [flags]", msg)
}
