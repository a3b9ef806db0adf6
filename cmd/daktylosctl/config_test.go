package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"daktylos/pkg/daktylos"
)

func TestLoadRunRequestFromConfigJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run_config.json")
	payload := map[string]any{
		"strategy":    "zdgtft",
		"probe":       "random",
		"turns":       12,
		"repetitions": 3,
		"step":        0.25,
		"workers":     2,
		"seed":        99,
		"scale":       "grayscale",
	}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	req, err := loadRunRequestFromConfig(path)
	if err != nil {
		t.Fatalf("load run request: %v", err)
	}
	if req.Strategy != "zdgtft" || req.Probe != "random" {
		t.Fatalf("unexpected base fields: %+v", req)
	}
	if req.Turns != 12 || req.Repetitions != 3 || req.Workers != 2 {
		t.Fatalf("unexpected match fields: %+v", req)
	}
	if req.Step != 0.25 || req.Seed != 99 || req.Scale != "grayscale" {
		t.Fatalf("unexpected sweep fields: %+v", req)
	}
}

func TestLoadRunRequestFromConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run_config.yaml")
	payload := "strategy: cycler\nturns: 8\nstep: 0.5\nseed: 7\n"
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	req, err := loadRunRequestFromConfig(path)
	if err != nil {
		t.Fatalf("load run request: %v", err)
	}
	if req.Strategy != "cycler" || req.Turns != 8 || req.Step != 0.5 || req.Seed != 7 {
		t.Fatalf("unexpected yaml fields: %+v", req)
	}
	if req.Probe != "" || req.Repetitions != 0 {
		t.Fatalf("expected unset fields to stay zero, got %+v", req)
	}
}

func TestLoadOrDefaultRunRequestEmptyPath(t *testing.T) {
	req, err := loadOrDefaultRunRequest("")
	if err != nil {
		t.Fatalf("load default request: %v", err)
	}
	if req != (daktylos.Request{}) {
		t.Fatalf("expected zero request, got %+v", req)
	}
}

func TestLoadOrDefaultRunRequestMissingFile(t *testing.T) {
	_, err := loadOrDefaultRunRequest(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("expected load config error, got %v", err)
	}
}

func TestOverrideRunRequestFromFlagsAppliesOnlySetFlags(t *testing.T) {
	req := daktylos.Request{Strategy: "cooperator", Turns: 30, Step: 0.5}
	set := map[string]bool{"strategy": true, "seed": true}
	err := overrideRunRequestFromFlags(&req, set, map[string]any{
		"strategy": "defector",
		"turns":    99,
		"seed":     int64(5),
	})
	if err != nil {
		t.Fatalf("override request: %v", err)
	}
	if req.Strategy != "defector" || req.Seed != 5 {
		t.Fatalf("expected set flags applied, got %+v", req)
	}
	if req.Turns != 30 || req.Step != 0.5 {
		t.Fatalf("expected unset flags ignored, got %+v", req)
	}
}
