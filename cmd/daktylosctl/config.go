package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"daktylos/pkg/daktylos"
)

func loadOrDefaultRunRequest(configPath string) (daktylos.Request, error) {
	if configPath == "" {
		return daktylos.Request{}, nil
	}
	req, err := loadRunRequestFromConfig(configPath)
	if err != nil {
		return daktylos.Request{}, fmt.Errorf("load config: %w", err)
	}
	return req, nil
}

func loadRunRequestFromConfig(path string) (daktylos.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return daktylos.Request{}, err
	}
	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return daktylos.Request{}, err
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return daktylos.Request{}, err
		}
	}

	var req daktylos.Request
	if v, ok := asString(raw["strategy"]); ok {
		req.Strategy = v
	}
	if v, ok := asString(raw["probe"]); ok {
		req.Probe = v
	}
	if v, ok := asInt(raw["turns"]); ok {
		req.Turns = v
	}
	if v, ok := asInt(raw["repetitions"]); ok {
		req.Repetitions = v
	}
	if v, ok := asFloat64(raw["step"]); ok {
		req.Step = v
	}
	if v, ok := asInt(raw["workers"]); ok {
		req.Workers = v
	}
	if v, ok := asInt64(raw["seed"]); ok {
		req.Seed = v
	}
	if v, ok := asString(raw["scale"]); ok {
		req.Scale = v
	}
	return req, nil
}

func overrideRunRequestFromFlags(req *daktylos.Request, set map[string]bool, flagValue map[string]any) error {
	for name := range set {
		v, ok := flagValue[name]
		if !ok {
			continue
		}
		switch name {
		case "strategy":
			req.Strategy = v.(string)
		case "probe":
			req.Probe = v.(string)
		case "turns":
			req.Turns = v.(int)
		case "repetitions":
			req.Repetitions = v.(int)
		case "step":
			req.Step = v.(float64)
		case "workers":
			req.Workers = v.(int)
		case "seed":
			req.Seed = v.(int64)
		case "scale":
			req.Scale = v.(string)
		}
	}
	return nil
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	}
	return 0, false
}

func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
