package strategy

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"daktylos/internal/game"
)

var (
	ErrStrategyExists   = errors.New("strategy already registered")
	ErrStrategyNotFound = errors.New("strategy not found")
)

// Factory builds a fresh player instance with default parameters.
type Factory func() game.Player

type registeredStrategy struct {
	display string
	factory Factory
}

var registry = struct {
	mu sync.RWMutex
	m  map[string]registeredStrategy
}{
	m: make(map[string]registeredStrategy),
}

// Normalize canonicalizes strategy names for lookup: case, spaces, hyphens
// and underscores are ignored, and a few common aliases resolve to their
// canonical strategy.
func Normalize(name string) string {
	normalized := strings.TrimSpace(strings.ToLower(name))
	normalized = strings.ReplaceAll(normalized, "_", "")
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.ReplaceAll(normalized, " ", "")
	switch normalized {
	case "tft":
		return "titfortat"
	case "wsls", "pavlov":
		return "winstayloseshift"
	case "allc":
		return "cooperator"
	case "alld":
		return "defector"
	case "zdgtft2", "zdgtft":
		return "zdgtft2"
	}
	return normalized
}

func Register(name string, factory Factory) error {
	if name == "" {
		return errors.New("strategy name is required")
	}
	if factory == nil {
		return errors.New("strategy factory is required")
	}

	key := Normalize(name)

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, exists := registry.m[key]; exists {
		return fmt.Errorf("%w: %s", ErrStrategyExists, name)
	}
	registry.m[key] = registeredStrategy{display: name, factory: factory}
	return nil
}

// New instantiates a registered strategy by name or alias.
func New(name string) (game.Player, error) {
	registry.mu.RLock()
	entry, ok := registry.m[Normalize(name)]
	registry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStrategyNotFound, name)
	}
	return entry.factory(), nil
}

// Names lists registered strategies by display name, sorted.
func Names() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	names := make([]string, 0, len(registry.m))
	for _, entry := range registry.m {
		names = append(names, entry.display)
	}
	sort.Strings(names)
	return names
}

func init() {
	registerDefaultStrategies()
}

func registerDefaultStrategies() {
	defaults := []struct {
		name    string
		factory Factory
	}{
		{"Cooperator", func() game.Player { return Cooperator{} }},
		{"Defector", func() game.Player { return Defector{} }},
		{"TitForTat", func() game.Player { return TitForTat{} }},
		{"Alternator", func() game.Player { return Alternator{} }},
		{"Random", func() game.Player { return Random{P: 0.5} }},
		{"Cycler", func() game.Player { return Cycler{Moves: []game.Action{game.Cooperate, game.Cooperate, game.Defect}} }},
		{"ThueMorse", func() game.Player { return ThueMorse{} }},
		{"CycleHunter", func() game.Player { return CycleHunter{} }},
		{"WinStayLoseShift", func() game.Player { return WinStayLoseShift() }},
		{"ZDGTFT2", func() game.Player { return ZDGTFT2() }},
		{"SwitchingZD", func() game.Player { return SwitchingZD{} }},
	}
	for _, d := range defaults {
		if err := Register(d.name, d.factory); err != nil {
			panic(err)
		}
	}
}
