package fingerprint

import (
	"fmt"

	"daktylos/internal/game"
	"daktylos/internal/strategy"
)

// Slot is a typed roster position. The strategy under test occupies slot 0,
// its dual slot 1, and the probe derived from grid point i slot i+2.
type Slot int

const (
	SlotOriginal Slot = 0
	SlotDual     Slot = 1
)

// ProbeSlot returns the slot of the probe for grid point i.
func ProbeSlot(i int) Slot { return Slot(i + 2) }

func (s Slot) Index() int { return int(s) }

func (s Slot) IsProbe() bool { return s >= 2 }

// ProbeIndex returns the grid point index behind a probe slot.
func (s Slot) ProbeIndex() int { return int(s) - 2 }

func (s Slot) String() string {
	switch s {
	case SlotOriginal:
		return "original"
	case SlotDual:
		return "dual"
	default:
		return fmt.Sprintf("probe %d", s.ProbeIndex())
	}
}

// Roster is the ordered player list for one fingerprint run: the strategy
// under test, its dual, then one probe per grid point.
type Roster struct {
	players []game.Player
}

func NewRoster(original game.Player, probes []game.Player) Roster {
	players := make([]game.Player, 0, len(probes)+2)
	players = append(players, original, strategy.Dual{Base: original})
	players = append(players, probes...)
	return Roster{players: players}
}

func (r Roster) Len() int { return len(r.players) }

// At returns the player occupying a slot.
func (r Roster) At(slot Slot) game.Player { return r.players[slot.Index()] }

// Players returns the roster in slot order, as the tournament engine expects.
func (r Roster) Players() []game.Player { return r.players }
