package pet

import (
	"maps"
	"time"
)

// State is everything the engine owns: the pet, the economy and the story flags
type State struct {
	Pet              Pet
	RocketParts      int
	Inventory        map[string]int
	PlanetHappiness  float64
	HasSeenIntro     bool
	RocketDiscovered bool
	RocketRepaired   bool
	CreativeMode     bool
	LastActivity     time.Time
	KonamiActivated  bool
}

// NewState returns a fresh game
func NewState() *State {
	return &State{
		Pet:             NewPet(),
		Inventory:       make(map[string]int),
		PlanetHappiness: InitialPlanetHappiness,
		LastActivity:    TimeNow(),
	}
}

// Snapshot is the persisted form of State. Screen and intro step are not part of it.
type Snapshot struct {
	Pet              Pet            `json:"pet"`
	RocketParts      int            `json:"rocketParts"`
	Inventory        map[string]int `json:"inventory"`
	PlanetHappiness  float64        `json:"planetHappiness"`
	HasSeenIntro     bool           `json:"hasSeenIntro"`
	RocketDiscovered bool           `json:"rocketDiscovered"`
	RocketRepaired   bool           `json:"rocketRepaired"`
	CreativeMode     bool           `json:"creativeMode"`
	LastActivityTime time.Time      `json:"lastActivityTime"`
	KonamiActivated  bool           `json:"konamiActivated"`
}

// DefaultSnapshot returns the snapshot of a fresh game. Decoding saved data
// on top of it merges the saved fields over the defaults.
func DefaultSnapshot() Snapshot {
	return NewState().Snapshot()
}

// Snapshot copies the state into its persisted form
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Pet:              s.Pet,
		RocketParts:      s.RocketParts,
		Inventory:        maps.Clone(s.Inventory),
		PlanetHappiness:  s.PlanetHappiness,
		HasSeenIntro:     s.HasSeenIntro,
		RocketDiscovered: s.RocketDiscovered,
		RocketRepaired:   s.RocketRepaired,
		CreativeMode:     s.CreativeMode,
		LastActivityTime: s.LastActivity,
		KonamiActivated:  s.KonamiActivated,
	}
}

// FromSnapshot rebuilds state from a saved snapshot, or a fresh game when snap is nil
func FromSnapshot(snap *Snapshot) *State {
	if snap == nil {
		return NewState()
	}
	s := &State{
		Pet:              snap.Pet,
		RocketParts:      snap.RocketParts,
		Inventory:        maps.Clone(snap.Inventory),
		PlanetHappiness:  snap.PlanetHappiness,
		HasSeenIntro:     snap.HasSeenIntro,
		RocketDiscovered: snap.RocketDiscovered,
		RocketRepaired:   snap.RocketRepaired,
		CreativeMode:     snap.CreativeMode,
		LastActivity:     snap.LastActivityTime,
		KonamiActivated:  snap.KonamiActivated,
	}
	if s.Inventory == nil {
		s.Inventory = make(map[string]int)
	}
	if s.LastActivity.IsZero() {
		s.LastActivity = TimeNow()
	}
	// Saved gauges may come from an older build with different bounds
	s.Pet.Happiness = clampStat(s.Pet.Happiness)
	s.Pet.Hunger = clampStat(s.Pet.Hunger)
	s.Pet.Energy = clampStat(s.Pet.Energy)
	return s
}
