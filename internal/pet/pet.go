package pet

import (
	"log"
	"strings"
	"time"
)

// Testable time function
var TimeNow = func() time.Time { return time.Now().UTC() }

// Pet represents the creature living on the planet
type Pet struct {
	Name           string  `json:"name"`
	Lineage        Lineage `json:"lineage,omitempty"`
	Stage          Stage   `json:"stage"`
	Happiness      float64 `json:"happiness"`
	Hunger         float64 `json:"hunger"`
	Energy         float64 `json:"energy"`
	CumulativeCare int     `json:"cumulativeCare"`
	Accessory      string  `json:"accessory,omitempty"`
}

// NewPet returns an unhatched egg with full gauges
func NewPet() Pet {
	return Pet{
		Stage:     StageEgg,
		Happiness: MaxStat,
		Hunger:    MaxStat,
		Energy:    MaxStat,
	}
}

// easterEggNames maps lowercased pet names to the accessory they unlock
var easterEggNames = map[string]string{
	"freddy":   AccessoryTopHat,
	"celestia": AccessoryUnicornHorn,
}

// AccessoryForName returns the accessory unlocked by a name, ignoring case
func AccessoryForName(name string) string {
	return easterEggNames[strings.ToLower(name)]
}

// StageForCare maps cumulative care points onto an evolution stage
func StageForCare(care int) Stage {
	switch {
	case care >= Stage3Threshold:
		return StageFinal
	case care >= Stage2Threshold:
		return StageEvolved
	case care >= HatchThreshold:
		return StageHatched
	default:
		return StageEgg
	}
}

// NextThreshold returns the care needed to leave the given stage.
// The final stage has no next threshold and reports ok=false.
func NextThreshold(s Stage) (threshold int, ok bool) {
	switch s {
	case StageEgg:
		return HatchThreshold, true
	case StageHatched:
		return Stage2Threshold, true
	case StageEvolved:
		return Stage3Threshold, true
	default:
		return 0, false
	}
}

// stageFloor returns the care at which the given stage begins
func stageFloor(s Stage) int {
	switch s {
	case StageHatched:
		return HatchThreshold
	case StageEvolved:
		return Stage2Threshold
	case StageFinal:
		return Stage3Threshold
	default:
		return 0
	}
}

// IsFinal reports whether the stage is the terminal form
func (s Stage) IsFinal() bool {
	return s >= StageFinal
}

var evolutionNames = map[Lineage][4]string{
	LineageGummy:     {"Gummy Egg", "Gummy Blob", "Gummy Bear", "Gummy Dragon"},
	LineageChocolate: {"Chocolate Egg", "Truffle", "Cocoa Cat", "Gateau Guardian"},
}

// GetFormName returns the display name for the pet's current form
func (p *Pet) GetFormName() string {
	names, ok := evolutionNames[p.Lineage]
	if !ok {
		if p.Stage == StageEgg {
			return "Mystery Egg"
		}
		return "Unknown"
	}
	if p.Stage < StageEgg || p.Stage > StageFinal {
		return "Unknown"
	}
	return names[p.Stage]
}

// GetFormEmoji returns the emoji for the pet's current form
func (p *Pet) GetFormEmoji() string {
	if p.Stage == StageEgg {
		return "🥚"
	}
	switch p.Lineage {
	case LineageGummy:
		switch p.Stage {
		case StageHatched:
			return "🫧"
		case StageEvolved:
			return "🧸"
		default:
			return "🐉"
		}
	case LineageChocolate:
		switch p.Stage {
		case StageHatched:
			return "🍫"
		case StageEvolved:
			return "🐱"
		default:
			return "🎂"
		}
	default:
		return "❓"
	}
}

// GetAccessoryEmoji returns the emoji worn on top of the pet, if any
func (p *Pet) GetAccessoryEmoji() string {
	switch p.Accessory {
	case AccessoryTopHat:
		return "🎩"
	case AccessoryUnicornHorn:
		return "🦄"
	default:
		return ""
	}
}

// Size returns the render scale for the pet at its current stage
func (p *Pet) Size() float64 {
	switch p.Stage {
	case StageHatched:
		return 0.5
	case StageEvolved:
		return 1.0
	case StageFinal:
		return 1.5
	default:
		return 0.5
	}
}

// GetLineageName returns a display-friendly lineage name
func GetLineageName(l Lineage) string {
	switch l {
	case LineageGummy:
		return "Gummy"
	case LineageChocolate:
		return "Chocolate"
	default:
		return "None"
	}
}

// ParseLineage accepts a lineage name in any case
func ParseLineage(s string) (Lineage, bool) {
	switch Lineage(strings.ToLower(strings.TrimSpace(s))) {
	case LineageGummy:
		return LineageGummy, true
	case LineageChocolate:
		return LineageChocolate, true
	default:
		return LineageNone, false
	}
}

// clampStat keeps a gauge inside [MinStat, MaxStat]
func clampStat(v float64) float64 {
	return max(MinStat, min(v, MaxStat))
}

// setStage advances the stage, never lowering it
func (p *Pet) setStage(s Stage) bool {
	if s <= p.Stage {
		return false
	}
	old := p.Stage
	p.Stage = s
	log.Printf("Pet evolved from stage %d to %d (%s)", old, s, p.GetFormName())
	return true
}
