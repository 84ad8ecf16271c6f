package pet

import "fmt"

// PlanetColor is one of the planet's tint buckets
type PlanetColor struct {
	Name string
	Hex  string
}

// Planet tints, from unloved to loved
var (
	PlanetUnloved = PlanetColor{Name: "unloved", Hex: "#E8B4D9"}
	PlanetEarly   = PlanetColor{Name: "early", Hex: "#FFB3D9"}
	PlanetMid     = PlanetColor{Name: "mid", Hex: "#FF99CC"}
	PlanetLoved   = PlanetColor{Name: "loved", Hex: "#FF69B4"}
)

// PlanetHappinessFor averages the three care gauges
func PlanetHappinessFor(p Pet) float64 {
	return (p.Happiness + p.Hunger + p.Energy) / 3
}

// PlanetColorFor buckets planet happiness into a tint
func PlanetColorFor(planetHappiness float64) PlanetColor {
	switch {
	case planetHappiness >= HappyThreshold:
		return PlanetLoved
	case planetHappiness >= NeutralThreshold:
		return PlanetMid
	case planetHappiness >= SadThreshold:
		return PlanetEarly
	default:
		return PlanetUnloved
	}
}

// ExpressionFor buckets happiness into a facial expression
func ExpressionFor(happiness float64) Expression {
	switch {
	case happiness >= HappyThreshold:
		return ExpressionHappy
	case happiness >= NeutralThreshold:
		return ExpressionNeutral
	case happiness >= SadThreshold:
		return ExpressionSad
	default:
		return ExpressionCrying
	}
}

// GetExpressionEmoji returns the face for an expression
func GetExpressionEmoji(e Expression) string {
	switch e {
	case ExpressionHappy:
		return EmojiHappy
	case ExpressionNeutral:
		return EmojiNeutral
	case ExpressionSad:
		return EmojiSad
	default:
		return EmojiCrying
	}
}

// CanEvolve reports whether care has reached the threshold above the current stage
func CanEvolve(p Pet) bool {
	next, ok := NextThreshold(p.Stage)
	return ok && p.CumulativeCare >= next
}

// EvolutionProgress returns how far the pet is towards its next stage, 0-100
func EvolutionProgress(p Pet) float64 {
	next, ok := NextThreshold(p.Stage)
	if !ok {
		return 100
	}
	floor := stageFloor(p.Stage)
	progress := float64(p.CumulativeCare-floor) / float64(next-floor) * 100
	return max(0, min(progress, 100))
}

// GetStatus returns a one-line summary of how the pet is doing
func GetStatus(s *State) string {
	p := s.Pet
	expr := ExpressionFor(p.Happiness)
	status := fmt.Sprintf("%s %s", GetExpressionEmoji(expr), expr)

	switch {
	case p.Hunger < SadThreshold:
		status += " (hungry)"
	case p.Energy < SadThreshold:
		status += " (sleepy)"
	}
	if CanEvolve(p) {
		status += " ✨ ready to evolve"
	}
	return status
}
