package pet

import (
	"math/rand"
	"time"
)

// Testable random function
var RandFloat64 = rand.Float64

// Speech categories
const (
	SpeechNone    = ""
	SpeechHungry  = "hungry"
	SpeechSad     = "sad"
	SpeechTired   = "tired"
	SpeechHappy   = "happy"
	SpeechPlayful = "playful"
	SpeechNeutral = "neutral"
)

// Speech timing
const (
	SpeechQuietNeedy   = 10 * time.Second // Idle time before a needy pet speaks up
	SpeechQuietContent = 30 * time.Second // Idle time before a content pet speaks up
	TiredEnergy        = 20
	PlayfulHappiness   = 60
)

var speechLines = map[string][]string{
	SpeechHungry: {
		"I'm hungry! 🍔",
		"Got any snacks? 🍰",
		"My tummy is rumbling... 🍬",
		"Feed me please! 🧁",
	},
	SpeechSad: {
		"I'm feeling lonely... 💔",
		"Play with me? 🎮",
		"I need attention... 😢",
		"Where are you? 🥺",
	},
	SpeechTired: {
		"I'm sleepy... 😴",
		"*yawns* 💤",
		"So tired... 🌙",
		"Need rest... ☁️",
	},
	SpeechHappy: {
		"I love you! 💖",
		"Life is sweet! 🌈",
		"So happy! ✨",
		"You're the best! 🌟",
	},
	SpeechPlayful: {
		"Let's play! 🎲",
		"I want to have fun! 🎪",
		"Mini-game time! 🕹️",
		"Game on! 🎯",
	},
	SpeechNeutral: {
		"Hi there! 👋",
		"What's up? 🌸",
		"Nice day! ☀️",
		"*bounce bounce* 🎀",
	},
}

// SpeechCategoryFor picks what the pet wants to talk about, most urgent need first.
// Eggs don't talk.
func SpeechCategoryFor(p Pet) string {
	switch {
	case p.Stage == StageEgg:
		return SpeechNone
	case p.Hunger < SadThreshold:
		return SpeechHungry
	case p.Happiness < SadThreshold:
		return SpeechSad
	case p.Energy < TiredEnergy:
		return SpeechTired
	case p.Happiness > HappyThreshold:
		return SpeechHappy
	case p.Happiness > PlayfulHappiness:
		return SpeechPlayful
	default:
		return SpeechNeutral
	}
}

// PickSpeech returns a random line for the pet's current mood, or "" for an egg
func PickSpeech(p Pet) string {
	lines := speechLines[SpeechCategoryFor(p)]
	if len(lines) == 0 {
		return ""
	}
	i := int(RandFloat64() * float64(len(lines)))
	if i >= len(lines) {
		i = len(lines) - 1
	}
	return lines[i]
}

// ShouldSpeak reports whether the pet has been left alone long enough to pipe up.
// Needy pets speak up sooner.
func ShouldSpeak(s *State, now time.Time) bool {
	if s.Pet.Stage == StageEgg {
		return false
	}
	quiet := SpeechQuietContent
	if s.Pet.Hunger < NeutralThreshold || s.Pet.Happiness < NeutralThreshold {
		quiet = SpeechQuietNeedy
	}
	return now.Sub(s.LastActivity) > quiet
}
