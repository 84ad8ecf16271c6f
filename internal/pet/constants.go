package pet

import "time"

// Game constants
const (
	MaxStat = 100
	MinStat = 0

	// Starting values
	InitialPlanetHappiness = 50

	// Stat decay rates (per hour)
	HungerDecayRate    = 5
	HappinessDecayRate = 8
	EnergyDecayRate    = 2
	DecayInterval      = time.Minute // How often the UI ticks DecayStats

	// Offline sleep mechanic
	OfflineSleepAfter     = time.Hour // Away longer than this counts as a nap
	OfflineSleepPerHour   = 10        // Energy regained per hour away
	OfflineSleepMaxEnergy = 50        // Cap on energy regained while away

	// Care action values
	FeedHungerRestore      = 20
	FeedHappinessBonus     = 5
	PlayHappinessRestore   = 15
	PlayEnergyCost         = 5
	CuddleHappinessRestore = 10
	SleepEnergyRestore     = 50
	CarePointPerFeed       = 1
	CarePointPerMinigame   = 5

	// Economy
	RocketPartsRequired = 10
	MinigameRocketParts = 1
	KonamiRocketParts   = 1000
	CreativeRocketParts = 9999 // "Infinite" balance shown in creative mode
	FoodItemID          = "cake"

	// Expression and planet color thresholds
	HappyThreshold   = 80
	NeutralThreshold = 50
	SadThreshold     = 30
)

// Evolution thresholds, in cumulative care points
const (
	HatchThreshold  = 30
	Stage2Threshold = 150
	Stage3Threshold = 500
)

// Stage is the pet's evolution level
type Stage int

const (
	StageEgg Stage = iota
	StageHatched
	StageEvolved
	StageFinal
)

// Lineage is the pet's species line, chosen once before naming
type Lineage string

const (
	LineageNone      Lineage = ""
	LineageGummy     Lineage = "gummy"
	LineageChocolate Lineage = "chocolate"
)

// Accessories granted by easter egg names
const (
	AccessoryNone        = ""
	AccessoryTopHat      = "top_hat"
	AccessoryUnicornHorn = "unicorn_horn"
)

// Expression is the pet's face, bucketed from happiness
type Expression string

const (
	ExpressionHappy   Expression = "happy"
	ExpressionNeutral Expression = "neutral"
	ExpressionSad     Expression = "sad"
	ExpressionCrying  Expression = "crying"
)

// Expression emojis
const (
	EmojiHappy   = "😊"
	EmojiNeutral = "🙂"
	EmojiSad     = "😢"
	EmojiCrying  = "😭"
)
