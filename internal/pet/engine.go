package pet

import (
	"log"
	"time"
)

// Tuning holds the per-action amounts and hourly decay rates. The zero value
// is not useful; start from DefaultTuning and override.
type Tuning struct {
	HungerDecayRate        float64 `toml:"hungerDecayPerHour"`
	HappinessDecayRate     float64 `toml:"happinessDecayPerHour"`
	EnergyDecayRate        float64 `toml:"energyDecayPerHour"`
	FeedHungerRestore      float64 `toml:"feedHungerRestore"`
	FeedHappinessBonus     float64 `toml:"feedHappinessBonus"`
	PlayHappinessRestore   float64 `toml:"playHappinessRestore"`
	PlayEnergyCost         float64 `toml:"playEnergyCost"`
	CuddleHappinessRestore float64 `toml:"cuddleHappinessRestore"`
	SleepEnergyRestore     float64 `toml:"sleepEnergyRestore"`

	// DecayInterval is the period between DecayStats calls
	DecayInterval time.Duration `toml:"-"`
}

// DefaultTuning returns the stock game balance
func DefaultTuning() Tuning {
	return Tuning{
		HungerDecayRate:        HungerDecayRate,
		HappinessDecayRate:     HappinessDecayRate,
		EnergyDecayRate:        EnergyDecayRate,
		FeedHungerRestore:      FeedHungerRestore,
		FeedHappinessBonus:     FeedHappinessBonus,
		PlayHappinessRestore:   PlayHappinessRestore,
		PlayEnergyCost:         PlayEnergyCost,
		CuddleHappinessRestore: CuddleHappinessRestore,
		SleepEnergyRestore:     SleepEnergyRestore,
		DecayInterval:          DecayInterval,
	}
}

// Engine applies player actions and decay to a single game state.
// It owns no timers and is not safe for concurrent use; callers
// serialise access (the UI does this through its update loop).
type Engine struct {
	state  *State
	tuning Tuning
}

// NewEngine wraps state. A nil state starts a fresh game.
func NewEngine(state *State, tuning Tuning) *Engine {
	if state == nil {
		state = NewState()
	}
	if tuning.DecayInterval <= 0 {
		tuning.DecayInterval = DecayInterval
	}
	return &Engine{state: state, tuning: tuning}
}

// State exposes the engine's state for rendering and persistence
func (e *Engine) State() *State {
	return e.state
}

// Pet is shorthand for the current pet record
func (e *Engine) Pet() *Pet {
	return &e.state.Pet
}

// Tuning returns the balance the engine runs with
func (e *Engine) Tuning() Tuning {
	return e.tuning
}

func (e *Engine) touch() {
	e.state.LastActivity = TimeNow()
}

// Feed eats one cake from the inventory (free in creative mode).
// Does nothing when there is no cake.
func (e *Engine) Feed() {
	s := e.state
	if !s.CreativeMode && s.Inventory[FoodItemID] <= 0 {
		log.Printf("Feed skipped: no %s in inventory", FoodItemID)
		return
	}
	if !s.CreativeMode {
		s.Inventory[FoodItemID]--
	}

	p := &s.Pet
	p.Hunger = clampStat(p.Hunger + e.tuning.FeedHungerRestore)
	p.Happiness = clampStat(p.Happiness + e.tuning.FeedHappinessBonus)
	p.CumulativeCare += CarePointPerFeed
	p.setStage(StageForCare(p.CumulativeCare))
	e.touch()

	log.Printf("Fed pet. Hunger is now %.1f, Happiness is now %.1f, Care is now %d",
		p.Hunger, p.Happiness, p.CumulativeCare)
}

// Play trades a little energy for happiness
func (e *Engine) Play() {
	p := &e.state.Pet
	p.Happiness = clampStat(p.Happiness + e.tuning.PlayHappinessRestore)
	p.Energy = clampStat(p.Energy - e.tuning.PlayEnergyCost)
	e.touch()
	log.Printf("Played with pet. Happiness is now %.1f, Energy is now %.1f", p.Happiness, p.Energy)
}

// Cuddle raises happiness
func (e *Engine) Cuddle() {
	p := &e.state.Pet
	p.Happiness = clampStat(p.Happiness + e.tuning.CuddleHappinessRestore)
	e.touch()
	log.Printf("Cuddled pet. Happiness is now %.1f", p.Happiness)
}

// Sleep restores a large chunk of energy
func (e *Engine) Sleep() {
	p := &e.state.Pet
	p.Energy = clampStat(p.Energy + e.tuning.SleepEnergyRestore)
	e.touch()
	log.Printf("Pet napped. Energy is now %.1f", p.Energy)
}

// EvolvePet advances the stage to whatever the accumulated care allows.
// It reports whether the stage changed; a second call without new care is a no-op.
func (e *Engine) EvolvePet() bool {
	p := &e.state.Pet
	return p.setStage(StageForCare(p.CumulativeCare))
}

// DecayStats applies one tick's worth of the hourly decay rates
func (e *Engine) DecayStats() {
	if e.state.CreativeMode {
		return
	}
	fraction := e.tuning.DecayInterval.Hours()
	p := &e.state.Pet
	p.Hunger = clampStat(p.Hunger - e.tuning.HungerDecayRate*fraction)
	p.Happiness = clampStat(p.Happiness - e.tuning.HappinessDecayRate*fraction)
	p.Energy = clampStat(p.Energy - e.tuning.EnergyDecayRate*fraction)
}

// CalculateOfflineDecay catches the gauges up with the time since the last
// activity. Being away more than an hour counts as a nap and gives energy back.
func (e *Engine) CalculateOfflineDecay() {
	if e.state.CreativeMode {
		return
	}
	now := TimeNow()
	elapsed := now.Sub(e.state.LastActivity)
	hours := elapsed.Hours()
	if hours < 0 {
		// Clock went backwards; treat as no time away
		hours = 0
	}

	var energyGain float64
	if elapsed > OfflineSleepAfter {
		energyGain = min(OfflineSleepMaxEnergy, hours*OfflineSleepPerHour)
	}

	p := &e.state.Pet
	p.Hunger = clampStat(p.Hunger - e.tuning.HungerDecayRate*hours)
	p.Happiness = clampStat(p.Happiness - e.tuning.HappinessDecayRate*hours)
	p.Energy = clampStat(p.Energy - e.tuning.EnergyDecayRate*hours + energyGain)
	e.state.LastActivity = now

	log.Printf("Applied offline decay for %.2f hours (sleep gain %.1f). Hunger %.1f, Happiness %.1f, Energy %.1f",
		hours, energyGain, p.Hunger, p.Happiness, p.Energy)
}

// UpdateStats sets all three gauges at once, clamped
func (e *Engine) UpdateStats(happiness, hunger, energy float64) {
	p := &e.state.Pet
	p.Happiness = clampStat(happiness)
	p.Hunger = clampStat(hunger)
	p.Energy = clampStat(energy)
}

// AddRocketParts credits currency
func (e *Engine) AddRocketParts(amount int) {
	e.state.RocketParts += amount
	log.Printf("Rocket parts +%d, now %d", amount, e.state.RocketParts)
}

// SpendRocketParts debits currency if the balance covers it
func (e *Engine) SpendRocketParts(amount int) bool {
	if e.state.RocketParts < amount {
		return false
	}
	e.state.RocketParts -= amount
	log.Printf("Rocket parts -%d, now %d", amount, e.state.RocketParts)
	return true
}

// BuyItem adds one of the item to the inventory if it exists and is affordable
func (e *Engine) BuyItem(itemID string) bool {
	item, ok := GetStoreItem(itemID)
	if !ok {
		log.Printf("Buy refused: unknown item %q", itemID)
		return false
	}
	s := e.state
	if !s.CreativeMode && s.RocketParts < item.Cost {
		log.Printf("Buy refused: %s costs %d, have %d", item.ID, item.Cost, s.RocketParts)
		return false
	}
	if !s.CreativeMode {
		s.RocketParts -= item.Cost
	}
	s.Inventory[itemID]++
	log.Printf("Bought %s, now holding %d", item.ID, s.Inventory[itemID])
	return true
}

// UseItem consumes one of the item and applies whatever bonuses it carries
func (e *Engine) UseItem(itemID string) {
	s := e.state
	if s.Inventory[itemID] <= 0 {
		return
	}
	item, ok := GetStoreItem(itemID)
	if !ok {
		return
	}
	s.Inventory[itemID]--

	p := &s.Pet
	if item.HungerValue != nil {
		p.Hunger = clampStat(p.Hunger + *item.HungerValue)
	}
	if item.HappinessValue != nil {
		p.Happiness = clampStat(p.Happiness + *item.HappinessValue)
	}
	log.Printf("Used %s. Hunger is now %.1f, Happiness is now %.1f", item.ID, p.Hunger, p.Happiness)
}

// UpdatePlanetHappiness recomputes the planet's mood from the pet's gauges
func (e *Engine) UpdatePlanetHappiness() {
	e.state.PlanetHappiness = PlanetHappinessFor(e.state.Pet)
}

// SetPetName names the pet and picks up any easter egg accessory
func (e *Engine) SetPetName(name string) {
	p := &e.state.Pet
	p.Name = name
	p.Accessory = AccessoryForName(name)
	if p.Accessory != AccessoryNone {
		log.Printf("Easter egg name %q unlocked accessory %s", name, p.Accessory)
	}
}

// SetPetLineage picks the species line
func (e *Engine) SetPetLineage(l Lineage) {
	e.state.Pet.Lineage = l
	log.Printf("Lineage set to %s", GetLineageName(l))
}

// MarkIntroSeen records that the intro has played
func (e *Engine) MarkIntroSeen() {
	e.state.HasSeenIntro = true
}

// DiscoverRocket records that the player found the broken rocket
func (e *Engine) DiscoverRocket() {
	e.state.RocketDiscovered = true
}

// RepairRocket spends the parts needed to fix the rocket (free in creative mode)
func (e *Engine) RepairRocket() bool {
	s := e.state
	if !s.CreativeMode && s.RocketParts < RocketPartsRequired {
		return false
	}
	if !s.CreativeMode {
		s.RocketParts -= RocketPartsRequired
	}
	s.RocketRepaired = true
	log.Printf("Rocket repaired")
	return true
}

// ToggleCreativeMode flips creative mode. Turning it on grants the
// effectively infinite balance; turning it off keeps whatever is left.
func (e *Engine) ToggleCreativeMode() {
	s := e.state
	s.CreativeMode = !s.CreativeMode
	if s.CreativeMode {
		s.RocketParts = CreativeRocketParts
	}
	log.Printf("Creative mode: %t", s.CreativeMode)
}

// ActivateKonami pays out the secret code reward. Repeats are not limited.
func (e *Engine) ActivateKonami() {
	e.state.KonamiActivated = true
	e.AddRocketParts(KonamiRocketParts)
}

// AwardMinigameWin pays out a mini-game win: a rocket part and care points,
// then evolves if the new care total allows it. Reports whether the pet evolved.
func (e *Engine) AwardMinigameWin() bool {
	e.AddRocketParts(MinigameRocketParts)
	e.state.Pet.CumulativeCare += CarePointPerMinigame
	e.touch()
	return e.EvolvePet()
}

// ResetGame throws away all progress and starts over
func (e *Engine) ResetGame() {
	*e.state = *NewState()
	log.Printf("Game reset")
}
