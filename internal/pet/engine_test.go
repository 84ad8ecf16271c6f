package pet

import (
	"math"
	"testing"
	"time"
)

// mockTimeNow sets a fixed time for deterministic tests and auto-restores after test
func mockTimeNow(t *testing.T) time.Time {
	originalTimeNow := TimeNow
	currentTime := time.Date(2024, 2, 14, 12, 0, 0, 0, time.UTC)
	TimeNow = func() time.Time { return currentTime }
	t.Cleanup(func() { TimeNow = originalTimeNow })
	return currentTime
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	mockTimeNow(t)
	return NewEngine(NewState(), DefaultTuning())
}

func TestNewEngine(t *testing.T) {
	currentTime := mockTimeNow(t)

	e := NewEngine(nil, Tuning{})
	s := e.State()
	if s.Pet.Stage != StageEgg {
		t.Errorf("Expected a fresh egg, got stage %d", s.Pet.Stage)
	}
	if s.Pet.Hunger != MaxStat || s.Pet.Happiness != MaxStat || s.Pet.Energy != MaxStat {
		t.Errorf("Expected full gauges, got hunger=%.1f happiness=%.1f energy=%.1f",
			s.Pet.Hunger, s.Pet.Happiness, s.Pet.Energy)
	}
	if s.PlanetHappiness != InitialPlanetHappiness {
		t.Errorf("Expected planet happiness %d, got %.1f", InitialPlanetHappiness, s.PlanetHappiness)
	}
	if s.RocketParts != 0 || len(s.Inventory) != 0 {
		t.Errorf("Expected an empty economy, got %d parts and %v", s.RocketParts, s.Inventory)
	}
	if !s.LastActivity.Equal(currentTime) {
		t.Errorf("Expected last activity %v, got %v", currentTime, s.LastActivity)
	}
	if e.Tuning().DecayInterval != DecayInterval {
		t.Errorf("Expected default decay interval %s, got %s", DecayInterval, e.Tuning().DecayInterval)
	}
}

func TestFeed(t *testing.T) {
	t.Run("eats a cake", func(t *testing.T) {
		e := newTestEngine(t)
		e.State().Inventory[FoodItemID] = 2
		e.UpdateStats(50, 50, 50)

		e.Feed()

		p := e.State().Pet
		if p.Hunger != 70 {
			t.Errorf("Expected hunger 70, got %.1f", p.Hunger)
		}
		if p.Happiness != 55 {
			t.Errorf("Expected happiness 55, got %.1f", p.Happiness)
		}
		if p.CumulativeCare != CarePointPerFeed {
			t.Errorf("Expected care %d, got %d", CarePointPerFeed, p.CumulativeCare)
		}
		if got := e.State().Inventory[FoodItemID]; got != 1 {
			t.Errorf("Expected 1 cake left, got %d", got)
		}
	})

	t.Run("no cake is a no-op", func(t *testing.T) {
		e := newTestEngine(t)
		e.UpdateStats(50, 50, 50)
		before := *e.State()

		TimeNow = func() time.Time { return before.LastActivity.Add(time.Hour) }
		e.Feed()

		p := e.State().Pet
		if p != before.Pet {
			t.Errorf("Expected pet unchanged, got %+v", p)
		}
		if !e.State().LastActivity.Equal(before.LastActivity) {
			t.Error("Refused feed should not count as activity")
		}
		if e.State().Inventory[FoodItemID] != 0 {
			t.Errorf("Inventory should not go negative, got %d", e.State().Inventory[FoodItemID])
		}
	})

	t.Run("creative mode feeds for free", func(t *testing.T) {
		e := newTestEngine(t)
		e.ToggleCreativeMode()
		e.UpdateStats(50, 50, 50)

		e.Feed()

		if e.State().Pet.Hunger != 70 {
			t.Errorf("Expected hunger 70, got %.1f", e.State().Pet.Hunger)
		}
		if got := e.State().Inventory[FoodItemID]; got != 0 {
			t.Errorf("Creative feed should not touch inventory, got %d", got)
		}
	})

	t.Run("crossing a threshold hatches the egg", func(t *testing.T) {
		e := newTestEngine(t)
		e.State().Inventory[FoodItemID] = 1
		e.Pet().CumulativeCare = HatchThreshold - 1

		e.Feed()

		if e.State().Pet.Stage != StageHatched {
			t.Errorf("Expected stage %d, got %d", StageHatched, e.State().Pet.Stage)
		}
	})
}

func TestStatBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(e *Engine)
		action func(e *Engine)
		check  func(p Pet) bool
	}{
		{
			name:   "feed caps hunger",
			setup:  func(e *Engine) { e.State().Inventory[FoodItemID] = 1 },
			action: (*Engine).Feed,
			check:  func(p Pet) bool { return p.Hunger == MaxStat && p.Happiness == MaxStat },
		},
		{
			name:   "play caps happiness",
			action: (*Engine).Play,
			check:  func(p Pet) bool { return p.Happiness == MaxStat },
		},
		{
			name:   "play floors energy",
			setup:  func(e *Engine) { e.UpdateStats(50, 50, 2) },
			action: (*Engine).Play,
			check:  func(p Pet) bool { return p.Energy == MinStat },
		},
		{
			name:   "cuddle caps happiness",
			setup:  func(e *Engine) { e.UpdateStats(95, 50, 50) },
			action: (*Engine).Cuddle,
			check:  func(p Pet) bool { return p.Happiness == MaxStat },
		},
		{
			name:   "sleep caps energy",
			setup:  func(e *Engine) { e.UpdateStats(50, 50, 80) },
			action: (*Engine).Sleep,
			check:  func(p Pet) bool { return p.Energy == MaxStat },
		},
		{
			name:   "update stats clamps both ways",
			action: func(e *Engine) { e.UpdateStats(150, -20, 42) },
			check:  func(p Pet) bool { return p.Happiness == MaxStat && p.Hunger == MinStat && p.Energy == 42 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			if tt.setup != nil {
				tt.setup(e)
			}
			tt.action(e)
			p := e.State().Pet
			if !tt.check(p) {
				t.Errorf("Unexpected gauges: hunger=%.1f happiness=%.1f energy=%.1f", p.Hunger, p.Happiness, p.Energy)
			}
		})
	}
}

func TestCareActions(t *testing.T) {
	e := newTestEngine(t)
	e.UpdateStats(50, 50, 50)

	later := TimeNow().Add(5 * time.Minute)
	TimeNow = func() time.Time { return later }

	e.Play()
	if p := e.State().Pet; p.Happiness != 65 || p.Energy != 45 {
		t.Errorf("After play expected happiness 65 energy 45, got %.1f %.1f", p.Happiness, p.Energy)
	}
	e.Cuddle()
	if p := e.State().Pet; p.Happiness != 75 {
		t.Errorf("After cuddle expected happiness 75, got %.1f", p.Happiness)
	}
	e.Sleep()
	if p := e.State().Pet; p.Energy != 95 {
		t.Errorf("After sleep expected energy 95, got %.1f", p.Energy)
	}
	if !e.State().LastActivity.Equal(later) {
		t.Errorf("Care actions should update last activity to %v, got %v", later, e.State().LastActivity)
	}
	if e.State().Pet.CumulativeCare != 0 {
		t.Errorf("Only feeding and mini-games earn care, got %d", e.State().Pet.CumulativeCare)
	}
}

func TestDecayStats(t *testing.T) {
	t.Run("one minute tick", func(t *testing.T) {
		e := newTestEngine(t)
		e.DecayStats()

		p := e.State().Pet
		if !approxEqual(p.Hunger, 100-5.0/60) {
			t.Errorf("Expected hunger %.4f, got %.4f", 100-5.0/60, p.Hunger)
		}
		if !approxEqual(p.Happiness, 100-8.0/60) {
			t.Errorf("Expected happiness %.4f, got %.4f", 100-8.0/60, p.Happiness)
		}
		if !approxEqual(p.Energy, 100-2.0/60) {
			t.Errorf("Expected energy %.4f, got %.4f", 100-2.0/60, p.Energy)
		}
	})

	t.Run("scales with the tick interval", func(t *testing.T) {
		mockTimeNow(t)
		tuning := DefaultTuning()
		tuning.DecayInterval = 30 * time.Minute
		e := NewEngine(nil, tuning)

		e.DecayStats()

		if p := e.State().Pet; !approxEqual(p.Hunger, 97.5) || !approxEqual(p.Happiness, 96) || !approxEqual(p.Energy, 99) {
			t.Errorf("Expected 97.5/96/99, got %.2f/%.2f/%.2f", p.Hunger, p.Happiness, p.Energy)
		}
	})

	t.Run("never goes below zero", func(t *testing.T) {
		e := newTestEngine(t)
		e.UpdateStats(0.01, 0.01, 0.01)
		e.DecayStats()
		if p := e.State().Pet; p.Hunger != MinStat || p.Happiness != MinStat || p.Energy != MinStat {
			t.Errorf("Expected all gauges at 0, got %.3f/%.3f/%.3f", p.Hunger, p.Happiness, p.Energy)
		}
	})

	t.Run("creative mode freezes gauges", func(t *testing.T) {
		e := newTestEngine(t)
		e.ToggleCreativeMode()
		e.DecayStats()
		if p := e.State().Pet; p.Hunger != MaxStat || p.Happiness != MaxStat || p.Energy != MaxStat {
			t.Errorf("Expected full gauges in creative mode, got %.1f/%.1f/%.1f", p.Hunger, p.Happiness, p.Energy)
		}
	})
}

func TestCalculateOfflineDecay(t *testing.T) {
	tests := []struct {
		name          string
		away          time.Duration
		energy        float64
		wantHunger    float64
		wantHappiness float64
		wantEnergy    float64
	}{
		{
			name:          "short absence has no nap",
			away:          30 * time.Minute,
			energy:        100,
			wantHunger:    97.5,
			wantHappiness: 96,
			wantEnergy:    99,
		},
		{
			name:          "exactly one hour has no nap",
			away:          time.Hour,
			energy:        50,
			wantHunger:    95,
			wantHappiness: 92,
			wantEnergy:    48,
		},
		{
			name:          "two hours away naps",
			away:          2 * time.Hour,
			energy:        50,
			wantHunger:    90,
			wantHappiness: 84,
			wantEnergy:    66,
		},
		{
			name:          "nap gain is capped",
			away:          10 * time.Hour,
			energy:        20,
			wantHunger:    50,
			wantHappiness: 20,
			wantEnergy:    50,
		},
		{
			name:          "long absence empties the gauges",
			away:          48 * time.Hour,
			energy:        100,
			wantHunger:    0,
			wantHappiness: 0,
			wantEnergy:    54,
		},
		{
			name:          "clock going backwards changes nothing",
			away:          -3 * time.Hour,
			energy:        70,
			wantHunger:    100,
			wantHappiness: 100,
			wantEnergy:    70,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			currentTime := mockTimeNow(t)
			s := NewState()
			s.Pet.Energy = tt.energy
			s.LastActivity = currentTime.Add(-tt.away)
			e := NewEngine(s, DefaultTuning())

			e.CalculateOfflineDecay()

			p := e.State().Pet
			if !approxEqual(p.Hunger, tt.wantHunger) {
				t.Errorf("Expected hunger %.2f, got %.2f", tt.wantHunger, p.Hunger)
			}
			if !approxEqual(p.Happiness, tt.wantHappiness) {
				t.Errorf("Expected happiness %.2f, got %.2f", tt.wantHappiness, p.Happiness)
			}
			if !approxEqual(p.Energy, tt.wantEnergy) {
				t.Errorf("Expected energy %.2f, got %.2f", tt.wantEnergy, p.Energy)
			}
			if !e.State().LastActivity.Equal(currentTime) {
				t.Errorf("Expected last activity reset to %v, got %v", currentTime, e.State().LastActivity)
			}
		})
	}

	t.Run("creative mode skips catch-up", func(t *testing.T) {
		currentTime := mockTimeNow(t)
		s := NewState()
		s.CreativeMode = true
		s.LastActivity = currentTime.Add(-5 * time.Hour)
		e := NewEngine(s, DefaultTuning())

		e.CalculateOfflineDecay()

		if p := e.State().Pet; p.Hunger != MaxStat || p.Happiness != MaxStat || p.Energy != MaxStat {
			t.Errorf("Expected untouched gauges, got %.1f/%.1f/%.1f", p.Hunger, p.Happiness, p.Energy)
		}
	})
}

func TestBuyItem(t *testing.T) {
	tests := []struct {
		name      string
		parts     int
		creative  bool
		item      string
		wantOK    bool
		wantParts int
		wantCount int
	}{
		{name: "affordable cake", parts: 3, item: "cake", wantOK: true, wantParts: 2, wantCount: 1},
		{name: "exact balance", parts: 5, item: "mystery", wantOK: true, wantParts: 0, wantCount: 1},
		{name: "too expensive", parts: 1, item: "ball", wantOK: false, wantParts: 1, wantCount: 0},
		{name: "unknown item", parts: 100, item: "broccoli", wantOK: false, wantParts: 100, wantCount: 0},
		{name: "creative mode is free", creative: true, item: "mystery", wantOK: true, wantParts: CreativeRocketParts, wantCount: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			if tt.creative {
				e.ToggleCreativeMode()
			} else {
				e.AddRocketParts(tt.parts)
			}

			if got := e.BuyItem(tt.item); got != tt.wantOK {
				t.Errorf("BuyItem(%q) = %t, want %t", tt.item, got, tt.wantOK)
			}
			if got := e.State().RocketParts; got != tt.wantParts {
				t.Errorf("Expected %d rocket parts, got %d", tt.wantParts, got)
			}
			if got := e.State().Inventory[tt.item]; got != tt.wantCount {
				t.Errorf("Expected %d %s, got %d", tt.wantCount, tt.item, got)
			}
		})
	}
}

func TestSpendRocketParts(t *testing.T) {
	e := newTestEngine(t)
	e.AddRocketParts(3)

	if e.SpendRocketParts(4) {
		t.Error("Should not spend more than the balance")
	}
	if !e.SpendRocketParts(3) {
		t.Error("Should spend exactly the balance")
	}
	if e.State().RocketParts != 0 {
		t.Errorf("Expected 0 parts, got %d", e.State().RocketParts)
	}
}

func TestUseItem(t *testing.T) {
	t.Run("cake feeds without care points", func(t *testing.T) {
		e := newTestEngine(t)
		e.State().Inventory["cake"] = 1
		e.UpdateStats(50, 50, 50)

		e.UseItem("cake")

		p := e.State().Pet
		if p.Hunger != 70 || p.Happiness != 55 {
			t.Errorf("Expected hunger 70 happiness 55, got %.1f %.1f", p.Hunger, p.Happiness)
		}
		if p.CumulativeCare != 0 {
			t.Errorf("Using an item should not award care, got %d", p.CumulativeCare)
		}
		if e.State().Inventory["cake"] != 0 {
			t.Errorf("Expected cake consumed, got %d", e.State().Inventory["cake"])
		}
	})

	t.Run("ball only lifts happiness", func(t *testing.T) {
		e := newTestEngine(t)
		e.State().Inventory["ball"] = 1
		e.UpdateStats(50, 50, 50)

		e.UseItem("ball")

		if p := e.State().Pet; p.Happiness != 60 || p.Hunger != 50 {
			t.Errorf("Expected happiness 60 hunger 50, got %.1f %.1f", p.Happiness, p.Hunger)
		}
	})

	t.Run("item without bonuses is still consumed", func(t *testing.T) {
		e := newTestEngine(t)
		e.State().Inventory["flower"] = 2
		e.UseItem("flower")
		if e.State().Inventory["flower"] != 1 {
			t.Errorf("Expected 1 flower left, got %d", e.State().Inventory["flower"])
		}
	})

	t.Run("nothing owned is a no-op", func(t *testing.T) {
		e := newTestEngine(t)
		e.UpdateStats(50, 50, 50)
		e.UseItem("cake")
		if p := e.State().Pet; p.Hunger != 50 {
			t.Errorf("Expected hunger unchanged, got %.1f", p.Hunger)
		}
		if e.State().Inventory["cake"] != 0 {
			t.Errorf("Inventory should not go negative, got %d", e.State().Inventory["cake"])
		}
	})
}

func TestSetPetName(t *testing.T) {
	tests := []struct {
		name          string
		petName       string
		wantAccessory string
	}{
		{"freddy gets a top hat", "Freddy", AccessoryTopHat},
		{"names ignore case", "FREDDY", AccessoryTopHat},
		{"celestia gets a unicorn horn", "celestia", AccessoryUnicornHorn},
		{"ordinary name", "Random", AccessoryNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			e.SetPetName(tt.petName)
			p := e.State().Pet
			if p.Name != tt.petName {
				t.Errorf("Expected name %q, got %q", tt.petName, p.Name)
			}
			if p.Accessory != tt.wantAccessory {
				t.Errorf("Expected accessory %q, got %q", tt.wantAccessory, p.Accessory)
			}
		})
	}

	t.Run("renaming drops the accessory", func(t *testing.T) {
		e := newTestEngine(t)
		e.SetPetName("Freddy")
		e.SetPetName("Bob")
		if e.State().Pet.Accessory != AccessoryNone {
			t.Errorf("Expected no accessory after rename, got %q", e.State().Pet.Accessory)
		}
	})
}

func TestEvolvePet(t *testing.T) {
	tests := []struct {
		name        string
		stage       Stage
		care        int
		wantStage   Stage
		wantEvolved bool
	}{
		{"egg without enough care", StageEgg, HatchThreshold - 1, StageEgg, false},
		{"egg hatches", StageEgg, HatchThreshold, StageHatched, true},
		{"skips straight to final", StageEgg, Stage3Threshold, StageFinal, true},
		{"evolved reaches final", StageEvolved, Stage3Threshold + 20, StageFinal, true},
		{"final stays final", StageFinal, 10000, StageFinal, false},
		{"stage never goes down", StageEvolved, 0, StageEvolved, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			e.SetPetLineage(LineageGummy)
			e.Pet().Stage = tt.stage
			e.Pet().CumulativeCare = tt.care

			if got := e.EvolvePet(); got != tt.wantEvolved {
				t.Errorf("EvolvePet() = %t, want %t", got, tt.wantEvolved)
			}
			if e.State().Pet.Stage != tt.wantStage {
				t.Errorf("Expected stage %d, got %d", tt.wantStage, e.State().Pet.Stage)
			}
			if e.EvolvePet() {
				t.Error("Second EvolvePet without new care should be a no-op")
			}
		})
	}
}

func TestRocket(t *testing.T) {
	e := newTestEngine(t)
	e.DiscoverRocket()
	if !e.State().RocketDiscovered {
		t.Error("Expected rocket discovered")
	}

	e.AddRocketParts(RocketPartsRequired - 1)
	if e.RepairRocket() {
		t.Error("Repair should fail without enough parts")
	}
	if e.State().RocketRepaired {
		t.Error("Rocket should still be broken")
	}

	e.AddRocketParts(1)
	if !e.RepairRocket() {
		t.Error("Repair should succeed with enough parts")
	}
	if !e.State().RocketRepaired || e.State().RocketParts != 0 {
		t.Errorf("Expected repaired rocket and 0 parts, got %t and %d", e.State().RocketRepaired, e.State().RocketParts)
	}
}

func TestToggleCreativeMode(t *testing.T) {
	e := newTestEngine(t)
	e.AddRocketParts(4)

	e.ToggleCreativeMode()
	if !e.State().CreativeMode || e.State().RocketParts != CreativeRocketParts {
		t.Errorf("Expected creative mode with %d parts, got %t and %d",
			CreativeRocketParts, e.State().CreativeMode, e.State().RocketParts)
	}

	e.SpendRocketParts(9)
	e.ToggleCreativeMode()
	if e.State().CreativeMode {
		t.Error("Expected creative mode off")
	}
	if e.State().RocketParts != CreativeRocketParts-9 {
		t.Errorf("Turning creative mode off should keep the balance, got %d", e.State().RocketParts)
	}
}

func TestActivateKonami(t *testing.T) {
	e := newTestEngine(t)
	e.ActivateKonami()
	e.ActivateKonami()
	if !e.State().KonamiActivated {
		t.Error("Expected konami flag set")
	}
	if e.State().RocketParts != 2*KonamiRocketParts {
		t.Errorf("Expected %d parts, got %d", 2*KonamiRocketParts, e.State().RocketParts)
	}
}

func TestAwardMinigameWin(t *testing.T) {
	e := newTestEngine(t)
	e.SetPetLineage(LineageChocolate)
	e.Pet().CumulativeCare = HatchThreshold - CarePointPerMinigame

	if !e.AwardMinigameWin() {
		t.Error("Expected the win to hatch the egg")
	}
	s := e.State()
	if s.RocketParts != MinigameRocketParts {
		t.Errorf("Expected %d rocket part, got %d", MinigameRocketParts, s.RocketParts)
	}
	if s.Pet.CumulativeCare != HatchThreshold {
		t.Errorf("Expected care %d, got %d", HatchThreshold, s.Pet.CumulativeCare)
	}
	if s.Pet.GetFormName() != "Truffle" {
		t.Errorf("Expected Truffle, got %s", s.Pet.GetFormName())
	}

	if e.AwardMinigameWin() {
		t.Error("Five more care points should not evolve a fresh hatchling")
	}
}

func TestUpdatePlanetHappiness(t *testing.T) {
	e := newTestEngine(t)
	e.UpdateStats(90, 60, 30)
	e.UpdatePlanetHappiness()
	if e.State().PlanetHappiness != 60 {
		t.Errorf("Expected planet happiness 60, got %.1f", e.State().PlanetHappiness)
	}
}

func TestResetGame(t *testing.T) {
	currentTime := mockTimeNow(t)
	e := NewEngine(nil, DefaultTuning())
	e.SetPetName("Freddy")
	e.SetPetLineage(LineageGummy)
	e.AddRocketParts(40)
	e.BuyItem("cake")
	e.MarkIntroSeen()
	e.DiscoverRocket()
	e.Pet().CumulativeCare = 200
	e.EvolvePet()
	e.ToggleCreativeMode()

	later := currentTime.Add(time.Hour)
	TimeNow = func() time.Time { return later }
	e.ResetGame()

	s := e.State()
	fresh := NewState()
	if s.Pet != fresh.Pet {
		t.Errorf("Expected a fresh pet, got %+v", s.Pet)
	}
	if s.RocketParts != 0 || len(s.Inventory) != 0 {
		t.Errorf("Expected an empty economy, got %d parts and %v", s.RocketParts, s.Inventory)
	}
	if s.HasSeenIntro || s.RocketDiscovered || s.RocketRepaired || s.CreativeMode || s.KonamiActivated {
		t.Errorf("Expected all flags cleared, got %+v", s)
	}
	if !s.LastActivity.Equal(later) {
		t.Errorf("Expected last activity %v, got %v", later, s.LastActivity)
	}
}
