package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"candygalaxy/internal/minigame"
	"candygalaxy/internal/pet"
)

// Screen is the page the player is looking at. It is not persisted.
type Screen int

const (
	ScreenSplash Screen = iota
	ScreenIntro
	ScreenCharacterSelect
	ScreenNaming
	ScreenGame
	ScreenShop
	ScreenMinigame
	ScreenEvolution
	ScreenEnding
)

const (
	maxNameLength = 12
	speechCheck   = 5 * time.Second
	speechShown   = 3 * time.Second
)

var menuChoices = []string{"Feed", "Play", "Cuddle", "Sleep", "Shop", "Mini-game", "Evolve", "Rocket", "Quit"}

var lineageChoices = []pet.Lineage{pet.LineageGummy, pet.LineageChocolate}

// konamiCode is the key sequence that pays out the secret reward
var konamiCode = []string{"up", "up", "down", "down", "left", "right", "left", "right", "b", "a"}

// Model represents the game state
type Model struct {
	Engine *pet.Engine
	Store  pet.Store

	Screen         Screen
	IntroStep      int
	Choice         int
	LineageChoice  int
	NameInput      []rune
	ShopChoice     int
	Quitting       bool
	Message        string
	MessageExpires time.Time
	Speech         string
	SpeechExpires  time.Time
	InCheatMenu    bool
	CheatChoice    int
	Animation      Animation
	Minigame       minigame.Model
	konamiProgress int
}

type tickMsg time.Time
type speechTickMsg time.Time
type animTickMsg struct {
	started time.Time
}

// NewModel creates a game model over an engine whose offline decay has
// already been applied
func NewModel(engine *pet.Engine, store pet.Store) Model {
	m := Model{
		Engine: engine,
		Store:  store,
	}
	m.Screen = m.resumeScreen()
	return m
}

// resumeScreen picks where a returning player lands, from the persisted progress
func (m Model) resumeScreen() Screen {
	s := m.Engine.State()
	switch {
	case !s.HasSeenIntro:
		return ScreenSplash
	case s.Pet.Lineage == pet.LineageNone:
		return ScreenCharacterSelect
	case s.Pet.Name == "":
		return ScreenNaming
	default:
		return ScreenGame
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), speechTick())
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.Engine.Tuning().DecayInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func speechTick() tea.Cmd {
	return tea.Tick(speechCheck, func(t time.Time) tea.Msg {
		return speechTickMsg(t)
	})
}

func animTick(start time.Time) tea.Cmd {
	return tea.Tick(AnimationFrameDuration, func(t time.Time) tea.Msg {
		return animTickMsg{started: start}
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		// While an animation is playing, ignore inputs except quit
		if m.Animation.Type != AnimNone {
			if msg.String() == "q" {
				m.Quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
		return m.handleKey(msg)

	case tickMsg:
		m.Engine.DecayStats()
		m.afterAction()
		return m, m.tick()

	case speechTickMsg:
		now := time.Time(msg)
		if m.Screen == ScreenGame && now.After(m.SpeechExpires) && pet.ShouldSpeak(m.Engine.State(), now) {
			m.Speech = pet.PickSpeech(m.Engine.State().Pet)
			m.SpeechExpires = now.Add(speechShown)
		}
		return m, speechTick()

	case animTickMsg:
		// Drop ticks that belong to an older animation
		if m.Animation.Type == AnimNone || !m.Animation.StartTime.Equal(msg.started) {
			return m, nil
		}

		m.Animation.Frame++
		if IsAnimationComplete(m.Animation) {
			m.Animation = Animation{}
			return m, nil
		}

		return m, animTick(m.Animation.StartTime)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Screen == ScreenMinigame {
		return m.updateMinigame(msg)
	}
	if m.Screen == ScreenNaming {
		return m.updateNaming(msg)
	}

	m.trackKonami(msg.String())

	if m.InCheatMenu {
		return m.updateCheatMenu(msg)
	}

	switch msg.String() {
	case "q":
		m.Quitting = true
		return m, tea.Quit
	}

	switch m.Screen {
	case ScreenSplash:
		m.Screen = ScreenIntro
		m.IntroStep = 0
	case ScreenIntro:
		if msg.String() == "enter" || msg.String() == " " {
			m.IntroStep++
			if m.IntroStep >= len(introLines) {
				m.Engine.MarkIntroSeen()
				m.afterAction()
				m.Screen = ScreenCharacterSelect
			}
		}
	case ScreenCharacterSelect:
		switch msg.String() {
		case "up", "k", "left", "h":
			if m.LineageChoice > 0 {
				m.LineageChoice--
			}
		case "down", "j", "right", "l":
			if m.LineageChoice < len(lineageChoices)-1 {
				m.LineageChoice++
			}
		case "enter", " ":
			m.Engine.SetPetLineage(lineageChoices[m.LineageChoice])
			m.afterAction()
			m.Screen = ScreenNaming
		}
	case ScreenEvolution:
		if msg.String() == "enter" || msg.String() == " " {
			m.Screen = ScreenGame
		}
	case ScreenEnding:
		if msg.String() == "enter" || msg.String() == " " {
			m.Screen = ScreenGame
		}
	case ScreenShop:
		return m.updateShop(msg)
	case ScreenGame:
		return m.updateGame(msg)
	}
	return m, nil
}

func (m Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "c":
		m.InCheatMenu = true
		m.CheatChoice = 0
	case "up", "k":
		if m.Choice > 0 {
			m.Choice--
		}
	case "down", "j":
		if m.Choice < len(menuChoices)-1 {
			m.Choice++
		}
	case "enter", " ":
		switch menuChoices[m.Choice] {
		case "Feed":
			return m.feed()
		case "Play":
			m.Engine.Play()
			m.afterAction()
			m.setMessage("🎾 Wheee!")
			return m.animate(AnimPlay)
		case "Cuddle":
			m.Engine.Cuddle()
			m.afterAction()
			m.setMessage("💗 So cozy!")
			return m.animate(AnimCuddle)
		case "Sleep":
			m.Engine.Sleep()
			m.afterAction()
			m.setMessage("💤 Nap time")
			return m.animate(AnimSleep)
		case "Shop":
			m.Screen = ScreenShop
			m.ShopChoice = 0
		case "Mini-game":
			m.Minigame = minigame.NewModel()
			m.Screen = ScreenMinigame
		case "Evolve":
			return m.evolve()
		case "Rocket":
			m.rocket()
		case "Quit":
			m.Quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) feed() (tea.Model, tea.Cmd) {
	s := m.Engine.State()
	if !s.CreativeMode && s.Inventory[pet.FoodItemID] <= 0 {
		m.setMessage("🍰 No cake left! Visit the shop.")
		return m, nil
	}
	before := s.Pet.Stage
	m.Engine.Feed()
	m.afterAction()
	m.setMessage("🍰 Yum!")
	if s.Pet.Stage > before {
		m.showEvolution()
		return m.animate(AnimEvolve)
	}
	return m.animate(AnimFeed)
}

func (m Model) evolve() (tea.Model, tea.Cmd) {
	if !m.Engine.EvolvePet() {
		m.setMessage(fmt.Sprintf("🥚 Not ready yet (%.0f%%)", pet.EvolutionProgress(m.Engine.State().Pet)))
		return m, nil
	}
	m.afterAction()
	m.showEvolution()
	return m.animate(AnimEvolve)
}

// showEvolution sends the player to the evolution screen, or the ending for the final form
func (m *Model) showEvolution() {
	if m.Engine.State().Pet.Stage.IsFinal() {
		m.Screen = ScreenEnding
		return
	}
	m.Screen = ScreenEvolution
}

func (m *Model) rocket() {
	s := m.Engine.State()
	switch {
	case !s.RocketDiscovered:
		m.Engine.DiscoverRocket()
		m.setMessage(fmt.Sprintf("🚀 You found a broken rocket! It needs %d parts.", pet.RocketPartsRequired))
	case !s.RocketRepaired:
		if m.Engine.RepairRocket() {
			m.setMessage("🚀 The rocket is fixed!")
		} else {
			m.setMessage(fmt.Sprintf("🔧 Need %d parts, have %d", pet.RocketPartsRequired, s.RocketParts))
		}
	default:
		m.setMessage("🚀 The rocket is ready for launch!")
	}
	m.afterAction()
}

func (m Model) updateShop(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.Screen = ScreenGame
	case "up", "k":
		if m.ShopChoice > 0 {
			m.ShopChoice--
		}
	case "down", "j":
		if m.ShopChoice < len(pet.StoreItems)-1 {
			m.ShopChoice++
		}
	case "enter", " ":
		item := pet.StoreItems[m.ShopChoice]
		if m.Engine.BuyItem(item.ID) {
			m.setMessage(fmt.Sprintf("%s Bought %s!", item.Emoji, item.Name))
		} else {
			m.setMessage("💸 Not enough rocket parts")
		}
		m.afterAction()
	case "u":
		item := pet.StoreItems[m.ShopChoice]
		if m.Engine.State().Inventory[item.ID] <= 0 {
			m.setMessage(fmt.Sprintf("You don't have any %s", item.Name))
			return m, nil
		}
		m.Engine.UseItem(item.ID)
		m.afterAction()
		m.setMessage(fmt.Sprintf("%s Used %s", item.Emoji, item.Name))
	}
	return m, nil
}

func (m Model) updateNaming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		name := strings.TrimSpace(string(m.NameInput))
		if name == "" {
			m.setMessage("Your pet needs a name!")
			return m, nil
		}
		m.Engine.SetPetName(name)
		m.afterAction()
		if acc := m.Engine.State().Pet.GetAccessoryEmoji(); acc != "" {
			m.setMessage(acc + " A secret accessory appeared!")
		}
		m.Screen = ScreenGame
	case tea.KeyBackspace:
		if len(m.NameInput) > 0 {
			m.NameInput = m.NameInput[:len(m.NameInput)-1]
		}
	case tea.KeySpace:
		if len(m.NameInput) > 0 && len(m.NameInput) < maxNameLength {
			m.NameInput = append(m.NameInput, ' ')
		}
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if len(m.NameInput) >= maxNameLength {
				break
			}
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				m.NameInput = append(m.NameInput, r)
			}
		}
	}
	return m, nil
}

func (m Model) updateMinigame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	updated, cmd := m.Minigame.Update(msg)
	m.Minigame = updated.(minigame.Model)
	if !m.Minigame.Done {
		return m, cmd
	}

	m.Screen = ScreenGame
	game := m.Minigame.Game
	if game.Phase != minigame.PhaseEnded || !game.Won() {
		return m, cmd
	}
	evolved := m.Engine.AwardMinigameWin()
	m.afterAction()
	m.setMessage(fmt.Sprintf("🏆 You won a rocket part! (+%d care)", pet.CarePointPerMinigame))
	if evolved {
		m.showEvolution()
		return m.animate(AnimEvolve)
	}
	return m, cmd
}

var cheatMenuOptions = []string{
	"Toggle Creative Mode",
	"Rocket Parts +1000",
	"Max All Stats",
	"Min All Stats (Critical)",
	"Reset Game",
	"Back",
}

func (m Model) updateCheatMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.Quitting = true
		return m, tea.Quit
	case "c", "esc":
		m.InCheatMenu = false
	case "up", "k":
		if m.CheatChoice > 0 {
			m.CheatChoice--
		}
	case "down", "j":
		if m.CheatChoice < len(cheatMenuOptions)-1 {
			m.CheatChoice++
		}
	case "enter", " ":
		m.executeCheat()
	}
	return m, nil
}

func (m *Model) executeCheat() {
	switch cheatMenuOptions[m.CheatChoice] {
	case "Toggle Creative Mode":
		m.Engine.ToggleCreativeMode()
		if m.Engine.State().CreativeMode {
			m.setMessage("🎮 Creative mode: ON")
		} else {
			m.setMessage("🎮 Creative mode: OFF")
		}
	case "Rocket Parts +1000":
		m.Engine.AddRocketParts(pet.KonamiRocketParts)
		m.setMessage("🎮 Rocket parts +1000")
	case "Max All Stats":
		m.Engine.UpdateStats(pet.MaxStat, pet.MaxStat, pet.MaxStat)
		m.setMessage("🎮 All stats maxed!")
	case "Min All Stats (Critical)":
		m.Engine.UpdateStats(10, 10, 10)
		m.setMessage("🎮 Stats set to critical!")
	case "Reset Game":
		m.Engine.ResetGame()
		m.InCheatMenu = false
		m.Choice = 0
		m.NameInput = nil
		m.Screen = ScreenSplash
		m.setMessage("🎮 Game reset")
	case "Back":
		m.InCheatMenu = false
	}
	m.afterAction()
}

// trackKonami advances through the secret code and pays out when it completes
func (m *Model) trackKonami(key string) {
	if key == konamiCode[m.konamiProgress] {
		m.konamiProgress++
	} else if key == konamiCode[0] {
		// "up up up" still leaves the last two ups in play
		if m.konamiProgress != 2 {
			m.konamiProgress = 1
		}
	} else {
		m.konamiProgress = 0
	}
	if m.konamiProgress == len(konamiCode) {
		m.konamiProgress = 0
		m.Engine.ActivateKonami()
		m.afterAction()
		m.setMessage(fmt.Sprintf("🕹️ Secret code! +%d rocket parts", pet.KonamiRocketParts))
		log.Printf("Konami code entered")
	}
}

// afterAction refreshes derived state and saves
func (m *Model) afterAction() {
	m.Engine.UpdatePlanetHappiness()
	if m.Store != nil {
		pet.SaveState(context.Background(), m.Store, m.Engine.State())
	}
}

func (m *Model) setMessage(msg string) {
	m.Message = msg
	m.MessageExpires = pet.TimeNow().Add(3 * time.Second)
}

func (m Model) animate(animType AnimationType) (tea.Model, tea.Cmd) {
	m.Animation = Animation{
		Type:      animType,
		Frame:     0,
		StartTime: pet.TimeNow(),
	}
	return m, animTick(m.Animation.StartTime)
}
