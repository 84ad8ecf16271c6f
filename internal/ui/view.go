package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"candygalaxy/internal/pet"
)

var gameStyles = struct {
	title   lipgloss.Style
	status  lipgloss.Style
	menu    lipgloss.Style
	menuBox lipgloss.Style
	stats   lipgloss.Style
	speech  lipgloss.Style
	dim     lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(40),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(40),

	menu: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),

	speech: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FFB3D9")).
		Padding(0, 1),

	dim: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#9CA3AF")),
}

var introLines = []string{
	"Far away, in the Candy Galaxy, there is a tiny pink planet...",
	"Its sugar fields have gone pale. Nobody has cared for it in a long time.",
	"One day a mysterious egg lands in the candy grass.",
	"Take care of what hatches, and the planet will bloom again. 💖",
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for playing!\n"
	}
	if m.InCheatMenu {
		return m.renderCheatMenu()
	}
	if m.Animation.Type != AnimNone {
		return m.renderAnimation()
	}

	switch m.Screen {
	case ScreenSplash:
		return m.splashView()
	case ScreenIntro:
		return m.introView()
	case ScreenCharacterSelect:
		return m.characterSelectView()
	case ScreenNaming:
		return m.namingView()
	case ScreenShop:
		return m.shopView()
	case ScreenMinigame:
		return m.Minigame.View()
	case ScreenEvolution:
		return m.evolutionView()
	case ScreenEnding:
		return m.endingView()
	}
	return m.gameView()
}

func (m Model) petTitle() string {
	p := m.Engine.State().Pet
	name := p.Name
	if name == "" {
		name = "???"
	}
	return gameStyles.title.Render(p.GetAccessoryEmoji() + p.GetFormEmoji() + " " + name + " " + p.GetFormEmoji())
}

func (m Model) messageView() string {
	if m.Message != "" && pet.TimeNow().Before(m.MessageExpires) {
		return gameStyles.status.Render(m.Message)
	}
	return ""
}

func (m Model) gameView() string {
	s := m.Engine.State()
	sections := []string{
		m.petTitle(),
		m.renderPlanet(),
	}

	if m.Speech != "" && pet.TimeNow().Before(m.SpeechExpires) {
		sections = append(sections, gameStyles.speech.Render(m.Speech))
	}

	sections = append(sections,
		"",
		m.renderStats(),
		"",
		gameStyles.status.Render("Status: "+pet.GetStatus(s)),
	)

	if msg := m.messageView(); msg != "" {
		sections = append(sections, "", msg)
	}

	sections = append(sections,
		"",
		m.renderMenu(),
		"",
		gameStyles.status.Render("Use arrows to move • enter to select • q to quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderPlanet tints the planet by how well the pet is doing
func (m Model) renderPlanet() string {
	color := pet.PlanetColorFor(m.Engine.State().PlanetHappiness)
	planet := lipgloss.NewStyle().
		Foreground(lipgloss.Color(color.Hex)).
		Bold(true).
		Render("   .-~~~-.\n  (  ~ ~  )\n   `-~~~-´")
	return lipgloss.JoinHorizontal(lipgloss.Center, planet, gameStyles.dim.Render("  planet: "+color.Name))
}

func makeBar(value float64) string {
	filled := int(value) / 10
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

func (m Model) renderStats() string {
	s := m.Engine.State()
	p := s.Pet

	parts := fmt.Sprintf("%d", s.RocketParts)
	if s.CreativeMode {
		parts = "∞"
	}

	lines := []string{
		fmt.Sprintf("%-10s %s", "Form:", p.GetFormName()),
		fmt.Sprintf("%-10s %s", "Mood:", pet.GetExpressionEmoji(pet.ExpressionFor(p.Happiness))),
		fmt.Sprintf("%-10s [%s] %3.0f%%", "Happiness:", makeBar(p.Happiness), p.Happiness),
		fmt.Sprintf("%-10s [%s] %3.0f%%", "Hunger:", makeBar(p.Hunger), p.Hunger),
		fmt.Sprintf("%-10s [%s] %3.0f%%", "Energy:", makeBar(p.Energy), p.Energy),
	}
	if !p.Stage.IsFinal() {
		lines = append(lines, fmt.Sprintf("%-10s [%s] %3.0f%%", "Evolve:", makeBar(pet.EvolutionProgress(p)), pet.EvolutionProgress(p)))
	}
	lines = append(lines,
		fmt.Sprintf("%-10s 🚀 %s   🍰 %d", "Parts:", parts, s.Inventory[pet.FoodItemID]),
	)

	return gameStyles.stats.Render(strings.Join(lines, "\n"))
}

func (m Model) renderMenu() string {
	var menuItems []string
	for i, choice := range menuChoices {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		if choice == "Evolve" && pet.CanEvolve(m.Engine.State().Pet) {
			choice += " ✨"
		}
		menuItems = append(menuItems, fmt.Sprintf("%s %s", cursor, choice))
	}
	return gameStyles.menuBox.Render(strings.Join(menuItems, "\n"))
}

func (m Model) splashView() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		gameStyles.title.Render("🍬 CANDY GALAXY 🍬"),
		"",
		gameStyles.status.Render("A tiny planet needs your love"),
		"",
		gameStyles.dim.Render("Press any key to begin"),
	)
}

func (m Model) introView() string {
	step := min(m.IntroStep, len(introLines)-1)
	return lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.title.Render("✨ Once upon a time ✨"),
		"",
		gameStyles.status.Render(introLines[step]),
		"",
		gameStyles.dim.Render(fmt.Sprintf("(%d/%d) enter to continue", step+1, len(introLines))),
	)
}

func (m Model) characterSelectView() string {
	var items []string
	for i, l := range lineageChoices {
		cursor := " "
		if m.LineageChoice == i {
			cursor = ">"
		}
		preview := pet.Pet{Lineage: l, Stage: pet.StageFinal}
		items = append(items, fmt.Sprintf("%s %s %s lineage (grows into %s)", cursor, preview.GetFormEmoji(), pet.GetLineageName(l), preview.GetFormName()))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.title.Render("🥚 Choose your egg"),
		"",
		gameStyles.menuBox.Render(strings.Join(items, "\n")),
		"",
		gameStyles.dim.Render("arrows to choose • enter to confirm"),
	)
}

func (m Model) namingView() string {
	sections := []string{
		gameStyles.title.Render("💕 Name your pet"),
		"",
		gameStyles.speech.Render(string(m.NameInput) + "▏"),
	}
	if msg := m.messageView(); msg != "" {
		sections = append(sections, msg)
	}
	sections = append(sections, "", gameStyles.dim.Render("type a name • enter to confirm"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) shopView() string {
	s := m.Engine.State()
	var items []string
	for i, item := range pet.StoreItems {
		cursor := " "
		if m.ShopChoice == i {
			cursor = ">"
		}
		items = append(items, fmt.Sprintf("%s %s %-15s %2d 🚀  owned: %d", cursor, item.Emoji, item.Name, item.Cost, s.Inventory[item.ID]))
	}

	parts := fmt.Sprintf("%d", s.RocketParts)
	if s.CreativeMode {
		parts = "∞"
	}

	sections := []string{
		gameStyles.title.Render("🛍️ Candy Shop"),
		gameStyles.status.Render("Rocket parts: " + parts),
		"",
		gameStyles.menuBox.Render(strings.Join(items, "\n")),
		"",
		gameStyles.dim.Render(pet.StoreItems[m.ShopChoice].Description),
	}
	if msg := m.messageView(); msg != "" {
		sections = append(sections, "", msg)
	}
	sections = append(sections, "", gameStyles.dim.Render("enter to buy • u to use • esc to go back"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) evolutionView() string {
	p := m.Engine.State().Pet
	return lipgloss.JoinVertical(lipgloss.Center,
		gameStyles.title.Render("✨ Evolution! ✨"),
		"",
		gameStyles.status.Render(fmt.Sprintf("%s %s became a %s!", p.GetFormEmoji(), p.Name, p.GetFormName())),
		"",
		gameStyles.dim.Render("enter to continue"),
	)
}

func (m Model) endingView() string {
	p := m.Engine.State().Pet
	return lipgloss.JoinVertical(lipgloss.Center,
		gameStyles.title.Render("💖 Happy Valentine's Day 💖"),
		"",
		gameStyles.status.Render(fmt.Sprintf("%s %s has reached its final form: %s!", p.GetFormEmoji(), p.Name, p.GetFormName())),
		gameStyles.status.Render("The whole planet is blooming. Thank you for all your love."),
		"",
		gameStyles.dim.Render("enter to keep playing"),
	)
}

func (m Model) renderCheatMenu() string {
	var menuItems []string
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF0000")).
		Render("⚠️  CHEAT MENU ⚠️")

	for i, choice := range cheatMenuOptions {
		cursor := " "
		if m.CheatChoice == i {
			cursor = ">"
		}
		menuItems = append(menuItems, fmt.Sprintf("%s %s", cursor, choice))
	}

	sections := []string{
		header,
		"",
		gameStyles.menuBox.Render(strings.Join(menuItems, "\n")),
	}
	if msg := m.messageView(); msg != "" {
		sections = append(sections, "", msg)
	}
	sections = append(sections, "", gameStyles.status.Render("Press 'c' or Esc to exit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderAnimation() string {
	frame := GetAnimationFrame(m.Animation)

	animStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700")).
		Bold(true).
		Padding(1, 2)

	sections := []string{
		m.petTitle(),
		"",
		animStyle.Render(frame),
	}

	if msg := m.messageView(); msg != "" {
		sections = append(sections, "", msg)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
