package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"candygalaxy/internal/pet"
)

// StatsModel is a simple Bubble Tea model for displaying stats
type StatsModel struct {
	State *pet.State
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, tea.Quit
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m StatsModel) View() string {
	return RenderStats(m.State) + "\nPress ESC, click, or any key to close..."
}

// RenderStats draws the boxed stats card
func RenderStats(s *pet.State) string {
	p := s.Pet
	formEmoji := p.GetFormEmoji()

	name := p.Name
	if name == "" {
		name = "(unnamed)"
	}
	lineage := "None"
	if p.Lineage != pet.LineageNone {
		lineage = pet.GetLineageName(p.Lineage)
	}
	next := "Final form"
	if threshold, ok := pet.NextThreshold(p.Stage); ok {
		next = fmt.Sprintf("%d/%d care", p.CumulativeCare, threshold)
	}
	parts := fmt.Sprintf("%d", s.RocketParts)
	if s.CreativeMode {
		parts = "∞ (creative)"
	}
	rocket := "Not found"
	switch {
	case s.RocketRepaired:
		rocket = "Repaired"
	case s.RocketDiscovered:
		rocket = "Broken"
	}

	var sb strings.Builder
	sb.WriteString("╔════════════════════════════════════════╗\n")
	sb.WriteString(fmt.Sprintf("║  %s%s %-30s ║\n", p.GetAccessoryEmoji(), formEmoji, name))
	sb.WriteString("╠════════════════════════════════════════╣\n")
	sb.WriteString(fmt.Sprintf("║  Form:      %-26s ║\n", p.GetFormName()))
	sb.WriteString(fmt.Sprintf("║  Lineage:   %-26s ║\n", lineage))
	sb.WriteString(fmt.Sprintf("║  Evolution: %-26s ║\n", next))
	sb.WriteString(fmt.Sprintf("║  Status:    %-26s ║\n", pet.GetStatus(s)))
	sb.WriteString("║                                        ║\n")
	sb.WriteString(fmt.Sprintf("║  Happiness: [%s] %3.0f%%            ║\n", makeBar(p.Happiness), p.Happiness))
	sb.WriteString(fmt.Sprintf("║  Hunger:    [%s] %3.0f%%            ║\n", makeBar(p.Hunger), p.Hunger))
	sb.WriteString(fmt.Sprintf("║  Energy:    [%s] %3.0f%%            ║\n", makeBar(p.Energy), p.Energy))
	sb.WriteString(fmt.Sprintf("║  Planet:    [%s] %3.0f%%            ║\n", makeBar(s.PlanetHappiness), s.PlanetHappiness))
	sb.WriteString("║                                        ║\n")
	sb.WriteString(fmt.Sprintf("║  Parts:     %-26s ║\n", parts))
	sb.WriteString(fmt.Sprintf("║  Rocket:    %-26s ║\n", rocket))
	for _, item := range pet.StoreItems {
		if n := s.Inventory[item.ID]; n > 0 {
			sb.WriteString(fmt.Sprintf("║  %s %-15s x%-19d ║\n", item.Emoji, item.Name, n))
		}
	}
	sb.WriteString("╚════════════════════════════════════════╝\n")
	return sb.String()
}

// DisplayStats shows the stats display
func DisplayStats(s *pet.State) error {
	program := tea.NewProgram(StatsModel{State: s}, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run stats display: %w", err)
	}
	return nil
}
