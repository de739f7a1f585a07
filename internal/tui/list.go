package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zpersona/internal/persona"
)

// listModel displays saved personas in a scrollable list.
type listModel struct {
	personas []persona.Summary
	cursor   int
	flash    string
}

// loadPersonaMsg asks the root model to load and show a persona.
type loadPersonaMsg struct {
	id string
}

// confirmDeleteMsg asks the root model to show the delete confirmation.
type confirmDeleteMsg struct {
	id   string
	name string
}

// deletePersonaMsg requests deletion of a persona.
type deletePersonaMsg struct {
	id string
}

func newListModel(sums []persona.Summary) listModel {
	return listModel{personas: sums}
}

func (m listModel) Init() tea.Cmd {
	return nil
}

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m listModel) handleKey(msg tea.KeyMsg) (listModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	if len(m.personas) == 0 {
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.personas)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		id := m.personas[m.cursor].ID
		return m, func() tea.Msg { return loadPersonaMsg{id: id} }
	}

	if msg.String() == "d" {
		sum := m.personas[m.cursor]
		return m, func() tea.Msg { return confirmDeleteMsg{id: sum.ID, name: sum.Name} }
	}

	return m, nil
}

func (m listModel) View() string {
	accentStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)

	s := "\n"

	if len(m.personas) == 0 {
		s += "  " + zstyle.MutedText.Render("no saved personas") + "\n"
		s += "\n"
		// reserved flash line (empty for empty state)
		s += "\n"
		return s
	}

	for i, sum := range m.personas {
		name := truncate(sum.Name, 24)
		email := truncate(sum.Email, 30)
		line := fmt.Sprintf("%-24s %-30s", name, email)

		if sum.SeedString != "" {
			line += "  " + zstyle.MutedText.Render("["+truncate(sum.SeedString, 16)+"]")
		}

		if i == m.cursor {
			s += "  " + accentStyle.Render("▸") + " " + line + "\n"
		} else {
			s += "    " + line + "\n"
		}
	}

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
