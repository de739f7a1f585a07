package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
)

// confirmModel asks for confirmation before deleting a persona.
type confirmModel struct {
	id   string
	name string
}

func newConfirmModel(id, name string) confirmModel {
	return confirmModel{id: id, name: name}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (confirmModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if keyMsg.String() == "y" {
		id := m.id
		return m, func() tea.Msg { return deletePersonaMsg{id: id} }
	}

	// any other key cancels
	return m, func() tea.Msg { return navigateMsg{view: viewList} }
}

func (m confirmModel) View() string {
	s := "\n  " + zstyle.Subtitle.Render("delete "+m.name+"?") + "\n\n"
	s += "  " + zstyle.MutedText.Render(m.id) + "\n\n"
	s += "  " + zstyle.StatusErr.Render("this cannot be undone") + "\n"
	return s
}
