package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
)

// seedModel prompts for a seed string.
type seedModel struct {
	input  textinput.Model
	errMsg string
}

// seedSubmitMsg is sent when the user submits a seed.
type seedSubmitMsg struct {
	seed string
}

func newSeedModel() seedModel {
	ti := textinput.New()
	ti.Placeholder = "alice-2024"
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 40

	return seedModel{input: ti}
}

func (m seedModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m seedModel) Update(msg tea.Msg) (seedModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyBack) {
			return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			return m.handleSubmit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m seedModel) handleSubmit() (seedModel, tea.Cmd) {
	val := m.input.Value()
	if val == "" {
		return m, nil
	}

	m.errMsg = ""
	return m, func() tea.Msg {
		return seedSubmitMsg{seed: val}
	}
}

func (m seedModel) View() string {
	s := fmt.Sprintf("\n  seed string:\n  %s\n", m.input.View())
	s += "\n  " + zstyle.MutedText.Render("the same seed always produces the same persona") + "\n"

	if m.errMsg != "" {
		s += "\n  " + zstyle.StatusErr.Render(m.errMsg)
	}

	s += "\n"
	return s
}
