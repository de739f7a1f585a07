package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zpersona/internal/persona"
)

// personaField represents a labeled field for display and selection.
type personaField struct {
	label string
	value string
}

// generateModel displays a generated persona with actions.
type generateModel struct {
	persona persona.Persona
	fields  []personaField
	cursor  int
	flash   string
	flashAt time.Time
}

// savePersonaMsg requests saving the current persona.
type savePersonaMsg struct {
	persona persona.Persona
}

// personaSavedMsg confirms the persona was saved.
type personaSavedMsg struct{}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

func newGenerateModel(p persona.Persona) generateModel {
	m := generateModel{persona: p}
	m.fields = personaFields(p)
	return m
}

func personaFields(p persona.Persona) []personaField {
	fields := []personaField{
		{"name", p.Name},
		{"username", p.Username},
		{"email", p.Email},
		{"phone", p.Phone},
		{"street", p.Address.Street},
		{"city", fmt.Sprintf("%s, %s %s", p.Address.City, p.Address.StateAbbr, p.Address.Zipcode)},
		{"country", p.Address.Country},
		{"birthdate", p.Birthdate.Format("2006-01-02")},
		{"ssn", p.SSN},
		{"company", p.Company},
		{"job", p.JobTitle},
		{"card", p.CreditCard.Number + "  " + p.CreditCard.Expire},
		{"website", p.Website},
	}

	if p.SeedString != "" {
		fields = append(fields, personaField{"seed", p.SeedString})
	}

	return fields
}

// sectionBreaks marks field indices that start a new display section.
var sectionBreaks = map[int]bool{
	4: true, // address
	7: true, // personal
	9: true, // work
}

func (m generateModel) Init() tea.Cmd {
	return nil
}

func (m generateModel) Update(msg tea.Msg) (generateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case personaSavedMsg:
		return m.setFlash("saved"), clearFlashAfter()

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m generateModel) handleKey(msg tea.KeyMsg) (generateModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		// copy selected field
		val := m.fields[m.cursor].value
		if err := copyToClipboard(val); err != nil {
			return m.setFlash("copy: " + err.Error()), clearFlashAfter()
		}
		return m.setFlash("copied!"), clearFlashAfter()
	}

	switch msg.String() {
	case "s":
		return m, func() tea.Msg { return savePersonaMsg{persona: m.persona} }

	case "c":
		all := m.allFieldsText()
		if err := copyToClipboard(all); err != nil {
			return m.setFlash("copy: " + err.Error()), clearFlashAfter()
		}
		return m.setFlash("copied all!"), clearFlashAfter()

	case "n":
		return m, func() tea.Msg { return navigateMsg{view: viewGenerate} }
	}

	return m, nil
}

func (m generateModel) setFlash(msg string) generateModel {
	m.flash = msg
	m.flashAt = time.Now()
	return m
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

func (m generateModel) allFieldsText() string {
	var b strings.Builder
	for _, f := range m.fields {
		fmt.Fprintf(&b, "%s: %s\n", f.label, f.value)
	}
	return b.String()
}

func (m generateModel) View() string {
	s := "\n"

	for i, f := range m.fields {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-10s", f.label))
		if i == m.cursor {
			s += zstyle.ActiveBorder.Render(fmt.Sprintf("  > %s %s", label, f.value)) + "\n"
		} else {
			s += fmt.Sprintf("    %s %s\n", label, f.value)
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
