// Package tui implements the root Bubble Tea model for zpersona.
package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zpersona/internal/persona"
	"github.com/zarlcorp/zpersona/internal/store"
)

// accent is zpersona's header color.
var accent = lipgloss.Color("141")

type viewID int

const (
	viewMenu viewID = iota
	viewSeed
	viewGenerate
	viewList
	viewDetail
	viewConfirm
)

// Model is the root TUI model.
type Model struct {
	version string
	asm     *persona.Assembler
	store   *store.Store

	active   viewID
	menu     menuModel
	seed     seedModel
	generate generateModel
	list     listModel
	detail   detailModel
	confirm  confirmModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model.
func New(version string, asm *persona.Assembler, st *store.Store) Model {
	return Model{
		version: version,
		asm:     asm,
		store:   st,
		active:  viewMenu,
		menu:    newMenuModel(version, len(st.List())),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case navigateMsg:
		return m.navigate(msg.view)

	case seedSubmitMsg:
		return m.handleSeed(msg.seed)

	case savePersonaMsg:
		return m.handleSave(msg.persona)

	case loadPersonaMsg:
		return m.handleLoad(msg.id)

	case confirmDeleteMsg:
		m.confirm = newConfirmModel(msg.id, msg.name)
		m.active = viewConfirm
		return m, tea.ClearScreen

	case deletePersonaMsg:
		return m.handleDelete(msg.id)

	case regeneratePersonaMsg:
		return m.handleRegenerate(msg.id)
	}

	return m.updateActive(msg)
}

func (m Model) View() string {
	// the menu includes the logo — render directly
	if m.active == viewMenu {
		return m.menu.View()
	}

	var content string
	switch m.active {
	case viewSeed:
		content = m.seed.View()
	case viewGenerate:
		content = m.generate.View()
	case viewList:
		content = m.list.View()
	case viewDetail:
		content = m.detail.View()
	case viewConfirm:
		content = m.confirm.View()
	}

	header := zstyle.RenderHeader("zpersona", viewTitle(m.active), accent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewSeed:
		return "Generate From Seed"
	case viewGenerate:
		return "Generated Persona"
	case viewList:
		return "Saved Personas"
	case viewDetail:
		return "Persona Details"
	case viewConfirm:
		return "Delete Persona"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewSeed:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "generate"},
			{Key: "esc", Desc: "back"},
		}
	case viewGenerate:
		return []zstyle.HelpPair{
			{Key: "s", Desc: "save"},
			{Key: "c", Desc: "copy all"},
			{Key: "enter", Desc: "copy field"},
			{Key: "n", Desc: "new"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewList:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "view"},
			{Key: "d", Desc: "delete"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewDetail:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "copy field"},
			{Key: "c", Desc: "copy all"},
			{Key: "r", Desc: "regenerate"},
			{Key: "d", Desc: "delete"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewConfirm:
		return []zstyle.HelpPair{
			{Key: "y", Desc: "confirm"},
			{Key: "n", Desc: "cancel"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewSeed:
		m.seed, cmd = m.seed.Update(msg)
	case viewGenerate:
		m.generate, cmd = m.generate.Update(msg)
	case viewList:
		m.list, cmd = m.list.Update(msg)
	case viewDetail:
		m.detail, cmd = m.detail.Update(msg)
	case viewConfirm:
		m.confirm, cmd = m.confirm.Update(msg)
	}

	return m, cmd
}

func (m Model) navigate(view viewID) (tea.Model, tea.Cmd) {
	switch view {
	case viewMenu:
		m.menu = newMenuModel(m.version, len(m.store.List()))
		m.active = viewMenu
		return m, tea.ClearScreen

	case viewSeed:
		m.seed = newSeedModel()
		m.active = viewSeed
		return m, tea.Batch(m.seed.Init(), tea.ClearScreen)

	case viewGenerate:
		p, err := m.asm.Generate(nil, "")
		if err != nil {
			return m, nil
		}
		m.generate = newGenerateModel(p)
		m.active = viewGenerate
		return m, tea.ClearScreen

	case viewList:
		m.list = newListModel(m.store.List())
		m.active = viewList
		return m, tea.ClearScreen

	case viewDetail:
		m.active = viewDetail
		return m, tea.ClearScreen
	}

	return m, nil
}

func (m Model) handleSeed(seed string) (tea.Model, tea.Cmd) {
	p, err := m.asm.FromSeedString(seed)
	if err != nil {
		m.seed.errMsg = err.Error()
		return m, nil
	}

	m.generate = newGenerateModel(p)
	m.active = viewGenerate
	return m, tea.ClearScreen
}

func (m Model) handleLoad(id string) (tea.Model, tea.Cmd) {
	p, err := m.store.Load(id)
	if err != nil {
		m.list.flash = "load: " + err.Error()
		return m, clearFlashAfter()
	}

	m.detail = newDetailModel(p)
	m.active = viewDetail
	return m, tea.ClearScreen
}

func (m Model) handleSave(p persona.Persona) (tea.Model, tea.Cmd) {
	if _, err := m.store.Save(p); err != nil {
		m.generate.flash = "save: " + err.Error()
		return m, clearFlashAfter()
	}

	m.generate, _ = m.generate.Update(personaSavedMsg{})
	return m, clearFlashAfter()
}

func (m Model) handleDelete(id string) (tea.Model, tea.Cmd) {
	existed, err := m.store.Delete(id)
	if err != nil {
		m.list = newListModel(m.store.List())
		m.list.flash = "delete: " + err.Error()
		m.active = viewList
		return m, clearFlashAfter()
	}

	m.list = newListModel(m.store.List())
	if existed {
		m.list.flash = "deleted"
	}
	m.active = viewList
	return m, tea.Batch(clearFlashAfter(), tea.ClearScreen)
}

func (m Model) handleRegenerate(id string) (tea.Model, tea.Cmd) {
	p, err := m.store.Regenerate(id, m.asm)
	if err != nil {
		if errors.Is(err, persona.ErrNotReproducible) {
			m.detail.flash = "no seed, cannot regenerate"
		} else {
			m.detail.flash = "regenerate: " + err.Error()
		}
		return m, clearFlashAfter()
	}

	m.detail = newDetailModel(p)
	m.detail.flash = "regenerated"
	m.active = viewDetail
	return m, clearFlashAfter()
}
