package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// Selection holds what the user picked before a game starts.
type Selection struct {
	GameID     string
	Difficulty config.DifficultyPreset
}

// SelectorKeyMap defines the key bindings for the selector.
type SelectorKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SelectorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SelectorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultSelectorKeyMap returns default key bindings.
func DefaultSelectorKeyMap() SelectorKeyMap {
	return SelectorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	selectorTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B5B9FF"))
	selectorActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#CAFFC9"))
	selectorDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// SelectorModel lets users choose a game variant, then a difficulty.
type SelectorModel struct {
	games      []registry.GameInfo
	presets    []config.DifficultyPreset
	cursor     int
	presetStep bool
	selection  Selection
	keys       SelectorKeyMap
	help       help.Model
	width      int
	height     int
	done       bool
	quitting   bool
}

// NewSelectorModel creates a selector over the registered games.
func NewSelectorModel(width, height int) SelectorModel {
	h := help.New()
	h.Width = width
	return SelectorModel{
		games:   registry.List(),
		presets: config.Presets(),
		keys:    DefaultSelectorKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
}

// Init initializes the model.
func (m SelectorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m SelectorModel) optionCount() int {
	if m.presetStep {
		return len(m.presets)
	}
	return len(m.games)
}

func (m SelectorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.optionCount()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Back):
		if m.presetStep {
			m.presetStep = false
			m.cursor = m.gameIndex(m.selection.GameID)
		}
	case key.Matches(msg, m.keys.Select):
		if m.optionCount() == 0 {
			return m, nil
		}
		if !m.presetStep {
			m.selection.GameID = m.games[m.cursor].ID
			m.presetStep = true
			m.cursor = m.presetIndex(config.DifficultyNormal)
			return m, nil
		}
		m.selection.Difficulty = m.presets[m.cursor]
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SelectorModel) gameIndex(id string) int {
	for i, g := range m.games {
		if g.ID == id {
			return i
		}
	}
	return 0
}

func (m SelectorModel) presetIndex(p config.DifficultyPreset) int {
	for i, q := range m.presets {
		if q == p {
			return i
		}
	}
	return 0
}

// View renders the current step.
func (m SelectorModel) View() string {
	if m.quitting || m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(selectorTitleStyle.Render("B L O C K S"), m.width))
	b.WriteString("\n\n")

	if m.presetStep {
		b.WriteString(centerText("Select difficulty:", m.width))
	} else {
		b.WriteString(centerText("Select game:", m.width))
	}
	b.WriteString("\n\n")

	for i, line := range m.options() {
		if i == m.cursor {
			line = selectorActiveStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(selectorDimStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

func (m SelectorModel) options() []string {
	if m.presetStep {
		out := make([]string, len(m.presets))
		for i, p := range m.presets {
			out[i] = string(p)
		}
		return out
	}
	out := make([]string, len(m.games))
	for i, g := range m.games {
		out[i] = fmt.Sprintf("%-18s %s", g.Title, g.Description)
	}
	return out
}

// Selected returns the selection, or nil if the user quit.
func (m SelectorModel) Selected() *Selection {
	if !m.done {
		return nil
	}
	sel := m.selection
	return &sel
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunSelector shows the selector and returns the choice, or nil on quit.
func RunSelector(width, height int) (*Selection, error) {
	p := tea.NewProgram(NewSelectorModel(width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: selector: %w", err)
	}

	m, ok := finalModel.(SelectorModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
