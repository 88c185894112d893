package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Action represents the action to take after picker selection
type Action int

const (
	ActionNone Action = iota
	ActionOpen
	ActionNew
	ActionQuit
)

// PickerResult holds the result of the picker
type PickerResult struct {
	Action Action
	Entry  PickerEntry
}

// documentItem implements list.Item for document display
type documentItem struct {
	entry PickerEntry
}

func (i documentItem) Title() string {
	return i.entry.Name
}

func (i documentItem) Description() string {
	if i.entry.Profile {
		return "profile | " + truncatePath(i.entry.Path, 50)
	}
	return "file | " + truncatePath(i.entry.Path, 50)
}

func (i documentItem) FilterValue() string {
	return i.entry.Name
}

func truncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the document picker
type Model struct {
	list     list.Model
	result   PickerResult
	quitting bool
	width    int
	height   int
}

// NewPicker creates a new document picker over the given groups
func NewPicker(groups []PickerGroup) Model {
	items := buildGroupedItems(groups)

	l := list.New(items, newGroupedDelegate(), 80, 20)
	l.Title = "wsbctl - Open Configuration"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	if len(items) > headerCount(items) {
		skipHeaders(&l, 1)
	}

	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(documentItem); ok {
				m.result = PickerResult{Action: ActionOpen, Entry: item.entry}
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil

		case "n":
			m.result = PickerResult{Action: ActionNew}
			m.quitting = true
			return m, tea.Quit

		case "q", "esc", "ctrl+c":
			m.result = PickerResult{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit
		}

		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		if isHeaderSelected(&m.list) {
			skipHeaders(&m.list, navigationDirection(msg))
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] Open  [n] New  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the picker result
func (m Model) Result() PickerResult {
	return m.result
}

// RunPicker runs the interactive document picker
func RunPicker(groups []PickerGroup) (PickerResult, error) {
	items := buildGroupedItems(groups)
	if len(items) == headerCount(items) {
		return PickerResult{Action: ActionNew}, nil
	}

	p := tea.NewProgram(NewPicker(groups), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(Model).Result(), nil
}

// SimplePicker is a non-interactive picker that just lists documents
func SimplePicker(groups []PickerGroup) string {
	var sb strings.Builder

	sb.WriteString("wsbctl - Configurations\n")
	sb.WriteString(strings.Repeat("─", 60) + "\n\n")

	empty := true
	for _, g := range groups {
		if len(g.Entries) == 0 {
			continue
		}
		empty = false
		sb.WriteString(g.Label + "\n")
		for i, e := range g.Entries {
			name := e.Name
			if name == "" {
				name = shortenPath(e.Path)
			}
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, name))
			sb.WriteString(fmt.Sprintf("     %s\n", truncatePath(e.Path, 56)))
		}
		sb.WriteString("\n")
	}

	if empty {
		sb.WriteString("No configurations found.\n")
		sb.WriteString("Create one with: wsbctl new <file>\n")
	}

	return sb.String()
}
