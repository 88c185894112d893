package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sandboxgui/wsbctl/internal/config"
	"github.com/sandboxgui/wsbctl/internal/generator"
)

// formField identifies a fixed row of the form. Mapped folder rows follow
// fieldFolders, then a single "add folder" row.
type formField int

const (
	fieldVGPU formField = iota
	fieldNetworking
	fieldAudioInput
	fieldVideoInput
	fieldProtectedClient
	fieldPrinterRedirection
	fieldClipboardRedirection
	fieldMemory
	fieldLogonCommand
	fieldHostnameEnabled
	fieldHostname
	fieldDarkMode
	fieldFolders
)

// MemoryStep is the amount +/- change the memory by.
const MemoryStep = 512

var fieldLabels = map[formField]string{
	fieldVGPU:                 "Virtual GPU",
	fieldNetworking:           "Networking",
	fieldAudioInput:           "Audio input",
	fieldVideoInput:           "Video input",
	fieldProtectedClient:      "Protected client",
	fieldPrinterRedirection:   "Printer redirection",
	fieldClipboardRedirection: "Clipboard redirection",
	fieldMemory:               "Memory",
	fieldLogonCommand:         "Logon command",
	fieldHostnameEnabled:      "Custom hostname",
	fieldHostname:             "Hostname",
	fieldDarkMode:             "Force dark mode",
}

var fieldFlags = map[formField]config.Flag{
	fieldVGPU:                 config.FlagVGPU,
	fieldNetworking:           config.FlagNetworking,
	fieldAudioInput:           config.FlagAudioInput,
	fieldVideoInput:           config.FlagVideoInput,
	fieldProtectedClient:      config.FlagProtectedClient,
	fieldPrinterRedirection:   config.FlagPrinterRedirection,
	fieldClipboardRedirection: config.FlagClipboardRedirection,
	fieldHostnameEnabled:      config.FlagHostname,
	fieldDarkMode:             config.FlagForceDarkMode,
}

// editTarget is what the text input is currently editing.
type editTarget int

const (
	editNone editTarget = iota
	editMemory
	editLogonCommand
	editHostname
	editFolderHost
	editFolderSandbox
)

type formKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Inc       key.Binding
	Dec       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Secure    key.Binding
	Default   key.Binding
	Testing   key.Binding
	Reset     key.Binding
	Preview   key.Binding
	Save      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newFormKeyMap() formKeyMap {
	return formKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "down")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle")),
		Inc:       key.NewBinding(key.WithKeys("+", "=", "right", "l"), key.WithHelp("+", "more memory")),
		Dec:       key.NewBinding(key.WithKeys("-", "left", "h"), key.WithHelp("-", "less memory")),
		Edit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Delete:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove folder")),
		Secure:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "secure")),
		Default:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "default")),
		Testing:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "testing")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Preview:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preview")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Edit, k.Secure, k.Default, k.Testing, k.Reset, k.Preview, k.Save, k.Quit}
}

func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Edit},
		{k.Inc, k.Dec, k.Delete},
		{k.Secure, k.Default, k.Testing, k.Reset},
		{k.Preview, k.Save, k.Quit},
	}
}

// form styles
var (
	formLabelStyle = lipgloss.NewStyle().Width(24)

	formValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	formDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	formWarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	formErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	formSectionStyle = lipgloss.NewStyle().
				Bold(true).
				MarginTop(1)

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1)
)

// FormOptions configures the form editor.
type FormOptions struct {
	// Title is shown above the form, usually the document path
	Title string

	// SandboxFolder is the sandbox path proposed for new mapped folders
	SandboxFolder string
}

// FormModel edits a Configuration. Every key press is translated into a
// call on the configuration's setters, presets or Reset.
type FormModel struct {
	cfg      config.Configuration
	original config.Configuration
	opts     FormOptions

	cursor int

	editing     editTarget
	input       textinput.Model
	folderIndex int
	pendingHost string

	showPreview bool
	confirmQuit bool
	status      string
	statusErr   bool

	km   formKeyMap
	help help.Model

	saved    bool
	quitting bool
	width    int
	height   int
}

// NewForm creates a form editor over a copy of cfg.
func NewForm(cfg config.Configuration, opts FormOptions) FormModel {
	if opts.SandboxFolder == "" {
		opts.SandboxFolder = config.DefaultSandboxFolder
	}

	ti := textinput.New()
	ti.Width = 60

	return FormModel{
		cfg:      cfg.Clone(),
		original: cfg.Clone(),
		opts:     opts,
		input:    ti,
		km:       newFormKeyMap(),
		help:     help.New(),
	}
}

func (m FormModel) Init() tea.Cmd {
	return nil
}

// Config returns the configuration as currently edited.
func (m FormModel) Config() config.Configuration {
	return m.cfg.Clone()
}

// Saved reports whether the user asked to save.
func (m FormModel) Saved() bool {
	return m.saved
}

// Dirty reports whether the configuration differs from the one the form
// was opened with.
func (m FormModel) Dirty() bool {
	return !m.cfg.Equal(m.original)
}

func (m FormModel) rowCount() int {
	return int(fieldFolders) + len(m.cfg.MappedFolders) + 1
}

func (m FormModel) addRow() int {
	return int(fieldFolders) + len(m.cfg.MappedFolders)
}

// folderAt returns the folder index under the cursor, or -1.
func (m FormModel) folderAt() int {
	i := m.cursor - int(fieldFolders)
	if i >= 0 && i < len(m.cfg.MappedFolders) {
		return i
	}
	return -1
}

func (m *FormModel) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.km.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.editing != editNone {
			return m.updateEditing(msg)
		}
		return m.updateNavigate(msg)
	}

	return m, nil
}

func (m FormModel) updateNavigate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	wasConfirming := m.confirmQuit
	m.confirmQuit = false

	switch {
	case key.Matches(msg, m.km.Up):
		m.cursor = (m.cursor - 1 + m.rowCount()) % m.rowCount()
	case key.Matches(msg, m.km.Down):
		m.cursor = (m.cursor + 1) % m.rowCount()

	case key.Matches(msg, m.km.Toggle):
		m.toggle()

	case key.Matches(msg, m.km.Inc):
		if formField(m.cursor) == fieldMemory {
			m.adjustMemory(MemoryStep)
		}
	case key.Matches(msg, m.km.Dec):
		if formField(m.cursor) == fieldMemory {
			m.adjustMemory(-MemoryStep)
		}

	case key.Matches(msg, m.km.Edit):
		return m, m.startEditing()

	case key.Matches(msg, m.km.Delete):
		if i := m.folderAt(); i >= 0 {
			if err := m.cfg.RemoveMappedFolder(i); err != nil {
				m.setStatus(err.Error(), true)
			} else {
				m.setStatus("Removed mapped folder", false)
			}
		}

	case key.Matches(msg, m.km.Secure):
		m.applyPreset(config.PresetSecure)
	case key.Matches(msg, m.km.Default):
		m.applyPreset(config.PresetDefault)
	case key.Matches(msg, m.km.Testing):
		m.applyPreset(config.PresetTesting)

	case key.Matches(msg, m.km.Reset):
		m.cfg.Reset()
		m.cursor = 0
		m.setStatus("Reset to defaults", false)

	case key.Matches(msg, m.km.Preview):
		m.showPreview = !m.showPreview

	case key.Matches(msg, m.km.Save):
		if err := m.cfg.Validate(); err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.saved = true
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.km.Quit):
		if m.Dirty() && !wasConfirming {
			m.confirmQuit = true
			m.setStatus("Unsaved changes: press q again to discard, ctrl+s to save", true)
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	if m.cursor >= m.rowCount() {
		m.cursor = m.rowCount() - 1
	}
	return m, nil
}

func (m *FormModel) toggle() {
	if flag, ok := fieldFlags[formField(m.cursor)]; ok {
		m.cfg.SetFlag(flag, !m.cfg.Flag(flag))
		return
	}
	if i := m.folderAt(); i >= 0 {
		f := m.cfg.MappedFolders[i]
		f.ReadOnly = !f.ReadOnly
		_ = m.cfg.UpdateMappedFolder(i, f)
	}
}

func (m *FormModel) adjustMemory(delta int) {
	mb := m.cfg.MemoryMB + delta
	mb = max(config.MinMemoryMB, min(config.MaxMemoryMB, mb))
	if err := m.cfg.SetMemoryMB(mb); err != nil {
		m.setStatus(err.Error(), true)
	}
}

func (m *FormModel) applyPreset(p config.Preset) {
	m.cfg.ApplyPreset(p)
	m.setStatus(fmt.Sprintf("Applied %s preset", p), false)
}

func (m *FormModel) startEditing() tea.Cmd {
	m.input.Reset()
	m.input.CharLimit = 0
	m.input.Placeholder = ""

	switch {
	case formField(m.cursor) == fieldMemory:
		m.editing = editMemory
		m.input.CharLimit = 5
		m.input.SetValue(strconv.Itoa(m.cfg.MemoryMB))
	case formField(m.cursor) == fieldLogonCommand:
		m.editing = editLogonCommand
		m.input.Placeholder = `C:\Windows\System32\cmd.exe`
		m.input.SetValue(m.cfg.LogonCommand)
	case formField(m.cursor) == fieldHostname:
		m.editing = editHostname
		m.input.CharLimit = config.MaxHostnameLength
		m.input.SetValue(m.cfg.HostnameValue)
	case m.folderAt() >= 0:
		m.editing = editFolderHost
		m.folderIndex = m.folderAt()
		m.input.Placeholder = `C:\path\on\host`
		m.input.SetValue(m.cfg.MappedFolders[m.folderIndex].HostFolder)
	case m.cursor == m.addRow():
		m.editing = editFolderHost
		m.folderIndex = -1
		m.input.Placeholder = `C:\path\on\host`
	default:
		return nil
	}

	m.input.CursorEnd()
	m.input.Focus()
	return textinput.Blink
}

func (m FormModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.stopEditing()
		return m, nil
	case tea.KeyEnter:
		return m, m.commitEditing()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *FormModel) stopEditing() {
	m.editing = editNone
	m.pendingHost = ""
	m.input.Blur()
}

// commitEditing applies the text input to the configuration. Folder edits
// take two steps: host path, then sandbox path.
func (m *FormModel) commitEditing() tea.Cmd {
	value := m.input.Value()

	switch m.editing {
	case editMemory:
		mb, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			m.setStatus("memory must be a whole number of MB", true)
			return nil
		}
		if err := m.cfg.SetMemoryMB(mb); err != nil {
			m.setStatus(err.Error(), true)
			return nil
		}

	case editLogonCommand:
		m.cfg.SetLogonCommand(value)

	case editHostname:
		if err := m.cfg.SetHostname(m.cfg.HostnameEnabled, value); err != nil {
			m.setStatus(err.Error(), true)
			return nil
		}

	case editFolderHost:
		m.pendingHost = strings.TrimSpace(value)
		sandbox := m.opts.SandboxFolder
		if m.folderIndex >= 0 {
			sandbox = m.cfg.MappedFolders[m.folderIndex].SandboxFolder
		}
		m.editing = editFolderSandbox
		m.input.Reset()
		m.input.Placeholder = `C:\path\in\sandbox`
		m.input.SetValue(sandbox)
		m.input.CursorEnd()
		return textinput.Blink

	case editFolderSandbox:
		sandbox := strings.TrimSpace(value)
		if m.folderIndex < 0 {
			f := config.NewMappedFolder(m.pendingHost)
			f.SandboxFolder = sandbox
			m.cfg.AddMappedFolder(f)
			m.cursor = m.addRow() - 1
			m.setStatus("Added mapped folder", false)
		} else {
			f := m.cfg.MappedFolders[m.folderIndex]
			f.HostFolder = m.pendingHost
			f.SandboxFolder = sandbox
			if err := m.cfg.UpdateMappedFolder(m.folderIndex, f); err != nil {
				m.setStatus(err.Error(), true)
			}
		}
	}

	m.stopEditing()
	return nil
}

func (m FormModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "Windows Sandbox Configuration"
	if m.opts.Title != "" {
		title += " - " + m.opts.Title
	}
	if m.Dirty() {
		title += " *"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	b.WriteString(formSectionStyle.Render("Sandbox"))
	b.WriteString("\n")
	for f := fieldVGPU; f <= fieldClipboardRedirection; f++ {
		b.WriteString(m.renderToggle(f))
	}
	b.WriteString(m.renderRow(fieldMemory, fmt.Sprintf("%d MB", m.cfg.MemoryMB)))
	b.WriteString(m.renderRow(fieldLogonCommand, m.cfg.LogonCommand))

	b.WriteString(formSectionStyle.Render("Appearance"))
	b.WriteString("\n")
	b.WriteString(m.renderToggle(fieldHostnameEnabled))
	b.WriteString(m.renderRow(fieldHostname, m.cfg.HostnameValue))
	b.WriteString(m.renderToggle(fieldDarkMode))

	b.WriteString(formSectionStyle.Render("Mapped folders"))
	b.WriteString("\n")
	for i, f := range m.cfg.MappedFolders {
		b.WriteString(m.renderFolder(i, f))
	}
	b.WriteString(m.renderLine(m.addRow(), "+ Add folder"))

	if m.editing != editNone {
		b.WriteString("\n")
		b.WriteString(m.editPrompt())
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(formErrorStyle.Render(m.status))
		} else {
			b.WriteString(formValueStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.km)))

	if m.showPreview {
		b.WriteString("\n")
		b.WriteString(previewStyle.Render(strings.TrimSuffix(generator.GenerateWSB(m.cfg), "\n")))
	}

	return b.String()
}

func (m FormModel) editPrompt() string {
	switch m.editing {
	case editMemory:
		return fmt.Sprintf("Memory in MB (%d-%d): ", config.MinMemoryMB, config.MaxMemoryMB)
	case editLogonCommand:
		return "Logon command: "
	case editHostname:
		return fmt.Sprintf("Hostname (max %d): ", config.MaxHostnameLength)
	case editFolderHost:
		return "Host folder: "
	case editFolderSandbox:
		return "Sandbox folder: "
	}
	return ""
}

func (m FormModel) renderLine(row int, text string) string {
	if m.cursor == row {
		return selectedStyle.Render("> "+text) + "\n"
	}
	return "  " + text + "\n"
}

func (m FormModel) renderToggle(f formField) string {
	checked := " "
	if m.cfg.Flag(fieldFlags[f]) {
		checked = "x"
	}
	return m.renderLine(int(f), fmt.Sprintf("[%s] %s", checked, fieldLabels[f]))
}

func (m FormModel) renderRow(f formField, value string) string {
	shown := formValueStyle.Render(value)
	if value == "" {
		shown = formDimStyle.Render("(not set)")
	}
	if f == fieldHostname && !m.cfg.HostnameEnabled {
		shown = formDimStyle.Render(value + " (disabled)")
	}
	return m.renderLine(int(f), formLabelStyle.Render(fieldLabels[f]+":")+shown)
}

func (m FormModel) renderFolder(i int, f config.MappedFolder) string {
	mode := "rw"
	if f.ReadOnly {
		mode = "ro"
	}
	text := fmt.Sprintf("[%s] %s -> %s", mode, orUnset(f.HostFolder), orUnset(f.SandboxFolder))
	if !f.Usable() {
		text += formWarnStyle.Render("  ⚠ skipped on export")
	}
	return m.renderLine(int(fieldFolders)+i, text)
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

// RunForm runs the interactive form editor and returns the edited
// configuration and whether the user saved it.
func RunForm(cfg config.Configuration, opts FormOptions) (config.Configuration, bool, error) {
	p := tea.NewProgram(NewForm(cfg, opts), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return config.Configuration{}, false, err
	}

	m := finalModel.(FormModel)
	return m.Config(), m.Saved(), nil
}
