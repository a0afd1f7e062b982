// Package tui provides a Bubble Tea terminal user interface for tracker-convert.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/tracker-convert/internal/config"
	"github.com/handiism/tracker-convert/internal/convert"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// maxLogs is how many progress messages stay on screen.
const maxLogs = 10

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateConverting
	StateComplete
	StateError
)

// Input field indexes.
const (
	fieldInput = iota
	fieldOutput
	fieldCount
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   convert.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	inputs   []textinput.Model
	focus    int
	spinner  spinner.Model
	settings *config.Settings
	logs     []LogEntry
	summary  *convert.Summary
	err      error

	ctx    context.Context
	cancel context.CancelFunc

	// Options
	dryRun    bool
	asciiOnly bool
	verbose   bool

	width  int
	height int
}

// NewModel creates a new TUI model, pre-filled from settings.
func NewModel(settings *config.Settings) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 1024
		ti.Width = 60
		inputs[i] = ti
	}
	inputs[fieldInput].Placeholder = "vinyl-cd-tracker-data.json"
	inputs[fieldInput].SetValue(settings.InputPath)
	inputs[fieldInput].Focus()
	inputs[fieldOutput].Placeholder = "converted_data.json"
	inputs[fieldOutput].SetValue(settings.OutputPath)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		inputs:    inputs,
		spinner:   sp,
		settings:  settings,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
		dryRun:    settings.DryRun,
		asciiOnly: settings.ASCIIOnly,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// ConvertDoneMsg is sent when a conversion run finishes.
type ConvertDoneMsg struct {
	Summary *convert.Summary
	Events  []convert.ProgressEvent
	Err     error
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateConverting {
				m.cancel()
				return m, nil
			}
			return m, tea.Quit

		case "tab", "shift+tab", "up", "down":
			if m.state == StateInput {
				m.moveFocus(msg.String() == "shift+tab" || msg.String() == "up")
				return m, nil
			}

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.inputs[fieldInput].Value()) != "" {
				m.state = StateConverting
				return m, tea.Batch(m.runConversion(), m.spinner.Tick)
			}

		case "ctrl+t":
			if m.state == StateInput {
				m.dryRun = !m.dryRun
				return m, nil
			}

		case "ctrl+x":
			if m.state == StateInput {
				m.asciiOnly = !m.asciiOnly
				return m, nil
			}

		case "ctrl+o":
			if m.state == StateInput {
				m.verbose = !m.verbose
				return m, nil
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m.state = StateInput
				m.logs = nil
				m.summary = nil
				m.err = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.focus = fieldInput
				m.inputs[fieldInput].Focus()
				m.inputs[fieldOutput].Blur()
				return m, textinput.Blink
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ConvertDoneMsg:
		for _, event := range msg.Events {
			m.addLog(event)
		}
		m.summary = msg.Summary
		switch {
		case msg.Err != nil && errors.Is(msg.Err, convert.ErrInputNotFound):
			m.state = StateError
			m.err = fmt.Errorf("file not found: %s", m.inputs[fieldInput].Value())
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
		}
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// moveFocus cycles focus between the path inputs.
func (m *Model) moveFocus(back bool) {
	m.inputs[m.focus].Blur()
	if back {
		m.focus = (m.focus + fieldCount - 1) % fieldCount
	} else {
		m.focus = (m.focus + 1) % fieldCount
	}
	m.inputs[m.focus].Focus()
}

// addLog appends a progress event, dropping verbose ones unless enabled.
func (m *Model) addLog(event convert.ProgressEvent) {
	if event.Level == convert.LevelVerbose && !m.verbose {
		return
	}
	m.logs = append(m.logs, LogEntry{Message: event.Message, Level: event.Level})
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎵 Tracker Convert"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Convert a vinyl/CD tracker export for the music tracker"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateConverting:
		b.WriteString(m.viewConverting())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Export file:"))
	b.WriteString("\n")
	b.WriteString(m.inputs[fieldInput].View())
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("Output file:"))
	b.WriteString("\n")
	b.WriteString(m.inputs[fieldOutput].View())
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Dry run, do not write (ctrl+t)\n", checkbox(m.dryRun)))
	b.WriteString(fmt.Sprintf("  %s Escape non-ASCII characters (ctrl+x)\n", checkbox(m.asciiOnly)))
	b.WriteString(fmt.Sprintf("  %s Verbose output (ctrl+o)\n", checkbox(m.verbose)))

	return b.String()
}

func (m Model) viewConverting() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Converting..."))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	if m.summary != nil {
		heading := "✨ Conversion Complete!"
		if !m.summary.Written {
			heading = "✨ Dry Run Complete!"
		}
		box := boxStyle.Render(fmt.Sprintf(
			"%s\n\n"+
				"Items: %d\n"+
				"Collection: %d\n"+
				"Wishlist: %d\n"+
				"Output: %s",
			heading,
			m.summary.Total,
			m.summary.Collection,
			m.summary.Wishlist,
			m.summary.OutputPath,
		))
		b.WriteString(box)
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case convert.LevelError:
			style = errorStyle
			prefix = "✗"
		case convert.LevelWarning:
			style = warningStyle
			prefix = "!"
		case convert.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case convert.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + strings.TrimSpace(log.Message)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: convert • tab: switch field • ctrl+t: dry run • ctrl+x: ascii • ctrl+o: verbose • esc: quit"
	case StateConverting:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: convert again • q: quit"
	}
	return ""
}

// runConversion returns a command that converts with the current form values.
func (m Model) runConversion() tea.Cmd {
	settings := *m.settings
	settings.InputPath = strings.TrimSpace(m.inputs[fieldInput].Value())
	if out := strings.TrimSpace(m.inputs[fieldOutput].Value()); out != "" {
		settings.OutputPath = out
	}
	settings.DryRun = m.dryRun
	settings.ASCIIOnly = m.asciiOnly
	ctx := m.ctx

	return func() tea.Msg {
		var events []convert.ProgressEvent
		manager := convert.NewManager(&settings, nil, func(event convert.ProgressEvent) {
			events = append(events, event)
		})

		summary, err := manager.Run(ctx)
		return ConvertDoneMsg{Summary: summary, Events: events, Err: err}
	}
}

func checkbox(on bool) string {
	if on {
		return "[×]"
	}
	return "[ ]"
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
