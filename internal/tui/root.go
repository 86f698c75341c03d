package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/radix-cli/radix/internal/model"
	"github.com/radix-cli/radix/internal/session"
)

// ViewMode represents the current view
type ViewMode int

const (
	ViewModeMain ViewMode = iota // transcript + input
	ViewModeHelp                 // help overlay
)

// Available commands for suggestions
var availableCommands = []struct {
	cmd  string
	desc string
}{
	{":from", "change input base (hex, dec, bin)"},
	{":to", "change output base (hex, dec, bin)"},
	{":help", "show usage"},
	{":quit", "quit"},
}

// Model is the root Bubble Tea model
type Model struct {
	// Terminal dimensions
	width  int
	height int

	// View state
	viewMode ViewMode

	// Conversion state
	sess *session.Session

	// Line input
	input          textinput.Model
	inputFocused   bool
	commandHistory []string
	historyIndex   int

	// Transcript
	lines    []model.Line
	viewport viewport.Model

	// Command suggestions
	showSuggestions    bool
	selectedSuggestion int

	// Key bindings
	keys KeyMap

	// Debug panel
	debug DebugPanel

	// Ready state
	ready bool
}

// NewRootModel creates the root model around an existing session.
func NewRootModel(sess *session.Session, debug bool) Model {
	ti := textinput.New()
	ti.Prompt = promptFor(sess)
	ti.PromptStyle = InputPromptStyle
	ti.CharLimit = 0
	ti.Width = 80 // Default width, will be updated on WindowSizeMsg
	ti.Focus()

	return Model{
		viewMode:     ViewModeMain,
		sess:         sess,
		input:        ti,
		inputFocused: true,
		historyIndex: 0,
		keys:         DefaultKeyMap(),
		debug:        NewDebugPanel(debug),
	}
}

// promptFor builds the input prompt from the session's input base,
// e.g. "<hex>$ ".
func promptFor(sess *session.Session) string {
	return "<" + sess.PromptLabel() + ">$ "
}

// isQuit reports whether line is one of the quit commands. Quit is
// owned by the driver, not by session.Execute.
func isQuit(line string) bool {
	return line == session.Sentinel+"q" || line == session.Sentinel+"quit"
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case tea.KeyMsg:
		// Ctrl+C always quits
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		// Help overlay swallows everything and closes on ?/esc/q
		if m.viewMode == ViewModeHelp {
			if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Quit) {
				m.viewMode = ViewModeMain
			}
			return m, nil
		}

		if m.inputFocused {
			return m.updateFocusedInput(msg)
		}

		// Unfocused: transcript navigation and global keys
		switch {
		case key.Matches(msg, m.keys.Help):
			m.viewMode = ViewModeHelp
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Focus):
			m.inputFocused = true
			cmd := m.input.Focus()
			return m, cmd
		case key.Matches(msg, m.keys.Home):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.End):
			m.viewport.GotoBottom()
			return m, nil
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// updateFocusedInput handles key presses while the line input owns
// the keyboard.
func (m Model) updateFocusedInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	suggestions := m.filteredSuggestions()

	switch msg.Type {
	case tea.KeyEnter:
		// A visible suggestion completes instead of submitting
		if m.showSuggestions && len(suggestions) > 0 {
			m.completeSuggestion(suggestions)
			return m, nil
		}
		line := m.input.Value()
		m.input.SetValue("")
		m.showSuggestions = false
		m.selectedSuggestion = 0
		cmd := m.submitLine(line)
		return m, cmd

	case tea.KeyTab:
		if m.showSuggestions && len(suggestions) > 0 {
			m.completeSuggestion(suggestions)
		}
		return m, nil

	case tea.KeyEsc:
		if m.showSuggestions {
			m.showSuggestions = false
			m.selectedSuggestion = 0
		} else {
			m.inputFocused = false
			m.input.Blur()
		}
		return m, nil

	case tea.KeyUp:
		if m.showSuggestions && len(suggestions) > 0 {
			if m.selectedSuggestion > 0 {
				m.selectedSuggestion--
			}
			return m, nil
		}
		// History recall on an empty line
		if len(m.commandHistory) > 0 && m.historyIndex > 0 {
			m.historyIndex--
			m.input.SetValue(m.commandHistory[m.historyIndex])
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.showSuggestions && len(suggestions) > 0 {
			if m.selectedSuggestion < len(suggestions)-1 {
				m.selectedSuggestion++
			}
			return m, nil
		}
		if len(m.commandHistory) > 0 && m.historyIndex < len(m.commandHistory) {
			m.historyIndex++
			if m.historyIndex == len(m.commandHistory) {
				m.input.SetValue("")
			} else {
				m.input.SetValue(m.commandHistory[m.historyIndex])
				m.input.CursorEnd()
			}
		}
		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.refreshSuggestions()
		return m, cmd
	}
}

// submitLine dispatches one line of input: quit, command, or numeral.
func (m *Model) submitLine(raw string) tea.Cmd {
	line := strings.TrimSpace(raw)
	if line == "" {
		return nil
	}

	m.commandHistory = append(m.commandHistory, line)
	m.historyIndex = len(m.commandHistory)

	if isQuit(line) {
		return tea.Quit
	}

	if m.sess.IsCommand(line) {
		m.debug.AddEvent("command", line)
		showHelp, err := m.sess.Execute(line)
		switch {
		case err != nil:
			m.debug.AddEvent("command-error", err.Error())
			m.appendLine(model.LineError, "Error: "+err.Error())
		case showHelp:
			m.viewMode = ViewModeHelp
		default:
			m.appendLine(model.LineSystem,
				"now converting "+m.sess.PromptLabel()+" to "+m.sess.OutputLabel())
			m.input.Prompt = promptFor(m.sess)
		}
		return nil
	}

	m.debug.AddEvent("convert", line)
	m.appendLine(model.LineInput, promptFor(m.sess)+line)
	out, err := m.sess.Convert(line)
	if err != nil {
		m.debug.AddEvent("parse-error", err.Error())
		m.appendLine(model.LineError, "Error: "+err.Error())
		return nil
	}
	m.appendLine(model.LineResult, "<"+m.sess.OutputLabel()+"> "+out)
	return nil
}

// appendLine adds a transcript line and keeps the viewport pinned to
// the bottom.
func (m *Model) appendLine(t model.LineType, text string) {
	m.lines = append(m.lines, model.NewLine(t, text))
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

// refreshSuggestions recomputes suggestion visibility from the input:
// the box shows while a command keyword is being typed, before the
// first space.
func (m *Model) refreshSuggestions() {
	val := m.input.Value()
	show := strings.HasPrefix(val, session.Sentinel) && !strings.Contains(val, " ")
	if show != m.showSuggestions {
		m.selectedSuggestion = 0
	}
	m.showSuggestions = show
}

// filteredSuggestions returns commands matching the typed prefix.
func (m Model) filteredSuggestions() []struct{ cmd, desc string } {
	if !m.showSuggestions {
		return nil
	}
	val := m.input.Value()
	var out []struct{ cmd, desc string }
	for _, c := range availableCommands {
		if strings.HasPrefix(c.cmd, val) {
			out = append(out, struct{ cmd, desc string }{c.cmd, c.desc})
		}
	}
	return out
}

// completeSuggestion writes the selected suggestion into the input.
func (m *Model) completeSuggestion(suggestions []struct{ cmd, desc string }) {
	if m.selectedSuggestion >= len(suggestions) {
		m.selectedSuggestion = 0
	}
	m.input.SetValue(suggestions[m.selectedSuggestion].cmd + " ")
	m.input.CursorEnd()
	m.showSuggestions = false
	m.selectedSuggestion = 0
}

// resize recomputes widget dimensions from the terminal size.
func (m *Model) resize() {
	transcriptWidth := m.width
	if m.debug.IsEnabled() {
		transcriptWidth = m.width - debugPanelWidth - 1
	}

	// header(2) + input(3) + status(1) + transcript borders(2)
	transcriptHeight := m.height - 8
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}

	m.viewport.Width = transcriptWidth - 4
	if m.viewport.Width < 1 {
		m.viewport.Width = 1
	}
	m.viewport.Height = transcriptHeight

	inputWidth := m.width - 8 - len(m.input.Prompt)
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.input.Width = inputWidth

	if len(m.lines) > 0 {
		m.viewport.SetContent(m.renderTranscript())
		m.viewport.GotoBottom()
	}
}

const debugPanelWidth = 44

// View renders the model
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.viewMode == ViewModeHelp {
		return m.helpView()
	}
	return m.mainView()
}

// mainView renders the transcript, input and status bar.
func (m Model) mainView() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())

	transcriptWidth := m.width - 2
	if m.debug.IsEnabled() {
		transcriptWidth = m.width - debugPanelWidth - 3
	}
	transcript := TranscriptStyle.
		Width(transcriptWidth).
		Height(m.viewport.Height).
		Render(m.viewport.View())

	if m.debug.IsEnabled() {
		debugPanel := m.debug.Render(debugPanelWidth, m.viewport.Height+2)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, transcript, " ", debugPanel))
	} else {
		b.WriteString(transcript)
	}
	b.WriteString("\n")

	b.WriteString(m.renderInput())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return b.String()
}

// renderHeader renders the title line.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(ColorBlue).
		Bold(true).
		Render("RADIX")

	subtitle := lipgloss.NewStyle().
		Foreground(ColorFgMuted).
		Render("hex · dec · bin converter")

	return lipgloss.NewStyle().
		PaddingLeft(1).
		Width(m.width).
		Render(title+"  "+subtitle) + "\n"
}

// renderTranscript renders all transcript lines with per-type styles.
func (m Model) renderTranscript() string {
	if len(m.lines) == 0 {
		return lipgloss.NewStyle().
			Foreground(ColorFgMuted).
			Render("Type a " + m.sess.PromptLabel() + " numeral and press Enter.\nType :help for commands.")
	}

	var b strings.Builder
	for i, line := range m.lines {
		if i > 0 {
			b.WriteString("\n")
		}
		switch line.Type {
		case model.LineResult:
			b.WriteString(ResultStyle.Render(line.Text))
		case model.LineError:
			b.WriteString(ErrorStyle.Render(line.Text))
		case model.LineSystem:
			b.WriteString(SystemStyle.Render(line.Text))
		default:
			b.WriteString(InputEchoStyle.Render(line.Text))
		}
	}
	return b.String()
}

// renderInput renders the line input with the suggestion box above it.
func (m Model) renderInput() string {
	var b strings.Builder

	if m.showSuggestions && m.inputFocused {
		suggestions := m.filteredSuggestions()
		if len(suggestions) > 0 {
			var content strings.Builder
			for i, s := range suggestions {
				style := SuggestionStyle
				if i == m.selectedSuggestion {
					style = SuggestionSelectedStyle
				}
				content.WriteString(style.Render(s.cmd))
				content.WriteString(SuggestionDescStyle.Render(" - " + s.desc))
				content.WriteString("\n")
			}
			box := lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder).
				Padding(0, 1).
				Width(m.width - 4).
				Render(strings.TrimSuffix(content.String(), "\n"))
			b.WriteString(box)
			b.WriteString("\n")
		}
	}

	borderColor := ColorBorder
	if m.inputFocused {
		borderColor = ColorGreen
	}
	b.WriteString(lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(m.width - 4).
		Render(m.input.View()))

	return b.String()
}

// renderStatusBar renders the conversion direction and key hints.
func (m Model) renderStatusBar() string {
	direction := StatusDirectionStyle.Render(m.sess.PromptLabel() + " → " + m.sess.OutputLabel())

	lineCount := lipgloss.NewStyle().
		Foreground(ColorFgMuted).
		Render(" │ Lines: " + strconv.Itoa(len(m.lines)))

	mutedStyle := lipgloss.NewStyle().Foreground(ColorFgMuted)
	keyStyle := lipgloss.NewStyle().Foreground(ColorFgPrimary)

	var helpHint string
	if m.inputFocused {
		helpHint = mutedStyle.Render(" │ ") +
			keyStyle.Render("Enter") + mutedStyle.Render(" convert │ ") +
			keyStyle.Render("Tab") + mutedStyle.Render(" complete │ ") +
			keyStyle.Render("Esc") + mutedStyle.Render(" unfocus │ ") +
			keyStyle.Render(":help") + mutedStyle.Render(" usage")
	} else {
		helpHint = mutedStyle.Render(" │ ") +
			keyStyle.Render("/") + mutedStyle.Render(" input │ ") +
			keyStyle.Render("?") + mutedStyle.Render(" help │ ") +
			keyStyle.Render("q") + mutedStyle.Render(" quit")
	}

	return StatusBarStyle.Render(direction + lineCount + helpHint)
}

// helpView renders the usage overlay.
func (m Model) helpView() string {
	title := HelpTitleStyle.Render("Base Converter")

	var b strings.Builder
	for _, line := range strings.Split(session.Usage, "\n") {
		cmd, desc, found := strings.Cut(line, "  ")
		if found {
			b.WriteString(HelpKeyStyle.Render(cmd))
			b.WriteString(HelpDescStyle.Render("  " + strings.TrimSpace(desc)))
		} else {
			b.WriteString(HelpDescStyle.Render(line))
		}
		b.WriteString("\n")
	}

	content := title + "\n\n" + b.String() + "\n" + HelpDescStyle.Render("Press ? or Esc to close")

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		HelpStyle.Render(content),
	)
}
