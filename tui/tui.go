package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/mwhitby/advent/engine"
	"github.com/mwhitby/advent/types"
)

// rawLine stores an unstyled output line with its message kind, so we
// can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text    string
	kind    types.MessageKind
	isInput bool // echoed player input
}

// Model is the Bubble Tea model wrapping a game session.
type Model struct {
	state *types.GameState

	viewport viewport.Model
	input    textinput.Model
	history  *inputHistory

	rawLines []rawLine
	printed  int // history entries already shown
	turns    int

	width    int
	height   int
	ready    bool
	quitting bool
	lastCmd  string
}

// New creates a TUI model around an existing session.
func New(s *types.GameState) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	return Model{
		state:   s,
		input:   ti,
		history: newInputHistory(100),
	}
}

// Run starts the Bubble Tea program.
func Run(s *types.GameState) error {
	p := tea.NewProgram(New(s), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init produces the opening messages and the first room description.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg { return initialLookMsg{} })
}

// initialLookMsg triggers the opening "look" once the program starts.
type initialLookMsg struct{}

// Update handles key presses, window resizes, and game output.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case initialLookMsg:
		m.state = engine.Execute(m.state, "look")
		m = m.collectNew("")

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.reset()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" {
		return m, nil
	}

	m.history.push(input)
	m.history.reset()

	// "again" / "g" repeats the last command.
	lower := strings.ToLower(input)
	if lower == "again" || lower == "g" {
		if m.lastCmd == "" {
			m.rawLines = append(m.rawLines,
				rawLine{text: "> " + input, isInput: true},
				rawLine{text: "Nothing to repeat.", kind: types.MessageSystem},
				rawLine{})
			m.refreshViewport()
			return m, nil
		}
		input = m.lastCmd
	} else {
		m.lastCmd = input
	}

	m.state = engine.Execute(m.state, input)
	m.turns++
	m = m.collectNew(input)

	if m.state.Exited {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// collectNew appends history entries added since the last call to the
// raw line buffer and refreshes the viewport.
func (m Model) collectNew(echoed string) Model {
	if echoed != "" {
		m.rawLines = append(m.rawLines, rawLine{text: "> " + echoed, isInput: true})
	}

	for _, msg := range m.state.History[m.printed:] {
		for _, line := range strings.Split(msg.Text, "\n") {
			m.rawLines = append(m.rawLines, rawLine{text: line, kind: msg.Kind})
		}
	}
	m.printed = len(m.state.History)

	// Blank line separator between turns.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()
	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current
// width and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordwrap.String(rl.text, width)

		if rl.isInput {
			styled = append(styled, stylePlayerInput.Render(wrapped))
		} else {
			styled = append(styled, renderMessage(rl.kind, wrapped))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// View renders the full layout: viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for input history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
