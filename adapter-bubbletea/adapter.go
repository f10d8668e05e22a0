package bubble_adapter

import (
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/gomotion/adapter-bubbletea/highlighter"
	"github.com/ionut-t/gomotion/core"
)

const messageDuration = 3 * time.Second

type Theme struct {
	ExclusiveModeStyle     lipgloss.Style
	InclusiveModeStyle     lipgloss.Style
	StatusLineStyle        lipgloss.Style
	CommandLineStyle       lipgloss.Style
	MessageStyle           lipgloss.Style
	ErrorStyle             lipgloss.Style
	LineNumberStyle        lipgloss.Style
	CurrentLineNumberStyle lipgloss.Style
	CursorStyle            lipgloss.Style
}

var DefaultTheme = Theme{
	ExclusiveModeStyle:     lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")),
	InclusiveModeStyle:     lipgloss.NewStyle().Background(lipgloss.Color("26")).Foreground(lipgloss.Color("255")),
	StatusLineStyle:        lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	CommandLineStyle:       lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")),
	MessageStyle:           lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:             lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	LineNumberStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(4).Align(lipgloss.Right),
	CurrentLineNumberStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(4).Align(lipgloss.Right),
	CursorStyle:            lipgloss.NewStyle().Reverse(true),
}

// Clipboard receives yanked text.
type Clipboard interface {
	Write(text string) error
}

type atottoClipboard struct{}

func (c *atottoClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

// Model is a read-only vi-style viewer over a core.Buffer.
type Model struct {
	buffer          core.Buffer
	navigator       *core.Navigator
	cursor          core.Cursor
	viewport        viewport.Model
	help            help.Model
	keys            KeyMap
	theme           Theme
	highlighter     *highlighter.Highlighter
	clipboard       Clipboard
	width           int
	height          int
	topLine         int
	showLineNumbers bool
	showHelp        bool
	pendingCount    *int
	pendingTop      bool
	message         string
	err             error
}

type Option func(*Model)

func WithTheme(theme Theme) Option {
	return func(m *Model) { m.theme = theme }
}

func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) { m.keys = keys }
}

func WithClipboard(c Clipboard) Option {
	return func(m *Model) { m.clipboard = c }
}

// WithHighlighter enables syntax highlighting; the buffer is tokenized once.
func WithHighlighter(h *highlighter.Highlighter) Option {
	return func(m *Model) { m.highlighter = h }
}

func WithLineNumbers(show bool) Option {
	return func(m *Model) { m.showLineNumbers = show }
}

// WithCaretMode sets the caret mode of the initial cursor.
func WithCaretMode(mode core.CaretMode) Option {
	return func(m *Model) {
		if p, err := m.cursor.Position.WithMode(mode); err == nil {
			m.cursor.Position = p
		}
	}
}

type clearMsg struct{}

// New creates a viewer with the cursor at the start of the buffer in exclusive caret mode.
func New(navigator *core.Navigator, width, height int, opts ...Option) Model {
	m := Model{
		buffer:          navigator.Buffer(),
		navigator:       navigator,
		cursor:          core.NewCursor(core.MustPosition(0, 0, core.CaretExclusive)),
		viewport:        viewport.New(width, max(height-2, 1)),
		help:            help.New(),
		keys:            DefaultKeyMap,
		theme:           DefaultTheme,
		clipboard:       &atottoClipboard{},
		showLineNumbers: true,
		showHelp:        true,
	}

	for _, opt := range opts {
		opt(&m)
	}

	if m.highlighter != nil {
		m.highlighter.Tokenize(bufferLines(m.buffer))
	}

	m.SetSize(width, height)

	return m
}

func bufferLines(buffer core.Buffer) []string {
	lines := make([]string, buffer.LineCount())
	for i := range lines {
		lines[i] = buffer.LineText(i)
	}
	return lines
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-2, 1)
	m.help.Width = width
	m.scrollToCursor()
	m.render()
}

// Cursor returns the current cursor.
func (m *Model) Cursor() core.Cursor {
	return m.cursor
}

// SetCursor moves the cursor, clamping it to the buffer.
func (m *Model) SetCursor(c core.Cursor) {
	c.Position = c.Position.Clamp(m.buffer)
	m.cursor = c
	m.scrollToCursor()
	m.render()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		cmds = append(cmds, m.handleKey(msg))
		m.scrollToCursor()
		m.render()

	case clearMsg:
		m.message = ""
		m.err = nil
	}

	return m, tea.Batch(cmds...)
}

// handleKey processes one key press and returns a command to clear any message it set.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if digit, ok := countDigit(msg, m.pendingCount != nil); ok {
		count := digit
		if m.pendingCount != nil {
			count = *m.pendingCount*10 + digit
		}
		m.pendingCount = &count
		return nil
	}

	count := 1
	if m.pendingCount != nil {
		count = *m.pendingCount
		m.pendingCount = nil
	}

	if m.pendingTop {
		m.pendingTop = false
		if key.Matches(msg, m.keys.Top) {
			return m.apply(core.MotionBufferStart, count)
		}
	}

	switch {
	case key.Matches(msg, m.keys.Top):
		m.pendingTop = true
		return nil
	case key.Matches(msg, m.keys.Inclusive):
		return m.setCaretMode(core.CaretInclusive)
	case key.Matches(msg, m.keys.Exclusive):
		return m.setCaretMode(core.CaretExclusive)
	case key.Matches(msg, m.keys.Yank):
		return m.yank()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return nil
	}

	for _, mb := range m.keys.motionBindings() {
		if key.Matches(msg, mb.binding) {
			return m.apply(mb.motion, count)
		}
	}

	return nil
}

// countDigit reports whether msg extends a count. '0' only counts after another digit.
func countDigit(msg tea.KeyMsg, counting bool) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r >= '1' && r <= '9' {
		return int(r - '0'), true
	}
	if r == '0' && counting {
		return 0, true
	}
	return 0, false
}

func (m *Model) apply(motion core.Motion, count int) tea.Cmd {
	cursor, err := m.navigator.Apply(m.cursor, motion, count)
	m.cursor = cursor
	if err != nil {
		return m.dispatchError(err)
	}
	return nil
}

func (m *Model) setCaretMode(mode core.CaretMode) tea.Cmd {
	p, err := m.cursor.Position.WithMode(mode)
	if err != nil {
		return m.dispatchError(err)
	}
	m.cursor.Position = p.Clamp(m.buffer)
	return nil
}

// yank copies the word under the cursor to the clipboard.
func (m *Model) yank() tea.Cmd {
	line := m.buffer.LineText(m.cursor.Position.Line())
	run, ok := m.navigator.Classifiers().Word.RunAt(line, m.cursor.Position.Character())
	if !ok {
		return m.dispatchError(errors.New("nothing to yank"))
	}

	text := string([]rune(line)[run.Start : run.Start+run.Length])
	if err := m.clipboard.Write(text); err != nil {
		return m.dispatchError(err)
	}

	return m.dispatchMessage(fmt.Sprintf("%q yanked", text))
}

func (m *Model) dispatchMessage(message string) tea.Cmd {
	m.message = message
	m.err = nil
	return clearAfter(messageDuration)
}

func (m *Model) dispatchError(err error) tea.Cmd {
	m.message = ""
	m.err = err
	return clearAfter(messageDuration)
}

func clearAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearMsg{}
	})
}

// scrollToCursor keeps the cursor line inside the visible slice.
func (m *Model) scrollToCursor() {
	line := m.cursor.Position.Line()
	height := m.viewport.Height

	if line < m.topLine {
		m.topLine = line
	} else if line >= m.topLine+height {
		m.topLine = line - height + 1
	}

	maxTop := max(m.buffer.LineCount()-height, 0)
	m.topLine = min(max(m.topLine, 0), maxTop)
}

func (m Model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewport.View(),
		m.statusLine(),
		m.commandLine(),
	)
}
