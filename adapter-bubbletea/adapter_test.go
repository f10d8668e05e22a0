package bubble_adapter

import (
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/gomotion/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) Write(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func newTestModel(t *testing.T, lines []string, opts ...Option) (Model, *fakeClipboard) {
	t.Helper()

	navigator, err := core.NewNavigator(core.NewBufferFromLines(lines))
	require.NoError(t, err)

	clip := &fakeClipboard{}
	opts = append([]Option{WithClipboard(clip)}, opts...)
	return New(navigator, 80, 12, opts...), clip
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// press feeds keys to the model and returns the command of the last one.
func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(keyMsg(k))
		m = updated.(Model)
	}
	return m, cmd
}

func cursorPosition(m Model) (int, int) {
	p := m.Cursor().Position
	return p.Line(), p.Character()
}

func TestModel_WordMotions(t *testing.T) {
	m, _ := newTestModel(t, []string{"foo bar baz qux", "next"})

	m, _ = press(m, "w")
	line, char := cursorPosition(m)
	assert.Equal(t, 0, line)
	assert.Equal(t, 4, char)

	m, _ = press(m, "e")
	_, char = cursorPosition(m)
	assert.Equal(t, 6, char)

	m, _ = press(m, "b")
	_, char = cursorPosition(m)
	assert.Equal(t, 4, char)

	m, _ = press(m, "W", "W", "W")
	line, char = cursorPosition(m)
	assert.Equal(t, 1, line)
	assert.Equal(t, 0, char)
}

func TestModel_Counts(t *testing.T) {
	m, _ := newTestModel(t, []string{"abcdefghijklmnop"})

	m, _ = press(m, "1", "0", "l")
	_, char := cursorPosition(m)
	assert.Equal(t, 10, char)
	assert.Nil(t, m.pendingCount)

	// '0' without a pending count is a motion.
	m, _ = press(m, "0")
	_, char = cursorPosition(m)
	assert.Equal(t, 0, char)

	m, _ = press(m, "3")
	require.NotNil(t, m.pendingCount)
	assert.Equal(t, 3, *m.pendingCount)
	assert.Contains(t, m.View(), "3")

	m, _ = press(m, "w")
	assert.Nil(t, m.pendingCount)
}

func TestModel_TopAndBottom(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	m, _ := newTestModel(t, lines)

	m, _ = press(m, "G")
	line, char := cursorPosition(m)
	assert.Equal(t, 49, line)
	assert.Equal(t, 6, char)
	assert.Equal(t, 40, m.topLine)

	m, _ = press(m, "g")
	assert.True(t, m.pendingTop)

	m, _ = press(m, "g")
	assert.False(t, m.pendingTop)
	line, char = cursorPosition(m)
	assert.Equal(t, 0, line)
	assert.Equal(t, 0, char)
	assert.Equal(t, 0, m.topLine)

	// A different key after g cancels it and runs normally.
	m, _ = press(m, "g", "j")
	assert.False(t, m.pendingTop)
	line, _ = cursorPosition(m)
	assert.Equal(t, 1, line)
}

func TestModel_ParagraphKeys(t *testing.T) {
	m, _ := newTestModel(t, []string{"a", "b", "", "c"})

	m, _ = press(m, "}")
	line, _ := cursorPosition(m)
	assert.Equal(t, 1, line)

	m, _ = press(m, "}")
	line, _ = cursorPosition(m)
	assert.Equal(t, 3, line)

	m, _ = press(m, "{", "{")
	line, _ = cursorPosition(m)
	assert.Equal(t, 0, line)
}

func TestModel_CaretModeToggle(t *testing.T) {
	m, _ := newTestModel(t, []string{"foo bar"})
	assert.Contains(t, m.View(), "EXCLUSIVE")

	m, _ = press(m, "i", "$")
	assert.Equal(t, core.CaretInclusive, m.Cursor().Position.Mode())
	_, char := cursorPosition(m)
	assert.Equal(t, 7, char)
	assert.Contains(t, m.View(), "INCLUSIVE")

	m, _ = press(m, "esc")
	assert.Equal(t, core.CaretExclusive, m.Cursor().Position.Mode())
	_, char = cursorPosition(m)
	assert.Equal(t, 6, char)
}

func TestModel_WithCaretMode(t *testing.T) {
	m, _ := newTestModel(t, []string{"foo"}, WithCaretMode(core.CaretInclusive))
	assert.Equal(t, core.CaretInclusive, m.Cursor().Position.Mode())
}

func TestModel_StickyColumnThroughKeys(t *testing.T) {
	m, _ := newTestModel(t, []string{"abcdef", "ab", "abcdef"})

	m, _ = press(m, "$", "j")
	line, char := cursorPosition(m)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, char)

	m, _ = press(m, "j")
	_, char = cursorPosition(m)
	assert.Equal(t, 5, char)
}

func TestModel_Yank(t *testing.T) {
	m, clip := newTestModel(t, []string{"foo bar.baz"})

	m, cmd := press(m, "w", "y")
	assert.Equal(t, "bar", clip.text)
	assert.Contains(t, m.message, "bar")
	assert.NotNil(t, cmd)

	updated, _ := m.Update(clearMsg{})
	m = updated.(Model)
	assert.Empty(t, m.message)
}

func TestModel_YankErrors(t *testing.T) {
	m, clip := newTestModel(t, []string{"   ", "x"})

	m, _ = press(m, "y")
	require.Error(t, m.err)
	assert.Empty(t, clip.text)

	m, clip = newTestModel(t, []string{"foo"})
	clip.err = errors.New("no clipboard")
	m, _ = press(m, "y")
	require.EqualError(t, m.err, "no clipboard")
}

func TestModel_BoundaryError(t *testing.T) {
	m, _ := newTestModel(t, []string{"foo", "bar"})

	m, cmd := press(m, "k")
	require.Error(t, m.err)
	assert.True(t, core.IsBoundary(m.err))
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "start of buffer")

	updated, _ := m.Update(clearMsg{})
	m = updated.(Model)
	assert.NoError(t, m.err)
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t, []string{"foo"})

	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := press(m, k)
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, k)
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m, _ := newTestModel(t, []string{"foo"})
	assert.True(t, m.showHelp)

	m, _ = press(m, "?")
	assert.False(t, m.showHelp)
}

func TestModel_Resize(t *testing.T) {
	m, _ := newTestModel(t, []string{"foo"})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 8})
	m = updated.(Model)
	assert.Equal(t, 40, m.width)
	assert.Equal(t, 6, m.viewport.Height)
}

func TestModel_SetCursorClamps(t *testing.T) {
	m, _ := newTestModel(t, []string{"foo", "ba"})

	m.SetCursor(core.NewCursor(core.MustPosition(5, 9, core.CaretExclusive)))
	line, char := cursorPosition(m)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, char)
}

func TestModel_EmptyBuffer(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, _ = press(m, "j", "w", "G", "}")
	line, char := cursorPosition(m)
	assert.Equal(t, 0, line)
	assert.Equal(t, 0, char)
	assert.NotEmpty(t, m.View())
}
