package bubble_adapter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/gomotion/adapter-bubbletea/highlighter"
	"github.com/ionut-t/gomotion/core"
	"github.com/rivo/uniseg"
)

// render draws the visible slice of the buffer into the viewport.
func (m *Model) render() {
	if m.buffer == nil {
		return
	}

	lineCount := m.buffer.LineCount()
	last := min(m.topLine+m.viewport.Height, lineCount)
	numberWidth := m.lineNumberWidth(lineCount)

	rows := make([]string, 0, m.viewport.Height)
	for line := m.topLine; line < last; line++ {
		var sb strings.Builder
		if m.showLineNumbers {
			style := m.theme.LineNumberStyle
			if line == m.cursor.Position.Line() {
				style = m.theme.CurrentLineNumberStyle
			}
			sb.WriteString(style.Width(numberWidth).Render(strconv.Itoa(line+1)) + " ")
		}
		sb.WriteString(m.renderLine(line))
		rows = append(rows, sb.String())
	}

	if lineCount == 0 {
		rows = append(rows, m.theme.CursorStyle.Render(" "))
	}

	m.viewport.SetContent(strings.Join(rows, "\n"))
	m.viewport.YOffset = 0
}

func (m *Model) lineNumberWidth(lineCount int) int {
	return min(max(4, len(strconv.Itoa(max(1, lineCount)))), 10)
}

// renderLine groups characters into segments sharing a token and renders
// the character under the cursor on its own.
func (m *Model) renderLine(line int) string {
	runes := []rune(m.buffer.LineText(line))

	var spans []highlighter.Span
	if m.highlighter != nil {
		spans = m.highlighter.Spans(line)
	}

	cursorCol := -1
	if line == m.cursor.Position.Line() {
		cursorCol = m.cursor.Position.Character()
	}

	var sb strings.Builder
	start := 0
	for start < len(runes) {
		if start == cursorCol {
			sb.WriteString(m.theme.CursorStyle.Render(string(runes[start])))
			start++
			continue
		}

		span, styled := highlighter.SpanAt(spans, start)
		end := len(runes)
		if styled {
			end = span.End
		} else if next, ok := nextSpanStart(spans, start); ok {
			end = next
		}
		if cursorCol > start && cursorCol < end {
			end = cursorCol
		}

		segment := string(runes[start:end])
		if styled {
			segment = m.highlighter.Style(span.Type).Render(segment)
		}
		sb.WriteString(segment)
		start = end
	}

	// Inclusive caret past the last character.
	if cursorCol >= len(runes) {
		sb.WriteString(m.theme.CursorStyle.Render(" "))
	}

	return sb.String()
}

func nextSpanStart(spans []highlighter.Span, col int) (int, bool) {
	for _, s := range spans {
		if s.Start > col {
			return s.Start, true
		}
	}
	return 0, false
}

func (m *Model) statusLine() string {
	pos := m.cursor.Position

	var mode string
	switch pos.Mode() {
	case core.CaretInclusive:
		mode = m.theme.InclusiveModeStyle.Render(" INCLUSIVE ")
	default:
		mode = m.theme.ExclusiveModeStyle.Render(" EXCLUSIVE ")
	}

	pending := ""
	if m.pendingCount != nil {
		pending = strconv.Itoa(*m.pendingCount)
	}
	if m.pendingTop {
		pending += "g"
	}

	// Display column differs from the character offset for wide characters and tabs.
	runes := []rune(m.buffer.LineText(pos.Line()))
	displayCol := uniseg.StringWidth(string(runes[:min(pos.Character(), len(runes))])) + 1

	info := fmt.Sprintf("%s  %d:%d", pending, pos.Line()+1, pos.Character()+1)
	if displayCol != pos.Character()+1 {
		info += fmt.Sprintf("-%d", displayCol)
	}
	info += " "

	gap := strings.Repeat(" ", max(0, m.width-lipgloss.Width(mode)-lipgloss.Width(info)))

	return mode + m.theme.StatusLineStyle.Render(gap+info)
}

func (m *Model) commandLine() string {
	var line string
	switch {
	case m.err != nil:
		line = m.theme.ErrorStyle.Render(m.err.Error())
	case m.message != "":
		line = m.theme.MessageStyle.Render(m.message)
	case m.showHelp:
		line = m.help.ShortHelpView(m.keys.ShortHelp())
	}

	if pad := m.width - lipgloss.Width(line); pad > 0 {
		line += m.theme.CommandLineStyle.Render(strings.Repeat(" ", pad))
	}
	return line
}
