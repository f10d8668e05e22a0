package core

import (
	"bytes"
	"strings"
	"unicode"
)

// Buffer is the read-only view of line text the motions work against.
// Line numbers and character offsets are zero-based; characters are runes.
type Buffer interface {
	LineCount() int                  // Number of lines
	LineText(line int) string        // Text of a line without its terminator
	FirstNonWhitespace(line int) int // Offset after the leading whitespace run
	IsFirstLine(p Position) bool
	IsLastLine(p Position) bool
}

// TextBuffer is an in-memory Buffer backed by rune slices.
type TextBuffer struct {
	lines [][]rune
}

// NewBuffer creates a buffer holding a single empty line.
func NewBuffer() *TextBuffer {
	return &TextBuffer{lines: [][]rune{{}}}
}

// NewBufferFromBytes splits content on newlines.
// A trailing newline does not open an extra line and "\r\n" terminators are accepted.
func NewBufferFromBytes(content []byte) *TextBuffer {
	b := &TextBuffer{}
	b.SetContent(content)
	return b
}

// NewBufferFromLines uses each string as one line.
func NewBufferFromLines(lines []string) *TextBuffer {
	b := &TextBuffer{lines: make([][]rune, len(lines))}
	for i, l := range lines {
		b.lines[i] = []rune(l)
	}
	return b
}

// SetContent replaces the whole buffer. It must not run concurrently with motions.
func (b *TextBuffer) SetContent(content []byte) {
	runes := bytes.Runes(content)
	lines := make([][]rune, 0)
	var current []rune

	for _, r := range runes {
		if r == '\n' {
			lines = append(lines, trimCarriageReturn(current))
			current = []rune{}
		} else {
			current = append(current, r)
		}
	}

	if len(current) > 0 {
		lines = append(lines, trimCarriageReturn(current))
	}

	b.lines = lines
}

func trimCarriageReturn(line []rune) []rune {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return line[:n-1]
	}
	return line
}

func (b *TextBuffer) LineCount() int {
	return len(b.lines)
}

// LineText returns "" for lines outside the buffer.
func (b *TextBuffer) LineText(line int) string {
	if line < 0 || line >= len(b.lines) {
		return ""
	}
	return string(b.lines[line])
}

// LineRuneCount returns the number of characters on a line, 0 when out of range.
func (b *TextBuffer) LineRuneCount(line int) int {
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	return len(b.lines[line])
}

// FirstNonWhitespace returns the line length when the line is blank.
func (b *TextBuffer) FirstNonWhitespace(line int) int {
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	for i, r := range b.lines[line] {
		if !unicode.IsSpace(r) {
			return i
		}
	}
	return len(b.lines[line])
}

func (b *TextBuffer) IsFirstLine(p Position) bool {
	return p.Line() <= 0
}

func (b *TextBuffer) IsLastLine(p Position) bool {
	return p.Line() >= len(b.lines)-1
}

// GetLines returns every line as a string.
func (b *TextBuffer) GetLines() []string {
	lines := make([]string, len(b.lines))
	for i, r := range b.lines {
		lines[i] = string(r)
	}
	return lines
}

// GetCurrentContent joins the lines with "\n".
func (b *TextBuffer) GetCurrentContent() string {
	return strings.Join(b.GetLines(), "\n")
}

func (b *TextBuffer) IsEmpty() bool {
	return len(b.lines) == 0 || (len(b.lines) == 1 && len(b.lines[0]) == 0)
}

// isBlank reports whether text is empty or holds only tabs and spaces.
func isBlank(text string) bool {
	return strings.Trim(text, " \t") == ""
}
