package core

import (
	"fmt"
	"unicode/utf8"
)

// Position is a line/character coordinate bound to a caret mode.
// It is an immutable value type: every derivation returns a new Position.
// A Position carries no buffer; the Buffer passed to a derivation is the
// snapshot it is measured against.
type Position struct {
	line      int
	character int
	mode      CaretMode
}

// NewPosition creates a Position. The mode is mandatory.
func NewPosition(line, character int, mode CaretMode) (Position, error) {
	if !mode.Valid() {
		return Position{}, fmt.Errorf("NewPosition: %w: %s", ErrInvalidCaretMode, mode)
	}
	if line < 0 || character < 0 {
		return Position{}, fmt.Errorf("NewPosition: %w: (%d, %d)", ErrInvalidPosition, line, character)
	}
	return Position{line: line, character: character, mode: mode}, nil
}

// MustPosition is like NewPosition but panics on error.
func MustPosition(line, character int, mode CaretMode) Position {
	p, err := NewPosition(line, character, mode)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Position) Line() int       { return p.line }
func (p Position) Character() int  { return p.character }
func (p Position) Mode() CaretMode { return p.mode }

func (p Position) String() string {
	return fmt.Sprintf("(%d:%d %s)", p.line, p.character, p.mode)
}

// LineLength returns the largest valid character offset on line for mode.
// An unset or unknown mode is a programming error and panics.
func LineLength(buffer Buffer, line int, mode CaretMode) int {
	n := utf8.RuneCountInString(buffer.LineText(line))
	switch mode {
	case CaretExclusive:
		return max(n-1, 0)
	case CaretInclusive:
		return n
	default:
		panic(fmt.Errorf("LineLength: %w: %s", ErrInvalidCaretMode, mode))
	}
}

// FirstNonBlankCharacter is the offset of the first character after the line's leading whitespace.
func FirstNonBlankCharacter(buffer Buffer, line int) int {
	return buffer.FirstNonWhitespace(line)
}

// WithCoordinates keeps the mode. The result is not validated.
func (p Position) WithCoordinates(line, character int) Position {
	return Position{line: line, character: character, mode: p.mode}
}

// WithMode keeps the coordinates and swaps the caret mode.
func (p Position) WithMode(mode CaretMode) (Position, error) {
	if !mode.Valid() {
		return p, fmt.Errorf("WithMode: %w: %s", ErrInvalidCaretMode, mode)
	}
	return Position{line: p.line, character: p.character, mode: mode}, nil
}

// Clamp pulls the position back inside the buffer for its mode.
func (p Position) Clamp(buffer Buffer) Position {
	line := min(max(p.line, 0), max(buffer.LineCount()-1, 0))
	character := min(max(p.character, 0), LineLength(buffer, line, p.mode))
	return p.WithCoordinates(line, character)
}

// IsValid reports whether the position fits the buffer for its mode.
// A line equal to LineCount is accepted.
func (p Position) IsValid(buffer Buffer) bool {
	if !p.mode.Valid() {
		return false
	}
	if p.line < 0 || p.character < 0 {
		return false
	}
	if p.line > buffer.LineCount() {
		return false
	}
	return p.character <= LineLength(buffer, p.line, p.mode)
}

func (p Position) IsLineBeginning() bool {
	return p.character == 0
}

func (p Position) IsLineEnd(buffer Buffer) bool {
	return p.character == LineLength(buffer, p.line, p.mode)
}

// Left never wraps to the previous line.
func (p Position) Left() Position {
	if p.IsLineBeginning() {
		return p
	}
	return p.WithCoordinates(p.line, p.character-1)
}

// Right never wraps to the next line.
func (p Position) Right(buffer Buffer) Position {
	if p.IsLineEnd(buffer) {
		return p
	}
	return p.WithCoordinates(p.line, p.character+1)
}

// Down moves one line down, placing the caret at desiredColumn or the
// line end, whichever comes first. On the last line it returns p.
func (p Position) Down(buffer Buffer, desiredColumn int) Position {
	if buffer.IsLastLine(p) {
		return p
	}
	line := p.line + 1
	return p.WithCoordinates(line, min(LineLength(buffer, line, p.mode), desiredColumn))
}

// Up is the mirror of Down.
func (p Position) Up(buffer Buffer, desiredColumn int) Position {
	if buffer.IsFirstLine(p) {
		return p
	}
	line := p.line - 1
	return p.WithCoordinates(line, min(LineLength(buffer, line, p.mode), desiredColumn))
}

func (p Position) LineBegin() Position {
	return p.WithCoordinates(p.line, 0)
}

func (p Position) LineEnd(buffer Buffer) Position {
	return p.WithCoordinates(p.line, LineLength(buffer, p.line, p.mode))
}

func (p Position) DocumentBegin() Position {
	return p.WithCoordinates(0, 0)
}

// DocumentEnd is the line end of the last line, or (0, 0) for an empty buffer.
func (p Position) DocumentEnd(buffer Buffer) Position {
	last := max(buffer.LineCount()-1, 0)
	return p.WithCoordinates(last, LineLength(buffer, last, p.mode))
}
