package core

import "math"

// EndOfLineColumn as a preferred column keeps vertical motion on line ends (vi '$' then 'j').
const EndOfLineColumn = math.MaxInt

// Cursor represents the current position for motion operations
type Cursor struct {
	Position  Position // Current position
	Preferred int      // Preferred column for vertical movement (sticky column)
}

// NewCursor creates a cursor whose preferred column is its own character.
func NewCursor(p Position) Cursor {
	return Cursor{Position: p, Preferred: p.Character()}
}

func normalizeCount(count int) int {
	if count < 1 {
		return 1
	}
	return count
}

// step applies move up to count times and stops once a step changes nothing.
// It returns the number of steps that moved the cursor.
func (c *Cursor) step(count int, move func(Position) Position) int {
	moved := 0
	for n := normalizeCount(count); n > 0; n-- {
		next := move(c.Position)
		if next == c.Position {
			break
		}
		c.Position = next
		moved++
	}
	return moved
}

// --- Cursor Movement ---

// MoveLeft moves the cursor left by count characters without leaving the line.
func (c *Cursor) MoveLeft(buffer Buffer, count int) error {
	if c.step(count, Position.Left) == 0 {
		return ErrStartOfLine
	}
	c.Preferred = c.Position.Character()
	return nil
}

// MoveRight moves the cursor right by count characters without leaving the line.
func (c *Cursor) MoveRight(buffer Buffer, count int) error {
	if c.step(count, func(p Position) Position { return p.Right(buffer) }) == 0 {
		return ErrEndOfLine
	}
	c.Preferred = c.Position.Character()
	return nil
}

// MoveUp moves the cursor up by count lines, aiming for the preferred column on every line.
func (c *Cursor) MoveUp(buffer Buffer, count int) error {
	if c.step(count, func(p Position) Position { return p.Up(buffer, c.Preferred) }) == 0 {
		return ErrStartOfBuffer
	}
	return nil
}

// MoveDown moves the cursor down by count lines, aiming for the preferred column on every line.
func (c *Cursor) MoveDown(buffer Buffer, count int) error {
	if c.step(count, func(p Position) Position { return p.Down(buffer, c.Preferred) }) == 0 {
		return ErrEndOfBuffer
	}
	return nil
}

// MoveToLineStart moves the cursor to the start of the current line (col 0)
func (c *Cursor) MoveToLineStart() {
	c.Position = c.Position.LineBegin()
	c.Preferred = 0
}

// MoveToLineEnd moves the cursor to the line end for its caret mode and
// makes following vertical moves stick to line ends.
func (c *Cursor) MoveToLineEnd(buffer Buffer) {
	c.Position = c.Position.LineEnd(buffer)
	c.Preferred = EndOfLineColumn
}

// MoveToFirstNonBlank moves the cursor to the first non-whitespace character
func (c *Cursor) MoveToFirstNonBlank(buffer Buffer) {
	line := c.Position.Line()
	character := min(FirstNonBlankCharacter(buffer, line), LineLength(buffer, line, c.Position.Mode()))
	c.Position = c.Position.WithCoordinates(line, character)
	c.Preferred = character
}

// MoveToBufferStart moves the cursor to the start of the buffer
func (c *Cursor) MoveToBufferStart() {
	c.Position = c.Position.DocumentBegin()
	c.Preferred = 0
}

// MoveToBufferEnd moves the cursor to the line end of the last line
func (c *Cursor) MoveToBufferEnd(buffer Buffer) {
	c.Position = c.Position.DocumentEnd(buffer)
	c.Preferred = c.Position.Character()
}

// --- Word Movement ---

// MoveWordForward moves the cursor forward by count runs (vi 'w' / 'W').
func (c *Cursor) MoveWordForward(buffer Buffer, classifier *Classifier, count int) error {
	moved := c.step(count, func(p Position) Position { return p.WordRight(buffer, classifier) })
	c.Preferred = c.Position.Character()
	if moved == 0 {
		return ErrEndOfBuffer
	}
	return nil
}

// MoveWordBackward moves the cursor backward by count runs (vi 'b' / 'B').
func (c *Cursor) MoveWordBackward(buffer Buffer, classifier *Classifier, count int) error {
	moved := c.step(count, func(p Position) Position { return p.WordLeft(buffer, classifier) })
	c.Preferred = c.Position.Character()
	if moved == 0 {
		return ErrStartOfBuffer
	}
	return nil
}

// MoveWordToEnd moves the cursor to the end of the run count times (vi 'e' / 'E').
func (c *Cursor) MoveWordToEnd(buffer Buffer, classifier *Classifier, count int) error {
	moved := c.step(count, func(p Position) Position { return p.CurrentWordEnd(buffer, classifier) })
	c.Preferred = c.Position.Character()
	if moved == 0 {
		return ErrEndOfBuffer
	}
	return nil
}

// --- Paragraph Movement ---
// Position.ParagraphEnd stays put on a paragraph's last line, so a repeated
// move first steps onto the following line to reach the next paragraph.

// MoveParagraphForward moves to the end of the current or next paragraph count times.
func (c *Cursor) MoveParagraphForward(buffer Buffer, count int) error {
	moved := c.step(count, func(p Position) Position {
		next := p.ParagraphEnd(buffer)
		if next == p && !buffer.IsLastLine(p) {
			next = p.Down(buffer, 0).ParagraphEnd(buffer)
		}
		return next
	})
	c.Preferred = c.Position.Character()
	if moved == 0 {
		return ErrEndOfBuffer
	}
	return nil
}

// MoveParagraphBackward moves to the start of the current or previous paragraph count times.
func (c *Cursor) MoveParagraphBackward(buffer Buffer, count int) error {
	moved := c.step(count, func(p Position) Position {
		next := p.ParagraphBegin(buffer)
		if next == p && !buffer.IsFirstLine(p) {
			next = p.Up(buffer, 0).ParagraphBegin(buffer)
		}
		return next
	})
	c.Preferred = c.Position.Character()
	if moved == 0 {
		return ErrStartOfBuffer
	}
	return nil
}
