package core

import "unicode/utf8"

// --- Word Motions ---
// Word motions take the classifier to use: Classifiers.Word for vi "word"
// motions, Classifiers.BigWord for "WORD" motions.

// WordLeft moves to the start of the previous run (vi 'b').
// At or before the first non-blank character it continues on the previous line.
func (p Position) WordLeft(buffer Buffer, c *Classifier) Position {
	line, character := p.line, p.character

	if !buffer.IsFirstLine(p) && character <= FirstNonBlankCharacter(buffer, line) {
		line--
		character = utf8.RuneCountInString(buffer.LineText(line)) + 1
	}

	starts := c.Starts(buffer.LineText(line))
	for i := len(starts) - 1; i >= 0; i-- {
		if starts[i] < character {
			return p.WithCoordinates(line, starts[i])
		}
	}

	if buffer.IsFirstLine(p) {
		return p.LineBegin()
	}
	return p.WithCoordinates(p.line-1, 0).LineEnd(buffer)
}

// WordRight moves to the start of the next run (vi 'w').
func (p Position) WordRight(buffer Buffer, c *Classifier) Position {
	if p.character >= LineLength(buffer, p.line, p.mode) && !buffer.IsLastLine(p) {
		return p.nextLineFirstNonBlank(buffer)
	}

	for _, start := range c.Starts(buffer.LineText(p.line)) {
		if start > p.character {
			return p.WithCoordinates(p.line, start)
		}
	}

	if buffer.IsLastLine(p) {
		return p.LineEnd(buffer)
	}
	return p.nextLineFirstNonBlank(buffer)
}

// CurrentWordEnd moves to the last character of the current or next run (vi 'e').
// At the end of a line the search restarts at the beginning of the next line.
func (p Position) CurrentWordEnd(buffer Buffer, c *Classifier) Position {
	line, character := p.line, p.character

	if character >= LineLength(buffer, line, p.mode) && !buffer.IsLastLine(p) {
		line++
		character = 0
	}

	for _, end := range c.Ends(buffer.LineText(line)) {
		if end > character {
			return p.WithCoordinates(line, end)
		}
	}

	return p.WithCoordinates(line, 0).LineEnd(buffer)
}

// nextLineFirstNonBlank lands on the first non-blank character of the next
// line, kept within that line for the mode.
func (p Position) nextLineFirstNonBlank(buffer Buffer) Position {
	line := p.line + 1
	character := min(FirstNonBlankCharacter(buffer, line), LineLength(buffer, line, p.mode))
	return p.WithCoordinates(line, character)
}

// --- Paragraph Motions ---
// A paragraph is a run of consecutive non-blank lines.

// ParagraphEnd moves to the line end of the current paragraph's last line.
// From a blank line it first descends into the next paragraph.
func (p Position) ParagraphEnd(buffer Buffer) Position {
	pos := p.LineBegin()

	for isBlank(buffer.LineText(pos.line)) && !buffer.IsLastLine(pos) {
		pos = pos.Down(buffer, 0)
	}

	for !buffer.IsLastLine(pos) && !isBlank(buffer.LineText(pos.line+1)) {
		pos = pos.Down(buffer, 0)
	}

	return pos.LineEnd(buffer)
}

// ParagraphBegin moves to the line begin of the current paragraph's first line.
// From a blank line it first ascends into the previous paragraph.
func (p Position) ParagraphBegin(buffer Buffer) Position {
	pos := p.LineBegin()

	for isBlank(buffer.LineText(pos.line)) && !buffer.IsFirstLine(pos) {
		pos = pos.Up(buffer, 0)
	}

	for pos.line > 0 && !isBlank(buffer.LineText(pos.line-1)) {
		pos = pos.Up(buffer, 0)
	}

	return pos.LineBegin()
}
