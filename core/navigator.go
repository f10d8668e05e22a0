package core

import (
	"fmt"
	"io"
	"log"
)

// Motion names a cursor motion a command layer can apply.
type Motion string

const (
	// Character and line motions
	MotionLeft  Motion = "cursor.left"
	MotionRight Motion = "cursor.right"
	MotionUp    Motion = "cursor.up"
	MotionDown  Motion = "cursor.down"

	MotionLineStart     Motion = "cursor.lineStart"
	MotionLineEnd       Motion = "cursor.lineEnd"
	MotionFirstNonBlank Motion = "cursor.firstNonBlank"
	MotionBufferStart   Motion = "cursor.bufferStart"
	MotionBufferEnd     Motion = "cursor.bufferEnd"

	// Word motions
	MotionWordForward       Motion = "cursor.wordForward"
	MotionWordBackward      Motion = "cursor.wordBackward"
	MotionWordEndForward    Motion = "cursor.wordEndForward"
	MotionBigWordForward    Motion = "cursor.bigWordForward"
	MotionBigWordBackward   Motion = "cursor.bigWordBackward"
	MotionBigWordEndForward Motion = "cursor.bigWordEndForward"

	// Paragraph motions
	MotionParagraphForward  Motion = "cursor.paragraphForward"
	MotionParagraphBackward Motion = "cursor.paragraphBackward"
)

// Motions lists every motion Navigator.Apply understands.
func Motions() []Motion {
	return []Motion{
		MotionLeft, MotionRight, MotionUp, MotionDown,
		MotionLineStart, MotionLineEnd, MotionFirstNonBlank, MotionBufferStart, MotionBufferEnd,
		MotionWordForward, MotionWordBackward, MotionWordEndForward,
		MotionBigWordForward, MotionBigWordBackward, MotionBigWordEndForward,
		MotionParagraphForward, MotionParagraphBackward,
	}
}

// Navigator applies named motions to cursors over one buffer.
// It owns the word classifiers so they are compiled once per session.
type Navigator struct {
	buffer      Buffer
	classifiers *Classifiers
	logger      *log.Logger
}

type NavigatorOption func(*Navigator)

// WithClassifiers replaces the default word/WORD classifiers.
func WithClassifiers(c *Classifiers) NavigatorOption {
	return func(n *Navigator) {
		if c != nil {
			n.classifiers = c
		}
	}
}

// WithLogger sets where rejected and clamped motions are reported.
func WithLogger(l *log.Logger) NavigatorOption {
	return func(n *Navigator) {
		if l != nil {
			n.logger = l
		}
	}
}

func NewNavigator(buffer Buffer, opts ...NavigatorOption) (*Navigator, error) {
	if buffer == nil {
		return nil, fmt.Errorf("NewNavigator: nil buffer")
	}

	n := &Navigator{
		buffer: buffer,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.classifiers == nil {
		n.classifiers = DefaultClassifiers()
	}

	return n, nil
}

func (n *Navigator) Buffer() Buffer {
	return n.buffer
}

func (n *Navigator) Classifiers() *Classifiers {
	return n.classifiers
}

// Apply runs motion count times from cursor. On a boundary error the returned
// cursor holds whatever progress was made before the edge was reached.
func (n *Navigator) Apply(cursor Cursor, motion Motion, count int) (Cursor, error) {
	if !cursor.Position.IsValid(n.buffer) {
		n.logger.Printf("motion %s rejected: cursor %s outside buffer", motion, cursor.Position)
		return cursor, newError(ErrInvalidPositionId, fmt.Errorf("%w: %s", ErrInvalidPosition, cursor.Position))
	}

	buf := n.buffer
	var err error

	switch motion {
	case MotionLeft:
		err = cursor.MoveLeft(buf, count)
	case MotionRight:
		err = cursor.MoveRight(buf, count)
	case MotionUp:
		err = cursor.MoveUp(buf, count)
	case MotionDown:
		err = cursor.MoveDown(buf, count)

	case MotionLineStart:
		cursor.MoveToLineStart()
	case MotionLineEnd:
		cursor.MoveToLineEnd(buf)
	case MotionFirstNonBlank:
		cursor.MoveToFirstNonBlank(buf)
	case MotionBufferStart:
		cursor.MoveToBufferStart()
	case MotionBufferEnd:
		cursor.MoveToBufferEnd(buf)

	case MotionWordForward:
		err = cursor.MoveWordForward(buf, n.classifiers.Word, count)
	case MotionWordBackward:
		err = cursor.MoveWordBackward(buf, n.classifiers.Word, count)
	case MotionWordEndForward:
		err = cursor.MoveWordToEnd(buf, n.classifiers.Word, count)
	case MotionBigWordForward:
		err = cursor.MoveWordForward(buf, n.classifiers.BigWord, count)
	case MotionBigWordBackward:
		err = cursor.MoveWordBackward(buf, n.classifiers.BigWord, count)
	case MotionBigWordEndForward:
		err = cursor.MoveWordToEnd(buf, n.classifiers.BigWord, count)

	case MotionParagraphForward:
		err = cursor.MoveParagraphForward(buf, count)
	case MotionParagraphBackward:
		err = cursor.MoveParagraphBackward(buf, count)

	default:
		n.logger.Printf("unknown motion %q", motion)
		return cursor, newError(ErrInvalidMotionId, fmt.Errorf("%w: %q", ErrInvalidMotion, motion))
	}

	if err != nil {
		n.logger.Printf("motion %s x%d stopped at %s: %v", motion, normalizeCount(count), cursor.Position, err)
		return cursor, newError(boundaryId(err), err)
	}

	return cursor, nil
}
