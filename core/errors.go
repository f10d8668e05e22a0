package core

import (
	"errors"
)

var (
	ErrEndOfBuffer        = errors.New("end of buffer")
	ErrStartOfBuffer      = errors.New("start of buffer")
	ErrEndOfLine          = errors.New("end of line")
	ErrStartOfLine        = errors.New("start of line")
	ErrInvalidPosition    = errors.New("invalid position")
	ErrInvalidCaretMode   = errors.New("invalid caret mode")
	ErrInvalidMotion      = errors.New("invalid motion")
	ErrInvalidPunctuation = errors.New("invalid punctuation set")
)

type ErrorId int

const (
	ErrEndOfBufferId ErrorId = iota
	ErrStartOfBufferId
	ErrEndOfLineId
	ErrStartOfLineId
	ErrInvalidPositionId
	ErrInvalidCaretModeId
	ErrInvalidMotionId
)

// Error pairs an error with an id consumers can switch on without string matching.
type Error struct {
	id  ErrorId
	err error
}

func newError(id ErrorId, err error) *Error {
	return &Error{id: id, err: err}
}

func (e *Error) Id() ErrorId {
	return e.id
}

func (e *Error) Error() string {
	if e.err == nil {
		return "unknown error"
	}
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

// IsBoundary reports whether err means a motion ran into the edge of a line or of the buffer.
func IsBoundary(err error) bool {
	return errors.Is(err, ErrEndOfBuffer) ||
		errors.Is(err, ErrStartOfBuffer) ||
		errors.Is(err, ErrEndOfLine) ||
		errors.Is(err, ErrStartOfLine)
}

// boundaryId maps a boundary sentinel to its id.
func boundaryId(err error) ErrorId {
	switch {
	case errors.Is(err, ErrEndOfBuffer):
		return ErrEndOfBufferId
	case errors.Is(err, ErrStartOfBuffer):
		return ErrStartOfBufferId
	case errors.Is(err, ErrEndOfLine):
		return ErrEndOfLineId
	case errors.Is(err, ErrStartOfLine):
		return ErrStartOfLineId
	default:
		return ErrInvalidMotionId
	}
}
