package core

import (
	"fmt"
	"strings"
)

// CaretMode decides whether the slot after a line's last character is a valid cursor offset.
// The zero value is unset and rejected everywhere a mode is required.
type CaretMode int

const (
	caretUnset CaretMode = iota
	// CaretInclusive lets the caret rest one past the last character.
	CaretInclusive
	// CaretExclusive keeps the caret on the last character at most.
	CaretExclusive
)

func (m CaretMode) Valid() bool {
	return m == CaretInclusive || m == CaretExclusive
}

func (m CaretMode) String() string {
	switch m {
	case CaretInclusive:
		return "inclusive"
	case CaretExclusive:
		return "exclusive"
	case caretUnset:
		return "unset"
	default:
		return fmt.Sprintf("CaretMode(%d)", int(m))
	}
}

// ParseCaretMode converts a configuration value into a CaretMode.
func ParseCaretMode(s string) (CaretMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inclusive":
		return CaretInclusive, nil
	case "exclusive":
		return CaretExclusive, nil
	default:
		return caretUnset, fmt.Errorf("%w: %q", ErrInvalidCaretMode, s)
	}
}
