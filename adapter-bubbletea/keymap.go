package bubble_adapter

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/ionut-t/gomotion/core"
)

// KeyMap binds keys to motions and viewer actions.
type KeyMap struct {
	Left  key.Binding
	Down  key.Binding
	Up    key.Binding
	Right key.Binding

	WordForward     key.Binding
	WordBackward    key.Binding
	WordEnd         key.Binding
	BigWordForward  key.Binding
	BigWordBackward key.Binding
	BigWordEnd      key.Binding

	LineStart     key.Binding
	FirstNonBlank key.Binding
	LineEnd       key.Binding
	Top           key.Binding // pressed twice: gg
	Bottom        key.Binding

	ParagraphForward  key.Binding
	ParagraphBackward key.Binding

	Inclusive key.Binding
	Exclusive key.Binding
	Yank      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap follows vi.
var DefaultKeyMap = KeyMap{
	Left:  key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "left")),
	Down:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
	Up:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
	Right: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "right")),

	WordForward:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "next word")),
	WordBackward:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "prev word")),
	WordEnd:         key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "word end")),
	BigWordForward:  key.NewBinding(key.WithKeys("W"), key.WithHelp("W", "next WORD")),
	BigWordBackward: key.NewBinding(key.WithKeys("B"), key.WithHelp("B", "prev WORD")),
	BigWordEnd:      key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "WORD end")),

	LineStart:     key.NewBinding(key.WithKeys("0", "home"), key.WithHelp("0", "line start")),
	FirstNonBlank: key.NewBinding(key.WithKeys("^"), key.WithHelp("^", "first non-blank")),
	LineEnd:       key.NewBinding(key.WithKeys("$", "end"), key.WithHelp("$", "line end")),
	Top:           key.NewBinding(key.WithKeys("g"), key.WithHelp("gg", "top")),
	Bottom:        key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "bottom")),

	ParagraphForward:  key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "paragraph end")),
	ParagraphBackward: key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "paragraph start")),

	Inclusive: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "inclusive caret")),
	Exclusive: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "exclusive caret")),
	Yank:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yank word")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type motionBinding struct {
	binding key.Binding
	motion  core.Motion
}

// motionBindings lists the keys that map directly onto a Navigator motion.
func (k KeyMap) motionBindings() []motionBinding {
	return []motionBinding{
		{k.Left, core.MotionLeft},
		{k.Down, core.MotionDown},
		{k.Up, core.MotionUp},
		{k.Right, core.MotionRight},
		{k.WordForward, core.MotionWordForward},
		{k.WordBackward, core.MotionWordBackward},
		{k.WordEnd, core.MotionWordEndForward},
		{k.BigWordForward, core.MotionBigWordForward},
		{k.BigWordBackward, core.MotionBigWordBackward},
		{k.BigWordEnd, core.MotionBigWordEndForward},
		{k.LineStart, core.MotionLineStart},
		{k.FirstNonBlank, core.MotionFirstNonBlank},
		{k.LineEnd, core.MotionLineEnd},
		{k.Bottom, core.MotionBufferEnd},
		{k.ParagraphForward, core.MotionParagraphForward},
		{k.ParagraphBackward, core.MotionParagraphBackward},
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.WordForward, k.WordBackward, k.WordEnd, k.ParagraphForward, k.Yank, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Down, k.Up, k.Right},
		{k.WordForward, k.WordBackward, k.WordEnd, k.BigWordForward, k.BigWordBackward, k.BigWordEnd},
		{k.LineStart, k.FirstNonBlank, k.LineEnd, k.Top, k.Bottom},
		{k.ParagraphForward, k.ParagraphBackward, k.Inclusive, k.Exclusive, k.Yank, k.Quit},
	}
}
