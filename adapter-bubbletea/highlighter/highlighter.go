package highlighter

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter maps buffer lines to styled token spans
type Highlighter struct {
	lexer      chroma.Lexer
	style      *chroma.Style
	lines      map[int][]Span // Spans by line number
	styleCache map[chroma.TokenType]lipgloss.Style
	mu         sync.RWMutex
}

// Span is a token's character range on its line, end exclusive
type Span struct {
	Type  chroma.TokenType
	Start int
	End   int
}

// New creates a highlighter. Unknown languages fall back to plain text.
func New(language string, theme string) *Highlighter {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	return &Highlighter{
		lexer:      chroma.Coalesce(lexer),
		style:      styles.Get(theme),
		lines:      make(map[int][]Span),
		styleCache: make(map[chroma.TokenType]lipgloss.Style),
	}
}

// Tokenize tokenizes the whole content at once so multi-line constructs
// (fenced code, block comments) are recognised, then splits tokens per line.
func (h *Highlighter) Tokenize(lines []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lines = make(map[int][]Span)

	content := strings.Join(lines, "\n")
	if content == "" {
		return
	}

	iterator, err := h.lexer.Tokenise(nil, content)
	if err != nil {
		return
	}

	line, col := 0, 0
	for _, token := range iterator.Tokens() {
		value := token.Value
		for {
			before, after, found := strings.Cut(value, "\n")
			if n := len([]rune(before)); n > 0 {
				h.lines[line] = append(h.lines[line], Span{Type: token.Type, Start: col, End: col + n})
				col += n
			}
			if !found {
				break
			}
			line++
			col = 0
			value = after
		}
	}
}

// Spans returns the token spans for a line, nil when the line has none.
func (h *Highlighter) Spans(line int) []Span {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.lines[line]
}

// SpanAt returns the span covering col.
func SpanAt(spans []Span, col int) (Span, bool) {
	for _, s := range spans {
		if col >= s.Start && col < s.End {
			return s, true
		}
	}
	return Span{}, false
}

// Style converts a chroma token type to a lipgloss style.
func (h *Highlighter) Style(tokenType chroma.TokenType) lipgloss.Style {
	h.mu.Lock()
	defer h.mu.Unlock()

	if style, ok := h.styleCache[tokenType]; ok {
		return style
	}

	entry := h.style.Get(tokenType)

	style := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}

	h.styleCache[tokenType] = style

	return style
}
