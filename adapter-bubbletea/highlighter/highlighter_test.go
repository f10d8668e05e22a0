package highlighter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_SplitsSpansPerLine(t *testing.T) {
	h := New("go", "monokai")
	h.Tokenize([]string{"package main", "", "func f() {}"})

	first := h.Spans(0)
	require.NotEmpty(t, first)
	assert.Equal(t, 0, first[0].Start)
	assert.Equal(t, 12, first[len(first)-1].End)

	assert.Empty(t, h.Spans(1))

	third := h.Spans(2)
	require.NotEmpty(t, third)
	for i := 1; i < len(third); i++ {
		assert.Equal(t, third[i-1].End, third[i].Start, "spans are contiguous")
	}
}

func TestTokenize_RuneColumns(t *testing.T) {
	h := New("unknown-language", "unknown-theme")
	h.Tokenize([]string{"héllo wörld"})

	spans := h.Spans(0)
	require.NotEmpty(t, spans)
	assert.Equal(t, 11, spans[len(spans)-1].End)
}

func TestTokenize_Replaces(t *testing.T) {
	h := New("go", "monokai")
	h.Tokenize([]string{"package main", "var x = 1"})
	require.NotEmpty(t, h.Spans(1))

	h.Tokenize([]string{"package main"})
	assert.Empty(t, h.Spans(1))

	h.Tokenize(nil)
	assert.Empty(t, h.Spans(0))
}

func TestSpanAt(t *testing.T) {
	spans := []Span{{Start: 0, End: 3}, {Start: 4, End: 7}}

	s, ok := SpanAt(spans, 2)
	require.True(t, ok)
	assert.Equal(t, 0, s.Start)

	_, ok = SpanAt(spans, 3)
	assert.False(t, ok)

	s, ok = SpanAt(spans, 4)
	require.True(t, ok)
	assert.Equal(t, 7, s.End)
}

func TestStyle_Cached(t *testing.T) {
	h := New("go", "monokai")
	h.Tokenize([]string{"package main"})

	spans := h.Spans(0)
	require.NotEmpty(t, spans)

	style := h.Style(spans[0].Type)
	assert.Equal(t, style.Render("package"), h.Style(spans[0].Type).Render("package"))
	assert.Len(t, h.styleCache, 1)
}
