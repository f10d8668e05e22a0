package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_StartsAndEnds(t *testing.T) {
	word := DefaultClassifiers().Word
	bigWord := DefaultClassifiers().BigWord

	tests := []struct {
		name       string
		text       string
		classifier *Classifier
		wantStarts []int
		wantEnds   []int
	}{
		{"words", "foo bar baz", word, []int{0, 4, 8}, []int{2, 6, 10}},
		{"punctuation splits words", "foo.bar baz", word, []int{0, 3, 4, 8}, []int{2, 3, 6, 10}},
		{"punctuation runs group", "a->b", word, []int{0, 1, 3}, []int{0, 2, 3}},
		{"big word ignores punctuation", "foo.bar baz", bigWord, []int{0, 8}, []int{6, 10}},
		{"leading whitespace", "  foo", word, []int{2}, []int{4}},
		{"leading tab", "\tfoo", word, []int{1}, []int{3}},
		{"blank line", "   ", word, []int{0}, []int{2}},
		{"empty line", "", word, []int{0}, []int{-1}},
		{"empty line big word", "", bigWord, []int{0}, []int{-1}},
		{"multibyte runes", "héllo wörld", word, []int{0, 6}, []int{4, 10}},
		{"underscore is a word character", "foo_bar", word, []int{0}, []int{6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStarts, tt.classifier.Starts(tt.text))
			assert.Equal(t, tt.wantEnds, tt.classifier.Ends(tt.text))
		})
	}
}

func TestClassifier_RunKinds(t *testing.T) {
	c := DefaultClassifiers().Word

	runs := c.Runs("foo.bar")
	require.Len(t, runs, 3)
	assert.Equal(t, Run{Start: 0, Length: 3, Kind: RunWord}, runs[0])
	assert.Equal(t, Run{Start: 3, Length: 1, Kind: RunPunctuation}, runs[1])
	assert.Equal(t, Run{Start: 4, Length: 3, Kind: RunWord}, runs[2])

	runs = c.Runs(" \t ")
	require.Len(t, runs, 1)
	assert.Equal(t, RunBlank, runs[0].Kind)
	assert.Equal(t, 3, runs[0].Length)

	assert.Equal(t, "punctuation", RunPunctuation.String())
}

func TestClassifier_CustomPunctuation(t *testing.T) {
	c, err := NewClassifier("-")
	require.NoError(t, err)
	assert.Equal(t, "-", c.Punctuation())

	// Only '-' splits; '.' joins the word.
	assert.Equal(t, []int{0, 3, 4}, c.Starts("a.b-c"))
}

func TestClassifier_EscapesClassMetacharacters(t *testing.T) {
	c, err := NewClassifier(`]^\-`)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, c.Starts("a]b"))
	assert.Equal(t, []int{0, 1, 2}, c.Starts(`a\b`))
	assert.Equal(t, []int{0, 1, 2}, c.Starts("a^b"))

	// Duplicates are harmless.
	c, err = NewClassifier("..")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, c.Starts("a.b"))
}

func TestNewClassifier_RejectsWhitespace(t *testing.T) {
	_, err := NewClassifier(". ")
	require.ErrorIs(t, err, ErrInvalidPunctuation)

	_, err = NewClassifiers("\t")
	require.ErrorIs(t, err, ErrInvalidPunctuation)

	require.Panics(t, func() { MustClassifier(" ") })
}

func TestClassifier_RunAt(t *testing.T) {
	c := DefaultClassifiers().Word

	run, ok := c.RunAt("foo.bar baz", 5)
	require.True(t, ok)
	assert.Equal(t, 4, run.Start)
	assert.Equal(t, 6, run.End())

	run, ok = c.RunAt("foo.bar baz", 3)
	require.True(t, ok)
	assert.Equal(t, RunPunctuation, run.Kind)

	_, ok = c.RunAt("foo bar", 3)
	assert.False(t, ok)

	_, ok = c.RunAt("   ", 1)
	assert.False(t, ok)
}

func TestDefaultClassifiers_Shared(t *testing.T) {
	a := DefaultClassifiers()
	b := DefaultClassifiers()
	assert.Same(t, a, b)
	assert.Equal(t, DefaultPunctuation, a.Word.Punctuation())
	assert.Equal(t, "", a.BigWord.Punctuation())
}
