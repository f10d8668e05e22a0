package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBufferFromBytes(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", []string{}},
		{"single line", "foo", []string{"foo"}},
		{"trailing newline", "foo\nbar\n", []string{"foo", "bar"}},
		{"blank lines kept", "foo\n\nbar", []string{"foo", "", "bar"}},
		{"crlf", "foo\r\nbar\r\n", []string{"foo", "bar"}},
		{"only newline", "\n", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewBufferFromBytes([]byte(tt.content))
			assert.Equal(t, tt.want, buf.GetLines())
			assert.Equal(t, len(tt.want), buf.LineCount())
		})
	}
}

func TestNewBuffer(t *testing.T) {
	buf := NewBuffer()
	assert.Equal(t, 1, buf.LineCount())
	assert.True(t, buf.IsEmpty())
	assert.Equal(t, "", buf.LineText(0))
}

func TestTextBuffer_LineText(t *testing.T) {
	buf := NewBufferFromLines([]string{"héllo", "world"})

	assert.Equal(t, "héllo", buf.LineText(0))
	assert.Equal(t, "", buf.LineText(-1))
	assert.Equal(t, "", buf.LineText(2))
	assert.Equal(t, 5, buf.LineRuneCount(0))
	assert.Equal(t, 0, buf.LineRuneCount(7))
	assert.Equal(t, "héllo\nworld", buf.GetCurrentContent())
	assert.False(t, buf.IsEmpty())
}

func TestTextBuffer_FirstNonWhitespace(t *testing.T) {
	buf := NewBufferFromLines([]string{"foo", "  foo", "\t\tfoo", "    ", ""})

	assert.Equal(t, 0, buf.FirstNonWhitespace(0))
	assert.Equal(t, 2, buf.FirstNonWhitespace(1))
	assert.Equal(t, 2, buf.FirstNonWhitespace(2))
	assert.Equal(t, 4, buf.FirstNonWhitespace(3))
	assert.Equal(t, 0, buf.FirstNonWhitespace(4))
	assert.Equal(t, 0, buf.FirstNonWhitespace(10))
}

func TestTextBuffer_FirstAndLastLine(t *testing.T) {
	buf := NewBufferFromLines([]string{"a", "b", "c"})

	assert.True(t, buf.IsFirstLine(pos(0, 0, CaretExclusive)))
	assert.False(t, buf.IsFirstLine(pos(1, 0, CaretExclusive)))
	assert.True(t, buf.IsLastLine(pos(2, 0, CaretExclusive)))
	assert.False(t, buf.IsLastLine(pos(1, 0, CaretExclusive)))

	empty := NewBufferFromLines(nil)
	assert.True(t, empty.IsFirstLine(pos(0, 0, CaretExclusive)))
	assert.True(t, empty.IsLastLine(pos(0, 0, CaretExclusive)))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, isBlank(""))
	assert.True(t, isBlank(" \t "))
	assert.False(t, isBlank(" x "))
}

func TestTextBuffer_SetContentReplaces(t *testing.T) {
	buf := NewBufferFromLines([]string{"old", "lines", "here"})
	buf.SetContent([]byte("new"))
	assert.Equal(t, []string{"new"}, buf.GetLines())
}
