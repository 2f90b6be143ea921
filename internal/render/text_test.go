package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		budget   int
		ellipsis string
		want     string
	}{
		{name: "at budget", input: strings.Repeat("a", 160), budget: 160, ellipsis: EllipsisChar, want: strings.Repeat("a", 160)},
		{name: "one over budget", input: strings.Repeat("a", 161), budget: 160, ellipsis: EllipsisChar, want: strings.Repeat("a", 160) + "…"},
		{name: "dots", input: "abcdef", budget: 3, ellipsis: EllipsisDots, want: "abc..."},
		{name: "zero budget", input: "abcdef", budget: 0, ellipsis: EllipsisDots, want: "abcdef"},
		{name: "counts runes", input: "ééé", budget: 3, ellipsis: EllipsisChar, want: "ééé"},
		{name: "decomposed accent counts once", input: "e\u0301e\u0301", budget: 2, ellipsis: EllipsisChar, want: "\u00e9\u00e9"},
		{name: "empty", input: "", budget: 10, ellipsis: EllipsisChar, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.budget, tt.ellipsis))
		})
	}
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "0 results", Pluralize(0, "result", "results"))
	assert.Equal(t, "1 result", Pluralize(1, "result", "results"))
	assert.Equal(t, "2 results", Pluralize(2, "result", "results"))
	assert.Equal(t, "1,204 results", Pluralize(1204, "result", "results"))
}

func TestStarCount(t *testing.T) {
	tests := []struct {
		rating float64
		want   int
	}{
		{0, 0},
		{-1, 0},
		{3.99, 3},
		{4.8, 4},
		{5, 5},
		{7.2, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StarCount(tt.rating), "rating %v", tt.rating)
	}
	assert.Equal(t, "⭐⭐⭐⭐", Stars(4.8))
	assert.Empty(t, Stars(0.5))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Homework help", Capitalize("homework help"))
	assert.Equal(t, "Éclairs", Capitalize("éclairs"))
	assert.Equal(t, "3d art", Capitalize("3d art"))
	assert.Equal(t, "", Capitalize(""))
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "plain words", PlainText("plain words"))
	assert.Equal(t, "Hello world", PlainText("<p>Hello <b>world</b></p>"))
	assert.Equal(t, "One Two", PlainText("<p>One</p><p>Two</p>"))
	assert.Equal(t, "a < b", PlainText("a < b"))
}

func TestMarkdownText(t *testing.T) {
	assert.Equal(t, "line one\nline two", MarkdownText("line one\nline two"))
	assert.Equal(t, "First\n\nSecond", MarkdownText("<p>First</p><p>Second</p>"))
}

func TestLineBreaks(t *testing.T) {
	assert.Equal(t, "a<br>b<br>c", string(LineBreaks("a\nb\r\nc")))
	assert.Equal(t, "&lt;script&gt;<br>x", string(LineBreaks("<script>\nx")))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "arts-crafts", Slug("Arts & Crafts"))
	assert.Equal(t, "creche", Slug("Crèche"))
	assert.Equal(t, "", Slug("  "))
}
