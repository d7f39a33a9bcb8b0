package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "", Render("   \n", 40))
}

func TestRenderStyle_StripsMarkers(t *testing.T) {
	out := RenderStyle("# Heading\n\nSome **bold** text", 40, StyleDark)
	assert.Contains(t, out, "Heading")
	assert.Contains(t, out, "bold")
	assert.NotContains(t, out, "**")
}

func TestRenderStyle_UnknownStyleFallsBackToPlainText(t *testing.T) {
	out := RenderStyle("plain words here", 40, "no-such-style")
	assert.Equal(t, "plain words here", out)
}

func TestRender_KeepsText(t *testing.T) {
	out := Render("Some **bold** text", 40)
	assert.Contains(t, out, "bold")
}

func TestRender_CachesPerWidthAndStyle(t *testing.T) {
	a, err := getRenderer(33, StyleDark)
	assert.NoError(t, err)
	b, err := getRenderer(33, StyleDark)
	assert.NoError(t, err)
	assert.Same(t, a, b)

	c, err := getRenderer(33, StyleNoTTY)
	assert.NoError(t, err)
	assert.NotSame(t, a, c)
}

func TestWrap(t *testing.T) {
	assert.Equal(t, "one two\nthree", Wrap("one two three", 8))
	assert.Equal(t, "unchanged", Wrap("unchanged", 0))
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"first line", "hello\nworld", 0, "hello"},
		{"skips blanks", "\n\n  second", 0, "second"},
		{"strips heading", "## Title", 0, "Title"},
		{"strips emphasis", "a **b** `c`", 0, "a b c"},
		{"truncates", "abcdefghij", 5, "abcd…"},
		{"empty", "", 10, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Excerpt(tt.in, tt.max))
		})
	}
}
