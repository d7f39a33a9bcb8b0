// Package markdown renders task descriptions for the terminal
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

// MinWidth is the narrowest word wrap width handed to glamour
const MinWidth = 20

// Glamour styles. StyleAuto picks dark, light or notty from the terminal, so
// output that is not going to a terminal keeps its markdown markers.
const (
	StyleAuto  = "auto"
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

type rendererKey struct {
	width int
	style string
}

// Cache Glamour renderers by width and style to avoid expensive re-creation
var rendererCache sync.Map // map[rendererKey]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width and style
func getRenderer(width int, style string) (*glamour.TermRenderer, error) {
	key := rendererKey{width: width, style: style}
	if cached, ok := rendererCache.Load(key); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	styleOpt := glamour.WithAutoStyle()
	if style != StyleAuto {
		styleOpt = glamour.WithStandardStyle(style)
	}
	renderer, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	actual, _ := rendererCache.LoadOrStore(key, renderer)
	return actual.(*glamour.TermRenderer), nil
}

// Render renders source as markdown wrapped at width, styled for the terminal
// it runs in. Used by the TUI.
func Render(source string, width int) string {
	return RenderStyle(source, width, StyleAuto)
}

// RenderStyle renders source with the named glamour style.
// On any rendering failure the source is returned as word wrapped plain text.
func RenderStyle(source string, width int, style string) string {
	if strings.TrimSpace(source) == "" {
		return ""
	}
	if width < MinWidth {
		width = MinWidth
	}

	renderer, err := getRenderer(width, style)
	if err != nil {
		return Wrap(source, width)
	}
	out, err := renderer.Render(source)
	if err != nil {
		return Wrap(source, width)
	}
	return strings.TrimSpace(out)
}

// Wrap word wraps plain text at width without interpreting markdown
func Wrap(source string, width int) string {
	if width < 1 {
		return source
	}
	return wordwrap.String(source, width)
}

// Excerpt returns the first non-empty line of source with markdown markers
// stripped, cut to max runes. Used on task cards.
func Excerpt(source string, max int) string {
	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "#>*-+ ")
		line = strings.NewReplacer("**", "", "__", "", "`", "").Replace(line)
		if line == "" {
			continue
		}
		runes := []rune(line)
		if max > 0 && len(runes) > max {
			if max <= 1 {
				return "…"
			}
			return string(runes[:max-1]) + "…"
		}
		return line
	}
	return ""
}
