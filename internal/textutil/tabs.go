package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const DefaultTabWidth = 4

// ExpandTabsFrom expands tabs in text as if it were printed starting at column.
// It returns the rewritten text and the column after it; a line break resets the
// column to zero. Output is printed piecewise, so the column has to carry over
// between calls for tab stops to line up.
func ExpandTabsFrom(text string, tabWidth int, column int) (string, int) {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text, advanceColumn(text, column)
	}

	var builder strings.Builder
	for _, ru := range text {
		switch ru {
		case '\t':
			spaces := tabWidth - (column % tabWidth)
			for i := 0; i < spaces; i++ {
				builder.WriteByte(' ')
			}
			column += spaces
			continue
		case '\n', '\r':
			builder.WriteRune(ru)
			column = 0
			continue
		}
		builder.WriteRune(ru)
		column += runeColumns(ru)
	}
	return builder.String(), column
}

func advanceColumn(text string, column int) int {
	if idx := strings.LastIndexAny(text, "\r\n"); idx >= 0 {
		return DisplayWidth(text[idx+1:])
	}
	return column + DisplayWidth(text)
}

// DisplayWidth reports the printable width of text accounting for wide runes.
func DisplayWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += runeColumns(ru)
	}
	return width
}

func runeColumns(ru rune) int {
	w := runewidth.RuneWidth(ru)
	if w <= 0 {
		w = 1
	}
	return w
}
