package main

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// highlightMatch renders words space-joined with a caret-underline
// beneath the [start, end) span of word indices the matcher found,
// using runewidth.StringWidth to pad the underline so it still lines up
// under multi-width runes.
func highlightMatch(words []string, start, end int) string {
	var line, underline strings.Builder
	for i, w := range words {
		if i > 0 {
			line.WriteByte(' ')
			underline.WriteByte(' ')
		}
		line.WriteString(w)
		width := runewidth.StringWidth(w)
		if i >= start && i < end {
			underline.WriteString(strings.Repeat("^", width))
		} else {
			underline.WriteString(strings.Repeat(" ", width))
		}
	}
	return line.String() + "\n" + underline.String()
}
