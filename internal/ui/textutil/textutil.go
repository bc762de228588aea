// Package textutil provides unicode-aware text helpers for TUI rendering.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis is the character appended when a string is truncated.
const Ellipsis = "…"

// Width returns the number of terminal columns the string occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, appending an ellipsis
// when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	avail := maxWidth - runewidth.StringWidth(Ellipsis)
	if avail < 0 {
		return Ellipsis
	}
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > avail {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String() + Ellipsis
}

// PadRight pads s with spaces to exactly width columns, truncating first if
// it is too wide.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
