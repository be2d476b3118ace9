// Package layout measures, pads and merges terminal text that carries ANSI
// color sequences, so that a logo and a block of information lines can be
// printed side by side without the invisible escape bytes breaking alignment.
package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const escape = '\x1b'

// Width is the measured size of a string split into what the terminal shows
// and what it swallows.
type Width struct {
	// Visible is the number of terminal columns the string occupies.
	Visible int

	// Escape is the number of bytes taken by recognized escape sequences.
	Escape int
}

// Measure calculates the visible width of a string and the size of the
// escape sequences embedded in it.
//
// Parameters:
//   - s: The string to measure (may contain ANSI color codes)
//
// Returns:
//   - A Width with the visible column count and the escape byte count
//
// A recognized sequence is ESC, '[', an optional list of ';'-separated decimal
// parameters and one terminating ASCII letter. Anything else, including a
// truncated or malformed sequence, is counted as visible text.
func Measure(s string) Width {
	var w Width
	for i := 0; i < len(s); {
		if end := sequenceEnd(s, i); end > 0 {
			w.Escape += end - i
			i = end
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		w.Visible += columns(r)
		i += size
	}
	return w
}

// VisibleLen returns the number of terminal columns s occupies.
func VisibleLen(s string) int {
	return Measure(s).Visible
}

// EscapeLen returns the number of bytes of s taken by escape sequences.
func EscapeLen(s string) int {
	return Measure(s).Escape
}

// LeftJustify pads a string with trailing spaces to a visible width.
//
// Parameters:
//   - s: The string to pad (may contain ANSI color codes)
//   - width: The desired minimum visible width
//
// Returns:
//   - s followed by enough spaces to make its visible width equal to width
//   - s unchanged if it is already at least width columns wide
//
// The pad is computed on top of the escape bytes already in s, so a colored
// string ends up exactly as wide on screen as a plain one.
func LeftJustify(s string, width int) string {
	pad := width - VisibleLen(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

// Truncate cuts a string down to at most width visible columns.
//
// Parameters:
//   - s: The string to truncate (may contain ANSI color codes)
//   - width: Maximum number of visible columns to keep
//
// Returns:
//   - The visible prefix of s that fits in width columns, with every escape
//     sequence of s preserved
//
// Escape sequences after the cut are kept so that a trailing reset still
// reaches the terminal.
func Truncate(s string, width int) string {
	if width < 0 {
		width = 0
	}
	w := Measure(s)
	if w.Visible <= width {
		return s
	}

	var b strings.Builder
	b.Grow(width + w.Escape)
	used := 0
	for i := 0; i < len(s); {
		if end := sequenceEnd(s, i); end > 0 {
			b.WriteString(s[i:end])
			i = end
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if n := columns(r); used+n <= width {
			b.WriteString(s[i : i+size])
			used += n
		} else {
			// Nothing visible may follow once one rune did not fit.
			used = width + 1
		}
		i += size
	}
	return b.String()
}

// sequenceEnd returns the index just past the escape sequence starting at
// s[i], or -1 when no complete sequence starts there.
func sequenceEnd(s string, i int) int {
	if s[i] != escape || i+1 >= len(s) || s[i+1] != '[' {
		return -1
	}
	digits := false
	for j := i + 2; j < len(s); j++ {
		c := s[j]
		switch {
		case c >= '0' && c <= '9':
			digits = true
		case c == ';':
			if !digits {
				return -1
			}
			digits = false
		case isLetter(c):
			// A parameter list may not end with ';'.
			if j > i+2 && !digits {
				return -1
			}
			return j + 1
		default:
			return -1
		}
	}
	return -1
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// columns is the display width of r. Control and zero-width runes count as
// one column so that unrecognized input is over-counted, never under-counted.
func columns(r rune) int {
	if n := runewidth.RuneWidth(r); n > 0 {
		return n
	}
	return 1
}
