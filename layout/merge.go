package layout

import (
	"fmt"
	"io"
)

const (
	// MinLogoColumns is the narrowest terminal that still gets a logo.
	MinLogoColumns = 70

	// Gutter separates the logo column from the information column.
	Gutter = "    "
)

// Merge combines the logo and the information lines into one block.
//
// Parameters:
//   - logo: Logo art, one string per line (may contain ANSI color codes)
//   - data: Information lines, one string per line
//   - columns: Usable terminal width
//
// Returns:
//   - data alone when columns is below MinLogoColumns
//   - otherwise max(len(logo), len(data)) lines, each the logo line padded to
//     the widest logo line, the gutter, and the information line
//
// Neither input slice is modified.
func Merge(logo, data []string, columns int) []string {
	if columns < MinLogoColumns {
		return append([]string(nil), data...)
	}

	height := max(len(logo), len(data))
	logoWidth := MaxVisible(logo)

	out := make([]string, height)
	for i := 0; i < height; i++ {
		out[i] = LeftJustify(lineAt(logo, i), logoWidth) + Gutter + lineAt(data, i)
	}
	return out
}

// MaxVisible returns the visible width of the widest line.
func MaxVisible(lines []string) int {
	widest := 0
	for _, line := range lines {
		if n := VisibleLen(line); n > widest {
			widest = n
		}
	}
	return widest
}

// Render writes the merged lines surrounded by blank lines, each cut to the
// terminal width.
func Render(w io.Writer, lines []string, columns int) error {
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, Truncate(line, columns)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}
