package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	blueBold = "\x1b[1;34m"
	reset    = "\x1b[0m"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		visible int
		escape  int
	}{
		{"plain", "OS: Linux", 9, 0},
		{"empty", "", 0, 0},
		{"colored label", blueBold + "OS:" + reset + " Linux", 9, len(blueBold) + len(reset)},
		{"no parameters", "\x1b[mab", 2, 3},
		{"many parameters", "\x1b[38;5;208mX", 1, len("\x1b[38;5;208m")},
		{"cursor move", "\x1b[2Kline", 4, 4},
		{"block glyphs", "▬▬▬ ███", 7, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Measure(tc.in)
			assert.Equal(t, tc.visible, got.Visible)
			assert.Equal(t, tc.escape, got.Escape)
		})
	}
}

func TestMeasureMalformedSequencesCountAsVisible(t *testing.T) {
	tests := []string{
		"\x1b",
		"\x1b[",
		"\x1b[31",
		"\x1b[;31m",
		"\x1b[31;m",
		"\x1b[3 1m",
		"\x1b]0;title\x07",
	}

	for _, in := range tests {
		got := Measure(in)
		assert.Zero(t, got.Escape, "input %q", in)
		assert.Equal(t, len([]rune(in)), got.Visible, "input %q", in)
	}
}

func TestVisiblePlusEscapeIsLength(t *testing.T) {
	pieces := []string{"a", "bc", " ", blueBold, reset, "\x1b[0;31m", "\x1b[90m", "xyz", "\x1b[47m", ":"}

	// Deterministic walk over many interleavings.
	for seed := 0; seed < 200; seed++ {
		var b strings.Builder
		n := seed
		for i := 0; i < 12; i++ {
			b.WriteString(pieces[n%len(pieces)])
			n = n*7 + 3
		}
		s := b.String()
		w := Measure(s)
		require.Equal(t, len(s), w.Visible+w.Escape, "input %q", s)
		assert.Equal(t, w.Visible, VisibleLen(s))
		assert.Equal(t, w.Escape, EscapeLen(s))
	}
}

func TestLeftJustify(t *testing.T) {
	colored := blueBold + "Arch" + reset

	got := LeftJustify(colored, 10)
	assert.Equal(t, colored+"      ", got)
	assert.Equal(t, 10, VisibleLen(got))

	assert.Equal(t, "HelloWorld", LeftJustify("HelloWorld", 5))
	assert.Equal(t, "     ", LeftJustify("", 5))
}

func TestLeftJustifyWidthIsMax(t *testing.T) {
	inputs := []string{"", "abc", blueBold + "abc" + reset, reset + reset, "0123456789abcdef"}
	for _, s := range inputs {
		for n := 0; n < 20; n++ {
			want := max(n, VisibleLen(s))
			assert.Equal(t, want, VisibleLen(LeftJustify(s, n)), "input %q width %d", s, n)
		}
	}
}

func TestTruncate(t *testing.T) {
	t.Run("short strings are untouched", func(t *testing.T) {
		s := blueBold + "OS:" + reset + " Linux"
		assert.Equal(t, s, Truncate(s, 9))
	})

	t.Run("keeps escapes before and after the cut", func(t *testing.T) {
		s := blueBold + "Kernel:" + reset + " Linux 6.1"
		got := Truncate(s, 5)
		assert.Equal(t, blueBold+"Kerne"+reset, got)
	})

	t.Run("trailing reset survives", func(t *testing.T) {
		got := Truncate("abcdef"+reset, 3)
		assert.Equal(t, "abc"+reset, got)
	})

	t.Run("negative width", func(t *testing.T) {
		assert.Equal(t, reset, Truncate("ab"+reset, -1))
	})
}

func TestTruncateNeverExceedsWidth(t *testing.T) {
	lines := []string{
		blueBold + "                 +" + reset + "    " + blueBold + "User:" + reset + " alice",
		"\x1b[90m▄█████▄\x1b[47m██\x1b[0m",
		"plain text that is rather long for a narrow terminal",
		"\x1b[31",
	}
	for _, line := range lines {
		for w := 0; w < 60; w++ {
			assert.LessOrEqual(t, VisibleLen(Truncate(line, w)), w, "line %q width %d", line, w)
		}
	}
}
