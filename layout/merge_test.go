package layout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeNarrowTerminalDropsLogo(t *testing.T) {
	logo := []string{blueBold + "  /\\  " + reset, blueBold + " /  \\ " + reset}
	data := []string{"User: alice", "OS: Linux", "Kernel: Linux 6.1"}

	got := Merge(logo, data, 60)

	require.Equal(t, data, got)
	for _, line := range got {
		assert.NotContains(t, line, "/\\")
	}
}

func TestMergeLineCount(t *testing.T) {
	for logoHeight := 0; logoHeight < 6; logoHeight++ {
		for dataHeight := 0; dataHeight < 6; dataHeight++ {
			logo := make([]string, logoHeight)
			for i := range logo {
				logo[i] = blueBold + strings.Repeat("#", i+1) + reset
			}
			data := make([]string, dataHeight)
			for i := range data {
				data[i] = "line"
			}

			got := Merge(logo, data, 100)
			assert.Len(t, got, max(logoHeight, dataHeight))
		}
	}
}

func TestMergeAlignsDataColumn(t *testing.T) {
	// Visible length 12, padded to the 20-column logo width.
	short := "\x1b[1;31m" + "abcdef" + "\x1b[1;37m" + "ghijkl" + reset
	wide := blueBold + strings.Repeat("x", 20) + reset
	logo := []string{short, wide}
	data := []string{"OS: Linux"}

	require.Equal(t, 12, VisibleLen(short))

	got := Merge(logo, data, 80)
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, short+strings.Repeat(" ", 8)+"    "+"OS: Linux", first)
	assert.True(t, strings.HasSuffix(first, Gutter+"OS: Linux"))
	assert.Equal(t, 20+len(Gutter)+len("OS: Linux"), VisibleLen(first))

	// The line without data still carries the padded logo and the gutter.
	assert.Equal(t, wide+Gutter, got[1])
}

func TestMergePadsMissingLogoLines(t *testing.T) {
	logo := []string{"ab", "abcd"}
	data := []string{"one", "two", "three"}

	got := Merge(logo, data, 80)

	assert.Equal(t, []string{
		"ab  " + Gutter + "one",
		"abcd" + Gutter + "two",
		"    " + Gutter + "three",
	}, got)
}

func TestMergeDoesNotModifyInputs(t *testing.T) {
	logo := []string{"a"}
	data := []string{"1", "2"}

	Merge(logo, data, 80)

	assert.Equal(t, []string{"a"}, logo)
	assert.Equal(t, []string{"1", "2"}, data)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	lines := []string{blueBold + "abcdefgh" + reset, "xy"}

	require.NoError(t, Render(&buf, lines, 4))

	assert.Equal(t, "\n"+blueBold+"abcd"+reset+"\nxy\n\n", buf.String())
}
