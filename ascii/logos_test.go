package ascii

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysbanner/layout"
	"sysbanner/sysinfo"
)

func TestGetLogoCoversEveryDistro(t *testing.T) {
	for _, d := range sysinfo.Distros() {
		logo := GetLogo(d)
		require.NotEmpty(t, logo, d.String())
		assert.Less(t, layout.MaxVisible(logo), layout.MinLogoColumns, d.String())
	}
}

func TestGetLogoFallsBackToTux(t *testing.T) {
	assert.Equal(t, tuxLogo(), GetLogo(sysinfo.Unknown))
	assert.Equal(t, tuxLogo(), GetLogo(sysinfo.Distro(99)))
	assert.Equal(t, manjaroLogo(), GetLogo(sysinfo.ManjaroARM))
	assert.NotEqual(t, tuxLogo(), GetLogo(sysinfo.Fedora))
}

func TestGetLogoReturnsFreshSlice(t *testing.T) {
	first := GetLogo(sysinfo.Arch)
	first[0] = "changed"

	assert.NotEqual(t, "changed", GetLogo(sysinfo.Arch)[0])
}

func TestLogosEndWithReset(t *testing.T) {
	for _, d := range sysinfo.Distros() {
		logo := GetLogo(d)
		assert.True(t, strings.HasSuffix(logo[len(logo)-1], reset), d.String())
	}
}

func TestColorBars(t *testing.T) {
	bars := ColorBars()

	require.Len(t, bars, 2)
	for _, bar := range bars {
		assert.Equal(t, 6*5+5, layout.VisibleLen(bar))
		assert.Equal(t, 6, strings.Count(bar, "▬▬▬▬▬"))
		assert.True(t, strings.HasSuffix(bar, "▬"+reset))
	}
	assert.True(t, strings.HasPrefix(bars[0], sysinfo.ColorRed))
	assert.True(t, strings.HasPrefix(bars[1], sysinfo.ColorRedBright))
}
