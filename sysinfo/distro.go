package sysinfo

import "github.com/fatih/color"

// Distro identifies an operating system or distribution. It selects the logo,
// the label color and the collector variants used for a run.
type Distro int

const (
	Unknown Distro = iota
	Arch
	BunsenLabs
	CrunchBang
	CentOS
	Debian
	Elementary
	Fedora
	FreeBSD
	Kubuntu
	Linuxmint
	MacOS
	Manjaro
	ManjaroARM
	Neon
	PopOS
	Raspbian
	Ubuntu
	Zorin
)

var distroNames = [...]string{
	Unknown:    "Unknown",
	Arch:       "Arch",
	BunsenLabs: "BunsenLabs",
	CrunchBang: "CrunchBang",
	CentOS:     "CentOS",
	Debian:     "Debian",
	Elementary: "Elementary",
	Fedora:     "Fedora",
	FreeBSD:    "FreeBSD",
	Kubuntu:    "Kubuntu",
	Linuxmint:  "Linuxmint",
	MacOS:      "MacOS",
	Manjaro:    "Manjaro",
	ManjaroARM: "ManjaroARM",
	Neon:       "Neon",
	PopOS:      "PopOS",
	Raspbian:   "Raspbian",
	Ubuntu:     "Ubuntu",
	Zorin:      "Zorin",
}

func (d Distro) String() string {
	if d < 0 || int(d) >= len(distroNames) {
		return distroNames[Unknown]
	}
	return distroNames[d]
}

// Distros returns every known distribution, Unknown included.
func Distros() []Distro {
	all := make([]Distro, len(distroNames))
	for i := range all {
		all[i] = Distro(i)
	}
	return all
}

// distroIDs maps raw identity strings (a capitalized os-release ID, an
// lsb_release short name, or a command-line override) to a Distro.
var distroIDs = map[string]Distro{
	"Arch":        Arch,
	"Bunsenlabs":  BunsenLabs,
	"Centos":      CentOS,
	"CrunchBang":  CrunchBang,
	"Debian":      Debian,
	"Elementary":  Elementary,
	"Fedora":      Fedora,
	"Freebsd":     FreeBSD,
	"Kubuntu":     Kubuntu,
	"Linuxmint":   Linuxmint,
	"MacOS":       MacOS,
	"Manjaro":     Manjaro,
	"Manjaro-ARM": ManjaroARM,
	"Manjaro-arm": ManjaroARM,
	"Neon":        Neon,
	"Pop":         PopOS,
	"Raspbian":    Raspbian,
	"Ubuntu":      Ubuntu,
	"Zorin":       Zorin,
}

// ParseDistro maps a raw identity string to a Distro. Unmapped strings,
// "Undetermined" included, map to Unknown.
func ParseDistro(id string) Distro {
	if d, ok := distroIDs[id]; ok {
		return d
	}
	return Unknown
}

func newColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	// The banner is colored even when stdout is not a terminal, the logo
	// art carries raw escape codes anyway.
	c.EnableColor()
	return c
}

var (
	colorBoldRed    = newColor(color.FgRed, color.Bold)
	colorBoldGreen  = newColor(color.FgGreen, color.Bold)
	colorBoldYellow = newColor(color.FgYellow, color.Bold)
	colorBoldBlue   = newColor(color.FgBlue, color.Bold)
	colorBoldCyan   = newColor(color.FgCyan, color.Bold)
	colorWhite      = newColor(color.FgWhite)
	colorYellow     = newColor(color.FgYellow)
)

// labelColors holds the label color per distribution. Distributions without
// an entry use defaultLabelColor.
var labelColors = map[Distro]*color.Color{
	Arch:       colorBoldBlue,
	BunsenLabs: colorWhite,
	CentOS:     colorBoldBlue,
	CrunchBang: colorWhite,
	Debian:     colorBoldRed,
	Elementary: colorBoldBlue,
	Fedora:     colorBoldBlue,
	FreeBSD:    colorBoldRed,
	Kubuntu:    colorBoldCyan,
	Linuxmint:  colorBoldGreen,
	MacOS:      colorYellow,
	Manjaro:    colorBoldGreen,
	ManjaroARM: colorBoldGreen,
	Neon:       colorBoldBlue,
	PopOS:      colorBoldCyan,
	Raspbian:   colorBoldRed,
	Ubuntu:     colorBoldRed,
	Zorin:      colorBoldCyan,
}

var defaultLabelColor = colorBoldRed

// LabelColor returns the color used for field labels on d.
func LabelColor(d Distro) *color.Color {
	if c, ok := labelColors[d]; ok {
		return c
	}
	return defaultLabelColor
}

// usageColor grades a usage percentage: green up to low, red from high,
// yellow in between.
func usageColor(percent, low, high float64) *color.Color {
	switch {
	case percent >= high:
		return colorBoldRed
	case percent <= low:
		return colorBoldGreen
	default:
		return colorBoldYellow
	}
}
