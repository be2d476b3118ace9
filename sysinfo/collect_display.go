package sysinfo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

// windowManagers maps lower-cased _NET_WM_NAME values to display names.
var windowManagers = map[string]string{
	"awesome":         "Awesome",
	"beryl":           "Beryl",
	"blackbox":        "Blackbox",
	"compiz":          "Compiz",
	"dwm":             "DWM",
	"enlightenment":   "Enlightenment",
	"fluxbox":         "Fluxbox",
	"fvwm":            "FVWM",
	"gnome shell":     "Mutter",
	"i3":              "i3",
	"icewm":           "IceWM",
	"kwin":            "KWin",
	"metacity":        "Metacity",
	"musca":           "Musca",
	"mutter":          "Mutter",
	"mutter(gala)":    "Gala",
	"mutter (muffin)": "mutter (muffin)",
	"openbox":         "Openbox",
	"pekwm":           "PekWM",
	"ratpoison":       "Rat Poison",
	"scrotwm":         "ScrotWM",
	"wmaker":          "Window Maker",
	"wmfs":            "Wmfs",
	"wmii":            "Wmii",
	"xfwm4":           "Xfwm",
	"xmonad":          "Xmonad",
}

// collectWindowManager names the window manager and tags it with the
// session type (X11, Wayland, tty) when known.
func collectWindowManager(r *Run) (string, bool) {
	wm := windowManager(r)
	if session := r.Host.Getenv("XDG_SESSION_TYPE"); session != "" {
		if session != "tty" {
			session = capitalize(session)
		}
		wm += " (" + session + ")"
	}
	return wm, true
}

func windowManager(r *Run) string {
	switch {
	case r.onMainConsole():
		return "Main Console"
	case r.Terminal() == "sshd":
		return "SSH Console"
	case r.Distro() == MacOS:
		return "Quartz Compositor"
	case !r.Host.Cmd.Installed("xprop"):
		return undetermined + " (xprop not installed)"
	}

	out, _ := r.Host.Cmd.Output("xprop", "-root", "-notype", "_NET_SUPPORTING_WM_CHECK")
	id, ok := parseXpropWindowID(out)
	if !ok {
		return undetermined
	}
	out, _ = r.Host.Cmd.Output("xprop", "-id", id, "-notype", "-f", "_NET_WM_NAME", "8t")
	name, ok := parseXpropWMName(out)
	if !ok {
		return undetermined
	}
	if pretty, ok := windowManagers[name]; ok {
		return pretty
	}
	return name + " (Not Recognised)"
}

// parseXpropWindowID extracts the id from
// "_NET_SUPPORTING_WM_CHECK: window id # 0x1400003".
func parseXpropWindowID(out string) (string, bool) {
	_, id, found := strings.Cut(firstLine(out), "window id # ")
	id = strings.TrimSpace(id)
	return id, found && id != ""
}

// parseXpropWMName extracts the lower-cased, unquoted window manager name
// from the line containing `WM_NAME = "..."`.
func parseXpropWMName(out string) (string, bool) {
	for _, line := range splitLines(out) {
		if _, name, found := strings.Cut(line, "WM_NAME = "); found {
			name = strings.ToLower(strings.ReplaceAll(name, `"`, ""))
			return strings.TrimSpace(name), true
		}
	}
	return "", false
}

// collectDesktop shows the desktop environment, with versions for KDE and
// GNOME, and nothing when no desktop is running.
func collectDesktop(r *Run) (string, bool) {
	switch de := detectDesktop(r.Host, r.Distro()); de {
	case "":
		return "", false
	case "KDE":
		return kdeVersion(r.Host), true
	case "GNOME":
		return gnomeVersion(r.Host), true
	default:
		return de, true
	}
}

// collectResolution shows the text size on consoles and the display mode
// under a graphical session.
func collectResolution(r *Run) (string, bool) {
	switch {
	case r.onMainConsole():
		return fmt.Sprintf("Main Console %dx%d", r.Console.Columns, r.Console.Rows), true
	case r.Terminal() == "sshd":
		return fmt.Sprintf("SSH Console %dx%d", r.Console.Columns, r.Console.Rows), true
	case r.Distro() == MacOS:
		return orUndetermined(macResolution(r)), true
	case r.Host.Cmd.Installed("xrandr"):
		out, _ := r.Host.Cmd.Output("xrandr", "--nograb", "--current")
		if res, ok := parseXrandr(out); ok {
			return res, true
		}
	}
	return undetermined, true
}

func macResolution(r *Run) string {
	if r.Host.Cmd.Installed("screenresolution") {
		// screenresolution reports on stderr.
		out, _ := r.Host.Cmd.CombinedOutput("screenresolution", "get")
		res, _ := parseScreenResolution(out)
		return res
	}
	out, _ := r.Host.Cmd.Output("system_profiler", "SPDisplaysDataType")
	res, _ := valueAfter(out, "Resolution: ")
	return res
}

// parseScreenResolution reads the main display from `screenresolution get`,
// adding "Hz" when a refresh rate is included.
func parseScreenResolution(out string) (string, bool) {
	res, ok := valueAfter(out, "Display 0: ")
	if ok && strings.Contains(res, "@") {
		res += "Hz"
	}
	return res, ok
}

// parseXrandr reads the current mode, the one marked with '*', and its
// refresh rate: "1920x1080, 60 Hz".
func parseXrandr(out string) (string, bool) {
	for _, line := range splitLines(out) {
		before, _, found := strings.Cut(line, "*")
		if !found {
			continue
		}
		fields := strings.Fields(before)
		if len(fields) == 0 {
			continue
		}
		res := fields[0]
		if len(fields) > 1 {
			if hz, err := strconv.ParseFloat(fields[len(fields)-1], 64); err == nil && math.Round(hz) != 0 {
				res += fmt.Sprintf(", %.0f Hz", math.Round(hz))
			}
		}
		return res, true
	}
	return "", false
}

// gpuSources reads the GPU per distribution, lspci by default.
var gpuSources = map[Distro]func(*Run) (string, bool){
	MacOS:   macGPU,
	FreeBSD: freeBSDGPU,
}

// collectGPU falls back to the Raspberry Pi revision code when no graphics
// device is listed.
func collectGPU(r *Run) (string, bool) {
	source, ok := gpuSources[r.Distro()]
	if !ok {
		source = lspciGPU
	}
	if gpu, ok := source(r); ok {
		return gpu, true
	}
	return piGPU(r), true
}

func macGPU(r *Run) (string, bool) {
	out, _ := r.Host.Cmd.Output("system_profiler", "SPDisplaysDataType")
	return valueAfter(out, "Chipset Model: ")
}

func freeBSDGPU(r *Run) (string, bool) {
	out, _ := r.Host.Cmd.Output("pciconf", "-lv")
	if gpu, ok := parsePciconf(out); ok {
		return gpu, true
	}
	return "No Display Information Found", true
}

func lspciGPU(r *Run) (string, bool) {
	if !r.Host.Cmd.Installed("lspci") {
		return "", false
	}
	out, _ := r.Host.Cmd.Output("lspci", "-m")
	return parseLspci(out)
}

// parseLspci reads the last display controller from `lspci -m`, whose lines
// look like: 00:02.0 "VGA compatible controller" "Intel Corporation" "UHD
// Graphics 620" -r07 "Lenovo" "Device 2258".
func parseLspci(out string) (string, bool) {
	gpu := ""
	for _, line := range splitLines(out) {
		if !strings.Contains(line, "VGA") && !strings.Contains(line, "Display") && !strings.Contains(line, "3D") {
			continue
		}
		fields, err := shlex.Split(line)
		if err != nil || len(fields) < 4 {
			continue
		}
		gpu = fields[2] + ", " + fields[3]
	}
	return gpu, gpu != ""
}

// parsePciconf finds the first device of class display in `pciconf -lv`
// and returns "<vendor> <device>".
func parsePciconf(out string) (string, bool) {
	lines := splitLines(out)
	for i, line := range lines {
		if key, value := pciconfField(line); key != "class" || value != "display" {
			continue
		}
		var vendor, device string
		for j := i - 1; j >= 0 && j >= i-2; j-- {
			switch key, value := pciconfField(lines[j]); key {
			case "vendor":
				vendor = value
			case "device":
				device = value
			}
		}
		switch {
		case vendor == "" && device == "":
			return "", false
		case vendor == "":
			return device, true
		default:
			return strings.TrimSpace(vendor + " " + device), true
		}
	}
	return "", false
}

// pciconfField splits an indented "key = 'value'" line.
func pciconfField(line string) (string, string) {
	if !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t") {
		return "", ""
	}
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", ""
	}
	return strings.TrimSpace(key), strings.Trim(value, " '")
}

// valueAfter returns the rest of the first line containing marker.
func valueAfter(out, marker string) (string, bool) {
	for _, line := range splitLines(out) {
		if _, value, found := strings.Cut(line, marker); found {
			return strings.TrimSpace(value), true
		}
	}
	return "", false
}

// Raspberry Pi graphics cores by revision code. Old-style codes are the raw
// hexadecimal strings; new-style codes carry the board type in bits 4-11.
var (
	piOldRevisions = map[string]string{
		"0002": "VideoCore IV", "0003": "VideoCore IV", "0004": "VideoCore IV",
		"0005": "VideoCore IV", "0006": "VideoCore IV", "0007": "VideoCore IV",
		"0008": "VideoCore IV", "0009": "VideoCore IV", "000d": "VideoCore IV",
		"000e": "VideoCore IV", "000f": "VideoCore IV", "0010": "VideoCore IV",
		"0011": "VideoCore IV", "0012": "VideoCore IV", "0013": "VideoCore IV",
		"0014": "VideoCore IV", "0015": "VideoCore IV",
	}
	piBoardTypes = map[uint64]string{
		2: "VideoCore IV", 3: "VideoCore IV", 4: "VideoCore IV", 6: "VideoCore IV",
		8: "VideoCore IV", 9: "VideoCore IV", 10: "VideoCore IV", 12: "VideoCore IV",
		13: "VideoCore IV", 14: "VideoCore IV", 16: "VideoCore IV", 17: "VideoCore VI",
		18: "VideoCore IV", 19: "VideoCore VI", 20: "VideoCore VI", 23: "VideoCore VII",
	}
)

func piGPU(r *Run) string {
	cpuinfo, ok := r.Host.readFile("/proc/cpuinfo")
	if !ok {
		return undetermined
	}
	return piGPUFromCPUInfo(cpuinfo)
}

// piGPUFromCPUInfo decodes the "Revision" line of /proc/cpuinfo.
func piGPUFromCPUInfo(cpuinfo string) string {
	var revision string
	for _, line := range splitLines(cpuinfo) {
		key, value, found := strings.Cut(line, ":")
		if found && strings.TrimSpace(key) == "Revision" {
			revision = strings.TrimSpace(value)
			break
		}
	}
	if revision == "" {
		return undetermined
	}

	code, err := strconv.ParseUint(revision, 16, 32)
	if err != nil {
		return "Unrecognised Pi Model " + revision + "."
	}
	if (code>>23)&0x1 == 0 {
		if gpu, ok := piOldRevisions[revision]; ok {
			return gpu
		}
		return "Unrecognised Pi Model " + revision + "."
	}
	board := (code >> 4) & 0xff
	if gpu, ok := piBoardTypes[board]; ok {
		return gpu
	}
	return fmt.Sprintf("Unrecognised Pi Model %d.", board)
}
