package sysinfo

import (
	"maps"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"howett.net/plist"
)

const (
	osReleasePath     = "/etc/os-release"
	systemVersionPath = "/System/Library/CoreServices/SystemVersion.plist"
	deviceTreeModel   = "/proc/device-tree/model"
)

// Release is the result of identifying the operating system.
type Release struct {
	// ID is the raw identity string, e.g. "Ubuntu" or "Undetermined".
	ID string

	// Distro is ID mapped through the distribution table.
	Distro Distro

	// Pretty is the display name, with the machine architecture appended.
	Pretty string
}

// kernelFamily groups uname sysnames by how the distribution is discovered.
type kernelFamily int

const (
	familyOther kernelFamily = iota
	familyDarwin
	familyUnix
)

var kernelFamilies = map[string]kernelFamily{
	"Darwin":    familyDarwin,
	"Linux":     familyUnix,
	"FreeBSD":   familyUnix,
	"OpenBSD":   familyUnix,
	"NetBSD":    familyUnix,
	"DragonFly": familyUnix,
}

// macOSNames maps a "major.minor" version (or "major" from Big Sur on) to the
// marketing name.
var macOSNames = map[string]string{
	"10.4":  "Mac OS X Tiger",
	"10.5":  "Mac OS X Leopard",
	"10.6":  "Mac OS X Snow Leopard",
	"10.7":  "Mac OS X Lion",
	"10.8":  "OS X Mountain Lion",
	"10.9":  "OS X Mavericks",
	"10.10": "OS X Yosemite",
	"10.11": "OS X El Capitan",
	"10.12": "macOS Sierra",
	"10.13": "macOS High Sierra",
	"10.14": "macOS Mojave",
	"10.15": "macOS Catalina",
	"10.16": "macOS Big Sur",
	"11.0":  "macOS Big Sur",
	"11":    "macOS Big Sur",
	"12":    "macOS Monterey",
	"13":    "macOS Ventura",
	"14":    "macOS Sonoma",
	"15":    "macOS Sequoia",
	"26":    "macOS Tahoe",
}

// Identify determines the operating system and distribution of the host.
//
// Parameters:
//   - h: The host probes to use
//
// Returns:
//   - A Release; the function never fails. Missing tools and files degrade
//     the result to "Undetermined" and Unknown.
//
// The kernel name decides between the macOS system version file and the
// os-release / lsb_release route. Ubuntu running KDE is reported as Kubuntu
// and Debian on a Raspberry Pi as Raspbian.
func Identify(h *Host) Release {
	id, pretty := undetermined, undetermined

	u, ok := h.Uname()
	if ok {
		switch kernelFamilies[u.Sysname] {
		case familyDarwin:
			id, pretty = "MacOS", macOSRelease(h)
		case familyUnix:
			id, pretty = unixRelease(h)
		default:
			h.Log.Debug("unrecognized kernel", "sysname", u.Sysname)
		}
		if u.Machine != "" {
			pretty += " " + u.Machine
		}
	} else {
		h.Log.Debug("uname unavailable")
	}

	switch id {
	case "Ubuntu":
		if detectDesktop(h, Unknown) == "KDE" {
			id = "Kubuntu"
			pretty = "Ku" + dropRunes(pretty, 1)
		}
	case "Debian":
		if model, ok := h.readFile(deviceTreeModel); ok && strings.Contains(model, "Raspberry Pi") {
			id = "Raspbian"
			pretty = "Rasp" + dropRunes(pretty, 2)
		}
	}

	return Release{ID: id, Distro: ParseDistro(id), Pretty: pretty}
}

// macOSRelease builds "<name> (<version>)" from the system version file.
func macOSRelease(h *Host) string {
	data, ok := h.readFile(systemVersionPath)
	if !ok {
		return "Mac OS Version " + undetermined
	}

	var sv struct {
		ProductUserVisibleVersion string `plist:"ProductUserVisibleVersion"`
	}
	if _, err := plist.Unmarshal([]byte(data), &sv); err != nil || sv.ProductUserVisibleVersion == "" {
		h.Log.Debug("failed to decode system version", "path", systemVersionPath, "error", err)
		return "Mac OS Version " + undetermined
	}

	version := sv.ProductUserVisibleVersion
	if name, ok := macOSName(version); ok {
		return name + " (" + version + ")"
	}
	return "Mac OS Version " + version
}

// macOSName looks up the marketing name of a full version string such as
// "10.15.7" by its major.minor prefix, then by its major number.
func macOSName(version string) (string, bool) {
	major, rest, _ := strings.Cut(version, ".")
	minor, _, _ := strings.Cut(rest, ".")
	if name, ok := macOSNames[major+"."+minor]; ok && minor != "" {
		return name, true
	}
	name, ok := macOSNames[major]
	return name, ok
}

// unixRelease reads the distribution from os-release, falling back to
// lsb_release.
func unixRelease(h *Host) (id, pretty string) {
	if data, ok := h.readFile(osReleasePath); ok {
		return parseOSRelease(h, data)
	}

	if h.Cmd.Installed("lsb_release") {
		id, _ := h.Cmd.Output("lsb_release", "-is")
		pretty, _ := h.Cmd.Output("lsb_release", "-ds")
		return orUndetermined(firstLine(id)), orUndetermined(strings.Trim(firstLine(pretty), `"`))
	}

	return undetermined, undetermined
}

// parseOSRelease extracts the capitalized ID and PRETTY_NAME from os-release
// content. Missing keys default to "Undetermined". Malformed lines are
// skipped so one bad assignment does not hide the rest.
func parseOSRelease(h *Host, data string) (id, pretty string) {
	id, pretty = undetermined, undetermined

	values := make(map[string]string)
	for n, line := range splitLines(data) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || !strings.Contains(line, "=") {
			continue
		}
		pair, err := godotenv.Unmarshal(literalDollars(line))
		if err != nil {
			h.Log.Debug("skipping malformed os-release line", "path", osReleasePath, "line", n+1, "error", err)
			continue
		}
		maps.Copy(values, pair)
	}
	if v := values["ID"]; v != "" {
		id = capitalize(v)
	}
	if v := values["PRETTY_NAME"]; v != "" {
		pretty = v
	}
	return id, pretty
}

// literalDollars escapes "$" in a double-quoted or bare value. os-release
// values never reference variables, and godotenv would expand them.
func literalDollars(line string) string {
	key, value, ok := strings.Cut(line, "=")
	if !ok || strings.HasPrefix(strings.TrimSpace(value), "'") {
		return line
	}
	return key + "=" + strings.ReplaceAll(value, "$", `\$`)
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// dropRunes removes the first n runes of s.
func dropRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}

func orUndetermined(s string) string {
	if strings.TrimSpace(s) == "" {
		return undetermined
	}
	return s
}
