package sysinfo

import (
	"regexp"
	"strings"
)

// desktopVariables maps XDG_CURRENT_DESKTOP values to desktop names.
var desktopVariables = map[string]string{
	"X-Cinnamon":   "Cinnamon",
	"GNOME":        "GNOME",
	"pop:GNOME":    "GNOME",
	"ubuntu:GNOME": "GNOME",
	"KDE":          "KDE",
	"LXDE":         "LXDE",
	"MATE":         "MATE",
	"Pantheon":     "Pantheon",
	"unity":        "Unity",
	"Unity":        "Unity",
	"XFCE":         "Xfce",
}

// desktopProcesses maps session process names to desktop names.
var desktopProcesses = map[string]string{
	"cinnamon":        "Cinnamon",
	"dde-dock":        "Deepin",
	"fur-box-session": "Fur Box",
	"gnome-session":   "GNOME",
	"gnome-shell":     "GNOME",
	"ksmserver":       "KDE",
	"lxqt-session":    "LXQt",
	"lxsession":       "LXDE",
	"mate-session":    "MATE",
	"xfce4-session":   "Xfce",
}

// detectDesktop names the desktop environment, or returns "" when none is
// running. XDG_CURRENT_DESKTOP wins over the process list.
func detectDesktop(h *Host, d Distro) string {
	if d == MacOS {
		return "Aqua"
	}
	if de, ok := desktopVariables[h.Getenv("XDG_CURRENT_DESKTOP")]; ok {
		return de
	}
	for _, name := range h.Processes.Names() {
		if de, ok := desktopProcesses[name]; ok {
			return de
		}
	}
	return ""
}

// kdeVersion returns "KDE <kded version> / Plasma <plasma version>", leaving
// out whatever cannot be determined.
func kdeVersion(h *Host) string {
	session := h.Getenv("KDE_SESSION_VERSION")
	if session == "" {
		session = "4"
	}
	kded := "kded" + session

	pretty := "KDE"
	if out, ok := h.Cmd.Output(kded, "--version"); ok {
		if v := strings.TrimSpace(strings.TrimPrefix(firstLine(out), kded+" ")); v != "" {
			pretty += " " + v
		}
	}
	if out, ok := h.Cmd.Output("plasmashell", "--version"); ok {
		if v := strings.TrimSpace(strings.TrimPrefix(firstLine(out), "plasmashell ")); v != "" {
			pretty += " / Plasma " + v
		}
	}
	return pretty
}

// gnomeVersionSources lists the programs that report the GNOME version, in
// order of preference, with the prefix to strip from their upper-cased
// output.
var gnomeVersionSources = []struct {
	command string
	prefix  *regexp.Regexp
}{
	{"gnome-shell", regexp.MustCompile(`^GNOME.SHELL `)},
	{"gnome-session-properties", regexp.MustCompile(`^GNOME-SESSION-PROPERTIES `)},
	{"gnome-control-center", regexp.MustCompile(`^GNOME-CONTROL-CENTER `)},
}

// gnomeVersion returns "GNOME <version>" or plain "GNOME".
func gnomeVersion(h *Host) string {
	for _, src := range gnomeVersionSources {
		out, ok := h.Cmd.Output(src.command, "--version")
		if !ok {
			continue
		}
		v := strings.TrimSpace(src.prefix.ReplaceAllString(strings.ToUpper(firstLine(out)), ""))
		if v != "" {
			return "GNOME " + v
		}
	}
	return "GNOME"
}
