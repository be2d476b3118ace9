package sysinfo

import (
	"io/fs"
	"path"
	"strings"
)

// packageCounters counts installed packages per distribution.
var packageCounters = map[Distro]func(*Run) string{
	Ubuntu:     debianPackages,
	Kubuntu:    debianPackages,
	Raspbian:   debianPackages,
	Debian:     debianPackages,
	CrunchBang: debianPackages,
	BunsenLabs: debianPackages,
	Linuxmint:  debianPackages,
	Neon:       debianPackages,
	Zorin:      debianPackages,
	PopOS:      debianPackages,
	Elementary: debianPackages,
	Arch:       pacmanPackages,
	Manjaro:    pacmanPackages,
	ManjaroARM: pacmanPackages,
	Fedora:     rpmPackages,
	CentOS:     rpmPackages,
	MacOS:      macPackages,
}

func collectPackages(r *Run) (string, bool) {
	count, ok := packageCounters[r.Distro()]
	if !ok {
		return "Unsupported", true
	}
	return count(r), true
}

// packageSource is one package manager's contribution to the count.
type packageSource struct {
	name  string
	count int
}

// joinPackageSources renders "1,834 (dpkg), 3 (snap)", leaving out empty
// sources other than the first when keepFirst is set.
func joinPackageSources(keepFirst bool, sources ...packageSource) string {
	var parts []string
	for i, s := range sources {
		if s.count <= 0 && !(keepFirst && i == 0) {
			continue
		}
		parts = append(parts, FormatCount(s.count)+" ("+s.name+")")
	}
	return strings.Join(parts, ", ")
}

func debianPackages(r *Run) string {
	snaps := countLines(r.Host.Cmd, "snap", "list")
	if snaps > 0 {
		// header row
		snaps--
	}
	return joinPackageSources(true,
		packageSource{"dpkg", countLines(r.Host.Cmd, "dpkg-query", "-W")},
		packageSource{"flatpak", countLines(r.Host.Cmd, "flatpak", "list")},
		packageSource{"snap", snaps},
		packageSource{"appimage", appImages(r)},
	)
}

// appImageDirs are the home-relative directories searched for AppImages.
var appImageDirs = []string{".local/bin", "bin", ".bin"}

func appImages(r *Run) int {
	home := r.Host.Getenv("HOME")
	if home == "" {
		home = path.Join("/home", r.Host.User())
	}
	count := 0
	for _, dir := range appImageDirs {
		matches, err := fs.Glob(r.Host.FS, fsPath(path.Join(home, dir, "*.AppImage")))
		if err != nil {
			r.Log.Debug("appimage glob failed", "dir", dir, "error", err)
			continue
		}
		count += len(matches)
	}
	return count
}

func pacmanPackages(r *Run) string {
	return FormatCount(countLines(r.Host.Cmd, "pacman", "-Q"))
}

func rpmPackages(r *Run) string {
	return FormatCount(countLines(r.Host.Cmd, "rpm", "-qa"))
}

// homebrewCellars hold one directory per installed formula.
var homebrewCellars = []string{"/usr/local/Cellar", "/opt/homebrew/Cellar"}

func macPackages(r *Run) string {
	brew, port := 0, 0
	if r.Host.Cmd.Installed("brew") {
		for _, cellar := range homebrewCellars {
			entries, err := fs.ReadDir(r.Host.FS, fsPath(cellar))
			if err == nil {
				brew += len(entries)
			}
		}
	}
	if r.Host.Cmd.Installed("port") {
		// "The following ports are currently installed:" heads the list.
		if n := countLines(r.Host.Cmd, "port", "installed"); n > 0 {
			port = n - 1
		}
	}
	if brew == 0 && port == 0 {
		return "No Package Managers Installed"
	}
	return joinPackageSources(false,
		packageSource{"brew", brew},
		packageSource{"port", port},
	)
}
