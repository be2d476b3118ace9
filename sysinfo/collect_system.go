package sysinfo

import (
	"path"
	"strconv"
	"strings"
	"time"
)

func collectUser(r *Run) (string, bool) {
	return orUndetermined(r.Host.User()), true
}

func collectHostname(r *Run) (string, bool) {
	u, ok := r.Host.Uname()
	if !ok {
		return undetermined, true
	}
	return orUndetermined(strings.TrimSuffix(u.Nodename, ".local")), true
}

func collectDistro(r *Run) (string, bool) {
	return r.Release.Pretty, true
}

// collectPiModel shows the board model on a Raspberry Pi and nothing
// elsewhere.
func collectPiModel(r *Run) (string, bool) {
	model, ok := r.Host.readFile(deviceTreeModel)
	if !ok || !strings.Contains(model, "Raspberry") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimRight(model, "\x00")), true
}

func collectKernel(r *Run) (string, bool) {
	out, _ := r.Host.Cmd.Output("uname", "-sr")
	return orUndetermined(firstLine(out)), true
}

// uptimeSources reads the uptime per distribution. Hosts without /proc use
// the boot time instead.
var uptimeSources = map[Distro]func(*Run) (time.Duration, bool){
	MacOS:   bootTimeUptime,
	FreeBSD: bootTimeUptime,
}

func collectUptime(r *Run) (string, bool) {
	source, ok := uptimeSources[r.Distro()]
	if !ok {
		source = procUptime
	}
	uptime, ok := source(r)
	if !ok {
		return undetermined, true
	}
	return FormatUptime(uptime), true
}

func procUptime(r *Run) (time.Duration, bool) {
	data, ok := r.Host.readFile("/proc/uptime")
	if !ok {
		return 0, false
	}
	uptime, ok := parseProcUptime(data)
	if !ok {
		r.Log.Debug("unexpected /proc/uptime format", "content", data)
	}
	return uptime, ok
}

// parseProcUptime reads the first field of /proc/uptime, seconds since boot.
func parseProcUptime(data string) (time.Duration, bool) {
	fields := strings.Fields(data)
	if len(fields) == 0 {
		return 0, false
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || secs < 0 {
		return 0, false
	}
	return time.Duration(secs * float64(time.Second)), true
}

func bootTimeUptime(r *Run) (time.Duration, bool) {
	boot, ok := r.Host.BootTime()
	if !ok {
		r.Log.Debug("boot time unavailable")
		return 0, false
	}
	return r.Host.Now().Sub(boot), true
}

// collectShell shows the login shell, with the full version line for bash.
func collectShell(r *Run) (string, bool) {
	shellPath := r.Host.Getenv("SHELL")
	if shellPath == "" {
		return undetermined, true
	}
	shell := path.Base(shellPath)
	if shell == "bash" {
		if out, ok := r.Host.Cmd.Output(shell, "--version"); ok && firstLine(out) != "" {
			return firstLine(out), true
		}
	}
	return shell, true
}

func collectTerminal(r *Run) (string, bool) {
	return r.Terminal(), true
}
