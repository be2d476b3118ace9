// Package sysinfo identifies the running operating system and gathers the
// facts shown in the banner. It defines the distribution table, the host
// probes the collectors depend on and the orchestrator that runs them.
package sysinfo

import (
	"io"
	"log/slog"
	"math"
	"slices"
)

// ANSI color codes for terminal output formatting
const (
	ColorReset = "\033[0m"

	ColorBlack       = "\033[0;30m"
	ColorBlackBold   = "\033[1;30m"
	ColorBlackBright = "\033[90m"

	ColorRed       = "\033[0;31m"
	ColorRedBold   = "\033[1;31m"
	ColorRedBright = "\033[91m"

	ColorGreen       = "\033[0;32m"
	ColorGreenBold   = "\033[1;32m"
	ColorGreenBright = "\033[92m"

	ColorYellow       = "\033[0;33m"
	ColorYellowBold   = "\033[1;33m"
	ColorYellowBright = "\033[93m"

	ColorBlue       = "\033[0;34m"
	ColorBlueBold   = "\033[1;34m"
	ColorBlueBright = "\033[94m"

	ColorPurple       = "\033[0;35m"
	ColorPurpleBold   = "\033[1;35m"
	ColorPurpleBright = "\033[95m"

	ColorCyan       = "\033[0;36m"
	ColorCyanBold   = "\033[1;36m"
	ColorCyanBright = "\033[96m"

	ColorWhite     = "\033[0;37m"
	ColorWhiteBold = "\033[1;37m"
)

// ANSI background colors used by the logo art
const (
	BgBlack  = "\033[40m"
	BgRed    = "\033[41m"
	BgGreen  = "\033[42m"
	BgYellow = "\033[43m"
	BgBlue   = "\033[44m"
	BgCyan   = "\033[46m"
	BgWhite  = "\033[47m"
)

// undetermined is shown in place of a fact that could not be gathered.
const undetermined = "Undetermined"

// TermSize is the size of the controlling terminal in character cells.
type TermSize struct {
	Columns int
	Rows    int
}

// Run carries everything a single banner run shares between collectors:
// the host probes, the identified release, the terminal geometry and the
// lines gathered so far. It replaces process-wide globals and is built once
// per run.
type Run struct {
	// Host gives access to commands, files, environment and processes.
	Host *Host

	// Release is the identified operating system, fixed for the run.
	Release Release

	// Console is the raw terminal size, used for console resolutions.
	Console TermSize

	// Columns is the usable output width.
	Columns int

	// Log receives diagnostics about facts that degraded.
	Log *slog.Logger

	lines    []string
	terminal string
	tty      string
}

// NewRun creates the context for one banner run.
func NewRun(host *Host, release Release, log *slog.Logger) *Run {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	return &Run{
		Host:    host,
		Release: release,
		Console: TermSize{Columns: 80, Rows: 24},
		Columns: 79,
		Log:     log,
	}
}

// Distro returns the identified distribution.
func (r *Run) Distro() Distro {
	return r.Release.Distro
}

// Append adds a fully rendered line to the result.
func (r *Run) Append(line string) {
	r.lines = append(r.lines, line)
}

// Output appends a "Label: value" line with the label in the distribution's
// color.
func (r *Run) Output(label, value string) {
	r.Append(LabelColor(r.Distro()).Sprint(label+":") + " " + value)
}

// Lines returns a copy of the lines gathered so far.
func (r *Run) Lines() []string {
	return slices.Clone(r.lines)
}

// Terminal returns the name of the terminal program, the grandparent of this
// process. The lookup happens once per run.
func (r *Run) Terminal() string {
	if r.terminal == "" {
		r.terminal = r.Host.Processes.Ancestor(2)
		if r.terminal == "" {
			r.terminal = undetermined
		}
	}
	return r.terminal
}

// TTY returns the device of the controlling terminal as reported by tty(1).
func (r *Run) TTY() string {
	if r.tty == "" {
		out, ok := r.Host.Cmd.Output("tty")
		r.tty = firstLine(out)
		if !ok || r.tty == "" {
			r.tty = undetermined
		}
	}
	return r.tty
}

// onMainConsole reports whether the run happens on the first virtual
// console (tty1 on Linux, ttyv0 on FreeBSD).
func (r *Run) onMainConsole() bool {
	tty := r.TTY()
	return tty == "/dev/tty1" || tty == "/dev/ttyv0"
}
