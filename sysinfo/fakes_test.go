package sysinfo

import (
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"
	"testing/fstest"
	"time"
)

// fakeRunner answers commands from a table keyed by the full command line.
type fakeRunner struct {
	outputs   map[string]string
	installed map[string]bool
	calls     []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{outputs: map[string]string{}, installed: map[string]bool{}}
}

// on registers the output of a command line and marks the program installed.
func (f *fakeRunner) on(cmdline, out string) *fakeRunner {
	f.outputs[cmdline] = out
	f.installed[strings.Fields(cmdline)[0]] = true
	return f
}

func (f *fakeRunner) Installed(name string) bool {
	return f.installed[name]
}

func (f *fakeRunner) Output(name string, args ...string) (string, bool) {
	cmdline := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, cmdline)
	out, ok := f.outputs[cmdline]
	return out, ok
}

func (f *fakeRunner) CombinedOutput(name string, args ...string) (string, bool) {
	return f.Output(name, args...)
}

type fakeProcesses struct {
	names     []string
	ancestors map[int]string
}

func (p *fakeProcesses) Names() []string { return p.names }

func (p *fakeProcesses) Ancestor(generations int) string { return p.ancestors[generations] }

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// testHost builds a Linux host with nothing installed. Tests fill in the
// pieces they need.
func testHost(t *testing.T) (*Host, *fakeRunner, fstest.MapFS, map[string]string) {
	t.Helper()

	cmd := newFakeRunner()
	files := fstest.MapFS{}
	env := map[string]string{}
	h := &Host{
		Cmd:       cmd,
		FS:        files,
		Getenv:    func(k string) string { return env[k] },
		Uname:     func() (Uname, bool) { return Uname{Sysname: "Linux", Nodename: "box", Machine: "x86_64"}, true },
		Processes: &fakeProcesses{ancestors: map[int]string{2: "gnome-terminal-"}},
		BootTime:  func() (time.Time, bool) { return testNow.Add(-90 * time.Minute), true },
		Now:       func() time.Time { return testNow },
		User:      func() string { return "alice" },
		Log:       slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}
	return h, cmd, files, env
}

func file(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content)}
}

// testRun wraps a host in a run for distribution d.
func testRun(h *Host, d Distro) *Run {
	return NewRun(h, Release{ID: d.String(), Distro: d, Pretty: d.String()}, nil)
}
