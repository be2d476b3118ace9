package sysinfo

import (
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"os/user"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/process"
)

// Uname holds the fields of uname(2) the banner uses.
type Uname struct {
	Sysname  string
	Nodename string
	Release  string
	Machine  string
}

// ProcessTable answers the process questions the banner asks.
type ProcessTable interface {
	// Names returns the names of all running processes.
	Names() []string

	// Ancestor returns the name of the process generations levels above this
	// one, or "" when it cannot be determined.
	Ancestor(generations int) string
}

// Host bundles every input the identifier and the collectors read from the
// machine. Tests replace individual fields with fakes.
type Host struct {
	Cmd       Runner
	FS        fs.FS
	Getenv    func(string) string
	Uname     func() (Uname, bool)
	Processes ProcessTable
	BootTime  func() (time.Time, bool)
	Now       func() time.Time
	User      func() string
	Log       *slog.Logger
}

// NewHost returns a Host wired to the real machine.
func NewHost(log *slog.Logger) *Host {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	return &Host{
		Cmd:       NewExecRunner(log),
		FS:        os.DirFS("/"),
		Getenv:    os.Getenv,
		Uname:     nativeUname,
		Processes: &psProcessTable{log: log},
		BootTime:  bootTime,
		Now:       time.Now,
		User:      currentUser,
		Log:       log,
	}
}

// readFile returns the content of an absolute path through h.FS.
func (h *Host) readFile(path string) (string, bool) {
	data, err := fs.ReadFile(h.FS, fsPath(path))
	if err != nil {
		h.Log.Debug("file not readable", "path", path, "error", err)
		return "", false
	}
	return string(data), true
}

// exists reports whether an absolute path exists in h.FS.
func (h *Host) exists(path string) bool {
	_, err := fs.Stat(h.FS, fsPath(path))
	return err == nil
}

// fsPath converts an absolute path to the unrooted form io/fs expects.
func fsPath(path string) string {
	return strings.TrimPrefix(path, "/")
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return os.Getenv("LOGNAME")
}

func bootTime() (time.Time, bool) {
	secs, err := host.BootTime()
	if err != nil || secs == 0 {
		return time.Time{}, false
	}
	return time.Unix(int64(secs), 0), true
}

// psProcessTable reads the process table through gopsutil.
type psProcessTable struct {
	log *slog.Logger
}

func (p *psProcessTable) Names() []string {
	procs, err := process.Processes()
	if err != nil {
		p.log.Debug("failed to list processes", "error", err)
		return nil
	}
	names := make([]string, 0, len(procs))
	for _, proc := range procs {
		// Processes can exit between listing and inspection.
		name, err := proc.Name()
		if err != nil {
			continue
		}
		names = append(names, name)
	}
	return names
}

func (p *psProcessTable) Ancestor(generations int) string {
	pid := int32(os.Getpid())
	for i := 0; i < generations; i++ {
		proc, err := process.NewProcess(pid)
		if err != nil {
			p.log.Debug("failed to open process", "pid", pid, "error", err)
			return ""
		}
		if pid, err = proc.Ppid(); err != nil {
			p.log.Debug("failed to read parent pid", "pid", proc.Pid, "error", err)
			return ""
		}
	}
	proc, err := process.NewProcess(pid)
	if err != nil {
		p.log.Debug("failed to open process", "pid", pid, "error", err)
		return ""
	}
	name, err := proc.Name()
	if err != nil {
		p.log.Debug("failed to read process name", "pid", pid, "error", err)
		return ""
	}
	return name
}
