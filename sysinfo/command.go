package sysinfo

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"math"
	"os/exec"
	"strings"
)

// Runner runs external programs on behalf of the collectors. A missing or
// failing program is reported through the boolean result, never as an
// error, so every caller can fall back to a placeholder.
type Runner interface {
	// Output returns the standard output of the command.
	Output(name string, args ...string) (string, bool)

	// CombinedOutput returns standard output and standard error together,
	// for tools that report on stderr.
	CombinedOutput(name string, args ...string) (string, bool)

	// Installed reports whether name can be found on PATH.
	Installed(name string) bool
}

// ExecRunner is the Runner backed by os/exec. Commands run synchronously
// without a timeout.
type ExecRunner struct {
	log *slog.Logger
}

// NewExecRunner returns a Runner that executes real programs.
func NewExecRunner(log *slog.Logger) *ExecRunner {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	return &ExecRunner{log: log}
}

// Installed reports whether name is on PATH.
func (e *ExecRunner) Installed(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Output runs the command and returns its standard output.
func (e *ExecRunner) Output(name string, args ...string) (string, bool) {
	return e.run(false, name, args...)
}

// CombinedOutput runs the command and returns stdout and stderr merged.
func (e *ExecRunner) CombinedOutput(name string, args ...string) (string, bool) {
	return e.run(true, name, args...)
}

func (e *ExecRunner) run(combined bool, name string, args ...string) (string, bool) {
	if !e.Installed(name) {
		e.log.Debug("command not available", "command", name)
		return "", false
	}

	out, err := runCommand(combined, name, args...)
	if err != nil {
		// A non-zero exit still counts when the tool printed something.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(out) > 0 {
			e.log.Debug("command exited with error", "command", name, "args", args, "error", err)
			return string(out), true
		}
		e.log.Debug("command failed", "command", name, "args", args, "error", err)
		return "", false
	}
	return string(out), true
}

// runCommand runs a command and returns raw stdout bytes, or stdout and
// stderr interleaved when combined is set. Stdin is left detached.
func runCommand(combined bool, name string, args ...string) ([]byte, error) {
	c := exec.Command(name, args...)
	if !combined {
		return c.Output()
	}
	var buf bytes.Buffer
	c.Stdout = &buf
	c.Stderr = &buf
	err := c.Run()
	return buf.Bytes(), err
}

// firstLine returns the first line of s without its line ending.
func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimRight(line, "\r")
}

// splitLines splits command output into lines, dropping the empty string
// that follows a final newline.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// countLines returns the number of output lines of a command, zero when the
// command is missing.
func countLines(cmd Runner, name string, args ...string) int {
	out, ok := cmd.Output(name, args...)
	if !ok {
		return 0
	}
	return len(splitLines(out))
}
