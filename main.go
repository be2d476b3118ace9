// Package main provides the sysbanner command-line tool, which prints system
// information beside an ASCII logo of the detected distribution.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sysbanner/ascii"
	"sysbanner/layout"
	"sysbanner/sysinfo"
)

// settleDelay lets a freshly opened terminal settle before its size is read.
const settleDelay = 200 * time.Millisecond

func main() {
	if err := newRootCmd(run).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command. Flag parsing is off so every argument,
// including ones that look like flags, reaches draw as a logo name.
func newRootCmd(draw func(io.Writer, []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   "sysbanner [distro]",
		Short: "Show system information beside a distribution logo",
		Long: `sysbanner prints user, host, OS, kernel, uptime, desktop, shell,
terminal, packages, display, CPU, memory and disk details next to an ASCII
logo of the running distribution.

A single argument such as "Fedora" or "Linuxmint" draws that distribution's
logo instead of the detected one. Names are case-sensitive.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return draw(cmd.OutOrStdout(), args)
		},
	}
}

// run draws one banner to out. Only a broken field table is an error;
// everything the host fails to report degrades to a placeholder, and a
// failed write is only logged.
func run(out io.Writer, args []string) error {
	log := newLogger()
	host := sysinfo.NewHost(log)

	release := sysinfo.Identify(host)
	log.Debug("identified release", "id", release.ID, "distro", release.Distro, "pretty", release.Pretty)

	perf := openPerfLog(host, log)
	defer perf.Close()

	opts := []sysinfo.Option{sysinfo.WithPerfLog(perf)}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		opts = append(opts, sysinfo.WithProgress(os.Stdout))
	}
	orch, err := sysinfo.NewOrchestrator(sysinfo.DefaultFields, sysinfo.DefaultRegistry(), opts...)
	if err != nil {
		return fmt.Errorf("configure fields: %w", err)
	}

	time.Sleep(settleDelay)
	r := sysinfo.NewRun(host, release, log)
	r.Console = terminalSize()
	r.Columns = r.Console.Columns - 1

	orch.Collect(r)
	for _, bar := range ascii.ColorBars() {
		r.Append(bar)
	}

	logoDistro := release.Distro
	if len(args) == 1 {
		logoDistro = sysinfo.ParseDistro(args[0])
		log.Debug("logo override", "arg", args[0], "distro", logoDistro)
	}

	lines := layout.Merge(ascii.GetLogo(logoDistro), r.Lines(), r.Columns)
	if err := layout.Render(out, lines, r.Columns); err != nil {
		log.Warn("failed to write banner", "error", err)
	}
	return nil
}

// newLogger logs warnings to stderr, or everything when SYSBANNER_DEBUG is
// set.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("SYSBANNER_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openPerfLog opens the per-user timing log in the temp directory. When it
// cannot be created the timings are discarded.
func openPerfLog(host *sysinfo.Host, log *slog.Logger) io.WriteCloser {
	f, err := sysinfo.OpenPerfLog(os.TempDir(), host.User(), host.Now())
	if err != nil {
		log.Warn("performance log disabled", "error", err)
		return nopCloser{io.Discard}
	}
	return f
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// terminalSize asks stdout, then stdin, for the terminal size and falls back
// to 80x24.
func terminalSize() sysinfo.TermSize {
	for _, f := range []*os.File{os.Stdout, os.Stdin} {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil && w > 0 && h > 0 {
			return sysinfo.TermSize{Columns: w, Rows: h}
		}
	}
	return sysinfo.TermSize{Columns: 80, Rows: 24}
}
