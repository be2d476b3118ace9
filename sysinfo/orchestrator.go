package sysinfo

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"sysbanner/layout"
)

var (
	// ErrUnmappedField is returned for a displayed field without a collector.
	ErrUnmappedField = errors.New("no collector for field")

	// ErrDuplicateField is returned when a field is listed more than once.
	ErrDuplicateField = errors.New("field listed more than once")
)

// Timing records how long one collector took.
type Timing struct {
	Field   Field
	Elapsed time.Duration
}

// Orchestrator runs the collectors of the configured fields in order.
type Orchestrator struct {
	fields   []Field
	registry Registry
	perf     io.Writer
	progress io.Writer
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithPerfLog sets the sink receiving one "<field>, <seconds>" line per
// collector.
func WithPerfLog(w io.Writer) Option {
	return func(o *Orchestrator) {
		o.perf = w
	}
}

// WithProgress sets the writer that shows which fact is being collected.
func WithProgress(w io.Writer) Option {
	return func(o *Orchestrator) {
		o.progress = w
	}
}

// NewOrchestrator checks that every field maps to exactly one collector and
// returns an orchestrator for them. A failed check is a configuration
// error, not a runtime condition.
func NewOrchestrator(fields []Field, registry Registry, opts ...Option) (*Orchestrator, error) {
	seen := make(map[Field]bool, len(fields))
	for _, f := range fields {
		if seen[f] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, f)
		}
		seen[f] = true
		if c, ok := registry[f]; !ok || c.Collect == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnmappedField, f)
		}
	}

	o := &Orchestrator{
		fields:   fields,
		registry: registry,
		perf:     io.Discard,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Collect runs every collector in order, appending the produced lines to r.
// Each timing is written to the performance log before the next collector
// starts.
func (o *Orchestrator) Collect(r *Run) []Timing {
	timings := make([]Timing, 0, len(o.fields))

	for _, f := range o.fields {
		c := o.registry[f]
		o.showProgress(r, f)

		start := time.Now()
		if value, ok := c.Collect(r); ok {
			r.Output(c.Label, value)
		}
		elapsed := time.Since(start)

		if _, err := fmt.Fprintf(o.perf, "%s, %.3f\n", f, elapsed.Seconds()); err != nil {
			r.Log.Debug("failed to write performance log", "field", f, "error", err)
		}
		timings = append(timings, Timing{Field: f, Elapsed: elapsed})
	}

	o.clearProgress(r)
	return timings
}

func (o *Orchestrator) showProgress(r *Run, f Field) {
	if o.progress == nil {
		return
	}
	msg := fmt.Sprintf("Collating system information: %s...", f)
	fmt.Fprint(o.progress, "\r"+layout.Truncate(layout.LeftJustify(msg, r.Columns), r.Columns))
}

func (o *Orchestrator) clearProgress(r *Run) {
	if o.progress == nil {
		return
	}
	fmt.Fprint(o.progress, "\r"+strings.Repeat(" ", max(r.Columns, 0))+"\r")
}
