// Package progress reports long-running step progress (tree construction,
// circuit compilation, proving) to a human watching a demonstrator run.
//
// No progress-reporting library appears anywhere in the example pack, so
// Reporter and Stderr are built directly on stdlib fmt/io — a deliberate
// gap, not an oversight (see this module's design ledger).
package progress

import (
	"fmt"
	"io"
)

// Reporter reports discrete steps of a long-running operation.
type Reporter interface {
	// Step announces the start of a named step out of total (total may be
	// 0 if the step count is not known in advance).
	Step(name string, index, total int)
	// Done announces that the whole operation finished.
	Done()
}

// Stderr is the default Reporter, printing one line per step to an
// io.Writer (typically os.Stderr).
type Stderr struct {
	w io.Writer
}

// NewStderr builds a Stderr reporter writing to w.
func NewStderr(w io.Writer) Stderr {
	return Stderr{w: w}
}

// Step implements Reporter.
func (s Stderr) Step(name string, index, total int) {
	if total > 0 {
		fmt.Fprintf(s.w, "[%d/%d] %s\n", index+1, total, name)
		return
	}
	fmt.Fprintf(s.w, "%s\n", name)
}

// Done implements Reporter.
func (s Stderr) Done() {
	fmt.Fprintln(s.w, "done")
}

// Nop discards every report, for callers (tests, library use) that don't
// want progress output.
type Nop struct{}

// Step implements Reporter.
func (Nop) Step(string, int, int) {}

// Done implements Reporter.
func (Nop) Done() {}
