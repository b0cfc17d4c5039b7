// Package hydroharness provides the ambient logging helper a standalone
// driver uses around the hydro core: a plain io.Writer-backed logger in
// the simulation's own Logf/SetLogWriter style. Driving a CFL-selected
// timestep loop across RK sub-stages is an external driver's job, out of
// scope for this core (§1) — this package only offers the log sink.
package hydroharness

import (
	"fmt"
	"io"
)

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination. A nil writer (the zero
// value) falls back to stdout.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log line, one per call.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}
