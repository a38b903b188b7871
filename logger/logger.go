// Package logger defines the string logging callback used across netcall
// along with its console default and a [log/slog] adapter.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Tag prefixes every line written by the console logger.
const Tag = "netcall"

// Func receives a single human-readable log line. Implementations must not
// panic and must be safe for concurrent use.
type Func func(msg string)

// Log calls f with msg. A nil Func discards the message.
func (f Func) Log(msg string) {
	if f == nil {
		return
	}
	f(msg)
}

// Console returns a Func that prints every message to stdout
// prefixed with [Tag].
func Console() Func {
	return Writer(os.Stdout)
}

// Writer returns a Func printing tagged lines to w.
func Writer(w io.Writer) Func {
	return func(msg string) {
		fmt.Fprintf(w, "%s: %s\n", Tag, msg)
	}
}

// FromSlog adapts a *slog.Logger into a Func. Messages are logged at Info
// with a "lib" attribute carrying [Tag].
func FromSlog(l *slog.Logger) Func {
	if l == nil {
		l = slog.Default()
	}

	return func(msg string) {
		l.Info(msg, "lib", Tag)
	}
}

// Discard drops every message.
func Discard() Func {
	return func(string) {}
}
