package reports

import (
	"fmt"
	"io"
	"strings"

	"twstock"
)

// Logger writes progress and level-prefixed messages to 'out', usually
// os.Stderr. It implements the twstock.Logger interface.
type Logger struct {
	out io.Writer
}

var _ twstock.Logger = (*Logger)(nil)

// NewLogger creates a new Logger.
func NewLogger(out io.Writer) *Logger {
	return &Logger{out: out}
}

// Run prints a message before running a process.
func (l *Logger) Run(format string, v ...interface{}) {
	s := strings.TrimSuffix(fmt.Sprintf(format, v...), "\n")
	fmt.Fprint(l.out, "[ ] "+s)
}

// Ok prints a checkmark after a successful Run().
func (l *Logger) Ok() {
	fmt.Fprint(l.out, "\r[✓]\n")
}

// Nok prints an x mark after an unsuccessful Run().
func (l *Logger) Nok() {
	fmt.Fprint(l.out, "\r[✗]\n")
}

// Printf prints the plain text.
func (l *Logger) Printf(format string, v ...interface{}) {
	fmt.Fprintf(l.out, format, v...)
}

// Debug for debugging information.
func (l *Logger) Debug(format string, v ...interface{}) {
	l.level("DEBUG", format, v...)
}

// Info for something noteworthy.
func (l *Logger) Info(format string, v ...interface{}) {
	l.level("INFO", format, v...)
}

// Warn for a warning message.
func (l *Logger) Warn(format string, v ...interface{}) {
	l.level("WARN", format, v...)
}

// Error message.
func (l *Logger) Error(format string, v ...interface{}) {
	l.level("ERROR", format, v...)
}

func (l *Logger) level(lvl, format string, v ...interface{}) {
	s := strings.TrimSuffix(fmt.Sprintf(format, v...), "\n")
	fmt.Fprintf(l.out, "[%s] %s\n", lvl, s)
}
