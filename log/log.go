package log

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type logLevel int

const (
	SilentLevel logLevel = iota
	MajorLevel
	MinorLevel
	DebugLevel
)

func (t logLevel) String() string {
	switch t {
	case MajorLevel:
		return "Major"
	case MinorLevel:
		return "Minor"
	case DebugLevel:
		return "Debug"
	}

	return "Silent"
}

// prefix returns the string prepended to every line written at this level.
func (t logLevel) prefix() string {
	switch t {
	case MinorLevel:
		return "  "
	case DebugLevel:
		return "   Dbg:"
	}

	return ""
}

// Logger is a level-filtered writer. The package-level functions all operate on a
// single default Logger which writes to os.Stdout at MajorLevel.
type Logger struct {
	out   io.Writer
	level logLevel
}

var std = New(os.Stdout, MajorLevel)

// New creates a Logger which writes to w. w must not be nil.
func New(w io.Writer, l logLevel) *Logger {
	if w == nil {
		panic("log.New() called with a nil io.Writer")
	}
	return &Logger{out: w, level: l}
}

// SetOut changes the output of the default Logger. The supplied io.Writer must never be
// nil.
func SetOut(w io.Writer) {
	if w == nil {
		panic("log.SetOut() called with a nil io.Writer")
	}
	std.out = w
}

// Out returns the current io.Writer of the default Logger. Never nil.
func Out() io.Writer {
	return std.out
}

// SetLevel sets the level of the default Logger.
func SetLevel(l logLevel) {
	std.level = l
}

// Level returns the level of the default Logger.
func Level() logLevel {
	return std.level
}

// IfMajor returns true if Major output is written. The If* functions exist so callers
// can avoid building expensive arguments which would only be discarded.
func IfMajor() bool { return std.level >= MajorLevel }
func IfMinor() bool { return std.level >= MinorLevel }
func IfDebug() bool { return std.level >= DebugLevel }

// Major writes fmt.Sprint(a...) if the level is at least MajorLevel.
func Major(a ...interface{}) (int, error) { return std.print(MajorLevel, fmt.Sprint(a...)) }

// Majorf writes fmt.Sprintf(format, a...) if the level is at least MajorLevel.
func Majorf(format string, a ...interface{}) (int, error) {
	return std.print(MajorLevel, fmt.Sprintf(format, a...))
}

func Minor(a ...interface{}) (int, error) { return std.print(MinorLevel, fmt.Sprint(a...)) }

func Minorf(format string, a ...interface{}) (int, error) {
	return std.print(MinorLevel, fmt.Sprintf(format, a...))
}

func Debug(a ...interface{}) (int, error) { return std.print(DebugLevel, fmt.Sprint(a...)) }

func Debugf(format string, a ...interface{}) (int, error) {
	return std.print(DebugLevel, fmt.Sprintf(format, a...))
}

// Print writes s at level l if this Logger is at least that verbose.
func (t *Logger) Print(l logLevel, s string) (int, error) {
	return t.print(l, s)
}

func (t *Logger) print(l logLevel, s string) (int, error) {
	if t.level < l {
		return 0, nil
	}

	return prefixAndPrintLines(t.out, s, l.prefix())
}

// prefixAndPrintLines writes each line of lines with prefix prepended. Trailing empty
// lines are dropped and exactly one newline is written at the end, so an empty string
// produces an empty line.
func prefixAndPrintLines(w io.Writer, lines, prefix string) (int, error) {
	if !strings.Contains(lines, "\n") { // The common case
		return fmt.Fprint(w, prefix, lines, "\n")
	}

	ar := strings.Split(lines, "\n")
	for len(ar) > 0 && len(ar[len(ar)-1]) == 0 {
		ar = ar[:len(ar)-1]
	}

	return fmt.Fprint(w, prefix, strings.Join(ar, "\n"+prefix), "\n")
}
