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

var (
	majorPrefix = ""        // Prepended to each output line. Not currently
	minorPrefix = "  "      // configurable as nothing has ever needed to
	debugPrefix = "   Dbg:" // change them.

	out   io.Writer = os.Stdout
	level logLevel
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

// SetOut redirects all logging to the supplied io.Writer. The default is os.Stdout.
// The supplied io.Writer must never be nil.
func SetOut(w io.Writer) {
	if w == nil {
		panic("log.SetOut() called with a nil io.Writer")
	}
	out = w
}

// Out returns the current io.Writer for specialist loggers which bypass level
// control. The return value is never nil.
func Out() io.Writer {
	return out
}

// SetLevel sets the current logging level.
func SetLevel(l logLevel) {
	level = l
}

// Level returns the current logging level.
func Level() logLevel {
	return level
}

// IfMajor returns true if Major logging is written to the output stream. The If*
// functions let callers avoid evaluating expensive log arguments which would only be
// discarded.
func IfMajor() bool {
	return level >= MajorLevel
}

func IfMinor() bool {
	return level >= MinorLevel
}

func IfDebug() bool {
	return level >= DebugLevel
}

// Majorf is the approximate fmt.Printf equivalent. Output is only generated if the
// level is at least Major. A newline is always appended so the caller should not
// supply one.
func Majorf(format string, a ...interface{}) (n int, err error) {
	if level >= MajorLevel {
		return writeLines(fmt.Sprintf(format, a...), majorPrefix)
	}

	return 0, nil
}

// Major is the approximate fmt.Print equivalent. Output is only generated if the
// level is at least Major. As with fmt.Sprint, spaces are added between operands when
// neither is a string.
func Major(a ...interface{}) (n int, err error) {
	if level >= MajorLevel {
		return writeLines(fmt.Sprint(a...), majorPrefix)
	}

	return 0, nil
}

// Minorf is to Minor as Majorf is to Major.
func Minorf(format string, a ...interface{}) (n int, err error) {
	if level >= MinorLevel {
		return writeLines(fmt.Sprintf(format, a...), minorPrefix)
	}

	return 0, nil
}

// Minor generates output if the level is at least Minor.
func Minor(a ...interface{}) (n int, err error) {
	if level >= MinorLevel {
		return writeLines(fmt.Sprint(a...), minorPrefix)
	}

	return 0, nil
}

// Debugf generates output if the level is Debug.
func Debugf(format string, a ...interface{}) (n int, err error) {
	if level >= DebugLevel {
		return writeLines(fmt.Sprintf(format, a...), debugPrefix)
	}

	return 0, nil
}

// Debug generates output if the level is Debug.
func Debug(a ...interface{}) (n int, err error) {
	if level >= DebugLevel {
		return writeLines(fmt.Sprint(a...), debugPrefix)
	}

	return 0, nil
}

// writeLines sends the (possibly multi-line) string to the out stream with every
// line prefixed and excess trailing newlines chomped.
func writeLines(lines, prefix string) (int, error) {
	if !strings.Contains(lines, "\n") { // Expect this to be the common case
		return fmt.Fprint(out, prefix, lines, "\n")
	}

	ar := strings.Split(lines, "\n")
	for len(ar) > 0 && len(ar[len(ar)-1]) == 0 { // Chomp trailing empty lines
		ar = ar[:len(ar)-1]
	}

	return fmt.Fprint(out, prefix, strings.Join(ar, "\n"+prefix), "\n")
}
