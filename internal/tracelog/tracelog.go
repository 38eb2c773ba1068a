package tracelog

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level identifies a logging severity, ordered from most to least
// verbose.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	numLevels
)

// ParseLevel maps a flag value like "debug" to a Level; unrecognized
// input returns LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes leveled messages to an underlying log.Logger, dropping
// anything below its current minimum level.
type Logger struct {
	logger *log.Logger
	mut    sync.Mutex
	min    Level
}

// New returns a Logger writing to w with a time prefix, at LevelInfo
// or above until SetLevel is called.
func New(w io.Writer) *Logger {
	return &Logger{logger: log.New(w, "", log.Ltime), min: LevelInfo}
}

// Default is the package-level logger used by callers that don't need
// their own instance, writing to stderr so stdout stays free for SVG
// output.
var Default = New(os.Stderr)

// SetLevel sets the minimum level that will be written.
func (l *Logger) SetLevel(level Level) {
	l.mut.Lock()
	defer l.mut.Unlock()
	l.min = level
}

func (l *Logger) log(level Level, s string) {
	l.mut.Lock()
	defer l.mut.Unlock()
	if level < l.min {
		return
	}
	_ = l.logger.Output(3, level.String()+": "+strings.TrimSpace(s))
}

func (l *Logger) Debugln(vals ...interface{}) { l.log(LevelDebug, fmt.Sprintln(vals...)) }
func (l *Logger) Debugf(format string, vals ...interface{}) {
	l.log(LevelDebug, fmt.Sprintf(format, vals...))
}

func (l *Logger) Infoln(vals ...interface{}) { l.log(LevelInfo, fmt.Sprintln(vals...)) }
func (l *Logger) Infof(format string, vals ...interface{}) {
	l.log(LevelInfo, fmt.Sprintf(format, vals...))
}

func (l *Logger) Warnln(vals ...interface{}) { l.log(LevelWarn, fmt.Sprintln(vals...)) }
func (l *Logger) Warnf(format string, vals ...interface{}) {
	l.log(LevelWarn, fmt.Sprintf(format, vals...))
}

func (l *Logger) Errorln(vals ...interface{}) { l.log(LevelError, fmt.Sprintln(vals...)) }
func (l *Logger) Errorf(format string, vals ...interface{}) {
	l.log(LevelError, fmt.Sprintf(format, vals...))
}
