// Package log provides named, leveled loggers backed by go-logging.
package log

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/op/go-logging"
)

// Level controls which messages reach the sink
type Level int

// Verbosity levels, from most to least chatty
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level:.4s}]%{color:reset} %{message}`,
)

var (
	mu      sync.Mutex
	backend logging.LeveledBackend
	level   = Notice
)

// Logger is the leveled logging interface used across the renderer
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for a module name
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink redirects all loggers to w, keeping the current level
func SetSink(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	formatted := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), format)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(toLogging(level), "")
	logging.SetBackend(backend)
}

// SetLevel changes the verbosity of all loggers
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()

	level = l
	backend.SetLevel(toLogging(l), "")
}

// ParseLevel maps a level name such as "debug" or "warning" to a Level
func ParseLevel(name string) (Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return Debug, true
	case "info":
		return Info, true
	case "notice":
		return Notice, true
	case "warning", "warn":
		return Warning, true
	case "error":
		return Error, true
	}
	return Notice, false
}

func toLogging(l Level) logging.Level {
	switch l {
	case Debug:
		return logging.DEBUG
	case Info:
		return logging.INFO
	case Warning:
		return logging.WARNING
	case Error:
		return logging.ERROR
	default:
		return logging.NOTICE
	}
}

func init() {
	SetSink(os.Stdout)
}
