// Package xlog wraps github.com/op/go-logging with the leveled, colorized
// setup the rest of this repository uses, plus lightweight structured
// context: a Logger can be narrowed with WithFields so a render run or CLI
// command can tag every line it emits with the scene file, worker id, or
// whatever else is relevant, without threading format strings everywhere.
package xlog

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/op/go-logging"
)

// Level mirrors the subset of logging.Level this repo's CLI exposes.
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var leveledBackend logging.LeveledBackend

// Fields attaches structured key/value context to a log line. go-logging
// has no native structured-field support, so fields are rendered as a
// sorted "key=value" suffix appended to the formatted message.
type Fields map[string]interface{}

func (f Fields) String() string {
	if len(f) == 0 {
		return ""
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, f[k])
	}
	return " " + strings.Join(parts, " ")
}

// Logger is the subset of *logging.Logger this package's callers use, plus
// WithFields for attaching structured context to a scoped copy.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Notice(v ...interface{})
	Noticef(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Warning(v ...interface{})
	Warningf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
	WithFields(fields Fields) Logger
}

type boundLogger struct {
	backend *logging.Logger
	fields  Fields
}

// New returns a named logger bound to the shared backend.
func New(name string) Logger {
	return &boundLogger{backend: logging.MustGetLogger(name)}
}

// WithFields returns a copy of l that appends fields to every line it logs.
// Fields from repeated calls accumulate; a later call wins on key collision.
func (l *boundLogger) WithFields(fields Fields) Logger {
	merged := make(Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &boundLogger{backend: l.backend, fields: merged}
}

func (l *boundLogger) Debug(v ...interface{}) {
	l.backend.Debug(l.withSuffix(v)...)
}

func (l *boundLogger) Debugf(format string, v ...interface{}) {
	l.backend.Debugf(format+"%s", l.withSuffix(v)...)
}

func (l *boundLogger) Notice(v ...interface{}) {
	l.backend.Notice(l.withSuffix(v)...)
}

func (l *boundLogger) Noticef(format string, v ...interface{}) {
	l.backend.Noticef(format+"%s", l.withSuffix(v)...)
}

func (l *boundLogger) Info(v ...interface{}) {
	l.backend.Info(l.withSuffix(v)...)
}

func (l *boundLogger) Infof(format string, v ...interface{}) {
	l.backend.Infof(format+"%s", l.withSuffix(v)...)
}

func (l *boundLogger) Warning(v ...interface{}) {
	l.backend.Warning(l.withSuffix(v)...)
}

func (l *boundLogger) Warningf(format string, v ...interface{}) {
	l.backend.Warningf(format+"%s", l.withSuffix(v)...)
}

func (l *boundLogger) Error(v ...interface{}) {
	l.backend.Error(l.withSuffix(v)...)
}

func (l *boundLogger) Errorf(format string, v ...interface{}) {
	l.backend.Errorf(format+"%s", l.withSuffix(v)...)
}

func (l *boundLogger) withSuffix(v []interface{}) []interface{} {
	out := make([]interface{}, len(v)+1)
	copy(out, v)
	out[len(v)] = l.fields.String()
	return out
}

// SetSink redirects all logger output to sinks. Multiple sinks (for
// example stdout plus a log file) are fanned out with io.MultiWriter.
func SetSink(sinks ...io.Writer) {
	var w io.Writer
	switch len(sinks) {
	case 0:
		w = os.Stdout
	case 1:
		w = sinks[0]
	default:
		w = io.MultiWriter(sinks...)
	}
	backend := logging.NewLogBackend(w, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(logging.NOTICE, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel adjusts the minimum level that reaches the sink.
func SetLevel(level Level) {
	var loggerLevel logging.Level
	switch level {
	case Debug:
		loggerLevel = logging.DEBUG
	case Info:
		loggerLevel = logging.INFO
	case Notice:
		loggerLevel = logging.NOTICE
	case Warning:
		loggerLevel = logging.WARNING
	case Error:
		loggerLevel = logging.ERROR
	}
	leveledBackend.SetLevel(loggerLevel, "")
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}
