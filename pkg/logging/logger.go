package logging

import (
	"io"
	"os"
	"sync"

	"github.com/blazity/rm/pkg/ui"
	"github.com/charmbracelet/log"
)

type Logger interface {
	Info(message string)
	Warning(message string)
	Error(message string)
	Debug(message string, keyvals ...interface{})
	IsVerbose() bool
	SetVerbose(verbose bool)
}

// Options controls how the underlying charmbracelet logger is built.
type Options struct {
	Verbose    bool
	Timestamps bool
}

type logger struct {
	mu      sync.Mutex
	verbose bool
	log     *log.Logger
}

var (
	globalMu     sync.RWMutex
	globalLogger Logger
)

func NewLogger() Logger {
	return NewLoggerWithWriter(os.Stderr, Options{})
}

// NewLoggerWithWriter builds a logger that writes to w instead of stderr.
func NewLoggerWithWriter(w io.Writer, opts Options) Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportCaller:    false,
		ReportTimestamp: opts.Timestamps,
		Level:           log.InfoLevel,
	})
	l.SetStyles(ui.LogStyles())

	res := &logger{log: l}
	res.SetVerbose(opts.Verbose)
	return res
}

// InitLogger replaces the process-wide logger.
func InitLogger(opts Options) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = NewLoggerWithWriter(os.Stderr, opts)
}

// GetLogger returns the process-wide logger, creating a default one on first use.
func GetLogger() Logger {
	globalMu.RLock()
	l := globalLogger
	globalMu.RUnlock()
	if l != nil {
		return l
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger == nil {
		globalLogger = NewLogger()
	}
	return globalLogger
}

func (l *logger) Info(message string) {
	l.log.Info(message)
}

func (l *logger) Warning(message string) {
	l.log.Warn(message)
}

func (l *logger) Error(message string) {
	l.log.Error(message)
}

func (l *logger) Debug(message string, keyvals ...interface{}) {
	if l.IsVerbose() {
		l.log.Debug(message, keyvals...)
	}
}

func (l *logger) IsVerbose() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.verbose
}

func (l *logger) SetVerbose(verbose bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = verbose
	if verbose {
		l.log.SetLevel(log.DebugLevel)
	} else {
		l.log.SetLevel(log.InfoLevel)
	}
}
