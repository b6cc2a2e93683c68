package logging

import (
	"io"
	"log"
	"os"
	"sync"

	"github.com/1broseidon/imagegen/common"
)

type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	SetLevel(level common.LogLevel)
}

type defaultLogger struct {
	logger *log.Logger
	level  common.LogLevel
	mu     sync.Mutex
}

// NewDefaultLogger returns a disabled logger writing to stderr.
func NewDefaultLogger() Logger {
	return NewLogger(os.Stderr, common.DisabledLevel)
}

// NewLogger returns a logger writing to w that emits entries at or above level.
func NewLogger(w io.Writer, level common.LogLevel) Logger {
	return &defaultLogger{
		logger: log.New(w, "imagegen ", log.LstdFlags),
		level:  level,
	}
}

func (l *defaultLogger) enabled(level common.LogLevel) bool {
	return l.level != common.DisabledLevel && level >= l.level
}

func (l *defaultLogger) log(level common.LogLevel, prefix string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.enabled(level) {
		l.logger.Print(append([]interface{}{prefix}, args...)...)
	}
}

func (l *defaultLogger) logf(level common.LogLevel, prefix, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.enabled(level) {
		l.logger.Printf(prefix+format, args...)
	}
}

func (l *defaultLogger) Debug(args ...interface{}) { l.log(common.DebugLevel, "DEBUG: ", args...) }
func (l *defaultLogger) Debugf(format string, args ...interface{}) {
	l.logf(common.DebugLevel, "DEBUG: ", format, args...)
}
func (l *defaultLogger) Info(args ...interface{}) { l.log(common.InfoLevel, "INFO: ", args...) }
func (l *defaultLogger) Infof(format string, args ...interface{}) {
	l.logf(common.InfoLevel, "INFO: ", format, args...)
}
func (l *defaultLogger) Warn(args ...interface{}) { l.log(common.WarnLevel, "WARN: ", args...) }
func (l *defaultLogger) Warnf(format string, args ...interface{}) {
	l.logf(common.WarnLevel, "WARN: ", format, args...)
}
func (l *defaultLogger) Error(args ...interface{}) { l.log(common.ErrorLevel, "ERROR: ", args...) }
func (l *defaultLogger) Errorf(format string, args ...interface{}) {
	l.logf(common.ErrorLevel, "ERROR: ", format, args...)
}

func (l *defaultLogger) SetLevel(level common.LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

type discardLogger struct{}

// Discard returns a Logger that drops every entry.
func Discard() Logger { return discardLogger{} }

func (discardLogger) Debug(...interface{})          {}
func (discardLogger) Debugf(string, ...interface{}) {}
func (discardLogger) Info(...interface{})           {}
func (discardLogger) Infof(string, ...interface{})  {}
func (discardLogger) Warn(...interface{})           {}
func (discardLogger) Warnf(string, ...interface{})  {}
func (discardLogger) Error(...interface{})          {}
func (discardLogger) Errorf(string, ...interface{}) {}
func (discardLogger) SetLevel(common.LogLevel)      {}
