// Package elog provides the small logging surface used inside eones.
//
// The core types are plain values and stay silent; the only thing worth
// logging is diagnostic detail from the parser (which layout matched, which
// were tried).  elog keeps that behind a two-level Logger interface with a
// process-wide fallback backed by logrus, so that embedding applications can
// either leave the default in place or swap in their own backend with
// SetFallback.
package elog

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger is the minimal surface eones logs through.  Trace is used for
// per-attempt parser detail, Debug for one-line outcomes.
type Logger interface {
	Tracef(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logrusWrapper struct {
	l logrus.FieldLogger
}

func (w logrusWrapper) Tracef(format string, args ...interface{}) {
	// FieldLogger predates logrus.TraceLevel; entries and loggers both
	// implement Tracef, so recover it where available.
	if t, ok := w.l.(interface {
		Tracef(format string, args ...interface{})
	}); ok {
		t.Tracef(format, args...)
		return
	}
	w.l.Debugf(format, args...)
}

func (w logrusWrapper) Debugf(format string, args ...interface{}) {
	w.l.Debugf(format, args...)
}

// WrapLogrus adapts a logrus logger or entry into a Logger.
func WrapLogrus(l logrus.FieldLogger) Logger {
	return logrusWrapper{l: l}
}

var globals = struct { //nolint:gochecknoglobals // the fallback is deliberately process-wide
	fallback   Logger
	fallbackMu sync.RWMutex
}{
	fallback: WrapLogrus(logrus.New()),
}

// Fallback returns the process-wide Logger used when a caller did not supply
// one explicitly.
func Fallback() Logger {
	globals.fallbackMu.RLock()
	defer globals.fallbackMu.RUnlock()
	return globals.fallback
}

// SetFallback replaces the process-wide Logger.  A nil Logger silences eones
// entirely.
func SetFallback(l Logger) {
	globals.fallbackMu.Lock()
	defer globals.fallbackMu.Unlock()
	globals.fallback = l
}
