package cmd

import (
	"log"
	"os"
)

// stderrLogger adapts the standard library logger to the engine's Logger
// interface. Debug output is gated on the --verbose flag.
type stderrLogger struct {
	l *log.Logger
}

func newStderrLogger() stderrLogger {
	return stderrLogger{l: log.New(os.Stderr, "", log.LstdFlags)}
}

func (s stderrLogger) Debugf(format string, args ...any) {
	if verbose {
		s.l.Printf("DEBUG "+format, args...)
	}
}
func (s stderrLogger) Infof(format string, args ...any)  { s.l.Printf("INFO "+format, args...) }
func (s stderrLogger) Warnf(format string, args ...any)  { s.l.Printf("WARN "+format, args...) }
func (s stderrLogger) Errorf(format string, args ...any) { s.l.Printf("ERROR "+format, args...) }
