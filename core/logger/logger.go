// Package logger defines the logging interface shared by every component.
package logger

// Logger exposes leveled printf-style logging.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
