package logger

import corelogger "github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/core/logger"

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger implements Logger with no-op methods.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// New returns a Logger for the given component with default settings: info
// level, format chosen by the APP_ENV variable.
func New(component string) Logger {
	return NewWithConfig(component, "info", "")
}
