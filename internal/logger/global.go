package logger

import "strings"

// Global logger instance
var globalLogger = NewDefault()

// Configure sets the global logger level and format from their string forms,
// as carried in the service configuration. Unknown values are ignored.
func Configure(level, format string) {
	if parsed, ok := parseLogLevel(level); ok {
		globalLogger.SetLevel(parsed)
	}
	if parsed, ok := parseLogFormat(format); ok {
		globalLogger.SetFormat(parsed)
	}
}

// parseLogLevel parses a log level string
func parseLogLevel(level string) (LogLevel, bool) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return DEBUG, true
	case "INFO":
		return INFO, true
	case "WARN", "WARNING":
		return WARN, true
	case "ERROR":
		return ERROR, true
	case "FATAL":
		return FATAL, true
	default:
		return 0, false
	}
}

// parseLogFormat parses a log format string
func parseLogFormat(format string) (LogFormat, bool) {
	switch strings.ToLower(format) {
	case "json":
		return JSONFormat, true
	case "text":
		return TextFormat, true
	default:
		return 0, false
	}
}

// WithComponent returns a copy of the global logger tagged with a component
func WithComponent(component string) *Logger {
	return globalLogger.WithComponent(component)
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() *Logger {
	return globalLogger
}

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger *Logger) {
	globalLogger = logger
}

// Debug logs a debug message using the global logger
func Debug(message string, fields ...map[string]interface{}) {
	globalLogger.Debug(message, fields...)
}

// Info logs an info message using the global logger
func Info(message string, fields ...map[string]interface{}) {
	globalLogger.Info(message, fields...)
}

// Warn logs a warning message using the global logger
func Warn(message string, fields ...map[string]interface{}) {
	globalLogger.Warn(message, fields...)
}

// Error logs an error message using the global logger
func Error(message string, err error, fields ...map[string]interface{}) {
	globalLogger.Error(message, err, fields...)
}

// Fatal logs a fatal message using the global logger and exits
func Fatal(message string, err error, fields ...map[string]interface{}) {
	globalLogger.Fatal(message, err, fields...)
}

// Infof logs a formatted info message using the global logger
func Infof(format string, args ...interface{}) {
	globalLogger.Infof(format, args...)
}

// Warnf logs a formatted warning message using the global logger
func Warnf(format string, args ...interface{}) {
	globalLogger.Warnf(format, args...)
}

// Errorf logs a formatted error message using the global logger
func Errorf(format string, args ...interface{}) {
	globalLogger.Errorf(format, args...)
}
