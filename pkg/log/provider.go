package log

import (
	"context"
	"log/slog"
	"sync"
)

// slogLogger adapts a *slog.Logger to the Logger interface.
type slogLogger struct {
	logger *slog.Logger
}

// Debug implements Logger.Debug.
func (l *slogLogger) Debug(msg string, fields ...any) {
	l.logger.Debug(msg, fields...)
}

// Info implements Logger.Info.
func (l *slogLogger) Info(msg string, fields ...any) {
	l.logger.Info(msg, fields...)
}

// Warn implements Logger.Warn.
func (l *slogLogger) Warn(msg string, fields ...any) {
	l.logger.Warn(msg, fields...)
}

// Error implements Logger.Error.
func (l *slogLogger) Error(msg string, fields ...any) {
	l.logger.Error(msg, fields...)
}

// With implements Logger.With.
func (l *slogLogger) With(fields ...any) Logger {
	return &slogLogger{logger: l.logger.With(fields...)}
}

// Enabled implements Logger.Enabled.
func (l *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return l.logger.Enabled(ctx, slog.Level(level))
}

// slogProvider is the default LoggerProvider backed by the process-wide slog
// default logger.
type slogProvider struct {
	level *slog.LevelVar
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *slogProvider) GetLogger() Logger {
	return &slogLogger{logger: slog.Default()}
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
func (p *slogProvider) GetLoggerWithName(name string) Logger {
	return &slogLogger{logger: slog.Default().With(ComponentKey, name)}
}

// SetLevel implements LoggerProvider.SetLevel.
func (p *slogProvider) SetLevel(level Level) {
	p.level.Set(slog.Level(level))
}

var (
	providerMu      sync.RWMutex
	defaultLevelVar = &slog.LevelVar{}
	defaultProvider LoggerProvider = &slogProvider{level: defaultLevelVar}
)

// SetLoggerProvider replaces the package-level LoggerProvider.
// This is primarily intended for tests and for applications that want to
// route library logs through their own backend. Passing nil restores the
// built-in slog-backed provider.
func SetLoggerProvider(p LoggerProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	if p == nil {
		p = &slogProvider{level: defaultLevelVar}
	}
	defaultProvider = p
}

// GetLogger returns the default logger from the current provider.
func GetLogger() Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return defaultProvider.GetLogger()
}

// GetLoggerWithName returns a named logger from the current provider.
func GetLoggerWithName(name string) Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return defaultProvider.GetLoggerWithName(name)
}

// SetLevel sets the minimum log level on the current provider.
func SetLevel(level Level) {
	providerMu.RLock()
	defer providerMu.RUnlock()
	defaultProvider.SetLevel(level)
}
