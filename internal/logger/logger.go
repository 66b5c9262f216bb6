// Copyright (c) 2025 swhkd-go contributors
// SPDX-License-Identifier: MIT

// Package logger provides the daemon's structured logging facade. The
// Logger interface is the narrow surface every other package depends
// on; DefaultLogger backs it with github.com/charmbracelet/log so
// daemon output gets level-colored, timestamped lines without every
// caller hand-rolling its own format.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
)

// LogLevel represents the level of logging.
type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarningLevel
	ErrorLevel
)

func (l LogLevel) charm() charmlog.Level {
	switch l {
	case DebugLevel:
		return charmlog.DebugLevel
	case WarningLevel:
		return charmlog.WarnLevel
	case ErrorLevel:
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

// Logger defines methods for logging at different levels. Every
// component that needs to log depends on this interface, not on
// *DefaultLogger, so tests can substitute a no-op or recording fake.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Config contains logger configuration: the minimum level to emit and
// an optional file to append to instead of stderr.
type Config struct {
	Level LogLevel
	File  string
}

// DefaultLogger implements Logger on top of charmbracelet/log.
type DefaultLogger struct {
	level LogLevel
	inner *charmlog.Logger
}

// NewDefaultLogger builds a logger at the given level writing to stderr.
func NewDefaultLogger(level LogLevel) *DefaultLogger {
	l := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		Prefix:          "swhkd",
	})
	l.SetLevel(level.charm())
	return &DefaultLogger{level: level, inner: l}
}

// Configure builds a logger from Config, optionally redirecting output
// to a file (e.g. when running detached from a terminal).
func Configure(config Config) (*DefaultLogger, error) {
	out := os.Stderr
	if config.File != "" {
		dir := filepath.Dir(config.File)
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create log directory %s: %w", dir, err)
		}
		f, err := os.OpenFile(config.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", config.File, err)
		}
		out = f
	}

	l := charmlog.NewWithOptions(out, charmlog.Options{
		ReportTimestamp: true,
		Prefix:          "swhkd",
	})
	l.SetLevel(config.Level.charm())
	return &DefaultLogger{level: config.Level, inner: l}, nil
}

func (l *DefaultLogger) Debug(format string, args ...interface{}) {
	l.inner.Debugf(format, args...)
}

func (l *DefaultLogger) Info(format string, args ...interface{}) {
	l.inner.Infof(format, args...)
}

func (l *DefaultLogger) Warning(format string, args ...interface{}) {
	l.inner.Warnf(format, args...)
}

func (l *DefaultLogger) Error(format string, args ...interface{}) {
	l.inner.Errorf(format, args...)
}
