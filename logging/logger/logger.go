package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/ncobase/pager/logging/logger/config"
	"github.com/sirupsen/logrus"
)

// Key constants
const (
	VersionKey = "version"
)

// Logger represents logger instance
type Logger struct {
	*logrus.Logger
	mu      sync.Mutex
	version string
	logFile *os.File
}

var (
	// stdLogger is the global logger
	stdLogger *Logger
	// once ensures that the logger is initialized only once
	once sync.Once
)

// StdLogger returns the single logger instance
func StdLogger() *Logger {
	once.Do(func() {
		stdLogger = NewLogger()
	})
	return stdLogger
}

// NewLogger creates a standalone logger with text output on stderr
func NewLogger() *Logger {
	l := &Logger{Logger: logrus.New()}
	l.Logger.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{})
	return l
}

// SetVersion sets the version for logging
func (l *Logger) SetVersion(v string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.version = v
}

// Init applies the configuration and returns a cleanup function
// closing the log file, if any.
func (l *Logger) Init(c *config.Config) (func(), error) {
	if c == nil {
		c = config.Default()
	}

	l.SetLevel(logrus.Level(c.Level))

	switch c.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{})
	}

	switch c.Output {
	case "stdout":
		l.SetOutput(os.Stdout)
	case "stderr":
		l.SetOutput(os.Stderr)
	case "file":
		if c.OutputFile == "" {
			return nil, fmt.Errorf("logger output is file but output_file is empty")
		}
		if err := l.openLogFile(c.OutputFile); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown logger output %q", c.Output)
	}

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if l.logFile != nil {
			_ = l.logFile.Close()
			l.logFile = nil
		}
	}, nil
}

// openLogFile opens path for appending and routes output to it
func (l *Logger) openLogFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.mu.Lock()
	if l.logFile != nil {
		_ = l.logFile.Close()
	}
	l.logFile = f
	l.mu.Unlock()

	l.SetOutput(f)
	return nil
}

// entryFromContext creates a new log entry with fields from context
func (l *Logger) entryFromContext(ctx context.Context) *logrus.Entry {
	fields := logrus.Fields{}

	if traceID := getTraceID(ctx); traceID != "" {
		fields[traceKey] = traceID
	}

	l.mu.Lock()
	version := l.version
	l.mu.Unlock()
	if version != "" {
		fields[VersionKey] = version
	}

	return l.WithFields(fields)
}

// WithContextFields returns an entry with context fields and the given fields
func (l *Logger) WithContextFields(ctx context.Context, fields logrus.Fields) *logrus.Entry {
	return l.entryFromContext(ctx).WithFields(fields)
}

// Debug logs a debug message
func (l *Logger) Debug(ctx context.Context, args ...any) {
	l.entryFromContext(ctx).Log(logrus.DebugLevel, args...)
}

// Info logs an info message
func (l *Logger) Info(ctx context.Context, args ...any) {
	l.entryFromContext(ctx).Log(logrus.InfoLevel, args...)
}

// Warn logs a warn message
func (l *Logger) Warn(ctx context.Context, args ...any) {
	l.entryFromContext(ctx).Log(logrus.WarnLevel, args...)
}

// Error logs an error message
func (l *Logger) Error(ctx context.Context, args ...any) {
	l.entryFromContext(ctx).Log(logrus.ErrorLevel, args...)
}

// Debugf logs a debug message with format
func (l *Logger) Debugf(ctx context.Context, format string, args ...any) {
	l.entryFromContext(ctx).Logf(logrus.DebugLevel, format, args...)
}

// Infof logs an info message with format
func (l *Logger) Infof(ctx context.Context, format string, args ...any) {
	l.entryFromContext(ctx).Logf(logrus.InfoLevel, format, args...)
}

// Warnf logs a warn message with format
func (l *Logger) Warnf(ctx context.Context, format string, args ...any) {
	l.entryFromContext(ctx).Logf(logrus.WarnLevel, format, args...)
}

// Errorf logs an error message with format
func (l *Logger) Errorf(ctx context.Context, format string, args ...any) {
	l.entryFromContext(ctx).Logf(logrus.ErrorLevel, format, args...)
}

// SetOutput sets the output destination for the logger
func (l *Logger) SetOutput(out io.Writer) {
	l.Logger.SetOutput(out)
}

// SetVersion sets the version of the global logger
func SetVersion(v string) { StdLogger().SetVersion(v) }

// New initializes the global logger
func New(c *config.Config) (func(), error) { return StdLogger().Init(c) }

// WithFields returns an entry of the global logger with the given fields
func WithFields(ctx context.Context, fields logrus.Fields) *logrus.Entry {
	return StdLogger().WithContextFields(ctx, fields)
}

// Debugf logs debug message with format
func Debugf(ctx context.Context, format string, args ...any) {
	StdLogger().Debugf(ctx, format, args...)
}

// Infof logs info message with format
func Infof(ctx context.Context, format string, args ...any) {
	StdLogger().Infof(ctx, format, args...)
}

// Warnf logs warn message with format
func Warnf(ctx context.Context, format string, args ...any) {
	StdLogger().Warnf(ctx, format, args...)
}

// Errorf logs error message with format
func Errorf(ctx context.Context, format string, args ...any) {
	StdLogger().Errorf(ctx, format, args...)
}
