// Package log provides functionality for logging commands and errors
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"roster/local-app/src/pkg/model"
)

// Fields carries structured attributes attached to a log record
type Fields map[string]interface{}

// Logger writes commands, errors and informational messages to separate JSON log files
type Logger struct {
	commandLogger *slog.Logger
	errorLogger   *slog.Logger
	infoLogger    *slog.Logger
	files         []*os.File
	level         LogLevel
}

// NewLogger creates a new Logger instance writing into cfg.LogFolder.
// An empty log folder yields a logger that discards everything.
func NewLogger(cfg *model.Config, level LogLevel) (*Logger, error) {
	if cfg.LogFolder == "" {
		return newLogger(io.Discard, io.Discard, io.Discard, level, nil), nil
	}

	// Create log directory if it doesn't exist
	if err := os.MkdirAll(cfg.LogFolder, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	var files []*os.File
	open := func(name string) (*os.File, error) {
		f, err := os.OpenFile(filepath.Join(cfg.LogFolder, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			for _, opened := range files {
				opened.Close()
			}
			return nil, err
		}
		files = append(files, f)
		return f, nil
	}

	commandFile, err := open(cfg.CommandLog)
	if err != nil {
		return nil, fmt.Errorf("failed to open command log file: %w", err)
	}
	errorFile, err := open(cfg.ErrorLog)
	if err != nil {
		return nil, fmt.Errorf("failed to open error log file: %w", err)
	}
	infoFile, err := open(cfg.InfoLog)
	if err != nil {
		return nil, fmt.Errorf("failed to open info log file: %w", err)
	}

	return newLogger(commandFile, errorFile, infoFile, level, files), nil
}

func newLogger(command, errs, info io.Writer, level LogLevel, files []*os.File) *Logger {
	return &Logger{
		commandLogger: slog.New(slog.NewJSONHandler(command, &slog.HandlerOptions{Level: slog.LevelInfo})),
		errorLogger:   slog.New(slog.NewJSONHandler(errs, &slog.HandlerOptions{Level: slog.LevelWarn})),
		infoLogger:    slog.New(slog.NewJSONHandler(info, &slog.HandlerOptions{Level: slog.LevelDebug})),
		files:         files,
		level:         level,
	}
}

func (l *Logger) enabled(level LogLevel) bool {
	return level <= l.level
}

func (l *Logger) log(ctx context.Context, logger *slog.Logger, level LogLevel, msg string, fields Fields) {
	if !l.enabled(level) {
		return
	}
	attrs := make([]slog.Attr, 0, len(fields))
	for k, v := range fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		attrs = append(attrs, slog.Any(k, v))
	}
	logger.LogAttrs(ctx, level.toSlogLevel(), msg, attrs...)
}

// LogCommand records a raw input line in the command log
func (l *Logger) LogCommand(ctx context.Context, command string, fields Fields) {
	if fields == nil {
		fields = Fields{}
	}
	fields["command"] = command
	l.log(ctx, l.commandLogger, LevelCommand, "command", fields)
}

func (l *Logger) Error(ctx context.Context, msg string, fields Fields) {
	l.log(ctx, l.errorLogger, LevelError, msg, fields)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields Fields) {
	l.log(ctx, l.errorLogger, LevelWarn, msg, fields)
}

func (l *Logger) Info(ctx context.Context, msg string, fields Fields) {
	l.log(ctx, l.infoLogger, LevelInfo, msg, fields)
}

func (l *Logger) Debug(ctx context.Context, msg string, fields Fields) {
	l.log(ctx, l.infoLogger, LevelDebug, msg, fields)
}

// Close closes all log files opened by NewLogger
func (l *Logger) Close() error {
	for _, f := range l.files {
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close log file %s: %w", f.Name(), err)
		}
	}
	l.files = nil
	return nil
}
