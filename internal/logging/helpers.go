package logging

import "log/slog"

// Info logs at info level. A nil logger is a no-op so call sites never
// need to guard.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger == nil {
		return
	}
	logger.Info(msg, args...)
}

// Warn logs at warn level, attaching err when non-nil.
func Warn(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	logger.Warn(msg, withError(err, args)...)
}

// Error logs at error level, attaching err when non-nil.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	logger.Error(msg, withError(err, args)...)
}

func withError(err error, args []any) []any {
	if err == nil {
		return args
	}
	return append(args, slog.String(FieldError, err.Error()))
}
