package errors

import (
	"log/slog"

	"github.com/felt-ui/felt/pkg/logging"
)

// LogHandler is an ErrorHandler that writes to the shared felt logger.
type LogHandler struct {
	// Verbose adds stack traces to the log records.
	Verbose bool
}

// HandleError logs a FeltError at error level.
func (h *LogHandler) HandleError(err *FeltError) {
	if err == nil {
		return
	}
	attrs := []any{
		slog.String("op", err.Op),
		slog.String("kind", err.Kind.String()),
		slog.Any("error", err.Err),
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	logging.Logger().Error("felt error", attrs...)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{
		slog.String("op", err.Op),
		slog.Any("value", err.Value),
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	logging.Logger().Error("felt panic", attrs...)
}
