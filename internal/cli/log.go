package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger writes leveled, timestamped lines prefixed with the tool name.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          appName,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the command logger, or one that discards
// everything when the command was run without the root's pre-run hook.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.New(io.Discard)
}

// runLogger tags every line of one layout run with its engine and input.
// The pipeline adds the run ID.
func runLogger(ctx context.Context, engine, input string) *log.Logger {
	return loggerFromContext(ctx).With("engine", engine, "input", input)
}
