package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger builds the CLI logger: timestamped ("15:04:05.00"), writing
// to w, dropping everything below level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress measures a single operation from construction to done.
// Calling done from multiple goroutines races on the logger.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress starts the clock on an operation.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs the formatted message with the elapsed time appended,
// rounded to the millisecond: "Placed 9 rooms (312ms)".
func (p *progress) done(format string, args ...any) {
	p.logger.Infof("%s (%s)", fmt.Sprintf(format, args...), time.Since(p.start).Round(time.Millisecond))
}

// ctxKey keeps context values private to this package.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx so subcommands can retrieve it with
// loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx. When none is
// set it falls back to log.Default so commands never log through nil.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
