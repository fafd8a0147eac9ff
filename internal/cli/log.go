// Package cli implements the holefit command-line interface.
//
// This package provides commands for checking candidate solutions, running
// the force simulation headless or interactively, and managing stored
// solutions. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - check: Report edge lengths, boundary crossings and dislikes
//   - solve: Run the simulation for a fixed number of frames and save the result
//   - play: Drive a session interactively in the terminal
//   - solutions: List, export and delete stored solutions
//   - config: Print, locate or initialize the configuration file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
// Session and store events are logged at debug level through the
// observability hooks.
//
// # Example
//
//	import "github.com/matzehuels/holefit/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/holefit/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
// The returned progress should call done when the operation completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Simulated 600 frames (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
// This ensures commands always have a valid logger even if context setup fails.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks forwards session and store events to a logger at debug level.
// Frame ticks are too frequent for the log and are dropped.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnTick(string, int, time.Duration) {}

func (h *logHooks) OnModeChange(from, to string, running bool) {
	h.logger.Debug("mode", "from", from, "to", to, "running", running)
}

func (h *logHooks) OnEdit(op string, moved int) {
	h.logger.Debug("edit", "op", op, "moved", moved)
}

func (h *logHooks) OnReset() {
	h.logger.Debug("reset")
}

func (h *logHooks) OnSave(_ context.Context, problem, name string, size int) {
	h.logger.Debug("saved solution", "problem", problem, "name", name, "bytes", size)
}

func (h *logHooks) OnLoad(_ context.Context, problem, name string, err error) {
	if err != nil {
		h.logger.Debug("load solution failed", "problem", problem, "name", name, "err", err)
		return
	}
	h.logger.Debug("loaded solution", "problem", problem, "name", name)
}

func (h *logHooks) OnDelete(_ context.Context, problem, name string) {
	h.logger.Debug("deleted solution", "problem", problem, "name", name)
}

var (
	_ observability.SessionHooks = (*logHooks)(nil)
	_ observability.StoreHooks   = (*logHooks)(nil)
)
