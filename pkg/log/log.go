// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// 🎨 Display configuration
const (
	unitIndent  = 2  // spaces to indent unit entries
	pathWidth   = 35 // base width for the output path
	targetWidth = 8  // width for the target language
)

// 🎯 Status is the outcome of a translation unit
type Status string

const (
	StatusTranslated Status = "translated"
	StatusRewritten  Status = "rewritten"
	StatusSkipped    Status = "skipped"
	StatusDryRun     Status = "dry run"
)

// 📦 UnitOperation describes one translation unit for display
type UnitOperation struct {
	Input  string // display path of the input
	Output string // display path of the output
	Target string // target language, empty in rewrite mode
	Status Status
}

// 🎯 Logger prints user-facing feedback and mirrors it to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	quiet   bool
	mu      sync.Mutex
}

// 🏭 New creates a new logger writing feedback to console
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// WithQuiet returns a copy that suppresses info, success and progress output.
// Warnings and errors are always printed.
func (l *Logger) WithQuiet(quiet bool) *Logger {
	return &Logger{
		zlog:    l.zlog,
		console: l.console,
		quiet:   quiet,
	}
}

// Quiet reports whether progress output is suppressed.
func (l *Logger) Quiet() bool {
	return l.quiet
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context, or a quiet logger writing
// nowhere when none was set
func FromContext(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(contextKey{}).(*Logger); ok {
		return logger
	}
	return New(io.Discard, zerolog.Nop()).WithQuiet(true)
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatUnit formats a unit operation for display
func (l *Logger) formatUnit(op UnitOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch op.Status {
	case StatusTranslated:
		symbol = '✓'
		symbolColor = color.FgGreen
	case StatusRewritten:
		symbol = '⟳'
		symbolColor = color.FgBlue
	case StatusSkipped:
		symbol = '-'
		symbolColor = color.FgYellow
	default:
		symbol = '•'
		symbolColor = color.FgCyan
	}

	target := op.Target
	if target == "" {
		target = "-"
	}

	return fmt.Sprintf("%s%s %s %s %s %s",
		fmt.Sprintf("%*s", unitIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", pathWidth, op.Output),
		color.New(color.FgMagenta).Sprint(fmt.Sprintf("%-*s", targetWidth, target)),
		color.New(color.Faint).Sprint("← "+op.Input),
		string(op.Status))
}

// 📝 LogUnit prints the outcome of a translation unit. Dry runs and skips
// are printed even when quiet.
func (l *Logger) LogUnit(ctx context.Context, op UnitOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.quiet || op.Status == StatusDryRun || op.Status == StatusSkipped {
		fmt.Fprintln(l.console, l.formatUnit(op))
	}

	l.zlog.Debug().
		Str("input", op.Input).
		Str("output", op.Output).
		Str("target", op.Target).
		Str("status", string(op.Status)).
		Msg("translation unit")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.quiet {
		return
	}
	name := color.New(color.Bold, color.FgCyan).Sprint("ailingo")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Debug().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.quiet {
		fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	}
	l.zlog.Debug().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.quiet {
		fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	}
	l.zlog.Debug().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}

// ⏳ Spin shows a transient spinner until the returned stop func is called.
// Quiet loggers and consoles that are not terminals return a no-op.
func (l *Logger) Spin(msg string) (stop func()) {
	l.zlog.Debug().Msg(msg)
	if l.quiet || !isTerminal(l.console) {
		return func() {}
	}

	spinner, err := pterm.DefaultSpinner.
		WithRemoveWhenDone(true).
		WithWriter(l.console).
		Start(msg)
	if err != nil {
		l.zlog.Debug().Err(err).Msg("starting spinner")
		return func() {}
	}

	return func() {
		if err := spinner.Stop(); err != nil {
			l.zlog.Debug().Err(err).Msg("stopping spinner")
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
