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
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent = 4  // spaces to indent file entries
	nameWidth  = 45 // Base width for file path
	countWidth = 22 // Width for the upgrade counts column
)

// 🎯 FileResult represents one processed file for logging
type FileResult struct {
	Path               string // File path as given to the engine
	Modified           bool   // Whether the file content changed
	DryRun             bool   // Whether the change was withheld
	BackedUp           bool   // Whether a backup copy was written
	ExecutableUpgrades int    // Executable-type values rewritten
	ClassIDUpgrades    int    // Component class IDs rewritten
	Err                error  // Per-file failure, if any
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	verbose bool
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level, verbose bool) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		verbose: verbose,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatFileResult formats a processed file for display
func (l *Logger) formatFileResult(r FileResult) string {
	var symbol rune
	var symbolColor color.Attribute
	var status string
	switch {
	case r.Err != nil:
		symbol = '✗'
		symbolColor = color.FgRed
		status = "error"
	case r.Modified && r.DryRun:
		symbol = '⟳'
		symbolColor = color.FgYellow
		status = "would modify"
	case r.Modified:
		symbol = '✓'
		symbolColor = color.FgGreen
		status = "modified"
	default:
		symbol = '-'
		symbolColor = color.FgCyan
		status = "unchanged"
	}

	counts := ""
	if total := r.ExecutableUpgrades + r.ClassIDUpgrades; total > 0 {
		counts = fmt.Sprintf("%d upgrade(s)", total)
	}
	if r.BackedUp {
		status += " +bak"
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, r.Path),
		fmt.Sprintf("%-*s", countWidth, counts),
		status)
}

// 📝 LogFileResult logs a processed file. Unchanged files only appear on the
// console in verbose mode, but always reach the structured log.
func (l *Logger) LogFileResult(ctx context.Context, r FileResult) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if r.Err != nil || r.Modified || l.verbose {
		fmt.Fprintln(l.console, l.formatFileResult(r))
	}
	if r.Err != nil {
		fmt.Fprintf(l.console, "%*s  %s\n", fileIndent, "", color.New(color.FgRed).Sprint(r.Err.Error()))
	}

	l.zlog.Info().
		Str("file", r.Path).
		Bool("modified", r.Modified).
		Bool("dry_run", r.DryRun).
		Bool("backed_up", r.BackedUp).
		Int("executable_upgrades", r.ExecutableUpgrades).
		Int("classid_upgrades", r.ClassIDUpgrades).
		Err(r.Err).
		Msg("file processed")
}

// 📝 Header logs a run header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("dtsxup")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
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
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
