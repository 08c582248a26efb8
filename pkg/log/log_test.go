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
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		verbose  bool
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "modified_file",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileResult(context.Background(), FileResult{
					Path:               "packages/load.dtsx",
					Modified:           true,
					ExecutableUpgrades: 2,
					ClassIDUpgrades:    1,
				})
			},
			wantLogs: []string{
				"✓ packages/load.dtsx                            3 upgrade(s)           modified",
			},
		},
		{
			name: "dry_run_file",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileResult(context.Background(), FileResult{
					Path:               "packages/load.dtsx",
					Modified:           true,
					DryRun:             true,
					ExecutableUpgrades: 1,
				})
			},
			wantLogs: []string{
				"⟳ packages/load.dtsx                            1 upgrade(s)           would modify",
			},
		},
		{
			name: "backed_up_file",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileResult(context.Background(), FileResult{
					Path:            "packages/load.dtsx",
					Modified:        true,
					BackedUp:        true,
					ClassIDUpgrades: 1,
				})
			},
			wantLogs: []string{
				"✓ packages/load.dtsx                            1 upgrade(s)           modified +bak",
			},
		},
		{
			name: "unchanged_file_hidden_by_default",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileResult(context.Background(), FileResult{Path: "packages/load.dtsx"})
			},
			wantLogs: nil,
		},
		{
			name:    "unchanged_file_shown_when_verbose",
			verbose: true,
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileResult(context.Background(), FileResult{Path: "packages/load.dtsx"})
			},
			wantLogs: []string{
				"- packages/load.dtsx                                                   unchanged",
			},
		},
		{
			name: "failed_file",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileResult(context.Background(), FileResult{
					Path: "packages/broken.dtsx",
					Err:  errors.New("permission denied"),
				})
			},
			wantLogs: []string{
				"✗ packages/broken.dtsx                                                 error",
				"permission denied",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("processed %d file(s)", 3)
				logger.Successf("upgraded %s", "load.dtsx")
			},
			wantLogs: []string{
				"ℹ️  processed 3 file(s)",
				"✅ upgraded load.dtsx",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("upgrading packages")
			},
			wantLogs: []string{
				"dtsxup • upgrading packages",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create buffer for console output
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.InfoLevel, tt.verbose)

			// Perform operation
			tt.op(t, logger)

			// Check output
			output := strings.TrimSpace(buf.String())
			if len(tt.wantLogs) == 0 {
				assert.Empty(t, output)
				return
			}
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	// Create logger
	logger := New(io.Discard, zerolog.InfoLevel, false)

	// Add to context
	ctx := context.Background()
	ctx = NewContext(ctx, logger)

	// Get from context
	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	// Check panic on missing logger
	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}
