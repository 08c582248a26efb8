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

package operation

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/dtsxup/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 📦 NewUpgradeOperation creates the main upgrade operation
func NewUpgradeOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, errors.Errorf("creating upgrade operation: %w", err)
	}
	return &upgradeOperation{BaseOperation: base}, nil
}

// 📦 upgradeOperation implements the upgrade operation
type upgradeOperation struct {
	BaseOperation
}

// 🏃 Execute enumerates the candidate packages and processes each one.
// Per-file failures are contained: they are logged and counted, and the run
// moves on to the next file. Only an unusable root path or a cancelled
// context fails the operation as a whole.
func (op *upgradeOperation) Execute(ctx context.Context) error {
	files, err := op.enumerate(ctx)
	if err != nil {
		return errors.Errorf("enumerating packages: %w", err)
	}

	if len(files) == 0 {
		op.Logger.Warningf("no .dtsx packages found under %s", op.Path)
		return nil
	}
	op.Logger.Infof("found %d package(s) to process", len(files))

	runner := NewRunner(op.Config.Jobs)
	return runner.RunFiles(ctx, files, op.processFile)
}

// 🔍 enumerate resolves the root path into the ordered list of package files
func (op *upgradeOperation) enumerate(ctx context.Context) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(op.Path)
	if err != nil {
		return nil, errors.Errorf("inspecting path: %w", err)
	}

	if !info.IsDir() {
		if !strings.EqualFold(filepath.Ext(op.Path), ".dtsx") {
			return nil, errors.Errorf("not a .dtsx package: %s", op.Path)
		}
		return []string{op.Path}, nil
	}

	pattern := "*.dtsx"
	if op.Config.Recursive {
		pattern = "**/*.dtsx"
	}
	matches, err := doublestar.FilepathGlob(filepath.Join(op.Path, pattern))
	if err != nil {
		return nil, errors.Errorf("globbing %s: %w", pattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, match := range matches {
		if op.shouldIgnore(ctx, match) {
			logger.Debug().Str("file", match).Msg("file ignored by pattern")
			continue
		}
		files = append(files, match)
	}

	// glob order is filesystem-dependent; keep runs deterministic
	sort.Strings(files)
	return files, nil
}

// 🔍 shouldIgnore checks a file against the configured ignore patterns
func (op *upgradeOperation) shouldIgnore(ctx context.Context, path string) bool {
	if len(op.Config.IgnorePatterns) == 0 {
		return false
	}

	rel, err := filepath.Rel(op.Path, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	logger := zerolog.Ctx(ctx)
	for _, pattern := range op.Config.IgnorePatterns {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			logger.Debug().Str("pattern", pattern).Str("path", rel).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			return true
		}
	}

	return false
}

// 📄 processFile transforms a single package. The error return feeds the
// runner and is reserved for context cancellation; every file-level failure
// is recorded and swallowed here.
func (op *upgradeOperation) processFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		op.fileFailed(ctx, path, errors.Errorf("reading package: %w", err))
		return nil
	}

	original := string(data)
	result := op.Engine.Transform(original, op.Config.TransformMode())

	// the write decision keys on content equality, not on the counts, so a
	// dry run and a live run always report the same numbers
	changed := result.Content != original

	fileResult := log.FileResult{
		Path:               path,
		Modified:           changed,
		DryRun:             op.Config.DryRun,
		ExecutableUpgrades: result.ExecutableUpgrades,
		ClassIDUpgrades:    result.ClassIDUpgrades,
	}

	if changed && !op.Config.DryRun {
		if op.Config.Backup {
			if err := op.writeBackup(path, data); err != nil {
				op.fileFailed(ctx, path, errors.Errorf("writing backup: %w", err))
				return nil
			}
			fileResult.BackedUp = true
		}

		if err := op.writeResult(path, result.Content); err != nil {
			op.fileFailed(ctx, path, errors.Errorf("writing package: %w", err))
			return nil
		}
	}

	op.Stats.RecordResult(result)
	op.Logger.LogFileResult(ctx, fileResult)
	return nil
}

// 💾 writeBackup copies the untouched original next to the package before
// any modification happens
func (op *upgradeOperation) writeBackup(path string, original []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path+".bak", original, mode); err != nil {
		return errors.Errorf("copying original: %w", err)
	}
	return nil
}

// 💾 writeResult overwrites the package with the rewritten content,
// preserving its permission bits
func (op *upgradeOperation) writeResult(path, content string) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return errors.Errorf("overwriting package: %w", err)
	}
	return nil
}

// ❌ fileFailed records and reports one contained per-file failure
func (op *upgradeOperation) fileFailed(ctx context.Context, path string, err error) {
	op.Stats.RecordError()
	op.Logger.LogFileResult(ctx, log.FileResult{Path: path, Err: err})
}
