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

package status

import (
	"sync"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/dtsxup/pkg/rewrite"
)

func TestStats_Record(t *testing.T) {
	var stats Stats

	stats.RecordResult(rewrite.Result{ExecutableUpgrades: 2, ClassIDUpgrades: 1})
	stats.RecordResult(rewrite.Result{})
	stats.RecordError()

	summary := stats.Snapshot()
	assert.Equal(t, 3, summary.FilesProcessed)
	assert.Equal(t, 1, summary.FilesModified)
	assert.Equal(t, 2, summary.ExecutableUpgrades)
	assert.Equal(t, 1, summary.ClassIDUpgrades)
	assert.Equal(t, 3, summary.TotalUpgrades())
	assert.Equal(t, 1, summary.Errors)
}

func TestStats_ConcurrentRecording(t *testing.T) {
	var stats Stats
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stats.RecordResult(rewrite.Result{ExecutableUpgrades: 1})
		}()
	}
	wg.Wait()

	summary := stats.Snapshot()
	assert.Equal(t, 50, summary.FilesProcessed)
	assert.Equal(t, 50, summary.FilesModified)
	assert.Equal(t, 50, summary.ExecutableUpgrades)
}

func TestFormatSummary(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	summary := Summary{
		FilesProcessed:     4,
		FilesModified:      2,
		ExecutableUpgrades: 6,
		ClassIDUpgrades:    3,
		Errors:             1,
	}

	t.Run("mode_both_lists_every_category", func(t *testing.T) {
		out, err := FormatSummary(summary, rewrite.ModeBoth, false)
		require.NoError(t, err)

		assert.Contains(t, out, "processing summary")
		assert.Contains(t, out, "files processed")
		assert.Contains(t, out, "executable upgrades")
		assert.Contains(t, out, "class ID upgrades")
		assert.Contains(t, out, "total upgrades")
		assert.Contains(t, out, "9")
		assert.NotContains(t, out, "dry run")
	})

	t.Run("executable_only_hides_class_ids", func(t *testing.T) {
		out, err := FormatSummary(summary, rewrite.ModeExecutableOnly, false)
		require.NoError(t, err)

		assert.Contains(t, out, "executable upgrades")
		assert.NotContains(t, out, "class ID upgrades")
	})

	t.Run("classid_only_hides_executables", func(t *testing.T) {
		out, err := FormatSummary(summary, rewrite.ModeClassIDOnly, false)
		require.NoError(t, err)

		assert.Contains(t, out, "class ID upgrades")
		assert.NotContains(t, out, "executable upgrades")
	})

	t.Run("dry_run_is_labelled", func(t *testing.T) {
		out, err := FormatSummary(summary, rewrite.ModeBoth, true)
		require.NoError(t, err)

		assert.Contains(t, out, "dry run summary")
		assert.Contains(t, out, "no files were modified")
	})
}
