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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestRunner_Sequential(t *testing.T) {
	t.Run("runs_files_in_order", func(t *testing.T) {
		var seen []string
		runner := NewRunner(1)
		err := runner.RunFiles(context.Background(), []string{"a", "b", "c"}, func(ctx context.Context, path string) error {
			seen = append(seen, path)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, seen)
	})

	t.Run("stops_on_error", func(t *testing.T) {
		var seen []string
		runner := NewRunner(1)
		err := runner.RunFiles(context.Background(), []string{"a", "b", "c"}, func(ctx context.Context, path string) error {
			seen = append(seen, path)
			if path == "b" {
				return errors.Errorf("boom")
			}
			return nil
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "processing b")
		assert.Equal(t, []string{"a", "b"}, seen)
	})

	t.Run("honors_cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		runner := NewRunner(1)
		err := runner.RunFiles(ctx, []string{"a"}, func(ctx context.Context, path string) error {
			t.Fatal("should not run after cancellation")
			return nil
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "run cancelled")
	})

	t.Run("zero_jobs_means_sequential", func(t *testing.T) {
		runner := NewRunner(0)
		assert.Equal(t, 1, runner.jobs)
	})
}

func TestRunner_Parallel(t *testing.T) {
	t.Run("processes_every_file", func(t *testing.T) {
		var mu sync.Mutex
		seen := map[string]bool{}

		files := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
		runner := NewRunner(4)
		err := runner.RunFiles(context.Background(), files, func(ctx context.Context, path string) error {
			mu.Lock()
			seen[path] = true
			mu.Unlock()
			return nil
		})
		require.NoError(t, err)
		assert.Len(t, seen, len(files))
	})

	t.Run("propagates_worker_errors", func(t *testing.T) {
		files := []string{"a", "b", "c", "d"}
		runner := NewRunner(2)
		err := runner.RunFiles(context.Background(), files, func(ctx context.Context, path string) error {
			if path == "c" {
				return errors.Errorf("boom")
			}
			return nil
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "processing c")
	})
}
