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

	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 Runner executes per-file work, optionally in parallel
type Runner struct {
	jobs int
}

// 🏭 NewRunner creates a runner with the given parallelism. Anything below
// one is treated as sequential.
func NewRunner(jobs int) *Runner {
	if jobs < 1 {
		jobs = 1
	}
	return &Runner{jobs: jobs}
}

// 🔄 RunFiles applies fn to every file. With one job the files run in order
// on the calling goroutine; with more, a bounded errgroup fans them out.
// fn returning an error aborts the whole run, so implementations that want
// per-file containment must swallow their own failures.
func (r *Runner) RunFiles(ctx context.Context, files []string, fn func(ctx context.Context, path string) error) error {
	if r.jobs == 1 {
		for _, file := range files {
			if err := ctx.Err(); err != nil {
				return errors.Errorf("run cancelled: %w", err)
			}
			if err := fn(ctx, file); err != nil {
				return errors.Errorf("processing %s: %w", file, err)
			}
		}
		return nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.jobs)
	for _, file := range files {
		file := file
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return errors.Errorf("run cancelled: %w", err)
			}
			if err := fn(ctx, file); err != nil {
				return errors.Errorf("processing %s: %w", file, err)
			}
			return nil
		})
	}
	return eg.Wait()
}
