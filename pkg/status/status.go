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

// Package status accumulates per-run statistics and renders the final
// summary report.
package status

import (
	"sync"

	"github.com/walteh/dtsxup/pkg/rewrite"
)

// 📊 Summary is a plain snapshot of one run's totals
type Summary struct {
	FilesProcessed     int
	FilesModified      int
	ExecutableUpgrades int
	ClassIDUpgrades    int
	Errors             int
}

// 🔢 TotalUpgrades returns the combined upgrade count
func (s Summary) TotalUpgrades() int {
	return s.ExecutableUpgrades + s.ClassIDUpgrades
}

// 📊 Stats aggregates the outcome of one run. Workers process files
// concurrently, so all updates go through the mutex.
type Stats struct {
	mu      sync.Mutex
	current Summary
}

// 📈 RecordResult folds one file transform outcome into the run totals
func (s *Stats) RecordResult(result rewrite.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.FilesProcessed++
	s.current.ExecutableUpgrades += result.ExecutableUpgrades
	s.current.ClassIDUpgrades += result.ClassIDUpgrades
	if result.Changed() {
		s.current.FilesModified++
	}
}

// 📈 RecordError counts one per-file failure. The file still counts as
// processed; failure containment is per file, never per run.
func (s *Stats) RecordError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.FilesProcessed++
	s.current.Errors++
}

// 📸 Snapshot returns the totals accumulated so far
func (s *Stats) Snapshot() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}
