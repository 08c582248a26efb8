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
	"gitlab.com/tozd/go/errors"
)

// 📦 NewStatusOperation creates a read-only preview of what an upgrade would
// do. It is the upgrade operation pinned to dry-run: same enumeration, same
// transforms, same counts, no writes and no backups.
func NewStatusOperation(opts Options) (Operation, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}

	preview := *opts.Config
	preview.DryRun = true
	preview.Backup = false
	opts.Config = &preview

	op, err := NewUpgradeOperation(opts)
	if err != nil {
		return nil, errors.Errorf("creating status operation: %w", err)
	}
	return op, nil
}
