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
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/walteh/dtsxup/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

// 📝 FormatSummary renders the end-of-run report as a pterm table. The rows
// adapt to the mode: a category the run never touched is left off entirely.
func FormatSummary(summary Summary, mode rewrite.Mode, dryRun bool) (string, error) {
	title := "processing summary"
	if dryRun {
		title = "dry run summary"
	}

	rows := pterm.TableData{
		{"files processed", strconv.Itoa(summary.FilesProcessed)},
		{"files modified", strconv.Itoa(summary.FilesModified)},
	}
	if mode != rewrite.ModeClassIDOnly {
		rows = append(rows, []string{"executable upgrades", strconv.Itoa(summary.ExecutableUpgrades)})
	}
	if mode != rewrite.ModeExecutableOnly {
		rows = append(rows, []string{"class ID upgrades", strconv.Itoa(summary.ClassIDUpgrades)})
	}
	rows = append(rows,
		[]string{"total upgrades", strconv.Itoa(summary.TotalUpgrades())},
		[]string{"errors", strconv.Itoa(summary.Errors)},
	)

	table, err := pterm.DefaultTable.WithBoxed().WithData(rows).Srender()
	if err != nil {
		return "", errors.Errorf("rendering summary table: %w", err)
	}

	out := fmt.Sprintf("\n%s\n%s\n", pterm.DefaultSection.Sprint(title), table)
	if dryRun {
		out += pterm.Info.Sprintln("no files were modified, run without --dry-run to apply changes")
	}
	return out, nil
}
