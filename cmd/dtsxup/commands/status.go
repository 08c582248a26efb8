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

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/dtsxup/cmd/dtsxup/opts"
	"github.com/walteh/dtsxup/pkg/operation"
	"github.com/walteh/dtsxup/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewStatusCmd creates the status command
func NewStatusCmd(ro *opts.RootOpts) *cobra.Command {
	var (
		recursive      bool
		executableOnly bool
		classidOnly    bool
	)

	cmd := &cobra.Command{
		Use:   "status [path]",
		Short: "Check which packages still carry legacy identifiers",
		Long: `Status scans packages the same way upgrade does but never writes. It
reports which files would change and how many identifiers each rewrite would
touch, so it doubles as a CI check for fully-modernized repositories.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg := *ro.Config
			if cmd.Flags().Changed("recursive") {
				cfg.Recursive = recursive
			}
			if executableOnly {
				cfg.Mode = "executable-only"
			}
			if classidOnly {
				cfg.Mode = "classid-only"
			}
			if err := cfg.Validate(); err != nil {
				return errors.Errorf("validating options: %w", err)
			}

			path := "."
			if len(args) == 1 {
				path = args[0]
			}

			stats := &status.Stats{}
			op, err := operation.NewStatusOperation(operation.Options{
				Config:  &cfg,
				Catalog: ro.Catalog,
				Logger:  ro.Logger,
				Stats:   stats,
				Path:    path,
			})
			if err != nil {
				return errors.Errorf("creating status operation: %w", err)
			}

			ro.Logger.Header(fmt.Sprintf("checking %s (mode: %s)", path, cfg.TransformMode()))

			if err := op.Execute(ctx); err != nil {
				return errors.Errorf("running status check: %w", err)
			}

			summary := stats.Snapshot()
			out, err := status.FormatSummary(summary, cfg.TransformMode(), true)
			if err != nil {
				return errors.Errorf("rendering summary: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)

			if summary.Errors > 0 {
				return errors.Errorf("%d file(s) failed", summary.Errors)
			}
			if summary.FilesModified > 0 {
				ro.Logger.Warningf("%d package(s) still carry legacy identifiers", summary.FilesModified)
			} else {
				ro.Logger.Success("all packages are up to date")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "descend into subdirectories")
	cmd.Flags().BoolVar(&executableOnly, "executable-only", false, "only check executable-type attributes")
	cmd.Flags().BoolVar(&classidOnly, "classid-only", false, "only check component class IDs")
	cmd.MarkFlagsMutuallyExclusive("executable-only", "classid-only")

	return cmd
}
