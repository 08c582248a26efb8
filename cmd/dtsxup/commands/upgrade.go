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

// Package commands holds the CLI subcommands. Each command copies the loaded
// config, layers its own flags on top and hands the result to an operation.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/dtsxup/cmd/dtsxup/opts"
	"github.com/walteh/dtsxup/pkg/config"
	"github.com/walteh/dtsxup/pkg/operation"
	"github.com/walteh/dtsxup/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewUpgradeCmd creates the upgrade command
func NewUpgradeCmd(ro *opts.RootOpts) *cobra.Command {
	var (
		backup         bool
		dryRun         bool
		recursive      bool
		executableOnly bool
		classidOnly    bool
		jobs           int
	)

	cmd := &cobra.Command{
		Use:   "upgrade [path]",
		Short: "Rewrite legacy identifiers in .dtsx packages",
		Long: `Upgrade rewrites legacy task and component identifiers to their modern
canonical names. The path may be a single .dtsx file or a directory; with no
path, the current directory is scanned. Only recognized attribute values are
touched, so everything else in the file survives byte for byte.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg := overlayFlags(*ro.Config, cmd, backup, dryRun, recursive, executableOnly, classidOnly, jobs)
			if err := cfg.Validate(); err != nil {
				return errors.Errorf("validating options: %w", err)
			}

			path := "."
			if len(args) == 1 {
				path = args[0]
			}

			stats := &status.Stats{}
			op, err := operation.NewUpgradeOperation(operation.Options{
				Config:  &cfg,
				Catalog: ro.Catalog,
				Logger:  ro.Logger,
				Stats:   stats,
				Path:    path,
			})
			if err != nil {
				return errors.Errorf("creating upgrade operation: %w", err)
			}

			verb := "upgrading"
			if cfg.DryRun {
				verb = "previewing"
			}
			ro.Logger.Header(fmt.Sprintf("%s %s (mode: %s)", verb, path, cfg.TransformMode()))

			if err := op.Execute(ctx); err != nil {
				return errors.Errorf("running upgrade: %w", err)
			}

			return reportSummary(cmd, stats.Snapshot(), &cfg)
		},
	}

	cmd.Flags().BoolVarP(&backup, "backup", "b", false, "write a .bak copy before modifying a file")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report what would change without writing")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "descend into subdirectories")
	cmd.Flags().BoolVar(&executableOnly, "executable-only", false, "only rewrite executable-type attributes")
	cmd.Flags().BoolVar(&classidOnly, "classid-only", false, "only rewrite component class IDs")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "number of files to process in parallel")
	cmd.MarkFlagsMutuallyExclusive("executable-only", "classid-only")

	return cmd
}

// overlayFlags layers explicitly-set command flags over the file config.
// Flags only win when the user actually passed them.
func overlayFlags(cfg config.Config, cmd *cobra.Command, backup, dryRun, recursive, executableOnly, classidOnly bool, jobs int) config.Config {
	flags := cmd.Flags()
	if flags.Changed("backup") {
		cfg.Backup = backup
	}
	if flags.Changed("dry-run") {
		cfg.DryRun = dryRun
	}
	if flags.Changed("recursive") {
		cfg.Recursive = recursive
	}
	if flags.Changed("jobs") {
		cfg.Jobs = jobs
	}
	if executableOnly {
		cfg.Mode = "executable-only"
	}
	if classidOnly {
		cfg.Mode = "classid-only"
	}
	return cfg
}

// reportSummary prints the end-of-run table and turns per-file failures into
// a non-zero exit
func reportSummary(cmd *cobra.Command, summary status.Summary, cfg *config.Config) error {
	out, err := status.FormatSummary(summary, cfg.TransformMode(), cfg.DryRun)
	if err != nil {
		return errors.Errorf("rendering summary: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)

	if summary.Errors > 0 {
		return errors.Errorf("%d file(s) failed", summary.Errors)
	}
	return nil
}
