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

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/walteh/dtsxup/cmd/dtsxup/commands"
	"github.com/walteh/dtsxup/cmd/dtsxup/opts"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	ro := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "dtsxup",
		Short: "Upgrade legacy identifiers in SSIS package files",
		Long: `dtsxup rewrites legacy task and component identifiers in SSIS .dtsx
packages to their modern canonical names. It touches only the attribute
values it recognizes and leaves every other byte of the file alone, so
packages stay diff-friendly and re-running the tool is always safe.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context())
			cmd.SetContext(ctx)
			return initRootOpts(ctx, ro)
		},
	}
	addRootFlags(cmd)

	cmd.AddCommand(commands.NewUpgradeCmd(ro))
	cmd.AddCommand(commands.NewStatusCmd(ro))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
