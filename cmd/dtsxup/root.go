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

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/dtsxup/cmd/dtsxup/opts"
	"github.com/walteh/dtsxup/pkg/catalog"
	"github.com/walteh/dtsxup/pkg/config"
	"github.com/walteh/dtsxup/pkg/log"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	debug      bool
	verbose    bool
)

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (default: probe .dtsxup.yaml, .dtsxup.yml, .dtsxup.hcl)")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "also list unchanged files")
}

// setupLogging configures zerolog based on flags and returns a context
// carrying the structured logger
func setupLogging(ctx context.Context) context.Context {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	return logger.WithContext(ctx)
}

// initRootOpts loads the config, merges user rules into the built-in catalog
// and builds the console logger
func initRootOpts(ctx context.Context, ro *opts.RootOpts) error {
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	extra, err := cfg.CatalogRules()
	if err != nil {
		return errors.Errorf("reading user rules: %w", err)
	}
	cat, err := catalog.Default().WithRules(extra...)
	if err != nil {
		return errors.Errorf("compiling user rules: %w", err)
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	ro.Config = cfg
	ro.Catalog = cat
	ro.Logger = log.New(os.Stdout, level, verbose)
	return nil
}
