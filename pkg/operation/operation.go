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

// Package operation wires the rewrite engine to the filesystem: it
// enumerates candidate packages, decides about backups, dry-run and writes,
// contains per-file failures and aggregates run statistics. The engine
// itself never performs I/O; everything with a side effect lives here.
package operation

import (
	"context"

	"github.com/walteh/dtsxup/pkg/catalog"
	"github.com/walteh/dtsxup/pkg/config"
	"github.com/walteh/dtsxup/pkg/log"
	"github.com/walteh/dtsxup/pkg/rewrite"
	"github.com/walteh/dtsxup/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a runnable unit of work
type Operation interface {
	// Execute runs the operation to completion
	Execute(ctx context.Context) error
}

// 🔧 Options contains the collaborators every operation needs
type Options struct {
	// Config is the run configuration
	Config *config.Config
	// Catalog is the immutable rule catalog
	Catalog *catalog.Catalog
	// Logger is the user-facing console logger
	Logger *log.Logger
	// Stats accumulates the run totals
	Stats *status.Stats
	// Path is the package file or directory to process
	Path string
}

// 🧱 BaseOperation carries the shared collaborators and the engine
type BaseOperation struct {
	Options
	Engine *rewrite.Engine
}

// 🏭 NewBaseOperation validates the options and builds the engine
func NewBaseOperation(opts Options) (BaseOperation, error) {
	if opts.Config == nil {
		return BaseOperation{}, errors.Errorf("config is required")
	}
	if opts.Catalog == nil {
		return BaseOperation{}, errors.Errorf("catalog is required")
	}
	if opts.Logger == nil {
		return BaseOperation{}, errors.Errorf("logger is required")
	}
	if opts.Stats == nil {
		return BaseOperation{}, errors.Errorf("stats is required")
	}
	if opts.Path == "" {
		return BaseOperation{}, errors.Errorf("path is required")
	}

	return BaseOperation{
		Options: opts,
		Engine:  rewrite.NewEngine(opts.Catalog),
	}, nil
}
