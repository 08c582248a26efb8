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

package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/walteh/dtsxup/pkg/catalog"
	"github.com/walteh/dtsxup/pkg/rewrite"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 RuleSpec is a user-supplied catalog extension. It is appended after the
// built-in rules, so the defaults keep precedence.
type RuleSpec struct {
	Category string `json:"category" yaml:"category" hcl:"category"`
	Match    string `json:"match" yaml:"match" hcl:"match"`
	Replace  string `json:"replace" yaml:"replace" hcl:"replace"`
}

// 📚 Config represents the complete run configuration. CLI flags override
// anything loaded from a file.
type Config struct {
	Mode           string     `json:"mode,omitempty" yaml:"mode,omitempty" hcl:"mode,optional"`
	Recursive      bool       `json:"recursive,omitempty" yaml:"recursive,omitempty" hcl:"recursive,optional"`
	Backup         bool       `json:"backup,omitempty" yaml:"backup,omitempty" hcl:"backup,optional"`
	DryRun         bool       `json:"dry_run,omitempty" yaml:"dry_run,omitempty" hcl:"dry_run,optional"`
	Jobs           int        `json:"jobs,omitempty" yaml:"jobs,omitempty" hcl:"jobs,optional"`
	IgnorePatterns []string   `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty" hcl:"ignore_patterns,optional"`
	Rules          []RuleSpec `json:"rules,omitempty" yaml:"rules,omitempty" hcl:"rule,block"`
}

// 🗃️ defaultFiles are probed, in order, when no config path is given
var defaultFiles = []string{".dtsxup.yaml", ".dtsxup.yml", ".dtsxup.hcl"}

// 🎯 Load loads the configuration. An explicit path must exist and parse; an
// empty path falls back to the default file names and, when none of them
// exists, to the zero config (flags drive everything).
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)

	if path == "" {
		for _, candidate := range defaultFiles {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			logger.Debug().Msg("no config file found, using defaults")
			cfg := &Config{}
			if err := cfg.Validate(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
	}

	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks the configuration and fills in defaults
func (cfg *Config) Validate() error {
	if _, err := rewrite.ParseMode(cfg.Mode); err != nil {
		return errors.Errorf("validating mode: %w", err)
	}

	if cfg.Jobs < 0 {
		return errors.Errorf("jobs must not be negative, got %d", cfg.Jobs)
	}
	if cfg.Jobs == 0 {
		cfg.Jobs = 1
	}

	for i, rule := range cfg.Rules {
		if _, err := catalog.ParseCategory(rule.Category); err != nil {
			return errors.Errorf("rule %d: %w", i, err)
		}
		if rule.Match == "" {
			return errors.Errorf("rule %d: match is required", i)
		}
		if rule.Replace == "" {
			return errors.Errorf("rule %d: replace is required", i)
		}
	}

	return nil
}

// 🎚️ TransformMode returns the parsed rewrite mode
func (cfg *Config) TransformMode() rewrite.Mode {
	mode, err := rewrite.ParseMode(cfg.Mode)
	if err != nil {
		// Validate rejects unparseable modes before this is reachable
		return rewrite.ModeBoth
	}
	return mode
}

// 📋 CatalogRules converts the user rule specs into catalog rules
func (cfg *Config) CatalogRules() ([]catalog.Rule, error) {
	if len(cfg.Rules) == 0 {
		return nil, nil
	}

	rules := make([]catalog.Rule, 0, len(cfg.Rules))
	for i, spec := range cfg.Rules {
		cat, err := catalog.ParseCategory(spec.Category)
		if err != nil {
			return nil, errors.Errorf("rule %d: %w", i, err)
		}
		rules = append(rules, catalog.Rule{
			Match:    spec.Match,
			Replace:  spec.Replace,
			Category: cat,
		})
	}
	return rules, nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("mode=%s recursive=%t backup=%t dry_run=%t jobs=%d rules=%d",
		cfg.TransformMode(), cfg.Recursive, cfg.Backup, cfg.DryRun, cfg.Jobs, len(cfg.Rules))
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

func init() {
	Register(&HCLParser{})
}

func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var cfg Config
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &cfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
