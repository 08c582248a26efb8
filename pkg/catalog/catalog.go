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

// Package catalog defines the ordered rule tables that drive .dtsx identifier
// rewriting. A catalog is built once, validated on construction, and is
// read-only afterwards, so any number of transforms may share it.
package catalog

import (
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🗂️ Category selects which rule table a rule belongs to
type Category int

const (
	// CategoryExecutable covers DTS:CreationName and DTS:ExecutableType values
	CategoryExecutable Category = iota
	// CategoryClassID covers componentClassID values
	CategoryClassID
)

// 📝 String returns the category name used in config files and logs
func (c Category) String() string {
	switch c {
	case CategoryExecutable:
		return "executable"
	case CategoryClassID:
		return "classid"
	default:
		return "unknown"
	}
}

// 🎯 ParseCategory parses a category name from config
func ParseCategory(s string) (Category, error) {
	switch s {
	case "executable":
		return CategoryExecutable, nil
	case "classid":
		return CategoryClassID, nil
	default:
		return 0, errors.Errorf("unknown category: %q (want \"executable\" or \"classid\")", s)
	}
}

// 🔄 Rule maps one legacy identifier shape to its canonical name. Match is a
// regular expression applied to the entire attribute value, never to a
// substring of it. Order between rules is significant: the first rule whose
// pattern matches a value wins, so more specific patterns must come first.
type Rule struct {
	Match    string   // pattern for the whole attribute value
	Replace  string   // canonical replacement
	Category Category // which attribute family the rule applies to
}

// 🧱 CompiledRule is a rule with its pattern compiled and anchored
type CompiledRule struct {
	Pattern *regexp.Regexp
	Replace string
}

// 📚 Catalog holds the ordered rule sequences, one per category. It is
// immutable after construction.
type Catalog struct {
	source   map[Category][]Rule
	compiled map[Category][]CompiledRule
}

// 🏭 New compiles and validates a catalog from an ordered rule list
func New(rules []Rule) (*Catalog, error) {
	c := &Catalog{
		source:   map[Category][]Rule{},
		compiled: map[Category][]CompiledRule{},
	}

	for i, rule := range rules {
		if rule.Match == "" {
			return nil, errors.Errorf("rule %d: match pattern is required", i)
		}
		if rule.Replace == "" {
			return nil, errors.Errorf("rule %d: replacement is required", i)
		}

		re, err := compilePattern(rule.Match)
		if err != nil {
			return nil, errors.Errorf("rule %d (%s): %w", i, rule.Match, err)
		}

		c.source[rule.Category] = append(c.source[rule.Category], rule)
		c.compiled[rule.Category] = append(c.compiled[rule.Category], CompiledRule{
			Pattern: re,
			Replace: rule.Replace,
		})
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// 🔧 compilePattern anchors a rule pattern so it only ever matches a whole
// attribute value. GUID-shaped patterns match case-insensitively, mirroring
// how the DTS designer emits them with inconsistent casing.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	flags := ""
	if strings.HasPrefix(pattern, `\{`) {
		flags = "(?i)"
	}
	re, err := regexp.Compile(flags + `^(?:` + pattern + `)$`)
	if err != nil {
		return nil, errors.Errorf("compiling pattern: %w", err)
	}
	return re, nil
}

// 🔍 validate enforces the catalog invariants: no two rules in a category may
// share a pattern with different replacements, and no replacement may itself
// be matched by any rule of its category. The second check is what makes the
// engine idempotent: canonical forms are fixed points.
func (c *Catalog) validate() error {
	for cat, rules := range c.source {
		seen := map[string]string{}
		for _, rule := range rules {
			if prev, ok := seen[rule.Match]; ok && prev != rule.Replace {
				return errors.Errorf("category %s: pattern %q maps to both %q and %q", cat, rule.Match, prev, rule.Replace)
			}
			seen[rule.Match] = rule.Replace
		}

		for _, rule := range rules {
			for _, other := range c.compiled[cat] {
				if other.Pattern.MatchString(rule.Replace) {
					return errors.Errorf("category %s: replacement %q is matched by pattern %q, rewriting would not be idempotent", cat, rule.Replace, other.Pattern.String())
				}
			}
		}
	}
	return nil
}

// 📋 Rules returns the ordered rule sequence for a category
func (c *Catalog) Rules(cat Category) []Rule {
	out := make([]Rule, len(c.source[cat]))
	copy(out, c.source[cat])
	return out
}

// ⚙️ Compiled returns the compiled rule sequence for a category, in
// application order. Callers must not mutate the returned slice.
func (c *Catalog) Compiled(cat Category) []CompiledRule {
	return c.compiled[cat]
}

// ➕ WithRules returns a new catalog with extra rules appended after the
// existing ones. Existing rules keep precedence; the combined catalog is
// re-validated as a whole.
func (c *Catalog) WithRules(extra ...Rule) (*Catalog, error) {
	if len(extra) == 0 {
		return c, nil
	}

	var all []Rule
	for _, cat := range []Category{CategoryExecutable, CategoryClassID} {
		all = append(all, c.source[cat]...)
	}
	all = append(all, extra...)

	merged, err := New(all)
	if err != nil {
		return nil, errors.Errorf("merging catalog rules: %w", err)
	}
	return merged, nil
}
