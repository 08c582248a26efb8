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

package rewrite

import (
	"strings"

	"github.com/walteh/dtsxup/pkg/catalog"
	"gitlab.com/tozd/go/errors"
)

// 🎚️ Mode selects which attribute families a transform rewrites
type Mode int

const (
	// ModeBoth rewrites executable types and component class IDs
	ModeBoth Mode = iota
	// ModeExecutableOnly rewrites DTS:CreationName / DTS:ExecutableType only
	ModeExecutableOnly
	// ModeClassIDOnly rewrites componentClassID only
	ModeClassIDOnly
)

// 📝 String returns the mode name used in config files and flags
func (m Mode) String() string {
	switch m {
	case ModeExecutableOnly:
		return "executable-only"
	case ModeClassIDOnly:
		return "classid-only"
	default:
		return "both"
	}
}

// 🎯 ParseMode parses a mode name from config or flags
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "both":
		return ModeBoth, nil
	case "executable-only":
		return ModeExecutableOnly, nil
	case "classid-only":
		return ModeClassIDOnly, nil
	default:
		return 0, errors.Errorf("unknown mode: %q (want \"both\", \"executable-only\" or \"classid-only\")", s)
	}
}

var (
	executableAttrs = []string{"DTS:CreationName", "DTS:ExecutableType"}
	classIDAttrs    = []string{"componentClassID"}
)

// 📐 attrNames returns the attribute-name set a mode scans for
func (m Mode) attrNames() []string {
	switch m {
	case ModeExecutableOnly:
		return executableAttrs
	case ModeClassIDOnly:
		return classIDAttrs
	default:
		return append(append([]string{}, executableAttrs...), classIDAttrs...)
	}
}

// 🧭 categoryFor maps a located attribute name back to its rule category
func categoryFor(name string) catalog.Category {
	if name == "componentClassID" {
		return catalog.CategoryClassID
	}
	return catalog.CategoryExecutable
}

// 📊 Result is the outcome of one whole-file transform
type Result struct {
	Content            string // rewritten text; identical to the input when nothing changed
	ExecutableUpgrades int    // changed DTS:CreationName / DTS:ExecutableType values
	ClassIDUpgrades    int    // changed componentClassID values
}

// 🔁 Changed reports whether the transform produced different content
func (r Result) Changed() bool {
	return r.ExecutableUpgrades+r.ClassIDUpgrades > 0
}

// 📄 Transform rewrites every in-scope attribute value of text and splices
// the replacements back into the original spans. Every byte outside a
// rewritten value span is preserved exactly, including whitespace, line
// endings and comments. The input is treated as text, never parsed as XML.
func (e *Engine) Transform(text string, mode Mode) Result {
	occurrences := Locate(text, mode.attrNames())
	if len(occurrences) == 0 {
		return Result{Content: text}
	}

	var (
		out     strings.Builder
		result  Result
		cursor  int
		changed bool
	)
	out.Grow(len(text))

	for _, occ := range occurrences {
		cat := categoryFor(occ.Name)
		newValue, ok := e.Apply(occ.Value, cat)
		if !ok {
			continue
		}

		out.WriteString(text[cursor:occ.ValueStart])
		out.WriteString(newValue)
		cursor = occ.ValueEnd
		changed = true

		switch cat {
		case catalog.CategoryExecutable:
			result.ExecutableUpgrades++
		case catalog.CategoryClassID:
			result.ClassIDUpgrades++
		}
	}

	if !changed {
		result.Content = text
		return result
	}

	out.WriteString(text[cursor:])
	result.Content = out.String()
	return result
}
