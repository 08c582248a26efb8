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

// Package rewrite implements the substitution engine that modernizes legacy
// identifiers inside .dtsx package text. The engine is a pure function over
// in-memory text: it never touches the filesystem, and all catalog state it
// reads is immutable, so transforms may run concurrently without locking.
package rewrite

import (
	"github.com/walteh/dtsxup/pkg/catalog"
)

// ⚙️ Engine applies a rule catalog to attribute values
type Engine struct {
	catalog *catalog.Catalog
}

// 🏭 NewEngine creates an engine over an immutable catalog
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// 🔄 Apply rewrites a single attribute value. Rules are tried in catalog
// order and the first whose pattern matches the entire value wins; the rest
// are never consulted. A value no rule matches comes back unchanged with
// changed=false, which is how already-canonical values stay fixed points.
func (e *Engine) Apply(value string, cat catalog.Category) (string, bool) {
	for _, rule := range e.catalog.Compiled(cat) {
		if rule.Pattern.MatchString(value) {
			if rule.Replace == value {
				return value, false
			}
			return rule.Replace, true
		}
	}
	return value, false
}
