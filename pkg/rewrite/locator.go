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
	"regexp"
	"strings"
)

// 📍 Occurrence is one located attribute-value span within raw package text.
// Offsets address the quoted value's contents, not the surrounding quotes.
type Occurrence struct {
	Name       string // attribute name as it appears in the text
	ValueStart int    // byte offset of the first value byte
	ValueEnd   int    // byte offset one past the last value byte
	Value      string // raw value between the quotes
}

// 🔧 attrPattern builds the locator pattern for a set of attribute names.
// The leading boundary group keeps SomeOtherCreationName from matching a
// CreationName target; attribute names sit after whitespace or an element
// start, never after an alphanumeric byte.
func attrPattern(names []string) *regexp.Regexp {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = regexp.QuoteMeta(name)
	}
	return regexp.MustCompile(`(?:^|[^0-9A-Za-z])(` + strings.Join(quoted, "|") + `)="([^"]*)"`)
}

// 🔍 Locate finds attribute values for the given attribute names, left to
// right and non-overlapping. A text with no matching attributes yields an
// empty slice; that is a normal outcome, not an error.
func Locate(text string, names []string) []Occurrence {
	if len(names) == 0 {
		return nil
	}

	re := attrPattern(names)
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	occurrences := make([]Occurrence, 0, len(matches))
	for _, m := range matches {
		// m[2:4] is the attribute name group, m[4:6] the value group
		occurrences = append(occurrences, Occurrence{
			Name:       text[m[2]:m[3]],
			ValueStart: m[4],
			ValueEnd:   m[5],
			Value:      text[m[4]:m[5]],
		})
	}
	return occurrences
}
