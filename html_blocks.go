// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package mdtoken

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// htmlBlockTagNames is condition 6's list of block-level tag names, per
// CommonMark §4.6 type 6, built from the well-known atom table instead
// of hand-typed literals so the list can't drift from the tags the
// HTML tokenizer vocabulary actually recognizes.
var htmlBlockTagNames = newTagSet(
	atom.Address, atom.Article, atom.Aside, atom.Base,
	atom.Basefont, atom.Blockquote, atom.Body, atom.Caption,
	atom.Center, atom.Col, atom.Colgroup, atom.Dd,
	atom.Details, atom.Dialog, atom.Dir, atom.Div, atom.Dl,
	atom.Dt, atom.Fieldset, atom.Figcaption, atom.Figure,
	atom.Footer, atom.Form, atom.Frame, atom.Frameset,
	atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
	atom.Head, atom.Header, atom.Hr, atom.Html, atom.Iframe,
	atom.Legend, atom.Li, atom.Link, atom.Main, atom.Menu,
	atom.Menuitem, atom.Nav, atom.Noframes, atom.Ol,
	atom.Optgroup, atom.Option, atom.P, atom.Param,
	atom.Section, atom.Summary, atom.Table, atom.Tbody,
	atom.Td, atom.Tfoot, atom.Th, atom.Thead, atom.Title,
	atom.Tr, atom.Track, atom.Ul,
)

var htmlRawTextTagNames = newTagSet(atom.Script, atom.Pre, atom.Style, atom.Textarea)

func newTagSet(atoms ...atom.Atom) map[string]bool {
	set := make(map[string]bool, len(atoms))
	for _, a := range atoms {
		set[a.String()] = true
	}
	return set
}

// matchHTMLBlockStart classifies the start of an HTML block, per §6's
// seven patterns. It returns the matched condition (1-7) or 0.
// canInterrupt is false when a type-7 block would need to interrupt a
// paragraph, which it is not allowed to do.
func matchHTMLBlockStart(rest string, canInterrupt bool) int {
	if !strings.HasPrefix(rest, "<") {
		return 0
	}
	lower := strings.ToLower(rest)

	switch {
	case strings.HasPrefix(lower, "<!--"):
		return 2
	case strings.HasPrefix(lower, "<?"):
		return 3
	case strings.HasPrefix(rest, "<!") && len(rest) > 2 && isASCIILetter(rest[2]):
		return 4
	case strings.HasPrefix(rest, "<![CDATA["):
		return 5
	}

	tagBody := rest[1:]
	closing := false
	if strings.HasPrefix(tagBody, "/") {
		closing = true
		tagBody = tagBody[1:]
	}
	name, afterName := scanTagName(tagBody)
	if name == "" {
		return 0
	}
	lowerName := strings.ToLower(name)

	if htmlRawTextTagNames[lowerName] && isTagBoundary(afterName) {
		return 1
	}
	if htmlBlockTagNames[lowerName] && isTagBoundary(afterName) {
		return 6
	}
	if canInterrupt {
		// Type 7: any other tag alone on the line, only when it would
		// not interrupt a paragraph.
		rem := strings.TrimSpace(afterName)
		rem = strings.TrimPrefix(rem, "/")
		rem = strings.TrimSuffix(strings.TrimSpace(rem), ">")
		if strings.TrimSpace(rem) == "" {
			_ = closing
			return 7
		}
	}
	return 0
}

func scanTagName(s string) (name, rest string) {
	i := 0
	for i < len(s) && (isASCIILetter(s[i]) || (i > 0 && (isASCIIDigit(s[i]) || s[i] == '-'))) {
		i++
	}
	if i == 0 || !isASCIILetter(s[0]) {
		return "", s
	}
	return s[:i], s[i:]
}

func isTagBoundary(rest string) bool {
	if rest == "" {
		return true
	}
	switch rest[0] {
	case ' ', '\t', '>', '\n', '\r':
		return true
	}
	return strings.HasPrefix(rest, "/>")
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// htmlBlockEnds reports whether line closes an open HTML block of the
// given condition, per CommonMark §4.6's per-type end conditions.
func htmlBlockEnds(condition int, line string) bool {
	lower := strings.ToLower(line)
	switch condition {
	case 1:
		return strings.Contains(lower, "</script>") || strings.Contains(lower, "</pre>") ||
			strings.Contains(lower, "</style>") || strings.Contains(lower, "</textarea>")
	case 2:
		return strings.Contains(line, "-->")
	case 3:
		return strings.Contains(line, "?>")
	case 4:
		return strings.Contains(line, ">")
	case 5:
		return strings.Contains(line, "]]>")
	case 6, 7:
		return false // closed by the next blank line instead.
	}
	return false
}
